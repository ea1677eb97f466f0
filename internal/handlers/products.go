package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"catalog/internal/models"
	"catalog/internal/upload"
)

// Handler carries the shared dependencies of all routes.
type Handler struct {
	db      *gorm.DB
	store   *upload.Store
	baseURL string
}

func New(db *gorm.DB, store *upload.Store, baseURL string) *Handler {
	return &Handler{db: db, store: store, baseURL: baseURL}
}

// Price is a pointer so that a legitimate 0 passes "required".
type productForm struct {
	Title       string   `form:"title" binding:"required"`
	Description string   `form:"description"`
	Price       *float64 `form:"price" binding:"required,gte=0"`
	CategoryID  uint     `form:"category_id" binding:"required,min=1"`
}

// category_id нарочно отсутствует: через PUT категория не меняется
type productUpdateForm struct {
	Title       string   `form:"title" binding:"required"`
	Description string   `form:"description"`
	Price       *float64 `form:"price" binding:"required,gte=0"`
}

// CreateProduct handles POST /products (multipart, optional "image" file).
func (h *Handler) CreateProduct(c *gin.Context) {
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, http.StatusBadRequest, kindValidation, err)
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		name, err := h.store.Save(file)
		if err != nil {
			fail(c, http.StatusInternalServerError, kindUpload, err)
			return
		}
		imageURL = upload.PublicURL(h.baseURL, name)
	}

	item := models.Product{
		Title:       form.Title,
		Description: form.Description,
		Price:       *form.Price,
		ImageURL:    imageURL,
		CategoryID:  form.CategoryID,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&item).Error; err != nil {
		fail(c, http.StatusInternalServerError, kindDatabase, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Product added successfully!"})
}

// ListProducts handles GET /products with an optional ?category= filter.
// Inner join: products whose category is gone are excluded, not null-joined.
func (h *Handler) ListProducts(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Table("products").
		Select("products.id, products.title, products.description, products.price, " +
			"products.image_url, products.created_at, categories.name AS category").
		Joins("JOIN categories ON products.category_id = categories.id")

	if category := c.Query("category"); category != "" {
		q = q.Where("products.category_id = ?", category)
	}

	rows := make([]models.ProductRow, 0)
	if err := q.Scan(&rows).Error; err != nil {
		fail(c, http.StatusInternalServerError, kindDatabase, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// UpdateProduct handles PUT /products/:id. Without a new image the stored
// image_url stays untouched; with one, the previous file is dropped from
// disk once the row update went through.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var form productUpdateForm
	if err := c.ShouldBind(&form); err != nil {
		fail(c, http.StatusBadRequest, kindValidation, err)
		return
	}

	updates := map[string]any{
		"title":       form.Title,
		"description": form.Description,
		"price":       *form.Price,
	}

	oldName, newName := "", ""
	if file, err := c.FormFile("image"); err == nil {
		name, err := h.store.Save(file)
		if err != nil {
			fail(c, http.StatusInternalServerError, kindUpload, err)
			return
		}
		newName = name
		updates["image_url"] = upload.PublicURL(h.baseURL, name)

		var prev models.Product
		if err := h.db.WithContext(c.Request.Context()).First(&prev, "id = ?", id).Error; err == nil {
			oldName = upload.NameFromURL(prev.ImageURL)
		}
	}

	res := h.db.WithContext(c.Request.Context()).
		Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		fail(c, http.StatusInternalServerError, kindDatabase, res.Error)
		return
	}
	if res.RowsAffected > 0 {
		if oldName != "" {
			_ = h.store.Remove(oldName)
		}
	} else if newName != "" {
		// nothing matched the id, drop the file we just stored
		_ = h.store.Remove(newName)
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم التعديل"})
}

// DeleteProduct handles DELETE /products/:id. No existence check: a missing
// id still reports success with zero rows affected.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	var prev models.Product
	_ = h.db.WithContext(c.Request.Context()).First(&prev, "id = ?", id).Error

	res := h.db.WithContext(c.Request.Context()).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		fail(c, http.StatusInternalServerError, kindDatabase, res.Error)
		return
	}
	if res.RowsAffected > 0 {
		_ = h.store.Remove(upload.NameFromURL(prev.ImageURL))
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم الحذف"})
}
