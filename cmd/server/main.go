package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"catalog/internal/config"
	mydb "catalog/internal/db"
	"catalog/internal/handlers"
	"catalog/internal/models"
	"catalog/internal/upload"
)

func main() {
	cfg := config.Load()

	db := mydb.MustOpen(cfg)
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		log.Fatal(err)
	}

	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	r := gin.Default()

	// любой origin разрешён
	r.Use(cors.Default())

	// раздача загруженных картинок
	r.Static("/uploads", cfg.UploadDir)

	h := handlers.New(db, upload.NewStore(cfg.UploadDir), cfg.PublicBaseURL)

	// health
	r.GET("/health", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.POST("/products", h.CreateProduct)
	r.GET("/products", h.ListProducts)
	r.PUT("/products/:id", h.UpdateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)
	r.GET("/categories", h.ListCategories)

	log.Println("Server listening on :" + cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
