package models

import "time"

// Product — таблица products
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	ImageURL    string    `gorm:"column:image_url" json:"image_url"` // пусто, если картинки нет
	CategoryID  uint      `gorm:"index;not null" json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductRow — строка листинга: продукт плюс имя категории из join
type ProductRow struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	Category    string    `json:"category"`
}
