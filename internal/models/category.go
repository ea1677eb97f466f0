package models

// Category — таблица categories; только чтение, записи делает админка
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}
