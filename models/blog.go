package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Blog struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title      string     `json:"title" gorm:"not null"`
	Content    string     `json:"content" gorm:"type:text"`
	ImageURL   string     `json:"imageUrl" gorm:"column:image_url"`
	Author     string     `json:"author"`
	Categories []Category `json:"categories" gorm:"many2many:blog_categories;"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// BlogCreate model pour publier un article
// @Description payload used to publish a blog article
type BlogCreate struct {
	Title      string   `json:"title" binding:"required" example:"Psalms in modern worship"`
	Content    string   `json:"content" binding:"required" example:"..."`
	ImageURL   string   `json:"imageUrl" example:"https://res.cloudinary.com/amb/image/upload/blog_images/blog_1.png"`
	Author     string   `json:"author" example:"Sri"`
	Categories []string `json:"categories"`
}

func (Blog) TableName() string {
	return "blogs"
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
