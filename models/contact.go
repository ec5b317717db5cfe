package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact représente une demande de support
// @Description support or inquiry message sent by a signed-in user
type Contact struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"column:user_id;index;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Responded bool      `json:"responded" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ContactCreate modèle pour créer une demande de contact
// @Description modèle pour créer une demande de contact
type ContactCreate struct {
	Name    string `json:"name" binding:"required" example:"Sri Ram"`
	Email   string `json:"email" binding:"required,email" example:"sri.ram@example.com"`
	Subject string `json:"subject" binding:"required" example:"Download issue"`
	Message string `json:"message" binding:"required" example:"My purchased track does not play."`
}
