package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	AdminRole Role = "ADMIN"
	UserRole  Role = "USER"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	UserName  string    `json:"username"`
	Role      Role      `json:"role" gorm:"type:varchar(20);default:'USER'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserCreate model pour l'inscription et la connexion
// @Description credentials used by register and login
type UserCreate struct {
	Email    string `json:"email" binding:"required" example:"listener@amusicbible.com"`
	Password string `json:"password" binding:"required" example:"Password123"`
	UserName string `json:"username" example:"listener"`
}
