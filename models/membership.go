package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership is an application for recurring access. It is pending while
// IsMember is false; accepting flips the flag, rejecting deletes the row.
type Membership struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name               string    `json:"name" gorm:"not null"`
	Email              string    `json:"email" gorm:"not null;index"`
	Phone              string    `json:"phone" gorm:"not null"`
	Country            string    `json:"country" gorm:"not null"`
	City               string    `json:"city"`
	Address            string    `json:"address"`
	SubscriptionPeriod string    `json:"subscriptionPeriod" gorm:"column:subscription_period;not null"`
	IsMember           bool      `json:"isMember" gorm:"column:is_member;default:false"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" gorm:"index"`
}

func (Membership) TableName() string {
	return "memberships"
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MembershipCreate model for a membership application
// @Description payload submitted by the public membership form
type MembershipCreate struct {
	Name               string `json:"name" binding:"required" example:"Sri Ram"`
	Email              string `json:"email" binding:"required,email" example:"sri.ram@example.com"`
	Phone              string `json:"phone" binding:"required" example:"+91 98450 00000"`
	Country            string `json:"country" binding:"required" example:"India"`
	City               string `json:"city" example:"Chennai"`
	Address            string `json:"address" example:"12 Temple Street"`
	SubscriptionPeriod string `json:"subscriptionPeriod" binding:"required" example:"6 months"`
}
