package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
)

// OrderItem summarizes a purchased track.
type OrderItem struct {
	MusicID string `json:"musicId"`
	Title   string `json:"title"`
	Image   string `json:"image"`
}

// OrderItems is stored as a JSON document in a single column.
type OrderItems []OrderItem

func (i OrderItems) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}
	b, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (i *OrderItems) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*i = OrderItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported order items type %T", value)
	}
	return json.Unmarshal(raw, i)
}

// Order is keyed by the checkout session id; it is created PENDING when the
// session is opened and completed by the webhook.
type Order struct {
	ID           string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SessionID    string          `json:"sessionId" gorm:"column:session_id;uniqueIndex;not null"`
	UserID       string          `json:"userId" gorm:"column:user_id;index;not null"`
	Status       OrderStatus     `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	Items        OrderItems      `json:"items" gorm:"type:text"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	AddressLine1 string          `json:"addressLine1" gorm:"column:address_line1"`
	AddressLine2 string          `json:"addressLine2" gorm:"column:address_line2"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	PostalCode   string          `json:"postalCode"`
	Country      string          `json:"country"`
	Subtotal     decimal.Decimal `json:"subtotal" gorm:"type:numeric(12,2)"`
	Total        decimal.Decimal `json:"total" gorm:"type:numeric(12,2)"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// CheckoutSessionCreate model pour démarrer un paiement
// @Description single track purchase request
type CheckoutSessionCreate struct {
	MusicID string           `json:"musicId" example:"6650f1c2a1b2c3d4e5f60718"`
	Title   string           `json:"title" example:"Psalm 23"`
	Price   *decimal.Decimal `json:"price" swaggertype:"number" example:"99"`
	Image   string           `json:"image" example:"https://res.cloudinary.com/amb/image/upload/covers/psalm23.png"`
	UserID  string           `json:"userId" example:"4f7d1c2e-0d7a-4c51-9d8e-1f0b2c3d4e5f"`
}

func (r CheckoutSessionCreate) HasRequiredFields() bool {
	return r.MusicID != "" && r.Title != "" && r.Price != nil && r.Image != "" && r.UserID != ""
}
