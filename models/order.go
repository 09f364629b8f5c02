package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID               int             `gorm:"primaryKey" json:"id"`
	Status           string          `gorm:"size:100;not null" json:"status" validate:"required,max=100"`
	RegistrationDate time.Time       `gorm:"autoCreateTime;<-:create" json:"registration_date"`
	DeliveryAddress  string          `gorm:"size:255;not null" json:"delivery_address" validate:"required,max=255"`
	DeliveryDate     time.Time       `json:"delivery_date"`
	CustomerID       string          `gorm:"size:100;not null" json:"customer_id" validate:"required,max=100"`
	CustomerName     string          `gorm:"size:100;not null" json:"customer_name" validate:"required,max=100"`
	Subtotal         decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal" validate:"gte=0,lte=99999999.99"`
	Discount         decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount" validate:"gte=0,lte=99999999.99"`
	Tax              decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax" validate:"gte=0,lte=99999999.99"`
	Total            decimal.Decimal `gorm:"type:decimal(10,2)" json:"total" validate:"gte=0,lte=99999999.99"`
	PaymentMethod    string          `gorm:"size:50;not null" json:"payment_method" validate:"required,max=50"`
	PaymentStatus    string          `gorm:"size:50;not null" json:"payment_status" validate:"required,max=50"`
	CreatedBy        string          `gorm:"size:100;not null" json:"created_by" validate:"required,max=100"`
	ModifiedBy       string          `gorm:"size:100;not null" json:"modified_by" validate:"required,max=100"`
}
