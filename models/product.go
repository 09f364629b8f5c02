package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID                int             `gorm:"primaryKey" json:"id"`
	Image             []byte          `json:"image,omitempty"`
	Name              string          `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Detail            string          `gorm:"type:text" json:"detail"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2)" json:"price" validate:"gte=0,lte=99999999.99"`
	AvailableQuantity int             `json:"available_quantity" validate:"gte=0"`
	RegistrationDate  time.Time       `gorm:"autoCreateTime;<-:create" json:"registration_date"`
	Supplier          string          `gorm:"size:100;not null" json:"supplier" validate:"required,max=100"`
	Category          string          `gorm:"size:100;not null" json:"category" validate:"required,max=100"`
	CreatedBy         string          `gorm:"size:100;not null" json:"created_by" validate:"required,max=100"`
	ModifiedBy        string          `gorm:"size:100;not null" json:"modified_by" validate:"required,max=100"`
}
