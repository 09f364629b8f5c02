package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultOrderDetailNotes is stored when a line item is saved without notes.
const DefaultOrderDetailNotes = "Sin notas"

// OrderDetail is one line item of an order, keyed by (OrderID, ProductID).
type OrderDetail struct {
	OrderID                  int             `gorm:"primaryKey;autoIncrement:false" json:"order_id" validate:"gt=0"`
	ProductID                int             `gorm:"primaryKey;autoIncrement:false" json:"product_id" validate:"gt=0"`
	ProductName              string          `gorm:"size:100;not null" json:"product_name" validate:"required,max=100"`
	Status                   string          `gorm:"size:100;not null" json:"status" validate:"required,max=100"`
	Notes                    string          `gorm:"type:text" json:"notes"`
	ProductRequestedQuantity int             `json:"product_requested_quantity" validate:"gt=0"`
	ProductPrice             decimal.Decimal `gorm:"type:decimal(10,2)" json:"product_price" validate:"gte=0,lte=99999999.99"`
	Subtotal                 decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal" validate:"gte=0,lte=99999999.99"`
	Discount                 decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount" validate:"gte=0,lte=99999999.99"`
	Tax                      decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax" validate:"gte=0,lte=99999999.99"`
	Total                    decimal.Decimal `gorm:"type:decimal(10,2)" json:"total" validate:"gte=0,lte=99999999.99"`
	CreatedBy                string          `gorm:"size:100;not null" json:"created_by" validate:"required,max=100"`
	ModifiedBy               string          `gorm:"size:100;not null" json:"modified_by" validate:"required,max=100"`
}

func (d *OrderDetail) BeforeCreate(tx *gorm.DB) error {
	if d.Notes == "" {
		d.Notes = DefaultOrderDetailNotes
	}
	return nil
}
