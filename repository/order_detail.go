package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sgo/models"
)

// OrderDetailKey is the composite key of an order line item.
type OrderDetailKey struct {
	OrderID   int
	ProductID int
}

func (k OrderDetailKey) String() string {
	return fmt.Sprintf("(%d, %d)", k.OrderID, k.ProductID)
}

var orderDetailKeys = KeySpec[models.OrderDetail, OrderDetailKey]{
	Extract: func(d *models.OrderDetail) OrderDetailKey {
		return OrderDetailKey{OrderID: d.OrderID, ProductID: d.ProductID}
	},
	Match: func(k OrderDetailKey) func(*gorm.DB) *gorm.DB {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("order_id = ? AND product_id = ?", k.OrderID, k.ProductID)
		}
	},
}

// OrderDetailRepository adds per-order listing to the generic line item
// repository.
type OrderDetailRepository struct {
	*GormRepository[models.OrderDetail, OrderDetailKey]
}

func NewOrderDetailRepository(db *gorm.DB) *OrderDetailRepository {
	return &OrderDetailRepository{New(db, orderDetailKeys)}
}

// GetOrderDetails returns every line item of orderID in no particular order.
func (r *OrderDetailRepository) GetOrderDetails(ctx context.Context, orderID int) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&details).Error; err != nil {
		return nil, fmt.Errorf("get details of order %d: %w", orderID, err)
	}
	return details, nil
}
