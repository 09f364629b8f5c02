package repository

import (
	"gorm.io/gorm"

	"sgo/models"
)

func NewCategoryRepository(db *gorm.DB) *GormRepository[models.Category, int] {
	return New(db, IntKey(func(c *models.Category) int { return c.ID }))
}

func NewCustomerRepository(db *gorm.DB) *GormRepository[models.Customer, int] {
	return New(db, IntKey(func(c *models.Customer) int { return c.ID }))
}

func NewOrderRepository(db *gorm.DB) *GormRepository[models.Order, int] {
	return New(db, IntKey(func(o *models.Order) int { return o.ID }))
}

func NewProductRepository(db *gorm.DB) *GormRepository[models.Product, int] {
	return New(db, IntKey(func(p *models.Product) int { return p.ID }))
}

func NewSupplierRepository(db *gorm.DB) *GormRepository[models.Supplier, int] {
	return New(db, IntKey(func(s *models.Supplier) int { return s.ID }))
}
