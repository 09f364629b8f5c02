package models

type Category struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:50;not null" json:"name" validate:"required,max=50"`
	CreatedBy  string `gorm:"size:100;not null" json:"created_by" validate:"required,max=100"`
	ModifiedBy string `gorm:"size:100;not null" json:"modified_by" validate:"required,max=100"`
}
