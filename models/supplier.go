package models

type Supplier struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	ContactName string `gorm:"size:100" json:"contact_name,omitempty" validate:"max=100"`
	Email       string `gorm:"size:100" json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone       string `gorm:"size:15" json:"phone,omitempty" validate:"max=15"`
	Address     string `gorm:"size:255" json:"address,omitempty" validate:"max=255"`
	CreatedBy   string `gorm:"size:100;not null" json:"created_by" validate:"required,max=100"`
	ModifiedBy  string `gorm:"size:100;not null" json:"modified_by" validate:"required,max=100"`
}
