package models

import "time"

type Customer struct {
	ID               int       `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Email            string    `gorm:"size:100;not null" json:"email" validate:"required,email,max=100"`
	Phone            string    `gorm:"size:15;not null" json:"phone" validate:"required,max=15"`
	Address          string    `gorm:"size:255;not null" json:"address" validate:"required,max=255"`
	RegistrationDate time.Time `gorm:"autoCreateTime;<-:create" json:"registration_date"`
	CreatedBy        string    `gorm:"size:100;not null" json:"created_by" validate:"required,max=100"`
	ModifiedBy       string    `gorm:"size:100;not null" json:"modified_by" validate:"required,max=100"`
}
