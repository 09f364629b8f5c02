package models

import (
	"encoding/json"
	"time"
)

// User is an account able to log in. Password holds a bcrypt hash when the
// account was created through registration.
type User struct {
	ID               int       `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Email            string    `gorm:"size:100;not null;index" json:"email" validate:"required,email,max=100"`
	Phone            string    `gorm:"size:15;not null" json:"phone" validate:"required,max=15"`
	Address          string    `gorm:"size:255;not null" json:"address" validate:"required,max=255"`
	RegistrationDate time.Time `gorm:"autoCreateTime;<-:create" json:"registration_date"`
	Password         string    `gorm:"size:255;not null" json:"password" validate:"required,max=255"`
	Role             string    `gorm:"size:100;not null" json:"role" validate:"required,max=100"`
	CreatedBy        string    `gorm:"size:100;not null" json:"created_by" validate:"required,max=100"`
	ModifiedBy       string    `gorm:"size:100;not null" json:"modified_by" validate:"required,max=100"`
}

type userFields User

// MarshalJSON leaves the password out. It is still read from request bodies.
func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		userFields
		Password string `json:"password,omitempty"`
	}{userFields: userFields(u)})
}
