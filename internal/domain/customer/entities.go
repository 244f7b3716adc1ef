package customer

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("customer not found")
	ErrInvalidCredentials = errors.New("invalid mobile number or password")
)

type Customer struct {
	ID           uint64     `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	FirstName    string     `gorm:"column:first_name;size:64" json:"first_name"`
	LastName     string     `gorm:"column:last_name;size:64" json:"last_name"`
	DOB          *time.Time `gorm:"column:dob" json:"dob,omitempty"`
	Email        string     `gorm:"column:email;size:128;index" json:"email"`
	Mobile       string     `gorm:"column:mobile;size:16;uniqueIndex" json:"mobile"`
	Address      string     `gorm:"column:address;type:text" json:"address"`
	PasswordHash string     `gorm:"column:password_hash;size:128" json:"-"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }
