package employee

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("employee not found")
	ErrInvalidCredentials = errors.New("invalid employee id or password")
)

type Employee struct {
	ID           uint64    `gorm:"primaryKey;column:employee_id" json:"employee_id"`
	BranchID     uint64    `gorm:"column:branch_id;index" json:"branch_id"`
	Name         string    `gorm:"column:name;size:128" json:"name"`
	Role         string    `gorm:"column:role;size:32" json:"role"`
	Email        string    `gorm:"column:email;size:128" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:128" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Employee) TableName() string { return "employees" }
