package branch

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("branch not found")

type Branch struct {
	ID         uint64    `gorm:"primaryKey;column:branch_id" json:"branch_id"`
	BranchName string    `gorm:"column:branch_name;size:128" json:"branch_name"`
	IFSCCode   string    `gorm:"column:ifsc_code;size:16;uniqueIndex" json:"ifsc_code"`
	City       string    `gorm:"column:city;size:64" json:"city"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Branch) TableName() string { return "branches" }
