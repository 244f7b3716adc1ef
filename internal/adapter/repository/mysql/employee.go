package mysql

import (
	empDomain "bankbase/internal/domain/employee"
	"context"

	"gorm.io/gorm"
)

type EmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{db: db} }

func (r *EmployeeRepository) GetByID(ctx context.Context, employeeID uint64) (*empDomain.Employee, error) {
	var out empDomain.Employee
	res := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&out)
	return &out, res.Error
}
