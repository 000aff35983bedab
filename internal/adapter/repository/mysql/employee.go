package mysql

import (
	"context"

	"gorm.io/gorm"

	employeeDomain "payroll-loan-backend/internal/domain/employee"
)

type EmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{db: db} }

func (r *EmployeeRepository) Create(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EmployeeRepository) Save(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EmployeeRepository) Delete(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Delete(e).Error
}

func (r *EmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) GetByEmployeeIDWithCompany(ctx context.Context, employeeID string) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Preload("Company").Where("employee_id = ?", employeeID).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) GetByCPF(ctx context.Context, cpf string) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employeeDomain.Employee, error) {
	var out []employeeDomain.Employee
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}
