package employeemock

import (
	"context"

	"gorm.io/gorm"

	domain "payroll-loan-backend/internal/domain/employee"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                     func(ctx context.Context, e *domain.Employee) error
	GetByEmployeeIDFn            func(ctx context.Context, employeeID string) (*domain.Employee, error)
	GetByEmployeeIDWithCompanyFn func(ctx context.Context, employeeID string) (*domain.Employee, error)
	GetByCPFFn                   func(ctx context.Context, cpf string) (*domain.Employee, error)
	GetByEmailFn                 func(ctx context.Context, email string) (*domain.Employee, error)
	ListFn                       func(ctx context.Context) ([]domain.Employee, error)
	SaveFn                       func(ctx context.Context, e *domain.Employee) error
	DeleteFn                     func(ctx context.Context, e *domain.Employee) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Employee) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}
func (m *Repo) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if m.GetByEmployeeIDFn != nil {
		return m.GetByEmployeeIDFn(ctx, employeeID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByEmployeeIDWithCompany(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if m.GetByEmployeeIDWithCompanyFn != nil {
		return m.GetByEmployeeIDWithCompanyFn(ctx, employeeID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByCPF(ctx context.Context, cpf string) (*domain.Employee, error) {
	if m.GetByCPFFn != nil {
		return m.GetByCPFFn(ctx, cpf)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *Repo) List(ctx context.Context) ([]domain.Employee, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, e *domain.Employee) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}
func (m *Repo) Delete(ctx context.Context, e *domain.Employee) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, e)
	}
	return nil
}
