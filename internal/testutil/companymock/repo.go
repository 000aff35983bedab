package companymock

import (
	"context"

	"gorm.io/gorm"

	domain "payroll-loan-backend/internal/domain/company"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, c *domain.Company) error
	GetByCompanyIDFn func(ctx context.Context, companyID string) (*domain.Company, error)
	GetByCNPJFn      func(ctx context.Context, cnpj string) (*domain.Company, error)
	GetByEmailFn     func(ctx context.Context, email string) (*domain.Company, error)
	ListFn           func(ctx context.Context) ([]domain.Company, error)
	SaveFn           func(ctx context.Context, c *domain.Company) error
	DeleteFn         func(ctx context.Context, c *domain.Company) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Company) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetByCompanyID(ctx context.Context, companyID string) (*domain.Company, error) {
	if m.GetByCompanyIDFn != nil {
		return m.GetByCompanyIDFn(ctx, companyID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByCNPJ(ctx context.Context, cnpj string) (*domain.Company, error) {
	if m.GetByCNPJFn != nil {
		return m.GetByCNPJFn(ctx, cnpj)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Company, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *Repo) List(ctx context.Context) ([]domain.Company, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, c *domain.Company) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
func (m *Repo) Delete(ctx context.Context, c *domain.Company) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, c)
	}
	return nil
}
