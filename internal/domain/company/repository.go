package company

import "context"

type Repository interface {
	Create(ctx context.Context, c *Company) error
	GetByCompanyID(ctx context.Context, companyID string) (*Company, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*Company, error)
	GetByEmail(ctx context.Context, email string) (*Company, error)
	List(ctx context.Context) ([]Company, error)
	Save(ctx context.Context, c *Company) error
	Delete(ctx context.Context, c *Company) error
}
