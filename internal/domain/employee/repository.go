package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	// GetByEmployeeIDWithCompany preloads the owning company.
	GetByEmployeeIDWithCompany(ctx context.Context, employeeID string) (*Employee, error)
	GetByCPF(ctx context.Context, cpf string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Save(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, e *Employee) error
}
