package employee

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"payroll-loan-backend/internal/domain/company"
	domain "payroll-loan-backend/internal/domain/employee"
	"payroll-loan-backend/pkg/id"
)

var errInvalidSalary = errors.New("salary must be positive")

type CreateEmployeeInput struct {
	Name      string          `json:"name"`
	CPF       string          `json:"cpf"`
	Email     string          `json:"email"`
	Salary    decimal.Decimal `json:"salary"`
	CompanyID string          `json:"company_id"`
	Password  string          `json:"password"`
}

type UpdateEmployeeInput struct {
	Name     *string          `json:"name"`
	CPF      *string          `json:"cpf"`
	Email    *string          `json:"email"`
	Salary   *decimal.Decimal `json:"salary"`
	Password *string          `json:"password"`
}

type EmployeeDTO struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	CPF        string          `json:"cpf"`
	Email      string          `json:"email,omitempty"`
	Salary     decimal.Decimal `json:"salary"`
	CompanyID  string          `json:"company_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func toDTO(e *domain.Employee) *EmployeeDTO {
	return &EmployeeDTO{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		CPF:        e.CPF,
		Email:      e.Email,
		Salary:     e.Salary,
		CompanyID:  e.CompanyID,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

type Usecase struct {
	repo      domain.Repository
	companies company.Repository
	log       zerolog.Logger
}

func NewUsecase(repo domain.Repository, companies company.Repository, log zerolog.Logger) *Usecase {
	return &Usecase{repo: repo, companies: companies, log: log.With().Str("component", "employee_usecase").Logger()}
}

func (u *Usecase) Create(ctx context.Context, in CreateEmployeeInput) (*EmployeeDTO, error) {
	if !in.Salary.IsPositive() {
		return nil, errInvalidSalary
	}

	if _, err := u.repo.GetByCPF(ctx, in.CPF); err == nil {
		return nil, domain.ErrDuplicateCPF
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := u.companies.GetByCompanyID(ctx, in.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, company.ErrNotFound
		}
		return nil, err
	}

	e := &domain.Employee{
		EmployeeID: id.NewID32(),
		Name:       in.Name,
		CPF:        in.CPF,
		Email:      in.Email,
		Salary:     in.Salary,
		CompanyID:  in.CompanyID,
	}
	// Login credential is optional; employees without one cannot self-serve.
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		e.Password = string(hash)
	}

	if err := u.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	u.log.Info().Str("employee_id", e.EmployeeID).Str("company_id", e.CompanyID).Msg("employee registered")
	return toDTO(e), nil
}

func (u *Usecase) Get(ctx context.Context, employeeID string) (*EmployeeDTO, error) {
	e, err := u.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(e), nil
}

func (u *Usecase) List(ctx context.Context) ([]EmployeeDTO, error) {
	employees, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EmployeeDTO, 0, len(employees))
	for i := range employees {
		out = append(out, *toDTO(&employees[i]))
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, employeeID string, in UpdateEmployeeInput) (*EmployeeDTO, error) {
	e, err := u.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if in.CPF != nil && *in.CPF != e.CPF {
		if _, err := u.repo.GetByCPF(ctx, *in.CPF); err == nil {
			return nil, domain.ErrDuplicateCPF
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		e.CPF = *in.CPF
	}
	if in.Salary != nil {
		if !in.Salary.IsPositive() {
			return nil, errInvalidSalary
		}
		e.Salary = *in.Salary
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		e.Password = string(hash)
	}

	if err := u.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	return toDTO(e), nil
}

func (u *Usecase) Delete(ctx context.Context, employeeID string) error {
	e, err := u.repo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.repo.Delete(ctx, e)
}
