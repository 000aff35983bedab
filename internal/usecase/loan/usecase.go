package loan

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"payroll-loan-backend/internal/domain/auth"
	"payroll-loan-backend/internal/domain/employee"
	domain "payroll-loan-backend/internal/domain/loan"
	"payroll-loan-backend/internal/domain/uow"
	"payroll-loan-backend/internal/usecase/credit"
	"payroll-loan-backend/pkg/id"
)

var errInvalidInput = errors.New("invalid input: amount must be positive and installments between 1 and 4")

type Usecase struct {
	loans     domain.Repository
	employees employee.Repository
	evaluator *credit.Evaluator
	uow       uow.UnitOfWork
	log       zerolog.Logger
}

func NewUsecase(loans domain.Repository, employees employee.Repository, evaluator *credit.Evaluator, tx uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{
		loans:     loans,
		employees: employees,
		evaluator: evaluator,
		uow:       tx,
		log:       log.With().Str("component", "loan_usecase").Logger(),
	}
}

// Create gates loan creation on eligibility and credit rules, then persists
// the loan as PENDING. Payment runs separately so this call stays fast and
// the fallible gateway call happens on demand.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput, actor auth.User) (*LoanDTO, error) {
	if !in.Amount.IsPositive() || in.Installments < 1 || in.Installments > 4 {
		return nil, errInvalidInput
	}

	emp, err := u.employees.GetByEmployeeIDWithCompany(ctx, in.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}
	if emp.Company == nil || !emp.Company.IsPartner {
		name := ""
		if emp.Company != nil {
			name = emp.Company.Name
		}
		return nil, &domain.CompanyNotPartnerError{CompanyName: name}
	}

	// Employee-role actors may only borrow for themselves, against their own
	// company; defends against stale or forged tokens.
	if actor.UserType == auth.UserTypeEmployee {
		if actor.ID != emp.EmployeeID {
			return nil, domain.ErrEmployeeNotAuthorized
		}
		if actor.CompanyID != emp.CompanyID {
			return nil, domain.ErrEmployeeCompanyMismatch
		}
	}

	if _, err := u.evaluator.Evaluate(ctx, emp, in.Amount); err != nil {
		return nil, err
	}

	l := &domain.Loan{
		LoanID:       id.NewID32(),
		EmployeeID:   emp.EmployeeID,
		Amount:       in.Amount,
		Installments: in.Installments,
		Status:       domain.StatusPending,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}

	u.log.Info().
		Str("loan_id", l.LoanID).
		Str("employee_id", emp.EmployeeID).
		Str("amount", in.Amount.StringFixed(2)).
		Msg("loan created as PENDING")

	l.Employee = emp
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanIDWithEmployee(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	loans, err := u.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *toDTO(&loans[i]))
	}
	return out, nil
}

// Update edits amount/installments of a PENDING loan under a row lock.
func (u *Usecase) Update(ctx context.Context, loanID string, in UpdateLoanInput) (*LoanDTO, error) {
	if in.Amount != nil && !in.Amount.IsPositive() {
		return nil, errInvalidInput
	}
	if in.Installments != nil && (*in.Installments < 1 || *in.Installments > 4) {
		return nil, errInvalidInput
	}

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusPending {
			return domain.ErrLoanNotEditable
		}
		if in.Amount != nil {
			l.Amount = *in.Amount
		}
		if in.Installments != nil {
			l.Installments = *in.Installments
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Delete(ctx context.Context, loanID string) error {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.loans.Delete(ctx, l)
}

// GetConsignableInfo is a read-only projection of the employee's margin
// against current active (PENDING/PROCESSING) exposure, floored at zero.
// It is display data, not the creation-time enforcement check.
func (u *Usecase) GetConsignableInfo(ctx context.Context, employeeID string) (*ConsignableInfo, error) {
	emp, err := u.employees.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employee.ErrNotFound
		}
		return nil, err
	}

	active, err := u.loans.SumActiveAmountByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	margin := credit.ConsignableMargin(emp.Salary)
	available := margin.Sub(active)
	if available.IsNegative() {
		available = decimal.Zero
	}

	return &ConsignableInfo{
		Salary:               emp.Salary,
		MaxConsignableAmount: margin,
		CurrentLoansAmount:   active,
		AvailableAmount:      available,
	}, nil
}
