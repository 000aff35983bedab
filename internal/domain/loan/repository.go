package loan

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDWithEmployee preloads the owning employee (and its company).
	GetByLoanIDWithEmployee(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	List(ctx context.Context) ([]Loan, error)
	ListByStatus(ctx context.Context, status Status) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, l *Loan) error

	// TransitionStatus performs a conditional status update: the row changes
	// from -> to only if its current status is exactly `from`. Returns true
	// when exactly one row was affected. This is the guard that keeps two
	// concurrent payment runs from both entering PROCESSING.
	TransitionStatus(ctx context.Context, loanID string, from, to Status) (bool, error)

	// RecordPaymentOutcome sets the terminal status together with the
	// transaction id and raw gateway response in one update.
	RecordPaymentOutcome(ctx context.Context, loanID string, status Status, transactionID, gatewayResponse string) error

	// SumActiveAmountByEmployee totals PENDING and PROCESSING loan amounts,
	// the employee's current payroll-deducted exposure.
	SumActiveAmountByEmployee(ctx context.Context, employeeID string) (decimal.Decimal, error)
}
