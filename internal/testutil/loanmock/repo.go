package loanmock

import (
	"context"

	"github.com/shopspring/decimal"

	domain "payroll-loan-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                    func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn               func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDWithEmployeeFn   func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn      func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListFn                      func(ctx context.Context) ([]domain.Loan, error)
	ListByStatusFn              func(ctx context.Context, status domain.Status) ([]domain.Loan, error)
	SaveFn                      func(ctx context.Context, l *domain.Loan) error
	DeleteFn                    func(ctx context.Context, l *domain.Loan) error
	TransitionStatusFn          func(ctx context.Context, loanID string, from, to domain.Status) (bool, error)
	RecordPaymentOutcomeFn      func(ctx context.Context, loanID string, status domain.Status, transactionID, gatewayResponse string) error
	SumActiveAmountByEmployeeFn func(ctx context.Context, employeeID string) (decimal.Decimal, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLoanIDWithEmployee(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDWithEmployeeFn != nil {
		return m.GetByLoanIDWithEmployeeFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
func (m *Repo) Delete(ctx context.Context, l *domain.Loan) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, l)
	}
	return nil
}
func (m *Repo) TransitionStatus(ctx context.Context, loanID string, from, to domain.Status) (bool, error) {
	if m.TransitionStatusFn != nil {
		return m.TransitionStatusFn(ctx, loanID, from, to)
	}
	return true, nil
}
func (m *Repo) RecordPaymentOutcome(ctx context.Context, loanID string, status domain.Status, transactionID, gatewayResponse string) error {
	if m.RecordPaymentOutcomeFn != nil {
		return m.RecordPaymentOutcomeFn(ctx, loanID, status, transactionID, gatewayResponse)
	}
	return nil
}
func (m *Repo) SumActiveAmountByEmployee(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	if m.SumActiveAmountByEmployeeFn != nil {
		return m.SumActiveAmountByEmployeeFn(ctx, employeeID)
	}
	return decimal.Zero, nil
}
