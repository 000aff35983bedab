package mysql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "payroll-loan-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) Delete(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Delete(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDWithEmployee(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Preload("Employee").Preload("Employee.Company").
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Preload("Employee").Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByStatus(ctx context.Context, status loanDomain.Status) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Preload("Employee").
		Where("status = ?", status).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// TransitionStatus is the compare-and-swap on the status column: the UPDATE
// carries the expected current status in its WHERE clause, so of two racing
// callers only one sees an affected row.
func (r *LoanRepository) TransitionStatus(ctx context.Context, loanID string, from, to loanDomain.Status) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("loan_id = ? AND status = ?", loanID, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *LoanRepository) RecordPaymentOutcome(ctx context.Context, loanID string, status loanDomain.Status, transactionID, gatewayResponse string) error {
	return r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("loan_id = ?", loanID).
		Updates(map[string]any{
			"status":           status,
			"transaction_id":   transactionID,
			"gateway_response": gatewayResponse,
			"updated_at":       time.Now().UTC(),
		}).Error
}

func (r *LoanRepository) SumActiveAmountByEmployee(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	var raw *string
	err := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Select("CAST(SUM(amount) AS CHAR)").
		Where("employee_id = ? AND status IN ?", employeeID, []loanDomain.Status{loanDomain.StatusPending, loanDomain.StatusProcessing}).
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	if raw == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*raw)
}
