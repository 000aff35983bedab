package loan

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"payroll-loan-backend/internal/domain/employee"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
	StatusFailed     Status = "FAILED"
)

// Terminal reports whether no further payment processing is permitted.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusProcessing, StatusApproved, StatusRejected, StatusFailed:
		return Status(raw), nil
	}
	return "", fmt.Errorf("unknown loan status %q", raw)
}

type Loan struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	LoanID     string `gorm:"column:loan_id;type:char(32);not null;uniqueIndex:ux_loans_loan_id"`
	EmployeeID string `gorm:"column:employee_id;type:char(32);not null;index:idx_loans_employee"`
	// Requested amount, exact decimal
	Amount decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null"`
	// 1..4 inclusive
	Installments int    `gorm:"column:installments;not null"`
	Status       Status `gorm:"column:status;type:enum('PENDING','PROCESSING','APPROVED','REJECTED','FAILED');default:'PENDING';index:idx_loans_status"`
	// Set on terminal gateway outcome
	TransactionID   string    `gorm:"column:transaction_id;size:64"`
	GatewayResponse string    `gorm:"column:gateway_response;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}

func (Loan) TableName() string { return "loans" }
