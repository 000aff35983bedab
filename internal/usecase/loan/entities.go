package loan

import (
	"time"

	"github.com/shopspring/decimal"

	domain "payroll-loan-backend/internal/domain/loan"
)

type CreateLoanInput struct {
	EmployeeID   string          `json:"employee_id"`
	Amount       decimal.Decimal `json:"amount"`
	Installments int             `json:"installments"`
}

type UpdateLoanInput struct {
	Amount       *decimal.Decimal `json:"amount"`
	Installments *int             `json:"installments"`
}

type LoanDTO struct {
	LoanID        string          `json:"loan_id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Installments  int             `json:"installments"`
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type ConsignableInfo struct {
	Salary               decimal.Decimal `json:"salary"`
	MaxConsignableAmount decimal.Decimal `json:"max_consignable_amount"`
	CurrentLoansAmount   decimal.Decimal `json:"current_loans_amount"`
	AvailableAmount      decimal.Decimal `json:"available_amount"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	dto := &LoanDTO{
		LoanID:        l.LoanID,
		EmployeeID:    l.EmployeeID,
		Amount:        l.Amount,
		Installments:  l.Installments,
		Status:        string(l.Status),
		TransactionID: l.TransactionID,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
	if l.Employee != nil {
		dto.EmployeeName = l.Employee.Name
	}
	return dto
}
