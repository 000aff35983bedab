package payment

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	domainloan "payroll-loan-backend/internal/domain/loan"
)

type ProcessResult struct {
	LoanID          string          `json:"loan_id"`
	Status          string          `json:"status"`
	TransactionID   string          `json:"transaction_id,omitempty"`
	Message         string          `json:"message"`
	ProcessedAt     time.Time       `json:"processed_at"`
	GatewayResponse json.RawMessage `json:"gateway_response,omitempty"`
}

type StatusInfo struct {
	LoanID     string    `json:"loan_id"`
	Status     string    `json:"status"`
	LastUpdate time.Time `json:"last_update"`
}

type StatusLoan struct {
	LoanID       string          `json:"loan_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	CPF          string          `json:"cpf,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Installments int             `json:"installments"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toStatusLoan(l *domainloan.Loan) StatusLoan {
	out := StatusLoan{
		LoanID:       l.LoanID,
		Amount:       l.Amount,
		Installments: l.Installments,
		Status:       string(l.Status),
		CreatedAt:    l.CreatedAt,
	}
	if l.Employee != nil {
		out.EmployeeName = l.Employee.Name
		out.CPF = l.Employee.CPF
	}
	return out
}
