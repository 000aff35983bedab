package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Request is the payload submitted to the external payment gateway.
type Request struct {
	LoanID       string
	EmployeeID   string
	EmployeeName string
	CPF          string
	Amount       decimal.Decimal
	Installments int
}

// Result is one finished gateway call. Success=false means the gateway
// answered and rejected the payment; communication failures surface as errors
// from Gateway.ProcessPayment instead.
type Result struct {
	Success       bool
	TransactionID string
	RawResponse   string
	ProcessedAt   time.Time
}

// Gateway drives a payment request through the external processor,
// retrying communication failures internally.
type Gateway interface {
	ProcessPayment(ctx context.Context, req Request) (*Result, error)
}

// GatewayEvent is an opaque gateway callback payload, stored verbatim and
// never interpreted until the real gateway contract is known.
type GatewayEvent struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	EventID    string    `gorm:"column:event_id;type:char(32);not null;uniqueIndex:ux_gateway_events_event_id"`
	LoanID     string    `gorm:"column:loan_id;type:char(32);index:idx_gateway_events_loan"`
	Payload    string    `gorm:"column:payload;type:text;not null"`
	ReceivedAt time.Time `gorm:"column:received_at;autoCreateTime"`
}

func (GatewayEvent) TableName() string { return "gateway_events" }
