package gatewaymock

import (
	"context"

	"payroll-loan-backend/internal/domain/payment"
)

var _ payment.Gateway = (*Gateway)(nil)

// Gateway is a function-backed mock that satisfies payment.Gateway.
type Gateway struct {
	ProcessPaymentFn func(ctx context.Context, req payment.Request) (*payment.Result, error)
}

func (m *Gateway) ProcessPayment(ctx context.Context, req payment.Request) (*payment.Result, error) {
	if m.ProcessPaymentFn != nil {
		return m.ProcessPaymentFn(ctx, req)
	}
	return nil, context.Canceled
}

// EventRepo is a function-backed mock that satisfies payment.EventRepository.
type EventRepo struct {
	CreateFn       func(ctx context.Context, ev *payment.GatewayEvent) error
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]payment.GatewayEvent, error)
}

func (m *EventRepo) Create(ctx context.Context, ev *payment.GatewayEvent) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ev)
	}
	return nil
}
func (m *EventRepo) ListByLoanID(ctx context.Context, loanID string) ([]payment.GatewayEvent, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}
