package payment

import "context"

type EventRepository interface {
	Create(ctx context.Context, ev *GatewayEvent) error
	ListByLoanID(ctx context.Context, loanID string) ([]GatewayEvent, error)
}
