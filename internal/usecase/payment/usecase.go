package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domainloan "payroll-loan-backend/internal/domain/loan"
	domain "payroll-loan-backend/internal/domain/payment"
	"payroll-loan-backend/pkg/id"
)

type Usecase struct {
	loans   domainloan.Repository
	events  domain.EventRepository
	gateway domain.Gateway
	log     zerolog.Logger
}

func NewUsecase(loans domainloan.Repository, events domain.EventRepository, gw domain.Gateway, log zerolog.Logger) *Usecase {
	return &Usecase{
		loans:   loans,
		events:  events,
		gateway: gw,
		log:     log.With().Str("component", "payment_usecase").Logger(),
	}
}

// ProcessPayment drives a PENDING loan through the gateway. The
// PENDING->PROCESSING step is a conditional update affecting exactly one row,
// so of two concurrent calls only one reaches the gateway; the other observes
// a non-PENDING status and fails fast without touching anything.
func (u *Usecase) ProcessPayment(ctx context.Context, loanID string) (*ProcessResult, error) {
	l, err := u.loans.GetByLoanIDWithEmployee(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainloan.ErrNotFound
		}
		return nil, err
	}

	ok, err := u.loans.TransitionStatus(ctx, loanID, domainloan.StatusPending, domainloan.StatusProcessing)
	if err != nil {
		return nil, err
	}
	if !ok {
		cur, err := u.loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return nil, err
		}
		return nil, &domain.LoanAlreadyProcessedError{LoanID: loanID, Status: string(cur.Status)}
	}

	u.log.Info().Str("loan_id", loanID).Msg("loan transitioned to PROCESSING")

	req := domain.Request{
		LoanID:       l.LoanID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.Employee.Name,
		CPF:          l.Employee.CPF,
		Amount:       l.Amount,
		Installments: l.Installments,
	}

	result, err := u.gateway.ProcessPayment(ctx, req)
	if err != nil {
		if _, ferr := u.loans.TransitionStatus(ctx, loanID, domainloan.StatusProcessing, domainloan.StatusFailed); ferr != nil {
			u.log.Error().Err(ferr).Str("loan_id", loanID).Msg("could not mark loan FAILED")
		}
		u.log.Error().Err(err).Str("loan_id", loanID).Msg("payment processing failed, loan marked FAILED")
		return nil, &domain.ProcessingError{LoanID: loanID, Reason: err.Error()}
	}

	final := domainloan.StatusRejected
	msg := "payment rejected by gateway"
	if result.Success {
		final = domainloan.StatusApproved
		msg = "payment approved"
	}
	if err := u.loans.RecordPaymentOutcome(ctx, loanID, final, result.TransactionID, result.RawResponse); err != nil {
		return nil, err
	}

	u.log.Info().
		Str("loan_id", loanID).
		Str("status", string(final)).
		Str("transaction_id", result.TransactionID).
		Msg("payment processing finished")

	return &ProcessResult{
		LoanID:          loanID,
		Status:          string(final),
		TransactionID:   result.TransactionID,
		Message:         msg,
		ProcessedAt:     result.ProcessedAt,
		GatewayResponse: json.RawMessage(result.RawResponse),
	}, nil
}

// RetryFailedPayment resets a FAILED loan to PENDING and re-enters the normal
// processing flow. Loans in any other status are left untouched.
func (u *Usecase) RetryFailedPayment(ctx context.Context, loanID string) (*ProcessResult, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainloan.ErrNotFound
		}
		return nil, err
	}
	if l.Status != domainloan.StatusFailed {
		return nil, &domain.ProcessingError{
			LoanID: loanID,
			Reason: fmt.Sprintf("loan is not FAILED, current status %s; only FAILED loans can be retried", l.Status),
		}
	}

	ok, err := u.loans.TransitionStatus(ctx, loanID, domainloan.StatusFailed, domainloan.StatusPending)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.ProcessingError{LoanID: loanID, Reason: "loan status changed concurrently, retry aborted"}
	}

	u.log.Info().Str("loan_id", loanID).Msg("FAILED loan reset to PENDING for retry")
	return u.ProcessPayment(ctx, loanID)
}

func (u *Usecase) GetPaymentStatus(ctx context.Context, loanID string) (*StatusInfo, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainloan.ErrNotFound
		}
		return nil, err
	}
	return &StatusInfo{LoanID: l.LoanID, Status: string(l.Status), LastUpdate: l.UpdatedAt}, nil
}

func (u *Usecase) GetLoansByStatus(ctx context.Context, rawStatus string) ([]StatusLoan, error) {
	status, err := domainloan.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]StatusLoan, 0, len(loans))
	for i := range loans {
		out = append(out, toStatusLoan(&loans[i]))
	}
	return out, nil
}

// HandleWebhook stores a gateway callback verbatim. The payload is opaque
// until the real gateway contract is known; only a loan_id hint is lifted
// out for indexing, nothing else is interpreted.
func (u *Usecase) HandleWebhook(ctx context.Context, payload []byte) (string, error) {
	var hint struct {
		LoanID string `json:"loan_id"`
	}
	_ = json.Unmarshal(payload, &hint)

	ev := &domain.GatewayEvent{
		EventID: id.NewID32(),
		LoanID:  hint.LoanID,
		Payload: string(payload),
	}
	if err := u.events.Create(ctx, ev); err != nil {
		return "", err
	}

	u.log.Info().
		Str("event_id", ev.EventID).
		Str("loan_id", hint.LoanID).
		Int("payload_bytes", len(payload)).
		Msg("gateway webhook stored")
	return ev.EventID, nil
}
