package payment

import "fmt"

// LoanAlreadyProcessedError guards at-most-once processing per PENDING entry.
type LoanAlreadyProcessedError struct {
	LoanID string
	Status string
}

func (e *LoanAlreadyProcessedError) Error() string {
	return fmt.Sprintf("loan %s already processed, current status %s; only PENDING loans can be processed", e.LoanID, e.Status)
}

// ProcessingError wraps a gateway/communication failure; the loan is marked
// FAILED and can be retried explicitly.
type ProcessingError struct {
	LoanID string
	Reason string
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("payment processing failed for loan %s: %s", e.LoanID, e.Reason)
}
