package credit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExceedsConsignableMarginError rejects a request above 35% of salary.
// Carries the numbers so callers can explain the decision.
type ExceedsConsignableMarginError struct {
	Requested decimal.Decimal
	Max       decimal.Decimal
	Salary    decimal.Decimal
}

func (e *ExceedsConsignableMarginError) Error() string {
	return fmt.Sprintf("requested amount %s exceeds the consignable margin of 35%% of salary; maximum allowed %s (salary %s)",
		e.Requested.StringFixed(2), e.Max.StringFixed(2), e.Salary.StringFixed(2))
}

// InsufficientScoreError rejects a request below the salary tier's bar.
type InsufficientScoreError struct {
	Score    int
	Required int
	Salary   decimal.Decimal
}

func (e *InsufficientScoreError) Error() string {
	return fmt.Sprintf("insufficient credit score: current %d, required %d (salary %s)",
		e.Score, e.Required, e.Salary.StringFixed(2))
}
