package credit

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"payroll-loan-backend/internal/domain/employee"
)

// marginRate is the regulatory ceiling on payroll-deducted exposure: 35% of salary.
var marginRate = decimal.New(35, -2)

// ScoreProvider is the external credit-score lookup. Implementations never
// fail: provider outages degrade to a fallback score.
type ScoreProvider interface {
	FetchScore(ctx context.Context, cpf string) int
}

// Decision is the approval record for a single evaluated request. It is
// recomputed per request and never persisted.
type Decision struct {
	Amount         decimal.Decimal `json:"amount"`
	MaxConsignable decimal.Decimal `json:"max_consignable"`
	Score          int             `json:"score"`
	RequiredScore  int             `json:"required_score"`
	PartnerCompany bool            `json:"partner_company"`
}

type Evaluator struct {
	scores ScoreProvider
	log    zerolog.Logger
}

func NewEvaluator(scores ScoreProvider, log zerolog.Logger) *Evaluator {
	return &Evaluator{scores: scores, log: log.With().Str("component", "credit_evaluator").Logger()}
}

// RequiredScore maps a salary to the minimum approval score. Tiers are
// inclusive upper bounds; everything above 12000 stays at the 700 ceiling.
func RequiredScore(salary decimal.Decimal) int {
	switch {
	case salary.LessThanOrEqual(decimal.NewFromInt(2000)):
		return 400
	case salary.LessThanOrEqual(decimal.NewFromInt(4000)):
		return 500
	case salary.LessThanOrEqual(decimal.NewFromInt(8000)):
		return 600
	default:
		return 700
	}
}

// ConsignableMargin is the hard ceiling on a requested amount: salary * 0.35.
func ConsignableMargin(salary decimal.Decimal) decimal.Decimal {
	return salary.Mul(marginRate)
}

// Evaluate decides whether the requested amount is creditworthy for the
// employee. The margin is checked before the score is fetched, so an
// over-margin request never hits the score provider. Enforcement considers
// the single requested amount only; cumulative exposure is a separate
// read-only projection.
func (e *Evaluator) Evaluate(ctx context.Context, emp *employee.Employee, amount decimal.Decimal) (*Decision, error) {
	maxConsignable := ConsignableMargin(emp.Salary)
	if amount.GreaterThan(maxConsignable) {
		return nil, &ExceedsConsignableMarginError{Requested: amount, Max: maxConsignable, Salary: emp.Salary}
	}

	score := e.scores.FetchScore(ctx, emp.CPF)
	required := RequiredScore(emp.Salary)
	if score < required {
		return nil, &InsufficientScoreError{Score: score, Required: required, Salary: emp.Salary}
	}

	partner := emp.Company != nil && emp.Company.IsPartner
	e.log.Info().
		Str("employee_id", emp.EmployeeID).
		Str("amount", amount.StringFixed(2)).
		Str("max_consignable", maxConsignable.StringFixed(2)).
		Int("score", score).
		Int("required_score", required).
		Msg("credit approved")

	return &Decision{
		Amount:         amount,
		MaxConsignable: maxConsignable,
		Score:          score,
		RequiredScore:  required,
		PartnerCompany: partner,
	}, nil
}
