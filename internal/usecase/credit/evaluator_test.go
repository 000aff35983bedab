package credit

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"payroll-loan-backend/internal/domain/company"
	"payroll-loan-backend/internal/domain/employee"
)

type fixedScore int

func (s fixedScore) FetchScore(context.Context, string) int { return int(s) }

// scoreSpy records whether the provider was consulted at all.
type scoreSpy struct {
	called bool
	score  int
}

func (s *scoreSpy) FetchScore(context.Context, string) int {
	s.called = true
	return s.score
}

func emp(salary string) *employee.Employee {
	return &employee.Employee{
		EmployeeID: "e1",
		Name:       "Ana",
		CPF:        "12345678901",
		Salary:     decimal.RequireFromString(salary),
		Company:    &company.Company{IsPartner: true},
	}
}

func TestRequiredScore_Tiers(t *testing.T) {
	cases := []struct {
		salary string
		want   int
	}{
		{"0.01", 400},
		{"1500.00", 400},
		{"2000.00", 400}, // inclusive upper bound
		{"2000.01", 500},
		{"4000.00", 500},
		{"4000.01", 600},
		{"8000.00", 600},
		{"8000.01", 700},
		{"12000.00", 700},
		{"50000.00", 700}, // ceiling never exceeds 700
	}
	for _, tc := range cases {
		got := RequiredScore(decimal.RequireFromString(tc.salary))
		if got != tc.want {
			t.Errorf("RequiredScore(%s) = %d, want %d", tc.salary, got, tc.want)
		}
	}
}

func TestConsignableMargin_Exact(t *testing.T) {
	cases := []struct {
		salary string
		want   string
	}{
		{"5000.00", "1750.00"},
		{"2000.00", "700.00"},
		{"3333.33", "1166.67"}, // 3333.33 * 0.35 = 1166.6655
		{"0.00", "0.00"},
	}
	for _, tc := range cases {
		got := ConsignableMargin(decimal.RequireFromString(tc.salary))
		if got.StringFixed(2) != tc.want {
			t.Errorf("ConsignableMargin(%s) = %s, want %s", tc.salary, got.StringFixed(2), tc.want)
		}
	}
}

func TestEvaluate_ApprovesAtExactMargin(t *testing.T) {
	// Non-strict boundary: amount equal to the margin is allowed.
	ev := NewEvaluator(fixedScore(700), zerolog.Nop())
	d, err := ev.Evaluate(context.Background(), emp("5000.00"), decimal.RequireFromString("1750.00"))
	if err != nil {
		t.Fatalf("Evaluate at exact margin: %v", err)
	}
	if d.MaxConsignable.StringFixed(2) != "1750.00" {
		t.Fatalf("max consignable = %s, want 1750.00", d.MaxConsignable.StringFixed(2))
	}
	if d.Score != 700 || d.RequiredScore != 600 {
		t.Fatalf("decision scores = %d/%d, want 700/600", d.Score, d.RequiredScore)
	}
}

func TestEvaluate_RejectsOneCentOverMargin(t *testing.T) {
	ev := NewEvaluator(fixedScore(700), zerolog.Nop())
	_, err := ev.Evaluate(context.Background(), emp("5000.00"), decimal.RequireFromString("1750.01"))
	var marginErr *ExceedsConsignableMarginError
	if !errors.As(err, &marginErr) {
		t.Fatalf("want ExceedsConsignableMarginError, got %v", err)
	}
	if marginErr.Max.StringFixed(2) != "1750.00" {
		t.Fatalf("error max = %s, want 1750.00", marginErr.Max.StringFixed(2))
	}
	if marginErr.Requested.StringFixed(2) != "1750.01" {
		t.Fatalf("error requested = %s, want 1750.01", marginErr.Requested.StringFixed(2))
	}
}

func TestEvaluate_MarginCheckedBeforeScore(t *testing.T) {
	// Over-margin requests must not consume a score lookup.
	spy := &scoreSpy{score: 700}
	ev := NewEvaluator(spy, zerolog.Nop())
	_, err := ev.Evaluate(context.Background(), emp("5000.00"), decimal.RequireFromString("2000.00"))
	var marginErr *ExceedsConsignableMarginError
	if !errors.As(err, &marginErr) {
		t.Fatalf("want margin error, got %v", err)
	}
	if spy.called {
		t.Fatal("score provider consulted for an over-margin request")
	}
}

func TestEvaluate_InsufficientScore(t *testing.T) {
	// Salary 5000 requires 600; a 500 score is one tier short.
	ev := NewEvaluator(fixedScore(500), zerolog.Nop())
	_, err := ev.Evaluate(context.Background(), emp("5000.00"), decimal.RequireFromString("1000.00"))
	var scoreErr *InsufficientScoreError
	if !errors.As(err, &scoreErr) {
		t.Fatalf("want InsufficientScoreError, got %v", err)
	}
	if scoreErr.Score != 500 || scoreErr.Required != 600 {
		t.Fatalf("error = %d/%d, want 500/600", scoreErr.Score, scoreErr.Required)
	}
}

func TestEvaluate_ScoreAtExactRequired(t *testing.T) {
	ev := NewEvaluator(fixedScore(600), zerolog.Nop())
	d, err := ev.Evaluate(context.Background(), emp("5000.00"), decimal.RequireFromString("1000.00"))
	if err != nil {
		t.Fatalf("Evaluate with score == required: %v", err)
	}
	if !d.PartnerCompany {
		t.Fatal("partner flag should carry through from the company")
	}
}
