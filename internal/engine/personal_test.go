package engine

import (
	"strings"
	"testing"

	"github.com/shouldirefi/refi-advisor/pkg/mathutil"
)

func TestPersonalLoanRefinanceHighConfidence(t *testing.T) {
	// 15% -> 9% is the kind of drop that justifies a personal loan refi.
	result, err := PersonalLoanRefinance(RefinanceInput{
		LoanBalance:     10000,
		CurrentRate:     15,
		MonthsRemaining: 36,
		NewRate:         9,
		NewTermMonths:   36,
		RefinanceFees:   150,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Decision != DecisionYes || result.Confidence != ConfidenceHigh {
		t.Errorf("expected yes/high, got %s/%s", result.Decision, result.Confidence)
	}
	if !mathutil.WithinTolerance(result.NetSavings, 860, 10) {
		t.Errorf("net savings = %v, expected about 860", result.NetSavings)
	}
	if !strings.Contains(result.Reasons[0], "You'll save") {
		t.Errorf("unexpected reason: %q", result.Reasons[0])
	}
}

func TestPersonalLoanRefinanceMediumConfidence(t *testing.T) {
	// A 1.8% drop with modest savings lands in the medium tier.
	result, err := PersonalLoanRefinance(RefinanceInput{
		LoanBalance:     10000,
		CurrentRate:     13,
		MonthsRemaining: 30,
		NewRate:         11.2,
		NewTermMonths:   30,
		RefinanceFees:   50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Decision != DecisionYes || result.Confidence != ConfidenceMedium {
		t.Errorf("expected yes/medium, got %s/%s", result.Decision, result.Confidence)
	}
}

func TestPersonalLoanRefinanceNoSavings(t *testing.T) {
	result, err := PersonalLoanRefinance(RefinanceInput{
		LoanBalance:     10000,
		CurrentRate:     9,
		MonthsRemaining: 36,
		NewRate:         12,
		NewTermMonths:   36,
		RefinanceFees:   100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Decision != DecisionNo || result.Confidence != ConfidenceHigh {
		t.Errorf("expected no/high, got %s/%s", result.Decision, result.Confidence)
	}
	if !strings.Contains(result.Reasons[0], "cost you more") {
		t.Errorf("unexpected reason: %q", result.Reasons[0])
	}
}

func TestPersonalLoanRefinanceRateDifferenceTooSmall(t *testing.T) {
	// 0.8% drop: positive savings but below the 1% personal loan bar.
	result, err := PersonalLoanRefinance(RefinanceInput{
		LoanBalance:     10000,
		CurrentRate:     10,
		MonthsRemaining: 36,
		NewRate:         9.2,
		NewTermMonths:   36,
		RefinanceFees:   20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Decision != DecisionNo || result.Confidence != ConfidenceMedium {
		t.Errorf("expected no/medium, got %s/%s", result.Decision, result.Confidence)
	}
	if !strings.Contains(result.Reasons[0], "too small for a personal loan") {
		t.Errorf("unexpected reason: %q", result.Reasons[0])
	}
}

func TestPersonalLoanRefinanceTermExtensionNote(t *testing.T) {
	result, err := PersonalLoanRefinance(RefinanceInput{
		LoanBalance:     10000,
		CurrentRate:     15,
		MonthsRemaining: 36,
		NewRate:         9,
		NewTermMonths:   48,
		RefinanceFees:   150,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Decision != DecisionYes {
		t.Fatalf("expected yes, got %s", result.Decision)
	}
	last := result.Reasons[len(result.Reasons)-1]
	if !strings.Contains(last, "New term is longer (48 vs 36 months)") {
		t.Errorf("expected term extension note, got %q", last)
	}
}

func TestPersonalLoanRefinanceValidation(t *testing.T) {
	_, err := PersonalLoanRefinance(RefinanceInput{
		CurrentRate:     15,
		MonthsRemaining: 36,
		NewRate:         9,
		NewTermMonths:   36,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "loanBalance") {
		t.Errorf("unexpected error: %v", err)
	}
}
