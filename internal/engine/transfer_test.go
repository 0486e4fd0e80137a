package engine

import (
	"strings"
	"testing"

	"github.com/shouldirefi/refi-advisor/pkg/mathutil"
)

func TestBalanceTransferRemainingBalanceAfterPromo(t *testing.T) {
	// 5000 at 22% transferred to an 18-month 0% promo with a 3% fee. The 200
	// payment clears 3600 during the promo, leaving 1550 to pay down at the
	// reverted rate.
	result, err := BalanceTransfer(BalanceTransferInput{
		Balance:            5000,
		CurrentAPR:         22,
		TransferAPR:        0,
		TransferFeePercent: 3,
		PromoMonths:        18,
		MonthlyPayment:     200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Decision != DecisionYes || result.Confidence != ConfidenceMedium {
		t.Errorf("expected yes/medium, got %s/%s", result.Decision, result.Confidence)
	}
	if !mathutil.WithinTolerance(result.TransferFeeAmount, 150, 0.01) {
		t.Errorf("transfer fee = %v, expected 150", result.TransferFeeAmount)
	}
	if result.InterestDuringPromo != 0 {
		t.Errorf("expected zero promo interest at 0%%, got %v", result.InterestDuringPromo)
	}
	if result.CanPayOffInPromo {
		t.Error("expected remaining balance after promo")
	}
	if result.MonthsToPayoff != 27 {
		t.Errorf("months to payoff = %d, expected 27", result.MonthsToPayoff)
	}
	if !mathutil.WithinTolerance(result.TotalSavings, 1456, 15) {
		t.Errorf("total savings = %v, expected about 1456", result.TotalSavings)
	}
	if !strings.Contains(result.Reasons[1], "remaining after promo period") {
		t.Errorf("unexpected reason: %q", result.Reasons[1])
	}

	// Both advisory tips apply: a 0% promo of a year or more, and a payment
	// short of clearing the balance in time.
	last := result.Reasons[len(result.Reasons)-1]
	if !strings.Contains(last, "pay $286.11/month") {
		t.Errorf("expected needed payment tip, got %q", last)
	}
}

func TestBalanceTransferPayOffInPromo(t *testing.T) {
	// 300/month clears the fee-inflated 3090 in 11 months, well inside the
	// promo window.
	result, err := BalanceTransfer(BalanceTransferInput{
		Balance:            3000,
		CurrentAPR:         22,
		TransferAPR:        0,
		TransferFeePercent: 3,
		PromoMonths:        18,
		MonthlyPayment:     300,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Decision != DecisionYes || result.Confidence != ConfidenceHigh {
		t.Errorf("expected yes/high, got %s/%s", result.Decision, result.Confidence)
	}
	if !result.CanPayOffInPromo {
		t.Error("expected payoff within promo")
	}
	if result.MonthsToPayoff != 11 {
		t.Errorf("months to payoff = %d, expected 11", result.MonthsToPayoff)
	}
	if !strings.Contains(result.Reasons[0], "pay off the balance during the 18-month promo") {
		t.Errorf("unexpected reason: %q", result.Reasons[0])
	}
}

func TestBalanceTransferPaymentBelowInterest(t *testing.T) {
	// 5000 at 30% accrues 125 of interest in the first month; a 100 payment
	// never touches principal.
	result, err := BalanceTransfer(BalanceTransferInput{
		Balance:            5000,
		CurrentAPR:         30,
		TransferAPR:        0,
		TransferFeePercent: 3,
		PromoMonths:        12,
		MonthlyPayment:     100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Decision != DecisionMaybe || result.Confidence != ConfidenceLow {
		t.Errorf("expected maybe/low, got %s/%s", result.Decision, result.Confidence)
	}
	if !strings.Contains(result.Reasons[0], "doesn't cover the interest") {
		t.Errorf("unexpected reason: %q", result.Reasons[0])
	}
	if result.TotalInterestWithoutTransfer != 0 || result.TotalSavings != 0 {
		t.Errorf("expected zeroed baseline figures, got %v / %v",
			result.TotalInterestWithoutTransfer, result.TotalSavings)
	}
}

func TestBalanceTransferFeeNegatesSavings(t *testing.T) {
	// A small balance that is nearly paid off anyway: the 5% fee plus a 14%
	// promo rate costs more than staying put.
	result, err := BalanceTransfer(BalanceTransferInput{
		Balance:            2000,
		CurrentAPR:         16,
		TransferAPR:        14,
		TransferFeePercent: 5,
		PromoMonths:        6,
		MonthlyPayment:     300,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Decision != DecisionNo || result.Confidence != ConfidenceHigh {
		t.Errorf("expected no/high, got %s/%s", result.Decision, result.Confidence)
	}
	if result.TotalSavings >= 0 {
		t.Errorf("expected negative savings, got %v", result.TotalSavings)
	}
	if !strings.Contains(result.Reasons[0], "negates any interest savings") {
		t.Errorf("unexpected reason: %q", result.Reasons[0])
	}
}

func TestBalanceTransferHighFeeWithoutPayoff(t *testing.T) {
	// Savings land under 200 while the 5% fee and short promo leave a large
	// post-promo balance.
	result, err := BalanceTransfer(BalanceTransferInput{
		Balance:            6000,
		CurrentAPR:         18,
		TransferAPR:        8,
		TransferFeePercent: 5,
		PromoMonths:        6,
		MonthlyPayment:     250,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Decision != DecisionNo || result.Confidence != ConfidenceMedium {
		t.Errorf("expected no/medium, got %s/%s", result.Decision, result.Confidence)
	}
	if !strings.Contains(result.Reasons[0], "High transfer fee") {
		t.Errorf("unexpected reason: %q", result.Reasons[0])
	}
}

func TestBalanceTransferBorderline(t *testing.T) {
	// A nearly-paid-off card: the transfer works but saves almost nothing.
	result, err := BalanceTransfer(BalanceTransferInput{
		Balance:            1000,
		CurrentAPR:         10,
		TransferAPR:        0,
		TransferFeePercent: 2,
		PromoMonths:        12,
		MonthlyPayment:     200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Decision != DecisionMaybe || result.Confidence != ConfidenceLow {
		t.Errorf("expected maybe/low, got %s/%s", result.Decision, result.Confidence)
	}
	if !result.CanPayOffInPromo {
		t.Error("expected payoff within promo")
	}
	if !strings.Contains(result.Reasons[0], "borderline") {
		t.Errorf("unexpected reason: %q", result.Reasons[0])
	}
	last := result.Reasons[len(result.Reasons)-1]
	if !strings.Contains(last, "0% APR offers are excellent") {
		t.Errorf("expected 0%% promo tip, got %q", last)
	}
}

func TestBalanceTransferAccounting(t *testing.T) {
	result, err := BalanceTransfer(BalanceTransferInput{
		Balance:            5000,
		CurrentAPR:         22,
		TransferAPR:        0,
		TransferFeePercent: 3,
		PromoMonths:        18,
		MonthlyPayment:     200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCost := result.TransferFeeAmount + result.InterestDuringPromo + result.InterestAfterPromo
	if !mathutil.WithinTolerance(result.TotalInterestWithTransfer, wantCost, 0.001) {
		t.Errorf("total cost %v does not match fee + interest %v",
			result.TotalInterestWithTransfer, wantCost)
	}
	wantSavings := result.TotalInterestWithoutTransfer - result.TotalInterestWithTransfer
	if !mathutil.WithinTolerance(result.TotalSavings, wantSavings, 0.001) {
		t.Errorf("savings %v does not match baseline minus cost %v",
			result.TotalSavings, wantSavings)
	}
}

func TestBalanceTransferValidation(t *testing.T) {
	tests := []struct {
		name  string
		input BalanceTransferInput
		field string
	}{
		{
			"Zero balance",
			BalanceTransferInput{CurrentAPR: 22, PromoMonths: 12, MonthlyPayment: 200},
			"balance",
		},
		{
			"Zero promo months",
			BalanceTransferInput{Balance: 5000, CurrentAPR: 22, MonthlyPayment: 200},
			"promoMonths",
		},
		{
			"Zero monthly payment",
			BalanceTransferInput{Balance: 5000, CurrentAPR: 22, PromoMonths: 12},
			"monthlyPayment",
		},
		{
			"Negative transfer fee",
			BalanceTransferInput{Balance: 5000, CurrentAPR: 22, TransferFeePercent: -1, PromoMonths: 12, MonthlyPayment: 200},
			"transferFeePercent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BalanceTransfer(tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			vErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, vErr.Field)
			}
		})
	}
}
