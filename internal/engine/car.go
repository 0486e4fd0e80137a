package engine

import (
	"fmt"

	"github.com/shouldirefi/refi-advisor/pkg/constants"
	"github.com/shouldirefi/refi-advisor/pkg/format"
	"github.com/shouldirefi/refi-advisor/pkg/loans"
)

// CarRefinance evaluates refinancing an auto loan. Rules are evaluated top to
// bottom and the first match wins; the order encodes priority.
func CarRefinance(in RefinanceInput) (RefinanceResult, error) {
	if err := in.Validate(); err != nil {
		return RefinanceResult{}, err
	}

	currentPayment := loans.MonthlyPayment(in.LoanBalance, in.CurrentRate, in.MonthsRemaining)
	currentInterest := loans.TotalInterest(currentPayment, in.MonthsRemaining, in.LoanBalance)

	// Refinance fees roll into the new loan balance.
	newLoanAmount := in.LoanBalance + in.RefinanceFees
	newPayment := loans.MonthlyPayment(newLoanAmount, in.NewRate, in.NewTermMonths)
	newInterest := loans.TotalInterest(newPayment, in.NewTermMonths, newLoanAmount)

	cmp := compare(currentPayment, newPayment, currentInterest, newInterest, in.RefinanceFees)
	rateDrop := in.CurrentRate - in.NewRate

	result := RefinanceResult{
		CurrentMonthlyPayment: currentPayment,
		NewMonthlyPayment:     newPayment,
		MonthlyPaymentChange:  cmp.monthlyPaymentChange,
		CurrentTotalInterest:  currentInterest,
		NewTotalInterest:      newInterest,
		TotalInterestSavings:  cmp.totalInterestSavings,
		NetSavings:            cmp.netSavings,
		BreakEvenMonths:       cmp.breakEvenMonths(),
	}

	switch {
	case cmp.netSavings > constants.CarHighSavings && rateDrop >= constants.CarHighRateDrop:
		result.Decision = DecisionYes
		result.Confidence = ConfidenceHigh
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("You'll save %s over the life of the loan", format.Currency(cmp.netSavings)),
			fmt.Sprintf("Rate drops %.2f%% (%g%% → %g%%)", rateDrop, in.CurrentRate, in.NewRate),
		)
	case cmp.netSavings > constants.CarMediumSavings && rateDrop >= constants.CarMediumRateDrop:
		result.Decision = DecisionYes
		result.Confidence = ConfidenceMedium
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("You'll save %s over the life of the loan", format.Currency(cmp.netSavings)))
		if cmp.breakEven < float64(in.MonthsRemaining) {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("You'll break even in %d months", result.BreakEvenMonths))
		}
	case cmp.netSavings > 0 && cmp.breakEven < float64(in.MonthsRemaining)/2:
		result.Decision = DecisionYes
		result.Confidence = ConfidenceLow
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Small savings of %s, but quick break-even", format.Currency(cmp.netSavings)))
	case cmp.netSavings <= 0:
		result.Decision = DecisionNo
		result.Confidence = ConfidenceHigh
		result.Reasons = append(result.Reasons, "Refinancing would cost you more than you'd save")
		if in.RefinanceFees > cmp.totalInterestSavings {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("Fees (%s) exceed interest savings", format.Currency(in.RefinanceFees)))
		}
	case cmp.breakEven >= float64(in.MonthsRemaining):
		result.Decision = DecisionNo
		result.Confidence = ConfidenceHigh
		result.Reasons = append(result.Reasons,
			"You won't break even before the loan ends",
			fmt.Sprintf("Break-even: %d months, but only %d months left", result.BreakEvenMonths, in.MonthsRemaining),
		)
	case rateDrop < constants.CarMinRateDrop:
		result.Decision = DecisionNo
		result.Confidence = ConfidenceMedium
		result.Reasons = append(result.Reasons,
			"Rate difference is too small to justify refinancing",
			"Generally need at least 0.5% rate reduction",
		)
	default:
		result.Decision = DecisionMaybe
		result.Confidence = ConfidenceLow
		result.Reasons = append(result.Reasons,
			"This is a borderline case; consider your personal situation")
	}

	// Advisory pass: notes that do not affect the decision.
	if result.Decision == DecisionYes && in.NewTermMonths > in.MonthsRemaining {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("⚠️ Note: New term is longer (%d vs %d months)", in.NewTermMonths, in.MonthsRemaining))
	}

	return result, nil
}
