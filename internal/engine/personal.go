package engine

import (
	"fmt"

	"github.com/shouldirefi/refi-advisor/pkg/constants"
	"github.com/shouldirefi/refi-advisor/pkg/format"
	"github.com/shouldirefi/refi-advisor/pkg/loans"
)

// PersonalLoanRefinance evaluates refinancing a personal loan. The mechanics
// match the car loan product; the thresholds demand a deeper rate cut because
// personal loan rates start higher.
func PersonalLoanRefinance(in RefinanceInput) (RefinanceResult, error) {
	if err := in.Validate(); err != nil {
		return RefinanceResult{}, err
	}

	currentPayment := loans.MonthlyPayment(in.LoanBalance, in.CurrentRate, in.MonthsRemaining)
	currentInterest := loans.TotalInterest(currentPayment, in.MonthsRemaining, in.LoanBalance)

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
	case cmp.netSavings > constants.PersonalHighSavings && rateDrop >= constants.PersonalHighRateDrop:
		result.Decision = DecisionYes
		result.Confidence = ConfidenceHigh
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("You'll save %s over the life of the loan", format.Currency(cmp.netSavings)))
	case cmp.netSavings > constants.PersonalMediumSavings && rateDrop >= constants.PersonalMediumRateDrop:
		result.Decision = DecisionYes
		result.Confidence = ConfidenceMedium
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("You'll save %s over the life of the loan", format.Currency(cmp.netSavings)))
	case cmp.netSavings <= 0:
		result.Decision = DecisionNo
		result.Confidence = ConfidenceHigh
		result.Reasons = append(result.Reasons, "Refinancing would cost you more than you'd save")
	case cmp.breakEven >= float64(in.MonthsRemaining):
		result.Decision = DecisionNo
		result.Confidence = ConfidenceHigh
		result.Reasons = append(result.Reasons, "You won't break even before the loan ends")
	case rateDrop < constants.PersonalMinRateDrop:
		result.Decision = DecisionNo
		result.Confidence = ConfidenceMedium
		result.Reasons = append(result.Reasons,
			"Rate difference is too small for a personal loan",
			"Generally need at least 1% rate reduction",
		)
	default:
		result.Decision = DecisionMaybe
		result.Confidence = ConfidenceLow
		result.Reasons = append(result.Reasons,
			"This is a borderline case; consider your personal situation")
	}

	if result.Decision == DecisionYes && in.NewTermMonths > in.MonthsRemaining {
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("⚠️ Note: New term is longer (%d vs %d months)", in.NewTermMonths, in.MonthsRemaining))
	}

	return result, nil
}
