package engine

import (
	"fmt"

	"github.com/shouldirefi/refi-advisor/pkg/constants"
	"github.com/shouldirefi/refi-advisor/pkg/format"
	"github.com/shouldirefi/refi-advisor/pkg/loans"
)

// MortgageRefinance evaluates refinancing a mortgage. PMI is computed for each
// side of the comparison and added to principal-and-interest before any
// payment figures are compared.
func MortgageRefinance(in MortgageInput) (MortgageRefinanceResult, error) {
	if err := in.Validate(); err != nil {
		return MortgageRefinanceResult{}, err
	}

	currentPMI := loans.MortgageInsurance(in.LoanBalance, in.HomeValue)
	currentPI := loans.MonthlyPayment(in.LoanBalance, in.CurrentRate, in.MonthsRemaining)
	currentPayment := currentPI + currentPMI
	currentInterest := loans.TotalInterest(currentPI, in.MonthsRemaining, in.LoanBalance)

	// Closing costs are paid out of pocket, not rolled into the new balance.
	newLoanAmount := in.LoanBalance
	newPMI := loans.MortgageInsurance(newLoanAmount, in.HomeValue)
	newPI := loans.MonthlyPayment(newLoanAmount, in.NewRate, in.NewTermMonths)
	newPayment := newPI + newPMI
	newInterest := loans.TotalInterest(newPI, in.NewTermMonths, newLoanAmount)

	cmp := compare(currentPayment, newPayment, currentInterest, newInterest, in.ClosingCosts)
	rateDrop := in.CurrentRate - in.NewRate

	result := MortgageRefinanceResult{
		RefinanceResult: RefinanceResult{
			CurrentMonthlyPayment: currentPayment,
			NewMonthlyPayment:     newPayment,
			MonthlyPaymentChange:  cmp.monthlyPaymentChange,
			CurrentTotalInterest:  currentInterest,
			NewTotalInterest:      newInterest,
			TotalInterestSavings:  cmp.totalInterestSavings,
			NetSavings:            cmp.netSavings,
			BreakEvenMonths:       cmp.breakEvenMonths(),
		},
		CurrentPMI: currentPMI,
		NewPMI:     newPMI,
	}

	switch {
	case cmp.netSavings > constants.MortgageHighSavings &&
		rateDrop >= constants.MortgageHighRateDrop &&
		cmp.breakEven <= constants.MortgageHighBreakEven:
		result.Decision = DecisionYes
		result.Confidence = ConfidenceHigh
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("You'll save %s over the life of the loan", format.Currency(cmp.netSavings)),
			fmt.Sprintf("Rate drops %.2f%% (%g%% → %g%%)", rateDrop, in.CurrentRate, in.NewRate),
			fmt.Sprintf("Break-even in %d months, well within typical ownership period", result.BreakEvenMonths),
		)
	case cmp.netSavings > constants.MortgageMediumSavings &&
		rateDrop >= constants.MortgageMediumRateDrop &&
		cmp.breakEven <= constants.MortgageMediumBreakEven:
		result.Decision = DecisionYes
		result.Confidence = ConfidenceMedium
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("You'll save %s over the life of the loan", format.Currency(cmp.netSavings)),
			fmt.Sprintf("Break-even in %d months", result.BreakEvenMonths),
		)
		if currentPMI > 0 && newPMI == 0 {
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("Bonus: You'll eliminate PMI (%s/year savings)", format.Currency(currentPMI*constants.MonthsPerYear)))
		}
	case cmp.netSavings > 0 && cmp.breakEven < float64(in.MonthsRemaining)/3:
		result.Decision = DecisionYes
		result.Confidence = ConfidenceLow
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Modest savings of %s, but reasonable break-even", format.Currency(cmp.netSavings)),
			"Consider if you plan to stay in the home long-term",
		)
	case cmp.netSavings <= 0:
		result.Decision = DecisionNo
		result.Confidence = ConfidenceHigh
		result.Reasons = append(result.Reasons,
			"Closing costs exceed your potential savings",
			fmt.Sprintf("Closing costs: %s vs Interest savings: %s",
				format.Currency(in.ClosingCosts), format.Currency(cmp.totalInterestSavings)),
		)
	case cmp.breakEven >= constants.MortgageMaxBreakEven:
		result.Decision = DecisionNo
		result.Confidence = ConfidenceMedium
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Break-even period too long: %d months (%.1f years)",
				result.BreakEvenMonths, float64(result.BreakEvenMonths)/constants.MonthsPerYear),
			"Only refinance if you're certain you'll stay that long",
		)
	case rateDrop < constants.MortgageMinRateDrop:
		result.Decision = DecisionNo
		result.Confidence = ConfidenceMedium
		result.Reasons = append(result.Reasons,
			"Rate difference is too small for a mortgage refinance",
			"Generally need at least 0.5-0.75% rate reduction to justify closing costs",
		)
	default:
		result.Decision = DecisionMaybe
		result.Confidence = ConfidenceLow
		result.Reasons = append(result.Reasons,
			"This is a borderline case",
			"Consider how long you plan to stay in the home",
		)
	}

	// Advisory pass: PMI changes and term extension notes.
	if currentPMI > 0 && newPMI == 0 {
		result.Reasons = append(result.Reasons, "✓ Good news: Refinancing eliminates your PMI")
	} else if currentPMI == 0 && newPMI > 0 {
		result.Reasons = append(result.Reasons, "⚠️ Warning: This would add PMI to your payment")
	}

	if result.Decision == DecisionYes && in.NewTermMonths > in.MonthsRemaining+constants.MortgageTermExtensionPad {
		years := (in.NewTermMonths - in.MonthsRemaining + constants.MonthsPerYear/2) / constants.MonthsPerYear
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("⚠️ Note: New term extends your payoff by %d years", years))
	}

	return result, nil
}
