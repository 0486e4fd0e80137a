package loans

import (
	"github.com/shouldirefi/refi-advisor/pkg/constants"
	"github.com/shouldirefi/refi-advisor/pkg/mathutil"
)

// PaydownResult summarizes a simulated month-by-month paydown.
type PaydownResult struct {
	// Interest is the total interest accrued over the simulated months.
	Interest float64

	// Months is the number of payments made.
	Months int

	// Remaining is the balance left when the simulation stopped. Zero means
	// the balance was fully paid.
	Remaining float64

	// Converged is false when the payment did not cover a month's interest,
	// meaning the balance can never be paid down at this payment level.
	Converged bool
}

// SimulatePaydown pays monthlyPayment against balance at a fixed annual rate,
// month by month, interest accruing before principal. The simulation stops
// when the balance reaches zero, when the payment no longer covers interest,
// or after maxMonths payments. maxMonths must not exceed
// constants.MaxSimulationMonths, which bounds the loop even for inputs that
// would otherwise never pay off.
func SimulatePaydown(balance, annualRatePercent, monthlyPayment float64, maxMonths int) PaydownResult {
	if maxMonths > constants.MaxSimulationMonths {
		maxMonths = constants.MaxSimulationMonths
	}

	monthlyRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	result := PaydownResult{Remaining: balance, Converged: true}

	for result.Remaining > 0 && result.Months < maxMonths {
		interest := result.Remaining * monthlyRate
		principal := mathutil.Min(monthlyPayment-interest, result.Remaining)
		if principal <= 0 {
			result.Converged = false
			break
		}
		result.Interest += interest
		result.Remaining -= principal
		result.Months++
	}

	return result
}
