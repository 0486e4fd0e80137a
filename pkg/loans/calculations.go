// Package loans provides the pure loan math shared by the product engines:
// closed-form fixed-rate amortization, loan-to-value, mortgage insurance, and
// a month-by-month paydown simulator for multi-rate products.
package loans

import (
	"math"

	"github.com/shouldirefi/refi-advisor/pkg/constants"
)

// MonthlyPayment calculates the level monthly payment that fully amortizes
// balance over termMonths at the given fixed annual rate, using the standard
// amortization formula. Callers must ensure termMonths > 0.
func MonthlyPayment(balance, annualRatePercent float64, termMonths int) float64 {
	if annualRatePercent == 0 {
		// For zero interest, simply divide the balance by term
		return balance / float64(termMonths)
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	return balance * periodicRate * power / (power - 1.00)
}

// TotalInterest calculates the interest paid over a full term at the given
// level payment.
func TotalInterest(payment float64, termMonths int, balance float64) float64 {
	return payment*float64(termMonths) - balance
}

// LoanToValue calculates the loan balance as a percentage of the asset value.
// Callers must ensure assetValue > 0.
func LoanToValue(balance, assetValue float64) float64 {
	return balance / assetValue * constants.PercentageMultiplier
}

// MortgageInsurance calculates the approximate monthly PMI premium for a loan.
// Premiums apply only above the LTV threshold, at a flat annual rate on the
// balance.
func MortgageInsurance(balance, homeValue float64) float64 {
	if LoanToValue(balance, homeValue) > constants.MortgageInsuranceLTVThreshold {
		return balance * constants.MortgageInsuranceAnnualRate / constants.MonthsPerYear
	}
	return 0
}
