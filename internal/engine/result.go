// Package engine implements the refinance decision engines for the four loan
// products. Each engine is a pure function from validated loan parameters to a
// fully-populated recommendation; both the form API and the JSON-RPC tool
// facade call these same functions so the decision rules exist in exactly one
// place.
package engine

// Decision is the categorical recommendation.
type Decision string

const (
	DecisionYes   Decision = "yes"
	DecisionNo    Decision = "no"
	DecisionMaybe Decision = "maybe"
)

// Bool maps the decision onto the nullable boolean the form-facing interface
// exposes: yes is true, no is false, and maybe is nil.
func (d Decision) Bool() *bool {
	switch d {
	case DecisionYes:
		v := true
		return &v
	case DecisionNo:
		v := false
		return &v
	default:
		return nil
	}
}

// Confidence qualifies how strongly the matched rule supports the decision.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// RefinanceResult is the recommendation for the car, personal loan, and
// mortgage refinance products. It is constructed fresh per invocation and
// never mutated afterwards.
type RefinanceResult struct {
	Decision   Decision   `json:"decision"`
	Confidence Confidence `json:"confidence"`

	// Reasons lists the human-readable grounds for the decision in rule
	// evaluation order, followed by any advisory notes.
	Reasons []string `json:"reasons"`

	CurrentMonthlyPayment float64 `json:"currentMonthlyPayment"`
	NewMonthlyPayment     float64 `json:"newMonthlyPayment"`
	MonthlyPaymentChange  float64 `json:"monthlyPaymentChange"`
	CurrentTotalInterest  float64 `json:"currentTotalInterest"`
	NewTotalInterest      float64 `json:"newTotalInterest"`
	TotalInterestSavings  float64 `json:"totalInterestSavings"`
	NetSavings            float64 `json:"netSavings"`

	// BreakEvenMonths is the months of payment savings needed to recover the
	// upfront cost. Zero encodes "not applicable": either there is nothing to
	// recover or the monthly payment does not drop, so the fees are never
	// recovered. The decision and reasons disambiguate the two.
	BreakEvenMonths int `json:"breakEvenMonths"`
}

// MortgageRefinanceResult extends RefinanceResult with the mortgage insurance
// figures used in the comparison.
type MortgageRefinanceResult struct {
	RefinanceResult

	CurrentPMI float64 `json:"currentPMI"`
	NewPMI     float64 `json:"newPMI"`
}

// BalanceTransferResult is the recommendation for a credit card balance
// transfer.
type BalanceTransferResult struct {
	Decision   Decision   `json:"decision"`
	Confidence Confidence `json:"confidence"`
	Reasons    []string   `json:"reasons"`

	CurrentMonthlyPayment float64 `json:"currentMonthlyPayment"`
	TransferFeeAmount     float64 `json:"transferFeeAmount"`
	InterestDuringPromo   float64 `json:"interestDuringPromo"`
	InterestAfterPromo    float64 `json:"interestAfterPromo"`

	// TotalInterestWithTransfer is the transfer fee plus all interest accrued
	// after transferring.
	TotalInterestWithTransfer float64 `json:"totalInterestWithTransfer"`

	// TotalInterestWithoutTransfer is the baseline interest at the current
	// APR. Zero when the payment does not cover interest and the baseline is
	// unbounded; the reasons carry the warning in that case.
	TotalInterestWithoutTransfer float64 `json:"totalInterestWithoutTransfer"`

	// TotalSavings is baseline interest minus cost with transfer, normalized
	// to zero when the baseline is unbounded.
	TotalSavings float64 `json:"totalSavings"`

	// MonthsToPayoff counts the simulated months until the transferred
	// balance reaches zero (promo plus post-promo phases).
	MonthsToPayoff int `json:"monthsToPayoff"`

	CanPayOffInPromo bool `json:"canPayOffInPromo"`
}
