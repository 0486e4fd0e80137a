package engine

import "fmt"

// ValidationError reports a loan parameter that violates the engine's
// preconditions. The amortization formula is undefined at zero terms and the
// loan-to-value ratio at zero home value, so these are rejected up front
// rather than letting NaN propagate into results.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RefinanceInput holds the parameters shared by the car and personal loan
// refinance products. Rates are annual percentages (8.5 means 8.5%).
type RefinanceInput struct {
	LoanBalance     float64 `json:"loanBalance"`
	CurrentRate     float64 `json:"currentRate"`
	MonthsRemaining int     `json:"monthsRemaining"`
	NewRate         float64 `json:"newRate"`
	NewTermMonths   int     `json:"newTermMonths"`
	RefinanceFees   float64 `json:"refinanceFees"`
}

// Validate checks the engine preconditions.
func (in RefinanceInput) Validate() error {
	switch {
	case in.LoanBalance <= 0:
		return &ValidationError{Field: "loanBalance", Reason: "must be positive"}
	case in.CurrentRate < 0:
		return &ValidationError{Field: "currentRate", Reason: "must not be negative"}
	case in.MonthsRemaining <= 0:
		return &ValidationError{Field: "monthsRemaining", Reason: "must be positive"}
	case in.NewRate < 0:
		return &ValidationError{Field: "newRate", Reason: "must not be negative"}
	case in.NewTermMonths <= 0:
		return &ValidationError{Field: "newTermMonths", Reason: "must be positive"}
	case in.RefinanceFees < 0:
		return &ValidationError{Field: "refinanceFees", Reason: "must not be negative"}
	}
	return nil
}

// MortgageInput holds the mortgage refinance parameters.
type MortgageInput struct {
	LoanBalance     float64 `json:"loanBalance"`
	HomeValue       float64 `json:"homeValue"`
	CurrentRate     float64 `json:"currentRate"`
	MonthsRemaining int     `json:"monthsRemaining"`
	NewRate         float64 `json:"newRate"`
	NewTermMonths   int     `json:"newTermMonths"`
	ClosingCosts    float64 `json:"closingCosts"`
}

// Validate checks the engine preconditions.
func (in MortgageInput) Validate() error {
	switch {
	case in.LoanBalance <= 0:
		return &ValidationError{Field: "loanBalance", Reason: "must be positive"}
	case in.HomeValue <= 0:
		return &ValidationError{Field: "homeValue", Reason: "must be positive"}
	case in.CurrentRate < 0:
		return &ValidationError{Field: "currentRate", Reason: "must not be negative"}
	case in.MonthsRemaining <= 0:
		return &ValidationError{Field: "monthsRemaining", Reason: "must be positive"}
	case in.NewRate < 0:
		return &ValidationError{Field: "newRate", Reason: "must not be negative"}
	case in.NewTermMonths <= 0:
		return &ValidationError{Field: "newTermMonths", Reason: "must be positive"}
	case in.ClosingCosts < 0:
		return &ValidationError{Field: "closingCosts", Reason: "must not be negative"}
	}
	return nil
}

// BalanceTransferInput holds the credit card balance transfer parameters.
type BalanceTransferInput struct {
	Balance            float64 `json:"balance"`
	CurrentAPR         float64 `json:"currentAPR"`
	TransferAPR        float64 `json:"transferAPR"`
	TransferFeePercent float64 `json:"transferFeePercent"`
	PromoMonths        int     `json:"promoMonths"`
	MonthlyPayment     float64 `json:"monthlyPayment"`
}

// Validate checks the engine preconditions. A zero transfer APR is the common
// promotional case and is valid.
func (in BalanceTransferInput) Validate() error {
	switch {
	case in.Balance <= 0:
		return &ValidationError{Field: "balance", Reason: "must be positive"}
	case in.CurrentAPR < 0:
		return &ValidationError{Field: "currentAPR", Reason: "must not be negative"}
	case in.TransferAPR < 0:
		return &ValidationError{Field: "transferAPR", Reason: "must not be negative"}
	case in.TransferFeePercent < 0:
		return &ValidationError{Field: "transferFeePercent", Reason: "must not be negative"}
	case in.PromoMonths <= 0:
		return &ValidationError{Field: "promoMonths", Reason: "must be positive"}
	case in.MonthlyPayment <= 0:
		return &ValidationError{Field: "monthlyPayment", Reason: "must be positive"}
	}
	return nil
}
