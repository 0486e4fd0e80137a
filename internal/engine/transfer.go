package engine

import (
	"fmt"
	"math"

	"github.com/shouldirefi/refi-advisor/pkg/constants"
	"github.com/shouldirefi/refi-advisor/pkg/format"
	"github.com/shouldirefi/refi-advisor/pkg/loans"
)

// BalanceTransfer evaluates a credit card balance transfer. Two interest-rate
// regimes (promo and post-promo) rule out the closed-form comparison the other
// products use, so both sides are simulated month by month.
func BalanceTransfer(in BalanceTransferInput) (BalanceTransferResult, error) {
	if err := in.Validate(); err != nil {
		return BalanceTransferResult{}, err
	}

	transferFee := in.Balance * in.TransferFeePercent / constants.PercentageMultiplier
	totalTransferCost := in.Balance + transferFee

	// Baseline: keep paying the current card.
	baseline := loans.SimulatePaydown(in.Balance, in.CurrentAPR, in.MonthlyPayment, constants.MaxSimulationMonths)
	baselineInterest := baseline.Interest
	if !baseline.Converged {
		// The payment never covers interest; baseline interest is unbounded.
		baselineInterest = math.Inf(1)
	}

	// Transfer: promo phase on the fee-inflated balance, then reversion.
	promo := loans.SimulatePaydown(totalTransferCost, in.TransferAPR, in.MonthlyPayment, in.PromoMonths)
	canPayOffInPromo := promo.Remaining <= 0

	postPromoAPR := math.Max(in.CurrentAPR-constants.PostPromoRateDiscount, constants.PostPromoFloorAPR)
	postPromo := loans.SimulatePaydown(promo.Remaining, postPromoAPR, in.MonthlyPayment, constants.MaxSimulationMonths)

	totalCostWithTransfer := transferFee + promo.Interest + postPromo.Interest
	totalSavings := baselineInterest - totalCostWithTransfer

	result := BalanceTransferResult{
		CurrentMonthlyPayment:     in.MonthlyPayment,
		TransferFeeAmount:         transferFee,
		InterestDuringPromo:       promo.Interest,
		InterestAfterPromo:        postPromo.Interest,
		TotalInterestWithTransfer: totalCostWithTransfer,
		MonthsToPayoff:            promo.Months + postPromo.Months,
		CanPayOffInPromo:          canPayOffInPromo,
	}

	// An unbounded baseline is reported as zero rather than an infinity
	// literal; the warning reason carries the real story.
	if math.IsInf(baselineInterest, 1) {
		result.TotalInterestWithoutTransfer = 0
		result.TotalSavings = 0
	} else {
		result.TotalInterestWithoutTransfer = baselineInterest
		result.TotalSavings = totalSavings
	}

	switch {
	case math.IsInf(baselineInterest, 1):
		result.Decision = DecisionMaybe
		result.Confidence = ConfidenceLow
		result.Reasons = append(result.Reasons,
			"⚠️ Your monthly payment doesn't cover the interest",
			"You need to increase your monthly payment first",
		)
	case canPayOffInPromo && totalSavings > constants.TransferHighSavings:
		result.Decision = DecisionYes
		result.Confidence = ConfidenceHigh
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("You can pay off the balance during the %d-month promo period", in.PromoMonths),
			fmt.Sprintf("You'll save %s in interest", format.Currency(totalSavings)),
			fmt.Sprintf("Transfer fee of %s is worth it", format.Currency(transferFee)),
		)
	case totalSavings > constants.TransferMediumSavings && !canPayOffInPromo:
		result.Decision = DecisionYes
		result.Confidence = ConfidenceMedium
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("You'll save %s even with remaining balance after promo", format.Currency(totalSavings)),
			fmt.Sprintf("⚠️ You'll have %s remaining after promo period", format.Currency(promo.Remaining)),
			"Try to pay more during the promo period if possible",
		)
	case totalSavings > constants.TransferLowSavings && canPayOffInPromo:
		result.Decision = DecisionYes
		result.Confidence = ConfidenceLow
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("Small savings of %s, but you'll be debt-free sooner", format.Currency(totalSavings)))
	case totalSavings <= 0:
		result.Decision = DecisionNo
		result.Confidence = ConfidenceHigh
		result.Reasons = append(result.Reasons,
			"The balance transfer fee negates any interest savings",
			fmt.Sprintf("Fee: %s vs Potential savings: %s",
				format.Currency(transferFee),
				format.Currency(baselineInterest-promo.Interest-postPromo.Interest)),
		)
	case in.TransferFeePercent >= constants.TransferHighFeePercent && !canPayOffInPromo:
		result.Decision = DecisionNo
		result.Confidence = ConfidenceMedium
		result.Reasons = append(result.Reasons,
			"High transfer fee and you can't pay off during promo period",
			"Consider a card with a lower transfer fee instead",
		)
	default:
		result.Decision = DecisionMaybe
		result.Confidence = ConfidenceLow
		result.Reasons = append(result.Reasons,
			"This is a borderline case",
			"Savings are modest; consider if the hassle is worth it",
		)
	}

	// Advisory pass.
	if result.Decision == DecisionYes || result.Decision == DecisionMaybe {
		if in.PromoMonths >= constants.TransferGoodPromoMonths && in.TransferAPR == 0 {
			result.Reasons = append(result.Reasons,
				"💡 Tip: 0% APR offers are excellent; maximize payments during promo")
		}
		if !canPayOffInPromo {
			neededPayment := totalTransferCost / float64(in.PromoMonths)
			result.Reasons = append(result.Reasons,
				fmt.Sprintf("💡 To pay off in promo: pay %s/month", format.PreciseCurrency(neededPayment)))
		}
	}

	return result, nil
}
