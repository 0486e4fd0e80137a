package engine

import "math"

// comparison holds the derived metrics the refinance classifiers branch on.
type comparison struct {
	monthlyPaymentChange float64
	totalInterestSavings float64
	netSavings           float64

	// breakEven is +Inf when the monthly payment does not drop, since the
	// upfront cost is then never recovered through payment savings. Rule
	// predicates compare against this raw value; the exported record
	// normalizes it to zero.
	breakEven float64
}

func compare(currentPayment, newPayment, currentInterest, newInterest, upfrontCost float64) comparison {
	c := comparison{
		monthlyPaymentChange: currentPayment - newPayment,
		totalInterestSavings: currentInterest - newInterest,
	}
	c.netSavings = c.totalInterestSavings - upfrontCost
	if c.monthlyPaymentChange > 0 {
		c.breakEven = math.Ceil(upfrontCost / c.monthlyPaymentChange)
	} else {
		c.breakEven = math.Inf(1)
	}
	return c
}

// breakEvenMonths returns the normalized break-even for the result record.
func (c comparison) breakEvenMonths() int {
	if math.IsInf(c.breakEven, 1) {
		return 0
	}
	return int(c.breakEven)
}
