// Package format provides display formatting for currency and rate values
// used in recommendation reason strings.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string rounded to the nearest whole dollar with
// thousands separators (e.g., "-$1,235"). Reason strings present currency at
// whole-dollar precision.
func Currency(amount float64) string {
	whole := math.Round(math.Abs(amount))
	formatted := groupThousands(fmt.Sprintf("%.0f", whole))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// PreciseCurrency returns a currency string with cents and thousands
// separators (e.g., "-$1,234.56").
func PreciseCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", math.Abs(amount))
	parts := strings.SplitN(formatted, ".", 2)
	intPart := groupThousands(parts[0])
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}
	if amount < 0 {
		return "-$" + intPart + "." + decPart
	}
	return "$" + intPart + "." + decPart
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
