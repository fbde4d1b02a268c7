package helpers

import "github.com/shopspring/decimal"

// MinorUnitPlaces is the number of decimal places of the supported currencies (CAD, EUR).
const MinorUnitPlaces int32 = 2

var hundred = decimal.NewFromInt(100)

// Round2 rounds an amount to the currency minor unit, half away from zero.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MinorUnitPlaces)
}

// PercentOf returns round2(amount * rate / 100).
func PercentOf(amount, ratePercent decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(ratePercent).Div(hundred))
}

// SumAmounts adds the given amounts.
func SumAmounts(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
