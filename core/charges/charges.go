// Package charges implements the port, storage, handling and airport charge rules.
// Every calculator is a pure function: identical inputs always give identical breakdowns.
package charges

import (
	"github.com/shopspring/decimal"
)

// FreeStorageDays is the number of storage days charged nothing at the sea port
const FreeStorageDays = 5

// vatMultiplier is the 18% uplift applied to taxable subtotals
var vatMultiplier = decimal.RequireFromString("1.18")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func days(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

func withVAT(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(vatMultiplier)
}
