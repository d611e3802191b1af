package service

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	minQuantity = 1
	maxQuantity = 99
)

// CheckRow is one dish line of the check form.
type CheckRow struct {
	DishID   int
	Name     string
	Price    float64
	Quantity int
	Checked  bool
}

// ClampQuantity keeps a quantity inside the range the form accepts.
func ClampQuantity(q int) int {
	if q < minQuantity {
		return minQuantity
	}
	if q > maxQuantity {
		return maxQuantity
	}
	return q
}

// ValidPrice reports whether a submitted price can be charged: finite and positive.
func ValidPrice(price float64) bool {
	return price > 0 && !math.IsInf(price, 0)
}

// CheckTotal sums price × quantity over the checked rows only. Rows without
// a valid price do not count.
func CheckTotal(rows []CheckRow) float64 {
	total := decimal.Zero
	for _, row := range rows {
		if !row.Checked || !ValidPrice(row.Price) {
			continue
		}
		line := decimal.NewFromFloat(row.Price).Mul(decimal.NewFromInt(int64(ClampQuantity(row.Quantity))))
		total = total.Add(line)
	}
	f, _ := total.Round(2).Float64()
	return f
}

// FormatMoney renders an amount the way the pages show prices.
func FormatMoney(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return decimal.NewFromFloat(amount).Round(2).String()
}
