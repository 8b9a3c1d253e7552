package services

import (
	"github.com/shopspring/decimal"
)

// Discount tiers by quantity, highest threshold wins.
var discountTiers = []struct {
	minQuantity int
	rate        decimal.Decimal
}{
	{50, decimal.RequireFromString("0.20")},
	{20, decimal.RequireFromString("0.15")},
	{10, decimal.RequireFromString("0.10")},
	{5, decimal.RequireFromString("0.05")},
}

// Profit margin tiers by unit price, independent of the discount tier.
var marginTiers = []struct {
	minPrice decimal.Decimal
	margin   decimal.Decimal
}{
	{decimal.RequireFromString("500"), decimal.RequireFromString("0.25")},
	{decimal.RequireFromString("100"), decimal.RequireFromString("0.30")},
}

var defaultMargin = decimal.RequireFromString("0.35")

// CalculateFinancials derives discount, sales and profit from quantity and
// unit price. It is pure: no lookups, no writes.
//
//	sales  = quantity * unitPrice * (1 - discount)
//	profit = sales * margin
//
// All outputs are rounded half-up to cents.
func CalculateFinancials(quantity int, unitPrice decimal.Decimal) (discount, sales, profit decimal.Decimal, err error) {
	if quantity <= 0 {
		return decimal.Zero, decimal.Zero, decimal.Zero,
			&ValidationError{Field: "quantity", Reason: "must be a positive integer"}
	}
	if unitPrice.IsNegative() {
		return decimal.Zero, decimal.Zero, decimal.Zero,
			&ValidationError{Field: "unit_price", Reason: "must not be negative"}
	}

	discount = DiscountRate(quantity)

	subtotal := decimal.NewFromInt(int64(quantity)).Mul(unitPrice)
	sales = subtotal.Mul(decimal.NewFromInt(1).Sub(discount)).Round(2)
	profit = sales.Mul(ProfitMargin(unitPrice)).Round(2)

	return discount.Round(2), sales, profit, nil
}

// DiscountRate returns the discount fraction for a quantity
func DiscountRate(quantity int) decimal.Decimal {
	for _, tier := range discountTiers {
		if quantity >= tier.minQuantity {
			return tier.rate
		}
	}
	return decimal.Zero
}

// ProfitMargin returns the margin fraction for a unit price
func ProfitMargin(unitPrice decimal.Decimal) decimal.Decimal {
	for _, tier := range marginTiers {
		if unitPrice.GreaterThanOrEqual(tier.minPrice) {
			return tier.margin
		}
	}
	return defaultMargin
}
