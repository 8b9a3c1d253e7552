package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountRateTiers(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		expected string
	}{
		{"single unit", 1, "0"},
		{"just below first tier", 4, "0"},
		{"first tier lower bound", 5, "0.05"},
		{"first tier upper bound", 9, "0.05"},
		{"second tier lower bound", 10, "0.1"},
		{"second tier upper bound", 19, "0.1"},
		{"third tier lower bound", 20, "0.15"},
		{"third tier upper bound", 49, "0.15"},
		{"bulk tier lower bound", 50, "0.2"},
		{"large bulk order", 500, "0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := DiscountRate(tt.quantity)
			assert.True(t, rate.Equal(decimal.RequireFromString(tt.expected)),
				"quantity %d should get discount %s, got %s", tt.quantity, tt.expected, rate)
		})
	}
}

func TestProfitMarginTiers(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice string
		expected  string
	}{
		{"low-cost item", "12.99", "0.35"},
		{"just below mid-range", "99.99", "0.35"},
		{"mid-range lower bound", "100", "0.3"},
		{"just below high-end", "499.99", "0.3"},
		{"high-end lower bound", "500", "0.25"},
		{"premium item", "1299.99", "0.25"},
		{"free item", "0", "0.35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			margin := ProfitMargin(decimal.RequireFromString(tt.unitPrice))
			assert.True(t, margin.Equal(decimal.RequireFromString(tt.expected)),
				"unit price %s should get margin %s, got %s", tt.unitPrice, tt.expected, margin)
		})
	}
}

func TestCalculateFinancials(t *testing.T) {
	tests := []struct {
		name             string
		quantity         int
		unitPrice        string
		expectedDiscount string
		expectedSales    string
		expectedProfit   string
	}{
		{"mid quantity mid price", 10, "100.00", "0.10", "900.00", "270.00"},
		{"bulk quantity high price", 60, "600.00", "0.20", "28800.00", "7200.00"},
		{"small quantity low price", 3, "50.00", "0.00", "150.00", "52.50"},
		{"five units crosses discount tier", 5, "45.99", "0.05", "218.45", "76.46"},
		{"zero price", 7, "0.00", "0.05", "0.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, sales, profit, err := CalculateFinancials(tt.quantity, decimal.RequireFromString(tt.unitPrice))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedDiscount, discount.StringFixed(2), "discount")
			assert.Equal(t, tt.expectedSales, sales.StringFixed(2), "sales")
			assert.Equal(t, tt.expectedProfit, profit.StringFixed(2), "profit")
		})
	}
}

func TestCalculateFinancialsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice string
	}{
		{"zero quantity", 0, "10.00"},
		{"negative quantity", -3, "10.00"},
		{"negative unit price", 5, "-1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := CalculateFinancials(tt.quantity, decimal.RequireFromString(tt.unitPrice))
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
		})
	}
}

func TestCalculateFinancialsIsDeterministic(t *testing.T) {
	price := decimal.RequireFromString("189.99")
	d1, s1, p1, err := CalculateFinancials(25, price)
	require.NoError(t, err)
	d2, s2, p2, err := CalculateFinancials(25, price)
	require.NoError(t, err)

	assert.True(t, d1.Equal(d2))
	assert.True(t, s1.Equal(s2))
	assert.True(t, p1.Equal(p2))
}
