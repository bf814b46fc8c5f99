package loan

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// closedForm is the float reference for the amortization formula.
func closedForm(amount float64, months int) float64 {
	r := 0.05 / 12
	g := math.Pow(1+r, float64(months))
	return amount * r * g / (g - 1)
}

func TestMonthlyInstallment_KnownValue(t *testing.T) {
	got := MonthlyInstallment(decimal.NewFromInt(12000), 12)
	assert.Equal(t, "1027.29", got.StringFixed(2))
}

func TestMonthlyInstallment_MatchesClosedForm(t *testing.T) {
	cases := []struct {
		amount float64
		months int
	}{
		{1000, 1},
		{5000, 6},
		{12000, 12},
		{25000, 24},
		{150000, 60},
		{999.99, 7},
	}

	for _, c := range cases {
		got := MonthlyInstallment(decimal.NewFromFloat(c.amount), c.months).InexactFloat64()
		want := math.Round(closedForm(c.amount, c.months)*100) / 100
		assert.InDelta(t, want, got, 0.001, "amount=%v months=%d", c.amount, c.months)
	}
}

func TestMonthlyInstallment_SingleMonthIsPrincipalPlusOneMonthInterest(t *testing.T) {
	got := MonthlyInstallment(decimal.NewFromInt(1200), 1)
	assert.Equal(t, "1205.00", got.StringFixed(2))
}

func TestMonthlyInstallment_Degenerate(t *testing.T) {
	assert.True(t, MonthlyInstallment(decimal.Zero, 12).IsZero())
	assert.True(t, MonthlyInstallment(decimal.NewFromInt(-10), 12).IsZero())
	assert.True(t, MonthlyInstallment(decimal.NewFromInt(1000), 0).IsZero())
}
