package loan

import "github.com/shopspring/decimal"

// AnnualInterestRate is the flat rate applied to every employee loan.
var AnnualInterestRate = decimal.RequireFromString("0.05")

var twelve = decimal.NewFromInt(12)

// MonthlyInstallment returns the fixed payment that repays amount with
// interest over months equal instalments:
//
//	P = A·r·(1+r)^M / ((1+r)^M − 1),  r = AnnualInterestRate / 12
//
// The result is rounded half away from zero to cents. A non-positive amount
// or term yields zero.
func MonthlyInstallment(amount decimal.Decimal, months int) decimal.Decimal {
	if !amount.IsPositive() || months <= 0 {
		return decimal.Zero
	}

	r := AnnualInterestRate.DivRound(twelve, 16)
	if r.IsZero() {
		return amount.DivRound(decimal.NewFromInt(int64(months)), 2)
	}

	growth := decimal.NewFromInt(1).Add(r).Pow(decimal.NewFromInt(int64(months)))
	numerator := amount.Mul(r).Mul(growth)
	denominator := growth.Sub(decimal.NewFromInt(1))

	return numerator.DivRound(denominator, 8).Round(2)
}
