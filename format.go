package etfwatch

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// notAvailable renders in place of market data that could not be fetched.
const notAvailable = "N/A"

// FormatMoney renders an amount with the symbol and fraction rules of its
// currency ("$1,234.56", "₩5,000"). A nil amount renders as N/A.
func FormatMoney(amount *decimal.Decimal, currency string) string {
	if amount == nil {
		return notAvailable
	}
	cur := *money.New(0, currency).Currency()
	return cur.Formatter().Format(amount.Shift(int32(cur.Fraction)).Round(0).IntPart())
}

// FormatSignedMoney is FormatMoney with an explicit plus on gains.
func FormatSignedMoney(amount *decimal.Decimal, currency string) string {
	if amount == nil {
		return notAvailable
	}
	s := FormatMoney(amount, currency)
	if amount.IsPositive() {
		return "+" + s
	}
	return s
}

// FormatPercent renders a nilable percent, N/A when missing.
func FormatPercent(p *Percent) string {
	if p == nil {
		return notAvailable
	}
	return p.String()
}

// FormatSignedPercent renders a nilable percent with an explicit sign.
func FormatSignedPercent(p *Percent) string {
	if p == nil {
		return notAvailable
	}
	return p.SignedString()
}

// ConvertUSDKRW converts a USD amount to KRW at the given rate. Nil stays
// nil: an unfetched price has no meaningful conversion.
func ConvertUSDKRW(amount *decimal.Decimal, rate decimal.Decimal) *decimal.Decimal {
	if amount == nil {
		return nil
	}
	v := amount.Mul(rate)
	return &v
}

// TargetAmount is the slice of a total budget a target ratio allocates.
func TargetAmount(total decimal.Decimal, targetRatio Percent) decimal.Decimal {
	return total.Mul(decimal.NewFromFloat(float64(targetRatio))).Div(decimal.NewFromInt(100))
}

// CurrentRatio is the share of the total a single amount represents, as a
// percent. A zero total yields zero.
func CurrentRatio(amount, total decimal.Decimal) Percent {
	if total.IsZero() {
		return 0
	}
	return Percent(amount.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64())
}
