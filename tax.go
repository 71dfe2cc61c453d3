package etfwatch

import "github.com/shopspring/decimal"

// AfterTaxDividend reduces a gross dividend amount by the taxes its market
// incurs for a Korean resident. Foreign dividends lose the US withholding tax
// first and then Korean separate taxation on the remainder; domestic
// dividends lose the flat Korean dividend income tax.
func (c *Config) AfterTaxDividend(gross decimal.Decimal, market Market) decimal.Decimal {
	keep := func(rate float64) decimal.Decimal { return decimal.NewFromFloat(1 - rate) }
	switch market {
	case Foreign:
		return gross.Mul(keep(c.USWithholdingTax)).Mul(keep(c.KRSeparateTax))
	default:
		return gross.Mul(keep(c.KRDividendTax))
	}
}

// AnnualDividend is the yearly payout a position throws off, from its market
// value and yield.
func AnnualDividend(value decimal.Decimal, yield Percent) decimal.Decimal {
	return value.Mul(decimal.NewFromFloat(float64(yield))).Div(decimal.NewFromInt(100))
}

// ISATaxable is the slice of an annual dividend stream above the ISA
// account's tax free limit. Within the limit it is zero.
func (c *Config) ISATaxable(annualDividend decimal.Decimal) decimal.Decimal {
	taxable := annualDividend.Sub(c.ISATaxFreeLimit)
	if taxable.IsNegative() {
		return decimal.Zero
	}
	return taxable
}
