package matcher

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "", NormalizeValue(nil))
	assert.Equal(t, "42", NormalizeValue("  42  "))
	assert.Equal(t, "", NormalizeValue("   "))
	assert.Equal(t, "A1", NormalizeValue("A1"))

	// Numeric and string cells holding the same value normalize identically
	assert.Equal(t, NormalizeValue("42"), NormalizeValue(42))
	assert.Equal(t, NormalizeValue("42"), NormalizeValue(42.0))
	assert.Equal(t, NormalizeValue("42"), NormalizeValue(int64(42)))
	assert.Equal(t, "42.5", NormalizeValue(42.5))
	assert.Equal(t, "15.5", NormalizeValue(decimal.NewFromFloat(15.5)))
}

func TestParseAmountCurrencyFormats(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(1234.50).Equal(ParseAmount("$1,234.50")))
	assert.True(t, decimal.NewFromFloat(10).Equal(ParseAmount("$10.00")))
	assert.True(t, decimal.NewFromFloat(5).Equal(ParseAmount("$5")))
	assert.True(t, decimal.NewFromFloat(-7.25).Equal(ParseAmount(" -$7.25 ")))
	assert.True(t, decimal.NewFromFloat(1000000).Equal(ParseAmount("1,000,000")))
}

func TestParseAmountNumericPassthrough(t *testing.T) {
	assert.True(t, decimal.NewFromInt(42).Equal(ParseAmount(42)))
	assert.True(t, decimal.NewFromFloat(42.5).Equal(ParseAmount(42.5)))
	d := decimal.NewFromFloat(3.14)
	assert.True(t, d.Equal(ParseAmount(d)))
}

func TestParseAmountMalformedIsZero(t *testing.T) {
	// Garbage amounts are silently zero, never an error
	assert.True(t, decimal.Zero.Equal(ParseAmount("abc")))
	assert.True(t, decimal.Zero.Equal(ParseAmount("")))
	assert.True(t, decimal.Zero.Equal(ParseAmount("$")))
	assert.True(t, decimal.Zero.Equal(ParseAmount(nil)))
	assert.True(t, decimal.Zero.Equal(ParseAmount("12.3.4")))
}
