package report

import (
	"testing"

	"github.com/helpcomp/sheetmatch/matcher"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{15, "15.00"},
		{1234.5, "1,234.50"},
		{1234567.5, "1,234,567.50"},
		{-9876.543, "-9,876.54"},
		{0, "0.00"},
		{999, "999.00"},
		{1000, "1,000.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(decimal.NewFromFloat(tt.in)))
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "7", FormatCount(7))
	assert.Equal(t, "1,234", FormatCount(1234))
	assert.Equal(t, "1,000,000", FormatCount(1000000))
}

func TestBuildSortsLexicographically(t *testing.T) {
	summary := matcher.Summary{
		Accounts: map[string]*matcher.Aggregate{
			"3":   {Count: 1, Amount: decimal.NewFromInt(1)},
			"100": {Count: 1, Amount: decimal.NewFromInt(1)},
			"20":  {Count: 1, Amount: decimal.NewFromInt(1)},
		},
		TotalCount:  3,
		TotalAmount: decimal.NewFromInt(3),
	}

	result := Build(summary)

	require.Len(t, result.Lines, 3)
	// String ordering, not numeric: "100" < "20" < "3"
	assert.Equal(t, "100", result.Lines[0].Account)
	assert.Equal(t, "20", result.Lines[1].Account)
	assert.Equal(t, "3", result.Lines[2].Account)
}

func TestBuildResult(t *testing.T) {
	summary := matcher.Summary{
		Accounts: map[string]*matcher.Aggregate{
			"1001": {Count: 2, Amount: decimal.NewFromFloat(15)},
			"1002": {Count: 1, Amount: decimal.NewFromFloat(1234.5)},
		},
		TotalCount:  3,
		TotalAmount: decimal.NewFromFloat(1249.5),
	}

	result := Build(summary)

	assert.Equal(t, 2, result.DistinctAccounts)
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, "1,249.50", result.TotalAmount)
	assert.Equal(t, Line{Account: "1001", Count: 2, Amount: "15.00"}, result.Lines[0])
	assert.Equal(t, Line{Account: "1002", Count: 1, Amount: "1,234.50"}, result.Lines[1])
	assert.Equal(t, "Matched 3 transactions across 2 accounts. Total: $1,249.50", result.Message)
}
