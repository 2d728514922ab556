// Package report turns a match summary into its presentable form:
// deterministic ordering and display-formatted currency values.
package report

import (
	"fmt"
	"strings"

	"github.com/helpcomp/sheetmatch/matcher"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Line is one aggregated account in the result.
type Line struct {
	Account string `json:"account"`
	Count   int    `json:"count"`
	Amount  string `json:"amount"`
}

// Result is the presentable output of one processing run.
type Result struct {
	Lines            []Line `json:"rows"`
	TotalCount       int    `json:"total_count"`
	TotalAmount      string `json:"total_amount"`
	DistinctAccounts int    `json:"distinct_accounts"`
	Message          string `json:"message"`
}

// Build sorts the summary's account identifiers ascending by plain
// string comparison ("100" before "20" before "3") and formats every
// amount to two decimals with thousands grouping.
func Build(summary matcher.Summary) Result {
	accounts := maps.Keys(summary.Accounts)
	slices.Sort(accounts)

	result := Result{
		Lines:            make([]Line, 0, len(accounts)),
		TotalCount:       summary.TotalCount,
		TotalAmount:      FormatAmount(summary.TotalAmount),
		DistinctAccounts: len(accounts),
	}

	for _, account := range accounts {
		entry := summary.Accounts[account]
		result.Lines = append(result.Lines, Line{
			Account: account,
			Count:   entry.Count,
			Amount:  FormatAmount(entry.Amount),
		})
	}

	result.Message = fmt.Sprintf("Matched %s transactions across %s accounts. Total: $%s",
		FormatCount(summary.TotalCount), FormatCount(len(accounts)), result.TotalAmount)

	return result
}

// NoMatchMessage is the informational-failure outcome for a valid
// configuration over disjoint datasets.
func NoMatchMessage() string {
	return "No matching records found between the two files"
}

// FormatAmount renders d with exactly two decimal digits and
// thousands separators, independent of the original cell format.
func FormatAmount(d decimal.Decimal) string {
	return groupThousands(d.StringFixed(2))
}

// FormatCount renders a count with thousands separators for display.
func FormatCount(n int) string {
	return groupThousands(fmt.Sprintf("%d", n))
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if hasFrac {
		return sign + b.String() + "." + fracPart
	}
	return sign + b.String()
}
