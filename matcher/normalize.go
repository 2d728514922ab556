// Package matcher builds the lookup index from the accounts table and
// joins transaction rows against it, accumulating per-account totals.
package matcher

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var amountJunk = regexp.MustCompile(`[$,\s]`)

// NormalizeValue converts a raw cell value to a trimmed string, so the
// numeric cell 42 and the string cell "42" compare equal. Nil cells
// normalize to "".
func NormalizeValue(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case decimal.Decimal:
		return v.String()
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// ParseAmount converts a raw cell value to a decimal amount. Numeric
// values pass through unchanged. Strings are parsed after stripping
// dollar signs, commas and whitespace. Anything unparseable is zero —
// a garbage amount cell must not abort the run.
func ParseAmount(raw any) decimal.Decimal {
	switch v := raw.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	}

	cleaned := amountJunk.ReplaceAllString(fmt.Sprintf("%v", raw), "")
	if cleaned == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		log.Debug().Interface("value", raw).Msg("Unparseable amount cell treated as zero")
		return decimal.Zero
	}
	return amount
}
