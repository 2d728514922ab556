package matcher

import (
	"errors"
	"fmt"

	"github.com/helpcomp/sheetmatch/table"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoMatches means the configuration was valid but the two
	// datasets share no lookup values. Callers must surface it as an
	// informational outcome, not as an empty result table.
	ErrNoMatches = errors.New("no matching records found")

	ErrMissingSelection = errors.New("missing column selection")
	ErrMissingTable     = errors.New("table not loaded")
	ErrUnknownColumn    = errors.New("column not present in table")
)

// Selection holds the three user-chosen column names.
type Selection struct {
	TransactionLookup string
	AccountLookup     string
	Amount            string
}

// Session owns all state for one processing run: the two table slots
// and the column selections. The two slots are loaded independently
// and in either order; nothing reads across them until Process.
type Session struct {
	Transactions *table.Table
	Accounts     *table.Table
	Selection    Selection
}

// Aggregate accumulates matches for one account identifier.
type Aggregate struct {
	Count  int
	Amount decimal.Decimal
}

// Summary is the output of one join-aggregate pass.
type Summary struct {
	Accounts    map[string]*Aggregate
	TotalCount  int
	TotalAmount decimal.Decimal
	RowsScanned int
	Unmatched   int
}

// Validate checks that both tables are loaded and all three column
// selections name real columns. It runs before any join work so a bad
// configuration never produces a partial result.
func (s *Session) Validate() error {
	if s.Transactions == nil {
		return fmt.Errorf("%w: transactions", ErrMissingTable)
	}
	if s.Accounts == nil {
		return fmt.Errorf("%w: accounts", ErrMissingTable)
	}

	checks := []struct {
		name  string
		value string
		table *table.Table
	}{
		{"transaction lookup", s.Selection.TransactionLookup, s.Transactions},
		{"account lookup", s.Selection.AccountLookup, s.Accounts},
		{"amount", s.Selection.Amount, s.Transactions},
	}
	for _, c := range checks {
		if c.value == "" {
			return fmt.Errorf("%w: %s column", ErrMissingSelection, c.name)
		}
		if !c.table.HasHeader(c.value) {
			return fmt.Errorf("%w: %s column %q", ErrUnknownColumn, c.name, c.value)
		}
	}
	return nil
}

// Process runs the full match-and-aggregate pass: build the lookup
// index from the accounts table, then scan the transactions in
// original order, accumulating count and amount per resolved account
// identifier plus grand totals. Transactions whose lookup value is
// empty or absent from the index are dropped silently.
func (s *Session) Process() (Summary, error) {
	if err := s.Validate(); err != nil {
		return Summary{}, err
	}

	index := BuildIndex(s.Accounts, s.Selection.AccountLookup)
	log.Debug().Int("entries", len(index)).Msg("Built account lookup index")

	summary := Summary{
		Accounts:    make(map[string]*Aggregate),
		TotalAmount: decimal.Zero,
	}

	for _, row := range s.Transactions.Rows {
		summary.RowsScanned++

		lookup := NormalizeValue(row[s.Selection.TransactionLookup])
		if lookup == "" {
			summary.Unmatched++
			continue
		}

		accountID, ok := index[lookup]
		if !ok {
			summary.Unmatched++
			continue
		}

		amount := ParseAmount(row[s.Selection.Amount])

		entry, ok := summary.Accounts[accountID]
		if !ok {
			entry = &Aggregate{Amount: decimal.Zero}
			summary.Accounts[accountID] = entry
		}
		entry.Count++
		entry.Amount = entry.Amount.Add(amount)

		summary.TotalCount++
		summary.TotalAmount = summary.TotalAmount.Add(amount)
	}

	if len(summary.Accounts) == 0 {
		return summary, ErrNoMatches
	}

	log.Info().
		Int("Transactions", summary.TotalCount).
		Int("Accounts", len(summary.Accounts)).
		Int("Unmatched", summary.Unmatched).
		Float64("Total", summary.TotalAmount.InexactFloat64()).
		Msg("📊 Matched transactions")

	return summary, nil
}
