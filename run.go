package main

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"text/tabwriter"

	"github.com/helpcomp/sheetmatch/config"
	"github.com/helpcomp/sheetmatch/matcher"
	"github.com/helpcomp/sheetmatch/prom"
	"github.com/helpcomp/sheetmatch/report"
	"github.com/helpcomp/sheetmatch/table"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// startRun performs one full match-and-aggregate pass from the files
// and column selections in the config/flags and prints the report.
func startRun(cfg *config.MasterConfig, oai *openai.Client) error {
	session := &matcher.Session{
		Selection: resolveSelection(cfg),
	}

	transactionsFile := firstNonEmpty(cli.TransactionsFile, cfg.TransactionsFile)
	accountsFile := firstNonEmpty(cli.AccountsFile, cfg.AccountsFile)
	if transactionsFile == "" || accountsFile == "" {
		return errors.New("both a transactions file and an accounts file are required")
	}

	// The two loads are independent and may finish in either order.
	// Each writes its own session slot; a failure on one side leaves
	// the other side's table intact.
	var wg sync.WaitGroup
	var transactionsErr, accountsErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		session.Transactions, transactionsErr = table.LoadFile(transactionsFile)
	}()
	go func() {
		defer wg.Done()
		session.Accounts, accountsErr = table.LoadFile(accountsFile)
	}()
	wg.Wait()

	for _, loadErr := range []error{transactionsErr, accountsErr} {
		if loadErr != nil {
			prom.LoadErrorCount++
			log.Error().Err(loadErr).Msg("Could not load spreadsheet")
		}
	}
	if transactionsErr != nil || accountsErr != nil {
		return errors.New("one or more spreadsheets failed to load")
	}

	log.Info().
		Str("Type", "Transactions").
		Int("Rows", len(session.Transactions.Rows)).
		Strs("Headers", session.Transactions.Headers).
		Msg("🏦 Loaded transactions table")
	log.Info().
		Str("Type", "Accounts").
		Int("Rows", len(session.Accounts.Rows)).
		Strs("Headers", session.Accounts.Headers).
		Msg("🏦 Loaded accounts table")

	// Fill in missing column selections from OpenAI, if enabled. An
	// explicit selection is never overridden; failures fall through to
	// the normal validation error.
	if oai != nil && selectionIncomplete(session.Selection) {
		suggestion, err := SuggestColumns(oai, session.Transactions.Headers, session.Accounts.Headers)
		if err != nil {
			log.Warn().Err(err).Msg("Column suggestion failed, continuing with configured selections")
		} else {
			session.Selection = mergeSelection(session.Selection, suggestion)
		}
	}

	summary, err := session.Process()
	if errors.Is(err, matcher.ErrNoMatches) {
		prom.RecordRun(summary.RowsScanned, 0, summary.Unmatched, 0, 0, true)
		fmt.Println(report.NoMatchMessage())
		return err
	}
	if err != nil {
		prom.RunFailureCount++
		return err
	}

	result := report.Build(summary)
	prom.RecordRun(summary.RowsScanned, summary.TotalCount, summary.Unmatched, result.DistinctAccounts, summary.TotalAmount.InexactFloat64(), false)
	printResult(result)
	return nil
}

// resolveSelection merges CLI flags over the config file's column
// selections.
func resolveSelection(cfg *config.MasterConfig) matcher.Selection {
	return matcher.Selection{
		TransactionLookup: firstNonEmpty(cli.TransactionLookup, cfg.Columns.TransactionLookup),
		AccountLookup:     firstNonEmpty(cli.AccountLookup, cfg.Columns.AccountLookup),
		Amount:            firstNonEmpty(cli.AmountColumn, cfg.Columns.Amount),
	}
}

func selectionIncomplete(s matcher.Selection) bool {
	return s.TransactionLookup == "" || s.AccountLookup == "" || s.Amount == ""
}

func mergeSelection(s matcher.Selection, suggestion ColumnSuggestion) matcher.Selection {
	s.TransactionLookup = firstNonEmpty(s.TransactionLookup, suggestion.TransactionLookup)
	s.AccountLookup = firstNonEmpty(s.AccountLookup, suggestion.AccountLookup)
	s.Amount = firstNonEmpty(s.Amount, suggestion.Amount)
	return s
}

func printResult(result report.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ACCOUNT\tCOUNT\tAMOUNT")
	for _, line := range result.Lines {
		fmt.Fprintf(w, "%s\t%s\t%s\n", line.Account, report.FormatCount(line.Count), line.Amount)
	}
	fmt.Fprintf(w, "TOTAL\t%s\t%s\n", report.FormatCount(result.TotalCount), result.TotalAmount)
	w.Flush()
	fmt.Println()
	fmt.Println(result.Message)
}
