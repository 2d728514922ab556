package matcher

import (
	"github.com/helpcomp/sheetmatch/table"
	"github.com/rs/zerolog/log"
)

// BuildIndex scans the accounts table and maps each normalized lookup
// value to its normalized account identifier. Rows with an empty
// lookup value cannot be indexed and are skipped. Duplicate lookup
// values silently overwrite: the last-scanned row wins. An account
// with no distinct identifier self-identifies by its lookup value.
func BuildIndex(accounts *table.Table, lookupColumn string) map[string]string {
	idColumn := ResolveAccountColumn(accounts.Headers, lookupColumn)
	log.Debug().Str("column", idColumn).Msg("Resolved account identifier column")

	index := make(map[string]string, len(accounts.Rows))
	for _, row := range accounts.Rows {
		lookup := NormalizeValue(row[lookupColumn])
		if lookup == "" {
			continue
		}

		id := NormalizeValue(row[idColumn])
		if id == "" {
			id = lookup
		}
		index[lookup] = id
	}
	return index
}
