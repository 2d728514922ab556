package main

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/helpcomp/sheetmatch/httperror"
	"github.com/helpcomp/sheetmatch/matcher"
	"github.com/helpcomp/sheetmatch/prom"
	"github.com/helpcomp/sheetmatch/report"
	"github.com/helpcomp/sheetmatch/table"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

const maxUploadBytes = 32 << 20

type noMatchResponse struct {
	Message string `json:"message"`
}

// processHandler accepts the two spreadsheets as multipart uploads
// ("transactions" and "accounts") plus the three column selections as
// form fields, runs one match-and-aggregate pass, and responds with
// the result as JSON. A load or validation failure on one upload never
// disturbs the other; every run starts from a fresh session.
func processHandler(oai *openai.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			httperror.Send(w, http.StatusMethodNotAllowed, "POST required")
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			httperror.Send(w, http.StatusBadRequest, "invalid multipart request: "+err.Error())
			return
		}

		session := &matcher.Session{
			Selection: matcher.Selection{
				TransactionLookup: r.FormValue("transaction_lookup"),
				AccountLookup:     r.FormValue("account_lookup"),
				Amount:            r.FormValue("amount"),
			},
		}

		var err error
		if session.Transactions, err = loadUpload(r, "transactions"); err != nil {
			prom.LoadErrorCount++
			httperror.Send(w, http.StatusBadRequest, "transactions: "+err.Error())
			return
		}
		if session.Accounts, err = loadUpload(r, "accounts"); err != nil {
			prom.LoadErrorCount++
			httperror.Send(w, http.StatusBadRequest, "accounts: "+err.Error())
			return
		}

		if oai != nil && selectionIncomplete(session.Selection) {
			suggestion, err := SuggestColumns(oai, session.Transactions.Headers, session.Accounts.Headers)
			if err != nil {
				log.Warn().Err(err).Msg("Column suggestion failed, continuing with submitted selections")
			} else {
				session.Selection = mergeSelection(session.Selection, suggestion)
			}
		}

		summary, err := session.Process()
		switch {
		case errors.Is(err, matcher.ErrNoMatches):
			prom.RecordRun(summary.RowsScanned, 0, summary.Unmatched, 0, 0, true)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(noMatchResponse{Message: report.NoMatchMessage()})
			return
		case err != nil:
			prom.RunFailureCount++
			httperror.Send(w, http.StatusBadRequest, err.Error())
			return
		}

		result := report.Build(summary)
		prom.RecordRun(summary.RowsScanned, summary.TotalCount, summary.Unmatched, result.DistinctAccounts, summary.TotalAmount.InexactFloat64(), false)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Error().Err(err).Msg("Error encoding result")
		}
	}
}

func loadUpload(r *http.Request, field string) (*table.Table, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, errors.New("missing file upload")
	}
	defer func(file multipart.File) { _ = file.Close() }(file)

	return table.LoadReader(file, header.Filename)
}
