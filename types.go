package main

// ColumnSuggestion represents the JSON response from the OpenAI API
// when asked to pick the three working columns from the header lists.
type ColumnSuggestion struct {
	TransactionLookup string `json:"TransactionLookup"`
	AccountLookup     string `json:"AccountLookup"`
	Amount            string `json:"Amount"`
}
