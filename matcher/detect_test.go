package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAccountColumn(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		lookup  string
		want    string
	}{
		{"account number header", []string{"Account Number", "Name"}, "Lookup", "Account Number"},
		{"no space variant", []string{"AccountNumber", "Name"}, "Lookup", "AccountNumber"},
		{"acct number header", []string{"Acct Number"}, "Lookup", "Acct Number"},
		{"bare account header", []string{"Name", "Account"}, "Lookup", "Account"},
		{"case insensitive", []string{"ACCOUNT NUMBER"}, "Lookup", "ACCOUNT NUMBER"},
		{"fallback to lookup column", []string{"Customer ID", "Name"}, "Customer ID", "Customer ID"},
		{"account number beats bare account", []string{"Account", "Account Number"}, "Lookup", "Account Number"},
		{"emoji decorated header", []string{"💳 Account Number", "Name"}, "Lookup", "💳 Account Number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAccountColumn(tt.headers, tt.lookup))
		})
	}
}

func TestResolveAccountColumnPartialWordsDoNotMatch(t *testing.T) {
	// "Account" only matches as a whole header, so a header merely
	// containing the word falls through to the fallback.
	assert.Equal(t, "Ref", ResolveAccountColumn([]string{"Account Name"}, "Ref"))
}
