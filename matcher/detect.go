package matcher

import (
	"regexp"
	"strings"

	"github.com/forPelevin/gomoji"
)

// columnDetector is one named predicate in the detection chain.
type columnDetector struct {
	name  string
	match func(header string) bool
}

// Detectors run in priority order, detector-major: the first detector
// that matches any header wins, regardless of header position.
var accountColumnDetectors = []columnDetector{
	{name: "account number", match: regexMatcher(`(?i)account\s*number`)},
	{name: "acct number", match: regexMatcher(`(?i)acct\s*number`)},
	{name: "account", match: func(h string) bool { return strings.EqualFold(h, "account") }},
}

func regexMatcher(pattern string) func(string) bool {
	re := regexp.MustCompile(pattern)
	return re.MatchString
}

// ResolveAccountColumn picks the account-identifier column from the
// accounts table headers, falling back to the chosen lookup column
// when no detector matches. Headers are compared with emoji
// decorations stripped; the original header is returned so row access
// still works.
func ResolveAccountColumn(headers []string, lookupColumn string) string {
	for _, d := range accountColumnDetectors {
		for _, h := range headers {
			if d.match(strings.TrimSpace(gomoji.RemoveEmojis(h))) {
				return h
			}
		}
	}
	return lookupColumn
}
