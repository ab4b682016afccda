package slug

import (
	"regexp"
	"strings"
)

const maxLen = 48

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// FromTitle turns a title into a stable lower-case id such as
// "attention-is-all-you-need". Words are never cut in half.
func FromTitle(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.Trim(nonAlphaNum.ReplaceAllString(s, "-"), "-")
	if s == "" {
		return "article"
	}
	if len(s) <= maxLen {
		return s
	}
	cut := strings.LastIndex(s[:maxLen+1], "-")
	if cut <= 0 {
		return s[:maxLen]
	}
	return s[:cut]
}
