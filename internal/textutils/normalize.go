// Package textutils provides description cleanup applied before keyword
// matching. Bank exports bury the merchant name in UPI handles, reference
// numbers and transaction ids; classification works on what remains after
// those are stripped.
package textutils

import (
	"regexp"
	"strings"
)

var (
	bankTagPattern   = regexp.MustCompile(`@\w+`)
	upiPattern       = regexp.MustCompile(`(?i)upi[\w\-/]*`)
	txnPattern       = regexp.MustCompile(`(?i)txn[:#]?\s*\w+`)
	refPattern       = regexp.MustCompile(`(?i)\bref[:#]\s*\w+`)
	longDigitPattern = regexp.MustCompile(`\d{4,}`)
	punctPattern     = regexp.MustCompile(`[^a-z0-9\s]`)
	spacePattern     = regexp.MustCompile(`\s+`)
)

// NormalizeDescription lowercases a transaction description and strips the
// noise tokens banks add around the merchant name: @bank handles, UPI
// references, txn/ref ids, digit runs of four or more, and punctuation.
func NormalizeDescription(desc string) string {
	s := strings.ToLower(desc)
	s = bankTagPattern.ReplaceAllString(s, " ")
	s = upiPattern.ReplaceAllString(s, " ")
	s = txnPattern.ReplaceAllString(s, " ")
	s = refPattern.ReplaceAllString(s, " ")
	s = longDigitPattern.ReplaceAllString(s, " ")
	s = punctPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}
