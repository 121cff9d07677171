package model

import (
	"regexp"
	"strings"
)

// UPI narration layouts differ per bank. HDFC narrations look like
// UPI-MERCHANT NAME-merchant@handle-123456789012-note, SBI like
// TO TRANSFER-UPI/DR/123456789012/MERCHANT/HANDLE/USER/note--.
var (
	hdfcUPIPattern = regexp.MustCompile(`^upi-(.+?)-(.+?)-\d{12}-(.+)$`)
	sbiUPIPattern  = regexp.MustCompile(`^.*?upi/(?:cr|dr)/\d{12}/([^/]+)/([^/]+)/([^/]+)/(.+?)--$`)

	whitespace     = regexp.MustCompile(`\s+`)
	schemePrefixes = []string{"upi-", "upi/", "neft-", "neft/", "imps-", "imps/", "pos-", "pos/", "pos "}
)

// Signature derives the merchant lookup key from a raw statement
// description. It is a pure function of (bank, descriptionRaw): case-folded,
// whitespace-collapsed, with transfer-scheme markers stripped. Where the
// bank's UPI narration layout is recognized, the signature is the stable
// merchant identity (name|handle[|user]) rather than the full narration, so
// repeat payments to one merchant collapse to one key even when the
// per-transaction reference differs.
func Signature(bank, descriptionRaw string) string {
	s := normalize(descriptionRaw)

	switch strings.ToLower(bank) {
	case "hdfc":
		if m := hdfcUPIPattern.FindStringSubmatch(s); m != nil {
			return strings.TrimSpace(m[1]) + "|" + strings.TrimSpace(m[2])
		}
	case "sbi":
		if m := sbiUPIPattern.FindStringSubmatch(s); m != nil {
			return strings.TrimSpace(m[1]) + "|" + strings.TrimSpace(m[2]) + "|" + strings.TrimSpace(m[3])
		}
	}

	for _, p := range schemePrefixes {
		if strings.HasPrefix(s, p) {
			s = strings.TrimSpace(s[len(p):])
			break
		}
	}
	return s
}

// CategoryHint extracts the category hint some banks embed in the UPI
// narration trailing field (the payer's own note), resolved through the
// alias table. Returns "" when the narration carries no usable hint.
func CategoryHint(bank, descriptionRaw string) string {
	s := normalize(descriptionRaw)

	var note string
	switch strings.ToLower(bank) {
	case "hdfc":
		if m := hdfcUPIPattern.FindStringSubmatch(s); m != nil {
			note = m[3]
		}
	case "sbi":
		if m := sbiUPIPattern.FindStringSubmatch(s); m != nil {
			note = m[4]
		}
	}
	if note == "" {
		return ""
	}
	return ResolveAlias(strings.TrimSpace(note))
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return whitespace.ReplaceAllString(s, " ")
}
