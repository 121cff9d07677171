package model

import "strings"

// CategoryKind classifies how a category contributes to the summary totals.
type CategoryKind string

const (
	KindCredit CategoryKind = "credit"
	KindDebit  CategoryKind = "debit"
	KindNet    CategoryKind = "net" // investments, lending: neither income nor spend
)

// CreditCategories are money-in buckets.
var CreditCategories = []string{"Salary"}

// DebitCategories are spend buckets.
var DebitCategories = []string{
	"Food",
	"House",
	"Entertainment",
	"Clothes & Accessories",
	"Transportation",
	"Health",
	"Fitness",
	"Grooming",
	"Grocery",
	"Network",
	"Free",
	"Misl",
}

// NetCategories move money between pockets without being income or spend.
var NetCategories = []string{"Investment", "Deposit", "Lend", "Borrow"}

// FallbackCategory is the deterministic bucket for unresolvable merchants.
const FallbackCategory = "Misl"

// categoryAliases maps hint words found in statement narrations to catalog
// categories.
var categoryAliases = map[string]string{
	"cloths":      "Clothes & Accessories",
	"accessories": "Clothes & Accessories",
	"petrol":      "Transportation",
	"travel":      "Transportation",
	"transport":   "Transportation",
	"cab":         "Transportation",
	"utilities":   "Grocery",
	"doctor":      "Health",
	"medicine":    "Health",
	"rent":        "House",
	"other":       "Misl",
}

// Categories returns the full catalog in credit, debit, net order.
func Categories() []string {
	out := make([]string, 0, len(CreditCategories)+len(DebitCategories)+len(NetCategories))
	out = append(out, CreditCategories...)
	out = append(out, DebitCategories...)
	out = append(out, NetCategories...)
	return out
}

// KindOf returns the kind of a catalog category. Unknown categories count as
// debit, the conservative choice for spend reporting.
func KindOf(category string) CategoryKind {
	for _, c := range CreditCategories {
		if c == category {
			return KindCredit
		}
	}
	for _, c := range NetCategories {
		if c == category {
			return KindNet
		}
	}
	return KindDebit
}

// ValidCategory reports whether category is in the catalog.
func ValidCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// ResolveAlias maps a narration hint word to its catalog category, or to the
// category itself when the hint already names one. Returns "" for unknown
// hints.
func ResolveAlias(hint string) string {
	h := strings.ToLower(strings.TrimSpace(hint))
	if c, ok := categoryAliases[h]; ok {
		return c
	}
	for _, c := range Categories() {
		if strings.ToLower(c) == h {
			return c
		}
	}
	return ""
}
