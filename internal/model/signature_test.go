package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature_HDFCUPI(t *testing.T) {
	raw := "UPI-SWIGGY-swiggy@icici-412345678901-food order"
	sig := Signature("hdfc", raw)
	assert.Equal(t, "swiggy|swiggy@icici", sig)

	// Different transaction reference, same merchant, same signature.
	other := "UPI-SWIGGY-swiggy@icici-498765432109-food order"
	assert.Equal(t, sig, Signature("hdfc", other))
}

func TestSignature_SBIUPI(t *testing.T) {
	raw := "TO TRANSFER-UPI/DR/412345678901/SWIGGY/YESB/swiggy.rzp/lunch--"
	assert.Equal(t, "swiggy|yesb|swiggy.rzp", Signature("sbi", raw))
}

func TestSignature_Deterministic(t *testing.T) {
	raw := "  NEFT-HDFC0000001-ACME   CORP SALARY  "
	first := Signature("hdfc", raw)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Signature("hdfc", raw))
	}
}

func TestSignature_FoldsCaseAndWhitespace(t *testing.T) {
	assert.Equal(t,
		Signature("sbi", "ATM WDL  MUMBAI"),
		Signature("sbi", "atm wdl mumbai"))
}

func TestSignature_StripsSchemePrefix(t *testing.T) {
	assert.Equal(t, "acme corp", Signature("sbi", "NEFT-ACME CORP"))
	assert.Equal(t, "bigbazaar mumbai", Signature("hdfc", "POS-BIGBAZAAR MUMBAI"))
}

func TestSignature_UnknownBankUsesNormalizedText(t *testing.T) {
	assert.Equal(t, "cheque deposit 991", Signature("icici", "CHEQUE  DEPOSIT 991"))
}

func TestCategoryHint_HDFC(t *testing.T) {
	assert.Equal(t, "Transportation", CategoryHint("hdfc", "UPI-UBER-uber@hdfc-412345678901-cab"))
	assert.Equal(t, "House", CategoryHint("hdfc", "UPI-LANDLORD-land@upi-412345678901-rent"))
	assert.Equal(t, "", CategoryHint("hdfc", "UPI-UBER-uber@hdfc-412345678901-xyzzy"))
	assert.Equal(t, "", CategoryHint("hdfc", "POS-BIGBAZAAR"))
}

func TestCategoryHint_SBIResolvesCatalogName(t *testing.T) {
	assert.Equal(t, "Food", CategoryHint("sbi", "UPI/DR/412345678901/SWIGGY/YESB/swiggy.rzp/food--"))
}

func TestNewTransaction_DerivesSignature(t *testing.T) {
	txn := NewTransaction("hdfc", date(2025, 1, 3), "UPI-SWIGGY-swiggy@icici-412345678901-food", dec("-200"))
	assert.Equal(t, "swiggy|swiggy@icici", txn.MerchantSignature)
	assert.NotEmpty(t, txn.ID)
	assert.False(t, txn.Categorized())
	assert.Equal(t, "2025-01", txn.Period())
}
