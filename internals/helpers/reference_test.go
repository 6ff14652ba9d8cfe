package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedReferencesValidate(t *testing.T) {
	at := time.Date(2025, 7, 3, 10, 0, 0, 0, time.UTC)

	payment := GeneratePaymentReference(at)
	assert.True(t, IsValidPaymentReference(payment), "payment ref %q", payment)
	assert.Len(t, payment, 17)

	expense := GenerateExpenseReference(at)
	assert.True(t, IsValidExpenseReference(expense), "expense ref %q", expense)

	transfer := GenerateTransferReference(at)
	assert.True(t, IsValidTransferReference(transfer), "transfer ref %q", transfer)

	txn := GenerateBankTransactionReference(at)
	assert.True(t, IsValidBankTransactionReference(txn), "transaction ref %q", txn)

	salary := GenerateSalaryReference(at)
	assert.True(t, IsValidSalaryReference(salary), "salary ref %q", salary)
	assert.Len(t, salary, 18)
	assert.Contains(t, salary, "SAL-2025-07-")

	tag := GenerateAssetTag()
	assert.True(t, IsValidAssetTag(tag), "asset tag %q", tag)
}

func TestGeneratedReferencesAreUnique(t *testing.T) {
	at := time.Now().UTC()
	seen := make(map[string]bool, 100)
	for i := 0; i < 100; i++ {
		ref := GeneratePaymentReference(at)
		assert.False(t, seen[ref], "duplicate reference %q", ref)
		seen[ref] = true
	}
}

func TestIsValidPaymentReference(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{name: "valid", ref: "PAY-2025-A1B2C3D4", want: true},
		{name: "wrong prefix", ref: "EXP-2025-A1B2C3D4", want: false},
		{name: "short suffix", ref: "PAY-2025-A1B2C3D", want: false},
		{name: "long suffix", ref: "PAY-2025-A1B2C3D4E", want: false},
		{name: "bad year", ref: "PAY-20X5-A1B2C3D4", want: false},
		{name: "suffix with symbol", ref: "PAY-2025-A1B2C3D!", want: false},
		{name: "missing separators", ref: "PAY2025A1B2C3D4", want: false},
		{name: "empty", ref: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPaymentReference(tt.ref))
		})
	}
}

func TestIsValidSalaryReference(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{name: "valid", ref: "SAL-2025-01-A1B2C3", want: true},
		{name: "december", ref: "SAL-2024-12-XYZ789", want: true},
		{name: "month zero", ref: "SAL-2025-00-A1B2C3", want: false},
		{name: "month thirteen", ref: "SAL-2025-13-A1B2C3", want: false},
		{name: "short suffix", ref: "SAL-2025-01-A1B2C", want: false},
		{name: "payment shaped", ref: "PAY-2025-A1B2C3D4", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSalaryReference(tt.ref))
		})
	}
}

func TestIsValidAssetTag(t *testing.T) {
	assert.True(t, IsValidAssetTag("AST-A1B2C3D4"))
	assert.True(t, IsValidAssetTag("AST-0001"))
	assert.False(t, IsValidAssetTag("AST-A1"))
	assert.False(t, IsValidAssetTag("AST-A1B2C3D4E5F6G7"))
	assert.False(t, IsValidAssetTag("TAG-A1B2C3D4"))
	assert.False(t, IsValidAssetTag("AST-A1B2-C3D4"))
}
