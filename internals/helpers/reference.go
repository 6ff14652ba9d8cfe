package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* ===============================
   Reference generation
   PAY-YYYY-XXXXXXXX / EXP-YYYY-XXXXXXXX / SAL-YYYY-MM-XXXXXX
=================================*/

func randomSuffix(n int) string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	if n > len(hex) {
		n = len(hex)
	}
	return hex[:n]
}

func GeneratePaymentReference(at time.Time) string {
	return fmt.Sprintf("PAY-%04d-%s", at.Year(), randomSuffix(8))
}

func GenerateExpenseReference(at time.Time) string {
	return fmt.Sprintf("EXP-%04d-%s", at.Year(), randomSuffix(8))
}

func GenerateSalaryReference(at time.Time) string {
	return fmt.Sprintf("SAL-%04d-%02d-%s", at.Year(), int(at.Month()), randomSuffix(6))
}

func GenerateAssetTag() string {
	return "AST-" + randomSuffix(8)
}

func GenerateBankTransactionReference(at time.Time) string {
	return fmt.Sprintf("TXN-%04d-%s", at.Year(), randomSuffix(8))
}

func GenerateTransferReference(at time.Time) string {
	return fmt.Sprintf("TRF-%04d-%s", at.Year(), randomSuffix(8))
}

/* ===============================
   Reference validation
=================================*/

func isAlnumUpper(s string) bool {
	for _, c := range s {
		if !(c >= 'A' && c <= 'Z') && !(c >= 'a' && c <= 'z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return s != ""
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

// IsValidPaymentReference checks PAY-YYYY-XXXXXXXX (17 chars, 8 alphanumeric suffix).
func IsValidPaymentReference(ref string) bool {
	return isValidPrefixedReference(ref, "PAY", 8)
}

// IsValidExpenseReference checks EXP-YYYY-XXXXXXXX (17 chars, 8 alphanumeric suffix).
func IsValidExpenseReference(ref string) bool {
	return isValidPrefixedReference(ref, "EXP", 8)
}

// IsValidTransferReference checks TRF-YYYY-XXXXXXXX (17 chars, 8 alphanumeric suffix).
func IsValidTransferReference(ref string) bool {
	return isValidPrefixedReference(ref, "TRF", 8)
}

// IsValidBankTransactionReference checks TXN-YYYY-XXXXXXXX (17 chars, 8 alphanumeric suffix).
func IsValidBankTransactionReference(ref string) bool {
	return isValidPrefixedReference(ref, "TXN", 8)
}

func isValidPrefixedReference(ref, prefix string, suffixLen int) bool {
	if len(ref) != len(prefix)+1+4+1+suffixLen {
		return false
	}
	parts := strings.Split(ref, "-")
	if len(parts) != 3 {
		return false
	}
	if parts[0] != prefix {
		return false
	}
	if len(parts[1]) != 4 || !isDigits(parts[1]) {
		return false
	}
	return len(parts[2]) == suffixLen && isAlnumUpper(parts[2])
}

// IsValidAssetTag checks the AST-XXXXXXXX shape (alphanumeric suffix of at
// least 4 characters; tags imported from older registers vary in length).
func IsValidAssetTag(tag string) bool {
	if !strings.HasPrefix(tag, "AST-") {
		return false
	}
	suffix := strings.TrimPrefix(tag, "AST-")
	return len(suffix) >= 4 && len(suffix) <= 12 && isAlnumUpper(suffix)
}

// IsValidSalaryReference checks SAL-YYYY-MM-XXXXXX (18 chars, month 01-12,
// 6 alphanumeric suffix).
func IsValidSalaryReference(ref string) bool {
	if len(ref) != 18 {
		return false
	}
	parts := strings.Split(ref, "-")
	if len(parts) != 4 {
		return false
	}
	if parts[0] != "SAL" {
		return false
	}
	if len(parts[1]) != 4 || !isDigits(parts[1]) {
		return false
	}
	if len(parts[2]) != 2 || !isDigits(parts[2]) {
		return false
	}
	month := int(parts[2][0]-'0')*10 + int(parts[2][1]-'0')
	if month < 1 || month > 12 {
		return false
	}
	return len(parts[3]) == 6 && isAlnumUpper(parts[3])
}
