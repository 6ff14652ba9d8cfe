package helper

import (
	"strconv"
	"strings"
	"unicode"
)

/* ===============================
   Domain string formats
=================================*/

// IsValidNigerianPhone accepts local 11-digit numbers starting with 0
// (070..., 080..., 081..., 090..., 091...) or the international 234 form
// (13 digits). Separators and a leading + are ignored.
func IsValidNigerianPhone(phone string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '+', '(', ')':
			return -1
		}
		return r
	}, phone)

	if len(cleaned) == 11 && cleaned[0] == '0' {
		return isDigits(cleaned)
	}
	if len(cleaned) == 13 && strings.HasPrefix(cleaned, "234") {
		return isDigits(cleaned)
	}
	return false
}

// IsValidBudgetCode checks the AAA-000 shape (3 letters, dash, 3 digits).
func IsValidBudgetCode(code string) bool {
	if len(code) != 7 {
		return false
	}
	parts := strings.Split(code, "-")
	if len(parts) != 2 {
		return false
	}
	if len(parts[0]) != 3 || len(parts[1]) != 3 {
		return false
	}
	for _, c := range parts[0] {
		if !unicode.IsLetter(c) {
			return false
		}
	}
	return isDigits(parts[1])
}

// IsValidDepartmentName: up to 50 chars of letters, digits, spaces and basic
// punctuation.
func IsValidDepartmentName(name string) bool {
	if len(name) > 50 {
		return false
	}
	for _, c := range name {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && !unicode.IsSpace(c) &&
			!strings.ContainsRune("._-&'()", c) {
			return false
		}
	}
	return true
}

// IsValidCategoryName: 3..100 chars of letters, digits, spaces and basic
// punctuation.
func IsValidCategoryName(name string) bool {
	if len(name) < 3 || len(name) > 100 {
		return false
	}
	for _, c := range name {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && !unicode.IsSpace(c) &&
			!strings.ContainsRune("._-&'()", c) {
			return false
		}
	}
	return true
}

// IsValidAcademicYear checks the "YYYY/YYYY" session form where the second
// year directly follows the first (e.g. 2024/2025).
func IsValidAcademicYear(year string) bool {
	parts := strings.Split(year, "/")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 4 {
		return false
	}
	first, err1 := strconv.Atoi(parts[0])
	second, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return false
	}
	return second == first+1
}
