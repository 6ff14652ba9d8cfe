package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidNigerianPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{name: "mtn local", phone: "08031234567", want: true},
		{name: "glo local", phone: "07051234567", want: true},
		{name: "9mobile local", phone: "09091234567", want: true},
		{name: "international", phone: "2348031234567", want: true},
		{name: "international with plus", phone: "+2348031234567", want: true},
		{name: "spaces and dashes", phone: "0803 123-4567", want: true},
		{name: "too short", phone: "0803123456", want: false},
		{name: "too long", phone: "080312345678", want: false},
		{name: "no leading zero", phone: "8031234567", want: false},
		{name: "letters", phone: "0803ABC4567", want: false},
		{name: "empty", phone: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidNigerianPhone(tt.phone))
		})
	}
}

func TestIsValidBudgetCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "ADM-001", want: true},
		{code: "UTL-042", want: true},
		{code: "AD-001", want: false},
		{code: "ADMN-01", want: false},
		{code: "ADM-01", want: false},
		{code: "123-001", want: false},
		{code: "ADM-0A1", want: false},
		{code: "ADM001", want: false},
		{code: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidBudgetCode(tt.code))
		})
	}
}

func TestIsValidAcademicYear(t *testing.T) {
	tests := []struct {
		year string
		want bool
	}{
		{year: "2024/2025", want: true},
		{year: "1999/2000", want: true},
		{year: "2024/2026", want: false},
		{year: "2025/2024", want: false},
		{year: "2024-2025", want: false},
		{year: "24/25", want: false},
		{year: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidAcademicYear(tt.year))
		})
	}
}

func TestIsValidCategoryName(t *testing.T) {
	assert.True(t, IsValidCategoryName("Staff Welfare"))
	assert.True(t, IsValidCategoryName("Diesel & Generator"))
	assert.True(t, IsValidCategoryName("O'Level Exams (WAEC)"))
	assert.False(t, IsValidCategoryName("ab"))
	assert.False(t, IsValidCategoryName("Bad;Name"))
}

func TestIsValidDepartmentName(t *testing.T) {
	assert.True(t, IsValidDepartmentName("Sciences"))
	assert.True(t, IsValidDepartmentName("Admin & Finance"))
	assert.False(t, IsValidDepartmentName("Dept <script>"))
}
