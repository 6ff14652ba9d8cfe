package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	feeModel "bursary_backend/internals/features/finance/fees/model"
)

func TestCurrentAcademicPeriod(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		wantYear string
		wantTerm feeModel.Term
	}{
		{name: "september opens the session", now: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), wantYear: "2024/2025", wantTerm: feeModel.TermFirst},
		{name: "december still first term", now: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), wantYear: "2024/2025", wantTerm: feeModel.TermFirst},
		{name: "january flips to second term", now: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), wantYear: "2024/2025", wantTerm: feeModel.TermSecond},
		{name: "april closes second term", now: time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), wantYear: "2024/2025", wantTerm: feeModel.TermSecond},
		{name: "may opens third term", now: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), wantYear: "2024/2025", wantTerm: feeModel.TermThird},
		{name: "august ends the session", now: time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), wantYear: "2024/2025", wantTerm: feeModel.TermThird},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, term := CurrentAcademicPeriod(tt.now)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantTerm, term)
		})
	}
}
