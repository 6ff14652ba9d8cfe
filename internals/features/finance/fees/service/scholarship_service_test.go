package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"bursary_backend/internals/features/finance/fees/model"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name     string
		award    model.ScholarshipModel
		original float64
		want     float64
	}{
		{
			name:     "percentage",
			award:    model.ScholarshipModel{ScholarshipType: model.ScholarshipPercentage, ScholarshipPercentageOff: floatPtr(25)},
			original: 80_000,
			want:     20_000,
		},
		{
			name:     "percentage rounds to kobo",
			award:    model.ScholarshipModel{ScholarshipType: model.ScholarshipPercentage, ScholarshipPercentageOff: floatPtr(33.33)},
			original: 10_000,
			want:     3_333,
		},
		{
			name:     "percentage without a value grants nothing",
			award:    model.ScholarshipModel{ScholarshipType: model.ScholarshipPercentage},
			original: 80_000,
			want:     0,
		},
		{
			name:     "fixed amount",
			award:    model.ScholarshipModel{ScholarshipType: model.ScholarshipFixedAmount, ScholarshipFixedOff: floatPtr(15_000)},
			original: 80_000,
			want:     15_000,
		},
		{
			name:     "fixed amount clamped to the original",
			award:    model.ScholarshipModel{ScholarshipType: model.ScholarshipFixedAmount, ScholarshipFixedOff: floatPtr(100_000)},
			original: 80_000,
			want:     80_000,
		},
		{
			name:     "fixed amount without a value grants nothing",
			award:    model.ScholarshipModel{ScholarshipType: model.ScholarshipFixedAmount},
			original: 80_000,
			want:     0,
		},
		{
			name:     "full waiver",
			award:    model.ScholarshipModel{ScholarshipType: model.ScholarshipFullWaiver},
			original: 80_000,
			want:     80_000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeDiscount(&tt.award, tt.original), 0.001)
		})
	}
}

func TestScholarshipValue(t *testing.T) {
	pct := model.ScholarshipModel{ScholarshipType: model.ScholarshipPercentage, ScholarshipPercentageOff: floatPtr(50)}
	fixed := model.ScholarshipModel{ScholarshipType: model.ScholarshipFixedAmount, ScholarshipFixedOff: floatPtr(10_000)}
	waiver := model.ScholarshipModel{ScholarshipType: model.ScholarshipFullWaiver}

	assert.InDelta(t, 50, *ScholarshipValue(&pct), 0.001)
	assert.InDelta(t, 10_000, *ScholarshipValue(&fixed), 0.001)
	assert.Nil(t, ScholarshipValue(&waiver))
}

func TestAppliesTo(t *testing.T) {
	studentID := uuid.New()
	classID := uuid.New()

	t.Run("all scope covers everyone", func(t *testing.T) {
		s := model.ScholarshipModel{ScholarshipApplicableTo: model.ScopeAll}
		assert.True(t, AppliesTo(&s, studentID, classID))
	})

	t.Run("class scope matches by class", func(t *testing.T) {
		s := model.ScholarshipModel{
			ScholarshipApplicableTo: model.ScopeSpecificClasses,
			ScholarshipClassIDs:     pq.StringArray{uuid.NewString(), classID.String()},
		}
		assert.True(t, AppliesTo(&s, studentID, classID))
		assert.False(t, AppliesTo(&s, studentID, uuid.New()))
	})

	t.Run("student scope matches by student", func(t *testing.T) {
		s := model.ScholarshipModel{
			ScholarshipApplicableTo: model.ScopeSpecificStudents,
			ScholarshipStudentIDs:   pq.StringArray{studentID.String()},
		}
		assert.True(t, AppliesTo(&s, studentID, classID))
		assert.False(t, AppliesTo(&s, uuid.New(), classID))
	})

	t.Run("empty scope list covers no one", func(t *testing.T) {
		s := model.ScholarshipModel{ScholarshipApplicableTo: model.ScopeSpecificStudents}
		assert.False(t, AppliesTo(&s, studentID, classID))
	})
}

func TestIsWithinWindow(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	openEnded := model.ScholarshipModel{ScholarshipStartDate: start}
	bounded := model.ScholarshipModel{ScholarshipStartDate: start, ScholarshipEndDate: &end}

	tests := []struct {
		name  string
		award *model.ScholarshipModel
		at    time.Time
		want  bool
	}{
		{name: "before the window", award: &bounded, at: start.AddDate(0, 0, -1), want: false},
		{name: "first day counts", award: &bounded, at: start, want: true},
		{name: "late on the first day counts", award: &bounded, at: start.Add(18 * time.Hour), want: true},
		{name: "mid window", award: &bounded, at: start.AddDate(0, 4, 0), want: true},
		{name: "last day counts", award: &bounded, at: end, want: true},
		{name: "day after the end", award: &bounded, at: end.AddDate(0, 0, 1), want: false},
		{name: "open ended never expires", award: &openEnded, at: start.AddDate(10, 0, 0), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithinWindow(tt.award, tt.at))
		})
	}
}

func TestHasCapacity(t *testing.T) {
	unlimited := model.ScholarshipModel{ScholarshipCurrentBeneficiaries: 500}
	assert.True(t, HasCapacity(&unlimited))

	withRoom := model.ScholarshipModel{ScholarshipMaxBeneficiaries: intPtr(10), ScholarshipCurrentBeneficiaries: 9}
	assert.True(t, HasCapacity(&withRoom))

	full := model.ScholarshipModel{ScholarshipMaxBeneficiaries: intPtr(10), ScholarshipCurrentBeneficiaries: 10}
	assert.False(t, HasCapacity(&full))
}
