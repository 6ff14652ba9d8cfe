package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/finance/fees/model"
	helper "bursary_backend/internals/helpers"
)

// ComputeDiscount returns the naira discount a scholarship grants on an
// original amount. The discount never exceeds the original.
func ComputeDiscount(s *model.ScholarshipModel, original float64) float64 {
	switch s.ScholarshipType {
	case model.ScholarshipPercentage:
		if s.ScholarshipPercentageOff == nil {
			return 0
		}
		return helper.Round2(original * *s.ScholarshipPercentageOff / 100)
	case model.ScholarshipFixedAmount:
		if s.ScholarshipFixedOff == nil {
			return 0
		}
		if *s.ScholarshipFixedOff > original {
			return helper.Round2(original)
		}
		return helper.Round2(*s.ScholarshipFixedOff)
	case model.ScholarshipFullWaiver:
		return helper.Round2(original)
	}
	return 0
}

// ScholarshipValue is the figure snapshotted onto an assignment: the
// percentage for percentage awards, the naira amount for fixed ones.
func ScholarshipValue(s *model.ScholarshipModel) *float64 {
	switch s.ScholarshipType {
	case model.ScholarshipPercentage:
		return s.ScholarshipPercentageOff
	case model.ScholarshipFixedAmount:
		return s.ScholarshipFixedOff
	}
	return nil
}

// AppliesTo reports whether the scholarship scope covers the student.
func AppliesTo(s *model.ScholarshipModel, studentID, classID uuid.UUID) bool {
	switch s.ScholarshipApplicableTo {
	case model.ScopeAll:
		return true
	case model.ScopeSpecificClasses:
		for _, id := range s.ScholarshipClassIDs {
			if id == classID.String() {
				return true
			}
		}
	case model.ScopeSpecificStudents:
		for _, id := range s.ScholarshipStudentIDs {
			if id == studentID.String() {
				return true
			}
		}
	}
	return false
}

// IsWithinWindow reports whether the scholarship is usable on the given day.
func IsWithinWindow(s *model.ScholarshipModel, at time.Time) bool {
	day := at.Truncate(24 * time.Hour)
	if day.Before(s.ScholarshipStartDate.Truncate(24 * time.Hour)) {
		return false
	}
	if s.ScholarshipEndDate != nil && day.After(s.ScholarshipEndDate.Truncate(24*time.Hour)) {
		return false
	}
	return true
}

func HasCapacity(s *model.ScholarshipModel) bool {
	if s.ScholarshipMaxBeneficiaries == nil {
		return true
	}
	return s.ScholarshipCurrentBeneficiaries < *s.ScholarshipMaxBeneficiaries
}

// ExpireScholarships flips active awards whose end date has passed. The
// daily scheduler calls this; it returns how many rows changed.
func ExpireScholarships(db *gorm.DB) (int64, error) {
	res := db.Model(&model.ScholarshipModel{}).
		Where("scholarship_status = ? AND scholarship_end_date IS NOT NULL AND scholarship_end_date < ?",
			model.ScholarshipActive, time.Now().UTC().Truncate(24*time.Hour)).
		Update("scholarship_status", model.ScholarshipExpired)
	return res.RowsAffected, res.Error
}
