package service

import (
	"time"

	"gorm.io/gorm"

	"bursary_backend/internals/features/assets/model"
	helper "bursary_backend/internals/helpers"
)

/* ===============================
   Straight-line depreciation
=================================*/

// AnnualCharge is the straight-line yearly write-down.
func AnnualCharge(asset *model.AssetModel) float64 {
	if asset.AssetUsefulLifeYears <= 0 {
		return 0
	}
	return helper.Round2((asset.AssetAcquisitionCost - asset.AssetSalvageValue) / float64(asset.AssetUsefulLifeYears))
}

// MonthlyCharge is one twelfth of the annual charge.
func MonthlyCharge(asset *model.AssetModel) float64 {
	if asset.AssetUsefulLifeYears <= 0 {
		return 0
	}
	return helper.Round2((asset.AssetAcquisitionCost - asset.AssetSalvageValue) / float64(asset.AssetUsefulLifeYears) / 12)
}

// AccumulatedAsOf is the total depreciation charged up to a date: full months
// since acquisition times the monthly charge, never past the salvage floor.
func AccumulatedAsOf(asset *model.AssetModel, asOf time.Time) float64 {
	months := helper.MonthsBetween(asset.AssetAcquisitionDate, asOf)
	accumulated := float64(months) * MonthlyCharge(asset)
	ceiling := asset.AssetAcquisitionCost - asset.AssetSalvageValue
	if accumulated > ceiling {
		accumulated = ceiling
	}
	return helper.Round2(accumulated)
}

// BookValueAsOf is cost minus accumulated depreciation at a date.
func BookValueAsOf(asset *model.AssetModel, asOf time.Time) float64 {
	return helper.Round2(asset.AssetAcquisitionCost - AccumulatedAsOf(asset, asOf))
}

// Refresh recomputes the depreciation columns in place. Disposed and
// written-off assets keep the figures frozen at their last posting.
func Refresh(asset *model.AssetModel, asOf time.Time) {
	if !asset.Depreciable() {
		return
	}
	asset.AssetAccumulatedDepreciation = AccumulatedAsOf(asset, asOf)
	asset.AssetBookValue = BookValueAsOf(asset, asOf)
}

/* ===============================
   Depreciation schedule
=================================*/

// ScheduleRow is one year of an asset's depreciation schedule.
type ScheduleRow struct {
	Year        int     `json:"year"`
	Opening     float64 `json:"opening_book_value"`
	Charge      float64 `json:"depreciation_charge"`
	Accumulated float64 `json:"accumulated_depreciation"`
	Closing     float64 `json:"closing_book_value"`
}

// BuildSchedule lays out the asset's full-life schedule, one row per year of
// useful life. The final year absorbs rounding so the closing book value
// lands exactly on the salvage value.
func BuildSchedule(asset *model.AssetModel) []ScheduleRow {
	rows := make([]ScheduleRow, 0, asset.AssetUsefulLifeYears)
	annual := AnnualCharge(asset)
	opening := asset.AssetAcquisitionCost
	accumulated := 0.0

	for year := 1; year <= asset.AssetUsefulLifeYears; year++ {
		charge := annual
		if year == asset.AssetUsefulLifeYears {
			charge = helper.Round2(opening - asset.AssetSalvageValue)
		}
		accumulated = helper.Round2(accumulated + charge)
		closing := helper.Round2(opening - charge)
		rows = append(rows, ScheduleRow{
			Year:        asset.AssetAcquisitionDate.Year() + year - 1,
			Opening:     opening,
			Charge:      charge,
			Accumulated: accumulated,
			Closing:     closing,
		})
		opening = closing
	}
	return rows
}

/* ===============================
   Monthly posting (scheduler)
=================================*/

// PostDepreciation snapshots accumulated depreciation and book value for
// every active asset. The monthly scheduler calls this; it returns how many
// assets were updated.
func PostDepreciation(db *gorm.DB, asOf time.Time) (int64, error) {
	var assets []model.AssetModel
	if err := db.Where("asset_status = ?", model.AssetActive).Find(&assets).Error; err != nil {
		return 0, err
	}

	var posted int64
	for i := range assets {
		asset := &assets[i]
		accumulated := AccumulatedAsOf(asset, asOf)
		if helper.MoneyEquals(accumulated, asset.AssetAccumulatedDepreciation) && asset.AssetLastDepreciatedAt != nil {
			continue
		}
		err := db.Model(asset).Updates(map[string]any{
			"asset_accumulated_depreciation": accumulated,
			"asset_book_value":               helper.Round2(asset.AssetAcquisitionCost - accumulated),
			"asset_last_depreciated_at":      asOf,
		}).Error
		if err != nil {
			return posted, err
		}
		posted++
	}
	return posted, nil
}
