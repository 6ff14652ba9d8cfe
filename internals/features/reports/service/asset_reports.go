package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	assetModel "bursary_backend/internals/features/assets/model"
	assetService "bursary_backend/internals/features/assets/service"
	helper "bursary_backend/internals/helpers"
)

/* =======================================================
   ASSET REGISTER
   ======================================================= */

type AssetRegisterRow struct {
	Tag             string  `json:"asset_tag"`
	Name            string  `json:"asset_name"`
	Category        string  `json:"asset_category"`
	Location        string  `json:"asset_location"`
	AcquisitionDate string  `json:"acquisition_date"`
	Cost            float64 `json:"acquisition_cost"`
	Salvage         float64 `json:"salvage_value"`
	LifeYears       int     `json:"useful_life_years"`
	Accumulated     float64 `json:"accumulated_depreciation"`
	BookValue       float64 `json:"book_value"`
	Condition       string  `json:"condition"`
	Status          string  `json:"status"`
}

type AssetRegisterReport struct {
	AsOf             string             `json:"as_of"`
	Rows             []AssetRegisterRow `json:"rows"`
	TotalCost        float64            `json:"total_cost"`
	TotalAccumulated float64            `json:"total_accumulated_depreciation"`
	TotalBookValue   float64            `json:"total_book_value"`
}

// BuildAssetRegister values every asset as of the report date. Disposed and
// written-off assets keep their frozen figures.
func BuildAssetRegister(db *gorm.DB, asOf time.Time) (*AssetRegisterReport, error) {
	var assets []assetModel.AssetModel
	if err := db.Order("asset_acquisition_date ASC").Find(&assets).Error; err != nil {
		return nil, err
	}

	report := &AssetRegisterReport{
		AsOf: helper.FormatDate(asOf),
		Rows: make([]AssetRegisterRow, 0, len(assets)),
	}
	for i := range assets {
		a := &assets[i]
		assetService.Refresh(a, asOf)

		location := ""
		if a.AssetLocation != nil {
			location = *a.AssetLocation
		}
		report.Rows = append(report.Rows, AssetRegisterRow{
			Tag:             a.AssetTag,
			Name:            a.AssetName,
			Category:        string(a.AssetCategory),
			Location:        location,
			AcquisitionDate: helper.FormatDate(a.AssetAcquisitionDate),
			Cost:            a.AssetAcquisitionCost,
			Salvage:         a.AssetSalvageValue,
			LifeYears:       a.AssetUsefulLifeYears,
			Accumulated:     a.AssetAccumulatedDepreciation,
			BookValue:       a.AssetBookValue,
			Condition:       string(a.AssetCondition),
			Status:          string(a.AssetStatus),
		})

		report.TotalCost += a.AssetAcquisitionCost
		report.TotalAccumulated += a.AssetAccumulatedDepreciation
		report.TotalBookValue += a.AssetBookValue
	}

	report.TotalCost = helper.Round2(report.TotalCost)
	report.TotalAccumulated = helper.Round2(report.TotalAccumulated)
	report.TotalBookValue = helper.Round2(report.TotalBookValue)
	return report, nil
}

func (r *AssetRegisterReport) CSVHeader() []string {
	return []string{"Tag", "Name", "Category", "Location", "Acquired", "Cost", "Salvage", "Life (years)", "Accumulated Depreciation", "Book Value", "Condition", "Status"}
}

func (r *AssetRegisterReport) CSVRows() [][]string {
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	rows := make([][]string, 0, len(r.Rows)+1)
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.Tag, row.Name, row.Category, row.Location, row.AcquisitionDate,
			money(row.Cost), money(row.Salvage), fmt.Sprintf("%d", row.LifeYears),
			money(row.Accumulated), money(row.BookValue), row.Condition, row.Status,
		})
	}
	rows = append(rows, []string{
		"Total", "", "", "", "",
		money(r.TotalCost), "", "",
		money(r.TotalAccumulated), money(r.TotalBookValue), "", "",
	})
	return rows
}

func (r *AssetRegisterReport) Sections() []HTMLSection {
	return []HTMLSection{
		{
			Heading: "Asset Register",
			Notes:   []string{"As of: " + r.AsOf},
			Header:  r.CSVHeader(),
			Rows:    r.CSVRows(),
		},
	}
}

/* =======================================================
   DEPRECIATION SCHEDULE
   ======================================================= */

type DepreciationScheduleRow struct {
	Tag         string  `json:"asset_tag"`
	Name        string  `json:"asset_name"`
	Year        int     `json:"year"`
	Opening     float64 `json:"opening_book_value"`
	Charge      float64 `json:"depreciation_charge"`
	Accumulated float64 `json:"accumulated_depreciation"`
	Closing     float64 `json:"closing_book_value"`
}

type DepreciationScheduleReport struct {
	Rows []DepreciationScheduleRow `json:"rows"`
}

// BuildDepreciationSchedule lays out every depreciable asset's full-life
// schedule, one row per asset-year.
func BuildDepreciationSchedule(db *gorm.DB) (*DepreciationScheduleReport, error) {
	var assets []assetModel.AssetModel
	if err := db.Where("asset_status = ?", assetModel.AssetActive).
		Order("asset_tag ASC").Find(&assets).Error; err != nil {
		return nil, err
	}

	report := &DepreciationScheduleReport{Rows: make([]DepreciationScheduleRow, 0, len(assets)*4)}
	for i := range assets {
		a := &assets[i]
		for _, year := range assetService.BuildSchedule(a) {
			report.Rows = append(report.Rows, DepreciationScheduleRow{
				Tag:         a.AssetTag,
				Name:        a.AssetName,
				Year:        year.Year,
				Opening:     year.Opening,
				Charge:      year.Charge,
				Accumulated: year.Accumulated,
				Closing:     year.Closing,
			})
		}
	}
	return report, nil
}

func (r *DepreciationScheduleReport) CSVHeader() []string {
	return []string{"Tag", "Name", "Year", "Opening", "Charge", "Accumulated", "Closing"}
}

func (r *DepreciationScheduleReport) CSVRows() [][]string {
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	rows := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.Tag, row.Name, fmt.Sprintf("%d", row.Year),
			money(row.Opening), money(row.Charge), money(row.Accumulated), money(row.Closing),
		})
	}
	return rows
}

func (r *DepreciationScheduleReport) Sections() []HTMLSection {
	return []HTMLSection{
		{
			Heading: "Depreciation Schedule",
			Header:  r.CSVHeader(),
			Rows:    r.CSVRows(),
		},
	}
}
