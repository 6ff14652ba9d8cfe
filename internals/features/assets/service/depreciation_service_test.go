package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bursary_backend/internals/features/assets/model"
)

func newAsset(cost, salvage float64, lifeYears int, acquired time.Time) *model.AssetModel {
	return &model.AssetModel{
		AssetAcquisitionCost: cost,
		AssetSalvageValue:    salvage,
		AssetUsefulLifeYears: lifeYears,
		AssetAcquisitionDate: acquired,
		AssetStatus:          model.AssetActive,
	}
}

func TestAnnualAndMonthlyCharge(t *testing.T) {
	acquired := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	bus := newAsset(6_000_000, 600_000, 5, acquired)
	assert.InDelta(t, 1_080_000, AnnualCharge(bus), 0.001)
	assert.InDelta(t, 90_000, MonthlyCharge(bus), 0.001)

	land := newAsset(10_000_000, 10_000_000, 0, acquired)
	assert.Zero(t, AnnualCharge(land))
	assert.Zero(t, MonthlyCharge(land))
}

func TestAccumulatedAsOf(t *testing.T) {
	acquired := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	asset := newAsset(1_200_000, 0, 10, acquired) // 10k per month

	tests := []struct {
		name string
		asOf time.Time
		want float64
	}{
		{name: "before acquisition", asOf: acquired.AddDate(0, 0, -30), want: 0},
		{name: "same month", asOf: acquired.AddDate(0, 0, 10), want: 0},
		{name: "six months", asOf: acquired.AddDate(0, 6, 0), want: 60_000},
		{name: "two years", asOf: acquired.AddDate(2, 0, 0), want: 240_000},
		{name: "capped at depreciable base", asOf: acquired.AddDate(25, 0, 0), want: 1_200_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AccumulatedAsOf(asset, tt.asOf), 0.001)
		})
	}
}

func TestAccumulatedNeverPassesSalvageFloor(t *testing.T) {
	acquired := time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC)
	asset := newAsset(500_000, 50_000, 4, acquired)

	farFuture := acquired.AddDate(30, 0, 0)
	assert.InDelta(t, 450_000, AccumulatedAsOf(asset, farFuture), 0.001)
	assert.InDelta(t, 50_000, BookValueAsOf(asset, farFuture), 0.001)
}

func TestRefreshSkipsNonDepreciable(t *testing.T) {
	acquired := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)

	disposed := newAsset(800_000, 0, 4, acquired)
	disposed.AssetStatus = model.AssetDisposed
	disposed.AssetAccumulatedDepreciation = 123_456
	disposed.AssetBookValue = 676_544

	Refresh(disposed, acquired.AddDate(3, 0, 0))
	assert.InDelta(t, 123_456, disposed.AssetAccumulatedDepreciation, 0.001)
	assert.InDelta(t, 676_544, disposed.AssetBookValue, 0.001)

	active := newAsset(720_000, 0, 4, acquired) // 15k a month
	Refresh(active, acquired.AddDate(1, 0, 0))
	assert.InDelta(t, 180_000, active.AssetAccumulatedDepreciation, 0.001)
	assert.InDelta(t, 540_000, active.AssetBookValue, 0.001)
}

func TestBuildSchedule(t *testing.T) {
	acquired := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	asset := newAsset(1_000_000, 100_000, 3, acquired)

	rows := BuildSchedule(asset)
	require.Len(t, rows, 3)

	assert.Equal(t, 2024, rows[0].Year)
	assert.InDelta(t, 1_000_000, rows[0].Opening, 0.001)
	assert.InDelta(t, 300_000, rows[0].Charge, 0.001)
	assert.InDelta(t, 700_000, rows[0].Closing, 0.001)

	assert.Equal(t, 2026, rows[2].Year)
	assert.InDelta(t, 100_000, rows[2].Closing, 0.001, "closing book value must land on salvage")
	assert.InDelta(t, 900_000, rows[2].Accumulated, 0.001)
}

func TestBuildScheduleFinalYearAbsorbsRounding(t *testing.T) {
	acquired := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	asset := newAsset(100_000, 0, 3, acquired) // 33,333.33 a year does not divide evenly

	rows := BuildSchedule(asset)
	require.Len(t, rows, 3)

	assert.InDelta(t, 33_333.33, rows[0].Charge, 0.001)
	assert.InDelta(t, 33_333.34, rows[2].Charge, 0.001, "final year picks up the rounding remainder")
	assert.InDelta(t, 0, rows[2].Closing, 0.001)
	assert.InDelta(t, 100_000, rows[2].Accumulated, 0.001)
}
