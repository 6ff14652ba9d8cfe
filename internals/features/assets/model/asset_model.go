package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssetCategory string

const (
	AssetFurniture AssetCategory = "furniture"
	AssetEquipment AssetCategory = "equipment"
	AssetVehicle   AssetCategory = "vehicle"
	AssetBuilding  AssetCategory = "building"
	AssetComputer  AssetCategory = "computer"
	AssetOther     AssetCategory = "other"
)

func (c AssetCategory) Valid() bool {
	switch c {
	case AssetFurniture, AssetEquipment, AssetVehicle, AssetBuilding, AssetComputer, AssetOther:
		return true
	}
	return false
}

type AssetCondition string

const (
	ConditionNew  AssetCondition = "new"
	ConditionGood AssetCondition = "good"
	ConditionFair AssetCondition = "fair"
	ConditionPoor AssetCondition = "poor"
)

func (c AssetCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type AssetStatus string

const (
	AssetActive     AssetStatus = "active"
	AssetDisposed   AssetStatus = "disposed"
	AssetWrittenOff AssetStatus = "written_off"
)

func (s AssetStatus) Valid() bool {
	switch s {
	case AssetActive, AssetDisposed, AssetWrittenOff:
		return true
	}
	return false
}

// AssetModel is one register entry. AccumulatedDepreciation and BookValue are
// monthly snapshots posted by the scheduler; reads recompute them so reports
// never show stale figures between runs.
type AssetModel struct {
	AssetID              uuid.UUID      `gorm:"column:asset_id;type:uuid;default:gen_random_uuid();primaryKey" json:"asset_id"`
	AssetTag             string         `gorm:"column:asset_tag;size:20;not null;unique" json:"asset_tag"`
	AssetName            string         `gorm:"column:asset_name;size:150;not null" json:"asset_name"`
	AssetCategory        AssetCategory  `gorm:"column:asset_category;type:varchar(20);not null" json:"asset_category"`
	AssetLocation        *string        `gorm:"column:asset_location;size:150" json:"asset_location,omitempty"`
	AssetAcquisitionDate time.Time      `gorm:"column:asset_acquisition_date;type:date;not null" json:"asset_acquisition_date"`
	AssetAcquisitionCost float64        `gorm:"column:asset_acquisition_cost;not null" json:"asset_acquisition_cost"`
	AssetSalvageValue    float64        `gorm:"column:asset_salvage_value;not null;default:0" json:"asset_salvage_value"`
	AssetUsefulLifeYears int            `gorm:"column:asset_useful_life_years;not null" json:"asset_useful_life_years"`
	AssetCondition       AssetCondition `gorm:"column:asset_condition;type:varchar(10);not null" json:"asset_condition"`
	AssetStatus          AssetStatus    `gorm:"column:asset_status;type:varchar(15);not null;default:'active'" json:"asset_status"`

	AssetDisposedAt    *time.Time `gorm:"column:asset_disposed_at;type:date" json:"asset_disposed_at,omitempty"`
	AssetDisposalValue *float64   `gorm:"column:asset_disposal_value" json:"asset_disposal_value,omitempty"`

	AssetAccumulatedDepreciation float64    `gorm:"column:asset_accumulated_depreciation;not null;default:0" json:"asset_accumulated_depreciation"`
	AssetBookValue               float64    `gorm:"column:asset_book_value;not null" json:"asset_book_value"`
	AssetLastDepreciatedAt       *time.Time `gorm:"column:asset_last_depreciated_at;type:timestamptz" json:"asset_last_depreciated_at,omitempty"`

	AssetCreatedAt time.Time      `gorm:"column:asset_created_at;autoCreateTime" json:"asset_created_at"`
	AssetUpdatedAt time.Time      `gorm:"column:asset_updated_at;autoUpdateTime" json:"asset_updated_at"`
	AssetDeletedAt gorm.DeletedAt `gorm:"column:asset_deleted_at;index" json:"-"`
}

func (AssetModel) TableName() string {
	return "assets"
}

func (m *AssetModel) BeforeCreate(tx *gorm.DB) error {
	if m.AssetID == uuid.Nil {
		m.AssetID = uuid.New()
	}
	if m.AssetStatus == "" {
		m.AssetStatus = AssetActive
	}
	return nil
}

// Depreciable reports whether the asset still takes a monthly charge.
func (m *AssetModel) Depreciable() bool {
	return m.AssetStatus == AssetActive
}
