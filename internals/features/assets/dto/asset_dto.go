package dto

import (
	"strings"
	"time"

	"bursary_backend/internals/features/assets/model"
	helper "bursary_backend/internals/helpers"
)

// CreateAssetRequest accepts an optional asset_tag so registers migrated from
// an older system keep their existing tags; left blank, a tag is generated.
type CreateAssetRequest struct {
	Tag             *string `json:"asset_tag" validate:"omitempty,max=16"`
	Name            string  `json:"asset_name" validate:"required,min=3,max=150"`
	Category        string  `json:"asset_category" validate:"required,oneof=furniture equipment vehicle building computer other"`
	Location        *string `json:"asset_location" validate:"omitempty,max=150"`
	AcquisitionDate string  `json:"asset_acquisition_date" validate:"required,datetime=2006-01-02"`
	AcquisitionCost float64 `json:"asset_acquisition_cost" validate:"required,gt=0"`
	SalvageValue    float64 `json:"asset_salvage_value" validate:"gte=0"`
	UsefulLifeYears int     `json:"asset_useful_life_years" validate:"required,min=1,max=50"`
	Condition       string  `json:"asset_condition" validate:"required,oneof=new good fair poor"`
}

func (r *CreateAssetRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(strings.ToLower(r.Category))
	r.Condition = strings.TrimSpace(strings.ToLower(r.Condition))
	if r.Tag != nil {
		tag := strings.ToUpper(strings.TrimSpace(*r.Tag))
		if tag == "" {
			r.Tag = nil
		} else {
			r.Tag = &tag
		}
	}
	if r.Location != nil {
		loc := strings.TrimSpace(*r.Location)
		if loc == "" {
			r.Location = nil
		} else {
			r.Location = &loc
		}
	}
}

// UpdateAssetRequest leaves acquisition cost and date alone; re-basing those
// would rewrite the depreciation history already posted.
type UpdateAssetRequest struct {
	Name            *string  `json:"asset_name" validate:"omitempty,min=3,max=150"`
	Category        *string  `json:"asset_category" validate:"omitempty,oneof=furniture equipment vehicle building computer other"`
	Location        *string  `json:"asset_location" validate:"omitempty,max=150"`
	SalvageValue    *float64 `json:"asset_salvage_value" validate:"omitempty,gte=0"`
	UsefulLifeYears *int     `json:"asset_useful_life_years" validate:"omitempty,min=1,max=50"`
	Condition       *string  `json:"asset_condition" validate:"omitempty,oneof=new good fair poor"`
}

func (r *UpdateAssetRequest) ApplyToModel(m *model.AssetModel) {
	if r.Name != nil {
		m.AssetName = strings.TrimSpace(*r.Name)
	}
	if r.Category != nil {
		m.AssetCategory = model.AssetCategory(strings.TrimSpace(strings.ToLower(*r.Category)))
	}
	if r.Location != nil {
		loc := strings.TrimSpace(*r.Location)
		if loc == "" {
			m.AssetLocation = nil
		} else {
			m.AssetLocation = &loc
		}
	}
	if r.SalvageValue != nil {
		m.AssetSalvageValue = *r.SalvageValue
	}
	if r.UsefulLifeYears != nil {
		m.AssetUsefulLifeYears = *r.UsefulLifeYears
	}
	if r.Condition != nil {
		m.AssetCondition = model.AssetCondition(strings.TrimSpace(strings.ToLower(*r.Condition)))
	}
}

type DisposeAssetRequest struct {
	DisposalValue float64 `json:"asset_disposal_value" validate:"gte=0"`
	DisposedAt    string  `json:"asset_disposed_at" validate:"required,datetime=2006-01-02"`
	WriteOff      bool    `json:"asset_write_off"`
}

type AssetResponse struct {
	ID                      string     `json:"asset_id"`
	Tag                     string     `json:"asset_tag"`
	Name                    string     `json:"asset_name"`
	Category                string     `json:"asset_category"`
	Location                *string    `json:"asset_location,omitempty"`
	AcquisitionDate         string     `json:"asset_acquisition_date"`
	AcquisitionCost         float64    `json:"asset_acquisition_cost"`
	SalvageValue            float64    `json:"asset_salvage_value"`
	UsefulLifeYears         int        `json:"asset_useful_life_years"`
	Condition               string     `json:"asset_condition"`
	Status                  string     `json:"asset_status"`
	DisposedAt              *string    `json:"asset_disposed_at,omitempty"`
	DisposalValue           *float64   `json:"asset_disposal_value,omitempty"`
	AccumulatedDepreciation float64    `json:"asset_accumulated_depreciation"`
	BookValue               float64    `json:"asset_book_value"`
	LastDepreciatedAt       *time.Time `json:"asset_last_depreciated_at,omitempty"`
	CreatedAt               time.Time  `json:"asset_created_at"`
	UpdatedAt               time.Time  `json:"asset_updated_at"`
}

func ToAssetResponse(m *model.AssetModel) *AssetResponse {
	resp := &AssetResponse{
		ID:                      m.AssetID.String(),
		Tag:                     m.AssetTag,
		Name:                    m.AssetName,
		Category:                string(m.AssetCategory),
		Location:                m.AssetLocation,
		AcquisitionDate:         helper.FormatDate(m.AssetAcquisitionDate),
		AcquisitionCost:         m.AssetAcquisitionCost,
		SalvageValue:            m.AssetSalvageValue,
		UsefulLifeYears:         m.AssetUsefulLifeYears,
		Condition:               string(m.AssetCondition),
		Status:                  string(m.AssetStatus),
		DisposalValue:           m.AssetDisposalValue,
		AccumulatedDepreciation: m.AssetAccumulatedDepreciation,
		BookValue:               m.AssetBookValue,
		LastDepreciatedAt:       m.AssetLastDepreciatedAt,
		CreatedAt:               m.AssetCreatedAt,
		UpdatedAt:               m.AssetUpdatedAt,
	}
	if m.AssetDisposedAt != nil {
		d := helper.FormatDate(*m.AssetDisposedAt)
		resp.DisposedAt = &d
	}
	return resp
}

func ToAssetResponses(models []model.AssetModel) []AssetResponse {
	out := make([]AssetResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToAssetResponse(&models[i]))
	}
	return out
}
