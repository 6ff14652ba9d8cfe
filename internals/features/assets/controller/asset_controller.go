package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bursary_backend/internals/features/assets/dto"
	"bursary_backend/internals/features/assets/model"
	"bursary_backend/internals/features/assets/service"
	helper "bursary_backend/internals/helpers"
)

type AssetController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssetController(db *gorm.DB) *AssetController {
	return &AssetController{DB: db, Validator: helper.Validate()}
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}

// generateUniqueTag retries on the unlikely suffix collision.
func (ctl *AssetController) generateUniqueTag() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		tag := helper.GenerateAssetTag()
		var count int64
		if err := ctl.DB.Model(&model.AssetModel{}).Where("asset_tag = ?", tag).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return tag, nil
		}
	}
	return "", errors.New("could not generate a unique asset tag")
}

// POST /api/a/assets
func (ctl *AssetController) CreateAsset(c *fiber.Ctx) error {
	var req dto.CreateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.SalvageValue >= req.AcquisitionCost {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Salvage value must be below the acquisition cost")
	}

	acquisitionDate, err := helper.ParseDate(req.AcquisitionDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid acquisition date")
	}
	if acquisitionDate.After(timeNowUTC()) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Acquisition date cannot be in the future")
	}

	var tag string
	if req.Tag != nil {
		if !helper.IsValidAssetTag(*req.Tag) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Asset tag must look like AST-1A2B3C4D")
		}
		var count int64
		if err := ctl.DB.Model(&model.AssetModel{}).Where("asset_tag = ?", *req.Tag).Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify asset tag")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Asset tag already in use")
		}
		tag = *req.Tag
	} else {
		generated, err := ctl.generateUniqueTag()
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate asset tag")
		}
		tag = generated
	}

	asset := &model.AssetModel{
		AssetTag:             tag,
		AssetName:            req.Name,
		AssetCategory:        model.AssetCategory(req.Category),
		AssetLocation:        req.Location,
		AssetAcquisitionDate: acquisitionDate,
		AssetAcquisitionCost: helper.Round2(req.AcquisitionCost),
		AssetSalvageValue:    helper.Round2(req.SalvageValue),
		AssetUsefulLifeYears: req.UsefulLifeYears,
		AssetCondition:       model.AssetCondition(req.Condition),
		AssetStatus:          model.AssetActive,
		AssetBookValue:       helper.Round2(req.AcquisitionCost),
	}
	// Back-dated acquisitions accrue straight away.
	service.Refresh(asset, timeNowUTC())

	if err := ctl.DB.Create(asset).Error; err != nil {
		log.Println("[ERROR] Failed to create asset:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create asset")
	}

	return helper.JsonCreated(c, "Asset registered successfully", dto.ToAssetResponse(asset))
}

func (ctl *AssetController) filteredQuery(c *fiber.Ctx) (*gorm.DB, error) {
	tx := ctl.DB.Model(&model.AssetModel{})

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		if !model.AssetCategory(category).Valid() {
			return nil, errors.New("invalid category filter")
		}
		tx = tx.Where("asset_category = ?", category)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.AssetStatus(status).Valid() {
			return nil, errors.New("invalid status filter")
		}
		tx = tx.Where("asset_status = ?", status)
	}
	if condition := strings.TrimSpace(c.Query("condition")); condition != "" {
		if !model.AssetCondition(condition).Valid() {
			return nil, errors.New("invalid condition filter")
		}
		tx = tx.Where("asset_condition = ?", condition)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		if tag := strings.ToUpper(q); helper.IsValidAssetTag(tag) {
			// a complete tag can hit the unique index directly
			tx = tx.Where("asset_tag = ?", tag)
		} else {
			pattern := "%" + q + "%"
			tx = tx.Where("asset_tag ILIKE ? OR asset_name ILIKE ? OR asset_location ILIKE ?",
				pattern, pattern, pattern)
		}
	}
	return tx, nil
}

// GET /api/u/assets
// The register recomputes depreciation on the way out so figures stay fresh
// between scheduler runs. ?format=csv|xlsx streams a download instead.
func (ctl *AssetController) GetAssets(c *fiber.Ctx) error {
	tx, err := ctl.filteredQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if format := helper.ExportFormat(c); format != "" {
		return ctl.exportAssets(c, tx, format)
	}

	page, perPage, offset := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assets")
	}

	var assets []model.AssetModel
	if err := tx.Order("asset_created_at DESC").Limit(perPage).Offset(offset).Find(&assets).Error; err != nil {
		log.Println("[ERROR] Failed to fetch assets:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assets")
	}

	now := timeNowUTC()
	for i := range assets {
		service.Refresh(&assets[i], now)
	}

	pagination := helper.BuildPaginationFromPage(page, perPage, total)
	return helper.JsonList(c, dto.ToAssetResponses(assets), pagination)
}

func (ctl *AssetController) exportAssets(c *fiber.Ctx, tx *gorm.DB, format string) error {
	var assets []model.AssetModel
	if err := tx.Order("asset_acquisition_date ASC").Limit(10000).Find(&assets).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve assets")
	}

	now := timeNowUTC()
	for i := range assets {
		service.Refresh(&assets[i], now)
	}

	header := []string{"Tag", "Name", "Category", "Location", "Acquired", "Cost", "Salvage", "Life (years)", "Accumulated Depreciation", "Book Value", "Condition", "Status"}
	filename := "asset-register-" + now.Format("20060102")

	switch format {
	case "csv":
		rows := make([][]string, 0, len(assets))
		for i := range assets {
			a := &assets[i]
			location := ""
			if a.AssetLocation != nil {
				location = *a.AssetLocation
			}
			rows = append(rows, []string{
				a.AssetTag, a.AssetName, string(a.AssetCategory), location,
				helper.FormatDate(a.AssetAcquisitionDate),
				fmt.Sprintf("%.2f", a.AssetAcquisitionCost),
				fmt.Sprintf("%.2f", a.AssetSalvageValue),
				fmt.Sprintf("%d", a.AssetUsefulLifeYears),
				fmt.Sprintf("%.2f", a.AssetAccumulatedDepreciation),
				fmt.Sprintf("%.2f", a.AssetBookValue),
				string(a.AssetCondition), string(a.AssetStatus),
			})
		}
		return helper.SendCSV(c, filename+".csv", header, rows)
	case "xlsx":
		rows := make([][]any, 0, len(assets))
		for i := range assets {
			a := &assets[i]
			location := ""
			if a.AssetLocation != nil {
				location = *a.AssetLocation
			}
			rows = append(rows, []any{
				a.AssetTag, a.AssetName, string(a.AssetCategory), location,
				helper.FormatDate(a.AssetAcquisitionDate),
				a.AssetAcquisitionCost, a.AssetSalvageValue, a.AssetUsefulLifeYears,
				a.AssetAccumulatedDepreciation, a.AssetBookValue,
				string(a.AssetCondition), string(a.AssetStatus),
			})
		}
		return helper.SendXLSX(c, filename+".xlsx", "Asset Register", header, rows)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, "Unsupported export format")
}

// GET /api/u/assets/:id
func (ctl *AssetController) GetAssetByID(c *fiber.Ctx) error {
	asset, fe := ctl.findAsset(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	service.Refresh(asset, timeNowUTC())
	return helper.JsonOK(c, "Asset fetched successfully", dto.ToAssetResponse(asset))
}

// GET /api/u/assets/:id/schedule
func (ctl *AssetController) GetAssetSchedule(c *fiber.Ctx) error {
	asset, fe := ctl.findAsset(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, "Depreciation schedule fetched successfully", fiber.Map{
		"asset":    dto.ToAssetResponse(asset),
		"schedule": service.BuildSchedule(asset),
	})
}

func (ctl *AssetController) findAsset(c *fiber.Ctx) (*model.AssetModel, *fiber.Error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid asset ID")
	}
	var asset model.AssetModel
	if err := ctl.DB.First(&asset, "asset_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Asset not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve asset")
	}
	return &asset, nil
}

// PUT /api/a/assets/:id
func (ctl *AssetController) UpdateAsset(c *fiber.Ctx) error {
	asset, fe := ctl.findAsset(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if asset.AssetStatus != model.AssetActive {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Cannot update a %s asset", asset.AssetStatus))
	}

	var req dto.UpdateAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.SalvageValue != nil && *req.SalvageValue >= asset.AssetAcquisitionCost {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Salvage value must be below the acquisition cost")
	}

	req.ApplyToModel(asset)
	service.Refresh(asset, timeNowUTC())

	if err := ctl.DB.Save(asset).Error; err != nil {
		log.Println("[ERROR] Failed to update asset:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update asset")
	}

	return helper.JsonUpdated(c, "Asset updated successfully", dto.ToAssetResponse(asset))
}

// PATCH /api/a/assets/:id/dispose
// Freezes depreciation at the disposal date and records what it fetched.
// asset_write_off marks scrapped assets with no sale proceeds.
func (ctl *AssetController) DisposeAsset(c *fiber.Ctx) error {
	asset, fe := ctl.findAsset(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if asset.AssetStatus != model.AssetActive {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Asset is already %s", asset.AssetStatus))
	}

	var req dto.DisposeAssetRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	disposedAt, err := helper.ParseDate(req.DisposedAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid disposal date")
	}
	if disposedAt.Before(asset.AssetAcquisitionDate) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Disposal date cannot precede the acquisition date")
	}

	status := model.AssetDisposed
	if req.WriteOff {
		status = model.AssetWrittenOff
	}

	accumulated := service.AccumulatedAsOf(asset, disposedAt)
	disposalValue := helper.Round2(req.DisposalValue)

	if err := ctl.DB.Model(asset).Updates(map[string]any{
		"asset_status":                   status,
		"asset_disposed_at":              disposedAt,
		"asset_disposal_value":           disposalValue,
		"asset_accumulated_depreciation": accumulated,
		"asset_book_value":               helper.Round2(asset.AssetAcquisitionCost - accumulated),
	}).Error; err != nil {
		log.Println("[ERROR] Failed to dispose asset:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to dispose asset")
	}
	asset.AssetStatus = status
	asset.AssetDisposedAt = &disposedAt
	asset.AssetDisposalValue = &disposalValue
	asset.AssetAccumulatedDepreciation = accumulated
	asset.AssetBookValue = helper.Round2(asset.AssetAcquisitionCost - accumulated)

	return helper.JsonUpdated(c, "Asset disposed successfully", dto.ToAssetResponse(asset))
}

// DELETE /api/a/assets/:id
func (ctl *AssetController) DeleteAsset(c *fiber.Ctx) error {
	asset, fe := ctl.findAsset(c)
	if fe != nil {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := ctl.DB.Delete(asset).Error; err != nil {
		log.Println("[ERROR] Failed to delete asset:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete asset")
	}

	return helper.JsonDeleted(c, "Asset deleted successfully", fiber.Map{"asset_id": asset.AssetID})
}
