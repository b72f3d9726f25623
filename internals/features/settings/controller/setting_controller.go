// file: internals/features/settings/controller/setting_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "academyku_backend/internals/features/settings/dto"
	model "academyku_backend/internals/features/settings/model"
	svc "academyku_backend/internals/features/settings/service"
	helper "academyku_backend/internals/helpers"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// GET /api/public/settings — hanya key whitelisted + default
func (h *SettingController) GetPublicSettings(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", svc.Cache.Snapshot(svc.PublicKeys))
}

// GET /api/a/settings (admin)
func (h *SettingController) List(c *fiber.Ctx) error {
	var rows []model.SettingModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("setting_key ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromModels(rows))
}

// PUT /api/a/settings (admin) — upsert by key + broadcast
func (h *SettingController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if handled, err := helper.ValidateAndRespond(c, &req); handled {
		return err
	}

	m := model.SettingModel{
		SettingKey:         req.SettingKey,
		SettingValue:       datatypes.JSON(req.SettingValue),
		SettingDescription: req.SettingDescription,
	}
	if err := h.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "setting_description", "setting_updated_at"}),
		}).
		Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "upsert setting failed: "+err.Error())
	}

	svc.PublishChange(h.DB, svc.ChangeEvent{Key: req.SettingKey, Value: req.SettingValue})
	return helper.JsonUpdated(c, "Setting saved", dto.FromModel(&m))
}

// DELETE /api/a/settings/:key (admin)
func (h *SettingController) Delete(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "missing key")
	}

	var m model.SettingModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "setting_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "setting not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "delete setting failed: "+err.Error())
	}

	svc.PublishChange(h.DB, svc.ChangeEvent{Key: key, Deleted: true})
	return helper.JsonDeleted(c, "Setting deleted", fiber.Map{"setting_key": key})
}
