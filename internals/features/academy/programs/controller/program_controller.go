// file: internals/features/academy/programs/controller/program_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "academyku_backend/internals/features/academy/programs/dto"
	model "academyku_backend/internals/features/academy/programs/model"
	helper "academyku_backend/internals/helpers"
)

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

// GET /api/public/programs — hanya program aktif
func (h *ProgramController) ListPublic(c *fiber.Ctx) error {
	var programs []model.ProgramModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("program_is_active = ?", true).
		Order("program_created_at ASC").
		Find(&programs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromModels(programs))
}

// GET /api/public/programs/:id
func (h *ProgramController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.ProgramModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&m))
}

// POST /api/a/programs (admin)
func (h *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if handled, err := helper.ValidateAndRespond(c, &req); handled {
		return err
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "create program failed: "+err.Error())
	}
	return helper.JsonCreated(c, "Program created", dto.FromModel(m))
}

// PATCH /api/a/programs/:id (admin)
func (h *ProgramController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.ProgramModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var patch dto.UpdateProgramRequest
	if err := c.BodyParser(&patch); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if handled, err := helper.ValidateAndRespond(c, &patch); handled {
		return err
	}
	patch.Apply(&m)

	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "save failed: "+err.Error())
	}
	return helper.JsonUpdated(c, "Program updated", dto.FromModel(&m))
}
