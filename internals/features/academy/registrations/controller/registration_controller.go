// file: internals/features/academy/registrations/controller/registration_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	programModel "academyku_backend/internals/features/academy/programs/model"
	dto "academyku_backend/internals/features/academy/registrations/dto"
	model "academyku_backend/internals/features/academy/registrations/model"
	svc "academyku_backend/internals/features/academy/registrations/service"
	helper "academyku_backend/internals/helpers"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

// POST /api/public/registrations — submit pendaftaran publik
func (h *RegistrationController) Create(c *fiber.Ctx) error {
	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if handled, err := helper.ValidateAndRespond(c, &req); handled {
		return err
	}

	// program harus ada & aktif
	var program programModel.ProgramModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&program, "program_id = ? AND program_is_active = ?", req.ProgramID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "program not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "create registration failed: "+err.Error())
	}
	return helper.JsonCreated(c, "Pendaftaran diterima", dto.FromModel(m))
}

// GET /api/a/registrations (admin/accountant) — paging + filter payment_status
func (h *RegistrationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.RegistrationModel{})
	if ps := c.Query("payment_status"); ps != "" {
		q = q.Where("registration_payment_status = ?", ps)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("registration_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.RegistrationModel
	if err := q.Order("registration_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.NewPagination(paging.Page, paging.PerPage, total))
}

// GET /api/a/registrations/:id
func (h *RegistrationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.RegistrationModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromModel(&m))
}

// PATCH /api/a/registrations/:id/status (accountant ke atas)
// Dipakai accountant untuk konfirmasi office_pay / approve manual.
func (h *RegistrationController) PatchStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.RegistrationModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&m, "registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var patch dto.UpdateRegistrationStatusRequest
	if err := c.BodyParser(&patch); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if handled, err := helper.ValidateAndRespond(c, &patch); handled {
		return err
	}

	if patch.Status != nil {
		m.RegistrationStatus = *patch.Status
	}
	if patch.PaymentStatus != nil {
		m.RegistrationPaymentStatus = *patch.PaymentStatus
	}

	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "save failed: "+err.Error())
	}
	return helper.JsonUpdated(c, "Registration updated", dto.FromModel(&m))
}

// POST /api/a/registrations/cleanup-expired (admin)
func (h *RegistrationController) CleanupExpired(c *fiber.Ctx) error {
	res, err := svc.CleanupExpiredRegistrations(h.DB.WithContext(c.UserContext()))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "cleanup failed: "+err.Error())
	}
	return helper.JsonOK(c, "Cleanup selesai", fiber.Map{
		"records_deleted": res.RecordsDeleted,
		"deadline_days":   res.DeadlineDays,
		"deleted_ids":     res.DeletedIDs,
	})
}
