package dto

import (
	"time"

	"github.com/google/uuid"

	model "academyku_backend/internals/features/academy/registrations/model"
)

type CreateRegistrationRequest struct {
	FullName    string `json:"full_name" validate:"required,min=3,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=7,max=30"`
	ProgramID   string `json:"program_id" validate:"required,uuid"`
	PaymentPlan string `json:"payment_plan" validate:"required,oneof=full 2_installments 3_installments office_pay"`
}

func (r *CreateRegistrationRequest) ToModel() *model.RegistrationModel {
	programID, _ := uuid.Parse(r.ProgramID)
	paymentStatus := model.PaymentStatusPending
	if r.PaymentPlan == model.PaymentPlanOfficePay {
		// bayar di kantor → accountant yang nanti konfirmasi
		paymentStatus = model.PaymentStatusOfficePending
	}
	return &model.RegistrationModel{
		RegistrationFullName:      r.FullName,
		RegistrationEmail:         r.Email,
		RegistrationPhone:         r.Phone,
		RegistrationProgramID:     programID,
		RegistrationPaymentPlan:   r.PaymentPlan,
		RegistrationPaymentStatus: paymentStatus,
		RegistrationStatus:        model.RegistrationStatusSubmitted,
	}
}

type UpdateRegistrationStatusRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=submitted approved enrolled rejected"`
	PaymentStatus *string `json:"payment_status" validate:"omitempty,oneof=pending partial paid office_pending"`
}

type RegistrationResponse struct {
	RegistrationID uuid.UUID  `json:"registration_id"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	ProgramID      uuid.UUID  `json:"program_id"`
	PaymentStatus  string     `json:"payment_status"`
	PaymentPlan    string     `json:"payment_plan"`
	Status         string     `json:"status"`
	AccountCreated bool       `json:"account_created"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromModel(m *model.RegistrationModel) RegistrationResponse {
	return RegistrationResponse{
		RegistrationID: m.RegistrationID,
		FullName:       m.RegistrationFullName,
		Email:          m.RegistrationEmail,
		Phone:          m.RegistrationPhone,
		ProgramID:      m.RegistrationProgramID,
		PaymentStatus:  m.RegistrationPaymentStatus,
		PaymentPlan:    m.RegistrationPaymentPlan,
		Status:         m.RegistrationStatus,
		AccountCreated: m.RegistrationAccountCreated,
		UserID:         m.RegistrationUserID,
		CreatedAt:      m.CreatedAt,
	}
}

func FromModels(ms []model.RegistrationModel) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
