package dto

import (
	"time"

	"github.com/google/uuid"

	model "academyku_backend/internals/features/academy/programs/model"
)

type CreateProgramRequest struct {
	ProgramName            string  `json:"program_name" validate:"required,min=3,max=150"`
	ProgramDescription     *string `json:"program_description" validate:"omitempty,max=2000"`
	ProgramTuitionFee      int     `json:"program_tuition_fee" validate:"min=0"`
	ProgramRegistrationFee *int    `json:"program_registration_fee" validate:"omitempty,min=0"`
	ProgramDurationMonths  *int    `json:"program_duration_months" validate:"omitempty,min=1"`
}

func (r *CreateProgramRequest) ToModel() *model.ProgramModel {
	return &model.ProgramModel{
		ProgramName:            r.ProgramName,
		ProgramDescription:     r.ProgramDescription,
		ProgramTuitionFee:      r.ProgramTuitionFee,
		ProgramRegistrationFee: r.ProgramRegistrationFee,
		ProgramDurationMonths:  r.ProgramDurationMonths,
		ProgramIsActive:        true,
	}
}

type UpdateProgramRequest struct {
	ProgramName            *string `json:"program_name" validate:"omitempty,min=3,max=150"`
	ProgramDescription     *string `json:"program_description" validate:"omitempty,max=2000"`
	ProgramTuitionFee      *int    `json:"program_tuition_fee" validate:"omitempty,min=0"`
	ProgramRegistrationFee *int    `json:"program_registration_fee" validate:"omitempty,min=0"`
	ProgramDurationMonths  *int    `json:"program_duration_months" validate:"omitempty,min=1"`
	ProgramIsActive        *bool   `json:"program_is_active"`
}

// Apply menerapkan field non-nil ke model
func (r *UpdateProgramRequest) Apply(m *model.ProgramModel) {
	if r.ProgramName != nil {
		m.ProgramName = *r.ProgramName
	}
	if r.ProgramDescription != nil {
		m.ProgramDescription = r.ProgramDescription
	}
	if r.ProgramTuitionFee != nil {
		m.ProgramTuitionFee = *r.ProgramTuitionFee
	}
	if r.ProgramRegistrationFee != nil {
		m.ProgramRegistrationFee = r.ProgramRegistrationFee
	}
	if r.ProgramDurationMonths != nil {
		m.ProgramDurationMonths = r.ProgramDurationMonths
	}
	if r.ProgramIsActive != nil {
		m.ProgramIsActive = *r.ProgramIsActive
	}
}

type ProgramResponse struct {
	ProgramID              uuid.UUID `json:"program_id"`
	ProgramName            string    `json:"program_name"`
	ProgramDescription     *string   `json:"program_description,omitempty"`
	ProgramTuitionFee      int       `json:"program_tuition_fee"`
	ProgramRegistrationFee *int      `json:"program_registration_fee,omitempty"`
	ProgramTotalFee        int       `json:"program_total_fee"`
	ProgramDurationMonths  *int      `json:"program_duration_months,omitempty"`
	ProgramIsActive        bool      `json:"program_is_active"`
	ProgramCreatedAt       time.Time `json:"program_created_at"`
}

func FromModel(m *model.ProgramModel) ProgramResponse {
	return ProgramResponse{
		ProgramID:              m.ProgramID,
		ProgramName:            m.ProgramName,
		ProgramDescription:     m.ProgramDescription,
		ProgramTuitionFee:      m.ProgramTuitionFee,
		ProgramRegistrationFee: m.ProgramRegistrationFee,
		ProgramTotalFee:        m.TotalFee(),
		ProgramDurationMonths:  m.ProgramDurationMonths,
		ProgramIsActive:        m.ProgramIsActive,
		ProgramCreatedAt:       m.CreatedAt,
	}
}

func FromModels(ms []model.ProgramModel) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
