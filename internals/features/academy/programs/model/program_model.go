package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */

// ProgramModel: program pelatihan. Fee disimpan dalam naira (unit mayor);
// konversi ke kobo dilakukan di payment service.
type ProgramModel struct {
	ProgramID uuid.UUID `gorm:"column:program_id;type:uuid;default:gen_random_uuid();primaryKey" json:"program_id"`

	ProgramName        string  `gorm:"column:program_name;size:150;not null" json:"program_name"`
	ProgramDescription *string `gorm:"column:program_description" json:"program_description,omitempty"`

	ProgramTuitionFee      int  `gorm:"column:program_tuition_fee;not null;check:program_tuition_fee >= 0" json:"program_tuition_fee"`
	ProgramRegistrationFee *int `gorm:"column:program_registration_fee;check:program_registration_fee >= 0" json:"program_registration_fee,omitempty"`

	ProgramDurationMonths *int `gorm:"column:program_duration_months" json:"program_duration_months,omitempty"`
	ProgramIsActive       bool `gorm:"column:program_is_active;not null;default:true" json:"program_is_active"`

	CreatedAt time.Time      `gorm:"column:program_created_at;autoCreateTime" json:"program_created_at"`
	UpdatedAt time.Time      `gorm:"column:program_updated_at;autoUpdateTime" json:"program_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:program_deleted_at;index" json:"program_deleted_at,omitempty"`
}

func (ProgramModel) TableName() string { return "programs" }

/* ===================== Helpers ===================== */

// TotalFee = tuition + registration fee (registration fee opsional)
func (p *ProgramModel) TotalFee() int {
	total := p.ProgramTuitionFee
	if p.ProgramRegistrationFee != nil {
		total += *p.ProgramRegistrationFee
	}
	return total
}
