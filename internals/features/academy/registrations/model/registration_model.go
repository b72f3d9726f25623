package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan ENUM di PostgreSQL:
   registration_payment_status, registration_payment_plan, registration_status
*/

const (
	PaymentStatusPending       = "pending"
	PaymentStatusPartial       = "partial"
	PaymentStatusPaid          = "paid"
	PaymentStatusOfficePending = "office_pending"
)

const (
	PaymentPlanFull              = "full"
	PaymentPlanTwoInstallments   = "2_installments"
	PaymentPlanThreeInstallments = "3_installments"
	PaymentPlanOfficePay         = "office_pay"
)

const (
	RegistrationStatusSubmitted = "submitted"
	RegistrationStatusApproved  = "approved"
	RegistrationStatusEnrolled  = "enrolled"
	RegistrationStatusRejected  = "rejected"
)

/* ===================== Model ===================== */

// RegistrationModel: anchor entity untuk payment & account provisioning.
// Invariant: registration_account_created = true ⇒ registration_user_id NOT NULL.
type RegistrationModel struct {
	RegistrationID uuid.UUID `gorm:"column:registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registration_id"`

	RegistrationFullName string `gorm:"column:registration_full_name;size:100;not null" json:"registration_full_name"`
	RegistrationEmail    string `gorm:"column:registration_email;size:255;not null"     json:"registration_email"`
	RegistrationPhone    string `gorm:"column:registration_phone;size:30;not null"      json:"registration_phone"`

	RegistrationProgramID uuid.UUID `gorm:"column:registration_program_id;type:uuid;not null;index" json:"registration_program_id"`

	RegistrationPaymentStatus string `gorm:"column:registration_payment_status;type:registration_payment_status;not null;default:'pending'" json:"registration_payment_status"`
	RegistrationPaymentPlan   string `gorm:"column:registration_payment_plan;type:registration_payment_plan;not null;default:'full'"        json:"registration_payment_plan"`
	RegistrationStatus        string `gorm:"column:registration_status;type:registration_status;not null;default:'submitted'"               json:"registration_status"`

	RegistrationAccountCreated bool       `gorm:"column:registration_account_created;not null;default:false" json:"registration_account_created"`
	RegistrationUserID         *uuid.UUID `gorm:"column:registration_user_id;type:uuid"                      json:"registration_user_id,omitempty"`

	CreatedAt time.Time      `gorm:"column:registration_created_at;autoCreateTime" json:"registration_created_at"`
	UpdatedAt time.Time      `gorm:"column:registration_updated_at;autoUpdateTime" json:"registration_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:registration_deleted_at;index"          json:"registration_deleted_at,omitempty"`
}

func (RegistrationModel) TableName() string { return "registrations" }

/* ===================== Helpers ===================== */

func (r *RegistrationModel) IsPaid() bool {
	return r.RegistrationPaymentStatus == PaymentStatusPaid
}

func (r *RegistrationModel) HasAccount() bool {
	return r.RegistrationAccountCreated && r.RegistrationUserID != nil
}

func ValidPaymentPlan(plan string) bool {
	switch plan {
	case PaymentPlanFull, PaymentPlanTwoInstallments, PaymentPlanThreeInstallments, PaymentPlanOfficePay:
		return true
	}
	return false
}
