package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan ENUM di PostgreSQL: enrollment_payment_status */

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

const (
	PaymentProviderPaystack = "paystack"
)

/* ===================== Model ===================== */

// EnrollmentPaymentModel: satu row per attempt transaksi gateway.
// Reference unik per attempt; satu registrasi boleh punya banyak row
// (retry, cicilan). Status cuma boleh pindah sekali ke terminal.
type EnrollmentPaymentModel struct {
	EnrollmentPaymentID uuid.UUID `gorm:"column:enrollment_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_payment_id"`

	EnrollmentPaymentRegistrationID uuid.UUID `gorm:"column:enrollment_payment_registration_id;type:uuid;not null;index" json:"enrollment_payment_registration_id"`

	EnrollmentPaymentReference string `gorm:"column:enrollment_payment_reference;size:100;unique;not null" json:"enrollment_payment_reference"`
	EnrollmentPaymentProvider  string `gorm:"column:enrollment_payment_provider;size:30;not null;default:'paystack'" json:"enrollment_payment_provider"`

	// Nominal dalam kobo (unit minor gateway)
	EnrollmentPaymentAmountKobo int64  `gorm:"column:enrollment_payment_amount_kobo;not null;check:enrollment_payment_amount_kobo >= 0" json:"enrollment_payment_amount_kobo"`
	EnrollmentPaymentCurrency   string `gorm:"column:enrollment_payment_currency;type:varchar(8);not null;default:'NGN'" json:"enrollment_payment_currency"`

	EnrollmentPaymentStatus string `gorm:"column:enrollment_payment_status;type:enrollment_payment_status;not null;default:'pending'" json:"enrollment_payment_status"`

	EnrollmentPaymentMeta   datatypes.JSONMap `gorm:"column:enrollment_payment_meta;type:jsonb" json:"enrollment_payment_meta,omitempty"`
	EnrollmentPaymentPaidAt *time.Time        `gorm:"column:enrollment_payment_paid_at" json:"enrollment_payment_paid_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:enrollment_payment_created_at;autoCreateTime" json:"enrollment_payment_created_at"`
	UpdatedAt time.Time      `gorm:"column:enrollment_payment_updated_at;autoUpdateTime" json:"enrollment_payment_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:enrollment_payment_deleted_at;index" json:"enrollment_payment_deleted_at,omitempty"`
}

func (EnrollmentPaymentModel) TableName() string { return "enrollment_payments" }

/* ===================== Helpers ===================== */

func (p *EnrollmentPaymentModel) IsOpen() bool {
	return p.EnrollmentPaymentStatus == PaymentStatusPending
}

func (p *EnrollmentPaymentModel) IsCompleted() bool {
	return p.EnrollmentPaymentStatus == PaymentStatusCompleted
}
