// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	paymentModel "academyku_backend/internals/features/finance/payments/model"
)

/* ===================== Requests ===================== */

type InitializePaymentRequest struct {
	RegistrationID uuid.UUID `json:"registration_id" validate:"required"`
	CallbackURL    string    `json:"callback_url"    validate:"omitempty,url"`
}

/* ===================== Responses ===================== */

type InitializePaymentResponse struct {
	AuthorizationURL string  `json:"authorization_url"`
	AccessCode       string  `json:"access_code"`
	Reference        string  `json:"reference"`
	Amount           float64 `json:"amount"` // unit mayor (naira)
	Currency         string  `json:"currency"`
}

type VerifyPaymentResponse struct {
	Reference         string `json:"reference"`
	Verified          bool   `json:"verified"`           // gateway berhasil ditanya
	PaymentSuccessful bool   `json:"payment_successful"` // transaksi ini sukses di gateway

	Status         string     `json:"status"` // status row payment: pending/completed/failed
	GatewayStatus  string     `json:"gateway_status"`
	Amount         float64    `json:"amount"` // unit mayor
	Currency       string     `json:"currency"`
	RegistrationID uuid.UUID  `json:"registration_id"`
	PaymentStatus  string     `json:"payment_status"` // status registrasi hasil rekonsiliasi
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

type EnrollmentPaymentResponse struct {
	EnrollmentPaymentID uuid.UUID  `json:"enrollment_payment_id"`
	RegistrationID      uuid.UUID  `json:"registration_id"`
	Reference           string     `json:"reference"`
	Provider            string     `json:"provider"`
	Amount              float64    `json:"amount"`
	Currency            string     `json:"currency"`
	Status              string     `json:"status"`
	PaidAt              *time.Time `json:"paid_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

func FromPaymentModel(m *paymentModel.EnrollmentPaymentModel) EnrollmentPaymentResponse {
	return EnrollmentPaymentResponse{
		EnrollmentPaymentID: m.EnrollmentPaymentID,
		RegistrationID:      m.EnrollmentPaymentRegistrationID,
		Reference:           m.EnrollmentPaymentReference,
		Provider:            m.EnrollmentPaymentProvider,
		Amount:              float64(m.EnrollmentPaymentAmountKobo) / 100,
		Currency:            m.EnrollmentPaymentCurrency,
		Status:              m.EnrollmentPaymentStatus,
		PaidAt:              m.EnrollmentPaymentPaidAt,
		CreatedAt:           m.CreatedAt,
	}
}

func FromPaymentModels(ms []paymentModel.EnrollmentPaymentModel) []EnrollmentPaymentResponse {
	out := make([]EnrollmentPaymentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromPaymentModel(&ms[i]))
	}
	return out
}
