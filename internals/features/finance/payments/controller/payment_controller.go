// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"academyku_backend/internals/configs"
	programModel "academyku_backend/internals/features/academy/programs/model"
	regModel "academyku_backend/internals/features/academy/registrations/model"
	paymentDTO "academyku_backend/internals/features/finance/payments/dto"
	paymentModel "academyku_backend/internals/features/finance/payments/model"
	paymentService "academyku_backend/internals/features/finance/payments/service"
	helper "academyku_backend/internals/helpers"
)

type PaymentController struct {
	DB       *gorm.DB
	Paystack *paymentService.PaystackClient
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:       db,
		Paystack: paymentService.NewPaystackClient(configs.PaystackSecretKey, configs.PaystackBaseURL),
	}
}

/* =========================================================
   POST /api/public/payments/initialize
========================================================= */

// InitializePayment buka transaksi Paystack untuk satu registrasi.
// Row payment pending dicatat dulu sebelum redirect; kegagalan insert
// tidak membatalkan checkout (verify/webhook tetap bisa merekonsiliasi).
func (h *PaymentController) InitializePayment(c *fiber.Ctx) error {
	var req paymentDTO.InitializePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if handled, err := helper.ValidateAndRespond(c, &req); handled {
		return err
	}

	if !h.Paystack.IsConfigured() {
		log.Println("❌ [PAYMENT] PAYSTACK_SECRET_KEY belum diset")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Payment gateway belum dikonfigurasi")
	}

	var reg regModel.RegistrationModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&reg, "registration_id = ?", req.RegistrationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registrasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}
	if reg.IsPaid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Registrasi sudah lunas")
	}

	var program programModel.ProgramModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&program, "program_id = ?", reg.RegistrationProgramID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil program")
	}

	amountKobo := paymentService.AmountDueKobo(&program)
	reference := paymentService.NewPaymentReference(reg.RegistrationID, time.Now())

	init, err := h.Paystack.InitializeTransaction(c.UserContext(), paymentService.InitializeRequest{
		Email:       reg.RegistrationEmail,
		AmountKobo:  amountKobo,
		Reference:   reference,
		CallbackURL: req.CallbackURL,
		Currency:    "NGN",
		Metadata: map[string]any{
			"registration_id": reg.RegistrationID.String(),
			"program_name":    program.ProgramName,
		},
	})
	if err != nil {
		log.Println("❌ [PAYMENT] initialize gagal:", err)
		var gwErr *paymentService.GatewayError
		if errors.As(err, &gwErr) {
			// penolakan gateway diteruskan apa adanya
			return helper.JsonError(c, fiber.StatusBadRequest, gwErr.Message)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuka transaksi di payment gateway")
	}

	payment := paymentModel.EnrollmentPaymentModel{
		EnrollmentPaymentRegistrationID: reg.RegistrationID,
		EnrollmentPaymentReference:      init.Reference,
		EnrollmentPaymentProvider:       paymentModel.PaymentProviderPaystack,
		EnrollmentPaymentAmountKobo:     amountKobo,
		EnrollmentPaymentCurrency:       "NGN",
		EnrollmentPaymentStatus:         paymentModel.PaymentStatusPending,
		EnrollmentPaymentMeta: datatypes.JSONMap{
			"access_code":  init.AccessCode,
			"program_name": program.ProgramName,
		},
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&payment).Error; err != nil {
		// checkout tetap jalan; verify/webhook yang akan menutup gap
		log.Println("⚠️ [PAYMENT] gagal mencatat payment pending:", err)
	}

	return helper.JsonOK(c, "Transaksi pembayaran berhasil dibuka", paymentDTO.InitializePaymentResponse{
		AuthorizationURL: init.AuthorizationURL,
		AccessCode:       init.AccessCode,
		Reference:        init.Reference,
		Amount:           paymentService.KoboToMajor(amountKobo),
		Currency:         "NGN",
	})
}

/* =========================================================
   GET /api/public/payments/verify/:reference
========================================================= */

// VerifyPayment: jalur pull. Tanya Paystack langsung lalu rekonsiliasi.
// Idempotent — verify ulang reference yang sudah completed tidak mengubah apa pun.
func (h *PaymentController) VerifyPayment(c *fiber.Ctx) error {
	reference := c.Params("reference")
	if reference == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Reference wajib diisi")
	}

	if !h.Paystack.IsConfigured() {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Payment gateway belum dikonfigurasi")
	}

	data, err := h.Paystack.VerifyTransaction(c.UserContext(), reference)
	if err != nil {
		log.Println("❌ [PAYMENT] verify gagal:", err)
		var gwErr *paymentService.GatewayError
		if errors.As(err, &gwErr) {
			return helper.JsonError(c, fiber.StatusBadRequest, gwErr.Message)
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memverifikasi transaksi di payment gateway")
	}

	regID, payment, err := h.resolveRegistration(c, reference, data.Metadata.RegistrationID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak dikenali")
	}

	regStatus, err := h.settle(c, payment, regID, data)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan hasil verifikasi")
	}

	status := paymentModel.PaymentStatusFailed
	if data.IsSuccessful() {
		status = paymentModel.PaymentStatusCompleted
	}

	return helper.JsonOK(c, "Verifikasi transaksi selesai", paymentDTO.VerifyPaymentResponse{
		Reference:         reference,
		Verified:          true,
		PaymentSuccessful: data.IsSuccessful(),

		Status:         status,
		GatewayStatus:  data.Status,
		Amount:         paymentService.KoboToMajor(data.AmountKobo),
		Currency:       data.Currency,
		RegistrationID: regID,
		PaymentStatus:  regStatus,
		PaidAt:         data.PaidAtTime(),
	})
}

/* =========================================================
   POST /api/public/payments/webhook
========================================================= */

type webhookEvent struct {
	Event string                    `json:"event"`
	Data  paymentService.VerifyData `json:"data"`
}

// PaystackWebhook: jalur push. Signature HMAC-SHA512 atas raw body wajib
// valid sebelum payload disentuh; event selain charge.success di-ack
// tanpa menulis apa pun. Respon selalu cepat supaya Paystack tidak retry.
func (h *PaymentController) PaystackWebhook(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get("x-paystack-signature")

	if !paymentService.VerifyWebhookSignature(configs.PaystackSecretKey, body, signature) {
		log.Println("⚠️ [WEBHOOK] signature tidak valid, ditolak")
		return c.Status(fiber.StatusUnauthorized).SendString("invalid signature")
	}

	var ev webhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		log.Println("⚠️ [WEBHOOK] payload bukan JSON valid:", err)
		return c.Status(fiber.StatusBadRequest).SendString("bad payload")
	}

	// Hanya charge.success yang diproses; sisanya di-ack saja (no-op).
	if ev.Event != "charge.success" {
		return c.SendString("OK")
	}

	gwEvent := h.logGatewayEvent(c, &ev, body, signature)

	regID, payment, err := h.resolveRegistration(c, ev.Data.Reference, ev.Data.Metadata.RegistrationID)
	if err != nil {
		log.Println("⚠️ [WEBHOOK] registrasi tidak dikenali untuk reference", ev.Data.Reference)
		h.markGatewayEvent(c, gwEvent, paymentModel.GatewayEventStatusIgnored, "registration not found")
		return c.SendString("OK")
	}

	if _, err := h.settle(c, payment, regID, ev.Data); err != nil {
		log.Println("❌ [WEBHOOK] gagal memproses event:", err)
		h.markGatewayEvent(c, gwEvent, paymentModel.GatewayEventStatusFailed, err.Error())
		// tetap 200 — Paystack retry tidak akan memperbaiki error internal
		return c.SendString("OK")
	}

	h.markGatewayEvent(c, gwEvent, paymentModel.GatewayEventStatusProcessed, "")
	return c.SendString("OK")
}

/* =========================================================
   Internal
========================================================= */

// resolveRegistration cari registrasi pemilik transaksi: metadata dulu,
// fallback ke row payment by reference.
func (h *PaymentController) resolveRegistration(c *fiber.Ctx, reference, metaRegistrationID string) (uuid.UUID, *paymentModel.EnrollmentPaymentModel, error) {
	var payment paymentModel.EnrollmentPaymentModel
	err := h.DB.WithContext(c.UserContext()).
		First(&payment, "enrollment_payment_reference = ?", reference).Error
	if err == nil {
		return payment.EnrollmentPaymentRegistrationID, &payment, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, nil, err
	}

	// row pending tidak sempat tercatat saat initialize — pakai metadata
	regID, perr := uuid.Parse(metaRegistrationID)
	if perr != nil {
		return uuid.Nil, nil, errors.New("unknown transaction reference")
	}
	var reg regModel.RegistrationModel
	if err := h.DB.WithContext(c.UserContext()).
		First(&reg, "registration_id = ?", regID).Error; err != nil {
		return uuid.Nil, nil, err
	}
	return reg.RegistrationID, nil, nil
}

// settle tulis hasil gateway ke row payment (upsert kalau row pending
// hilang) lalu jalankan rekonsiliasi. Row yang sudah terminal dibiarkan.
func (h *PaymentController) settle(c *fiber.Ctx, payment *paymentModel.EnrollmentPaymentModel, regID uuid.UUID, data paymentService.VerifyData) (string, error) {
	db := h.DB.WithContext(c.UserContext())

	status := paymentModel.PaymentStatusFailed
	if data.IsSuccessful() {
		status = paymentModel.PaymentStatusCompleted
	}

	if payment == nil {
		row := paymentModel.EnrollmentPaymentModel{
			EnrollmentPaymentRegistrationID: regID,
			EnrollmentPaymentReference:      data.Reference,
			EnrollmentPaymentProvider:       paymentModel.PaymentProviderPaystack,
			EnrollmentPaymentAmountKobo:     data.AmountKobo,
			EnrollmentPaymentCurrency:       data.Currency,
			EnrollmentPaymentStatus:         status,
			EnrollmentPaymentPaidAt:         data.PaidAtTime(),
		}
		if err := db.Create(&row).Error; err != nil {
			return "", err
		}
	} else if payment.IsOpen() {
		updates := map[string]any{
			"enrollment_payment_status": status,
		}
		if data.AmountKobo > 0 {
			updates["enrollment_payment_amount_kobo"] = data.AmountKobo
		}
		if t := data.PaidAtTime(); t != nil {
			updates["enrollment_payment_paid_at"] = t
		}
		if err := db.Model(&paymentModel.EnrollmentPaymentModel{}).
			Where("enrollment_payment_id = ?", payment.EnrollmentPaymentID).
			Updates(updates).Error; err != nil {
			return "", err
		}
	}

	return paymentService.ReconcileRegistrationPayments(db, regID)
}

func (h *PaymentController) logGatewayEvent(c *fiber.Ctx, ev *webhookEvent, body []byte, signature string) *paymentModel.PaymentGatewayEventModel {
	row := paymentModel.PaymentGatewayEventModel{
		GatewayEventProvider:  paymentModel.PaymentProviderPaystack,
		GatewayEventType:      &ev.Event,
		GatewayEventReference: &ev.Data.Reference,
		GatewayEventSignature: &signature,
		GatewayEventPayload:   datatypes.JSON(body),
		GatewayEventStatus:    paymentModel.GatewayEventStatusReceived,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		log.Println("⚠️ [WEBHOOK] gagal mencatat gateway event:", err)
		return nil
	}
	return &row
}

func (h *PaymentController) markGatewayEvent(c *fiber.Ctx, row *paymentModel.PaymentGatewayEventModel, status, errMsg string) {
	if row == nil {
		return
	}
	now := time.Now()
	updates := map[string]any{
		"gateway_event_status":       status,
		"gateway_event_processed_at": now,
	}
	if errMsg != "" {
		updates["gateway_event_error"] = errMsg
	}
	if err := h.DB.WithContext(c.UserContext()).
		Model(&paymentModel.PaymentGatewayEventModel{}).
		Where("gateway_event_id = ?", row.GatewayEventID).
		Updates(updates).Error; err != nil {
		log.Println("⚠️ [WEBHOOK] gagal update status gateway event:", err)
	}
}
