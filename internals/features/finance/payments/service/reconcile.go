// file: internals/features/finance/payments/service/reconcile.go
package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	programModel "academyku_backend/internals/features/academy/programs/model"
	regModel "academyku_backend/internals/features/academy/registrations/model"
	paymentModel "academyku_backend/internals/features/finance/payments/model"
)

/* =========================================================
   Reconciliation
   Satu-satunya jalur yang boleh menulis registration_payment_status
   dari sisi pembayaran. Verify (pull) dan webhook (push) dua-duanya
   lewat sini, jadi tidak ada perbedaan hasil antara dua jalur.
========================================================= */

// ResolvePaymentStatus hitung status dari total completed vs total fee.
// Pure function — dites tanpa DB.
func ResolvePaymentStatus(totalPaidKobo, totalFeeKobo int64) string {
	if totalPaidKobo <= 0 {
		return regModel.PaymentStatusPending
	}
	if totalPaidKobo >= totalFeeKobo {
		return regModel.PaymentStatusPaid
	}
	return regModel.PaymentStatusPartial
}

// ApplyMonotonic: status pembayaran tidak boleh mundur.
// paid → partial / pending ditolak (mis. webhook cicilan datang
// setelah verify sudah melunasi).
func ApplyMonotonic(current, proposed string) string {
	if current == regModel.PaymentStatusPaid {
		return current
	}
	if proposed == regModel.PaymentStatusPending &&
		(current == regModel.PaymentStatusPartial || current == regModel.PaymentStatusOfficePending) {
		return current
	}
	return proposed
}

// NextRegistrationStatus: pembayaran sukses (partial maupun paid)
// menaikkan registrasi submitted → approved. Status lain tidak disentuh
// dari sisi pembayaran (enrolled/rejected urusan staff).
func NextRegistrationStatus(current, paymentStatus string) string {
	if current != regModel.RegistrationStatusSubmitted {
		return current
	}
	if paymentStatus == regModel.PaymentStatusPartial || paymentStatus == regModel.PaymentStatusPaid {
		return regModel.RegistrationStatusApproved
	}
	return current
}

// ReconcileRegistrationPayments jumlahkan semua payment completed milik
// satu registrasi lalu set ulang payment_status (dan status → approved
// begitu ada pembayaran masuk). Idempotent: dipanggil berkali-kali hasilnya sama.
func ReconcileRegistrationPayments(db *gorm.DB, registrationID uuid.UUID) (string, error) {
	var reg regModel.RegistrationModel
	if err := db.First(&reg, "registration_id = ?", registrationID).Error; err != nil {
		return "", fmt.Errorf("load registration: %w", err)
	}

	var program programModel.ProgramModel
	if err := db.First(&program, "program_id = ?", reg.RegistrationProgramID).Error; err != nil {
		return "", fmt.Errorf("load program: %w", err)
	}

	var totalPaidKobo int64
	if err := db.Model(&paymentModel.EnrollmentPaymentModel{}).
		Where("enrollment_payment_registration_id = ? AND enrollment_payment_status = ?",
			registrationID, paymentModel.PaymentStatusCompleted).
		Select("COALESCE(SUM(enrollment_payment_amount_kobo), 0)").
		Scan(&totalPaidKobo).Error; err != nil {
		return "", fmt.Errorf("sum payments: %w", err)
	}

	proposed := ResolvePaymentStatus(totalPaidKobo, AmountDueKobo(&program))
	next := ApplyMonotonic(reg.RegistrationPaymentStatus, proposed)

	updates := map[string]any{}
	if next != reg.RegistrationPaymentStatus {
		updates["registration_payment_status"] = next
	}
	if ns := NextRegistrationStatus(reg.RegistrationStatus, next); ns != reg.RegistrationStatus {
		updates["registration_status"] = ns
	}
	if len(updates) == 0 {
		return next, nil
	}

	if err := db.Model(&regModel.RegistrationModel{}).
		Where("registration_id = ?", registrationID).
		Updates(updates).Error; err != nil {
		return "", fmt.Errorf("update registration: %w", err)
	}

	log.Printf("[PAYMENT] reconciled registration %s: %s → %s (paid %d kobo)",
		registrationID, reg.RegistrationPaymentStatus, next, totalPaidKobo)
	return next, nil
}
