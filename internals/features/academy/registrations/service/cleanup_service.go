// file: internals/features/academy/registrations/service/cleanup_service.go
package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	model "academyku_backend/internals/features/academy/registrations/model"
	settingsSvc "academyku_backend/internals/features/settings/service"
)

const DefaultExpiryDays = 7

// ExpiredCutoff: batas waktu registrasi dianggap basi.
// deadlineDays <= 0 jatuh ke default 7 hari.
func ExpiredCutoff(now time.Time, deadlineDays int) time.Time {
	if deadlineDays <= 0 {
		deadlineDays = DefaultExpiryDays
	}
	return now.Add(-time.Duration(deadlineDays) * 24 * time.Hour)
}

type CleanupResult struct {
	RecordsDeleted int      `json:"records_deleted"`
	DeadlineDays   int      `json:"deadline_days"`
	DeletedIDs     []string `json:"deleted_ids"`
}

// CleanupExpiredRegistrations: sweep sekali jalan, tanpa retry.
// Target: payment_status=pending, belum punya akun, lebih tua dari cutoff.
// Kalau delete gagal, audit tidak ditulis — invocation berikutnya menyapu ulang.
func CleanupExpiredRegistrations(db *gorm.DB) (CleanupResult, error) {
	days := settingsSvc.Cache.GetInt(settingsSvc.KeyRegistrationExpiryDays, DefaultExpiryDays)
	cutoff := ExpiredCutoff(time.Now(), days)

	res := CleanupResult{DeadlineDays: days, DeletedIDs: []string{}}

	var ids []string
	if err := db.Model(&model.RegistrationModel{}).
		Where("registration_payment_status = ?", model.PaymentStatusPending).
		Where("registration_user_id IS NULL").
		Where("registration_created_at < ?", cutoff).
		Pluck("registration_id", &ids).Error; err != nil {
		return res, err
	}

	if len(ids) > 0 {
		if err := db.Unscoped().
			Where("registration_id IN ?", ids).
			Delete(&model.RegistrationModel{}).Error; err != nil {
			return res, err
		}
	}

	res.RecordsDeleted = len(ids)
	res.DeletedIDs = ids

	audit := model.RegistrationCleanupAuditModel{
		CleanupAuditRecordsDeleted: res.RecordsDeleted,
		CleanupAuditDeadlineDays:   days,
		CleanupAuditDeletedIDs:     ids,
		CleanupAuditRanAt:          time.Now(),
	}
	if err := db.Create(&audit).Error; err != nil {
		// delete sudah jalan, audit gagal — dicatat saja (accepted gap)
		log.Printf("[CLEANUP ERROR] Gagal tulis audit row: %v", err)
	}

	return res, nil
}
