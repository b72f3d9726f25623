package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"academyku_backend/internals/features/academy/registrations/service"
)

// StartRegistrationCleanupScheduler menyapu registrasi kadaluarsa tiap 24 jam.
// Deadline dibaca dari setting registration_expiry_days (default 7 hari).
func StartRegistrationCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan registrasi kadaluarsa...")

			res, err := service.CleanupExpiredRegistrations(db)
			if err != nil {
				log.Printf("[CLEANUP ERROR] Sweep gagal: %v", err)
			} else if res.RecordsDeleted > 0 {
				log.Printf("[CLEANUP] %d registrasi kadaluarsa dihapus (deadline %d hari)", res.RecordsDeleted, res.DeadlineDays)
			} else {
				log.Println("[CLEANUP] Tidak ada registrasi yang memenuhi syarat dihapus")
			}

			// Jalankan tiap 24 jam
			time.Sleep(24 * time.Hour)
		}
	}()
}
