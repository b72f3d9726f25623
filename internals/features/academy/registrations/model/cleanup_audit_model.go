// file: internals/features/academy/registrations/model/cleanup_audit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/*
  registration_cleanup_audits = JEJAK SWEEP REGISTRASI KADALUARSA
  - Satu row per invocation (scheduler maupun endpoint manual)
  - Nyimpen jumlah + daftar id yang dihapus, supaya bisa direview accountant.
*/

type RegistrationCleanupAuditModel struct {
	CleanupAuditID uuid.UUID `gorm:"column:cleanup_audit_id;type:uuid;default:gen_random_uuid();primaryKey" json:"cleanup_audit_id"`

	CleanupAuditRecordsDeleted int            `gorm:"column:cleanup_audit_records_deleted;not null" json:"cleanup_audit_records_deleted"`
	CleanupAuditDeadlineDays   int            `gorm:"column:cleanup_audit_deadline_days;not null"   json:"cleanup_audit_deadline_days"`
	CleanupAuditDeletedIDs     pq.StringArray `gorm:"column:cleanup_audit_deleted_ids;type:text[]"  json:"cleanup_audit_deleted_ids"`

	CleanupAuditRanAt time.Time `gorm:"column:cleanup_audit_ran_at;not null;default:now()" json:"cleanup_audit_ran_at"`
}

func (RegistrationCleanupAuditModel) TableName() string { return "registration_cleanup_audits" }
