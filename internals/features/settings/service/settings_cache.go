// file: internals/features/settings/service/settings_cache.go
package service

import (
	"encoding/json"
	"log"
	"sync"

	"gorm.io/gorm"

	model "academyku_backend/internals/features/settings/model"
)

/* =========================================================
   Keys + defaults
   Default diterapkan sisi pembaca kalau key belum ada di DB.
========================================================= */

const (
	KeyAcademyName              = "academy_name"
	KeyContactEmail             = "contact_email"
	KeyContactPhone             = "contact_phone"
	KeyGeofenceRadiusMeters     = "geofence_radius_meters"
	KeyPartialPaymentPercentage = "partial_payment_percentage"
	KeyRegistrationExpiryDays   = "registration_expiry_days"
)

var Defaults = map[string]any{
	KeyAcademyName:              "AcademyKu Training Institute",
	KeyContactEmail:             "info@academyku.app",
	KeyContactPhone:             "+234-800-000-0000",
	KeyGeofenceRadiusMeters:     200,
	KeyPartialPaymentPercentage: 50,
	KeyRegistrationExpiryDays:   7,
}

// PublicKeys: key yang boleh dibaca tanpa login (display strings dsb.)
var PublicKeys = []string{
	KeyAcademyName,
	KeyContactEmail,
	KeyContactPhone,
	KeyGeofenceRadiusMeters,
	KeyPartialPaymentPercentage,
}

/* =========================================================
   Read-through cache
   - seed sekali dari bulk fetch saat bootstrap
   - diupdate event upsert/delete (endpoint lokal atau NOTIFY dari
     proses lain) — konsisten eventual, bukan instan
========================================================= */

type ChangeEvent struct {
	Key     string          `json:"key"`
	Value   json.RawMessage `json:"value,omitempty"`
	Deleted bool            `json:"deleted,omitempty"`
}

type Subscriber func(ev ChangeEvent)

type SettingsCache struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
	subs   []Subscriber
}

var Cache = NewSettingsCache()

func NewSettingsCache() *SettingsCache {
	return &SettingsCache{values: map[string]json.RawMessage{}}
}

// Load seed cache dari tabel settings (dipanggil saat bootstrap).
func (sc *SettingsCache) Load(db *gorm.DB) error {
	var rows []model.SettingModel
	if err := db.Find(&rows).Error; err != nil {
		return err
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.values = make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		sc.values[row.SettingKey] = json.RawMessage(row.SettingValue)
	}
	log.Printf("[SETTINGS] cache seeded, %d key dimuat", len(rows))
	return nil
}

// Apply menerapkan satu change event ke cache + broadcast ke subscriber.
func (sc *SettingsCache) Apply(ev ChangeEvent) {
	sc.mu.Lock()
	if ev.Deleted {
		delete(sc.values, ev.Key)
	} else {
		sc.values[ev.Key] = ev.Value
	}
	subs := make([]Subscriber, len(sc.subs))
	copy(subs, sc.subs)
	sc.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

// Subscribe mendaftarkan callback untuk tiap perubahan setting.
func (sc *SettingsCache) Subscribe(fn Subscriber) {
	sc.mu.Lock()
	sc.subs = append(sc.subs, fn)
	sc.mu.Unlock()
}

func (sc *SettingsCache) raw(key string) (json.RawMessage, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	v, ok := sc.values[key]
	return v, ok
}

// GetString: nilai string, fallback ke default kalau key absen/invalid.
func (sc *SettingsCache) GetString(key, def string) string {
	if raw, ok := sc.raw(key); ok {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return def
}

// GetInt: nilai angka, fallback ke default kalau key absen/invalid.
func (sc *SettingsCache) GetInt(key string, def int) int {
	if raw, ok := sc.raw(key); ok {
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			return int(n)
		}
		// angka yang tersimpan sebagai string ("7") tetap diterima
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			var n2 float64
			if err := json.Unmarshal([]byte(s), &n2); err == nil {
				return int(n2)
			}
		}
	}
	return def
}

// Snapshot: gabungan defaults + nilai tersimpan untuk daftar key.
func (sc *SettingsCache) Snapshot(keys []string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		if def, ok := Defaults[key]; ok {
			out[key] = def
		}
		if raw, hasRaw := sc.raw(key); hasRaw {
			var v any
			if err := json.Unmarshal(raw, &v); err == nil {
				out[key] = v
			}
		}
	}
	return out
}
