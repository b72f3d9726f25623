// file: internals/features/settings/service/settings_listener.go
package service

import (
	"encoding/json"
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// NotifyChannel: channel LISTEN/NOTIFY Postgres untuk propagasi perubahan
// setting antar proses. Tiap instance app subscribe sendiri-sendiri,
// jadi konvergen eventual (tab/instance lain tidak instan).
const NotifyChannel = "settings_changed"

// PublishChange broadcast perubahan ke instance lain via pg_notify,
// lalu apply lokal supaya proses ini tidak menunggu round-trip.
func PublishChange(db *gorm.DB, ev ChangeEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[SETTINGS] marshal notify payload err: %v", err)
		return
	}
	if err := db.Exec("SELECT pg_notify(?, ?)", NotifyChannel, string(payload)).Error; err != nil {
		// notify gagal bukan fatal — instance lain akan reload saat reconnect
		log.Printf("[SETTINGS] pg_notify err: %v", err)
	}
	Cache.Apply(ev)
}

// StartSettingsListener jalanin goroutine LISTEN pada channel settings.
// dsn = connection string yang sama dengan gorm (database.DSN()).
func StartSettingsListener(dsn string, db *gorm.DB) {
	reportProblem := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("[SETTINGS] listener event %v: %v", ev, err)
		}
	}

	listener := pq.NewListener(dsn, 10*time.Second, time.Minute, reportProblem)
	if err := listener.Listen(NotifyChannel); err != nil {
		log.Printf("[SETTINGS] gagal LISTEN %s: %v — realtime update mati, cache tetap jalan", NotifyChannel, err)
		return
	}
	log.Printf("[SETTINGS] LISTEN %s aktif", NotifyChannel)

	go func() {
		for {
			select {
			case n := <-listener.Notify:
				if n == nil {
					// koneksi listener putus-sambung: state bisa ketinggalan, reload penuh
					if err := Cache.Load(db); err != nil {
						log.Printf("[SETTINGS] reload setelah reconnect err: %v", err)
					}
					continue
				}
				var ev ChangeEvent
				if err := json.Unmarshal([]byte(n.Extra), &ev); err != nil {
					log.Printf("[SETTINGS] payload notify invalid: %v", err)
					continue
				}
				Cache.Apply(ev)

			case <-time.After(90 * time.Second):
				go func() { _ = listener.Ping() }()
			}
		}
	}()
}
