package service

import (
	"encoding/json"
	"testing"
)

func TestSettingsCacheGetWithDefaults(t *testing.T) {
	sc := NewSettingsCache()

	// key absen → default sisi pembaca
	if got := sc.GetInt(KeyRegistrationExpiryDays, 7); got != 7 {
		t.Errorf("GetInt(absent) = %d, want 7", got)
	}
	if got := sc.GetString(KeyAcademyName, "fallback"); got != "fallback" {
		t.Errorf("GetString(absent) = %q, want fallback", got)
	}

	sc.Apply(ChangeEvent{Key: KeyRegistrationExpiryDays, Value: json.RawMessage(`14`)})
	if got := sc.GetInt(KeyRegistrationExpiryDays, 7); got != 14 {
		t.Errorf("GetInt(upserted) = %d, want 14", got)
	}

	// angka tersimpan sebagai string tetap kebaca
	sc.Apply(ChangeEvent{Key: KeyGeofenceRadiusMeters, Value: json.RawMessage(`"350"`)})
	if got := sc.GetInt(KeyGeofenceRadiusMeters, 200); got != 350 {
		t.Errorf("GetInt(string number) = %d, want 350", got)
	}

	// delete event balikin ke default
	sc.Apply(ChangeEvent{Key: KeyRegistrationExpiryDays, Deleted: true})
	if got := sc.GetInt(KeyRegistrationExpiryDays, 7); got != 7 {
		t.Errorf("GetInt(deleted) = %d, want 7", got)
	}
}

func TestSettingsCacheSubscribe(t *testing.T) {
	sc := NewSettingsCache()

	var events []ChangeEvent
	sc.Subscribe(func(ev ChangeEvent) {
		events = append(events, ev)
	})

	sc.Apply(ChangeEvent{Key: KeyAcademyName, Value: json.RawMessage(`"TVET Hub"`)})
	sc.Apply(ChangeEvent{Key: KeyAcademyName, Deleted: true})

	if len(events) != 2 {
		t.Fatalf("subscriber received %d events, want 2", len(events))
	}
	if events[0].Key != KeyAcademyName || events[0].Deleted {
		t.Errorf("first event = %+v, want upsert of %s", events[0], KeyAcademyName)
	}
	if !events[1].Deleted {
		t.Errorf("second event = %+v, want delete", events[1])
	}
}

func TestSettingsCacheSnapshot(t *testing.T) {
	sc := NewSettingsCache()
	sc.Apply(ChangeEvent{Key: KeyContactEmail, Value: json.RawMessage(`"hello@academy.test"`)})

	snap := sc.Snapshot(PublicKeys)

	// nilai tersimpan menang atas default
	if got := snap[KeyContactEmail]; got != "hello@academy.test" {
		t.Errorf("snapshot[%s] = %v, want stored value", KeyContactEmail, got)
	}
	// key absen tetap muncul dengan default
	if got := snap[KeyPartialPaymentPercentage]; got != Defaults[KeyPartialPaymentPercentage] {
		t.Errorf("snapshot[%s] = %v, want default %v", KeyPartialPaymentPercentage, got, Defaults[KeyPartialPaymentPercentage])
	}
}
