package model

import (
	"time"

	"gorm.io/datatypes"

	"github.com/google/uuid"
)

// SettingModel: konfigurasi key→value seluruh aplikasi.
// Value disimpan sebagai JSON supaya bisa string/angka/bool tanpa ganti skema.
type SettingModel struct {
	SettingID uuid.UUID `gorm:"column:setting_id;type:uuid;default:gen_random_uuid();primaryKey" json:"setting_id"`

	SettingKey         string         `gorm:"column:setting_key;size:100;unique;not null" json:"setting_key"`
	SettingValue       datatypes.JSON `gorm:"column:setting_value;type:jsonb;not null"    json:"setting_value"`
	SettingDescription *string        `gorm:"column:setting_description"                  json:"setting_description,omitempty"`

	CreatedAt time.Time `gorm:"column:setting_created_at;autoCreateTime" json:"setting_created_at"`
	UpdatedAt time.Time `gorm:"column:setting_updated_at;autoUpdateTime" json:"setting_updated_at"`
}

func (SettingModel) TableName() string { return "settings" }
