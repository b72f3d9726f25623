package dto

import (
	"encoding/json"
	"time"

	model "academyku_backend/internals/features/settings/model"
)

type UpsertSettingRequest struct {
	SettingKey         string          `json:"setting_key" validate:"required,min=2,max=100"`
	SettingValue       json.RawMessage `json:"setting_value" validate:"required"`
	SettingDescription *string         `json:"setting_description" validate:"omitempty,max=500"`
}

type SettingResponse struct {
	SettingKey         string          `json:"setting_key"`
	SettingValue       json.RawMessage `json:"setting_value"`
	SettingDescription *string         `json:"setting_description,omitempty"`
	SettingUpdatedAt   time.Time       `json:"setting_updated_at"`
}

func FromModel(m *model.SettingModel) SettingResponse {
	return SettingResponse{
		SettingKey:         m.SettingKey,
		SettingValue:       json.RawMessage(m.SettingValue),
		SettingDescription: m.SettingDescription,
		SettingUpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(ms []model.SettingModel) []SettingResponse {
	out := make([]SettingResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
