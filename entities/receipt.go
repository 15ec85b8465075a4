package entities

import (
	"github.com/google/uuid"
)

type Receipt struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OriginalText  string    `gorm:"type:text" json:"original_text"`
	ProcessedText string    `gorm:"type:text" json:"processed_text"`
	ImageURL      string    `json:"image_url,omitempty"`
	FileName      string    `json:"file_name"`

	Timestamp
}
