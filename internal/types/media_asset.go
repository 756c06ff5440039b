package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

type MediaAsset struct {
  ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  ClientID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"client_id"`
  URL       string         `gorm:"column:url;not null" json:"url"`
  AltText   string         `gorm:"column:alt_text" json:"alt_text"`
  Width     int            `gorm:"column:width;not null;default:0" json:"width"`
  Height    int            `gorm:"column:height;not null;default:0" json:"height"`
  MimeType  string         `gorm:"column:mime_type" json:"mime_type"`
  CreatedAt time.Time      `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
  DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (MediaAsset) TableName() string { return "media_asset" }
