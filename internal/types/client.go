package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

// Client is a tenant of the platform. Its publisher profile feeds the
// Organization node of every article's structured data.
type Client struct {
  ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  Name          string         `gorm:"column:name;not null" json:"name"`
  SiteURL       string         `gorm:"column:site_url;not null" json:"site_url"`
  LogoURL       string         `gorm:"column:logo_url" json:"logo_url"`
  LogoWidth     int            `gorm:"column:logo_width;not null;default:0" json:"logo_width"`
  LogoHeight    int            `gorm:"column:logo_height;not null;default:0" json:"logo_height"`
  DefaultLocale string         `gorm:"column:default_locale;default:'ar'" json:"default_locale"`
  CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
  UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
  DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Client) TableName() string { return "client" }
