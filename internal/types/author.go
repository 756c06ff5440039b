package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

type Author struct {
  ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  ClientID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"client_id"`
  Name      string         `gorm:"column:name;not null" json:"name"`
  Slug      string         `gorm:"column:slug;not null;index" json:"slug"`
  Bio       string         `gorm:"column:bio" json:"bio"`
  JobTitle  string         `gorm:"column:job_title" json:"job_title"`
  URL       string         `gorm:"column:url" json:"url"`
  AvatarURL string         `gorm:"column:avatar_url" json:"avatar_url"`
  CreatedAt time.Time      `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
  DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Author) TableName() string { return "author" }
