package types

import (
  "github.com/google/uuid"
  "gorm.io/gorm"
)

// IDs are assigned application-side so the models work unchanged against
// both postgres and the sqlite test backend.

func (c *Client) BeforeCreate(_ *gorm.DB) error {
  if c.ID == uuid.Nil {
    c.ID = uuid.New()
  }
  return nil
}

func (a *Author) BeforeCreate(_ *gorm.DB) error {
  if a.ID == uuid.Nil {
    a.ID = uuid.New()
  }
  return nil
}

func (m *MediaAsset) BeforeCreate(_ *gorm.DB) error {
  if m.ID == uuid.Nil {
    m.ID = uuid.New()
  }
  return nil
}

func (a *Article) BeforeCreate(_ *gorm.DB) error {
  if a.ID == uuid.Nil {
    a.ID = uuid.New()
  }
  return nil
}

func (v *JsonLdVersion) BeforeCreate(_ *gorm.DB) error {
  if v.ID == uuid.Nil {
    v.ID = uuid.New()
  }
  return nil
}
