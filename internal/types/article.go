package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

type Article struct {
  ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  ClientID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"client_id"`
  Client           *Client        `gorm:"constraint:OnDelete:CASCADE;foreignKey:ClientID;references:ID" json:"client,omitempty"`
  AuthorID         *uuid.UUID     `gorm:"type:uuid;index" json:"author_id,omitempty"`
  Author           *Author        `gorm:"constraint:OnDelete:SET NULL;foreignKey:AuthorID;references:ID" json:"author,omitempty"`
  FeaturedImageID  *uuid.UUID     `gorm:"type:uuid" json:"featured_image_id,omitempty"`
  FeaturedImage    *MediaAsset    `gorm:"constraint:OnDelete:SET NULL;foreignKey:FeaturedImageID;references:ID" json:"featured_image,omitempty"`
  Slug             string         `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
  Title            string         `gorm:"column:title;not null" json:"title"`
  Excerpt          string         `gorm:"column:excerpt" json:"excerpt"`
  Body             string         `gorm:"column:body;type:text" json:"body"`
  Language         string         `gorm:"column:language;default:'ar'" json:"language"`
  SeoTitle         string         `gorm:"column:seo_title" json:"seo_title"`
  SeoDescription   string         `gorm:"column:seo_description" json:"seo_description"`
  Keywords         datatypes.JSON `gorm:"column:keywords;type:jsonb" json:"keywords"`
  FAQ              datatypes.JSON `gorm:"column:faq;type:jsonb" json:"faq"`
  PublishedAt      *time.Time     `gorm:"column:published_at" json:"published_at,omitempty"`
  ReviewedAt       *time.Time     `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
  JsonLd           datatypes.JSON `gorm:"column:json_ld;type:jsonb" json:"json_ld"`
  SeoScore         int            `gorm:"column:seo_score;not null;default:0" json:"seo_score"`
  LastErrorCount   int            `gorm:"column:last_error_count;not null;default:0" json:"last_error_count"`
  LastWarningCount int            `gorm:"column:last_warning_count;not null;default:0" json:"last_warning_count"`
  CreatedAt        time.Time      `gorm:"not null" json:"created_at"`
  UpdatedAt        time.Time      `gorm:"not null" json:"updated_at"`
  DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Article) TableName() string { return "article" }

// Pure JSON contract for the faq column. Not a DB model.
type FAQItem struct {
  Question string `json:"question"`
  Answer   string `json:"answer"`
}
