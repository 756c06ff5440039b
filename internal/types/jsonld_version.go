package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// JsonLdVersion is one immutable snapshot of an article's generated
// structured data. Rows are append-only: numbers are never reused and
// exactly one row per article carries is_current.
type JsonLdVersion struct {
  ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
  ArticleID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_article_version,priority:1" json:"article_id"`
  VersionNumber int            `gorm:"column:version_number;not null;uniqueIndex:idx_article_version,priority:2" json:"version_number"`
  Graph         datatypes.JSON `gorm:"column:graph;type:jsonb;not null" json:"graph"`
  IsCurrent     bool           `gorm:"column:is_current;not null;default:false;index" json:"is_current"`
  CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
}

func (JsonLdVersion) TableName() string { return "jsonld_version" }

// SeoStatistics is the dashboard aggregate over all tracked articles.
// Pure JSON contract, not a DB model.
type SeoStatistics struct {
  Total        int64 `json:"total"`
  WithJsonLd   int64 `json:"with_json_ld"`
  WithErrors   int64 `json:"with_errors"`
  WithWarnings int64 `json:"with_warnings"`
}
