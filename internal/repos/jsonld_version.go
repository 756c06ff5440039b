package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/types"
)

type JsonLdVersionRepo interface {
  // Append writes the next snapshot for an article and makes it current.
  // Appends for the same article are serialized by a row lock; the unique
  // (article_id, version_number) index backstops any remaining race.
  Append(ctx context.Context, tx *gorm.DB, articleID uuid.UUID, graph datatypes.JSON) (*types.JsonLdVersion, error)
  GetByArticleAndNumber(ctx context.Context, tx *gorm.DB, articleID uuid.UUID, versionNumber int) (*types.JsonLdVersion, error)
  GetCurrent(ctx context.Context, tx *gorm.DB, articleID uuid.UUID) (*types.JsonLdVersion, error)
  ListByArticle(ctx context.Context, tx *gorm.DB, articleID uuid.UUID) ([]*types.JsonLdVersion, error)
}

type jsonLdVersionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewJsonLdVersionRepo(db *gorm.DB, baseLog *logger.Logger) JsonLdVersionRepo {
  repoLog := baseLog.With("repo", "JsonLdVersionRepo")
  return &jsonLdVersionRepo{db: db, log: repoLog}
}

func (r *jsonLdVersionRepo) Append(ctx context.Context, tx *gorm.DB, articleID uuid.UUID, graph datatypes.JSON) (*types.JsonLdVersion, error) {
  var created *types.JsonLdVersion
  run := func(txx *gorm.DB) error {
    q := txx.WithContext(ctx).
      Where("article_id = ?", articleID).
      Order("version_number DESC").
      Limit(1)
    if txx.Dialector.Name() == "postgres" {
      q = q.Clauses(clause.Locking{Strength: "UPDATE"})
    }
    var last types.JsonLdVersion
    if err := q.Find(&last).Error; err != nil {
      return err
    }

    if err := txx.WithContext(ctx).
      Model(&types.JsonLdVersion{}).
      Where("article_id = ? AND is_current = ?", articleID, true).
      Update("is_current", false).Error; err != nil {
      return err
    }

    version := &types.JsonLdVersion{
      ID:            uuid.New(),
      ArticleID:     articleID,
      VersionNumber: last.VersionNumber + 1,
      Graph:         graph,
      IsCurrent:     true,
    }
    if err := txx.WithContext(ctx).Create(version).Error; err != nil {
      return err
    }
    created = version
    return nil
  }

  var err error
  if tx != nil {
    err = run(tx)
  } else {
    err = r.db.Transaction(run)
  }
  if err != nil {
    return nil, err
  }
  return created, nil
}

func (r *jsonLdVersionRepo) GetByArticleAndNumber(ctx context.Context, tx *gorm.DB, articleID uuid.UUID, versionNumber int) (*types.JsonLdVersion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var version types.JsonLdVersion
  if err := transaction.WithContext(ctx).
    Where("article_id = ? AND version_number = ?", articleID, versionNumber).
    First(&version).Error; err != nil {
    return nil, err
  }
  return &version, nil
}

func (r *jsonLdVersionRepo) GetCurrent(ctx context.Context, tx *gorm.DB, articleID uuid.UUID) (*types.JsonLdVersion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var version types.JsonLdVersion
  err := transaction.WithContext(ctx).
    Where("article_id = ? AND is_current = ?", articleID, true).
    First(&version).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &version, nil
}

func (r *jsonLdVersionRepo) ListByArticle(ctx context.Context, tx *gorm.DB, articleID uuid.UUID) ([]*types.JsonLdVersion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var versions []*types.JsonLdVersion
  if err := transaction.WithContext(ctx).
    Where("article_id = ?", articleID).
    Order("version_number ASC").
    Find(&versions).Error; err != nil {
    return nil, err
  }
  return versions, nil
}
