package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/types"
)

type ArticleRepo interface {
  Create(ctx context.Context, tx *gorm.DB, articles []*types.Article) ([]*types.Article, error)
  GetByID(ctx context.Context, tx *gorm.DB, articleID uuid.UUID) (*types.Article, error)
  GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Article, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, articleIDs []uuid.UUID) ([]*types.Article, error)
  UpdateSeoResult(ctx context.Context, tx *gorm.DB, articleID uuid.UUID, graph datatypes.JSON, seoScore, errorCount, warningCount int) error
  UpdateJsonLdMirror(ctx context.Context, tx *gorm.DB, articleID uuid.UUID, graph datatypes.JSON) error
  SeoStatistics(ctx context.Context, tx *gorm.DB) (*types.SeoStatistics, error)
}

type articleRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewArticleRepo(db *gorm.DB, baseLog *logger.Logger) ArticleRepo {
  repoLog := baseLog.With("repo", "ArticleRepo")
  return &articleRepo{db: db, log: repoLog}
}

func (r *articleRepo) Create(ctx context.Context, tx *gorm.DB, articles []*types.Article) ([]*types.Article, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(articles) == 0 {
    return []*types.Article{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&articles).Error; err != nil {
    return nil, err
  }
  return articles, nil
}

func (r *articleRepo) GetByID(ctx context.Context, tx *gorm.DB, articleID uuid.UUID) (*types.Article, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var article types.Article
  err := transaction.WithContext(ctx).
    Preload("Client").
    Preload("Author").
    Preload("FeaturedImage").
    Where("id = ?", articleID).
    First(&article).Error
  if err != nil {
    return nil, err
  }
  return &article, nil
}

func (r *articleRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Article, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var article types.Article
  err := transaction.WithContext(ctx).
    Preload("Client").
    Preload("Author").
    Preload("FeaturedImage").
    Where("slug = ?", slug).
    First(&article).Error
  if err != nil {
    return nil, err
  }
  return &article, nil
}

func (r *articleRepo) GetByIDs(ctx context.Context, tx *gorm.DB, articleIDs []uuid.UUID) ([]*types.Article, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Article
  if len(articleIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", articleIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *articleRepo) UpdateSeoResult(ctx context.Context, tx *gorm.DB, articleID uuid.UUID, graph datatypes.JSON, seoScore, errorCount, warningCount int) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Article{}).
    Where("id = ?", articleID).
    Updates(map[string]any{
      "json_ld":            graph,
      "seo_score":          seoScore,
      "last_error_count":   errorCount,
      "last_warning_count": warningCount,
    }).Error
}

func (r *articleRepo) UpdateJsonLdMirror(ctx context.Context, tx *gorm.DB, articleID uuid.UUID, graph datatypes.JSON) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  return transaction.WithContext(ctx).
    Model(&types.Article{}).
    Where("id = ?", articleID).
    Update("json_ld", graph).Error
}

func (r *articleRepo) SeoStatistics(ctx context.Context, tx *gorm.DB) (*types.SeoStatistics, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  stats := &types.SeoStatistics{}
  base := func() *gorm.DB {
    return transaction.WithContext(ctx).Model(&types.Article{})
  }
  if err := base().Count(&stats.Total).Error; err != nil {
    return nil, err
  }
  if err := base().Where("json_ld IS NOT NULL AND json_ld != 'null'").Count(&stats.WithJsonLd).Error; err != nil {
    return nil, err
  }
  if err := base().Where("last_error_count > 0").Count(&stats.WithErrors).Error; err != nil {
    return nil, err
  }
  if err := base().Where("last_warning_count > 0").Count(&stats.WithWarnings).Error; err != nil {
    return nil, err
  }
  return stats, nil
}
