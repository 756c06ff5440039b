package services

import (
  "context"
  "fmt"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/repos"
  "github.com/qalamhq/qalam-backend/internal/seo"
  "github.com/qalamhq/qalam-backend/internal/types"
)

// ArticleService is the entity-store facade the trigger surface reads
// through. Writes to SEO-owned fields go through the orchestrator, not
// here.
type ArticleService interface {
  FindByID(ctx context.Context, tx *gorm.DB, articleID uuid.UUID) (*types.Article, error)
  FindBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Article, error)
}

type articleService struct {
  db          *gorm.DB
  log         *logger.Logger
  articleRepo repos.ArticleRepo
}

func NewArticleService(db *gorm.DB, baseLog *logger.Logger, articleRepo repos.ArticleRepo) ArticleService {
  serviceLog := baseLog.With("service", "ArticleService")
  return &articleService{
    db:          db,
    log:         serviceLog,
    articleRepo: articleRepo,
  }
}

func (s *articleService) FindByID(ctx context.Context, tx *gorm.DB, articleID uuid.UUID) (*types.Article, error) {
  article, err := s.articleRepo.GetByID(ctx, tx, articleID)
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, seo.ErrEntityNotFound
    }
    return nil, fmt.Errorf("load article: %w", err)
  }
  return article, nil
}

func (s *articleService) FindBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Article, error) {
  article, err := s.articleRepo.GetBySlug(ctx, tx, slug)
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, seo.ErrEntityNotFound
    }
    return nil, fmt.Errorf("load article by slug: %w", err)
  }
  return article, nil
}
