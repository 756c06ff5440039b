package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/types"
)

type AuthorRepo interface {
  Create(ctx context.Context, tx *gorm.DB, authors []*types.Author) ([]*types.Author, error)
  GetByID(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) (*types.Author, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, authorIDs []uuid.UUID) ([]*types.Author, error)
}

type authorRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAuthorRepo(db *gorm.DB, baseLog *logger.Logger) AuthorRepo {
  repoLog := baseLog.With("repo", "AuthorRepo")
  return &authorRepo{db: db, log: repoLog}
}

func (r *authorRepo) Create(ctx context.Context, tx *gorm.DB, authors []*types.Author) ([]*types.Author, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(authors) == 0 {
    return []*types.Author{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&authors).Error; err != nil {
    return nil, err
  }
  return authors, nil
}

func (r *authorRepo) GetByID(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) (*types.Author, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var author types.Author
  if err := transaction.WithContext(ctx).
    Where("id = ?", authorID).
    First(&author).Error; err != nil {
    return nil, err
  }
  return &author, nil
}

func (r *authorRepo) GetByIDs(ctx context.Context, tx *gorm.DB, authorIDs []uuid.UUID) ([]*types.Author, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Author
  if len(authorIDs) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", authorIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
