package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/types"
)

type ClientRepo interface {
  Create(ctx context.Context, tx *gorm.DB, clients []*types.Client) ([]*types.Client, error)
  GetByID(ctx context.Context, tx *gorm.DB, clientID uuid.UUID) (*types.Client, error)
}

type clientRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewClientRepo(db *gorm.DB, baseLog *logger.Logger) ClientRepo {
  repoLog := baseLog.With("repo", "ClientRepo")
  return &clientRepo{db: db, log: repoLog}
}

func (r *clientRepo) Create(ctx context.Context, tx *gorm.DB, clients []*types.Client) ([]*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(clients) == 0 {
    return []*types.Client{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&clients).Error; err != nil {
    return nil, err
  }
  return clients, nil
}

func (r *clientRepo) GetByID(ctx context.Context, tx *gorm.DB, clientID uuid.UUID) (*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var client types.Client
  if err := transaction.WithContext(ctx).
    Where("id = ?", clientID).
    First(&client).Error; err != nil {
    return nil, err
  }
  return &client, nil
}
