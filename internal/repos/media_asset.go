package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/types"
)

type MediaAssetRepo interface {
  Create(ctx context.Context, tx *gorm.DB, assets []*types.MediaAsset) ([]*types.MediaAsset, error)
  GetByID(ctx context.Context, tx *gorm.DB, assetID uuid.UUID) (*types.MediaAsset, error)
}

type mediaAssetRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewMediaAssetRepo(db *gorm.DB, baseLog *logger.Logger) MediaAssetRepo {
  repoLog := baseLog.With("repo", "MediaAssetRepo")
  return &mediaAssetRepo{db: db, log: repoLog}
}

func (r *mediaAssetRepo) Create(ctx context.Context, tx *gorm.DB, assets []*types.MediaAsset) ([]*types.MediaAsset, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if len(assets) == 0 {
    return []*types.MediaAsset{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&assets).Error; err != nil {
    return nil, err
  }
  return assets, nil
}

func (r *mediaAssetRepo) GetByID(ctx context.Context, tx *gorm.DB, assetID uuid.UUID) (*types.MediaAsset, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var asset types.MediaAsset
  if err := transaction.WithContext(ctx).
    Where("id = ?", assetID).
    First(&asset).Error; err != nil {
    return nil, err
  }
  return &asset, nil
}
