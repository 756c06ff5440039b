package app

import (
  "gorm.io/gorm"
  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/repos"
)

type Repos struct {
  Article       repos.ArticleRepo
  Author        repos.AuthorRepo
  Client        repos.ClientRepo
  MediaAsset    repos.MediaAssetRepo
  JsonLdVersion repos.JsonLdVersionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
  log.Info("Wiring repos...")
  return Repos{
    Article:       repos.NewArticleRepo(db, log),
    Author:        repos.NewAuthorRepo(db, log),
    Client:        repos.NewClientRepo(db, log),
    MediaAsset:    repos.NewMediaAssetRepo(db, log),
    JsonLdVersion: repos.NewJsonLdVersionRepo(db, log),
  }
}
