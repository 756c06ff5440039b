package app

import (
  "gorm.io/gorm"

  "github.com/qalamhq/qalam-backend/internal/clients/schemacheck"
  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/seo"
  "github.com/qalamhq/qalam-backend/internal/services"
)

type Services struct {
  Article        services.ArticleService
  StructuredData services.StructuredDataService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
  log.Info("Wiring services...")

  // The external conformance checker is best-effort: without a URL the
  // validator runs on local structural rules only.
  var checker seo.ConformanceChecker
  if client, err := schemacheck.New(log); err != nil {
    log.Warn("Schema conformance checker disabled", "error", err)
  } else {
    checker = client
  }

  return Services{
    Article: services.NewArticleService(db, log, reposet.Article),
    StructuredData: services.NewStructuredDataService(
      db,
      log,
      reposet.Article,
      reposet.JsonLdVersion,
      checker,
      cfg.BatchWorkers,
      cfg.EntityTimeout,
    ),
  }
}
