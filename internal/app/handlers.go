package app

import (
  redisclient "github.com/qalamhq/qalam-backend/internal/clients/redis"
  "github.com/qalamhq/qalam-backend/internal/handlers"
  "github.com/qalamhq/qalam-backend/internal/logger"
)

type Handlers struct {
  Article        *handlers.ArticleHandler
  StructuredData *handlers.StructuredDataHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, pageCache redisclient.PageCache) Handlers {
  log.Info("Wiring handlers...")
  return Handlers{
    Article:        handlers.NewArticleHandler(log, serviceset.Article),
    StructuredData: handlers.NewStructuredDataHandler(log, serviceset.StructuredData, serviceset.Article, pageCache),
  }
}
