package app

import (
  "github.com/gin-gonic/gin"
  "github.com/qalamhq/qalam-backend/internal/middleware"
  "github.com/qalamhq/qalam-backend/internal/server"
)

func wireRouter(handlerset Handlers, authMiddleware *middleware.AuthMiddleware) *gin.Engine {
  return server.NewRouter(server.RouterConfig{
    ArticleHandler:        handlerset.Article,
    StructuredDataHandler: handlerset.StructuredData,
    AuthMiddleware:        authMiddleware,
  })
}
