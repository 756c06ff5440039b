package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "github.com/qalamhq/qalam-backend/internal/handlers"
  "github.com/qalamhq/qalam-backend/internal/middleware"
)

type RouterConfig struct {
  ArticleHandler        *handlers.ArticleHandler
  StructuredDataHandler *handlers.StructuredDataHandler
  AuthMiddleware        *middleware.AuthMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  // Cors
  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.GET("/api/articles/:slug", cfg.ArticleHandler.GetBySlug)

// ===============
// || Protected ||
// ===============
  protected := router.Group("/api/seo")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  protected.POST("/articles/:id/regenerate", cfg.StructuredDataHandler.Regenerate)
  protected.POST("/regenerate-batch", cfg.StructuredDataHandler.RegenerateBatch)
  protected.POST("/articles/:id/rollback", cfg.StructuredDataHandler.Rollback)
  protected.GET("/articles/:id/versions", cfg.StructuredDataHandler.ListVersions)
  protected.GET("/statistics", cfg.StructuredDataHandler.Statistics)

  return router
}
