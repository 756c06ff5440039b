package app

import (
  "fmt"
  "os"

  "github.com/gin-gonic/gin"
  "gorm.io/gorm"

  redisclient "github.com/qalamhq/qalam-backend/internal/clients/redis"
  "github.com/qalamhq/qalam-backend/internal/db"
  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/middleware"
)

type App struct {
  Log      *logger.Logger
  DB       *gorm.DB
  Router   *gin.Engine
  Cfg      Config
  Repos    Repos
  Services Services
  cache    redisclient.PageCache
}

func New() (*App, error) {
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    return nil, fmt.Errorf("init logger: %w", err)
  }

  log.Info("Loading environment variables...")
  cfg := LoadConfig(log)

  pg, err := db.NewPostgresService(log)
  if err != nil {
    log.Sync()
    return nil, fmt.Errorf("init postgres: %w", err)
  }
  if err := pg.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  theDB := pg.DB()

  // Page cache is optional; without redis the service still works, the
  // rendering tier just serves stale pages until its own TTL expires.
  var pageCache redisclient.PageCache
  if cache, cacheErr := redisclient.NewPageCache(log); cacheErr != nil {
    log.Warn("Page cache disabled", "error", cacheErr)
  } else {
    pageCache = cache
  }

  reposet := wireRepos(theDB, log)
  serviceset := wireServices(theDB, log, cfg, reposet)
  handlerset := wireHandlers(log, serviceset, pageCache)
  authMiddleware := middleware.NewAuthMiddleware(log, cfg.JWTSecretKey)
  router := wireRouter(handlerset, authMiddleware)

  return &App{
    Log:      log,
    DB:       theDB,
    Router:   router,
    Cfg:      cfg,
    Repos:    reposet,
    Services: serviceset,
    cache:    pageCache,
  }, nil
}

func (a *App) Run() error {
  if a == nil || a.Router == nil {
    return fmt.Errorf("app not initialized")
  }
  return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
  if a == nil {
    return
  }
  if a.cache != nil {
    _ = a.cache.Close()
  }
  if a.Log != nil {
    a.Log.Sync()
  }
}
