package app

import (
  "time"

  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/utils"
)

type Config struct {
  JWTSecretKey  string
  Port          string
  BatchWorkers  int
  EntityTimeout time.Duration
}

func LoadConfig(log *logger.Logger) Config {
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  port := utils.GetEnv("PORT", "8080", log)
  batchWorkers := utils.GetEnvAsInt("SEO_BATCH_WORKERS", 4, log)
  entityTimeout := utils.GetEnvAsDuration("SEO_ENTITY_TIMEOUT_SECONDS", 30, log)
  return Config{
    JWTSecretKey:  jwtSecretKey,
    Port:          port,
    BatchWorkers:  batchWorkers,
    EntityTimeout: entityTimeout,
  }
}
