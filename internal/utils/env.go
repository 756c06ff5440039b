package utils

import (
  "os"
  "strconv"
  "time"
  "github.com/qalamhq/qalam-backend/internal/logger"
)

func GetEnv(key, defaultVal string, log *logger.Logger) string {
  if log != nil {
    log = log.With("env_var", key)
  }
  val, ok := os.LookupEnv(key)
  if !ok {
    if log != nil {
      log.Debug("Environment variable not found, using default", "default", defaultVal)
    }
    return defaultVal
  }
  if log != nil {
    log.Debug("Environment variable found, using environment", "environment", val)
  }
  return val
}

func GetEnvAsInt(key string, defaultVal int, log *logger.Logger) int {
  if log != nil {
    log = log.With("env_var", key)
  }
  valStr, ok := os.LookupEnv(key)
  if !ok {
    if log != nil {
      log.Debug("Environment variable not found, using default", "default", defaultVal)
    }
    return defaultVal
  }
  i, err := strconv.Atoi(valStr)
  if err != nil {
    if log != nil {
      log.Debug("Environment variable could not be parsed as int, using default", "providedVal", valStr, "defaultVal", defaultVal, "error", err)
    }
    return defaultVal
  }
  if log != nil {
    log.Debug("Environment variable found, using it", "value", i)
  }
  return i
}

// GetEnvAsDuration reads a *_SECONDS style variable. Values below one
// second fall back to the default so a typo can't zero out a timeout.
func GetEnvAsDuration(key string, defaultSeconds int, log *logger.Logger) time.Duration {
  seconds := GetEnvAsInt(key, defaultSeconds, log)
  if seconds < 1 {
    if log != nil {
      log.Debug("Environment variable below one second, using default", "env_var", key, "providedVal", seconds, "defaultVal", defaultSeconds)
    }
    seconds = defaultSeconds
  }
  return time.Duration(seconds) * time.Second
}
