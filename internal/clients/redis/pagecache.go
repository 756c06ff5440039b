package redis

import (
  "context"
  "fmt"
  "os"
  "strings"
  "time"

  goredis "github.com/redis/go-redis/v9"

  "github.com/qalamhq/qalam-backend/internal/logger"
)

// PageCache invalidates the rendered-page cache after structured data
// changes. Keys are derived from the article's public slug; a pub/sub
// message lets edge processes drop their local copies too.
type PageCache interface {
  InvalidateSlug(ctx context.Context, slug string) error
  Close() error
}

type pageCache struct {
  log     *logger.Logger
  rdb     *goredis.Client
  channel string
}

func NewPageCache(log *logger.Logger) (PageCache, error) {
  if log == nil {
    return nil, fmt.Errorf("logger required")
  }
  addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
  if addr == "" {
    return nil, fmt.Errorf("missing REDIS_ADDR")
  }
  channel := strings.TrimSpace(os.Getenv("REDIS_CACHE_CHANNEL"))
  if channel == "" {
    channel = "page_cache_invalidation"
  }

  rdb := goredis.NewClient(&goredis.Options{
    Addr:        addr,
    DialTimeout: 5 * time.Second,
  })

  ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
  defer cancel()
  if err := rdb.Ping(ctx).Err(); err != nil {
    _ = rdb.Close()
    return nil, fmt.Errorf("redis ping: %w", err)
  }

  return &pageCache{
    log:     log.With("client", "RedisPageCache"),
    rdb:     rdb,
    channel: channel,
  }, nil
}

func (p *pageCache) InvalidateSlug(ctx context.Context, slug string) error {
  if p == nil || p.rdb == nil {
    return fmt.Errorf("page cache not initialized")
  }
  slug = strings.TrimSpace(slug)
  if slug == "" {
    return fmt.Errorf("slug required")
  }
  key := "page:" + slug
  if err := p.rdb.Del(ctx, key).Err(); err != nil {
    return fmt.Errorf("delete %s: %w", key, err)
  }
  if err := p.rdb.Publish(ctx, p.channel, slug).Err(); err != nil {
    p.log.Warn("Cache invalidation publish failed", "slug", slug, "error", err)
  }
  return nil
}

func (p *pageCache) Close() error {
  if p == nil || p.rdb == nil {
    return nil
  }
  return p.rdb.Close()
}
