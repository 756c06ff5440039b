package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  redisclient "github.com/qalamhq/qalam-backend/internal/clients/redis"
  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/seo"
  "github.com/qalamhq/qalam-backend/internal/services"
)

// StructuredDataHandler is the trigger surface for the regeneration
// engine: regenerate one, regenerate many, rollback, inspect versions,
// aggregate statistics. Page-cache invalidation happens here, on the
// caller side of the core, as a post-success side effect.
type StructuredDataHandler struct {
  log            *logger.Logger
  sdService      services.StructuredDataService
  articleService services.ArticleService
  pageCache      redisclient.PageCache
}

func NewStructuredDataHandler(
  log *logger.Logger,
  sdService services.StructuredDataService,
  articleService services.ArticleService,
  pageCache redisclient.PageCache,
) *StructuredDataHandler {
  return &StructuredDataHandler{
    log:            log.With("handler", "StructuredDataHandler"),
    sdService:      sdService,
    articleService: articleService,
    pageCache:      pageCache,
  }
}

func (h *StructuredDataHandler) Regenerate(c *gin.Context) {
  articleID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_article_id", err)
    return
  }
  res := h.sdService.Regenerate(c.Request.Context(), articleID)
  if !res.Success {
    if errors.Is(res.Cause(), seo.ErrEntityNotFound) {
      RespondError(c, http.StatusNotFound, "article_not_found", res.Cause())
      return
    }
    RespondError(c, http.StatusInternalServerError, "regeneration_failed", res.Cause())
    return
  }
  h.invalidateCache(c, res.Slug)
  RespondOK(c, gin.H{"result": res})
}

func (h *StructuredDataHandler) RegenerateBatch(c *gin.Context) {
  var body struct {
    ArticleIDs []string `json:"article_ids"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  if len(body.ArticleIDs) == 0 {
    RespondError(c, http.StatusBadRequest, "no_article_ids", nil)
    return
  }
  articleIDs := make([]uuid.UUID, 0, len(body.ArticleIDs))
  for _, raw := range body.ArticleIDs {
    id, err := uuid.Parse(raw)
    if err != nil {
      RespondError(c, http.StatusBadRequest, "invalid_article_id", err)
      return
    }
    articleIDs = append(articleIDs, id)
  }

  batch := h.sdService.RegenerateBatch(c.Request.Context(), articleIDs)
  h.log.Info("Batch regeneration finished", "requested", len(articleIDs), "successful", batch.Successful, "failed", batch.Failed)
  RespondOK(c, gin.H{"batch": batch})
}

func (h *StructuredDataHandler) Rollback(c *gin.Context) {
  articleID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_article_id", err)
    return
  }
  var body struct {
    VersionNumber int `json:"version_number"`
  }
  if err := c.ShouldBindJSON(&body); err != nil || body.VersionNumber < 1 {
    RespondError(c, http.StatusBadRequest, "invalid_version_number", err)
    return
  }

  version, err := h.sdService.Rollback(c.Request.Context(), articleID, body.VersionNumber)
  if err != nil {
    if errors.Is(err, seo.ErrVersionNotFound) {
      RespondError(c, http.StatusNotFound, "version_not_found", err)
      return
    }
    h.log.Error("Rollback failed", "article_id", articleID, "version", body.VersionNumber, "error", err)
    RespondError(c, http.StatusInternalServerError, "rollback_failed", err)
    return
  }

  if article, loadErr := h.articleService.FindByID(c.Request.Context(), nil, articleID); loadErr == nil {
    h.invalidateCache(c, article.Slug)
  }
  RespondOK(c, gin.H{"version": version})
}

func (h *StructuredDataHandler) ListVersions(c *gin.Context) {
  articleID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_article_id", err)
    return
  }
  versions, err := h.sdService.Versions(c.Request.Context(), articleID)
  if err != nil {
    h.log.Error("ListVersions failed", "article_id", articleID, "error", err)
    RespondError(c, http.StatusInternalServerError, "load_versions_failed", err)
    return
  }
  RespondOK(c, gin.H{"versions": versions})
}

func (h *StructuredDataHandler) Statistics(c *gin.Context) {
  stats, err := h.sdService.Statistics(c.Request.Context())
  if err != nil {
    h.log.Error("Statistics failed", "error", err)
    RespondError(c, http.StatusInternalServerError, "load_statistics_failed", err)
    return
  }
  RespondOK(c, gin.H{"statistics": stats})
}

func (h *StructuredDataHandler) invalidateCache(c *gin.Context, slug string) {
  if h.pageCache == nil || slug == "" {
    return
  }
  if err := h.pageCache.InvalidateSlug(c.Request.Context(), slug); err != nil {
    h.log.Warn("Page cache invalidation failed", "slug", slug, "error", err)
  }
}
