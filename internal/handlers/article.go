package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/seo"
  "github.com/qalamhq/qalam-backend/internal/services"
)

type ArticleHandler struct {
  log            *logger.Logger
  articleService services.ArticleService
}

func NewArticleHandler(log *logger.Logger, articleService services.ArticleService) *ArticleHandler {
  return &ArticleHandler{
    log:            log.With("handler", "ArticleHandler"),
    articleService: articleService,
  }
}

// GetBySlug serves the public reading site. The mirrored json_ld column
// rides along on the article row, so no join against version history.
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
  slug := c.Param("slug")
  if slug == "" {
    RespondError(c, http.StatusBadRequest, "missing_slug", nil)
    return
  }
  article, err := h.articleService.FindBySlug(c.Request.Context(), nil, slug)
  if err != nil {
    if errors.Is(err, seo.ErrEntityNotFound) {
      RespondError(c, http.StatusNotFound, "article_not_found", err)
      return
    }
    h.log.Error("GetBySlug failed", "slug", slug, "error", err)
    RespondError(c, http.StatusInternalServerError, "load_article_failed", err)
    return
  }
  RespondOK(c, gin.H{"article": article})
}
