package seo

import (
  "encoding/json"
  "fmt"
  "strings"
  "time"

  "github.com/qalamhq/qalam-backend/internal/types"
)

// BuildConfig carries everything the builder would otherwise reach for
// ambiently. Now is injected so two builds over the same snapshot are
// byte-identical.
type BuildConfig struct {
  BaseURL       string
  DefaultLocale string
  Now           time.Time
}

// BuildRelations are the records the builder nests into the graph.
// Every field is optional; a missing relation just omits its node.
type BuildRelations struct {
  Author        *types.Author
  Publisher     *types.Client
  FeaturedImage *types.MediaAsset
  FAQ           []types.FAQItem
}

type Builder struct{}

func NewBuilder() *Builder { return &Builder{} }

// Build maps an article and its relations into an Article JSON-LD graph.
// It never fails: when a property required for a minimally valid document
// is absent it returns a best-effort graph plus an error-severity issue
// and leaves the "good enough" judgment to the validator.
func (b *Builder) Build(article *types.Article, rel BuildRelations, cfg BuildConfig) (Graph, []Issue) {
  issues := []Issue{}
  if article == nil {
    return (&ArticleLD{}).ToGraph(), []Issue{{
      Severity: SeverityError,
      Message:  "no article supplied; produced an empty Article document",
      Ref:      "headline",
    }}
  }

  headline := article.Title
  if headline == "" {
    headline = article.SeoTitle
  }
  if headline == "" {
    issues = append(issues, Issue{
      Severity: SeverityError,
      Message:  "article has no title; headline is required for a valid Article document",
      Path:     "headline",
      Ref:      "headline",
    })
  }

  description := article.SeoDescription
  if description == "" {
    description = article.Excerpt
  }

  language := article.Language
  if language == "" {
    language = cfg.DefaultLocale
  }

  ld := &ArticleLD{
    Headline:     headline,
    Description:  description,
    InLanguage:   language,
    WordCount:    countWords(article.Body),
    DateModified: cfg.Now,
  }
  if article.PublishedAt != nil {
    ld.DatePublished = *article.PublishedAt
  }
  if cfg.BaseURL != "" && article.Slug != "" {
    ld.URL = fmt.Sprintf("%s/articles/%s", strings.TrimRight(cfg.BaseURL, "/"), article.Slug)
  }
  ld.Keywords = decodeKeywords(article.Keywords)

  if rel.Author != nil {
    ld.Author = &PersonLD{
      Name:        rel.Author.Name,
      URL:         rel.Author.URL,
      Description: rel.Author.Bio,
      JobTitle:    rel.Author.JobTitle,
      Image:       &ImageObjectLD{URL: rel.Author.AvatarURL},
    }
  }
  if rel.Publisher != nil {
    ld.Publisher = &OrganizationLD{
      Name: rel.Publisher.Name,
      URL:  rel.Publisher.SiteURL,
      Logo: &ImageObjectLD{
        URL:    rel.Publisher.LogoURL,
        Width:  rel.Publisher.LogoWidth,
        Height: rel.Publisher.LogoHeight,
      },
    }
  }
  if rel.FeaturedImage != nil {
    ld.Image = &ImageObjectLD{
      URL:     rel.FeaturedImage.URL,
      Caption: rel.FeaturedImage.AltText,
      Width:   rel.FeaturedImage.Width,
      Height:  rel.FeaturedImage.Height,
    }
  }
  if len(rel.FAQ) > 0 {
    faq := &FAQPageLD{}
    for _, item := range rel.FAQ {
      faq.Questions = append(faq.Questions, QuestionLD{Name: item.Question, Answer: item.Answer})
    }
    ld.MainEntity = faq
  }
  if ld.URL != "" && rel.Publisher != nil {
    ld.Breadcrumb = &BreadcrumbListLD{Items: []BreadcrumbItemLD{
      {Name: rel.Publisher.Name, URL: strings.TrimRight(cfg.BaseURL, "/")},
      {Name: headline, URL: ld.URL},
    }}
  }

  return ld.ToGraph(), issues
}

func countWords(body string) int {
  if strings.TrimSpace(body) == "" {
    return 0
  }
  return len(strings.Fields(body))
}

func decodeKeywords(raw []byte) []string {
  if len(raw) == 0 {
    return nil
  }
  var keywords []string
  if err := json.Unmarshal(raw, &keywords); err != nil {
    return nil
  }
  out := keywords[:0]
  for _, k := range keywords {
    if strings.TrimSpace(k) != "" {
      out = append(out, k)
    }
  }
  if len(out) == 0 {
    return nil
  }
  return out
}
