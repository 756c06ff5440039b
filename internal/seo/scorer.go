package seo

import (
  "fmt"
  "math"
  "strings"

  "github.com/qalamhq/qalam-backend/internal/types"
)

type FieldStatus string

const (
  FieldGood    FieldStatus = "good"
  FieldWarning FieldStatus = "warning"
  FieldError   FieldStatus = "error"
)

type FieldResult struct {
  Status  FieldStatus `json:"status"`
  Message string      `json:"message,omitempty"`
  Score   int         `json:"score"`
}

// FieldValidator scores one logical field. It receives the field's own
// value plus the whole field bag for cross-field checks.
type FieldValidator func(value any, fields map[string]any) FieldResult

type FieldCheck struct {
  Field    string
  Validate FieldValidator
}

type FieldConfig struct {
  Checks   []FieldCheck
  MaxScore int
}

type ScoreResult struct {
  Score      int `json:"score"`
  MaxScore   int `json:"max_score"`
  Percentage int `json:"percentage"`
}

// ScoreFields runs the per-field validators in declaration order and
// folds them into a bounded percentage. A field name that appears twice
// is scored once, first occurrence wins. 100 is reserved for zero-issue
// runs: any warning or error caps the percentage at 99.
func ScoreFields(fields map[string]any, cfg FieldConfig) ScoreResult {
  totalScore := 0
  sawIssue := false
  seen := map[string]bool{}
  for _, check := range cfg.Checks {
    if check.Validate == nil || seen[check.Field] {
      continue
    }
    seen[check.Field] = true
    result := check.Validate(fields[check.Field], fields)
    totalScore += result.Score
    if result.Status == FieldWarning || result.Status == FieldError {
      sawIssue = true
    }
  }

  percentage := 0
  if cfg.MaxScore > 0 {
    percentage = int(math.Round(float64(totalScore) / float64(cfg.MaxScore) * 100))
  }
  if percentage < 0 {
    percentage = 0
  }
  upperBound := 100
  if sawIssue {
    upperBound = 99
  }
  if percentage > upperBound {
    percentage = upperBound
  }
  return ScoreResult{Score: totalScore, MaxScore: cfg.MaxScore, Percentage: percentage}
}

// ArticleFields flattens an article and its featured image into the bag
// the field validators read.
func ArticleFields(article *types.Article, image *types.MediaAsset) map[string]any {
  fields := map[string]any{}
  if article != nil {
    fields["headline"] = article.Title
    fields["excerpt"] = article.Excerpt
    fields["body"] = article.Body
    fields["language"] = article.Language
    fields["seoTitle"] = article.SeoTitle
    fields["seoDescription"] = article.SeoDescription
  }
  if image != nil && image.URL != "" {
    fields["featuredImage"] = map[string]any{
      "url":    image.URL,
      "alt":    image.AltText,
      "width":  image.Width,
      "height": image.Height,
    }
  }
  return fields
}

const (
  openGraphMaxScore = 15

  ogTitleMin = 40
  ogTitleMax = 60
  ogDescMin  = 120
  ogDescMax  = 160
)

// ValidateOpenGraphTags scores the Open Graph surface of an article:
// og:title, og:description and og:image with full image metadata.
func ValidateOpenGraphTags(_ any, fields map[string]any) FieldResult {
  title, _ := fields["seoTitle"].(string)
  desc, _ := fields["seoDescription"].(string)
  image, _ := fields["featuredImage"].(map[string]any)
  imageURL := ""
  if image != nil {
    imageURL, _ = image["url"].(string)
  }

  missing := []string{}
  if strings.TrimSpace(title) == "" {
    missing = append(missing, "og:title")
  }
  if strings.TrimSpace(desc) == "" {
    missing = append(missing, "og:description")
  }
  if imageURL == "" {
    missing = append(missing, "og:image")
  }
  if len(missing) > 0 {
    return FieldResult{
      Status:  FieldWarning,
      Message: fmt.Sprintf("missing Open Graph tags: %s", strings.Join(missing, ", ")),
      Score:   0,
    }
  }

  score := openGraphMaxScore
  problems := []string{}
  titleLen := len([]rune(title))
  if titleLen < ogTitleMin || titleLen > ogTitleMax {
    score -= 3
    problems = append(problems, fmt.Sprintf("og:title should be %d-%d characters, got %d", ogTitleMin, ogTitleMax, titleLen))
  }
  descLen := len([]rune(desc))
  if descLen < ogDescMin || descLen > ogDescMax {
    score -= 3
    problems = append(problems, fmt.Sprintf("og:description should be %d-%d characters, got %d", ogDescMin, ogDescMax, descLen))
  }
  alt, _ := image["alt"].(string)
  width := intField(image["width"])
  height := intField(image["height"])
  if strings.TrimSpace(alt) == "" || width <= 0 || height <= 0 {
    score -= 5
    problems = append(problems, "og:image needs alt text, width and height")
  }

  if len(problems) > 0 {
    return FieldResult{
      Status:  FieldWarning,
      Message: strings.Join(problems, "; "),
      Score:   score,
    }
  }
  return FieldResult{Status: FieldGood, Score: score}
}

func intField(v any) int {
  switch n := v.(type) {
  case int:
    return n
  case int64:
    return int(n)
  case float64:
    return int(n)
  default:
    return 0
  }
}

// DefaultArticleFieldConfig is the scoring config regeneration uses.
// Max score 35: Open Graph 15, headline 5, description 5, language 5,
// body 5.
func DefaultArticleFieldConfig() FieldConfig {
  return FieldConfig{
    MaxScore: 35,
    Checks: []FieldCheck{
      {Field: "openGraph", Validate: ValidateOpenGraphTags},
      {Field: "headline", Validate: validateHeadlineField},
      {Field: "seoDescription", Validate: validateDescriptionField},
      {Field: "language", Validate: validateLanguageField},
      {Field: "body", Validate: validateBodyField},
    },
  }
}

func validateHeadlineField(value any, _ map[string]any) FieldResult {
  headline, _ := value.(string)
  if strings.TrimSpace(headline) == "" {
    return FieldResult{Status: FieldError, Message: "headline is empty", Score: 0}
  }
  if len([]rune(headline)) > recommendedHeadlineMax {
    return FieldResult{Status: FieldWarning, Message: "headline exceeds the recommended length", Score: 2}
  }
  return FieldResult{Status: FieldGood, Score: 5}
}

func validateDescriptionField(value any, fields map[string]any) FieldResult {
  desc, _ := value.(string)
  if strings.TrimSpace(desc) == "" {
    desc, _ = fields["excerpt"].(string)
  }
  if strings.TrimSpace(desc) == "" {
    return FieldResult{Status: FieldWarning, Message: "article has neither a meta description nor an excerpt", Score: 0}
  }
  return FieldResult{Status: FieldGood, Score: 5}
}

func validateLanguageField(value any, _ map[string]any) FieldResult {
  language, _ := value.(string)
  if strings.TrimSpace(language) == "" {
    return FieldResult{Status: FieldWarning, Message: "article language is not set", Score: 0}
  }
  return FieldResult{Status: FieldGood, Score: 5}
}

func validateBodyField(value any, _ map[string]any) FieldResult {
  body, _ := value.(string)
  words := countWords(body)
  if words == 0 {
    return FieldResult{Status: FieldError, Message: "article body is empty", Score: 0}
  }
  if words < substantialWordCount {
    return FieldResult{Status: FieldWarning, Message: "article body is below the substantial-content threshold", Score: 2}
  }
  return FieldResult{Status: FieldGood, Score: 5}
}
