package seo

import (
  "fmt"
  "strings"

  "github.com/qalamhq/qalam-backend/internal/types"
)

// RuleContext bundles the article, its relations and the already-built
// graph so rules can cross-check generated output against source fields.
// Rules must treat it as read-only.
type RuleContext struct {
  Article       *types.Article
  Author        *types.Author
  Publisher     *types.Client
  FeaturedImage *types.MediaAsset
  Graph         Graph
}

type RuleResult struct {
  Passed  bool           `json:"passed"`
  Message string         `json:"message,omitempty"`
  Details map[string]any `json:"details,omitempty"`
}

// Rule is a single domain check. Implementations are pure: no I/O, no
// mutation of the context.
type Rule interface {
  ID() string
  Name() string
  Category() string
  Severity() Severity
  Validate(rc RuleContext) RuleResult
}

type RuleOutcome struct {
  RuleID   string     `json:"rule_id"`
  RuleName string     `json:"rule_name"`
  Category string     `json:"category"`
  Severity Severity   `json:"severity"`
  Result   RuleResult `json:"result"`
}

type RuleReport struct {
  PassedCount  int           `json:"passed_count"`
  FailedCount  int           `json:"failed_count"`
  WarningCount int           `json:"warning_count"`
  InfoCount    int           `json:"info_count"`
  Outcomes     []RuleOutcome `json:"outcomes"`
}

// Issues converts every failed outcome into the shared Issue shape.
func (r *RuleReport) Issues() []Issue {
  if r == nil {
    return nil
  }
  issues := []Issue{}
  for _, outcome := range r.Outcomes {
    if outcome.Result.Passed {
      continue
    }
    issues = append(issues, Issue{
      Severity: outcome.Severity,
      Message:  outcome.Result.Message,
      Ref:      outcome.RuleID,
    })
  }
  return issues
}

// RuleEngine evaluates every registered rule independently; there is no
// short-circuiting, a failing rule never hides the ones after it. New
// rules are added through Register, not by touching the dispatch.
type RuleEngine struct {
  rules []Rule
}

func NewRuleEngine(rules ...Rule) *RuleEngine {
  return &RuleEngine{rules: rules}
}

func (e *RuleEngine) Register(r Rule) {
  if r != nil {
    e.rules = append(e.rules, r)
  }
}

func (e *RuleEngine) Evaluate(rc RuleContext) *RuleReport {
  report := &RuleReport{Outcomes: make([]RuleOutcome, 0, len(e.rules))}
  for _, rule := range e.rules {
    result := rule.Validate(rc)
    outcome := RuleOutcome{
      RuleID:   rule.ID(),
      RuleName: rule.Name(),
      Category: rule.Category(),
      Severity: rule.Severity(),
      Result:   result,
    }
    report.Outcomes = append(report.Outcomes, outcome)
    if result.Passed {
      report.PassedCount++
      continue
    }
    switch rule.Severity() {
    case SeverityError:
      report.FailedCount++
    case SeverityWarning:
      report.WarningCount++
    default:
      report.InfoCount++
    }
  }
  return report
}

type ruleFunc struct {
  id       string
  name     string
  category string
  severity Severity
  fn       func(rc RuleContext) RuleResult
}

func (r *ruleFunc) ID() string                         { return r.id }
func (r *ruleFunc) Name() string                       { return r.name }
func (r *ruleFunc) Category() string                   { return r.category }
func (r *ruleFunc) Severity() Severity                 { return r.severity }
func (r *ruleFunc) Validate(rc RuleContext) RuleResult { return r.fn(rc) }

// NewRuleFunc wraps a plain function as a Rule.
func NewRuleFunc(id, name, category string, severity Severity, fn func(rc RuleContext) RuleResult) Rule {
  return &ruleFunc{id: id, name: name, category: category, severity: severity, fn: fn}
}

const (
  minLogoDimension       = 112
  substantialWordCount   = 300
  internalLinkBodyChars  = 1500
  recommendedHeadlineMax = 110
)

// DefaultRules is the registered article rule set: content quality,
// media requirements and E-E-A-T signals.
func DefaultRules() []Rule {
  return []Rule{
    NewRuleFunc("arabic-content-completeness", "Arabic content completeness", "content", SeverityError, arabicContentCompleteness),
    NewRuleFunc("publisher-logo-dimensions", "Publisher logo dimensions", "media", SeverityError, publisherLogoDimensions),
    NewRuleFunc("featured-image-alt", "Featured image alt text", "media", SeverityError, featuredImageAlt),
    NewRuleFunc("substantial-content", "Substantial content length", "eeat", SeverityWarning, substantialContent),
    NewRuleFunc("internal-citation-links", "Internal citation links", "content", SeverityWarning, internalCitationLinks),
    NewRuleFunc("headline-length", "Headline length", "content", SeverityWarning, headlineLength),
  }
}

func arabicContentCompleteness(rc RuleContext) RuleResult {
  if rc.Article == nil || rc.Article.Language != "ar" {
    return RuleResult{Passed: true}
  }
  missing := []string{}
  if strings.TrimSpace(rc.Article.Title) == "" {
    missing = append(missing, "title")
  }
  if strings.TrimSpace(rc.Article.Excerpt) == "" {
    missing = append(missing, "excerpt")
  }
  if strings.TrimSpace(rc.Article.Body) == "" {
    missing = append(missing, "body")
  }
  if len(missing) > 0 {
    return RuleResult{
      Passed:  false,
      Message: fmt.Sprintf("Arabic article is incomplete: missing %s", strings.Join(missing, ", ")),
      Details: map[string]any{"missing": missing},
    }
  }
  return RuleResult{Passed: true}
}

func publisherLogoDimensions(rc RuleContext) RuleResult {
  if rc.Publisher == nil || rc.Publisher.LogoURL == "" {
    return RuleResult{Passed: false, Message: "publisher logo is missing"}
  }
  if rc.Publisher.LogoWidth < minLogoDimension || rc.Publisher.LogoHeight < minLogoDimension {
    return RuleResult{
      Passed: false,
      Message: fmt.Sprintf("publisher logo must be at least %dx%d pixels, got %dx%d",
        minLogoDimension, minLogoDimension, rc.Publisher.LogoWidth, rc.Publisher.LogoHeight),
      Details: map[string]any{"width": rc.Publisher.LogoWidth, "height": rc.Publisher.LogoHeight},
    }
  }
  return RuleResult{Passed: true}
}

func featuredImageAlt(rc RuleContext) RuleResult {
  if rc.FeaturedImage == nil {
    return RuleResult{Passed: false, Message: "article has no featured image"}
  }
  if strings.TrimSpace(rc.FeaturedImage.AltText) == "" {
    return RuleResult{Passed: false, Message: "featured image alt text is missing"}
  }
  return RuleResult{Passed: true}
}

func substantialContent(rc RuleContext) RuleResult {
  words := 0
  if rc.Article != nil {
    words = countWords(rc.Article.Body)
  }
  if words < substantialWordCount {
    return RuleResult{
      Passed:  false,
      Message: fmt.Sprintf("article body has %d words; at least %d are expected for substantial content", words, substantialWordCount),
      Details: map[string]any{"word_count": words},
    }
  }
  return RuleResult{Passed: true}
}

func internalCitationLinks(rc RuleContext) RuleResult {
  if rc.Article == nil || len(rc.Article.Body) < internalLinkBodyChars {
    return RuleResult{Passed: true}
  }
  if strings.Contains(rc.Article.Body, `href="/`) {
    return RuleResult{Passed: true}
  }
  return RuleResult{
    Passed:  false,
    Message: "long-form article has no internal citation links",
  }
}

func headlineLength(rc RuleContext) RuleResult {
  if rc.Article == nil {
    return RuleResult{Passed: true}
  }
  length := len([]rune(rc.Article.Title))
  if length > recommendedHeadlineMax {
    return RuleResult{
      Passed:  false,
      Message: fmt.Sprintf("headline is %d characters; %d is the recommended maximum", length, recommendedHeadlineMax),
      Details: map[string]any{"length": length},
    }
  }
  return RuleResult{Passed: true}
}
