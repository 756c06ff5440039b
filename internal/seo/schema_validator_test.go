package seo

import (
  "context"
  "errors"
  "testing"
)

type fakeChecker struct {
  outcome CheckOutcome
  err     error
  calls   int
}

func (f *fakeChecker) Check(_ context.Context, _ Graph) (CheckOutcome, error) {
  f.calls++
  return f.outcome, f.err
}

func validGraph() Graph {
  return Graph{
    "@context": "https://schema.org",
    "@type":    "Article",
    "headline": "A Complete Guide to Arabic Coffee",
    "author":   Graph{"@type": "Person", "name": "Layla Haddad"},
  }
}

func findIssue(issues []Issue, ref string) *Issue {
  for i := range issues {
    if issues[i].Ref == ref {
      return &issues[i]
    }
  }
  return nil
}

func TestValidateAcceptsWellFormedGraph(t *testing.T) {
  v := NewSchemaValidator(nil, nil)

  if issues := v.Validate(context.Background(), validGraph()); len(issues) != 0 {
    t.Fatalf("expected no issues, got %v", issues)
  }
}

func TestValidateReportsMissingRequiredProps(t *testing.T) {
  v := NewSchemaValidator(nil, nil)
  graph := Graph{
    "@context": "https://schema.org",
    "@type":    "Article",
    "author":   Graph{"@type": "Person"},
  }

  issues := v.Validate(context.Background(), graph)

  headline := findIssue(issues, "headline")
  if headline == nil || headline.Severity != SeverityError {
    t.Fatalf("missing headline not reported: %v", issues)
  }
  name := findIssue(issues, "name")
  if name == nil || name.Path != "$.author.name" {
    t.Fatalf("nested Person without a name not reported: %v", issues)
  }
}

func TestValidateReportsEmptyRequiredString(t *testing.T) {
  v := NewSchemaValidator(nil, nil)
  graph := Graph{"@context": "https://schema.org", "@type": "Article", "headline": ""}

  issues := v.Validate(context.Background(), graph)

  if issue := findIssue(issues, "headline"); issue == nil {
    t.Fatalf("empty headline not reported: %v", issues)
  }
}

func TestValidateToleratesMalformedNesting(t *testing.T) {
  v := NewSchemaValidator(nil, nil)
  graph := Graph{
    "@context": "https://schema.org",
    "@type":    "Article",
    "headline": "ok",
    "mainEntity": Graph{
      "@type":      "FAQPage",
      "mainEntity": "not-a-list",
    },
    "image": Graph{"@type": 42},
  }

  issues := v.Validate(context.Background(), graph)

  if issue := findIssue(issues, "mainEntity"); issue == nil {
    t.Fatalf("scalar FAQ mainEntity not reported: %v", issues)
  }
  if issue := findIssue(issues, "@type"); issue == nil {
    t.Fatalf("non-string @type not reported: %v", issues)
  }
}

func TestValidateMissingContext(t *testing.T) {
  v := NewSchemaValidator(nil, nil)
  graph := Graph{"@type": "Article", "headline": "ok"}

  if issue := findIssue(v.Validate(context.Background(), graph), "@context"); issue == nil {
    t.Fatal("missing @context not reported")
  }
}

func TestValidateNilGraph(t *testing.T) {
  v := NewSchemaValidator(nil, nil)

  issues := v.Validate(context.Background(), nil)

  if len(issues) != 1 || issues[0].Severity != SeverityError {
    t.Fatalf("nil graph should yield one error issue, got %v", issues)
  }
}

func TestValidateMergesCheckerFindings(t *testing.T) {
  checker := &fakeChecker{outcome: CheckOutcome{
    Valid:    false,
    Errors:   []string{"Article is missing datePublished"},
    Warnings: []string{"image is smaller than recommended"},
  }}
  v := NewSchemaValidator(nil, checker)

  issues := v.Validate(context.Background(), validGraph())

  if checker.calls != 1 {
    t.Fatalf("checker called %d times, want 1", checker.calls)
  }
  var errs, warns int
  for _, issue := range issues {
    if issue.Ref != "conformance" {
      continue
    }
    switch issue.Severity {
    case SeverityError:
      errs++
    case SeverityWarning:
      warns++
    }
  }
  if errs != 1 || warns != 1 {
    t.Fatalf("checker findings not merged: %v", issues)
  }
}

func TestValidateCheckerUnavailableIsInfoNotFailure(t *testing.T) {
  checker := &fakeChecker{err: errors.New("connection refused")}
  v := NewSchemaValidator(nil, checker)

  issues := v.Validate(context.Background(), validGraph())

  if len(issues) != 1 {
    t.Fatalf("expected exactly the unavailability notice, got %v", issues)
  }
  if issues[0].Severity != SeverityInfo || issues[0].Ref != "conformance" {
    t.Fatalf("checker outage must degrade to an info issue, got %+v", issues[0])
  }
}
