package seo

import (
  "context"
  "fmt"
  "sort"

  "github.com/qalamhq/qalam-backend/internal/logger"
)

// CheckOutcome is the structured reply of the external schema-conformance
// checker.
type CheckOutcome struct {
  Valid    bool     `json:"valid"`
  Errors   []string `json:"errors,omitempty"`
  Warnings []string `json:"warnings,omitempty"`
}

// ConformanceChecker reaches the external schema.org validation service.
// It is treated as potentially unavailable: a transport error is not a
// validation failure.
type ConformanceChecker interface {
  Check(ctx context.Context, graph Graph) (CheckOutcome, error)
}

type SchemaValidator struct {
  log     *logger.Logger
  checker ConformanceChecker
}

// NewSchemaValidator builds a validator. checker may be nil, in which
// case only the local structural rules run.
func NewSchemaValidator(baseLog *logger.Logger, checker ConformanceChecker) *SchemaValidator {
  var log *logger.Logger
  if baseLog != nil {
    log = baseLog.With("component", "SchemaValidator")
  }
  return &SchemaValidator{log: log, checker: checker}
}

// requiredProps are the baseline schema.org requirements for the node
// types the builder emits.
var requiredProps = map[string][]string{
  "Article":      {"headline"},
  "Person":       {"name"},
  "Organization": {"name"},
  "ImageObject":  {"url"},
  "Question":     {"name", "acceptedAnswer"},
  "Answer":       {"text"},
  "FAQPage":      {"mainEntity"},
}

// Validate reports structural schema.org non-conformance in the graph and
// merges in the external checker's findings. Malformed nested structures
// are reported, never panicked on.
func (v *SchemaValidator) Validate(ctx context.Context, graph Graph) []Issue {
  issues := []Issue{}
  if graph == nil {
    return append(issues, Issue{
      Severity: SeverityError,
      Message:  "no document to validate",
      Ref:      "@type",
    })
  }
  if _, ok := graph["@context"].(string); !ok {
    issues = append(issues, Issue{
      Severity: SeverityError,
      Message:  "root document is missing @context",
      Path:     "@context",
      Ref:      "@context",
    })
  }
  issues = append(issues, validateNode(graph, "$")...)
  issues = append(issues, v.runChecker(ctx, graph)...)
  return issues
}

func validateNode(node Graph, path string) []Issue {
  issues := []Issue{}
  nodeType, ok := node["@type"].(string)
  if !ok {
    if _, present := node["@type"]; present {
      issues = append(issues, Issue{
        Severity: SeverityError,
        Message:  fmt.Sprintf("@type at %s is not a string", path),
        Path:     path,
        Ref:      "@type",
      })
    }
    nodeType = ""
  }
  for _, prop := range requiredProps[nodeType] {
    val, present := node[prop]
    if !present || val == nil {
      issues = append(issues, Issue{
        Severity: SeverityError,
        Message:  fmt.Sprintf("%s is missing required property %q", nodeType, prop),
        Path:     joinPath(path, prop),
        Ref:      prop,
      })
      continue
    }
    if s, isString := val.(string); isString && s == "" {
      issues = append(issues, Issue{
        Severity: SeverityError,
        Message:  fmt.Sprintf("%s property %q is empty", nodeType, prop),
        Path:     joinPath(path, prop),
        Ref:      prop,
      })
    }
  }
  if nodeType == "FAQPage" {
    if _, isList := node["mainEntity"].([]Graph); !isList {
      if _, isAnyList := node["mainEntity"].([]any); !isAnyList {
        if node["mainEntity"] != nil {
          issues = append(issues, Issue{
            Severity: SeverityError,
            Message:  "FAQPage mainEntity must be an array of Question nodes",
            Path:     joinPath(path, "mainEntity"),
            Ref:      "mainEntity",
          })
        }
      }
    }
  }

  // Stable recursion order keeps issue sequences reproducible.
  props := make([]string, 0, len(node))
  for prop := range node {
    props = append(props, prop)
  }
  sort.Strings(props)
  for _, prop := range props {
    val := node[prop]
    childPath := joinPath(path, prop)
    switch child := val.(type) {
    case Graph:
      issues = append(issues, validateNode(child, childPath)...)
    case map[string]any:
      issues = append(issues, validateNode(Graph(child), childPath)...)
    case []Graph:
      for i, item := range child {
        issues = append(issues, validateNode(item, fmt.Sprintf("%s[%d]", childPath, i))...)
      }
    case []any:
      for i, item := range child {
        switch nested := item.(type) {
        case Graph:
          issues = append(issues, validateNode(nested, fmt.Sprintf("%s[%d]", childPath, i))...)
        case map[string]any:
          issues = append(issues, validateNode(Graph(nested), fmt.Sprintf("%s[%d]", childPath, i))...)
        }
      }
    }
  }
  return issues
}

func (v *SchemaValidator) runChecker(ctx context.Context, graph Graph) []Issue {
  if v == nil || v.checker == nil {
    return nil
  }
  outcome, err := v.checker.Check(ctx, graph)
  if err != nil {
    if v.log != nil {
      v.log.Warn("External schema check unavailable, skipping", "error", err)
    }
    return []Issue{{
      Severity: SeverityInfo,
      Message:  "external schema conformance check unavailable; skipped",
      Ref:      "conformance",
    }}
  }
  issues := make([]Issue, 0, len(outcome.Errors)+len(outcome.Warnings))
  for _, msg := range outcome.Errors {
    issues = append(issues, Issue{Severity: SeverityError, Message: msg, Ref: "conformance"})
  }
  for _, msg := range outcome.Warnings {
    issues = append(issues, Issue{Severity: SeverityWarning, Message: msg, Ref: "conformance"})
  }
  return issues
}

func joinPath(base, prop string) string {
  return base + "." + prop
}
