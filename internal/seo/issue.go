package seo

type Severity string

const (
  SeverityError   Severity = "error"
  SeverityWarning Severity = "warning"
  SeverityInfo    Severity = "info"
)

// Issue is the common shape produced by the schema validator, the build
// step and the business rule engine so results can be merged into one
// report.
type Issue struct {
  Severity Severity `json:"severity"`
  Message  string   `json:"message"`
  Path     string   `json:"path,omitempty"`
  // Ref is the schema.org property or rule id the issue refers to.
  Ref string `json:"ref,omitempty"`
}

type Report struct {
  PassedCount  int     `json:"passed_count"`
  FailedCount  int     `json:"failed_count"`
  WarningCount int     `json:"warning_count"`
  InfoCount    int     `json:"info_count"`
  Issues       []Issue `json:"issues"`
}

func (r *Report) Add(issues ...Issue) {
  for _, issue := range issues {
    r.Issues = append(r.Issues, issue)
    switch issue.Severity {
    case SeverityError:
      r.FailedCount++
    case SeverityWarning:
      r.WarningCount++
    default:
      r.InfoCount++
    }
  }
}

// MergeReport folds build issues, schema validator issues and a rule
// engine report into a single ValidationReport. Issue order is stable:
// build, schema, rules.
func MergeReport(buildIssues, schemaIssues []Issue, rules *RuleReport) *Report {
  report := &Report{}
  report.Add(buildIssues...)
  report.Add(schemaIssues...)
  if rules != nil {
    report.PassedCount += rules.PassedCount
    report.Add(rules.Issues()...)
  }
  return report
}
