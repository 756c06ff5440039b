package services

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "time"

  "github.com/google/uuid"
  "golang.org/x/sync/errgroup"
  "gorm.io/gorm"

  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/repos"
  "github.com/qalamhq/qalam-backend/internal/seo"
  "github.com/qalamhq/qalam-backend/internal/types"
)

type RegenerationState string

const (
  StateFetching   RegenerationState = "fetching"
  StateBuilding   RegenerationState = "building"
  StateValidating RegenerationState = "validating"
  StateScoring    RegenerationState = "scoring"
  StatePersisting RegenerationState = "persisting"
  StateSucceeded  RegenerationState = "succeeded"
  StateFailed     RegenerationState = "failed"
)

// RegenerationResult is the per-article outcome of one pipeline run.
// Failures are data, not panics: State records where the pipeline
// stopped and Error carries the reason.
type RegenerationResult struct {
  ArticleID     uuid.UUID          `json:"article_id"`
  Slug          string             `json:"slug,omitempty"`
  Success       bool               `json:"success"`
  State         RegenerationState  `json:"state"`
  FailedAt      RegenerationState  `json:"failed_at,omitempty"`
  JsonLd        seo.Graph          `json:"json_ld,omitempty"`
  Report        *seo.Report        `json:"validation_report,omitempty"`
  Score         *seo.ScoreResult   `json:"score,omitempty"`
  VersionNumber int                `json:"version_number,omitempty"`
  Error         string             `json:"error,omitempty"`

  err error
}

// Cause exposes the underlying error for sentinel checks.
func (r *RegenerationResult) Cause() error {
  if r == nil {
    return nil
  }
  return r.err
}

type BatchItem struct {
  ArticleID string `json:"article_id"`
  Success   bool   `json:"success"`
  Error     string `json:"error,omitempty"`
}

type BatchResult struct {
  Successful int         `json:"successful"`
  Failed     int         `json:"failed"`
  Results    []BatchItem `json:"results"`
}

// StructuredDataService coordinates Build -> Validate -> Score -> Persist
// for one article and fans the pipeline out across many with bounded
// concurrency.
type StructuredDataService interface {
  Regenerate(ctx context.Context, articleID uuid.UUID) *RegenerationResult
  RegenerateBatch(ctx context.Context, articleIDs []uuid.UUID) *BatchResult
  Rollback(ctx context.Context, articleID uuid.UUID, versionNumber int) (*types.JsonLdVersion, error)
  CurrentVersion(ctx context.Context, articleID uuid.UUID) (*types.JsonLdVersion, error)
  Versions(ctx context.Context, articleID uuid.UUID) ([]*types.JsonLdVersion, error)
  Statistics(ctx context.Context) (*types.SeoStatistics, error)
}

type structuredDataService struct {
  db            *gorm.DB
  log           *logger.Logger
  articleRepo   repos.ArticleRepo
  versionRepo   repos.JsonLdVersionRepo
  builder       *seo.Builder
  validator     *seo.SchemaValidator
  engine        *seo.RuleEngine
  fieldConfig   seo.FieldConfig
  workers       int
  entityTimeout time.Duration
  now           func() time.Time
}

func NewStructuredDataService(
  db *gorm.DB,
  baseLog *logger.Logger,
  articleRepo repos.ArticleRepo,
  versionRepo repos.JsonLdVersionRepo,
  checker seo.ConformanceChecker,
  workers int,
  entityTimeout time.Duration,
) StructuredDataService {
  serviceLog := baseLog.With("service", "StructuredDataService")
  if workers <= 0 {
    workers = 4
  }
  if entityTimeout <= 0 {
    entityTimeout = 30 * time.Second
  }
  return &structuredDataService{
    db:            db,
    log:           serviceLog,
    articleRepo:   articleRepo,
    versionRepo:   versionRepo,
    builder:       seo.NewBuilder(),
    validator:     seo.NewSchemaValidator(baseLog, checker),
    engine:        seo.NewRuleEngine(seo.DefaultRules()...),
    fieldConfig:   seo.DefaultArticleFieldConfig(),
    workers:       workers,
    entityTimeout: entityTimeout,
    now:           func() time.Time { return time.Now().UTC() },
  }
}

func (s *structuredDataService) Regenerate(ctx context.Context, articleID uuid.UUID) *RegenerationResult {
  res := &RegenerationResult{ArticleID: articleID, State: StateFetching}

  article, err := s.articleRepo.GetByID(ctx, nil, articleID)
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return s.fail(res, seo.ErrEntityNotFound)
    }
    return s.fail(res, fmt.Errorf("load article: %w", err))
  }
  res.Slug = article.Slug

  res.State = StateBuilding
  relations := seo.BuildRelations{
    Author:        article.Author,
    Publisher:     article.Client,
    FeaturedImage: article.FeaturedImage,
    FAQ:           decodeFAQ(article.FAQ),
  }
  cfg := seo.BuildConfig{Now: s.now()}
  if article.Client != nil {
    cfg.BaseURL = article.Client.SiteURL
    cfg.DefaultLocale = article.Client.DefaultLocale
  }
  graph, buildIssues := s.builder.Build(article, relations, cfg)

  res.State = StateValidating
  schemaIssues := s.validator.Validate(ctx, graph)
  ruleReport := s.engine.Evaluate(seo.RuleContext{
    Article:       article,
    Author:        article.Author,
    Publisher:     article.Client,
    FeaturedImage: article.FeaturedImage,
    Graph:         graph,
  })
  report := seo.MergeReport(buildIssues, schemaIssues, ruleReport)

  res.State = StateScoring
  score := seo.ScoreFields(seo.ArticleFields(article, article.FeaturedImage), s.fieldConfig)

  res.State = StatePersisting
  raw, err := json.Marshal(graph)
  if err != nil {
    return s.fail(res, fmt.Errorf("encode graph: %w", err))
  }
  var version *types.JsonLdVersion
  err = s.db.Transaction(func(tx *gorm.DB) error {
    v, appendErr := s.versionRepo.Append(ctx, tx, articleID, raw)
    if appendErr != nil {
      return appendErr
    }
    if updateErr := s.articleRepo.UpdateSeoResult(ctx, tx, articleID, raw, score.Percentage, report.FailedCount, report.WarningCount); updateErr != nil {
      return updateErr
    }
    version = v
    return nil
  })
  if err != nil {
    if errors.Is(err, gorm.ErrDuplicatedKey) {
      return s.fail(res, seo.ErrPersistenceConflict)
    }
    return s.fail(res, fmt.Errorf("persist version: %w", err))
  }

  res.State = StateSucceeded
  res.Success = true
  res.JsonLd = graph
  res.Report = report
  res.Score = &score
  res.VersionNumber = version.VersionNumber
  s.log.Info("Regenerated structured data",
    "article_id", articleID,
    "version", version.VersionNumber,
    "score", score.Percentage,
    "errors", report.FailedCount,
    "warnings", report.WarningCount,
  )
  return res
}

// RegenerateBatch processes every article independently under a bounded
// worker pool. One article's failure or timeout never touches another's
// slot; result order matches input order.
func (s *structuredDataService) RegenerateBatch(ctx context.Context, articleIDs []uuid.UUID) *BatchResult {
  results := make([]*RegenerationResult, len(articleIDs))

  var g errgroup.Group
  g.SetLimit(s.workers)
  for i, articleID := range articleIDs {
    i, articleID := i, articleID
    g.Go(func() error {
      itemCtx, cancel := context.WithTimeout(ctx, s.entityTimeout)
      defer cancel()
      results[i] = s.Regenerate(itemCtx, articleID)
      return nil
    })
  }
  _ = g.Wait()

  batch := &BatchResult{Results: make([]BatchItem, len(articleIDs))}
  for i, res := range results {
    item := BatchItem{ArticleID: articleIDs[i].String()}
    if res != nil && res.Success {
      item.Success = true
      batch.Successful++
    } else {
      if res != nil {
        item.Error = res.Error
      }
      batch.Failed++
    }
    batch.Results[i] = item
  }
  return batch
}

// Rollback re-activates a prior snapshot by appending a fresh version
// carrying the target's graph, keeping history append-only and linear,
// and mirrors that graph back onto the article row.
func (s *structuredDataService) Rollback(ctx context.Context, articleID uuid.UUID, versionNumber int) (*types.JsonLdVersion, error) {
  var created *types.JsonLdVersion
  err := s.db.Transaction(func(tx *gorm.DB) error {
    target, err := s.versionRepo.GetByArticleAndNumber(ctx, tx, articleID, versionNumber)
    if err != nil {
      if errors.Is(err, gorm.ErrRecordNotFound) {
        return seo.ErrVersionNotFound
      }
      return fmt.Errorf("load target version: %w", err)
    }
    v, err := s.versionRepo.Append(ctx, tx, articleID, target.Graph)
    if err != nil {
      return fmt.Errorf("append rollback version: %w", err)
    }
    if err := s.articleRepo.UpdateJsonLdMirror(ctx, tx, articleID, target.Graph); err != nil {
      return fmt.Errorf("mirror graph onto article: %w", err)
    }
    created = v
    return nil
  })
  if err != nil {
    return nil, err
  }
  s.log.Info("Rolled back structured data", "article_id", articleID, "target_version", versionNumber, "new_version", created.VersionNumber)
  return created, nil
}

func (s *structuredDataService) CurrentVersion(ctx context.Context, articleID uuid.UUID) (*types.JsonLdVersion, error) {
  return s.versionRepo.GetCurrent(ctx, nil, articleID)
}

func (s *structuredDataService) Versions(ctx context.Context, articleID uuid.UUID) ([]*types.JsonLdVersion, error) {
  return s.versionRepo.ListByArticle(ctx, nil, articleID)
}

func (s *structuredDataService) Statistics(ctx context.Context) (*types.SeoStatistics, error) {
  return s.articleRepo.SeoStatistics(ctx, nil)
}

func (s *structuredDataService) fail(res *RegenerationResult, err error) *RegenerationResult {
  res.FailedAt = res.State
  res.State = StateFailed
  res.Success = false
  res.err = err
  if err != nil {
    res.Error = err.Error()
  }
  s.log.Warn("Regeneration failed", "article_id", res.ArticleID, "failed_at", res.FailedAt, "error", res.Error)
  return res
}

func decodeFAQ(raw []byte) []types.FAQItem {
  if len(raw) == 0 {
    return nil
  }
  var items []types.FAQItem
  if err := json.Unmarshal(raw, &items); err != nil {
    return nil
  }
  return items
}
