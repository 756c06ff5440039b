package schemacheck

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "net/http"
  "strings"

  "github.com/qalamhq/qalam-backend/internal/logger"
  "github.com/qalamhq/qalam-backend/internal/seo"
  "github.com/qalamhq/qalam-backend/internal/utils"
)

// Client posts a built graph to the external schema-conformance service
// and maps its reply onto seo.CheckOutcome. The service is best-effort:
// callers treat any returned error as "checker unavailable", not as a
// validation failure.
type Client struct {
  log *logger.Logger
  url string
  hc  *http.Client
}

func New(log *logger.Logger) (*Client, error) {
  if log == nil {
    return nil, fmt.Errorf("logger required")
  }
  url := strings.TrimSpace(utils.GetEnv("SCHEMA_CHECKER_URL", "", log))
  if url == "" {
    return nil, fmt.Errorf("missing SCHEMA_CHECKER_URL")
  }
  timeout := utils.GetEnvAsDuration("SCHEMA_CHECKER_TIMEOUT_SECONDS", 5, log)
  return &Client{
    log: log.With("client", "SchemaCheck"),
    url: url,
    hc:  &http.Client{Timeout: timeout},
  }, nil
}

func (c *Client) Check(ctx context.Context, graph seo.Graph) (seo.CheckOutcome, error) {
  out := seo.CheckOutcome{}
  if c == nil || c.hc == nil {
    return out, fmt.Errorf("schema check client not initialized")
  }
  body, err := json.Marshal(graph)
  if err != nil {
    return out, fmt.Errorf("encode graph: %w", err)
  }
  req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
  if err != nil {
    return out, err
  }
  req.Header.Set("Content-Type", "application/ld+json")

  resp, err := c.hc.Do(req)
  if err != nil {
    return out, fmt.Errorf("schema checker unreachable: %w", err)
  }
  defer resp.Body.Close()

  if resp.StatusCode != http.StatusOK {
    return out, fmt.Errorf("schema checker returned status %d", resp.StatusCode)
  }
  if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
    return out, fmt.Errorf("decode schema checker reply: %w", err)
  }
  return out, nil
}
