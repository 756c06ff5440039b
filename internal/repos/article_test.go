package repos

import (
  "context"
  "fmt"
  "testing"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/qalamhq/qalam-backend/internal/types"
)

func seedArticle(t *testing.T, db *gorm.DB, slug string) *types.Article {
  t.Helper()
  client := &types.Client{Name: "Qahwa Publishing", SiteURL: "https://qahwa.example"}
  if err := db.Create(client).Error; err != nil {
    t.Fatalf("seed client: %v", err)
  }
  article := &types.Article{
    ClientID: client.ID,
    Slug:     slug,
    Title:    "A Complete Guide to Arabic Coffee",
    Language: "ar",
  }
  if err := db.Create(article).Error; err != nil {
    t.Fatalf("seed article: %v", err)
  }
  return article
}

func TestGetBySlugPreloadsClient(t *testing.T) {
  db := setupDB(t)
  repo := NewArticleRepo(db, testLogger(t))
  seeded := seedArticle(t, db, "qahwa-guide")

  article, err := repo.GetBySlug(context.Background(), nil, "qahwa-guide")
  if err != nil {
    t.Fatalf("get by slug: %v", err)
  }
  if article.ID != seeded.ID {
    t.Fatalf("got article %s, want %s", article.ID, seeded.ID)
  }
  if article.Client == nil || article.Client.Name != "Qahwa Publishing" {
    t.Fatalf("client not preloaded: %+v", article.Client)
  }
}

func TestUpdateSeoResultWritesAllColumns(t *testing.T) {
  db := setupDB(t)
  repo := NewArticleRepo(db, testLogger(t))
  seeded := seedArticle(t, db, "seo-result")
  graph := rawGraph("A Complete Guide to Arabic Coffee")

  if err := repo.UpdateSeoResult(context.Background(), nil, seeded.ID, graph, 86, 1, 2); err != nil {
    t.Fatalf("update seo result: %v", err)
  }

  reloaded, err := repo.GetByID(context.Background(), nil, seeded.ID)
  if err != nil {
    t.Fatalf("reload: %v", err)
  }
  if len(reloaded.JsonLd) == 0 {
    t.Fatal("json_ld mirror not written")
  }
  if reloaded.SeoScore != 86 || reloaded.LastErrorCount != 1 || reloaded.LastWarningCount != 2 {
    t.Fatalf("denormalized columns wrong: score=%d errors=%d warnings=%d",
      reloaded.SeoScore, reloaded.LastErrorCount, reloaded.LastWarningCount)
  }
}

func TestSeoStatisticsBuckets(t *testing.T) {
  db := setupDB(t)
  repo := NewArticleRepo(db, testLogger(t))
  ctx := context.Background()

  client := &types.Client{Name: "Qahwa Publishing", SiteURL: "https://qahwa.example"}
  if err := db.Create(client).Error; err != nil {
    t.Fatalf("seed client: %v", err)
  }
  rows := []*types.Article{
    {ClientID: client.ID, Slug: "with-graph", Title: "t", JsonLd: rawGraph("t"), LastErrorCount: 2},
    {ClientID: client.ID, Slug: "warned", Title: "t", LastWarningCount: 1},
    {ClientID: client.ID, Slug: "untouched", Title: "t"},
  }
  for i, row := range rows {
    if err := db.Create(row).Error; err != nil {
      t.Fatalf("seed article %d: %v", i, err)
    }
  }

  stats, err := repo.SeoStatistics(ctx, nil)
  if err != nil {
    t.Fatalf("statistics: %v", err)
  }
  want := types.SeoStatistics{Total: 3, WithJsonLd: 1, WithErrors: 1, WithWarnings: 1}
  if *stats != want {
    t.Fatalf("stats = %+v, want %+v", *stats, want)
  }
}

func TestGetByIDsSkipsUnknown(t *testing.T) {
  db := setupDB(t)
  repo := NewArticleRepo(db, testLogger(t))
  ctx := context.Background()

  var ids []uuid.UUID
  for i := 0; i < 2; i++ {
    ids = append(ids, seedArticle(t, db, fmt.Sprintf("bulk-%d", i)).ID)
  }
  ids = append(ids, uuid.New())

  articles, err := repo.GetByIDs(ctx, nil, ids)
  if err != nil {
    t.Fatalf("get by ids: %v", err)
  }
  if len(articles) != 2 {
    t.Fatalf("got %d articles, want the 2 existing ones", len(articles))
  }
}
