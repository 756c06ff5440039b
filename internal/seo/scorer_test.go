package seo

import (
  "strings"
  "testing"

  "github.com/qalamhq/qalam-backend/internal/types"
)

func TestScoreFieldsCapsBelowHundredOnAnyIssue(t *testing.T) {
  cfg := FieldConfig{
    MaxScore: 10,
    Checks: []FieldCheck{
      {Field: "a", Validate: func(any, map[string]any) FieldResult {
        return FieldResult{Status: FieldWarning, Score: 10}
      }},
    },
  }

  res := ScoreFields(map[string]any{}, cfg)

  if res.Percentage != 99 {
    t.Fatalf("a run with a warning must cap at 99, got %d", res.Percentage)
  }
  if res.Score != 10 || res.MaxScore != 10 {
    t.Fatalf("raw score should be untouched by the cap: %+v", res)
  }
}

func TestScoreFieldsPerfectRunReachesHundred(t *testing.T) {
  cfg := FieldConfig{
    MaxScore: 10,
    Checks: []FieldCheck{
      {Field: "a", Validate: func(any, map[string]any) FieldResult {
        return FieldResult{Status: FieldGood, Score: 10}
      }},
    },
  }

  if res := ScoreFields(map[string]any{}, cfg); res.Percentage != 100 {
    t.Fatalf("zero-issue full score should be exactly 100, got %d", res.Percentage)
  }
}

func TestScoreFieldsDuplicateFieldScoredOnce(t *testing.T) {
  calls := 0
  counting := func(score int) FieldValidator {
    return func(any, map[string]any) FieldResult {
      calls++
      return FieldResult{Status: FieldGood, Score: score}
    }
  }
  cfg := FieldConfig{
    MaxScore: 10,
    Checks: []FieldCheck{
      {Field: "dup", Validate: counting(4)},
      {Field: "dup", Validate: counting(6)},
    },
  }

  res := ScoreFields(map[string]any{}, cfg)

  if calls != 1 {
    t.Fatalf("duplicate field ran %d validators, want 1", calls)
  }
  if res.Score != 4 {
    t.Fatalf("first occurrence must win, got score %d", res.Score)
  }
}

func TestScoreFieldsClampsOverflow(t *testing.T) {
  cfg := FieldConfig{
    MaxScore: 10,
    Checks: []FieldCheck{
      {Field: "a", Validate: func(any, map[string]any) FieldResult {
        return FieldResult{Status: FieldGood, Score: 25}
      }},
    },
  }

  if res := ScoreFields(map[string]any{}, cfg); res.Percentage != 100 {
    t.Fatalf("overflowing score must clamp to 100, got %d", res.Percentage)
  }
}

func TestValidateOpenGraphTagsAllMissing(t *testing.T) {
  res := ValidateOpenGraphTags(nil, map[string]any{})

  if res.Status != FieldWarning || res.Score != 0 {
    t.Fatalf("empty article should warn with zero score, got %+v", res)
  }
  want := "missing Open Graph tags: og:title, og:description, og:image"
  if res.Message != want {
    t.Fatalf("message = %q, want %q", res.Message, want)
  }
}

func TestValidateOpenGraphTagsFullyTagged(t *testing.T) {
  fields := map[string]any{
    "seoTitle":       strings.Repeat("t", 55),
    "seoDescription": strings.Repeat("d", 150),
    "featuredImage": map[string]any{
      "url":    "https://cdn.example/coffee.jpg",
      "alt":    "Dallah pouring Arabic coffee",
      "width":  1200,
      "height": 630,
    },
  }

  res := ValidateOpenGraphTags(nil, fields)

  if res.Status != FieldGood || res.Score != openGraphMaxScore {
    t.Fatalf("fully tagged article should score %d/good, got %+v", openGraphMaxScore, res)
  }
}

func TestValidateOpenGraphTagsDeductsForBandsAndImageMeta(t *testing.T) {
  // title and description below their bands, image without alt/dimensions
  fields := map[string]any{
    "seoTitle":       "short",
    "seoDescription": strings.Repeat("d", 30),
    "featuredImage": map[string]any{
      "url": "https://cdn.example/coffee.jpg",
    },
  }

  res := ValidateOpenGraphTags(nil, fields)

  if res.Status != FieldWarning {
    t.Fatalf("partial metadata should warn, got %+v", res)
  }
  if want := openGraphMaxScore - 3 - 3 - 5; res.Score != want {
    t.Fatalf("score = %d, want %d", res.Score, want)
  }
}

func TestScoreMonotonicWhenImageMetadataImproves(t *testing.T) {
  article := &types.Article{
    Title:          "A Complete Guide to Arabic Coffee",
    Body:           strings.Repeat("word ", 320),
    Language:       "ar",
    SeoTitle:       strings.Repeat("t", 55),
    SeoDescription: strings.Repeat("d", 150),
  }
  cfg := DefaultArticleFieldConfig()

  bare := &types.MediaAsset{URL: "https://cdn.example/coffee.jpg"}
  before := ScoreFields(ArticleFields(article, bare), cfg)

  full := &types.MediaAsset{
    URL:     "https://cdn.example/coffee.jpg",
    AltText: "Dallah pouring Arabic coffee",
    Width:   1200,
    Height:  630,
  }
  after := ScoreFields(ArticleFields(article, full), cfg)

  if after.Percentage < before.Percentage {
    t.Fatalf("completing image metadata lowered the score: %d -> %d", before.Percentage, after.Percentage)
  }
  if after.Percentage != 100 {
    t.Fatalf("fully filled article should reach 100, got %d", after.Percentage)
  }
}
