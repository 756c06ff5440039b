package seo

import (
  "reflect"
  "testing"
  "time"

  "github.com/google/uuid"

  "github.com/qalamhq/qalam-backend/internal/types"
)

func fixedNow() time.Time {
  return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func articleFixture() *types.Article {
  publishedAt := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)
  return &types.Article{
    ID:             uuid.New(),
    Slug:           "qahwa-guide",
    Title:          "A Complete Guide to Arabic Coffee",
    Excerpt:        "Everything about preparing traditional qahwa.",
    Body:           "Arabic coffee is prepared from lightly roasted beans and cardamom.",
    Language:       "ar",
    SeoTitle:       "Arabic Coffee Guide",
    SeoDescription: "How to prepare traditional Arabic coffee at home.",
    PublishedAt:    &publishedAt,
  }
}

func relationsFixture() BuildRelations {
  return BuildRelations{
    Author: &types.Author{
      Name:      "Layla Haddad",
      URL:       "https://qahwa.example/authors/layla",
      Bio:       "Food and culture writer.",
      JobTitle:  "Senior Editor",
      AvatarURL: "https://cdn.example/layla.jpg",
    },
    Publisher: &types.Client{
      Name:       "Qahwa Publishing",
      SiteURL:    "https://qahwa.example",
      LogoURL:    "https://cdn.example/logo.png",
      LogoWidth:  200,
      LogoHeight: 120,
    },
    FeaturedImage: &types.MediaAsset{
      URL:     "https://cdn.example/coffee.jpg",
      AltText: "Dallah pouring Arabic coffee",
      Width:   1200,
      Height:  630,
    },
    FAQ: []types.FAQItem{
      {Question: "How much cardamom should I use?", Answer: "Roughly one part cardamom to four parts coffee."},
    },
  }
}

func TestBuildIsIdempotent(t *testing.T) {
  builder := NewBuilder()
  article := articleFixture()
  rel := relationsFixture()
  cfg := BuildConfig{BaseURL: "https://qahwa.example", DefaultLocale: "ar", Now: fixedNow()}

  first, firstIssues := builder.Build(article, rel, cfg)
  second, secondIssues := builder.Build(article, rel, cfg)

  if !reflect.DeepEqual(first, second) {
    t.Fatalf("two builds over the same snapshot differ:\nfirst:  %#v\nsecond: %#v", first, second)
  }
  if len(firstIssues) != len(secondIssues) {
    t.Fatalf("issue counts differ: %d vs %d", len(firstIssues), len(secondIssues))
  }
}

func TestBuildOmitsEmptyProperties(t *testing.T) {
  builder := NewBuilder()
  article := &types.Article{Title: "Bare Article", Slug: "bare"}

  graph, issues := builder.Build(article, BuildRelations{}, BuildConfig{Now: fixedNow()})

  if len(issues) != 0 {
    t.Fatalf("expected no issues for a titled article, got %v", issues)
  }
  for _, prop := range []string{"description", "image", "author", "publisher", "mainEntity", "keywords", "datePublished", "mainEntityOfPage", "breadcrumb", "wordCount"} {
    if _, present := graph[prop]; present {
      t.Errorf("property %q should be omitted when its backing field is empty", prop)
    }
  }
  if graph["@context"] != "https://schema.org" || graph["@type"] != "Article" {
    t.Fatalf("root must carry @context and @type, got %v / %v", graph["@context"], graph["@type"])
  }
  if graph["headline"] != "Bare Article" {
    t.Fatalf("headline = %v, want Bare Article", graph["headline"])
  }
}

func TestBuildNestsRelations(t *testing.T) {
  builder := NewBuilder()
  graph, _ := builder.Build(articleFixture(), relationsFixture(), BuildConfig{
    BaseURL:       "https://qahwa.example",
    DefaultLocale: "ar",
    Now:           fixedNow(),
  })

  author, ok := graph["author"].(Graph)
  if !ok || author["@type"] != "Person" || author["name"] != "Layla Haddad" {
    t.Fatalf("author node wrong: %#v", graph["author"])
  }

  publisher, ok := graph["publisher"].(Graph)
  if !ok || publisher["@type"] != "Organization" {
    t.Fatalf("publisher node wrong: %#v", graph["publisher"])
  }
  logo, ok := publisher["logo"].(Graph)
  if !ok || logo["@type"] != "ImageObject" || logo["width"] != 200 || logo["height"] != 120 {
    t.Fatalf("publisher logo wrong: %#v", publisher["logo"])
  }

  faq, ok := graph["mainEntity"].(Graph)
  if !ok || faq["@type"] != "FAQPage" {
    t.Fatalf("mainEntity wrong: %#v", graph["mainEntity"])
  }
  questions, ok := faq["mainEntity"].([]Graph)
  if !ok || len(questions) != 1 {
    t.Fatalf("FAQPage questions wrong: %#v", faq["mainEntity"])
  }
  question := questions[0]
  if question["@type"] != "Question" || question["name"] != "How much cardamom should I use?" {
    t.Fatalf("question node wrong: %#v", question)
  }
  answer, ok := question["acceptedAnswer"].(Graph)
  if !ok || answer["@type"] != "Answer" || answer["text"] == "" {
    t.Fatalf("acceptedAnswer wrong: %#v", question["acceptedAnswer"])
  }

  page, ok := graph["mainEntityOfPage"].(Graph)
  if !ok || page["@id"] != "https://qahwa.example/articles/qahwa-guide" {
    t.Fatalf("mainEntityOfPage wrong: %#v", graph["mainEntityOfPage"])
  }
}

func TestBuildWithoutHeadlineDegrades(t *testing.T) {
  builder := NewBuilder()
  article := &types.Article{Slug: "untitled", Body: "some body"}

  graph, issues := builder.Build(article, BuildRelations{}, BuildConfig{Now: fixedNow()})

  if len(issues) != 1 || issues[0].Severity != SeverityError || issues[0].Ref != "headline" {
    t.Fatalf("expected one error issue about the headline, got %v", issues)
  }
  if _, present := graph["headline"]; present {
    t.Fatalf("degraded graph must not carry an empty headline, got %v", graph["headline"])
  }
  if graph["@type"] != "Article" {
    t.Fatalf("degraded graph must still be an Article document")
  }
}

func TestBuildSeoTitleFallsBackAsHeadline(t *testing.T) {
  builder := NewBuilder()
  article := &types.Article{Slug: "fallback", SeoTitle: "SEO Only Title"}

  graph, issues := builder.Build(article, BuildRelations{}, BuildConfig{Now: fixedNow()})

  if len(issues) != 0 {
    t.Fatalf("seo title should satisfy the headline requirement, got issues %v", issues)
  }
  if graph["headline"] != "SEO Only Title" {
    t.Fatalf("headline = %v, want SEO Only Title", graph["headline"])
  }
}
