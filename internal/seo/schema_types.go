package seo

import "time"

// Graph is one schema.org JSON-LD document (or nested node) as a generic
// key-value tree. Typed *LD variants below are the only writers; they
// emit a property only when it is set, so no null/empty leakage reaches
// the serialized form.
type Graph map[string]any

const schemaContext = "https://schema.org"

type ImageObjectLD struct {
  URL     string
  Caption string
  Width   int
  Height  int
}

func (i *ImageObjectLD) ToMap() Graph {
  if i == nil || i.URL == "" {
    return nil
  }
  m := Graph{"@type": "ImageObject", "url": i.URL}
  if i.Caption != "" {
    m["caption"] = i.Caption
  }
  if i.Width > 0 {
    m["width"] = i.Width
  }
  if i.Height > 0 {
    m["height"] = i.Height
  }
  return m
}

type PersonLD struct {
  Name        string
  URL         string
  Description string
  JobTitle    string
  Image       *ImageObjectLD
}

func (p *PersonLD) ToMap() Graph {
  if p == nil || p.Name == "" {
    return nil
  }
  m := Graph{"@type": "Person", "name": p.Name}
  if p.URL != "" {
    m["url"] = p.URL
  }
  if p.Description != "" {
    m["description"] = p.Description
  }
  if p.JobTitle != "" {
    m["jobTitle"] = p.JobTitle
  }
  if img := p.Image.ToMap(); img != nil {
    m["image"] = img
  }
  return m
}

type OrganizationLD struct {
  Name string
  URL  string
  Logo *ImageObjectLD
}

func (o *OrganizationLD) ToMap() Graph {
  if o == nil || o.Name == "" {
    return nil
  }
  m := Graph{"@type": "Organization", "name": o.Name}
  if o.URL != "" {
    m["url"] = o.URL
  }
  if logo := o.Logo.ToMap(); logo != nil {
    m["logo"] = logo
  }
  return m
}

type QuestionLD struct {
  Name   string
  Answer string
}

func (q *QuestionLD) ToMap() Graph {
  if q == nil || q.Name == "" {
    return nil
  }
  m := Graph{"@type": "Question", "name": q.Name}
  if q.Answer != "" {
    m["acceptedAnswer"] = Graph{"@type": "Answer", "text": q.Answer}
  }
  return m
}

type FAQPageLD struct {
  Questions []QuestionLD
}

func (f *FAQPageLD) ToMap() Graph {
  if f == nil || len(f.Questions) == 0 {
    return nil
  }
  entities := make([]Graph, 0, len(f.Questions))
  for idx := range f.Questions {
    if q := f.Questions[idx].ToMap(); q != nil {
      entities = append(entities, q)
    }
  }
  if len(entities) == 0 {
    return nil
  }
  return Graph{"@type": "FAQPage", "mainEntity": entities}
}

type BreadcrumbItemLD struct {
  Name string
  URL  string
}

type BreadcrumbListLD struct {
  Items []BreadcrumbItemLD
}

func (b *BreadcrumbListLD) ToMap() Graph {
  if b == nil || len(b.Items) == 0 {
    return nil
  }
  elements := make([]Graph, 0, len(b.Items))
  for idx, item := range b.Items {
    if item.Name == "" {
      continue
    }
    el := Graph{"@type": "ListItem", "position": idx + 1, "name": item.Name}
    if item.URL != "" {
      el["item"] = item.URL
    }
    elements = append(elements, el)
  }
  if len(elements) == 0 {
    return nil
  }
  return Graph{"@type": "BreadcrumbList", "itemListElement": elements}
}

type ArticleLD struct {
  Headline      string
  Description   string
  InLanguage    string
  URL           string
  Keywords      []string
  WordCount     int
  DatePublished time.Time
  DateModified  time.Time
  Image         *ImageObjectLD
  Author        *PersonLD
  Publisher     *OrganizationLD
  MainEntity    *FAQPageLD
  Breadcrumb    *BreadcrumbListLD
}

func (a *ArticleLD) ToGraph() Graph {
  m := Graph{"@context": schemaContext, "@type": "Article"}
  if a == nil {
    return m
  }
  if a.Headline != "" {
    m["headline"] = a.Headline
  }
  if a.Description != "" {
    m["description"] = a.Description
  }
  if a.InLanguage != "" {
    m["inLanguage"] = a.InLanguage
  }
  if a.URL != "" {
    m["mainEntityOfPage"] = Graph{"@type": "WebPage", "@id": a.URL}
  }
  if len(a.Keywords) > 0 {
    m["keywords"] = a.Keywords
  }
  if a.WordCount > 0 {
    m["wordCount"] = a.WordCount
  }
  if !a.DatePublished.IsZero() {
    m["datePublished"] = a.DatePublished.UTC().Format(time.RFC3339)
  }
  if !a.DateModified.IsZero() {
    m["dateModified"] = a.DateModified.UTC().Format(time.RFC3339)
  }
  if img := a.Image.ToMap(); img != nil {
    m["image"] = img
  }
  if author := a.Author.ToMap(); author != nil {
    m["author"] = author
  }
  if pub := a.Publisher.ToMap(); pub != nil {
    m["publisher"] = pub
  }
  if faq := a.MainEntity.ToMap(); faq != nil {
    m["mainEntity"] = faq
  }
  if crumbs := a.Breadcrumb.ToMap(); crumbs != nil {
    m["breadcrumb"] = crumbs
  }
  return m
}
