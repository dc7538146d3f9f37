package httpapi

import (
	"time"

	"nordweb/internal/application"
	"nordweb/internal/domain"
	"nordweb/internal/domain/entities"
	"nordweb/pkg/datefmt"
)

type pageView[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

func newPageView[S, T any](p entities.Page[S], conv func(S) T) pageView[T] {
	items := make([]T, len(p.Items))
	for i, it := range p.Items {
		items[i] = conv(it)
	}
	return pageView[T]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}
}

type categoryView struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type productView struct {
	ID             int64             `json:"id"`
	Slug           string            `json:"slug"`
	Category       string            `json:"category"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Images         []string          `json:"images"`
	Specs          map[string]string `json:"specs"`
	Price          float64           `json:"price"`
	Currency       string            `json:"currency"`
	PriceFormatted string            `json:"priceFormatted"`
}

func newProductView(p entities.Product, loc Locale) productView {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	specs := p.Specs
	if specs == nil {
		specs = map[string]string{}
	}
	return productView{
		ID:             p.ID,
		Slug:           p.Slug,
		Category:       p.CategorySlug,
		Name:           p.Name.In(loc.Lang),
		Description:    p.Description.In(loc.Lang),
		Images:         images,
		Specs:          specs,
		Price:          p.Price,
		Currency:       loc.Currency.String(),
		PriceFormatted: domain.FormatPrice(p.Price, loc.Currency),
	}
}

type postView struct {
	Slug          string     `json:"slug"`
	Category      string     `json:"category"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	CoverImage    string     `json:"coverImage,omitempty"`
	PublishedAt   *time.Time `json:"publishedAt,omitempty"`
	PublishedDate string     `json:"publishedDate,omitempty"`
	BodyHTML      string     `json:"bodyHtml,omitempty"`
}

func newPostView(p entities.BlogPost, lang domain.Language) postView {
	v := postView{
		Slug:          p.Slug,
		Category:      p.Category,
		Title:         p.Title.In(lang),
		Excerpt:       p.Excerpt.In(lang),
		CoverImage:    p.CoverImage,
		PublishedDate: datefmt.FormatDate(p.PublishedAt, lang.String()),
	}
	if !p.PublishedAt.IsZero() {
		at := p.PublishedAt.UTC()
		v.PublishedAt = &at
	}
	return v
}

type blockView struct {
	Key         string         `json:"key"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Kind        string         `json:"kind"`
	Metadata    map[string]any `json:"metadata"`
	SortOrder   int            `json:"sortOrder"`
}

func newBlockView(b application.LocalizedBlock, lang domain.Language) blockView {
	v := blockView{
		Key:         b.Key,
		Title:       b.Title,
		Description: b.Description,
		Kind:        string(entities.KindText),
		Metadata:    map[string]any{},
		SortOrder:   b.SortOrder,
	}
	if b.Metadata == nil {
		return v
	}
	v.Kind = string(b.Metadata.Kind())
	switch md := b.Metadata.(type) {
	case entities.HeroMetadata:
		v.Metadata = map[string]any{
			"imageUrl": md.ImageURL,
			"ctaLabel": md.CTALabel.In(lang),
			"ctaHref":  md.CTAHref,
		}
	case entities.StatMetadata:
		v.Metadata = map[string]any{"value": md.Value, "suffix": md.Suffix}
	case entities.LinkMetadata:
		v.Metadata = map[string]any{"href": md.Href, "label": md.Label.In(lang)}
	case entities.RawMetadata:
		v.Metadata = map[string]any{"raw": md.Data}
	}
	return v
}
