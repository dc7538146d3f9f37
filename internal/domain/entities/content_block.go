package entities

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"nordweb/internal/domain"
)

// Block publication status.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// ContentBlock is a unit of editable marketing copy addressed by
// (Section, Key).
type ContentBlock struct {
	ID          int64
	Section     string
	Key         string
	Title       domain.Localized
	Description domain.Localized
	Metadata    BlockMetadata
	SortOrder   int
	Status      string
	UpdatedAt   time.Time
}

// Validate checks the fields an editor must provide.
func (b *ContentBlock) Validate() error {
	if strings.TrimSpace(b.Section) == "" || strings.TrimSpace(b.Key) == "" {
		return fmt.Errorf("section and key are required: %w", domain.ErrInvalidBlock)
	}
	switch b.Status {
	case StatusPublished, StatusDraft:
	default:
		return fmt.Errorf("status %q: %w", b.Status, domain.ErrInvalidBlock)
	}
	return nil
}

// BlockKind discriminates the metadata payload of a block.
type BlockKind string

const (
	KindText BlockKind = "text"
	KindHero BlockKind = "hero"
	KindStat BlockKind = "stat"
	KindLink BlockKind = "link"
)

// BlockMetadata is the typed metadata of a block. The concrete type is
// selected by Kind.
type BlockMetadata interface {
	Kind() BlockKind
}

// TextMetadata is used by blocks that only carry title and description.
type TextMetadata struct{}

// HeroMetadata decorates a hero banner.
type HeroMetadata struct {
	ImageURL string           `json:"image_url"`
	CTALabel domain.Localized `json:"cta_label"`
	CTAHref  string           `json:"cta_href"`
}

// StatMetadata renders a key figure such as "25+ years".
type StatMetadata struct {
	Value  string `json:"value"`
	Suffix string `json:"suffix"`
}

// LinkMetadata points a block at another page.
type LinkMetadata struct {
	Href  string           `json:"href"`
	Label domain.Localized `json:"label"`
}

// RawMetadata keeps payloads of kinds this build does not know.
type RawMetadata struct {
	RawKind BlockKind
	Data    json.RawMessage
}

func (TextMetadata) Kind() BlockKind  { return KindText }
func (HeroMetadata) Kind() BlockKind  { return KindHero }
func (StatMetadata) Kind() BlockKind  { return KindStat }
func (LinkMetadata) Kind() BlockKind  { return KindLink }
func (m RawMetadata) Kind() BlockKind { return m.RawKind }

// DecodeMetadata parses a stored metadata document. The "kind" field selects
// the concrete type; documents without one are text blocks.
func DecodeMetadata(raw []byte) (BlockMetadata, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return TextMetadata{}, nil
	}
	var head struct {
		Kind BlockKind `json:"kind"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("decode block metadata: %w", err)
	}

	var (
		md  BlockMetadata
		err error
	)
	switch head.Kind {
	case "", KindText:
		md = TextMetadata{}
	case KindHero:
		var m HeroMetadata
		err = json.Unmarshal(raw, &m)
		md = m
	case KindStat:
		var m StatMetadata
		err = json.Unmarshal(raw, &m)
		md = m
	case KindLink:
		var m LinkMetadata
		err = json.Unmarshal(raw, &m)
		md = m
	default:
		md = RawMetadata{RawKind: head.Kind, Data: append(json.RawMessage(nil), raw...)}
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", head.Kind, err)
	}
	return md, nil
}

// EncodeMetadata serializes md with its "kind" discriminator.
func EncodeMetadata(md BlockMetadata) ([]byte, error) {
	if md == nil {
		md = TextMetadata{}
	}
	if raw, ok := md.(RawMetadata); ok {
		return raw.Data, nil
	}
	body, err := json.Marshal(md)
	if err != nil {
		return nil, fmt.Errorf("encode block metadata: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("encode block metadata: %w", err)
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	kind, _ := json.Marshal(md.Kind())
	fields["kind"] = kind
	return json.Marshal(fields)
}
