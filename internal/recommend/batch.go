// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package recommend

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/serendip/internal/catalog"
)

// TopicPair is the resolved request.
type TopicPair struct {
	Preferred    catalog.Topic `json:"preferred"`
	NonPreferred catalog.Topic `json:"non_preferred"`
}

// Group tags where an article in a batch came from.
type Group int

const (
	GroupSerendipitous Group = iota
	GroupPreferred
)

func (g Group) String() string {
	switch g {
	case GroupSerendipitous:
		return "serendipitous"
	case GroupPreferred:
		return "preferred"
	default:
		return "unknown"
	}
}

// prefix is the grouped-layout field prefix.
func (g Group) prefix() string {
	if g == GroupSerendipitous {
		return "Seren_"
	}
	return "Prefer_"
}

// Item is one article in a batch.
type Item struct {
	Article catalog.Article
	Group   Group
}

// Field is one key/value pair of the response object.
type Field struct {
	Key   string
	Value string
}

// Fields is an ordered response object. It marshals as a JSON object whose
// keys keep their order.
type Fields []Field

// Map returns the fields keyed by name.
func (f Fields) Map() map[string]string {
	m := make(map[string]string, len(f))
	for _, kv := range f {
		m[kv.Key] = kv.Value
	}
	return m
}

// Get returns the value for key.
func (f Fields) Get(key string) (string, bool) {
	for _, kv := range f {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// MarshalJSON implements json.Marshaler.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Assembler orders the two groups and renders response fields.
type Assembler struct {
	cfg *Config
	now func() time.Time
}

// NewAssembler returns an assembler for cfg. now supplies the Today date;
// nil means time.Now.
func NewAssembler(cfg *Config, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{cfg: cfg, now: now}
}

// Order combines the groups. The merged layout applies a full random
// permutation; the grouped layout keeps serendipitous items first, each
// group in selection order.
func (a *Assembler) Order(serendipitous, preferred []catalog.Article, rng Rand) []Item {
	items := make([]Item, 0, len(serendipitous)+len(preferred))
	for _, art := range serendipitous {
		items = append(items, Item{Article: art, Group: GroupSerendipitous})
	}
	for _, art := range preferred {
		items = append(items, Item{Article: art, Group: GroupPreferred})
	}
	if a.cfg.Layout == LayoutMerged {
		Shuffle(items, rng)
	}
	return items
}

// Fields renders items in the configured layout, followed by the Today and
// Weather decoration when enabled.
func (a *Assembler) Fields(items []Item) Fields {
	perItem := 2
	if a.cfg.IncludeTopic {
		perItem = 3
	}
	out := make(Fields, 0, len(items)*perItem+2)

	var seren, pref int
	for i, it := range items {
		var prefix string
		switch a.cfg.Layout {
		case LayoutGrouped:
			n := 0
			if it.Group == GroupSerendipitous {
				seren++
				n = seren
			} else {
				pref++
				n = pref
			}
			prefix = fmt.Sprintf("%sArticle%d_", it.Group.prefix(), n)
		default:
			prefix = fmt.Sprintf("Article%d_", i+1)
		}

		out = append(out,
			Field{Key: prefix + "Title", Value: it.Article.Title},
			Field{Key: prefix + "Summary", Value: it.Article.Summary},
		)
		if a.cfg.IncludeTopic {
			out = append(out, Field{Key: prefix + "Topic", Value: it.Article.PrimaryTopic.Display()})
		}
	}

	if a.cfg.IncludeToday {
		out = append(out, Field{Key: "Today", Value: a.now().Format(a.cfg.DateLayout)})
	}
	if a.cfg.Weather != "" {
		out = append(out, Field{Key: "Weather", Value: a.cfg.Weather})
	}
	return out
}
