// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/serendip/internal/validation"
)

// Catalog is an immutable, ordered snapshot of articles.
type Catalog struct {
	id       string
	source   string
	loadedAt time.Time

	articles []Article
	byID     map[string]int

	// pools holds indexes into articles per primary topic, in catalog order.
	pools map[Topic][]int
}

// New validates articles and builds a snapshot. The input slice is copied.
//
// Invariants enforced:
//   - at least one article
//   - ArticleID is unique and non-empty, Title is non-empty
//   - PrimaryTopic is a canonical topic key
//   - every topic has a finite relevance score on every article
func New(articles []Article, source string) (*Catalog, error) {
	if len(articles) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		id:       uuid.New().String(),
		source:   source,
		loadedAt: time.Now().UTC(),
		articles: make([]Article, 0, len(articles)),
		byID:     make(map[string]int, len(articles)),
		pools:    make(map[Topic][]int, len(allTopics)),
	}

	for i := range articles {
		a := articles[i]
		if verr := validation.ValidateStruct(&a); verr != nil {
			return nil, fmt.Errorf("%w: article %d: %s", ErrInvalidRow, i+1, verr.Error())
		}
		if err := a.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateArticle, a.ID)
		}

		idx := len(c.articles)
		c.articles = append(c.articles, a.clone())
		c.byID[a.ID] = idx
		c.pools[a.PrimaryTopic] = append(c.pools[a.PrimaryTopic], idx)
	}

	return c, nil
}

// ID identifies this snapshot. Every successful load gets a new ID.
func (c *Catalog) ID() string { return c.id }

// Source describes where the snapshot was loaded from.
func (c *Catalog) Source() string { return c.source }

// LoadedAt is when the snapshot was built.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// Len returns the number of articles.
func (c *Catalog) Len() int { return len(c.articles) }

// Articles returns all articles in catalog order.
func (c *Catalog) Articles() []Article {
	out := make([]Article, len(c.articles))
	copy(out, c.articles)
	return out
}

// Get looks up an article by ArticleID.
func (c *Catalog) Get(id string) (Article, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Article{}, false
	}
	return c.articles[idx], true
}

// Pool returns the articles whose primary topic is t, in catalog order.
// The result is a fresh slice and may be empty.
func (c *Catalog) Pool(t Topic) []Article {
	idx := c.pools[t]
	out := make([]Article, len(idx))
	for i, j := range idx {
		out[i] = c.articles[j]
	}
	return out
}

// PoolSize returns len(Pool(t)) without copying.
func (c *Catalog) PoolSize(t Topic) int {
	return len(c.pools[t])
}

// TopicCounts returns the pool size of every topic, including empty ones.
func (c *Catalog) TopicCounts() map[Topic]int {
	counts := make(map[Topic]int, len(allTopics))
	for _, t := range allTopics {
		counts[t] = len(c.pools[t])
	}
	return counts
}
