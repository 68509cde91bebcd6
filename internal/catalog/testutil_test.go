// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

// testArticle builds a valid article with the given primary topic and scores
// in Politic, Sport, Entertainment, Digital order.
func testArticle(id string, primary Topic, scores ...float64) Article {
	rel := make(map[Topic]float64, len(allTopics))
	for i, t := range allTopics {
		if i < len(scores) {
			rel[t] = scores[i]
		} else {
			rel[t] = 0
		}
	}
	return Article{
		ID:           id,
		Title:        "Title " + id,
		Summary:      "Summary " + id,
		PrimaryTopic: primary,
		Relevance:    rel,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// stubSource returns fixed articles or an error and counts calls.
type stubSource struct {
	articles []Article
	err      error
	calls    atomic.Int32
}

func (s *stubSource) Load(_ context.Context) ([]Article, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.articles, nil
}

func (s *stubSource) String() string { return "stub" }

var errSourceDown = errors.New("source down")

const testCSV = `ArticleID,Title,Content Summary,Primary Topic,Relevance_Politic,Relevance_Sport,Relevance_Entertainment,Relevance_Digital
a1,Election night,Votes counted,Politics,0.9,0.1,0.2,0.3
a2,Cup final,<p>Late <b>winner</b></p>,sport,0.2,0.95,0.4,0.1
a3,New phone,Faster chip,Technology,0.1,0.2,0.3,0.8
`
