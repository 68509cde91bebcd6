// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Column names of the tabular catalog contract.
const (
	ColumnArticleID    = "ArticleID"
	ColumnTitle        = "Title"
	ColumnSummary      = "Content Summary"
	ColumnPrimaryTopic = "Primary Topic"
)

// RequiredColumns lists every column a catalog table must carry.
func RequiredColumns() []string {
	cols := []string{ColumnArticleID, ColumnTitle, ColumnSummary, ColumnPrimaryTopic}
	for _, t := range allTopics {
		cols = append(cols, t.RelevanceColumn())
	}
	return cols
}

// DecodeOptions tunes row decoding.
type DecodeOptions struct {
	// StripHTML reduces summaries and titles containing markup to plain text.
	StripHTML bool
}

// columnKey normalizes a header cell so "Content Summary", "content_summary"
// and "ContentSummary" all match.
func columnKey(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r == ' ' || r == '_' || r == '-' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// tableLayout maps required columns to their position in a header row.
type tableLayout struct {
	id, title, summary, topic int
	relevance                 map[Topic]int
}

func newTableLayout(header []string) (*tableLayout, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := columnKey(h)
		if _, seen := pos[key]; !seen {
			pos[key] = i
		}
	}

	lookup := func(col string) (int, error) {
		i, ok := pos[columnKey(col)]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
		return i, nil
	}

	l := &tableLayout{relevance: make(map[Topic]int, len(allTopics))}
	var err error
	if l.id, err = lookup(ColumnArticleID); err != nil {
		return nil, err
	}
	if l.title, err = lookup(ColumnTitle); err != nil {
		return nil, err
	}
	if l.summary, err = lookup(ColumnSummary); err != nil {
		return nil, err
	}
	if l.topic, err = lookup(ColumnPrimaryTopic); err != nil {
		return nil, err
	}
	for _, t := range allTopics {
		if l.relevance[t], err = lookup(t.RelevanceColumn()); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// DecodeTable converts a header row plus data rows into articles.
// Rows whose cells are all blank are skipped. Row numbers in errors are
// 1-based and count the header as row 1, matching what a spreadsheet shows.
func DecodeTable(header []string, rows [][]string, opts DecodeOptions) ([]Article, error) {
	layout, err := newTableLayout(header)
	if err != nil {
		return nil, err
	}

	articles := make([]Article, 0, len(rows))
	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		a, err := layout.decodeRow(row, opts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (l *tableLayout) decodeRow(row []string, opts DecodeOptions) (Article, error) {
	cell := func(i int) string {
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	topic, err := parsePrimaryTopic(cell(l.topic))
	if err != nil {
		return Article{}, err
	}

	a := Article{
		ID:           cell(l.id),
		Title:        cell(l.title),
		Summary:      cell(l.summary),
		PrimaryTopic: topic,
		Relevance:    make(map[Topic]float64, len(allTopics)),
	}
	if opts.StripHTML {
		a.Title = CleanSummary(a.Title)
		a.Summary = CleanSummary(a.Summary)
	}

	for t, i := range l.relevance {
		raw := cell(i)
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Article{}, fmt.Errorf("%w: %s %q is not a number", ErrInvalidRow, t.RelevanceColumn(), raw)
		}
		a.Relevance[t] = score
	}
	return a, nil
}

// parsePrimaryTopic accepts a canonical key in any case or a survey label.
func parsePrimaryTopic(raw string) (Topic, error) {
	if t, ok := ParseTopic(raw); ok {
		return t, nil
	}
	if t, ok := TopicForLabel(raw); ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown %s %q", ErrInvalidRow, ColumnPrimaryTopic, raw)
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// CleanSummary returns the text content of s with markup removed and
// whitespace collapsed. Plain text passes through unchanged apart from
// whitespace folding.
func CleanSummary(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
