// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresConfig configures a PostgresSource.
type PostgresConfig struct {
	DSN       string
	Table     string
	OrderBy   string
	StripHTML bool
}

// PostgresSource reads the catalog from a table whose columns use the same
// names as the spreadsheet contract ("ArticleID", "Content Summary", ...).
type PostgresSource struct {
	db    *sqlx.DB
	table string
	order string
	opts  DecodeOptions
}

// pgRow is one catalog row as scanned by sqlx.
type pgRow struct {
	ID            string         `db:"ArticleID"`
	Title         string         `db:"Title"`
	Summary       sql.NullString `db:"Content Summary"`
	PrimaryTopic  string         `db:"Primary Topic"`
	Politic       float64        `db:"Relevance_Politic"`
	Sport         float64        `db:"Relevance_Sport"`
	Entertainment float64        `db:"Relevance_Entertainment"`
	Digital       float64        `db:"Relevance_Digital"`
}

// NewPostgresSource opens a lazy connection pool. No connection is made until
// the first Load.
func NewPostgresSource(cfg PostgresConfig) (*PostgresSource, error) {
	if cfg.DSN == "" {
		return nil, errors.New("postgres catalog source requires a DSN")
	}
	if cfg.Table == "" {
		cfg.Table = "articles"
	}
	if cfg.OrderBy == "" {
		cfg.OrderBy = ColumnArticleID
	}

	db, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(2)

	return &PostgresSource{
		db:    db,
		table: cfg.Table,
		order: cfg.OrderBy,
		opts:  DecodeOptions{StripHTML: cfg.StripHTML},
	}, nil
}

// selectQuery builds the catalog SELECT with every identifier quoted.
func selectQuery(table, orderBy string) (string, []interface{}, error) {
	cols := RequiredColumns()
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = pq.QuoteIdentifier(c)
	}

	return sq.Select(quoted...).
		From(quoteQualified(table)).
		OrderBy(pq.QuoteIdentifier(orderBy)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// quoteQualified quotes each part of a possibly schema-qualified name.
func quoteQualified(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

// Load implements Source.
func (s *PostgresSource) Load(ctx context.Context) ([]Article, error) {
	query, args, err := selectQuery(s.table, s.order)
	if err != nil {
		return nil, fmt.Errorf("build catalog query: %w", err)
	}

	var rows []pgRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}

	articles := make([]Article, 0, len(rows))
	for i, r := range rows {
		a, err := r.article(s.opts)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func (r pgRow) article(opts DecodeOptions) (Article, error) {
	topic, err := parsePrimaryTopic(strings.TrimSpace(r.PrimaryTopic))
	if err != nil {
		return Article{}, err
	}
	a := Article{
		ID:           strings.TrimSpace(r.ID),
		Title:        strings.TrimSpace(r.Title),
		Summary:      strings.TrimSpace(r.Summary.String),
		PrimaryTopic: topic,
		Relevance: map[Topic]float64{
			Politic:       r.Politic,
			Sport:         r.Sport,
			Entertainment: r.Entertainment,
			Digital:       r.Digital,
		},
	}
	if opts.StripHTML {
		a.Title = CleanSummary(a.Title)
		a.Summary = CleanSummary(a.Summary)
	}
	return a, nil
}

// Close releases the connection pool.
func (s *PostgresSource) Close() error {
	return s.db.Close()
}

func (s *PostgresSource) String() string { return "postgres:" + s.table }
