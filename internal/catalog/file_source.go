// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// CSVSource reads a comma separated catalog with a header row.
type CSVSource struct {
	path string
	opts DecodeOptions
}

// NewCSVSource returns a source reading path.
func NewCSVSource(path string, opts DecodeOptions) *CSVSource {
	return &CSVSource{path: path, opts: opts}
}

// Load implements Source.
func (s *CSVSource) Load(ctx context.Context) ([]Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeCSV(f, s.opts)
}

func (s *CSVSource) String() string { return "csv:" + s.path }

func decodeCSV(r io.Reader, opts DecodeOptions) ([]Article, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}
	return DecodeTable(records[0], records[1:], opts)
}

// XLSXSource reads a spreadsheet catalog.
type XLSXSource struct {
	path  string
	sheet string
	opts  DecodeOptions
}

// NewXLSXSource returns a source reading sheet of path. An empty sheet
// selects the first one in the workbook.
func NewXLSXSource(path, sheet string, opts DecodeOptions) *XLSXSource {
	return &XLSXSource{path: path, sheet: sheet, opts: opts}
}

// Load implements Source.
func (s *XLSXSource) Load(ctx context.Context) ([]Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyCatalog
		}
		sheet = sheets[0]
	}

	// Raw values keep relevance scores as written rather than as displayed.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyCatalog
	}
	return DecodeTable(rows[0], rows[1:], s.opts)
}

func (s *XLSXSource) String() string {
	if s.sheet == "" {
		return "xlsx:" + s.path
	}
	return "xlsx:" + s.path + "#" + s.sheet
}

// JSONSource reads an array of objects keyed by column name:
//
//	[{"ArticleID": "a1", "Title": "...", "Content Summary": "...", "Primary Topic": "sport", "Relevance_Politic": 0.4, ...}]
type JSONSource struct {
	path string
	opts DecodeOptions
}

// NewJSONSource returns a source reading path.
func NewJSONSource(path string, opts DecodeOptions) *JSONSource {
	return &JSONSource{path: path, opts: opts}
}

// Load implements Source.
func (s *JSONSource) Load(ctx context.Context) ([]Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return decodeRecords(records, s.opts)
}

func (s *JSONSource) String() string { return "json:" + s.path }

// YAMLSource reads a sequence of mappings keyed by column name.
type YAMLSource struct {
	path string
	opts DecodeOptions
}

// NewYAMLSource returns a source reading path.
func NewYAMLSource(path string, opts DecodeOptions) *YAMLSource {
	return &YAMLSource{path: path, opts: opts}
}

// Load implements Source.
func (s *YAMLSource) Load(ctx context.Context) ([]Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var records []map[string]interface{}
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return decodeRecords(records, s.opts)
}

func (s *YAMLSource) String() string { return "yaml:" + s.path }

// decodeRecords flattens keyed records into the tabular form so every format
// shares DecodeTable's column matching and row checks.
func decodeRecords(records []map[string]interface{}, opts DecodeOptions) ([]Article, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}

	header := RequiredColumns()
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = columnKey(h)
	}

	rows := make([][]string, len(records))
	for i, rec := range records {
		byKey := make(map[string]interface{}, len(rec))
		for k, v := range rec {
			byKey[columnKey(k)] = v
		}
		row := make([]string, len(header))
		for j, key := range keys {
			v, ok := byKey[key]
			if !ok {
				// Report a missing key the same way a missing column is reported.
				if i == 0 {
					return nil, fmt.Errorf("%w: %q", ErrMissingColumn, header[j])
				}
				continue
			}
			row[j] = cellString(v)
		}
		rows[i] = row
	}
	return DecodeTable(header, rows, opts)
}

// cellString renders a decoded JSON/YAML scalar the way it would appear in a CSV cell.
func cellString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
