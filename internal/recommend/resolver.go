// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package recommend

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/serendip/internal/catalog"
)

// surveyCodes maps numeric survey recode values to display labels.
var surveyCodes = map[string]string{
	"1": "Politics",
	"2": "Sports",
	"3": "Entertainment",
	"4": "Technology",
}

// ResolveTopic converts raw request input into a canonical topic.
//
// Accepted shapes, all resolving identically for the same topic:
//   - display label: "Politics" (case-insensitive)
//   - survey code: 1, "1", 1.0
//   - canonical key: "politic" (case-insensitive)
//
// Anything else returns a *TopicError wrapping ErrUnrecognizedTopic.
func ResolveTopic(raw any) (catalog.Topic, error) {
	s, ok := rawString(raw)
	if !ok {
		return "", &TopicError{Raw: raw}
	}
	t, ok := resolveString(s)
	if !ok {
		return "", &TopicError{Raw: raw}
	}
	return t, nil
}

// ResolvePair resolves both request fields, reporting the first that fails.
func ResolvePair(preferred, nonPreferred any) (TopicPair, error) {
	p, err := ResolveTopic(preferred)
	if err != nil {
		return TopicPair{}, &TopicError{Field: FieldPreferred, Raw: preferred}
	}
	n, err := ResolveTopic(nonPreferred)
	if err != nil {
		return TopicPair{}, &TopicError{Field: FieldNonPreferred, Raw: nonPreferred}
	}
	return TopicPair{Preferred: p, NonPreferred: n}, nil
}

func resolveString(s string) (catalog.Topic, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if label, ok := surveyCodes[s]; ok {
		s = label
	}
	for _, t := range catalog.AllTopics() {
		if strings.EqualFold(t.Label(), s) {
			return t, true
		}
	}
	return catalog.ParseTopic(s)
}

// rawString renders a decoded scalar the way it would be written in a form.
// Non-integral floats and non-scalars are rejected.
func rawString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return integralFloat(v)
	case float32:
		return integralFloat(float64(v))
	case fmt.Stringer:
		// json.Number and similar decoded number types.
		return v.String(), true
	default:
		return "", false
	}
}

func integralFloat(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return "", false
	}
	return strconv.FormatInt(int64(f), 10), true
}
