// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Topic is a canonical topic key as stored in the "Primary Topic" column.
type Topic string

// Canonical topic keys.
const (
	Politic       Topic = "politic"
	Sport         Topic = "sport"
	Entertainment Topic = "entertainment"
	Digital       Topic = "digital"
)

// relevancePrefix is prepended to the capitalized topic key to form a column name.
const relevancePrefix = "Relevance_"

var allTopics = []Topic{Politic, Sport, Entertainment, Digital}

// AllTopics returns the topic enumeration in column order.
func AllTopics() []Topic {
	out := make([]Topic, len(allTopics))
	copy(out, allTopics)
	return out
}

// Valid reports whether t is one of the canonical topic keys.
func (t Topic) Valid() bool {
	switch t {
	case Politic, Sport, Entertainment, Digital:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Topic) String() string {
	return string(t)
}

// Display renders the key with its first letter capitalized ("sport" -> "Sport").
func (t Topic) Display() string {
	s := string(t)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// RelevanceColumn returns the catalog column holding scores for t.
func (t Topic) RelevanceColumn() string {
	return relevancePrefix + t.Display()
}

// ParseTopic accepts a canonical key in any letter case, e.g. "Sport" or " SPORT ".
func ParseTopic(s string) (Topic, bool) {
	t := Topic(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// labels are the survey display labels for each topic.
var labels = map[string]Topic{
	"Politics":      Politic,
	"Sports":        Sport,
	"Entertainment": Entertainment,
	"Technology":    Digital,
}

// TopicForLabel maps a survey display label ("Technology") to its topic.
// Matching is exact.
func TopicForLabel(label string) (Topic, bool) {
	t, ok := labels[label]
	return t, ok
}

// Label returns the survey display label for t, or "" for an unknown topic.
func (t Topic) Label() string {
	for label, topic := range labels {
		if topic == t {
			return label
		}
	}
	return ""
}

// TopicForColumn maps a relevance column name back to its topic.
func TopicForColumn(column string) (Topic, bool) {
	name, ok := strings.CutPrefix(strings.TrimSpace(column), relevancePrefix)
	if !ok {
		return "", false
	}
	return ParseTopic(name)
}
