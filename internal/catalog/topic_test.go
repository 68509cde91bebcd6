// Serendip - Serendipitous Article Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/serendip

package catalog

import "testing"

func TestParseTopic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   Topic
		wantOK bool
	}{
		{"politic", Politic, true},
		{"sport", Sport, true},
		{"entertainment", Entertainment, true},
		{"digital", Digital, true},
		{"  Sport ", Sport, true},
		{"DIGITAL", Digital, true},
		{"sports", "", false},
		{"Technology", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseTopic(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseTopic(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTopicDisplayAndColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		topic   Topic
		display string
		column  string
		label   string
	}{
		{Politic, "Politic", "Relevance_Politic", "Politics"},
		{Sport, "Sport", "Relevance_Sport", "Sports"},
		{Entertainment, "Entertainment", "Relevance_Entertainment", "Entertainment"},
		{Digital, "Digital", "Relevance_Digital", "Technology"},
	}

	for _, tt := range tests {
		if got := tt.topic.Display(); got != tt.display {
			t.Errorf("%s.Display() = %q, want %q", tt.topic, got, tt.display)
		}
		if got := tt.topic.RelevanceColumn(); got != tt.column {
			t.Errorf("%s.RelevanceColumn() = %q, want %q", tt.topic, got, tt.column)
		}
		if got := tt.topic.Label(); got != tt.label {
			t.Errorf("%s.Label() = %q, want %q", tt.topic, got, tt.label)
		}
		if got, ok := TopicForLabel(tt.label); !ok || got != tt.topic {
			t.Errorf("TopicForLabel(%q) = (%q, %v), want %q", tt.label, got, ok, tt.topic)
		}
		if got, ok := TopicForColumn(tt.column); !ok || got != tt.topic {
			t.Errorf("TopicForColumn(%q) = (%q, %v), want %q", tt.column, got, ok, tt.topic)
		}
	}
}

func TestTopicForLabel_ExactMatch(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"politics", "SPORTS", " Technology", "Digital", ""} {
		if got, ok := TopicForLabel(label); ok {
			t.Errorf("TopicForLabel(%q) = %q, want no match", label, got)
		}
	}
}

func TestAllTopics_ReturnsCopy(t *testing.T) {
	t.Parallel()

	topics := AllTopics()
	if len(topics) != 4 {
		t.Fatalf("len(AllTopics()) = %d, want 4", len(topics))
	}
	topics[0] = "mutated"
	if AllTopics()[0] != Politic {
		t.Error("AllTopics() exposed internal slice")
	}
}

func TestTopicValid(t *testing.T) {
	t.Parallel()

	if Topic("weather").Valid() {
		t.Error("weather should not be a valid topic")
	}
	if Topic("").Display() != "" {
		t.Error("empty topic should display as empty")
	}
	if _, ok := TopicForColumn("Score_Sport"); ok {
		t.Error("column without relevance prefix should not match")
	}
}
