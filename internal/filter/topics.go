// Package filter holds the keyword gates applied to chat messages before they
// reach the completion API.
package filter

import "strings"

// TopicFilter matches messages against a denylist and an allowlist of
// phrases. Matching is case-insensitive substring containment with no
// word-boundary handling.
type TopicFilter struct {
	prohibited []string
	expected   []string
}

func NewTopicFilter(prohibited, expected []string) *TopicFilter {
	return &TopicFilter{
		prohibited: lowerAll(prohibited),
		expected:   lowerAll(expected),
	}
}

func (f *TopicFilter) ContainsProhibited(message string) bool {
	return containsAny(message, f.prohibited)
}

func (f *TopicFilter) AlignsWithExpected(message string) bool {
	return containsAny(message, f.expected)
}

func containsAny(message string, phrases []string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
