package helpers

import (
	"fmt"
	"strconv"
	"strings"
)

// UniqueIDs merges the given id lists into one set, keeping first-seen order
func UniqueIDs(lists ...[]int64) []int64 {
	seen := make(map[int64]struct{})
	out := []int64{}
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// FirstNonPositive returns the first id that is not a positive integer
func FirstNonPositive(lists ...[]int64) (int64, bool) {
	for _, list := range lists {
		for _, id := range list {
			if id <= 0 {
				return id, true
			}
		}
	}
	return 0, false
}

// ParseID parses a positive integer path parameter
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("id must be positive, got %d", id)
	}
	return id, nil
}

// OptionalString trims s and returns nil when nothing is left
func OptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// UniqueStrings trims values and drops blanks and duplicates, keeping order
func UniqueStrings(values []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
