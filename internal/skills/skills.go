package skills

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Categories lists the fixed skill categories in their canonical order.
var Categories = []string{
	"programming_languages",
	"frameworks",
	"tools",
	"databases",
	"cloud_platforms",
	"other_technical_skills",
}

// Set maps every category to the skill names extracted for it. A valid Set
// always carries all six categories, even when their lists are empty.
type Set map[string][]string

// NewSet returns a Set with all categories present and empty.
func NewSet() Set {
	s := make(Set, len(Categories))
	for _, category := range Categories {
		s[category] = []string{}
	}
	return s
}

// IsCategory reports whether the provided key is one of the known categories.
func IsCategory(key string) bool {
	for _, category := range Categories {
		if category == key {
			return true
		}
	}
	return false
}

// Total returns the number of skills across all categories. Duplicates are
// counted as returned by the model.
func (s Set) Total() int {
	total := 0
	for _, items := range s {
		total += len(items)
	}
	return total
}

// Normalize guarantees all six categories are present and drops unknown keys.
func (s Set) Normalize() Set {
	normalized := NewSet()
	for _, category := range Categories {
		if items, ok := s[category]; ok && items != nil {
			normalized[category] = items
		}
	}
	return normalized
}

// Union merges the provided sets into a deduplicated, alphabetically sorted Set.
func Union(sets ...Set) Set {
	seen := make(map[string]map[string]struct{}, len(Categories))
	for _, category := range Categories {
		seen[category] = make(map[string]struct{})
	}

	for _, s := range sets {
		for _, category := range Categories {
			for _, item := range s[category] {
				seen[category][item] = struct{}{}
			}
		}
	}

	union := NewSet()
	for _, category := range Categories {
		items := make([]string, 0, len(seen[category]))
		for item := range seen[category] {
			items = append(items, item)
		}
		sort.Strings(items)
		union[category] = items
	}

	return union
}

// FromAny builds a Set from loosely-typed model output. Values that are not
// lists are ignored; list entries are coerced to strings where a sensible
// textual form exists. Duplicates are preserved.
func FromAny(data map[string]any) Set {
	s := NewSet()
	for key, value := range data {
		if !IsCategory(key) {
			continue
		}

		items, ok := value.([]any)
		if !ok {
			continue
		}

		coerced := make([]string, 0, len(items))
		for _, item := range items {
			if text, ok := coerceString(item); ok {
				coerced = append(coerced, text)
			}
		}
		s[key] = coerced
	}
	return s
}

func coerceString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		trimmed := strings.TrimSpace(val)
		return trimmed, trimmed != ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		// Objects and nested lists carry no usable skill name.
		return "", false
	}
}

// MarshalJSON keeps the canonical category order in serialized output.
func (s Set) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteString("{")
	for i, category := range Categories {
		if i > 0 {
			b.WriteString(",")
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		items := s[category]
		if items == nil {
			items = []string{}
		}
		value, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteString(":")
		b.Write(value)
	}
	b.WriteString("}")
	return []byte(b.String()), nil
}
