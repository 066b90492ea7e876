package ai

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when the raw model output contains no brace pair.
var ErrNoJSONObject = errors.New("no json object found in response")

// ExtractJSONObject locates the substring between the first '{' and the last
// '}' in free-form model output and decodes it. Models routinely prepend or
// append commentary around the object, so nothing outside the braces is
// trusted.
func ExtractJSONObject(raw string) (map[string]any, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONObject
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &data); err != nil {
		return nil, err
	}

	return data, nil
}
