package ai

import (
	"errors"
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{
			name: "plain object",
			raw:  `{"programming_languages": ["Go"]}`,
			want: map[string]any{"programming_languages": []any{"Go"}},
		},
		{
			name: "commentary around the object",
			raw:  "Sure, here are the skills:\n```json\n{\"tools\": [\"Docker\"]}\n```\nLet me know if you need more.",
			want: map[string]any{"tools": []any{"Docker"}},
		},
		{
			name: "nested braces",
			raw:  `prefix {"outer": {"inner": "value"}} suffix`,
			want: map[string]any{"outer": map[string]any{"inner": "value"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("unexpected object: %v", got)
			}
			for key := range tc.want {
				if _, ok := got[key]; !ok {
					t.Fatalf("expected key %q in %v", key, got)
				}
			}
		})
	}
}

func TestExtractJSONObjectErrors(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		wantNoObj bool
	}{
		{name: "no braces", raw: "no object here", wantNoObj: true},
		{name: "opening brace only", raw: "broken {", wantNoObj: true},
		{name: "closing before opening", raw: "} then {", wantNoObj: true},
		{name: "invalid json inside braces", raw: `{"unterminated": `+"}", wantNoObj: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExtractJSONObject(tc.raw)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if tc.wantNoObj != errors.Is(err, ErrNoJSONObject) {
				t.Fatalf("unexpected error kind: %v", err)
			}
		})
	}
}
