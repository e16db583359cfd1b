//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 3},
		{"playback context", "playback", true, 10},
		{"display context", "display", true, 3},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}

			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			// Verify all returned bindings have the correct context
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestAllBindingsHaveKeysAndHelp(t *testing.T) {
	for _, b := range All {
		if len(b.Key.Keys()) == 0 {
			t.Errorf("%s has no keys", b.Action)
		}
		if b.Key.Help().Desc == "" {
			t.Errorf("%s has no help text", b.Action)
		}
	}
}

func TestNoKeyBoundTwice(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Key.Keys() {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %s and %s", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}
