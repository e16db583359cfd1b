//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpConfigLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load config: file not found",
		},
		{
			name:     "cover operation",
			op:       OpCoverPaint,
			err:      errors.New("broken pipe"),
			expected: "Failed to paint cover image: broken pipe",
		},
		{
			name:     "wrapped error keeps chain text",
			op:       OpTempSweep,
			err:      errors.Join(errors.New("remove a"), errors.New("remove b")),
			expected: "Failed to clean graphics temp files: remove a\nremove b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCoverLoad,
			context:  "cover.jpg",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpCoverLoad,
			context:  "",
			err:      errors.New("unknown format"),
			expected: "Failed to load cover image: unknown format",
		},
		{
			name:     "includes context",
			op:       OpCoverLoad,
			context:  "cover.jpg",
			err:      errors.New("unknown format"),
			expected: "Failed to load cover image 'cover.jpg': unknown format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.context, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
