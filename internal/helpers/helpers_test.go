package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"ShortText", "hello", 10, "hello"},
		{"ExactLength", "hello", 5, "hello"},
		{"Truncated", "hello world", 8, "hello..."},
		{"Whitespace", "   ", 10, ""},
		{"TrimsBeforeCheck", "  hi  ", 10, "hi"},
		{"Empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TruncateText(tt.text, tt.maxLen))
		})
	}
}

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http://example.com", TruncateURL("http://example.com", 50))
	assert.Equal(t, "http://exam...", TruncateURL("http://example.com/long/path", 14))
}

func TestPluralize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "file", Pluralize(1, "file", "files"))
	assert.Equal(t, "files", Pluralize(0, "file", "files"))
	assert.Equal(t, "files", Pluralize(2, "file", "files"))
}
