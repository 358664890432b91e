package urlcheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeURL_LengthBounds(t *testing.T) {
	t.Parallel()

	t.Run("TooShort", func(t *testing.T) {
		t.Parallel()
		for _, text := range []string{"", "a", "ab", "a.b"} {
			assert.False(t, LooksLikeURL(text), "should reject %q", text)
		}
	})

	t.Run("TooLong", func(t *testing.T) {
		t.Parallel()
		long := strings.Repeat("x", 201)
		assert.False(t, LooksLikeURL(long))
	})

	t.Run("BoundsCheckedBeforeMarkers", func(t *testing.T) {
		t.Parallel()
		// A 300-character fragment containing https:// is still rejected
		// because the length bound runs first.
		long := "https://example.com/" + strings.Repeat("a", 300)
		assert.False(t, LooksLikeURL(long))
	})

	t.Run("ExactBounds", func(t *testing.T) {
		t.Parallel()
		assert.True(t, LooksLikeURL("a.co"))                               // exactly 4
		assert.True(t, LooksLikeURL("http://"+strings.Repeat("a", 193)))   // exactly 200
		assert.False(t, LooksLikeURL("https://"+strings.Repeat("a", 193))) // 201
	})
}

func TestLooksLikeURL_SpaceCount(t *testing.T) {
	t.Parallel()

	assert.True(t, LooksLikeURL("see example.com here"), "two spaces allowed")
	assert.False(t, LooksLikeURL("this text has many spaces in it"))

	// The space bound runs before marker detection.
	assert.False(t, LooksLikeURL("a b c d https://example.com"))
}

func TestLooksLikeURL_Markers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"http://example.com", true},
		{"https://example.com", true},
		{"www.example.com", true},
		{"ftp://files.example.com", true}, // URL-like even though the validator rejects ftp
		{"HTTPS://EXAMPLE.COM", true},     // case-insensitive
		{"see HTTP://x.y now", true},      // marker wins over surrounding text
		{"nothing here", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LooksLikeURL(tt.text), "LooksLikeURL(%q)", tt.text)
	}
}

func TestLooksLikeURL_SentenceIndicators(t *testing.T) {
	t.Parallel()

	// Prose with an incidental domain-like token is rejected because the
	// sentence check runs before the domain check.
	assert.False(t, LooksLikeURL("see the policy.com"))
	assert.False(t, LooksLikeURL("done. next.com"))

	// But an explicit marker is decisive even in sentence-like text.
	assert.True(t, LooksLikeURL("is at http://a.com"))
}

func TestLooksLikeURL_DomainTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"arxiv.org/ai-safety", true},
		{"broken-link.economics.gov", true},
		{"complete-research.papers.ai", true},
		{"ai-ethics.missing-domain", true},
		{"(example.com)", true}, // punctuation stripped from tokens
		{"visit example.com now", true},
		{"not-a-url", false},   // no dot anywhere
		{"some words", false},  // no dot
		{"1234.5678", false},   // numeric label left of TLD
		{"version 1.2.3", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LooksLikeURL(tt.text), "LooksLikeURL(%q)", tt.text)
	}
}

func TestLooksLikeURL_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"http://example.com", "not-a-url", "see the policy.com", ""}
	for _, text := range inputs {
		first := LooksLikeURL(text)
		for range 3 {
			assert.Equal(t, first, LooksLikeURL(text), "verdict changed for %q", text)
		}
	}
}

func BenchmarkLooksLikeURL(b *testing.B) {
	inputs := []string{
		"http://example.com",
		"The future of AI is bright",
		"arxiv.org/ai-safety",
		"Machine learning algorithms are becoming sophisticated",
	}
	b.ResetTimer()
	i := 0
	for b.Loop() {
		LooksLikeURL(inputs[i%len(inputs)])
		i++
	}
}
