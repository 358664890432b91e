package htmlfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmoretti/linksift/internal/driver"
)

func TestScan(t *testing.T) {
	t.Parallel()

	t.Run("EndToEnd", func(t *testing.T) {
		t.Parallel()
		content := []byte(`<!DOCTYPE html>
<html>
<head>
	<link rel="stylesheet" href="http://example.com/style.css">
	<script src="https://cdn.example.com/script.js"></script>
</head>
<body>
	<a href="https://google.com">Google</a>
	<a href="not-a-url">Broken</a>
	<img src="http://localhost:8080/image.jpg" alt="pic">
</body>
</html>`)

		results, err := New().Scan(context.Background(), "page.html", content, driver.Options{})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"http://example.com/style.css",
			"http://localhost:8080/image.jpg",
			"https://cdn.example.com/script.js",
			"https://google.com",
		}, results.Valid())
		assert.Equal(t, []string{"not-a-url"}, results.Invalid())
	})

	t.Run("NoClassifierGate", func(t *testing.T) {
		// A bare word would be silently dropped by the heuristic gate in
		// tabular and text sources; extracted attribute values are always
		// validated, so it lands in the invalid set here.
		t.Parallel()
		content := []byte(`<a href="contact">Contact</a>`)

		results, err := New().Scan(context.Background(), "page.html", content, driver.Options{})
		require.NoError(t, err)
		assert.Empty(t, results.Valid())
		assert.Equal(t, []string{"contact"}, results.Invalid())
	})

	t.Run("HrefPreferredOverSrc", func(t *testing.T) {
		t.Parallel()
		content := []byte(`<a href="https://primary.example.com" src="https://ignored.example.com">x</a>`)

		results, err := New().Scan(context.Background(), "page.html", content, driver.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://primary.example.com"}, results.Valid())
	})

	t.Run("NonLinkElementsIgnored", func(t *testing.T) {
		t.Parallel()
		content := []byte(`<div href="https://example.com"><span src="https://example.org"></span></div>`)

		results, err := New().Scan(context.Background(), "page.html", content, driver.Options{})
		require.NoError(t, err)
		assert.Zero(t, results.Total())
	})

	t.Run("InvalidDetailLocation", func(t *testing.T) {
		t.Parallel()
		content := []byte(`<a href="https://example.com">ok</a><a href="nope">bad</a>`)

		results, err := New().Scan(context.Background(), "page.html", content, driver.Options{})
		require.NoError(t, err)

		details := results.InvalidDetails()
		require.Len(t, details, 1)
		assert.Equal(t, "nope", details[0].URL)
		assert.Equal(t, "element <a> #2", details[0].Location)
	})

	t.Run("TruncatedMarkupTolerated", func(t *testing.T) {
		t.Parallel()
		content := []byte(`<a href="https://example.com">dangling <b>text`)

		results, err := New().Scan(context.Background(), "page.html", content, driver.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com"}, results.Valid())
	})

	t.Run("CancelReturnsAccumulated", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		content := []byte(`<a href="https://example.com">x</a>`)
		results, err := New().Scan(ctx, "page.html", content, driver.Options{})
		require.NoError(t, err)
		assert.Zero(t, results.Total())
	})
}
