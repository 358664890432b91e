package precheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("PlainTextFile", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "links.txt", []byte("http://example.com\n"))

		file, err := Read(path, 0)
		require.NoError(t, err)
		assert.Equal(t, []byte("http://example.com\n"), file.Content)
		assert.Equal(t, EncodingUTF8, file.Encoding)
		assert.Equal(t, int64(19), file.Size)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		t.Parallel()
		_, err := Read("   ", 0)
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("NotFound", func(t *testing.T) {
		t.Parallel()
		_, err := Read(filepath.Join(t.TempDir(), "missing.txt"), 0)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Directory", func(t *testing.T) {
		t.Parallel()
		_, err := Read(t.TempDir(), 0)
		assert.ErrorIs(t, err, ErrNotRegular)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "empty.txt", nil)
		_, err := Read(path, 0)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("TooLarge", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "big.txt", []byte(strings.Repeat("x", 100)))
		_, err := Read(path, 99)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("SizeLimitDisabled", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "big.txt", []byte(strings.Repeat("x", 100)))
		_, err := Read(path, 0)
		assert.NoError(t, err)
	})

	t.Run("BinaryFormatSkipsDecoding", func(t *testing.T) {
		t.Parallel()
		raw := []byte{0x50, 0x4B, 0x03, 0x04, 0xFF, 0xFE, 0x81}
		path := writeTemp(t, "book.xlsx", raw)

		file, err := Read(path, 0)
		require.NoError(t, err)
		assert.Equal(t, raw, file.Content)
		assert.Empty(t, file.Encoding)
	})

	t.Run("Latin1Fallback", func(t *testing.T) {
		t.Parallel()
		// 0xE9 is é in both Latin-1 and Windows-1252; 0x81 forces the
		// chain past Windows-1252.
		path := writeTemp(t, "latin.txt", []byte{'c', 'a', 'f', 0xE9, 0x81})

		file, err := Read(path, 0)
		require.NoError(t, err)
		assert.Equal(t, EncodingLatin1, file.Encoding)
		assert.True(t, strings.HasPrefix(string(file.Content), "café"))
	})
}

func TestDecodeText(t *testing.T) {
	t.Parallel()

	t.Run("UTF8PassesThrough", func(t *testing.T) {
		t.Parallel()
		decoded, name, err := DecodeText([]byte("héllo"))
		require.NoError(t, err)
		assert.Equal(t, "héllo", string(decoded))
		assert.Equal(t, EncodingUTF8, name)
	})

	t.Run("UTF16LittleEndianBOM", func(t *testing.T) {
		t.Parallel()
		raw := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
		decoded, name, err := DecodeText(raw)
		require.NoError(t, err)
		assert.Equal(t, "hi", string(decoded))
		assert.Equal(t, EncodingUTF16, name)
	})

	t.Run("UTF16BigEndianBOM", func(t *testing.T) {
		t.Parallel()
		raw := []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'}
		decoded, name, err := DecodeText(raw)
		require.NoError(t, err)
		assert.Equal(t, "hi", string(decoded))
		assert.Equal(t, EncodingUTF16, name)
	})

	t.Run("Windows1252", func(t *testing.T) {
		t.Parallel()
		// 0x93/0x94 are the curly quotes specific to Windows-1252.
		raw := []byte{0x93, 'o', 'k', 0x94}
		decoded, name, err := DecodeText(raw)
		require.NoError(t, err)
		assert.Equal(t, "“ok”", string(decoded))
		assert.Equal(t, EncodingWindows1252, name)
	})

	t.Run("Latin1Terminal", func(t *testing.T) {
		t.Parallel()
		raw := []byte{0x81, 0xE9}
		decoded, name, err := DecodeText(raw)
		require.NoError(t, err)
		assert.Equal(t, EncodingLatin1, name)
		assert.Equal(t, "é", string(decoded))
	})
}
