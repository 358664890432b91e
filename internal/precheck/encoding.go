package precheck

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names reported by DecodeText.
const (
	EncodingUTF8        = "utf-8"
	EncodingUTF16       = "utf-16"
	EncodingWindows1252 = "windows-1252"
	EncodingLatin1      = "latin-1"
)

var (
	utf16BOMLE = []byte{0xFF, 0xFE}
	utf16BOMBE = []byte{0xFE, 0xFF}
)

// DecodeText converts raw file bytes to UTF-8, trying encodings in a fixed
// order: UTF-8 as-is, UTF-16 when a byte order mark is present, then
// Windows-1252, then Latin-1. Windows-1252 is rejected when the input uses
// one of its undefined code points; Latin-1 maps every byte, so it is the
// terminal fallback. The returned name identifies the encoding that matched.
func DecodeText(raw []byte) ([]byte, string, error) {
	if utf8.Valid(raw) {
		return raw, EncodingUTF8, nil
	}

	if bytes.HasPrefix(raw, utf16BOMLE) || bytes.HasPrefix(raw, utf16BOMBE) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, err := dec.Bytes(raw)
		if err == nil && utf8.Valid(decoded) {
			return decoded, EncodingUTF16, nil
		}
	}

	if !containsUndefined1252(raw) {
		if decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil {
			return decoded, EncodingWindows1252, nil
		}
	}

	// Latin-1 assigns a code point to every byte value, so this step
	// cannot fail and the chain always terminates with a decoding.
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, "", ErrUndecodable
	}
	return decoded, EncodingLatin1, nil
}

// containsUndefined1252 reports whether raw uses a byte value that
// Windows-1252 leaves unassigned. The x/text decoder maps those bytes to C1
// controls rather than failing, so the raw bytes are checked up front.
func containsUndefined1252(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
			return true
		}
	}
	return false
}
