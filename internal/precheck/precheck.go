// Package precheck guards file input before any driver runs: path and size
// validation plus text decoding with an encoding fallback chain. Every guard
// fails with a distinct sentinel so callers can branch on the kind without
// string matching.
package precheck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for the individual guards. All errors returned by Read
// wrap exactly one of these.
var (
	ErrEmptyPath    = errors.New("empty file path")
	ErrNotFound     = errors.New("file not found")
	ErrNotRegular   = errors.New("not a regular file")
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file too large")
	ErrUndecodable  = errors.New("undecodable text")
)

// binaryExtensions lists formats read as raw bytes, skipping text decoding.
var binaryExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
}

// File is the checked and decoded content of one input file.
type File struct {
	Path     string
	Content  []byte
	Size     int64
	Encoding string // empty for binary formats
}

// Read validates path, size, and emptiness, then loads the file. Text
// formats are decoded to UTF-8 through the fallback chain; binary formats
// keep their raw bytes. maxSize <= 0 disables the size guard.
func Read(path string, maxSize int64) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrFileTooLarge, path, info.Size(), maxSize)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	file := &File{Path: path, Size: info.Size()}
	if binaryExtensions[strings.ToLower(filepath.Ext(path))] {
		file.Content = raw
		return file, nil
	}

	decoded, encoding, err := DecodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	file.Content = decoded
	file.Encoding = encoding
	return file, nil
}
