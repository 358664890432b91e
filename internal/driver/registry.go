package driver

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Registry manages drivers by file extension. It provides thread-safe
// registration and lookup.
type Registry struct {
	mu      sync.RWMutex
	drivers map[string]Driver // extension -> driver
}

// NewRegistry creates a new empty driver registry.
func NewRegistry() *Registry {
	return &Registry{
		drivers: map[string]Driver{},
	}
}

// Register adds a driver for all its supported extensions. An already
// registered extension is overwritten.
func (r *Registry) Register(d Driver) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range d.Extensions() {
		r.drivers[normalizeExtension(ext)] = d
	}
}

// Get returns the driver for the given extension, or nil, false if none is
// registered.
func (r *Registry) Get(ext string) (Driver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.drivers[normalizeExtension(ext)]
	return d, ok
}

// GetForFile returns the driver for a filename based on its extension.
func (r *Registry) GetForFile(filename string) (Driver, bool) {
	return r.Get(filepath.Ext(filename))
}

// HasDriver returns true if a driver is registered for the extension.
func (r *Registry) HasDriver(ext string) bool {
	_, ok := r.Get(ext)
	return ok
}

// SupportedTypes returns a sorted list of registered type names (extensions
// without the leading dot), for CLI help text.
func (r *Registry) SupportedTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.drivers))
	for ext := range r.drivers {
		types = append(types, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(types)
	return types
}

// SupportedExtensions returns all registered extensions, sorted.
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.drivers))
	for ext := range r.drivers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ExtensionsForTypes converts type names ("csv", "html") to extensions,
// failing on any type with no registered driver.
func (r *Registry) ExtensionsForTypes(types []string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	extensions := make([]string, 0, len(types))
	for _, typeName := range types {
		ext := normalizeExtension(typeName)
		if _, ok := r.drivers[ext]; !ok {
			return nil, fmt.Errorf("unsupported file type: %s", typeName)
		}
		extensions = append(extensions, ext)
	}
	return extensions, nil
}

// normalizeExtension ensures the extension is lowercase with a leading dot.
func normalizeExtension(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// defaultRegistry is the global driver registry. Driver subpackages register
// themselves with it from init.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the global driver registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a driver to the default registry.
func Register(d Driver) {
	defaultRegistry.Register(d)
}

// GetForFile returns a driver from the default registry for the filename.
func GetForFile(filename string) (Driver, bool) {
	return defaultRegistry.GetForFile(filename)
}

// SupportedFileTypes returns all supported type names from the default
// registry.
func SupportedFileTypes() []string {
	return defaultRegistry.SupportedTypes()
}

// SupportedFileExtensions returns all supported extensions from the default
// registry.
func SupportedFileExtensions() []string {
	return defaultRegistry.SupportedExtensions()
}
