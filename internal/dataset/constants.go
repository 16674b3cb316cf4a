// Package dataset loads, validates and holds the materials, recipes and settings
// that valuations run against.
package dataset

import (
	"path/filepath"
	"strings"
	"time"
)

// Format is the encoding of a dataset document
type Format string

// Supported document formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file name or URL extension, defaulting to JSON
func FormatFromPath(path string) Format {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat maps a user-supplied format name onto a Format
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// SchemaName is the key the embedded dataset schema is registered under
const SchemaName = "dataset.schema.json"

// Fetch limits
const (
	FetchTimeout    = 15 * time.Second
	MaxDocumentSize = 8 << 20
)

var requiredFields = []string{"materials", "recipes", "settings"}
