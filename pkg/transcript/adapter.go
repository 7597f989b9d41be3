// Package transcript turns exported chat transcripts into ordered raw
// message sequences. Two container formats carry the same bot messages:
// the browser-exported HTML archive and the messaging platform's JSON
// export.
package transcript

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dtnitsch/rentledger/models"
)

// Format identifies a supported transcript container format.
type Format string

const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// ErrFormat reports a transcript whose container cannot be interpreted at
// all (invalid JSON, missing top-level message collection). Individual
// unusable messages are skipped, never errors.
var ErrFormat = errors.New("invalid transcript format")

// Adapter converts raw transcript content into the ordered message
// sequence the extractor consumes.
type Adapter interface {
	// Adapt parses rawContent and returns every attributable bot message
	// in container order. Messages without a usable date or text are
	// skipped; a structurally invalid container fails with ErrFormat.
	Adapt(rawContent string) ([]models.RawMessage, error)
	// Format returns the container format this adapter reads.
	Format() Format
}

// New returns the adapter for the given container format. The sender is
// only meaningful for the JSON variant, which filters by bot account.
func New(f Format, sender string) (Adapter, error) {
	switch f {
	case FormatHTML:
		return &HTMLAdapter{}, nil
	case FormatJSON:
		return &JSONAdapter{Sender: sender}, nil
	default:
		return nil, fmt.Errorf("unsupported transcript format: %q", f)
	}
}

// Detect guesses the container format from the content itself. JSON
// exports open with an object or array; anything else is treated as the
// HTML export.
func Detect(rawContent string) Format {
	trimmed := strings.TrimLeftFunc(rawContent, unicode.IsSpace)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return FormatJSON
	}
	return FormatHTML
}
