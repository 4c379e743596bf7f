package display

import (
	"strings"

	"github.com/arthur-debert/loadout/pkg/errors"
)

// Format is an output format for rendered results.
type Format int

const (
	// FormatText renders a human summary, styled when color is enabled.
	FormatText Format = iota
	// FormatYAML renders machine-readable YAML.
	FormatYAML
)

// String returns the flag value for the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a --format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "plain":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, errors.Newf(errors.ErrInvalidInput, "unknown format %q (want text or yaml)", s).
			WithDetail("format", s)
	}
}
