// Package render turns command results into bytes for an output format.
//
// Each structured format lives in its own subpackage and returns a
// Renderer. The text format is rendered by Table and by the commands
// themselves.
package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for a format name outside the supported set.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer serializes values for one structured format.
type Renderer interface {
	// ContentType returns the MIME type for this format.
	ContentType() string

	// Marshal encodes v.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatXML     Format = "xml"
	FormatMsgpack Format = "msgpack"
	FormatBSON    Format = "bson"
	FormatCBOR    Format = "cbor"
)

var formats = []Format{FormatText, FormatJSON, FormatYAML, FormatXML, FormatMsgpack, FormatBSON, FormatCBOR}

// Formats returns every supported format in display order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat resolves a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Binary reports whether the format produces non-text bytes.
func (f Format) Binary() bool {
	return f == FormatMsgpack || f == FormatBSON || f == FormatCBOR
}

// String implements pflag.Value.
func (f *Format) String() string { return string(*f) }

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (*Format) Type() string { return "format" }
