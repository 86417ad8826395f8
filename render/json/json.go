// Package json provides the JSON renderer.
package json

import (
	"encoding/json"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/zoobzio/mbase/render"
)

// jsonRenderer implements render.Renderer for JSON.
type jsonRenderer struct {
	color *prettyjson.Formatter
}

// New returns a JSON renderer producing indented, uncoloured output.
func New() render.Renderer {
	return &jsonRenderer{}
}

// NewColor returns a JSON renderer that colours keys and values with ANSI
// escapes. Colour is always on: the caller has already decided the
// destination is a terminal, whatever os.Stdout is.
func NewColor() render.Renderer {
	f := prettyjson.NewFormatter()
	f.Indent = 2
	f.KeyColor = enabled(color.FgBlue, color.Bold)
	f.StringColor = enabled(color.FgGreen, color.Bold)
	f.BoolColor = enabled(color.FgYellow, color.Bold)
	f.NumberColor = enabled(color.FgCyan, color.Bold)
	f.NullColor = enabled(color.FgBlack, color.Bold)
	return &jsonRenderer{color: f}
}

func enabled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// ContentType returns the MIME type for JSON.
func (r *jsonRenderer) ContentType() string {
	return "application/json"
}

// Marshal encodes v as indented JSON.
func (r *jsonRenderer) Marshal(v any) ([]byte, error) {
	if r.color != nil {
		return r.color.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

// Unmarshal decodes JSON data into v. Colour escapes are not accepted.
func (r *jsonRenderer) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
