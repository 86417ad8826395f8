// Package xml provides the XML renderer.
//
// XML has a single root element, so callers wrap slices in a named
// struct before marshaling.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/mbase/render"
)

// xmlRenderer implements render.Renderer for XML.
type xmlRenderer struct{}

// New returns an XML renderer.
func New() render.Renderer {
	return &xmlRenderer{}
}

// ContentType returns the MIME type for XML.
func (r *xmlRenderer) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as indented XML preceded by the standard header.
func (r *xmlRenderer) Marshal(v any) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Unmarshal decodes XML data into v.
func (r *xmlRenderer) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
