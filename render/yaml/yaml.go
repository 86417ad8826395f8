// Package yaml provides the YAML renderer.
package yaml

import (
	"github.com/zoobzio/mbase/render"
	"gopkg.in/yaml.v3"
)

// yamlRenderer implements render.Renderer for YAML.
type yamlRenderer struct{}

// New returns a YAML renderer.
func New() render.Renderer {
	return &yamlRenderer{}
}

// ContentType returns the MIME type for YAML.
func (r *yamlRenderer) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (r *yamlRenderer) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (r *yamlRenderer) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
