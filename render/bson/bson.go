// Package bson provides the BSON renderer.
//
// BSON documents are maps, so top-level values must be structs or maps.
package bson

import (
	"github.com/zoobzio/mbase/render"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonRenderer implements render.Renderer for BSON.
type bsonRenderer struct{}

// New returns a BSON renderer.
func New() render.Renderer {
	return &bsonRenderer{}
}

// ContentType returns the MIME type for BSON.
func (r *bsonRenderer) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as a BSON document.
func (r *bsonRenderer) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes a BSON document into v.
func (r *bsonRenderer) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
