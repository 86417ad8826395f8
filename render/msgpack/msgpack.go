// Package msgpack provides the MessagePack renderer.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/mbase/render"
)

// msgpackRenderer implements render.Renderer for MessagePack.
type msgpackRenderer struct{}

// New returns a MessagePack renderer.
func New() render.Renderer {
	return &msgpackRenderer{}
}

// ContentType returns the MIME type for MessagePack.
func (r *msgpackRenderer) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (r *msgpackRenderer) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (r *msgpackRenderer) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
