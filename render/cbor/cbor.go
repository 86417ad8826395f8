// Package cbor provides the CBOR renderer.
//
// Output uses Core Deterministic Encoding (RFC 8949 section 4.2), so the
// same result always produces identical bytes.
package cbor

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/zoobzio/mbase/render"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cbor: encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("cbor: decoder initialization failed: " + err.Error())
	}
}

// cborRenderer implements render.Renderer for CBOR.
type cborRenderer struct{}

// New returns a CBOR renderer.
func New() render.Renderer {
	return &cborRenderer{}
}

// ContentType returns the MIME type for CBOR.
func (r *cborRenderer) ContentType() string {
	return "application/cbor"
}

// Marshal encodes v as deterministic CBOR.
func (r *cborRenderer) Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func (r *cborRenderer) Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}
