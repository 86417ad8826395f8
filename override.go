package mbase

// Override interfaces let a codec replace a default behavior with a
// cheaper or more precise one. Callers go through the package-level
// helpers, which check for the interface before falling back.

// Validator bypasses decode-and-discard validation.
// Implement this when conformance can be checked without materializing
// the decoded bytes. The result must agree with Decode: Validate returns
// nil exactly when Decode would succeed.
type Validator interface {
	Validate(text string, mode Mode) error
}

// Validate checks text against c under mode without returning bytes.
func Validate(c Codec, text string, mode Mode) error {
	if v, ok := c.(Validator); ok {
		return v.Validate(text, mode)
	}
	_, err := c.Decode(text, mode)
	return err
}
