package mbase

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ExplainSchemaVersion is stamped on every Explanation.
const ExplainSchemaVersion = 1

// contextWindow is how many scalars of context surround a failing position.
const contextWindow = 10

// Explanation is the outcome of one diagnosed decode attempt.
type Explanation struct {
	SchemaVersion int         `json:"schema_version" yaml:"schema_version" xml:"schema_version" msgpack:"schema_version" bson:"schema_version" cbor:"schema_version"`
	Codec         string      `json:"codec" yaml:"codec" xml:"codec" msgpack:"codec" bson:"codec" cbor:"codec"`
	InputPreview  string      `json:"input_preview" yaml:"input_preview" xml:"input_preview" msgpack:"input_preview" bson:"input_preview" cbor:"input_preview"`
	Valid         bool        `json:"valid" yaml:"valid" xml:"valid" msgpack:"valid" bson:"valid" cbor:"valid"`
	Error         *Diagnostic `json:"error" yaml:"error" xml:"error,omitempty" msgpack:"error" bson:"error" cbor:"error"`
	Suggestions   []string    `json:"suggestions" yaml:"suggestions" xml:"suggestion" msgpack:"suggestions" bson:"suggestions" cbor:"suggestions"`
}

// Diagnostic describes why a decode failed.
type Diagnostic struct {
	Message  string    `json:"message" yaml:"message" xml:"message" msgpack:"message" bson:"message" cbor:"message"`
	Kind     ErrorKind `json:"kind" yaml:"kind" xml:"kind" msgpack:"kind" bson:"kind" cbor:"kind"`
	Position *int      `json:"position" yaml:"position" xml:"position,omitempty" msgpack:"position" bson:"position" cbor:"position"`
	Char     string    `json:"offending_char,omitempty" yaml:"offending_char,omitempty" xml:"offending_char,omitempty" msgpack:"offending_char,omitempty" bson:"offending_char,omitempty" cbor:"offending_char,omitempty"`
	Context  string    `json:"context,omitempty" yaml:"context,omitempty" xml:"context,omitempty" msgpack:"context,omitempty" bson:"context,omitempty" cbor:"context,omitempty"`
}

// Explain decodes text with the named codec and, on failure, reports the
// error's kind, a marked context window, and suggested fixes. A decode
// failure is a successful explanation; the error return is reserved for a
// name that resolves to no codec.
func (r *Registry) Explain(name, text string, mode Mode) (Explanation, error) {
	codec, err := r.Get(name)
	if err != nil {
		return Explanation{}, err
	}
	trimmed := strings.TrimSpace(text)

	exp := Explanation{
		SchemaVersion: ExplainSchemaVersion,
		Codec:         name,
		InputPreview:  Preview(trimmed),
		Valid:         true,
		Suggestions:   []string{},
	}

	_, derr := codec.Decode(trimmed, mode)
	if derr == nil {
		return exp, nil
	}

	exp.Valid = false
	exp.Error = &Diagnostic{
		Message: derr.Error(),
		Kind:    KindOf(derr),
	}
	var ce *CharacterError
	if errors.As(derr, &ce) {
		pos := ce.Position
		exp.Error.Position = &pos
		exp.Error.Char = string(ce.Char)
		exp.Error.Context = markContext(trimmed, pos, contextWindow)
	}
	exp.Suggestions = r.suggest(derr, codec.Meta(), trimmed)
	return exp, nil
}

// markContext returns up to window scalars either side of pos followed by a
// line with a caret under pos.
func markContext(text string, pos, window int) string {
	runes := []rune(text)
	if pos > len(runes) {
		pos = len(runes)
	}
	start := pos - window
	if start < 0 {
		start = 0
	}
	end := pos + window + 1
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end]) + "\n" + strings.Repeat(" ", pos-start) + "^"
}

func (r *Registry) suggest(err error, meta Metadata, text string) []string {
	out := []string{}

	var ce *CharacterError
	var le *LengthError
	switch {
	case errors.As(err, &ce):
		if IsASCIISpace(ce.Char) || unicode.IsSpace(ce.Char) {
			out = append(out, "try lenient mode to ignore whitespace")
		}
		if (ce.Char >= 'a' && ce.Char <= 'z') || (ce.Char >= 'A' && ce.Char <= 'Z') {
			out = append(out, "try lenient mode for case flexibility")
		}
		if ce.Char == '=' {
			if sib, ok := r.paddedSibling(meta); ok {
				out = append(out, fmt.Sprintf("padding character found; try the padded variant %s", sib))
			} else {
				out = append(out, "padding character found; this codec does not use padding")
			}
		}

	case errors.Is(err, ErrInvalidPadding):
		if meta.Padding == PaddingRequired {
			out = append(out, "input may have incorrect padding; try lenient mode")
		} else if sib, ok := r.paddedSibling(meta); ok && strings.ContainsRune(text, '=') {
			out = append(out, fmt.Sprintf("try the padded variant %s for padded input", sib))
		} else {
			out = append(out, "trailing bits are not zero; try lenient mode to ignore them")
		}

	case errors.As(err, &le):
		if le.Constraint.Kind == LengthMultipleOf {
			switch {
			case le.Constraint.N == 2 && strings.HasPrefix(meta.Name, "base16"):
				out = append(out, "hex input has odd length; a character may be missing")
			case le.Constraint.N == 4 || le.Constraint.N == 5:
				out = append(out, fmt.Sprintf("input length %d doesn't match codec requirements", le.Actual))
			}
		}

	case errors.Is(err, ErrChecksumMismatch):
		out = append(out,
			"checksum validation failed; data may be corrupted",
			"verify the input was copied correctly",
		)
	}

	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		out = append(out, "input has 0x prefix; try lenient mode or remove the prefix")
	}
	return out
}

// paddedSibling finds a registered codec sharing meta's alphabet whose
// canonical form carries padding.
func (r *Registry) paddedSibling(meta Metadata) (string, bool) {
	if meta.Padding == PaddingRequired || meta.Alphabet == "" {
		return "", false
	}
	for _, m := range r.metas {
		if m.Name != meta.Name && m.Alphabet == meta.Alphabet && m.Padding == PaddingRequired {
			return m.Name, true
		}
	}
	return "", false
}
