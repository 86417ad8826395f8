package mbase

// Codec is a single binary-to-text format.
//
// Implementations are stateless values; every method is a pure function of
// its arguments and safe for concurrent use.
type Codec interface {
	// Meta returns the codec's immutable descriptor.
	Meta() Metadata

	// Encode renders data as text. Fixed-domain codecs reject input outside
	// their domain with an InputError or LengthError.
	Encode(data []byte) (string, error)

	// Decode parses text back into bytes under the given mode.
	Decode(text string, mode Mode) ([]byte, error)

	// DetectScore rates how likely text is to be this codec's output.
	// It never fails and returns zero confidence for empty text.
	DetectScore(text string) Candidate
}

// Metadata describes a codec. One value per codec, fixed at registration.
type Metadata struct {
	Name        string
	Aliases     []string
	Alphabet    string
	Prefix      rune // multibase prefix, 0 when the codec has none
	Padding     PaddingRule
	Case        CaseClass
	Description string
}

// HasPrefix reports whether the codec claims a multibase prefix.
func (m Metadata) HasPrefix() bool {
	return m.Prefix != 0
}

// Candidate is one codec's opinion about a piece of unlabeled text.
type Candidate struct {
	Codec      string   `json:"codec" yaml:"codec" xml:"codec" msgpack:"codec" bson:"codec" cbor:"codec" col:"CODEC,16"`
	Confidence float64  `json:"confidence" yaml:"confidence" xml:"confidence" msgpack:"confidence" bson:"confidence" cbor:"confidence" col:"CONF,8,percent"`
	Reasons    []string `json:"reasons" yaml:"reasons" xml:"reason" msgpack:"reasons" bson:"reasons" cbor:"reasons" col:"REASONS"`
	Warnings   []string `json:"warnings" yaml:"warnings" xml:"warning" msgpack:"warnings" bson:"warnings" cbor:"warnings"`
}

// NewCandidate returns a zero-confidence candidate for the named codec.
func NewCandidate(codec string) Candidate {
	return Candidate{
		Codec:    codec,
		Reasons:  []string{},
		Warnings: []string{},
	}
}

// EmptyCandidate returns the candidate every codec reports for empty text.
func EmptyCandidate(codec string) Candidate {
	c := NewCandidate(codec)
	c.Reasons = append(c.Reasons, "empty input")
	return c
}

// Score raises the candidate's confidence to at least c, recording reason.
func (c *Candidate) Score(confidence float64, reason string) {
	if confidence > c.Confidence {
		c.Confidence = clamp(confidence)
	}
	if reason != "" {
		c.Reasons = append(c.Reasons, reason)
	}
}

// Set replaces the candidate's confidence, recording reason.
func (c *Candidate) Set(confidence float64, reason string) {
	c.Confidence = clamp(confidence)
	if reason != "" {
		c.Reasons = append(c.Reasons, reason)
	}
}

// Warn appends a warning.
func (c *Candidate) Warn(warning string) {
	c.Warnings = append(c.Warnings, warning)
}

func clamp(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
