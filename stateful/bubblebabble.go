package stateful

import (
	"strings"

	"github.com/zoobzio/mbase"
)

const (
	bbVowels     = "aeiouy"
	bbConsonants = "bcdfghklmnprstvzx"
	bbTerminator = 16 // index of 'x' in bbConsonants
)

// BubbleBabbleCodec is Antti Huima's Bubble Babble. Every tuple folds a
// rolling checksum into its vowels, so corruption is caught on decode.
type BubbleBabbleCodec struct{}

// BubbleBabble returns the Bubble Babble codec.
func BubbleBabble() *BubbleBabbleCodec { return &BubbleBabbleCodec{} }

// Meta returns the codec's descriptor.
func (*BubbleBabbleCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "bubblebabble",
		Aliases:     []string{"bubble", "babble"},
		Alphabet:    bbVowels + "-" + bbConsonants,
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseLower,
		Description: "Bubble Babble pronounceable encoding (OpenSSH fingerprint style)",
	}
}

// Encode renders data as x-delimited CVCVC-C tuples.
func (*BubbleBabbleCodec) Encode(data []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(data)*3 + 5)
	b.WriteByte('x')
	seed := 1
	rounds := len(data)/2 + 1
	for i := 0; i < rounds; i++ {
		if i+1 < rounds || len(data)%2 != 0 {
			b1 := int(data[2*i])
			b.WriteByte(bbVowels[((b1>>6&3)+seed)%6])
			b.WriteByte(bbConsonants[b1>>2&15])
			b.WriteByte(bbVowels[((b1&3)+seed/6)%6])
			if i+1 < rounds {
				b2 := int(data[2*i+1])
				b.WriteByte(bbConsonants[b2>>4&15])
				b.WriteByte('-')
				b.WriteByte(bbConsonants[b2&15])
				seed = (seed*5 + b1*7 + b2) % 36
			}
		} else {
			b.WriteByte(bbVowels[seed%6])
			b.WriteByte(bbConsonants[bbTerminator])
			b.WriteByte(bbVowels[seed/6])
		}
	}
	b.WriteByte('x')
	return b.String(), nil
}

// Decode parses and verifies Bubble Babble. Lenient strips whitespace and
// folds case.
func (*BubbleBabbleCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	text = mbase.Normalize(text, mode, mbase.CaseLower)
	if text == "" {
		return []byte{}, nil
	}
	if len(text) < 5 || text[0] != 'x' || text[len(text)-1] != 'x' {
		return nil, mbase.NewInputError("Bubble Babble must start and end with 'x'")
	}
	if len(text)%6 != 5 {
		return nil, mbase.NewLengthErrorMsg(mbase.MultipleOf(6), len(text),
			"Bubble Babble length must be 6n+5")
	}
	for i, r := range text {
		if r >= 0x80 {
			return nil, mbase.NewCharacterError(r, len([]rune(text[:i])))
		}
	}

	out := make([]byte, 0, len(text)/3)
	seed := 1
	for pos := 1; ; pos += 6 {
		if pos+4 == len(text) {
			a, err := bbIndex(bbVowels, text, pos)
			if err != nil {
				return nil, err
			}
			m, err := bbIndex(bbConsonants, text, pos+1)
			if err != nil {
				return nil, err
			}
			c, err := bbIndex(bbVowels, text, pos+2)
			if err != nil {
				return nil, err
			}
			if m == bbTerminator {
				if a != seed%6 || c != seed/6 {
					return nil, mbase.NewChecksumError("final tuple does not match running checksum")
				}
				return out, nil
			}
			b1, err := bbByte(a, m, c, seed)
			if err != nil {
				return nil, err
			}
			return append(out, b1), nil
		}

		tuple := make([]int, 0, 5)
		for j, set := range []string{bbVowels, bbConsonants, bbVowels, bbConsonants} {
			d, err := bbIndex(set, text, pos+j)
			if err != nil {
				return nil, err
			}
			tuple = append(tuple, d)
		}
		if text[pos+4] != '-' {
			return nil, mbase.NewCharacterError(rune(text[pos+4]), pos+4)
		}
		d, err := bbIndex(bbConsonants, text, pos+5)
		if err != nil {
			return nil, err
		}
		b1, err := bbByte(tuple[0], tuple[1], tuple[2], seed)
		if err != nil {
			return nil, err
		}
		if tuple[3] >= bbTerminator || d >= bbTerminator {
			return nil, mbase.NewCharacterError('x', pos+3)
		}
		b2 := byte(tuple[3]<<4 | d)
		out = append(out, b1, b2)
		seed = (seed*5 + int(b1)*7 + int(b2)) % 36
	}
}

func bbIndex(set, text string, pos int) (int, error) {
	d := strings.IndexByte(set, text[pos])
	if d < 0 {
		return 0, mbase.NewCharacterError(rune(text[pos]), pos)
	}
	return d, nil
}

// bbByte recovers one byte from a vowel-consonant-vowel triple. Vowel
// offsets of 4 or 5 cannot come from a real byte.
func bbByte(a, m, c, seed int) (byte, error) {
	if m >= bbTerminator {
		return 0, mbase.NewInputError("unexpected terminator consonant")
	}
	hi := (a - seed%6 + 6) % 6
	lo := (c - seed/6 + 6) % 6
	if hi >= 4 || lo >= 4 {
		return 0, mbase.NewChecksumError("tuple vowels do not match running checksum")
	}
	return byte(hi<<6 | m<<2 | lo), nil
}

// DetectScore rates text as Bubble Babble.
func (*BubbleBabbleCodec) DetectScore(text string) mbase.Candidate {
	clean := strings.ToLower(mbase.StripSpace(text))
	if clean == "" {
		return mbase.EmptyCandidate("bubblebabble")
	}
	c := mbase.NewCandidate("bubblebabble")
	if !strings.HasPrefix(clean, "x") || !strings.HasSuffix(clean, "x") {
		return c
	}
	ratio := mbase.RatioFunc(clean, func(r rune) bool {
		return strings.ContainsRune(bbVowels+bbConsonants+"-", r)
	})
	switch {
	case ratio > 0.95 && strings.Contains(clean, "-"):
		c.Score(mbase.ConfidenceAlphabet, "valid bubble babble format")
	case ratio > 0.9:
		c.Score(mbase.ConfidencePartial, "partial match")
	}
	return c
}
