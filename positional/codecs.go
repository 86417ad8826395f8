package positional

import (
	"fmt"
	"strings"

	"github.com/zoobzio/mbase"
)

// Alphabets, digit value order.
const (
	Base36LowerAlphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
	Base36UpperAlphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Base37Alphabet       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ "
	Base58BTCAlphabet    = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	Base58FlickrAlphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"
	Base58RippleAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"
	Base62Alphabet       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	Base92Alphabet       = "!#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[]^_`abcdefghijklmnopqrstuvwxyz{|}~"
)

var (
	base36Lower  = mbase.NewAlphabet(Base36LowerAlphabet)
	base36Upper  = mbase.NewAlphabet(Base36UpperAlphabet)
	base37       = mbase.NewAlphabet(Base37Alphabet)
	base58BTC    = mbase.NewAlphabet(Base58BTCAlphabet)
	base58Flickr = mbase.NewAlphabet(Base58FlickrAlphabet)
	base58Ripple = mbase.NewAlphabet(Base58RippleAlphabet)
	base62       = mbase.NewAlphabet(Base62Alphabet)
	base92       = mbase.NewAlphabet(Base92Alphabet)
)

// BTC returns the Bitcoin base58 alphabet, shared with Base58Check.
func BTC() *mbase.Alphabet { return base58BTC }

// Codec is one positional codec: an alphabet plus its normalization and
// detection heuristic.
type Codec struct {
	meta      mbase.Metadata
	alphabet  *mbase.Alphabet
	normalize func(text string, mode mbase.Mode) string
	score     func(c *mbase.Candidate, text string)
}

// Meta returns the codec's descriptor.
func (c *Codec) Meta() mbase.Metadata { return c.meta }

// Encode renders data in the codec's radix.
func (c *Codec) Encode(data []byte) (string, error) {
	return EncodeBytes(data, c.alphabet), nil
}

// Decode parses text under mode.
func (c *Codec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	return DecodeString(c.normalize(text, mode), c.alphabet)
}

// Validate checks the alphabet without running the conversion.
func (c *Codec) Validate(text string, mode mbase.Mode) error {
	return c.alphabet.Check(c.normalize(text, mode))
}

// DetectScore rates text against the codec's heuristic.
func (c *Codec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate(c.meta.Name)
	}
	cand := mbase.NewCandidate(c.meta.Name)
	if conf, ok := mbase.PrefixScore(text, c.meta.Prefix, c.alphabet); ok {
		cand.Score(conf, fmt.Sprintf("multibase prefix '%c' detected", c.meta.Prefix))
	}
	c.score(&cand, text)
	return cand
}

// byCase applies the shared whitespace and case rule of the codec's class.
func byCase(class mbase.CaseClass) func(string, mbase.Mode) string {
	return func(text string, mode mbase.Mode) string {
		return mbase.Normalize(text, mode, class)
	}
}

// Base36Lower returns the lower-case base36 codec (multibase k).
func Base36Lower() *Codec {
	return &Codec{
		meta: mbase.Metadata{
			Name:        "base36lower",
			Aliases:     []string{"base36", "b36"},
			Alphabet:    Base36LowerAlphabet,
			Prefix:      'k',
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseLower,
			Description: "Base36 lowercase (0-9a-z)",
		},
		alphabet:  base36Lower,
		normalize: byCase(mbase.CaseLower),
		score:     alnumScore,
	}
}

// Base36Upper returns the upper-case base36 codec (multibase K).
func Base36Upper() *Codec {
	return &Codec{
		meta: mbase.Metadata{
			Name:        "base36upper",
			Aliases:     []string{"B36"},
			Alphabet:    Base36UpperAlphabet,
			Prefix:      'K',
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseUpper,
			Description: "Base36 uppercase (0-9A-Z)",
		},
		alphabet:  base36Upper,
		normalize: byCase(mbase.CaseUpper),
		score:     alnumScore,
	}
}

func alnumScore(c *mbase.Candidate, text string) {
	if mbase.RatioFunc(text, isASCIIAlnum) == 1 {
		c.Score(mbase.ConfidencePartial, "all characters alphanumeric")
	}
}

func isASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Base37 returns base36 extended with a literal space. Letters are case
// insensitive in both modes; lenient drops whitespace other than space.
func Base37() *Codec {
	return &Codec{
		meta: mbase.Metadata{
			Name:        "base37",
			Aliases:     []string{"b37"},
			Alphabet:    Base37Alphabet,
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseInsensitive,
			Description: "Base37 (Base36 + space character)",
		},
		alphabet: base37,
		normalize: func(text string, mode mbase.Mode) string {
			if mode == mbase.ModeLenient {
				text = strings.Map(func(r rune) rune {
					if r != ' ' && mbase.IsASCIISpace(r) {
						return -1
					}
					return r
				}, text)
			}
			return mbase.FoldCase(text, mbase.CaseUpper)
		},
		score: func(c *mbase.Candidate, text string) {
			ratio := base37.Ratio(mbase.FoldCase(text, mbase.CaseUpper))
			switch {
			case ratio > 0.95 && strings.ContainsRune(text, ' '):
				c.Score(mbase.ConfidencePartial, "high ratio with space")
			case ratio > 0.95:
				c.Score(mbase.ConfidenceWeak, "high ratio")
			}
		},
	}
}

func base58Score(a *mbase.Alphabet, label string) func(*mbase.Candidate, string) {
	return func(c *mbase.Candidate, text string) {
		ratio := a.Ratio(text)
		switch {
		case ratio == 1:
			c.Score(mbase.ConfidencePartial, "all characters in "+label+" alphabet")
		case ratio > 0.9:
			c.Score(mbase.ConfidenceWeak, fmt.Sprintf("%.0f%% characters valid", ratio*100))
		}
	}
}

// Base58Score applies the Bitcoin-alphabet base58 heuristic to c. Codecs
// layered on base58 reuse it before adding their own evidence.
func Base58Score(c *mbase.Candidate, text string) {
	base58Score(base58BTC, "base58")(c, text)
}

// Base58BTC returns base58 over the Bitcoin alphabet (multibase z).
func Base58BTC() *Codec {
	return &Codec{
		meta: mbase.Metadata{
			Name:        "base58btc",
			Aliases:     []string{"base58", "b58"},
			Alphabet:    Base58BTCAlphabet,
			Prefix:      'z',
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseSensitive,
			Description: "Base58 Bitcoin alphabet",
		},
		alphabet:  base58BTC,
		normalize: mbase.Clean,
		score:     base58Score(base58BTC, "base58"),
	}
}

// Base58Flickr returns base58 over the Flickr alphabet (multibase Z).
func Base58Flickr() *Codec {
	return &Codec{
		meta: mbase.Metadata{
			Name:        "base58flickr",
			Aliases:     []string{"b58flickr"},
			Alphabet:    Base58FlickrAlphabet,
			Prefix:      'Z',
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseSensitive,
			Description: "Base58 Flickr alphabet",
		},
		alphabet:  base58Flickr,
		normalize: mbase.Clean,
		score:     base58Score(base58Flickr, "base58"),
	}
}

// Base58Ripple returns base58 over the Ripple (XRP) alphabet.
func Base58Ripple() *Codec {
	return &Codec{
		meta: mbase.Metadata{
			Name:        "base58ripple",
			Aliases:     []string{"base58xrp", "b58ripple"},
			Alphabet:    Base58RippleAlphabet,
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseSensitive,
			Description: "Base58 Ripple (XRP) alphabet",
		},
		alphabet:  base58Ripple,
		normalize: mbase.Clean,
		score:     base58Score(base58Ripple, "ripple"),
	}
}

// Base62 returns base62 over 0-9A-Za-z.
func Base62() *Codec {
	return &Codec{
		meta: mbase.Metadata{
			Name:        "base62",
			Aliases:     []string{"b62"},
			Alphabet:    Base62Alphabet,
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseSensitive,
			Description: "Base62 (0-9A-Za-z) big-integer encoding",
		},
		alphabet:  base62,
		normalize: mbase.Clean,
		score: func(c *mbase.Candidate, text string) {
			if base62.Ratio(text) == 1 {
				c.Score(mbase.ConfidenceWeak, "all characters alphanumeric")
			}
			c.Warn("base62 has no standard alphabet order")
		},
	}
}

// Base92 returns base92 over 92 printable ASCII symbols.
func Base92() *Codec {
	return &Codec{
		meta: mbase.Metadata{
			Name:        "base92",
			Aliases:     []string{"b92"},
			Alphabet:    Base92Alphabet,
			Padding:     mbase.PaddingNone,
			Case:        mbase.CaseSensitive,
			Description: "Base92 big-integer encoding over printable ASCII",
		},
		alphabet:  base92,
		normalize: mbase.Clean,
		score: func(c *mbase.Candidate, text string) {
			if base92.Ratio(text) == 1 {
				c.Score(mbase.ConfidencePartial, "all characters in alphabet")
			}
		},
	}
}
