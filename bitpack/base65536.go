package bitpack

import (
	"strings"

	"github.com/zoobzio/mbase"
)

// blockStart maps a high byte to the 256-code-point block carrying it.
var blockStart = [256]rune{
	0x3400, 0x3500, 0x3600, 0x3700, 0x3800, 0x3900, 0x3A00, 0x3B00, 0x3C00, 0x3D00, 0x3E00, 0x3F00, 0x4000,
	0x4100, 0x4200, 0x4300, 0x4400, 0x4500, 0x4600, 0x4700, 0x4800, 0x4900, 0x4A00, 0x4B00, 0x4C00, 0x4E00,
	0x4F00, 0x5000, 0x5100, 0x5200, 0x5300, 0x5400, 0x5500, 0x5600, 0x5700, 0x5800, 0x5900, 0x5A00, 0x5B00,
	0x5C00, 0x5D00, 0x5E00, 0x5F00, 0x6000, 0x6100, 0x6200, 0x6300, 0x6400, 0x6500, 0x6600, 0x6700, 0x6800,
	0x6900, 0x6A00, 0x6B00, 0x6C00, 0x6D00, 0x6E00, 0x6F00, 0x7000, 0x7100, 0x7200, 0x7300, 0x7400, 0x7500,
	0x7600, 0x7700, 0x7800, 0x7900, 0x7A00, 0x7B00, 0x7C00, 0x7D00, 0x7E00, 0x7F00, 0x8000, 0x8100, 0x8200,
	0x8300, 0x8400, 0x8500, 0x8600, 0x8700, 0x8800, 0x8900, 0x8A00, 0x8B00, 0x8C00, 0x8D00, 0x8E00, 0x8F00,
	0x9000, 0x9100, 0x9200, 0x9300, 0x9400, 0x9500, 0x9600, 0x9700, 0x9800, 0x9900, 0x9A00, 0x9B00, 0x9C00,
	0x9D00, 0x9E00, 0x9F00, 0xA000, 0xA100, 0xA200, 0xA300, 0xA400, 0xA500, 0xA600, 0xA700, 0xA800, 0xA900,
	0xAA00, 0xAB00, 0xAC00, 0xAD00, 0xAE00, 0xAF00, 0xB000, 0xB100, 0xB200, 0xB300, 0xB400, 0xB500, 0xB600,
	0xB700, 0xB800, 0xB900, 0xBA00, 0xBB00, 0xBC00, 0xBD00, 0xBE00, 0xBF00, 0xC000, 0xC100, 0xC200, 0xC300,
	0xC400, 0xC500, 0xC600, 0xC700, 0xC800, 0xC900, 0xCA00, 0xCB00, 0xCC00, 0xCD00, 0xCE00, 0xCF00, 0xD000,
	0xD100, 0xD200, 0xD300, 0xD400, 0xD500, 0xD600, 0xD700, 0x10000, 0x10100, 0x10200, 0x10300, 0x10400,
	0x10500, 0x10600, 0x10700, 0x10800, 0x10900, 0x10A00, 0x10B00, 0x10C00, 0x10D00, 0x10E00, 0x10F00, 0x11000,
	0x11100, 0x11200, 0x11300, 0x11400, 0x11500, 0x11600, 0x11700, 0x11800, 0x11900, 0x11A00, 0x11B00, 0x11C00,
	0x11D00, 0x11E00, 0x11F00, 0x12000, 0x12100, 0x12200, 0x12300, 0x12400, 0x12500, 0x13000, 0x13100, 0x13200,
	0x13300, 0x13400, 0x14400, 0x14500, 0x14600, 0x16800, 0x16900, 0x16A00, 0x16B00, 0x16F00, 0x17000, 0x18700,
	0x18800, 0x18900, 0x18A00, 0x18B00, 0x18C00, 0x18D00, 0x1B000, 0x1B100, 0x1B200, 0x1B300, 0x1BC00, 0x1D000,
	0x1D100, 0x1D200, 0x1D300, 0x1D400, 0x1D500, 0x1D600, 0x1D700, 0x1E800, 0x1E900, 0x1EC00, 0x1ED00, 0x1EE00,
	0x1F000, 0x1F100, 0x1F200, 0x1F300, 0x1F400, 0x1F500, 0x1F600, 0x1F700, 0x1F800, 0x1F900, 0x1FA00, 0x1FB00,
	0x20000, 0x2A700, 0x2B700, 0x2B800,
}

// padBlock carries a lone trailing byte.
const padBlock rune = 0x1800

var blockIndex = func() map[rune]byte {
	m := make(map[rune]byte, len(blockStart))
	for hi, base := range blockStart {
		m[base] = byte(hi)
	}
	return m
}()

// Base65536Codec packs two bytes into one code point.
type Base65536Codec struct{}

// Base65536 returns the two-bytes-per-code-point codec.
func Base65536() *Base65536Codec { return &Base65536Codec{} }

// Meta returns the codec's descriptor.
func (*Base65536Codec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "base65536",
		Aliases:     []string{"b65536"},
		Alphabet:    "Unicode BMP safe blocks",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseSensitive,
		Description: "Base65536 encoding (2 bytes per Unicode char)",
	}
}

// Encode renders each byte pair as blockStart[hi]+lo; an odd final byte
// lands in the padding block.
func (*Base65536Codec) Encode(data []byte) (string, error) {
	var b strings.Builder
	b.Grow((len(data) + 1) / 2 * 4)
	for i := 0; i < len(data); i += 2 {
		if i+1 == len(data) {
			b.WriteRune(padBlock + rune(data[i]))
			break
		}
		b.WriteRune(blockStart[data[i]] + rune(data[i+1]))
	}
	return b.String(), nil
}

// Decode inverts Encode. A padding-block code point is only valid last.
func (*Base65536Codec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	if mode == mbase.ModeLenient {
		text = stripUnicodeSpace(text)
	}
	runes := []rune(text)
	out := make([]byte, 0, len(runes)*2)
	for pos, r := range runes {
		base, lo := r&^0xff, byte(r&0xff)
		if base == padBlock {
			if pos != len(runes)-1 {
				return nil, mbase.NewInputError("padding character in non-final position")
			}
			out = append(out, lo)
			continue
		}
		hi, ok := blockIndex[base]
		if !ok {
			return nil, mbase.NewCharacterError(r, pos)
		}
		out = append(out, hi, lo)
	}
	return out, nil
}

func isBase65536(r rune) bool {
	base := r &^ 0xff
	if base == padBlock {
		return true
	}
	_, ok := blockIndex[base]
	return ok
}

// DetectScore rates text as base65536.
func (*Base65536Codec) DetectScore(text string) mbase.Candidate {
	clean := stripUnicodeSpace(text)
	if clean == "" {
		return mbase.EmptyCandidate("base65536")
	}
	c := mbase.NewCandidate("base65536")
	ratio := mbase.RatioFunc(clean, isBase65536)
	if ratio == 0 {
		c.Reasons = append(c.Reasons, "no valid base65536 characters")
		return c
	}
	high := strings.IndexFunc(clean, func(r rune) bool { return r <= 0x3000 }) < 0
	switch {
	case ratio > 0.9 && high:
		c.Score(0.85, "all high Unicode")
	case ratio > 0.8:
		c.Score(mbase.ConfidenceAlphabet, "mostly base65536 characters")
	default:
		c.Score(ratio*mbase.ConfidencePartial, "mixed")
	}
	return c
}
