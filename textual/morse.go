package textual

import (
	"fmt"
	"strings"

	"github.com/zoobzio/mbase"
)

const morseWordSep = "/"

var morseTable = map[byte]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '!': "-.-.--", '/': "-..-.",
	'@': ".--.-.", '=': "-...-",
	' ': morseWordSep,
}

var morseReverse = func() map[string]byte {
	m := make(map[string]byte, len(morseTable))
	for ch, code := range morseTable {
		if ch != ' ' {
			m[code] = ch
		}
	}
	return m
}()

// MorseCodec is International Morse code: letters separated by a space,
// words by " / ".
type MorseCodec struct{}

// Morse returns the Morse codec.
func Morse() *MorseCodec { return &MorseCodec{} }

// Meta returns the codec's descriptor.
func (*MorseCodec) Meta() mbase.Metadata {
	return mbase.Metadata{
		Name:        "morse",
		Aliases:     []string{"morsecode"},
		Alphabet:    ".-/ ",
		Padding:     mbase.PaddingNone,
		Case:        mbase.CaseInsensitive,
		Description: "International Morse code (space-separated)",
	}
}

// Encode upper-cases letters and skips characters Morse cannot carry. It
// fails only when nothing at all is encodable.
func (*MorseCodec) Encode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	codes := make([]string, 0, len(data))
	for _, b := range data {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if code, ok := morseTable[b]; ok {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return "", mbase.NewInputError("no encodable characters found")
	}
	return strings.Join(codes, " "), nil
}

func isMorseSymbol(r rune) bool {
	return r == '.' || r == '-' || r == '/' || r == ' '
}

// Decode reads space-separated codes. Lenient also accepts any whitespace
// between codes.
func (*MorseCodec) Decode(text string, mode mbase.Mode) ([]byte, error) {
	pos := 0
	for _, r := range text {
		if !isMorseSymbol(r) && !(mode == mbase.ModeLenient && mbase.IsASCIISpace(r)) {
			return nil, mbase.NewCharacterError(r, pos)
		}
		pos++
	}
	if mode == mbase.ModeLenient {
		text = strings.TrimSpace(text)
	}
	var out []byte
	for i, word := range strings.Split(text, morseWordSep) {
		if i > 0 {
			out = append(out, ' ')
		}
		for _, code := range strings.Fields(word) {
			ch, ok := morseReverse[code]
			if !ok {
				return nil, mbase.NewInputErrorf("unknown morse sequence: %s", code)
			}
			out = append(out, ch)
		}
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// DetectScore rates text made only of dots, dashes, slashes and spaces.
func (*MorseCodec) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate("morse")
	}
	c := mbase.NewCandidate("morse")
	ratio := mbase.RatioFunc(text, isMorseSymbol)
	switch {
	case ratio == 1:
		c.Score(mbase.ConfidenceAlphabet, "all characters are morse symbols")
	case ratio > 0.8:
		c.Score(mbase.ConfidenceWeak, fmt.Sprintf("%.1f%% morse characters", ratio*100))
	}
	return c
}
