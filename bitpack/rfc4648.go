package bitpack

import (
	"fmt"
	"strings"

	"github.com/zoobzio/mbase"
)

// RFC 4648 and related 32/64-symbol alphabets.
const (
	Base32LowerAlphabet    = "abcdefghijklmnopqrstuvwxyz234567"
	Base32UpperAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	Base32HexLowerAlphabet = "0123456789abcdefghijklmnopqrstuv"
	Base32HexUpperAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	ZBase32Alphabet        = "ybndrfg8ejkmcpqxot1uwisza345h769"
	WordSafeAlphabet       = "23456789CFGHJMPQRVWXcfghjmpqrvwx"
	Base64Alphabet         = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	Base64URLAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

const padChar = '='

// Block is a power-of-two alphabet codec with optional '=' padding.
type Block struct {
	meta     mbase.Metadata
	alphabet *mbase.Alphabet
	bits     uint
	score    func(b *Block, c *mbase.Candidate, text string)
}

// Meta returns the codec's descriptor.
func (b *Block) Meta() mbase.Metadata { return b.meta }

func (b *Block) padded() bool { return b.meta.Padding == mbase.PaddingRequired }

// Encode packs data and pads to a whole group when the codec requires it.
func (b *Block) Encode(data []byte) (string, error) {
	text := Pack(data, b.bits, b.alphabet)
	if b.padded() {
		text += strings.Repeat(string(padChar), padCount(len(text), groupSymbols(b.bits)))
	}
	return text, nil
}

func padCount(symbols, group int) int {
	return (group - symbols%group) % group
}

// Decode parses text under mode.
//
// Strict requires the canonical form: exact case, padding exactly per the
// codec's rule, and zero trailing bits. Lenient strips whitespace, folds
// case, accepts either padding form, and ignores trailing bits.
func (b *Block) Decode(text string, mode mbase.Mode) ([]byte, error) {
	if mode == mbase.ModeLenient {
		body := strings.TrimRight(mbase.Normalize(text, mode, b.meta.Case), string(padChar))
		data, _, err := Unpack(body, b.bits, b.alphabet.Index)
		return data, err
	}

	body := strings.TrimRight(text, string(padChar))
	pads := len(text) - len(body)
	if err := b.alphabet.Check(body); err != nil {
		return nil, err
	}
	if err := b.checkPadding(len([]rune(body)), pads); err != nil {
		return nil, err
	}
	data, slack, err := Unpack(body, b.bits, b.alphabet.Index)
	if err != nil {
		return nil, err
	}
	if slack {
		return nil, mbase.NewPaddingError("non-zero trailing bits")
	}
	return data, nil
}

func (b *Block) checkPadding(symbols, pads int) error {
	if !b.padded() {
		if pads > 0 {
			return mbase.NewPaddingError("padding not allowed")
		}
		return nil
	}
	group := groupSymbols(b.bits)
	want := padCount(symbols, group)
	switch {
	case pads == 0 && want > 0:
		return mbase.NewPaddingError("padding required")
	case b.bits == 6 && pads > 2:
		return mbase.NewPaddingError("too many padding characters")
	case pads != want:
		return mbase.NewPaddingError(fmt.Sprintf("expected %d padding characters, got %d", want, pads))
	}
	return nil
}

// DetectScore rates text against the codec's heuristic.
func (b *Block) DetectScore(text string) mbase.Candidate {
	if text == "" {
		return mbase.EmptyCandidate(b.meta.Name)
	}
	c := mbase.NewCandidate(b.meta.Name)
	if conf, ok := mbase.PrefixScore(text, b.meta.Prefix, b.alphabet, padChar); ok {
		c.Score(conf, fmt.Sprintf("multibase prefix '%c' detected", b.meta.Prefix))
	}
	b.score(b, &c, text)
	return c
}

func (b *Block) ratio(text string) float64 {
	return mbase.RatioFunc(text, func(r rune) bool {
		return b.alphabet.Contains(r) || r == padChar
	})
}

// paddingBonus nudges a scored candidate up when the presence of '='
// matches the codec's padding rule.
func paddingBonus(b *Block, c *mbase.Candidate, text string, bonus float64) {
	if c.Confidence == 0 {
		return
	}
	has := strings.ContainsRune(text, padChar)
	switch {
	case b.padded() && has:
		c.Score(c.Confidence+bonus, "has expected padding")
	case !b.padded() && !has:
		c.Score(c.Confidence+bonus/2, "no padding as expected")
	case b.padded() && !has:
		c.Warn("expected padding not found")
	}
}

func base32Score(b *Block, c *mbase.Candidate, text string) {
	ratio := b.ratio(text)
	switch {
	case ratio == 1:
		c.Score(mbase.ConfidenceAlphabet, "all characters valid")
	case ratio >= 0.9:
		c.Score(mbase.ConfidenceWeak, fmt.Sprintf("%.0f%% characters valid", ratio*100))
	}
	paddingBonus(b, c, text, 0.1)
}

func base64Score(b *Block, c *mbase.Candidate, text string) {
	ratio := b.ratio(text)
	switch {
	case ratio == 1:
		c.Score(mbase.ConfidenceAlphabet, "all characters valid")
	case ratio >= 0.9:
		c.Score(0.4, "")
		c.Warn(fmt.Sprintf("%.1f%% invalid characters", (1-ratio)*100))
	default:
		c.Warn("too many invalid characters")
		return
	}
	paddingBonus(b, c, text, 0.1)
	if len([]rune(strings.TrimRight(text, string(padChar))))%4 == 1 {
		c.Set(c.Confidence*0.5, "")
		c.Warn("invalid length (mod 4 = 1)")
	}
}

func newBlock(meta mbase.Metadata, bits uint, score func(*Block, *mbase.Candidate, string)) *Block {
	return &Block{
		meta:     meta,
		alphabet: mbase.NewAlphabet(meta.Alphabet),
		bits:     bits,
		score:    score,
	}
}

func blockMeta(name string, aliases []string, alphabet string, prefix rune, pad mbase.PaddingRule, class mbase.CaseClass, desc string) mbase.Metadata {
	return mbase.Metadata{
		Name:        name,
		Aliases:     aliases,
		Alphabet:    alphabet,
		Prefix:      prefix,
		Padding:     pad,
		Case:        class,
		Description: desc,
	}
}

// Base32Lower returns RFC 4648 base32, lower case, unpadded (multibase b).
func Base32Lower() *Block {
	return newBlock(blockMeta("base32lower", []string{"base32", "b32"}, Base32LowerAlphabet, 'b',
		mbase.PaddingNone, mbase.CaseLower, "RFC4648 Base32 lowercase without padding"), 5, base32Score)
}

// Base32Upper returns RFC 4648 base32, upper case, unpadded (multibase B).
func Base32Upper() *Block {
	return newBlock(blockMeta("base32upper", []string{"B32"}, Base32UpperAlphabet, 'B',
		mbase.PaddingNone, mbase.CaseUpper, "RFC4648 Base32 uppercase without padding"), 5, base32Score)
}

// Base32PadLower returns RFC 4648 base32, lower case, padded (multibase c).
func Base32PadLower() *Block {
	return newBlock(blockMeta("base32padlower", []string{"base32pad", "b32pad"}, Base32LowerAlphabet, 'c',
		mbase.PaddingRequired, mbase.CaseLower, "RFC4648 Base32 lowercase with padding"), 5, base32Score)
}

// Base32PadUpper returns RFC 4648 base32, upper case, padded (multibase C).
func Base32PadUpper() *Block {
	return newBlock(blockMeta("base32padupper", []string{"B32PAD"}, Base32UpperAlphabet, 'C',
		mbase.PaddingRequired, mbase.CaseUpper, "RFC4648 Base32 uppercase with padding"), 5, base32Score)
}

// Base32HexLower returns RFC 4648 base32hex, lower case, unpadded (multibase v).
func Base32HexLower() *Block {
	return newBlock(blockMeta("base32hexlower", []string{"base32hex", "b32hex"}, Base32HexLowerAlphabet, 'v',
		mbase.PaddingNone, mbase.CaseLower, "RFC4648 Base32hex lowercase without padding"), 5, base32Score)
}

// Base32HexUpper returns RFC 4648 base32hex, upper case, unpadded (multibase V).
func Base32HexUpper() *Block {
	return newBlock(blockMeta("base32hexupper", []string{"B32HEX"}, Base32HexUpperAlphabet, 'V',
		mbase.PaddingNone, mbase.CaseUpper, "RFC4648 Base32hex uppercase without padding"), 5, base32Score)
}

// Base32HexPadLower returns RFC 4648 base32hex, lower case, padded (multibase t).
func Base32HexPadLower() *Block {
	return newBlock(blockMeta("base32hexpadlower", []string{"base32hexpad", "b32hexpad"}, Base32HexLowerAlphabet, 't',
		mbase.PaddingRequired, mbase.CaseLower, "RFC4648 Base32hex lowercase with padding"), 5, base32Score)
}

// Base32HexPadUpper returns RFC 4648 base32hex, upper case, padded (multibase T).
func Base32HexPadUpper() *Block {
	return newBlock(blockMeta("base32hexpadupper", []string{"B32HEXPAD"}, Base32HexUpperAlphabet, 'T',
		mbase.PaddingRequired, mbase.CaseUpper, "RFC4648 Base32hex uppercase with padding"), 5, base32Score)
}

// ZBase32 returns z-base-32 (multibase h).
func ZBase32() *Block {
	return newBlock(blockMeta("zbase32", []string{"z32", "base32z"}, ZBase32Alphabet, 'h',
		mbase.PaddingNone, mbase.CaseLower, "z-base-32 human-oriented encoding"), 5,
		func(b *Block, c *mbase.Candidate, text string) {
			if b.alphabet.Ratio(text) == 1 {
				c.Score(mbase.ConfidencePartial, "all characters valid")
			}
		})
}

// Base32WordSafe returns base32 over the Word-safe alphabet, which avoids
// symbols that spell common English words. Case is significant.
func Base32WordSafe() *Block {
	return newBlock(blockMeta("base32wordsafe", []string{"base32ws"}, WordSafeAlphabet, 0,
		mbase.PaddingNone, mbase.CaseSensitive, "Base32 Word-safe alphabet (avoids spelling words)"), 5,
		func(b *Block, c *mbase.Candidate, text string) {
			ratio := b.alphabet.Ratio(text)
			switch {
			case ratio > 0.95:
				c.Score(mbase.ConfidenceAlphabet, "word-safe alphabet match")
			case ratio > 0.8:
				c.Score(mbase.ConfidencePartial, "mostly word-safe alphabet")
			}
		})
}

// Base64 returns RFC 4648 base64, unpadded (multibase m).
func Base64() *Block {
	return newBlock(blockMeta("base64", []string{"b64", "std64"}, Base64Alphabet, 'm',
		mbase.PaddingNone, mbase.CaseSensitive, "RFC4648 Base64 without padding"), 6, base64Score)
}

// Base64Pad returns RFC 4648 base64 with padding (multibase M).
func Base64Pad() *Block {
	return newBlock(blockMeta("base64pad", []string{"b64pad"}, Base64Alphabet, 'M',
		mbase.PaddingRequired, mbase.CaseSensitive, "RFC4648 Base64 with required padding"), 6, base64Score)
}

// Base64URL returns RFC 4648 base64url, unpadded (multibase u).
func Base64URL() *Block {
	return newBlock(blockMeta("base64url", []string{"b64url", "url64"}, Base64URLAlphabet, 'u',
		mbase.PaddingNone, mbase.CaseSensitive, "RFC4648 Base64url without padding"), 6, base64Score)
}

// Base64URLPad returns RFC 4648 base64url with padding (multibase U).
func Base64URLPad() *Block {
	return newBlock(blockMeta("base64urlpad", []string{"b64urlpad"}, Base64URLAlphabet, 'U',
		mbase.PaddingRequired, mbase.CaseSensitive, "RFC4648 Base64url with required padding"), 6, base64Score)
}
