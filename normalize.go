package mbase

import (
	"strings"
	"unicode/utf8"
)

// Confidence bands shared by every detection heuristic.
const (
	ConfidenceMultibase = 0.95
	ConfidenceAlphabet  = 0.70
	ConfidencePartial   = 0.50
	ConfidenceWeak      = 0.30
)

// IsASCIISpace reports whether r is ASCII whitespace.
func IsASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// StripSpace removes every ASCII whitespace character from s.
func StripSpace(s string) string {
	if strings.IndexFunc(s, IsASCIISpace) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !IsASCIISpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Clean applies the mode's whitespace rule: Lenient strips ASCII
// whitespace, Strict leaves text untouched.
func Clean(text string, mode Mode) string {
	if mode == ModeLenient {
		return StripSpace(text)
	}
	return text
}

// FoldCase maps text onto the canonical case of class. Only ASCII letters
// are folded; other symbols are left for the alphabet check to reject.
func FoldCase(text string, class CaseClass) string {
	switch class {
	case CaseLower:
		return asciiLower(text)
	case CaseUpper:
		return asciiUpper(text)
	}
	return text
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// Normalize runs the shared Lenient pipeline: strip whitespace, then fold
// case for Lower/Upper codecs. Strict returns text unchanged.
func Normalize(text string, mode Mode, class CaseClass) string {
	if mode != ModeLenient {
		return text
	}
	return FoldCase(StripSpace(text), class)
}

// Alphabet is an ordered symbol set with a prebuilt reverse index.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
	text    string
}

// NewAlphabet builds an Alphabet. It panics on duplicate symbols, which
// would make decoding ambiguous.
func NewAlphabet(symbols string) *Alphabet {
	a := &Alphabet{
		symbols: []rune(symbols),
		index:   make(map[rune]int, utf8.RuneCountInString(symbols)),
		text:    symbols,
	}
	for i, r := range a.symbols {
		if _, dup := a.index[r]; dup {
			panic("mbase: duplicate alphabet symbol " + string(r))
		}
		a.index[r] = i
	}
	return a
}

// Len returns the radix.
func (a *Alphabet) Len() int { return len(a.symbols) }

// At returns the symbol for digit i.
func (a *Alphabet) At(i int) rune { return a.symbols[i] }

// Index returns the digit for r, or -1.
func (a *Alphabet) Index(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return -1
}

// Contains reports whether r is a symbol.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// String returns the symbols in order.
func (a *Alphabet) String() string { return a.text }

// Check returns a CharacterError for the first rune of text outside the
// alphabet. Runes accepted by extra are skipped.
func (a *Alphabet) Check(text string, extra ...rune) error {
	pos := 0
	for _, r := range text {
		if !a.Contains(r) && !containsRune(extra, r) {
			return NewCharacterError(r, pos)
		}
		pos++
	}
	return nil
}

// Ratio returns the fraction of runes in text that belong to the alphabet.
func (a *Alphabet) Ratio(text string) float64 {
	return RatioFunc(text, a.Contains)
}

func containsRune(set []rune, r rune) bool {
	for _, s := range set {
		if s == r {
			return true
		}
	}
	return false
}

// RatioFunc returns the fraction of runes in text satisfying f.
func RatioFunc(text string, f func(rune) bool) float64 {
	total, hits := 0, 0
	for _, r := range text {
		total++
		if f(r) {
			hits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// PrefixScore returns the multibase confidence when text starts with prefix
// and the remainder is non-empty and fully inside alphabet.
func PrefixScore(text string, prefix rune, a *Alphabet, extra ...rune) (float64, bool) {
	if prefix == 0 {
		return 0, false
	}
	first, size := utf8.DecodeRuneInString(text)
	if first != prefix || size == len(text) {
		return 0, false
	}
	if a.Check(text[size:], extra...) != nil {
		return 0, false
	}
	return ConfidenceMultibase, true
}
