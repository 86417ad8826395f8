package mbase

import "fmt"

// Mode governs how strictly Decode interprets its input.
type Mode string

const (
	// ModeStrict requires the exact canonical form.
	ModeStrict Mode = "strict"

	// ModeLenient strips ASCII whitespace and applies each codec's
	// documented repairs: case folding, padding repair, confusable glyphs.
	ModeLenient Mode = "lenient"
)

// PaddingRule states whether a codec's canonical form carries padding.
type PaddingRule string

const (
	// PaddingNone forbids padding characters.
	PaddingNone PaddingRule = "none"

	// PaddingRequired demands padding up to the codec's group size.
	PaddingRequired PaddingRule = "required"
)

// CaseClass describes how a codec treats letter case.
type CaseClass string

const (
	// CaseSensitive means upper and lower case are distinct symbols.
	CaseSensitive CaseClass = "sensitive"

	// CaseInsensitive means either case decodes identically.
	CaseInsensitive CaseClass = "insensitive"

	// CaseLower means the canonical form is lower case.
	// Strict rejects upper case; Lenient folds it.
	CaseLower CaseClass = "lower"

	// CaseUpper means the canonical form is upper case.
	// Strict rejects lower case; Lenient folds it.
	CaseUpper CaseClass = "upper"
)

var validModes = map[Mode]bool{
	ModeStrict:  true,
	ModeLenient: true,
}

var validPaddingRules = map[PaddingRule]bool{
	PaddingNone:     true,
	PaddingRequired: true,
}

var validCaseClasses = map[CaseClass]bool{
	CaseSensitive:   true,
	CaseInsensitive: true,
	CaseLower:       true,
	CaseUpper:       true,
}

// IsValidMode returns true if m is a known mode.
func IsValidMode(m Mode) bool {
	return validModes[m]
}

// IsValidPaddingRule returns true if p is a known padding rule.
func IsValidPaddingRule(p PaddingRule) bool {
	return validPaddingRules[p]
}

// IsValidCaseClass returns true if c is a known case class.
func IsValidCaseClass(c CaseClass) bool {
	return validCaseClasses[c]
}

// ParseMode converts a flag or config value into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !IsValidMode(m) {
		return "", fmt.Errorf("unknown mode %q (want strict or lenient)", s)
	}
	return m, nil
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}
