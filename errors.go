package mbase

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidInput indicates generically malformed input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCharacter indicates a symbol outside the codec's alphabet.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidLength indicates the input violates a length constraint.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidPadding indicates padding contradicts the codec's rule.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrChecksumMismatch indicates structurally valid input whose
	// embedded integrity check failed.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnsupportedCodec indicates a registry miss.
	ErrUnsupportedCodec = errors.New("unsupported codec")

	// ErrIO indicates a failure reading or writing data outside the engine.
	ErrIO = errors.New("I/O error")

	// ErrDuplicatePrefix indicates two codecs claim one multibase prefix.
	ErrDuplicatePrefix = errors.New("duplicate multibase prefix")

	// ErrDuplicateName indicates two codecs claim one name or alias.
	ErrDuplicateName = errors.New("duplicate codec name")
)

// InputError reports generically malformed input.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// CharacterError reports the first offending symbol.
// Position counts Unicode scalars over the normalized text.
type CharacterError struct {
	Char     rune
	Position int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("invalid character '%c' at position %d", e.Char, e.Position)
}

func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// LengthError reports a normalized length that violates a constraint.
type LengthError struct {
	Constraint LengthConstraint
	Actual     int
	Message    string // optional detail
}

func (e *LengthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid length: expected %s, got %d (%s)", e.Constraint, e.Actual, e.Message)
	}
	return fmt.Sprintf("invalid length: expected %s, got %d", e.Constraint, e.Actual)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// PaddingError reports padding that contradicts the codec's rule.
type PaddingError struct {
	Message string
}

func (e *PaddingError) Error() string {
	return fmt.Sprintf("invalid padding: %s", e.Message)
}

func (e *PaddingError) Unwrap() error {
	return ErrInvalidPadding
}

// ChecksumError reports structurally valid input whose integrity check
// failed.
type ChecksumError struct {
	Message string
}

func (e *ChecksumError) Error() string {
	if e.Message == "" {
		return "checksum mismatch"
	}
	return fmt.Sprintf("checksum mismatch: %s", e.Message)
}

func (e *ChecksumError) Unwrap() error {
	return ErrChecksumMismatch
}

// UnsupportedError reports a name that resolves to no codec.
type UnsupportedError struct {
	Name string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported codec: %s", e.Name)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupportedCodec
}

// IOError wraps a failure from the input or output layer.
type IOError struct {
	Op    string // Operation that failed (read, write, open)
	Path  string // File path, empty for standard streams
	Cause error  // Original error from the operating system
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("I/O error: %s %s: %v", e.Op, e.Path, e.Cause)
	}
	return fmt.Sprintf("I/O error: %s: %v", e.Op, e.Cause)
}

func (e *IOError) Unwrap() error {
	return ErrIO
}

// NewInputError creates an InputError.
func NewInputError(message string) error {
	return &InputError{Message: message}
}

// NewInputErrorf creates an InputError from a format string.
func NewInputErrorf(format string, args ...any) error {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// NewCharacterError creates a CharacterError.
func NewCharacterError(char rune, position int) error {
	return &CharacterError{Char: char, Position: position}
}

// NewLengthError creates a LengthError without detail.
func NewLengthError(constraint LengthConstraint, actual int) error {
	return &LengthError{Constraint: constraint, Actual: actual}
}

// NewLengthErrorMsg creates a LengthError with a detail message.
func NewLengthErrorMsg(constraint LengthConstraint, actual int, message string) error {
	return &LengthError{Constraint: constraint, Actual: actual, Message: message}
}

// NewPaddingError creates a PaddingError.
func NewPaddingError(message string) error {
	return &PaddingError{Message: message}
}

// NewChecksumError creates a ChecksumError.
func NewChecksumError(message string) error {
	return &ChecksumError{Message: message}
}

// NewUnsupportedError creates an UnsupportedError.
func NewUnsupportedError(name string) error {
	return &UnsupportedError{Name: name}
}

// NewIOError creates an IOError.
func NewIOError(op, path string, cause error) error {
	return &IOError{Op: op, Path: path, Cause: cause}
}

// LengthKind is the shape of a LengthConstraint.
type LengthKind string

const (
	LengthExact      LengthKind = "exact"
	LengthMultipleOf LengthKind = "multiple_of"
	LengthRange      LengthKind = "range"
)

// LengthConstraint is the length rule a LengthError was checked against.
type LengthConstraint struct {
	Kind LengthKind
	N    int // Exact and MultipleOf
	Min  int // Range lower bound
	Max  int // Range upper bound, 0 when unbounded
}

// Exact requires exactly n units.
func Exact(n int) LengthConstraint {
	return LengthConstraint{Kind: LengthExact, N: n}
}

// MultipleOf requires a multiple of n units.
func MultipleOf(n int) LengthConstraint {
	return LengthConstraint{Kind: LengthMultipleOf, N: n}
}

// Range requires between lo and hi units inclusive.
func Range(lo, hi int) LengthConstraint {
	return LengthConstraint{Kind: LengthRange, Min: lo, Max: hi}
}

// AtLeast requires at least lo units.
func AtLeast(lo int) LengthConstraint {
	return LengthConstraint{Kind: LengthRange, Min: lo}
}

func (c LengthConstraint) String() string {
	switch c.Kind {
	case LengthExact:
		return fmt.Sprintf("exactly %d", c.N)
	case LengthMultipleOf:
		return fmt.Sprintf("multiple of %d", c.N)
	case LengthRange:
		if c.Max > 0 {
			return fmt.Sprintf("between %d and %d", c.Min, c.Max)
		}
		return fmt.Sprintf("at least %d", c.Min)
	}
	return string(c.Kind)
}

// ErrorKind is the closed taxonomy of engine failures.
type ErrorKind string

const (
	KindNone             ErrorKind = ""
	KindInvalidInput     ErrorKind = "invalid_input"
	KindInvalidCharacter ErrorKind = "invalid_character"
	KindInvalidLength    ErrorKind = "invalid_length"
	KindInvalidPadding   ErrorKind = "invalid_padding"
	KindChecksumMismatch ErrorKind = "checksum_mismatch"
	KindUnsupportedCodec ErrorKind = "unsupported_codec"
	KindIO               ErrorKind = "io_error"
	KindOther            ErrorKind = "other"
)

// KindOf classifies err. It returns KindNone for nil.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidCharacter):
		return KindInvalidCharacter
	case errors.Is(err, ErrInvalidLength):
		return KindInvalidLength
	case errors.Is(err, ErrInvalidPadding):
		return KindInvalidPadding
	case errors.Is(err, ErrChecksumMismatch):
		return KindChecksumMismatch
	case errors.Is(err, ErrUnsupportedCodec):
		return KindUnsupportedCodec
	case errors.Is(err, ErrIO):
		return KindIO
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	}
	return KindOther
}

// Process exit codes, one per failure class.
const (
	ExitSuccess          = 0
	ExitGeneral          = 1
	ExitInvalidInput     = 10
	ExitChecksumMismatch = 11
	ExitIO               = 12
	ExitUnsupportedCodec = 13
)

// ExitCode maps err to the process exit code for its failure class.
func ExitCode(err error) int {
	switch KindOf(err) {
	case KindNone:
		return ExitSuccess
	case KindInvalidInput, KindInvalidCharacter, KindInvalidLength, KindInvalidPadding:
		return ExitInvalidInput
	case KindChecksumMismatch:
		return ExitChecksumMismatch
	case KindIO:
		return ExitIO
	case KindUnsupportedCodec:
		return ExitUnsupportedCodec
	}
	return ExitGeneral
}
