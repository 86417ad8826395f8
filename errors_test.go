package mbase

import (
	"errors"
	"fmt"
	"testing"
)

func TestTypedErrors_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"input", NewInputError("bad"), ErrInvalidInput},
		{"character", NewCharacterError('!', 3), ErrInvalidCharacter},
		{"length", NewLengthError(MultipleOf(2), 3), ErrInvalidLength},
		{"padding", NewPaddingError("padding required"), ErrInvalidPadding},
		{"checksum", NewChecksumError(""), ErrChecksumMismatch},
		{"unsupported", NewUnsupportedError("nope"), ErrUnsupportedCodec},
		{"io", NewIOError("read", "x.bin", errors.New("denied")), ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
			if tt.sentinel != ErrInvalidInput && errors.Is(tt.err, ErrInvalidInput) {
				t.Errorf("%v should not match ErrInvalidInput", tt.err)
			}
		})
	}
}

func TestTypedErrors_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"input", NewInputErrorf("value %d exceeds 255", 300), "invalid input: value 300 exceeds 255"},
		{"character", NewCharacterError('!', 7), "invalid character '!' at position 7"},
		{"length exact", NewLengthError(Exact(16), 3), "invalid length: expected exactly 16, got 3"},
		{"length detail", NewLengthErrorMsg(MultipleOf(5), 7, "z85 groups"), "invalid length: expected multiple of 5, got 7 (z85 groups)"},
		{"length range", NewLengthError(Range(2, 4), 9), "invalid length: expected between 2 and 4, got 9"},
		{"length at least", NewLengthError(AtLeast(4), 1), "invalid length: expected at least 4, got 1"},
		{"padding", NewPaddingError("padding not allowed"), "invalid padding: padding not allowed"},
		{"checksum bare", NewChecksumError(""), "checksum mismatch"},
		{"checksum detail", NewChecksumError("bech32"), "checksum mismatch: bech32"},
		{"unsupported", NewUnsupportedError("base999"), "unsupported codec: base999"},
		{"io path", NewIOError("open", "in.bin", errors.New("no such file")), "I/O error: open in.bin: no such file"},
		{"io stream", NewIOError("read", "", errors.New("closed")), "I/O error: read: closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorsAs_CharacterError(t *testing.T) {
	err := fmt.Errorf("decode: %w", NewCharacterError('é', 4))

	var ce *CharacterError
	if !errors.As(err, &ce) {
		t.Fatal("errors.As should extract *CharacterError")
	}
	if ce.Char != 'é' {
		t.Errorf("Char = %q, want %q", ce.Char, 'é')
	}
	if ce.Position != 4 {
		t.Errorf("Position = %d, want %d", ce.Position, 4)
	}
}

func TestErrorsAs_LengthError(t *testing.T) {
	err := NewLengthError(MultipleOf(4), 6)

	var le *LengthError
	if !errors.As(err, &le) {
		t.Fatal("errors.As should extract *LengthError")
	}
	if le.Constraint != MultipleOf(4) {
		t.Errorf("Constraint = %v, want %v", le.Constraint, MultipleOf(4))
	}
	if le.Actual != 6 {
		t.Errorf("Actual = %d, want %d", le.Actual, 6)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{nil, KindNone},
		{NewInputError("x"), KindInvalidInput},
		{NewCharacterError('x', 0), KindInvalidCharacter},
		{NewLengthError(Exact(1), 0), KindInvalidLength},
		{NewPaddingError("x"), KindInvalidPadding},
		{NewChecksumError(""), KindChecksumMismatch},
		{NewUnsupportedError("x"), KindUnsupportedCodec},
		{NewIOError("read", "", errors.New("x")), KindIO},
		{errors.New("boom"), KindOther},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitSuccess},
		{"general", errors.New("boom"), ExitGeneral},
		{"input", NewInputError("x"), ExitInvalidInput},
		{"character", NewCharacterError('x', 0), ExitInvalidInput},
		{"length", NewLengthError(Exact(1), 0), ExitInvalidInput},
		{"padding", NewPaddingError("x"), ExitInvalidInput},
		{"checksum", NewChecksumError(""), ExitChecksumMismatch},
		{"io", NewIOError("write", "", errors.New("x")), ExitIO},
		{"unsupported", NewUnsupportedError("x"), ExitUnsupportedCodec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
