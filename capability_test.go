package mbase

import "testing"

func TestIsValidMode(t *testing.T) {
	tests := []struct {
		mode Mode
		want bool
	}{
		{ModeStrict, true},
		{ModeLenient, true},
		{"relaxed", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := IsValidMode(tt.mode); got != tt.want {
				t.Errorf("IsValidMode(%q) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestIsValidPaddingRule(t *testing.T) {
	tests := []struct {
		rule PaddingRule
		want bool
	}{
		{PaddingNone, true},
		{PaddingRequired, true},
		{"optional", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.rule), func(t *testing.T) {
			if got := IsValidPaddingRule(tt.rule); got != tt.want {
				t.Errorf("IsValidPaddingRule(%q) = %v, want %v", tt.rule, got, tt.want)
			}
		})
	}
}

func TestIsValidCaseClass(t *testing.T) {
	tests := []struct {
		class CaseClass
		want  bool
	}{
		{CaseSensitive, true},
		{CaseInsensitive, true},
		{CaseLower, true},
		{CaseUpper, true},
		{"mixed", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			if got := IsValidCaseClass(tt.class); got != tt.want {
				t.Errorf("IsValidCaseClass(%q) = %v, want %v", tt.class, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("lenient"); err != nil || m != ModeLenient {
		t.Errorf("ParseMode(lenient) = %q, %v, want %q, nil", m, err, ModeLenient)
	}
	if _, err := ParseMode("STRICT"); err == nil {
		t.Error("ParseMode(STRICT) should fail, modes are lower case")
	}
}
