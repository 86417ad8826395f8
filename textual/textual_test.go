package textual

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/mbase"
)

func TestSubstitution_Encode(t *testing.T) {
	tests := []struct {
		name  string
		codec *SubstitutionCodec
		in    string
		want  string
	}{
		{"atbash", Atbash(), "Hello, World! 123", "Svool, Dliow! 123"},
		{"atbash mixed", Atbash(), "HeLLo", "SvOOl"},
		{"rot13", Rot13(), "Hello", "Uryyb"},
		{"rot13 punctuation", Rot13(), "Hello, World! 123", "Uryyb, Jbeyq! 123"},
		{"rot47", Rot47(), "Hello", "w6==@"},
		{"rot47 digits", Rot47(), "0123456789", "_`abcdefgh"},
		{"rot47 symbols", Rot47(), "!@#$%", "PoRST"},
		{"rot18", Rot18(), "Hello123", "Uryyb678"},
		{"rot18 digits", Rot18(), "0123456789", "5678901234"},
		{"utf8 passes", Rot13(), "héllo", "uéyyb"},
		{"empty", Atbash(), "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := tt.codec.Encode([]byte(tt.in))
			if got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubstitution_Involution(t *testing.T) {
	in := []byte("The Quick Brown Fox Jumps Over The Lazy Dog! 0123456789 @#$%\x00\xff")
	for _, c := range []*SubstitutionCodec{Atbash(), Rot13(), Rot47(), Rot18()} {
		once, _ := c.Encode(in)
		twice, _ := c.Encode([]byte(once))
		if twice != string(in) {
			t.Errorf("%s: Encode(Encode(x)) = %q, want %q", c.Meta().Name, twice, in)
		}
		got, err := c.Decode(once, mbase.ModeStrict)
		if err != nil || !bytes.Equal(got, in) {
			t.Errorf("%s: Decode(Encode(x)) = %q, %v", c.Meta().Name, got, err)
		}
	}
}

func TestSubstitution_DetectScore(t *testing.T) {
	got := Rot13().DetectScore("Uryyb Jbeyq")
	if got.Confidence != 0.2 || len(got.Warnings) != 1 {
		t.Errorf("DetectScore() = %+v", got)
	}
	if got := Atbash().DetectScore("Svool"); got.Confidence != 0.15 {
		t.Errorf("atbash DetectScore() = %v, want 0.15", got.Confidence)
	}
	if got := Rot13().DetectScore("1234 5678"); got.Confidence != 0 {
		t.Errorf("DetectScore(digits) = %v, want 0", got.Confidence)
	}
	if got := Rot13().DetectScore(""); got.Reasons[0] != "empty input" {
		t.Errorf("DetectScore(\"\") reasons = %v", got.Reasons)
	}
}

func TestA1Z26(t *testing.T) {
	c := A1Z26()
	text, err := c.Encode([]byte("Hello World"))
	if err != nil || text != "8-5-12-12-15-0-23-15-18-12-4" {
		t.Errorf("Encode() = %q, %v", text, err)
	}
	got, err := c.Decode(text, mbase.ModeStrict)
	if err != nil || string(got) != "HELLO WORLD" {
		t.Errorf("Decode() = %q, %v", got, err)
	}

	if _, err := c.Encode([]byte("123!")); !errors.Is(err, mbase.ErrInvalidInput) {
		t.Errorf("Encode(no letters) error = %v, want ErrInvalidInput", err)
	}

	tests := []struct {
		name string
		mode mbase.Mode
		text string
		want error
	}{
		{"out of range", mbase.ModeStrict, "1-27-3", mbase.ErrInvalidInput},
		{"bad char", mbase.ModeStrict, "1-x-3", mbase.ErrInvalidCharacter},
		{"empty segment", mbase.ModeStrict, "1--3", mbase.ErrInvalidInput},
		{"space strict", mbase.ModeStrict, "1 - 2", mbase.ErrInvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decode(tt.text, tt.mode)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode(%q) error = %v, want %v", tt.text, err, tt.want)
			}
		})
	}

	got, err = c.Decode("1 - 2--3", mbase.ModeLenient)
	if err != nil || string(got) != "ABC" {
		t.Errorf("lenient Decode() = %q, %v", got, err)
	}
	if got := c.DetectScore("8-5-12-12-15"); got.Confidence != mbase.ConfidenceAlphabet {
		t.Errorf("DetectScore() = %v, want %v", got.Confidence, mbase.ConfidenceAlphabet)
	}
}

func TestMorse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SOS", "... --- ..."},
		{"hello", ".... . .-.. .-.. ---"},
		{"A B", ".- / -..."},
		{"HELLO, WORLD!", ".... . .-.. .-.. --- --..-- / .-- --- .-. .-.. -.. -.-.--"},
		{"123", ".---- ..--- ...--"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Morse().Encode([]byte(tt.in))
			if err != nil || got != tt.want {
				t.Errorf("Encode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
			back, err := Morse().Decode(tt.want, mbase.ModeStrict)
			if err != nil || string(back) != strings.ToUpper(tt.in) {
				t.Errorf("Decode(%q) = %q, %v", tt.want, back, err)
			}
		})
	}

	if _, err := Morse().Encode([]byte("#$%")); !errors.Is(err, mbase.ErrInvalidInput) {
		t.Errorf("Encode(unencodable) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Morse().Decode(".-.-.-.-", mbase.ModeStrict); !errors.Is(err, mbase.ErrInvalidInput) {
		t.Errorf("Decode(unknown) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Morse().Decode("xyz", mbase.ModeStrict); !errors.Is(err, mbase.ErrInvalidCharacter) {
		t.Errorf("Decode(xyz) error = %v, want ErrInvalidCharacter", err)
	}
	got, err := Morse().Decode("\t... --- ...\n", mbase.ModeLenient)
	if err != nil || string(got) != "SOS" {
		t.Errorf("lenient Decode() = %q, %v", got, err)
	}
	if got := Morse().DetectScore("... --- ..."); got.Confidence != mbase.ConfidenceAlphabet {
		t.Errorf("DetectScore() = %v, want %v", got.Confidence, mbase.ConfidenceAlphabet)
	}
}

func TestBraille(t *testing.T) {
	got, err := Braille().Encode([]byte("Hello"))
	if err != nil || got != "⠓⠑⠇⠇⠕" {
		t.Errorf("Encode(Hello) = %q, %v", got, err)
	}
	in := "hello, world! (yes) - it's fine; ok: done?"
	text, err := Braille().Encode([]byte(in))
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	back, err := Braille().Decode(text, mbase.ModeStrict)
	want := strings.ReplaceAll(in, ")", "(")
	if err != nil || string(back) != want {
		t.Errorf("Decode() = %q, %v; want %q", back, err, want)
	}

	if _, err := Braille().Encode([]byte("hello\xff")); !errors.Is(err, mbase.ErrInvalidInput) {
		t.Errorf("Encode(unsupported) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Braille().Decode("⠓x", mbase.ModeStrict); !errors.Is(err, mbase.ErrInvalidCharacter) {
		t.Errorf("Decode(non-braille) error = %v, want ErrInvalidCharacter", err)
	}
	if _, err := Braille().Decode("⣿", mbase.ModeStrict); !errors.Is(err, mbase.ErrInvalidInput) {
		t.Errorf("Decode(unmapped cell) error = %v, want ErrInvalidInput", err)
	}
	if got, err := Braille().Decode("⠓⠑ ⠇⠇⠕", mbase.ModeLenient); err != nil || string(got) != "hello" {
		t.Errorf("lenient Decode() = %q, %v", got, err)
	}

	if got := Braille().DetectScore("⠓⠑⠇⠇⠕"); got.Confidence <= 0.6 {
		t.Errorf("DetectScore(braille) = %v, want > 0.6", got.Confidence)
	}
	if got := Braille().DetectScore("hello"); got.Confidence != 0 {
		t.Errorf("DetectScore(hello) = %v, want 0", got.Confidence)
	}
}

func TestTapCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HELLO", "23 15 31 31 34"},
		{"abc", "11 12 13"},
		{"K", "13"},
		{"Z", "55"},
		{"HI YOU", "23 24 / 54 34 45"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := TapCode().Encode([]byte(tt.in))
			if err != nil || got != tt.want {
				t.Errorf("Encode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
		})
	}

	got, err := TapCode().Decode("44 23 15 41 45 24 13 13", mbase.ModeStrict)
	if err != nil || string(got) != "THEQUICC" {
		t.Errorf("Decode() = %q, %v; want THEQUICC", got, err)
	}
	got, err = TapCode().Decode("23 24 / 54 34 45", mbase.ModeStrict)
	if err != nil || string(got) != "HI YOU" {
		t.Errorf("Decode(words) = %q, %v", got, err)
	}
	for _, bad := range []string{"16", "61", "00", "123"} {
		if _, err := TapCode().Decode(bad, mbase.ModeStrict); !errors.Is(err, mbase.ErrInvalidInput) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalidInput", bad, err)
		}
	}
	if _, err := TapCode().Encode([]byte("123")); !errors.Is(err, mbase.ErrInvalidInput) {
		t.Errorf("Encode(digits) error = %v, want ErrInvalidInput", err)
	}
	if got := TapCode().DetectScore("23 15 31 31 34"); got.Confidence != 0.8 {
		t.Errorf("DetectScore() = %v, want 0.8", got.Confidence)
	}
}

func TestUnicode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A", "U+0041"},
		{"Hello", "U+0048 U+0065 U+006C U+006C U+006F"},
		{"🦀", "U+1F980"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := Unicode().Encode([]byte(tt.in))
			if err != nil || got != tt.want {
				t.Errorf("Encode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
			}
			back, err := Unicode().Decode(tt.want, mbase.ModeStrict)
			if err != nil || string(back) != tt.in {
				t.Errorf("Decode(%q) = %q, %v", tt.want, back, err)
			}
		})
	}

	lenient := map[string]string{
		"u+0041":           "A",
		"0x0041":           "A",
		`\u0041`:           "A",
		"41":               "A",
		"U+0048\tU+0069\n": "Hi",
	}
	for text, want := range lenient {
		got, err := Unicode().Decode(text, mbase.ModeLenient)
		if err != nil || string(got) != want {
			t.Errorf("lenient Decode(%q) = %q, %v; want %q", text, got, err, want)
		}
	}

	for _, bad := range []string{"0041", "u+0041", "U+0041  U+0042", "U+D800", "U+110000", "U+zz"} {
		if _, err := Unicode().Decode(bad, mbase.ModeStrict); !errors.Is(err, mbase.ErrInvalidInput) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalidInput", bad, err)
		}
	}
	if _, err := Unicode().Encode([]byte{0xff}); !errors.Is(err, mbase.ErrInvalidInput) {
		t.Errorf("Encode(invalid utf8) error = %v, want ErrInvalidInput", err)
	}
	if got := Unicode().DetectScore("U+0048 U+0069"); got.Confidence != 0.9 {
		t.Errorf("DetectScore() = %v, want 0.9", got.Confidence)
	}
	if got := Unicode().DetectScore("U+0048 hi"); got.Confidence != 0.6 {
		t.Errorf("DetectScore(partial) = %v, want 0.6", got.Confidence)
	}
}

func TestQuotedPrintable(t *testing.T) {
	c := QuotedPrintable()
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hello World", "Hello=20World"},
		{"a=b", "a=3Db"},
		{"caf\xc3\xa9", "caf=C3=A9"},
	}
	for _, tt := range tests {
		got, _ := c.Encode([]byte(tt.in))
		if got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	text, _ := c.Encode(all)
	for _, line := range strings.Split(text, "\r\n") {
		if len(line) > 76 {
			t.Errorf("line length %d exceeds 76: %q", len(line), line)
		}
	}
	got, err := c.Decode(text, mbase.ModeStrict)
	if err != nil || !bytes.Equal(got, all) {
		t.Errorf("Decode(Encode(all bytes)) = %x, %v", got, err)
	}

	decodes := []struct {
		name string
		mode mbase.Mode
		text string
		want string
	}{
		{"soft crlf", mbase.ModeStrict, "Hello=\r\nWorld", "HelloWorld"},
		{"soft lf", mbase.ModeStrict, "Hello=\nWorld", "HelloWorld"},
		{"lower hex", mbase.ModeStrict, "=c3=a9", "\xc3\xa9"},
		{"bare newline strict", mbase.ModeStrict, "a\nb", "a\nb"},
		{"bare newline lenient", mbase.ModeLenient, "a\nb", "ab"},
		{"truncated lenient", mbase.ModeLenient, "ab=4", "ab=4"},
	}
	for _, tt := range decodes {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Decode(tt.text, tt.mode)
			if err != nil || string(got) != tt.want {
				t.Errorf("Decode(%q) = %q, %v; want %q", tt.text, got, err, tt.want)
			}
		})
	}

	if _, err := c.Decode("ab=4", mbase.ModeStrict); !errors.Is(err, mbase.ErrInvalidInput) {
		t.Errorf("Decode(truncated) error = %v, want ErrInvalidInput", err)
	}
	if _, err := c.Decode("=G1", mbase.ModeStrict); !errors.Is(err, mbase.ErrInvalidCharacter) {
		t.Errorf("Decode(bad hex) error = %v, want ErrInvalidCharacter", err)
	}
	if got := c.DetectScore("Hello=20World=3D=C3=A9"); got.Confidence < 0.6 {
		t.Errorf("DetectScore() = %v, want >= 0.6", got.Confidence)
	}
}

func TestURLEncoding(t *testing.T) {
	c := URLEncoding()
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "Hello"},
		{"Hello World", "Hello%20World"},
		{"test@example.com", "test%40example.com"},
		{"a+b=c", "a%2Bb%3Dc"},
		{"-_.~", "-_.~"},
		{"世", "%E4%B8%96"},
	}
	for _, tt := range tests {
		got, _ := c.Encode([]byte(tt.in))
		if got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
		back, err := c.Decode(got, mbase.ModeStrict)
		if err != nil || string(back) != tt.in {
			t.Errorf("Decode(%q) = %q, %v", got, back, err)
		}
	}

	if got, err := c.Decode("test%2fpath", mbase.ModeStrict); err != nil || string(got) != "test/path" {
		t.Errorf("Decode(lower hex) = %q, %v", got, err)
	}
	for _, bad := range []string{"%", "%2", "%ZZ"} {
		if _, err := c.Decode(bad, mbase.ModeStrict); !errors.Is(err, mbase.ErrInvalidInput) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalidInput", bad, err)
		}
	}
	if _, err := c.Decode("café", mbase.ModeStrict); !errors.Is(err, mbase.ErrInvalidCharacter) {
		t.Errorf("Decode(non-ascii) error = %v, want ErrInvalidCharacter", err)
	}
	if got := c.DetectScore("Hello%20World"); got.Confidence != mbase.ConfidenceAlphabet {
		t.Errorf("DetectScore() = %v, want %v", got.Confidence, mbase.ConfidenceAlphabet)
	}
	if got := c.DetectScore("100% sure"); got.Confidence != 0 {
		t.Errorf("DetectScore(invalid) = %v, want 0", got.Confidence)
	}
}
