package catalog_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/mbase"
	"github.com/zoobzio/mbase/catalog"
)

func TestDefault_Shared(t *testing.T) {
	if catalog.Default() != catalog.Default() {
		t.Error("Default() should return the same registry every call")
	}
	if got := catalog.Default().Len(); got != 54 {
		t.Errorf("Len() = %d, want 54", got)
	}
}

func TestNew_Independent(t *testing.T) {
	if catalog.New() == catalog.Default() {
		t.Error("New() should build a fresh registry")
	}
}

func TestRegistrationOrder(t *testing.T) {
	metas := catalog.Default().List()
	anchors := map[int]string{
		0:  "atbash",
		1:  "base2",
		3:  "base16lower",
		20: "base58btc",
		25: "base64",
		44: "punycode",
		53: "urlencoding",
	}
	for idx, want := range anchors {
		if metas[idx].Name != want {
			t.Errorf("List()[%d] = %q, want %q", idx, metas[idx].Name, want)
		}
	}
}

func TestAliasesResolve(t *testing.T) {
	r := catalog.Default()
	for _, meta := range r.List() {
		for _, name := range append([]string{meta.Name}, meta.Aliases...) {
			c, err := r.Get(name)
			if err != nil {
				t.Errorf("Get(%q) error: %v", name, err)
				continue
			}
			if c.Meta().Name != meta.Name {
				t.Errorf("Get(%q) = %s, want %s", name, c.Meta().Name, meta.Name)
			}
		}
	}
}

func TestGet_CaseVariants(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"hex", "base16lower"},
		{"HEX", "base16upper"},
		{"Base64", "base64"},
		{"b32", "base32lower"},
		{"B32", "base32upper"},
		{"RFC1924", "base85rfc1924"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := catalog.Get(tt.name)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.name, err)
			}
			if c.Meta().Name != tt.want {
				t.Errorf("Get(%q) = %s, want %s", tt.name, c.Meta().Name, tt.want)
			}
		})
	}

	if _, err := catalog.Get("base999"); !errors.Is(err, mbase.ErrUnsupportedCodec) {
		t.Errorf("Get(base999) error = %v, want ErrUnsupportedCodec", err)
	}
}

func TestMultibaseMap(t *testing.T) {
	m := catalog.Default().MultibaseMap()
	want := map[rune]string{
		'0': "base2", '7': "base8", 'f': "base16lower", 'F': "base16upper",
		'b': "base32lower", 'B': "base32upper", 'c': "base32padlower", 'C': "base32padupper",
		'v': "base32hexlower", 'V': "base32hexupper", 't': "base32hexpadlower", 'T': "base32hexpadupper",
		'h': "zbase32", 'k': "base36lower", 'K': "base36upper", 'z': "base58btc", 'Z': "base58flickr",
		'm': "base64", 'M': "base64pad", 'u': "base64url", 'U': "base64urlpad",
	}
	if len(m) != len(want) {
		t.Errorf("MultibaseMap() has %d entries, want %d", len(m), len(want))
	}
	for p, name := range want {
		if m[p] != name {
			t.Errorf("MultibaseMap()[%q] = %q, want %q", p, m[p], name)
		}
	}
}

func TestDetect_Scenarios(t *testing.T) {
	r := catalog.Default()

	t.Run("unprefixed base64", func(t *testing.T) {
		found := false
		for _, c := range r.Detect("SGVsbG8", 5) {
			if c.Codec == "base64" {
				found = true
				if c.Confidence < 0.7 {
					t.Errorf("base64 confidence = %v, want >= 0.7", c.Confidence)
				}
			}
		}
		if !found {
			t.Error("base64 not among top candidates")
		}
	})

	t.Run("multibase base58btc", func(t *testing.T) {
		got := r.Detect("zJxF12TrwUP45BMd", 5)
		if len(got) == 0 || got[0].Codec != "base58btc" {
			t.Fatalf("Detect() = %+v, want base58btc first", got)
		}
		if got[0].Confidence < 0.95 {
			t.Errorf("confidence = %v, want >= 0.95", got[0].Confidence)
		}
	})

	t.Run("multibase hex", func(t *testing.T) {
		got := r.Detect("f48656c6c6f", 5)
		if len(got) == 0 || got[0].Codec != "base16lower" {
			t.Fatalf("Detect() = %+v, want base16lower first", got)
		}
	})
}

func TestDetect_NeverPanics(t *testing.T) {
	r := catalog.Default()
	for _, text := range []string{"", " ", "=", "<~", "x", "U+", "%", "-", "⠀", "\x00\xff", "🦀🦀🦀"} {
		_ = r.Detect(text, 0)
	}
}

func TestEmptyInput_Encode(t *testing.T) {
	fixedDomain := map[string]bool{"base85rfc1924": true, "ipv6": true}
	for _, c := range catalog.Codecs() {
		name := c.Meta().Name
		if fixedDomain[name] {
			continue
		}
		if _, err := c.Encode(nil); err != nil {
			t.Errorf("%s: Encode(nil) error: %v", name, err)
		}
	}
}

func TestEmptyInput_DetectScore(t *testing.T) {
	for _, c := range catalog.Codecs() {
		got := c.DetectScore("")
		if got.Confidence != 0 {
			t.Errorf("%s: DetectScore(\"\") = %v, want 0", c.Meta().Name, got.Confidence)
		}
	}
}
