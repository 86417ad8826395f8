package bitpack

import (
	"bytes"
	"errors"
	"testing"

	"github.com/zoobzio/mbase"
)

func TestGroupSymbols(t *testing.T) {
	tests := []struct {
		k    uint
		want int
	}{
		{1, 8},
		{4, 2},
		{5, 8},
		{6, 4},
	}
	for _, tt := range tests {
		if got := groupSymbols(tt.k); got != tt.want {
			t.Errorf("groupSymbols(%d) = %d, want %d", tt.k, got, tt.want)
		}
	}
}

func TestPackUnpack(t *testing.T) {
	alphabets := map[uint]*mbase.Alphabet{
		1: mbase.NewAlphabet("01"),
		4: mbase.NewAlphabet(Base16LowerAlphabet),
		5: mbase.NewAlphabet(Base32LowerAlphabet),
		6: mbase.NewAlphabet(Base64Alphabet),
	}
	inputs := [][]byte{{}, {0x00}, {0xff}, []byte("f"), []byte("fo"), []byte("foo"), []byte("foobar"), {0, 0, 1, 2, 3, 0xfe}}

	for k, a := range alphabets {
		for _, in := range inputs {
			text := Pack(in, k, a)
			back, slack, err := Unpack(text, k, a.Index)
			if err != nil {
				t.Fatalf("Unpack(Pack(%x), %d) error: %v", in, k, err)
			}
			if slack {
				t.Errorf("Unpack(Pack(%x), %d) reported slack", in, k)
			}
			if !bytes.Equal(back, in) {
				t.Errorf("Unpack(Pack(%x), %d) = %x", in, k, back)
			}
		}
	}
}

func TestUnpack_Errors(t *testing.T) {
	a := mbase.NewAlphabet(Base64Alphabet)

	_, _, err := Unpack("Zm9v!", 6, a.Index)
	var ce *mbase.CharacterError
	if !errors.As(err, &ce) || ce.Position != 4 {
		t.Errorf("Unpack() error = %v, want CharacterError at 4", err)
	}

	_, _, err = Unpack("Z", 6, a.Index)
	if !errors.Is(err, mbase.ErrInvalidLength) {
		t.Errorf("Unpack(\"Z\") error = %v, want ErrInvalidLength", err)
	}

	_, slack, err := Unpack("Zh", 6, a.Index)
	if err != nil || !slack {
		t.Errorf("Unpack(\"Zh\") = slack %v, err %v; want slack", slack, err)
	}
}

func TestU128(t *testing.T) {
	in := []byte{0x10, 0x80, 0, 0, 0, 0, 0, 0, 0, 0x08, 0x08, 0, 0x20, 0x0c, 0x41, 0x7a}
	n := u128From(in)
	if got := n.bytes(); !bytes.Equal(got[:], in) {
		t.Errorf("bytes() = %x, want %x", got, in)
	}

	top := u128{^uint64(0), ^uint64(0)}
	if _, over := top.mulAdd(85, 0); !over {
		t.Error("mulAdd() on max value should overflow")
	}
	q, r := u128{0, 170}.divMod(85)
	if q != (u128{0, 2}) || r != 0 {
		t.Errorf("divMod(170, 85) = %v, %d", q, r)
	}
}

func TestStripUnicodeSpace(t *testing.T) {
	if got := stripUnicodeSpace("a b c　d\n"); got != "abcd" {
		t.Errorf("stripUnicodeSpace() = %q, want %q", got, "abcd")
	}
}
