// Package catalog owns the process-wide codec registry.
//
// Registration order is part of the contract: detection breaks confidence
// ties by it.
package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/mbase"
	"github.com/zoobzio/mbase/bitpack"
	"github.com/zoobzio/mbase/checksum"
	"github.com/zoobzio/mbase/positional"
	"github.com/zoobzio/mbase/stateful"
	"github.com/zoobzio/mbase/textual"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *mbase.Registry
)

// Codecs returns a new instance of every built-in codec in registration
// order.
func Codecs() []mbase.Codec {
	return []mbase.Codec{
		textual.Atbash(),
		bitpack.Base2(),
		bitpack.Base8(),
		bitpack.Base16Lower(),
		bitpack.Base16Upper(),
		bitpack.Base32Lower(),
		bitpack.Base32Upper(),
		bitpack.Base32PadLower(),
		bitpack.Base32PadUpper(),
		bitpack.Base32HexLower(),
		bitpack.Base32HexUpper(),
		bitpack.Base32HexPadLower(),
		bitpack.Base32HexPadUpper(),
		bitpack.ZBase32(),
		checksum.Crockford32(),
		bitpack.Base32WordSafe(),
		positional.Base36Lower(),
		positional.Base36Upper(),
		positional.Base37(),
		bitpack.Base45(),
		positional.Base58BTC(),
		positional.Base58Flickr(),
		checksum.Base58Check(),
		positional.Base58Ripple(),
		positional.Base62(),
		bitpack.Base64(),
		bitpack.Base64Pad(),
		bitpack.Base64URL(),
		bitpack.Base64URLPad(),
		bitpack.Base65536(),
		bitpack.Ascii85(),
		bitpack.Z85(),
		bitpack.Base85Chunked(),
		bitpack.Base85RFC1924(),
		bitpack.Base91(),
		positional.Base92(),
		stateful.Baudot(),
		checksum.Bech32(),
		checksum.Bech32m(),
		textual.Braille(),
		stateful.BubbleBabble(),
		bitpack.IPv6(),
		textual.Morse(),
		bitpack.Proquint(),
		stateful.Punycode(),
		textual.QuotedPrintable(),
		textual.Rot13(),
		textual.Rot47(),
		textual.A1Z26(),
		textual.Rot18(),
		textual.Unicode(),
		textual.TapCode(),
		bitpack.UUEncode(),
		textual.URLEncoding(),
	}
}

// New builds a fresh registry over every built-in codec.
func New() *mbase.Registry {
	return mbase.NewRegistry(Codecs()...)
}

// Default returns the shared registry, building it on first use. The
// registry is immutable, so callers may share it freely.
func Default() *mbase.Registry {
	defaultOnce.Do(func() {
		start := time.Now()
		defaultRegistry = New()
		mbase.EmitRegistryBuilt(context.Background(), defaultRegistry, time.Since(start))
	})
	return defaultRegistry
}

// Get resolves name against the shared registry.
func Get(name string) (mbase.Codec, error) {
	return Default().Get(name)
}
