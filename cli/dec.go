package cli

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/mbase"
	"github.com/zoobzio/mbase/render"
)

type decOptions struct {
	codec     string
	in        string
	out       string
	mode      mbase.Mode
	force     bool
	multibase bool
	all       bool
}

func newDecCommand(a *App) *cobra.Command {
	var opts decOptions
	cmd := &cobra.Command{
		Use:   "dec",
		Short: "Decode text to bytes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.codec = a.codecName(cmd, "codec", opts.codec)
			opts.mode = a.mode(cmd, opts.mode)
			if opts.all {
				return a.runDecAll(cmd, opts)
			}
			return a.runDec(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.codec, "codec", defaultCodec, "codec name or alias")
	addIOFlags(cmd.Flags(), &opts.in, &opts.out)
	addModeFlag(cmd.Flags(), &opts.mode, mbase.ModeStrict)
	cmd.Flags().BoolVar(&opts.force, "force", false, "write binary output to a terminal")
	cmd.Flags().BoolVar(&opts.multibase, "multibase", false, "select the codec from the input's multibase prefix")
	cmd.Flags().BoolVar(&opts.all, "all", false, "try every codec and show the successful decodes")
	return cmd
}

// resolveMultibase picks the codec named by text's leading multibase
// prefix and strips it. ok is false when no codec claims the prefix.
func (a *App) resolveMultibase(text string) (c mbase.Codec, rest string, prefix rune, ok bool) {
	prefix, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return nil, text, 0, false
	}
	c, ok = a.Registry.ByPrefix(prefix)
	if !ok {
		return nil, text, 0, false
	}
	return c, text[size:], prefix, true
}

func (a *App) runDec(cmd *cobra.Command, opts decOptions) error {
	text, err := a.readText(opts.in)
	if err != nil {
		return err
	}

	var (
		c      mbase.Codec
		name   = opts.codec
		prefix string
		body   = text
	)
	if opts.multibase {
		if mc, rest, p, ok := a.resolveMultibase(text); ok {
			c, body, prefix = mc, rest, string(p)
			name = mc.Meta().Name
			a.Logger.Debug("codec selected by multibase prefix", zap.String("prefix", prefix), zap.String("codec", name))
		} else {
			a.Logger.Debug("no multibase prefix matched; using --codec", zap.String("codec", name))
		}
	}
	if c == nil {
		if c, err = a.codec(name); err != nil {
			return err
		}
	}

	data, err := mbase.Decode(cmd.Context(), c, body, opts.mode)
	if err != nil {
		return err
	}

	if a.structured() {
		return a.emit(opts.out, DecodeResult{
			Codec:        name,
			Input:        strings.TrimSpace(text),
			OutputLength: len(data),
			OutputHex:    hex.EncodeToString(data),
			OutputText:   decodedText(data),
			Prefix:       prefix,
		}, opts.force)
	}
	return a.writeOutput(opts.out, data, opts.force)
}

func (a *App) runDecAll(cmd *cobra.Command, opts decOptions) error {
	text, err := a.readText(opts.in)
	if err != nil {
		return err
	}

	results := make([]DecodeCodecResult, 0, a.Registry.Len())
	var rows []decodeRow
	for _, c := range a.Registry.Codecs() {
		name := c.Meta().Name
		data, err := mbase.Decode(cmd.Context(), c, text, opts.mode)
		if err != nil {
			msg := err.Error()
			results = append(results, DecodeCodecResult{Codec: name, Error: &msg})
			continue
		}
		n, h := len(data), hex.EncodeToString(data)
		results = append(results, DecodeCodecResult{
			Codec:        name,
			OutputLength: &n,
			OutputHex:    &h,
			OutputText:   decodedText(data),
		})
		rows = append(rows, decodeRow{Codec: name, Decoded: formatDecoded(data)})
	}

	if a.structured() {
		return a.emit(opts.out, DecodeAllResult{Input: strings.TrimSpace(text), Results: results}, false)
	}
	var b strings.Builder
	if err := render.Table(&b, rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		b.WriteString("(no codec could decode the input)\n")
	}
	return a.writeOutput(opts.out, []byte(b.String()), true)
}
