package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/mbase"
	"github.com/zoobzio/mbase/render"
)

type encOptions struct {
	codec     string
	in        string
	out       string
	multibase bool
	all       bool
}

func newEncCommand(a *App) *cobra.Command {
	var opts encOptions
	cmd := &cobra.Command{
		Use:   "enc",
		Short: "Encode bytes to text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.codec = a.codecName(cmd, "codec", opts.codec)
			if opts.all {
				return a.runEncAll(cmd, opts)
			}
			return a.runEnc(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.codec, "codec", defaultCodec, "codec name or alias")
	addIOFlags(cmd.Flags(), &opts.in, &opts.out)
	cmd.Flags().BoolVar(&opts.multibase, "multibase", false, "emit the codec's multibase prefix")
	cmd.Flags().BoolVar(&opts.all, "all", false, "show the encoding with every codec")
	return cmd
}

func (a *App) runEnc(cmd *cobra.Command, opts encOptions) error {
	c, err := a.codec(opts.codec)
	if err != nil {
		return err
	}
	data, err := a.readInput(opts.in)
	if err != nil {
		return err
	}
	text, err := mbase.Encode(cmd.Context(), c, data)
	if err != nil {
		return err
	}

	var prefix string
	if opts.multibase {
		if meta := c.Meta(); meta.HasPrefix() {
			prefix = string(meta.Prefix)
			text = prefix + text
		} else {
			a.Logger.Warn("codec has no multibase prefix; writing bare output", zap.String("codec", meta.Name))
		}
	}

	if a.structured() {
		return a.emit(opts.out, EncodeResult{
			Codec:        opts.codec,
			InputLength:  len(data),
			Output:       text,
			OutputLength: len(text),
			Prefix:       prefix,
		}, false)
	}
	return a.writeText(opts.out, text)
}

func (a *App) runEncAll(cmd *cobra.Command, opts encOptions) error {
	data, err := a.readInput(opts.in)
	if err != nil {
		return err
	}

	results := make([]EncodeCodecResult, 0, a.Registry.Len())
	rows := make([]encodeRow, 0, a.Registry.Len())
	for _, c := range a.Registry.Codecs() {
		name := c.Meta().Name
		text, err := mbase.Encode(cmd.Context(), c, data)
		if err != nil {
			results = append(results, EncodeCodecResult{Codec: name, Error: err.Error()})
			rows = append(rows, encodeRow{Codec: name, Encoded: "(encoding failed)"})
			continue
		}
		results = append(results, EncodeCodecResult{Codec: name, Output: text})
		rows = append(rows, encodeRow{Codec: name, Encoded: truncate(text, 50)})
	}

	if a.structured() {
		return a.emit(opts.out, EncodeAllResult{InputLength: len(data), Results: results}, false)
	}
	var b strings.Builder
	if err := render.Table(&b, rows); err != nil {
		return err
	}
	return a.writeOutput(opts.out, []byte(b.String()), true)
}
