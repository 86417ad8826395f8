package cli

import (
	"github.com/spf13/cobra"

	"github.com/zoobzio/mbase"
)

type convOptions struct {
	from string
	to   string
	in   string
	out  string
	mode mbase.Mode
}

func newConvCommand(a *App) *cobra.Command {
	var opts convOptions
	cmd := &cobra.Command{
		Use:   "conv",
		Short: "Convert between encodings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.mode = a.mode(cmd, opts.mode)
			return a.runConv(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.from, "from", "", "codec the input is encoded with")
	cmd.Flags().StringVar(&opts.to, "to", "", "codec to encode the output with")
	addIOFlags(cmd.Flags(), &opts.in, &opts.out)
	addModeFlag(cmd.Flags(), &opts.mode, mbase.ModeStrict)
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *App) runConv(cmd *cobra.Command, opts convOptions) error {
	decoder, err := a.codec(opts.from)
	if err != nil {
		return err
	}
	encoder, err := a.codec(opts.to)
	if err != nil {
		return err
	}
	text, err := a.readText(opts.in)
	if err != nil {
		return err
	}

	data, err := mbase.Decode(cmd.Context(), decoder, text, opts.mode)
	if err != nil {
		return err
	}
	out, err := mbase.Encode(cmd.Context(), encoder, data)
	if err != nil {
		return err
	}

	if a.structured() {
		return a.emit(opts.out, ConvertResult{From: opts.from, To: opts.to, Output: out}, false)
	}
	return a.writeText(opts.out, out)
}
