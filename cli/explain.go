package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/mbase"
)

type explainOptions struct {
	codec string
	in    string
	mode  mbase.Mode
}

func newExplainCommand(a *App) *cobra.Command {
	var opts explainOptions
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Explain why input fails to decode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.codec = a.codecName(cmd, "codec", opts.codec)
			opts.mode = a.mode(cmd, opts.mode)
			return a.runExplain(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.codec, "codec", defaultCodec, "codec name or alias")
	addIOFlags(cmd.Flags(), &opts.in, nil)
	addModeFlag(cmd.Flags(), &opts.mode, mbase.ModeStrict)
	return cmd
}

func (a *App) runExplain(cmd *cobra.Command, opts explainOptions) error {
	text, err := a.readText(opts.in)
	if err != nil {
		return err
	}
	exp, err := mbase.Explain(cmd.Context(), a.Registry, opts.codec, text, opts.mode)
	if err != nil {
		return err
	}
	if a.structured() {
		return a.emit(stdStream, exp, false)
	}

	s := a.styles()
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.Heading("Codec:"), exp.Codec)
	fmt.Fprintf(&b, "%s %s\n\n", s.Heading("Input:"), exp.InputPreview)
	if exp.Valid {
		fmt.Fprintf(&b, "%s %s\n", s.Heading("Status:"), s.Good("VALID"))
		b.WriteString("The input is valid for this codec.\n")
		_, err = fmt.Fprint(a.Out, b.String())
		return err
	}

	fmt.Fprintf(&b, "%s %s\n\n", s.Heading("Status:"), s.Bad("INVALID"))
	fmt.Fprintf(&b, "%s %s\n", s.Heading("Error:"), exp.Error.Message)
	if exp.Error.Position != nil {
		fmt.Fprintf(&b, "%s %d\n", s.Heading("Position:"), *exp.Error.Position)
	}
	if exp.Error.Char != "" {
		fmt.Fprintf(&b, "%s %q\n", s.Heading("Character:"), exp.Error.Char)
	}
	if exp.Error.Context != "" {
		fmt.Fprintf(&b, "\n%s\n", exp.Error.Context)
	}
	if len(exp.Suggestions) > 0 {
		fmt.Fprintf(&b, "\n%s\n", s.Heading("Suggestions:"))
		for _, suggestion := range exp.Suggestions {
			fmt.Fprintf(&b, "  - %s\n", suggestion)
		}
	}
	_, err = fmt.Fprint(a.Out, b.String())
	return err
}
