package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/mbase"
	"github.com/zoobzio/mbase/render"
)

const defaultTop = 5

type detectOptions struct {
	in  string
	top int
}

func newDetectCommand(a *App) *cobra.Command {
	var opts detectOptions
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect likely codecs for input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("top") && a.Config.Top > 0 {
				opts.top = a.Config.Top
			}
			return a.runDetect(cmd, opts)
		},
	}
	addIOFlags(cmd.Flags(), &opts.in, nil)
	cmd.Flags().IntVar(&opts.top, "top", defaultTop, "number of candidates to show")
	return cmd
}

func (a *App) runDetect(cmd *cobra.Command, opts detectOptions) error {
	if opts.top < 1 {
		return mbase.NewInputErrorf("--top must be at least 1, got %d", opts.top)
	}
	text, err := a.readText(opts.in)
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(text)

	result := DetectResult{
		SchemaVersion: schemaVersion,
		Candidates:    mbase.Detect(cmd.Context(), a.Registry, trimmed, opts.top),
		InputPreview:  mbase.Preview(trimmed),
	}
	if a.structured() {
		return a.emit(stdStream, result, false)
	}

	s := a.styles()
	fmt.Fprintf(a.Out, "%s %s\n\n", s.Heading("Input:"), result.InputPreview)
	if len(result.Candidates) == 0 {
		fmt.Fprintln(a.Out, "No likely codecs detected.")
		return nil
	}
	if err := render.Table(a.Out, result.Candidates); err != nil {
		return err
	}
	for _, c := range result.Candidates {
		for _, w := range c.Warnings {
			fmt.Fprintf(a.Out, "%s %s: %s\n", s.Muted("warning"), c.Codec, w)
		}
	}
	return nil
}
