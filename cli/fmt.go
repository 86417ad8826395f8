package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/mbase"
)

type fmtOptions struct {
	codec string
	in    string
	out   string
	mode  mbase.Mode
	wrap  int
	group int
	sep   string
}

func newFmtCommand(a *App) *cobra.Command {
	var opts fmtOptions
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Normalize and format encoded data",
		Long: "Fmt decodes the input and re-encodes it in the codec's canonical form,\n" +
			"then optionally groups and wraps the result. The mode defaults to lenient.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.codec = a.codecName(cmd, "codec", opts.codec)
			return a.runFmt(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.codec, "codec", defaultCodec, "codec name or alias")
	addIOFlags(cmd.Flags(), &opts.in, &opts.out)
	addModeFlag(cmd.Flags(), &opts.mode, mbase.ModeLenient)
	cmd.Flags().IntVar(&opts.wrap, "wrap", 0, "wrap output at N characters (0 disables)")
	cmd.Flags().IntVar(&opts.group, "group", 0, "group output in runs of N characters (0 disables)")
	cmd.Flags().StringVar(&opts.sep, "sep", " ", "separator between groups")
	return cmd
}

func (a *App) runFmt(cmd *cobra.Command, opts fmtOptions) error {
	c, err := a.codec(opts.codec)
	if err != nil {
		return err
	}
	if opts.wrap < 0 || opts.group < 0 {
		return mbase.NewInputError("--wrap and --group must not be negative")
	}
	text, err := a.readText(opts.in)
	if err != nil {
		return err
	}

	data, err := mbase.Decode(cmd.Context(), c, text, opts.mode)
	if err != nil {
		return err
	}
	out, err := mbase.Encode(cmd.Context(), c, data)
	if err != nil {
		return err
	}
	out = chunk(out, opts.group, opts.sep)
	out = chunk(out, opts.wrap, "\n")
	return a.writeText(opts.out, out)
}

// chunk splits s into runs of n runes joined by sep. n of zero returns s.
func chunk(s string, n int, sep string) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	parts := make([]string, 0, (len(runes)+n-1)/n)
	for i := 0; i < len(runes); i += n {
		parts = append(parts, string(runes[i:min(i+n, len(runes))]))
	}
	return strings.Join(parts, sep)
}
