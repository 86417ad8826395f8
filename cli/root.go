package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/mbase/render"
)

// NewRootCommand returns the "mbase" command tree bound to a.
func NewRootCommand(a *App, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "mbase",
		Short:         "Universal base encode/decode/convert CLI",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	formats := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		formats = append(formats, string(f))
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.mbase/config.yaml)")
	root.PersistentFlags().Var(&a.format, "format", "output format: "+strings.Join(formats, ", "))
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newEncCommand(a),
		newDecCommand(a),
		newConvCommand(a),
		newListCommand(a),
		newInfoCommand(a),
		newVerifyCommand(a),
		newFmtCommand(a),
		newDetectCommand(a),
		newExplainCommand(a),
	)
	return root
}
