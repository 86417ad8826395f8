package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/mbase"
)

type verifyOptions struct {
	codec string
	in    string
	mode  mbase.Mode
}

func newVerifyCommand(a *App) *cobra.Command {
	var opts verifyOptions
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify input conforms to a codec",
		Long: "Verify checks the input against a codec without writing the decoded bytes.\n" +
			"It prints \"valid\" or \"invalid: <reason>\" and exits with the code for the failure.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.codec = a.codecName(cmd, "codec", opts.codec)
			opts.mode = a.mode(cmd, opts.mode)
			return a.runVerify(opts)
		},
	}
	cmd.Flags().StringVar(&opts.codec, "codec", defaultCodec, "codec name or alias")
	addIOFlags(cmd.Flags(), &opts.in, nil)
	addModeFlag(cmd.Flags(), &opts.mode, mbase.ModeStrict)
	return cmd
}

func (a *App) runVerify(opts verifyOptions) error {
	c, err := a.codec(opts.codec)
	if err != nil {
		return err
	}
	text, err := a.readText(opts.in)
	if err != nil {
		return err
	}

	verr := mbase.Validate(c, text, opts.mode)
	result := VerifyResult{
		SchemaVersion: schemaVersion,
		Valid:         verr == nil,
		Codec:         opts.codec,
	}
	if verr != nil {
		msg := verr.Error()
		result.Error = &msg
	}

	if a.structured() {
		if err := a.emit(stdStream, result, false); err != nil {
			return err
		}
	} else {
		s := a.styles()
		if verr == nil {
			fmt.Fprintln(a.Out, s.Good("valid"))
		} else {
			fmt.Fprintf(a.Out, "%s %s\n", s.Bad("invalid:"), verr)
		}
	}
	if verr != nil {
		return &reportedError{err: verr}
	}
	return nil
}
