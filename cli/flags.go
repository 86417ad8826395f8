package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/zoobzio/mbase"
)

const defaultCodec = "base64"

var _ pflag.Value = modeValue{}

// modeValue binds a --mode flag to an mbase.Mode.
type modeValue struct {
	mode *mbase.Mode
}

func (m modeValue) String() string {
	if m.mode == nil {
		return ""
	}
	return string(*m.mode)
}

func (m modeValue) Set(s string) error {
	parsed, err := mbase.ParseMode(strings.ToLower(s))
	if err != nil {
		return err
	}
	*m.mode = parsed
	return nil
}

func (modeValue) Type() string { return "mode" }

// addModeFlag installs --mode on fs, defaulting to def.
func addModeFlag(fs *pflag.FlagSet, mode *mbase.Mode, def mbase.Mode) {
	*mode = def
	fs.Var(modeValue{mode}, "mode", "decode mode: strict or lenient")
}

// addIOFlags installs the -i/--in and, when out is non-nil, -o/--out
// flags on fs.
func addIOFlags(fs *pflag.FlagSet, in, out *string) {
	fs.StringVarP(in, "in", "i", "-", "input: - for stdin, @path for a file, otherwise literal")
	if out != nil {
		fs.StringVarP(out, "out", "o", "-", "output: - for stdout, otherwise a file path (optionally @path)")
	}
}
