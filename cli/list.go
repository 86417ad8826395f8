package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/mbase/render"
)

func newListCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List supported codecs",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			metas := a.Registry.List()
			infos := make([]CodecInfo, 0, len(metas))
			for _, m := range metas {
				infos = append(infos, newCodecInfo(m))
			}
			if a.structured() {
				return a.emit(stdStream, CodecList{Codecs: infos}, false)
			}
			return render.Table(a.Out, infos)
		},
	}
}

func newInfoCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info <codec>",
		Short: "Show codec details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec(args[0])
			if err != nil {
				return err
			}
			info := newCodecInfo(c.Meta())
			if a.structured() {
				return a.emit(stdStream, info, false)
			}

			s := a.styles()
			prefix := info.Prefix
			if prefix == "" {
				prefix = "-"
			}
			var b strings.Builder
			fmt.Fprintf(&b, "%s %s\n", s.Heading("Name:       "), info.Name)
			fmt.Fprintf(&b, "%s %s\n", s.Heading("Aliases:    "), strings.Join(info.Aliases, ", "))
			fmt.Fprintf(&b, "%s %s\n", s.Heading("Alphabet:   "), info.Alphabet)
			fmt.Fprintf(&b, "%s %s\n", s.Heading("Multibase:  "), prefix)
			fmt.Fprintf(&b, "%s %s\n", s.Heading("Padding:    "), info.Padding)
			fmt.Fprintf(&b, "%s %s\n", s.Heading("Case:       "), info.Case)
			fmt.Fprintf(&b, "%s %s\n", s.Heading("Description:"), info.Description)
			_, err = fmt.Fprint(a.Out, b.String())
			return err
		},
	}
}
