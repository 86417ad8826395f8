package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/zoobzio/mbase"
	"github.com/zoobzio/mbase/render"
	"github.com/zoobzio/mbase/render/bson"
	"github.com/zoobzio/mbase/render/cbor"
	"github.com/zoobzio/mbase/render/json"
	"github.com/zoobzio/mbase/render/msgpack"
	"github.com/zoobzio/mbase/render/xml"
	"github.com/zoobzio/mbase/render/yaml"
)

const (
	previewBytesPerLine = 16
	previewMaxLines     = 32
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// safeForTerminal reports whether data can be written to a terminal as is.
func safeForTerminal(data []byte) bool {
	return utf8.Valid(data)
}

// hexPreview writes an offset/hex/ASCII dump of at most previewMaxLines
// lines to Out, with notices on Err.
func (a *App) hexPreview(data []byte) error {
	fmt.Fprintf(a.Err, "binary output (%d bytes); showing hex preview (use --force to write raw bytes or -o @file)\n\n", len(data))

	var b strings.Builder
	lines := (len(data) + previewBytesPerLine - 1) / previewBytesPerLine
	shown := min(lines, previewMaxLines)
	for line := 0; line < shown; line++ {
		offset := line * previewBytesPerLine
		chunk := data[offset:min(offset+previewBytesPerLine, len(data))]

		fmt.Fprintf(&b, "%08x  ", offset)
		for i := 0; i < previewBytesPerLine; i++ {
			if i == 8 {
				b.WriteByte(' ')
			}
			if i < len(chunk) {
				fmt.Fprintf(&b, "%02x ", chunk[i])
			} else {
				b.WriteString("   ")
			}
		}
		b.WriteString(" |")
		for _, c := range chunk {
			if c >= 0x20 && c < 0x7f {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	if _, err := io.WriteString(a.Out, b.String()); err != nil {
		return mbase.NewIOError("write", "", err)
	}
	if lines > previewMaxLines {
		fmt.Fprintf(a.Err, "\n... (%d more bytes)\n", len(data)-previewMaxLines*previewBytesPerLine)
	}
	return nil
}

// renderer returns the Renderer for the selected structured format.
func (a *App) renderer() render.Renderer {
	switch a.format {
	case render.FormatYAML:
		return yaml.New()
	case render.FormatXML:
		return xml.New()
	case render.FormatMsgpack:
		return msgpack.New()
	case render.FormatBSON:
		return bson.New()
	case render.FormatCBOR:
		return cbor.New()
	}
	if a.useColor() {
		return json.NewColor()
	}
	return json.New()
}

// structured reports whether results should be rendered rather than
// written as text.
func (a *App) structured() bool {
	return a.format != render.FormatText
}

// emit renders v in the selected format to the output argument. Binary
// formats bound for a terminal fall back to a hex preview unless force is
// set.
func (a *App) emit(target string, v any, force bool) error {
	r := a.renderer()
	data, err := r.Marshal(v)
	if err != nil {
		return fmt.Errorf("render %s: %w", a.format, err)
	}
	if a.format.Binary() {
		return a.writeOutput(target, data, force)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	if target == stdStream && a.format == render.FormatJSON && a.useColor() {
		if _, err := a.ColorOut.Write(data); err != nil {
			return mbase.NewIOError("write", "", err)
		}
		return nil
	}
	return a.writeOutput(target, data, true)
}

// printable reports whether decoded bytes read as text: valid UTF-8 with
// no control characters other than tab, CR and LF.
func printable(data []byte) bool {
	if !utf8.Valid(data) {
		return false
	}
	for _, r := range string(data) {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return false
		}
	}
	return true
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
