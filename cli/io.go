package cli

import (
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"

	"github.com/zoobzio/mbase"
)

const stdStream = "-"

var pathExtensions = []string{".txt", ".bin", ".dat", ".json", ".xml", ".csv", ".log"}

// looksLikePath reports whether a literal input was probably meant as a
// file name.
func looksLikePath(s string) bool {
	if strings.ContainsAny(s, `/\`) {
		return true
	}
	for _, ext := range pathExtensions {
		if strings.HasSuffix(s, ext) {
			return true
		}
	}
	return false
}

// readInput resolves an input argument: "-" reads In, "@path" reads a
// file, anything else is the literal bytes of the argument.
func (a *App) readInput(target string) ([]byte, error) {
	switch {
	case target == stdStream:
		data, err := io.ReadAll(a.In)
		if err != nil {
			return nil, mbase.NewIOError("read", "", err)
		}
		return data, nil
	case strings.HasPrefix(target, "@"):
		path, err := homedir.Expand(target[1:])
		if err != nil {
			return nil, mbase.NewIOError("read", target[1:], err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, mbase.NewIOError("read", path, err)
		}
		return data, nil
	}
	if looksLikePath(target) {
		a.Logger.Warn("treating argument as literal data; use @path to read a file", zap.String("input", target))
	}
	return []byte(target), nil
}

// readText reads an input meant for decoding. One trailing line ending
// from a stream or file is dropped so piped text decodes under strict mode.
func (a *App) readText(target string) (string, error) {
	data, err := a.readInput(target)
	if err != nil {
		return "", err
	}
	text := string(data)
	if target == stdStream || strings.HasPrefix(target, "@") {
		text = strings.TrimSuffix(text, "\n")
		text = strings.TrimSuffix(text, "\r")
	}
	return text, nil
}

// writeOutput writes data to an output argument: "-" writes Out, anything
// else names a file, with an optional leading '@'. Binary data bound for a
// terminal becomes a hex preview unless force is set.
func (a *App) writeOutput(target string, data []byte, force bool) error {
	if target != stdStream {
		path, err := homedir.Expand(strings.TrimPrefix(target, "@"))
		if err != nil {
			return mbase.NewIOError("write", target, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return mbase.NewIOError("write", path, err)
		}
		a.Logger.Debug("output written", zap.String("path", path), zap.Int("bytes", len(data)))
		return nil
	}

	if !force && a.isTerminal(a.Out) && !safeForTerminal(data) {
		a.Logger.Debug("binary output to terminal, writing hex preview", zap.Int("bytes", len(data)))
		return a.hexPreview(data)
	}
	if _, err := a.Out.Write(data); err != nil {
		return mbase.NewIOError("write", "", err)
	}
	return nil
}

// writeText writes a text result, ending it with a newline on the
// standard stream.
func (a *App) writeText(target, text string) error {
	if target == stdStream {
		text += "\n"
	}
	return a.writeOutput(target, []byte(text), true)
}
