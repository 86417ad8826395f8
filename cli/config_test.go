package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/mbase"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `codec: base58btc
mode: lenient
top: 3
format: json
color: false
log-level: debug
`)
	cfg, resolved, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, path, resolved)
	require.Equal(t, "base58btc", cfg.Codec)
	require.Equal(t, "lenient", cfg.Mode)
	require.Equal(t, 3, cfg.Top)
	require.Equal(t, "json", cfg.Format)
	require.NotNil(t, cfg.Color)
	require.False(t, *cfg.Color)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_DefaultMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	homedir.DisableCache = true

	cfg, resolved, err := LoadConfig("")
	require.NoError(t, err)
	require.Empty(t, resolved)
	require.Equal(t, Config{}, cfg)
}

func TestLoadConfig_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".mbase"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".mbase", "config.yaml"), []byte("codec: z85\n"), 0o644))

	cfg, resolved, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".mbase", "config.yaml"), resolved)
	require.Equal(t, "z85", cfg.Codec)
}

func TestLoadConfig_ExplicitPathMustExist(t *testing.T) {
	_, _, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent"))
	require.Error(t, err)
	require.True(t, errors.Is(err, mbase.ErrIO))
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "codec: [unclosed"},
		{"mode", "mode: fuzzy\n"},
		{"format", "format: toml\n"},
		{"top", "top: -1\n"},
		{"log level", "log-level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestConfig_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "codec: base16lower\nmode: lenient\n")

	r := run(t, "", "--config", path, "enc", "-i", "hello")
	require.Equal(t, 0, r.code, r.err)
	require.Equal(t, "68656c6c6f\n", r.out)

	r = run(t, "", "--config", path, "dec", "-i", "68 65 6C 6C 6F")
	require.Equal(t, 0, r.code, r.err)
	require.Equal(t, "hello", r.out)
}

func TestConfig_FlagsOverride(t *testing.T) {
	path := writeConfig(t, "codec: base16lower\nformat: json\n")

	r := run(t, "", "--config", path, "--format", "text", "enc", "--codec", "base64", "-i", "hello")
	require.Equal(t, 0, r.code, r.err)
	require.Equal(t, "aGVsbG8\n", r.out)
}

func TestConfig_MissingExplicit(t *testing.T) {
	r := run(t, "", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "list")
	require.Equal(t, mbase.ExitIO, r.code)
}
