package routekit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		opts, err := ParseConfig(`
[log]
path = "var/demo.log"
level = "debug"
internal_level = "warn"
console = true
max_size_mb = 5
max_backups = 1
max_age_days = 7

[locale]
language = "it"
`)
		require.NoError(t, err)
		require.Equal(t, Options{
			LogPath:          "var/demo.log",
			LogLevel:         "debug",
			InternalLogLevel: "warn",
			Console:          true,
			LogMaxSizeMB:     5,
			LogMaxBackups:    1,
			LogMaxAgeDays:    7,
			Language:         "it",
		}, opts)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		opts, err := ParseConfig("")
		require.NoError(t, err)
		require.Equal(t, DefaultOptions(), opts)
	})

	t.Run("partial file", func(t *testing.T) {
		opts, err := ParseConfig("[locale]\nlanguage = \"en-GB\"\n")
		require.NoError(t, err)
		require.Equal(t, "en-GB", opts.Language)
		require.Equal(t, DefaultOptions().LogPath, opts.LogPath)
	})

	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"unknown key", "[log]\ncolour = true\n", "unknown config keys: log.colour"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "invalid log level"},
		{"bad internal level", "[log]\ninternal_level = \"loud\"\n", "invalid internal log level"},
		{"negative rotation", "[log]\nmax_backups = -1\n", "must not be negative"},
		{"bad language", "[locale]\nlanguage = \"???\"\n", "invalid language"},
		{"not toml", "[log", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.data)
			require.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routekit.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"error\"\n"), 0o644))

	opts, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "error", opts.LogLevel)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	opts, err = LoadConfigIfExists(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultOptions(), opts)

	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = 3\n"), 0o644))
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, path)
}
