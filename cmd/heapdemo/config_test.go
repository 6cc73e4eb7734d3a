package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	fs := flagSet()
	require.NoError(t, fs.Parse(nil))

	cfg, err := loadConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	path := writeConfig(t, `
values = [4, 8, 15, 16, 23, 42]
delete = 3
drain = true
log_level = "debug"
`)

	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "FileOnly",
			args: []string{"--config", path},
			want: Config{Values: []int{4, 8, 15, 16, 23, 42}, Delete: 3, Drain: true, LogLevel: "debug"},
		},
		{
			name: "FlagsOverrideFile",
			args: []string{"-c", path, "--values", "3,1,2", "-d", "1", "--log-level", "warn"},
			want: Config{Values: []int{3, 1, 2}, Delete: 1, Drain: true, LogLevel: "warn"},
		},
		{
			name: "UnsetFlagsKeepFile",
			args: []string{"-c", path, "--drain=false"},
			want: Config{Values: []int{4, 8, 15, 16, 23, 42}, Delete: 3, Drain: false, LogLevel: "debug"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := flagSet()
			require.NoError(t, fs.Parse(tc.args))

			cfg, err := loadConfig(fs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("NegativeDelete", func(t *testing.T) {
		fs := flagSet()
		require.NoError(t, fs.Parse([]string{"--delete=-1"}))
		_, err := loadConfig(fs)
		require.ErrorIs(t, err, errBadDelete)
	})

	t.Run("UnknownLevel", func(t *testing.T) {
		fs := flagSet()
		require.NoError(t, fs.Parse([]string{"--log-level", "loud"}))
		_, err := loadConfig(fs)
		require.ErrorIs(t, err, errBadLogLevel)
	})

	t.Run("MissingFile", func(t *testing.T) {
		fs := flagSet()
		require.NoError(t, fs.Parse([]string{"-c", filepath.Join(t.TempDir(), "nope.toml")}))
		_, err := loadConfig(fs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})

	t.Run("MalformedFile", func(t *testing.T) {
		fs := flagSet()
		require.NoError(t, fs.Parse([]string{"-c", writeConfig(t, "values = [1, \"two\"]")}))
		_, err := loadConfig(fs)
		require.Error(t, err)
	})
}
