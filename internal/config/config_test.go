package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(body), 0o644))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		body    string // empty means no file
		env     map[string]string
		want    types.Config
		wantErr error
	}{
		{
			name: "missing file yields defaults",
			want: types.DefaultConfig(),
		},
		{
			name: "file values override defaults",
			body: "log_level: debug\nlog_format: production\nsynchronized: true\n",
			want: types.Config{LogLevel: "debug", LogFormat: types.LogFormatProduction, Synchronized: true},
		},
		{
			name: "partial file keeps remaining defaults",
			body: "synchronized: true\n",
			want: types.Config{LogLevel: types.DefaultLogLevel, LogFormat: types.DefaultLogFormat, Synchronized: true},
		},
		{
			name: "environment overrides file",
			body: "log_level: debug\n",
			env:  map[string]string{"CONTACTS_LOG_LEVEL": "error", "CONTACTS_SYNCHRONIZED": "true"},
			want: types.Config{LogLevel: "error", LogFormat: types.DefaultLogFormat, Synchronized: true},
		},
		{
			name:    "unknown log level fails validation",
			body:    "log_level: chatty\n",
			wantErr: types.ErrLogLevelUnknown,
		},
		{
			name:    "unknown log format fails validation",
			body:    "log_format: xml\n",
			wantErr: types.ErrLogFormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.body != "" {
				writeConfig(t, dir, tt.body)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Load(dir)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "log_level: [unterminated\n")

	_, err := Load(dir)

	assert.Error(t, err)
}

func TestEnsureDefault(t *testing.T) {
	t.Run("creates directory and default file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "contacts")

		require.NoError(t, EnsureDefault(dir))

		data, err := os.ReadFile(filepath.Join(dir, configFileExt))
		require.NoError(t, err)
		assert.Equal(t, defaultConfigYAML, string(data))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, types.DefaultConfig(), cfg)
	})

	t.Run("leaves an existing file alone", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "log_level: warn\n")

		require.NoError(t, EnsureDefault(dir))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
	})
}
