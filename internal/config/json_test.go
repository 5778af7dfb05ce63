package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {"version": "1.0.0"},
		"storage": {"db": {"dsn": "postgres://localhost:5432/todosync"}},
		"server": {"http_address": "localhost:3000", "request_timeout": "30s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "postgres://localhost:5432/todosync", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath, "json file cannot point to another json file")
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, `{broken`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDurationUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "duration string",
			input: `"1h30m"`,
			want:  90 * time.Minute,
		},
		{
			name:  "seconds string",
			input: `"45s"`,
			want:  45 * time.Second,
		},
		{
			name:  "nanoseconds number",
			input: `1000000000`,
			want:  time.Second,
		},
		{
			name:    "unparsable string",
			input:   `"soon"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
