package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		want    func(t *testing.T, cfg *Config)
		errMsg  string
	}{
		{
			name: "reads values from the config file",
			content: `
database:
  host: db.example.com
  port: 3307
  database: vocab
  username: admin
extract:
  min_frequency: 2
exports:
  directory: /tmp/exports
`,
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 3307, cfg.Database.Port)
				assert.Equal(t, "vocab", cfg.Database.Database)
				assert.Equal(t, 2, cfg.Extract.MinFrequency)
				assert.Equal(t, "/tmp/exports", cfg.Exports.Directory)
			},
		},
		{
			name:    "applies defaults for missing values",
			content: "database:\n  host: localhost\n",
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3306, cfg.Database.Port)
				assert.Equal(t, "vocabrecall", cfg.Database.Database)
				assert.Equal(t, 100000, cfg.Tagger.ChunkSize)
				assert.Equal(t, 5, cfg.Tagger.ProbeTimeoutSeconds)
				assert.Equal(t, 1, cfg.Extract.MinFrequency)
				assert.Equal(t, "exports", cfg.Exports.Directory)
			},
		},
		{
			name:    "reads credentials from the environment",
			content: "database:\n  host: localhost\n",
			env: map[string]string{
				"TAGGER_BASE_URL": "http://tagger.local:8080",
				"TAGGER_API_KEY":  "secret-key",
				"DB_PASSWORD":     "hunter2",
			},
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://tagger.local:8080", cfg.Tagger.BaseURL)
				assert.Equal(t, "secret-key", cfg.Tagger.APIKey)
				assert.Equal(t, "hunter2", cfg.Database.Password)
			},
		},
		{
			name:    "rejects an out of range port",
			content: "database:\n  port: 70000\n",
			errMsg:  "invalid configuration",
		},
		{
			name:    "rejects a malformed tagger url",
			content: "tagger:\n  base_url: not-a-url\n",
			errMsg:  "invalid configuration",
		},
		{
			name:    "rejects a zero min frequency",
			content: "extract:\n  min_frequency: 0\n",
			errMsg:  "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			loader, err := NewConfigLoader(writeConfigFile(t, tt.content))
			require.NoError(t, err)

			cfg, err := loader.Load()
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			tt.want(t, cfg)
		})
	}
}
