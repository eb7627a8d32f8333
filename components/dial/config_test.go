package dial

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sergesha/langflow/libs/conf"
	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	cfg := Config{
		Host:        "https://dial.example.com",
		APIKey:      "secret",
		ModelName:   "gpt-4o",
		Temperature: 0.7,
		APIVersion:  "2024-02-01",
	}
	assert.NoError(t, cfg.Validate())

	bad := cfg
	bad.Temperature = 1.5
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Host = "not a url"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.MaxTokens = -1
	assert.Error(t, bad.Validate())
}

func TestDefaultsFromProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.toml")
	err := os.WriteFile(path, []byte(`
[global]
app_name = "dial-component"
app_version = "0.1.0"

[dial]
host = "https://dial.example.com"
`), 0o644)
	assert.NoError(t, err)
	conf.Load(path)

	defaults := DefaultsFromProfile()
	assert.Equal(t, "https://dial.example.com", defaults.Host)
	assert.Equal(t, APIVersions[0], defaults.APIVersion)
}
