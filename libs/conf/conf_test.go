package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndGet(t *testing.T) {
	path := writeProfile(t, `
[global]
app_name = "dial-component"
app_version = "0.1.0"

[dial]
host = "https://dial.example.com"
api_version = "2024-02-01"
`)
	Load(path)

	assert.Equal(t, "dial-component", os.Getenv("APP_NAME"))
	assert.NotNil(t, Get("dial"))
	assert.Nil(t, Get("missing"))
}
