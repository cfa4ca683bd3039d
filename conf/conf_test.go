package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConf(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pollecho.ini")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write conf: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, 1000, cfg.Server.MaxConns)
	assert.Equal(t, 0xFFFF, cfg.Server.BufferSize)
	assert.Equal(t, -1, cfg.Server.PollTimeoutMs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Stdout)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConf(t, `
[server]
addr = 0.0.0.0:9090
max_conns = 64

[log]
level = debug
stdout = false
`)

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr)
	assert.Equal(t, 64, cfg.Server.MaxConns)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Stdout)

	// Untouched keys keep their defaults.
	assert.Equal(t, 0xFFFF, cfg.Server.BufferSize)
	assert.Equal(t, -1, cfg.Server.PollTimeoutMs)
	assert.Equal(t, 100, cfg.Log.MaxFileSizeMB)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	assert.Error(t, err)
}

func TestLoadRejectsUselessCapacity(t *testing.T) {
	path := writeConf(t, `
[server]
max_conns = 1
`)

	_, err := Load(path)
	assert.Error(t, err)
}
