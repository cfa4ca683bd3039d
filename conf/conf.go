package conf

import (
	"fmt"

	"github.com/go-ini/ini"
)

type ServerConfig struct {
	Addr          string `ini:"addr"`
	MaxConns      int    `ini:"max_conns"`
	BufferSize    int    `ini:"buffer_size"`
	PollTimeoutMs int    `ini:"poll_timeout_ms"`
}

type LogConfig struct {
	Level         string `ini:"level"`
	Dir           string `ini:"dir"`
	MaxFileSizeMB int    `ini:"max_file_size_mb"`
	MaxFileAgeDay int    `ini:"max_file_age_day"`
	Stdout        bool   `ini:"stdout"`
}

type Config struct {
	Server ServerConfig
	Log    LogConfig
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          "127.0.0.1:8080",
			MaxConns:      1000,
			BufferSize:    0xFFFF,
			PollTimeoutMs: -1,
		},
		Log: LogConfig{
			Level:         "info",
			MaxFileSizeMB: 100,
			MaxFileAgeDay: 7,
			Stdout:        true,
		},
	}
}

// Load reads an ini file over the defaults; missing keys keep their default
// value.
func Load(path string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("conf: load %s: %w", path, err)
	}

	cfg := Default()
	if err := f.Section("server").MapTo(&cfg.Server); err != nil {
		return nil, fmt.Errorf("conf: section server: %w", err)
	}
	if err := f.Section("log").MapTo(&cfg.Log); err != nil {
		return nil, fmt.Errorf("conf: section log: %w", err)
	}
	if cfg.Server.MaxConns < 2 {
		return nil, fmt.Errorf("conf: max_conns %d leaves no client slot", cfg.Server.MaxConns)
	}
	return cfg, nil
}
