// Package svcconf loads the optional server configuration file (INI). Flags
// in cmd override anything read here.
package svcconf

import (
	"os"
	"time"

	"gopkg.in/ini.v1"
)

type Config struct {
	Listen            string        `ini:"listen"`
	LogLevel          string        `ini:"log_level"`
	ReadHeaderTimeout time.Duration `ini:"read_header_timeout"`
	FormatTimeout     time.Duration `ini:"format_timeout"`
	ShutdownTimeout   time.Duration `ini:"shutdown_timeout"`
	MaxBodyBytes      int64         `ini:"max_body_bytes"`
}

func Default() Config {
	return Config{
		Listen:            "127.0.0.1:25520",
		LogLevel:          "info",
		ReadHeaderTimeout: 5 * time.Second,
		FormatTimeout:     15 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		MaxBodyBytes:      8 * 1024 * 1024,
	}
}

// Load reads fileName over the defaults. A missing file is not an error; an
// unreadable or malformed file is.
func Load(fileName string) (Config, error) {
	cfg := Default()
	if fileName != "" {
		if _, err := os.Stat(fileName); !os.IsNotExist(err) {
			f, err := ini.Load(fileName)
			if err != nil {
				return cfg, err
			}
			if err := f.Section("server").MapTo(&cfg); err != nil {
				return cfg, err
			}
		}
	}
	if lv := os.Getenv("NODEFMT_LOG_LEVEL"); lv != "" {
		cfg.LogLevel = lv
	}
	return cfg, nil
}
