package client

import "github.com/BurntSushi/toml"

// Config is the on-disk shape of an APRS-IS connection's settings
// (spec.md §6's ambient configuration: host, port, callsign, passcode,
// filter, software/version).
type Config struct {
	Callsign string `toml:"callsign"`
	Passcode string `toml:"passcode"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Filter   string `toml:"filter"`
	Software string `toml:"software"`
	Version  string `toml:"version"`
}

// LoadConfig reads a TOML connection config from path and applies its
// defaults (rotate.aprs.net:14580, filter t/poimqstunw) for any field left
// unset.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Filter == "" {
		cfg.Filter = defaultFilter
	}
	return &cfg, nil
}

// NewFromConfig builds a Client from a loaded Config.
func NewFromConfig(cfg *Config, callbacks Callbacks, options ...Option) *Client {
	opts := append([]Option{WithFilter(cfg.Filter)}, options...)
	if cfg.Software != "" {
		version := cfg.Version
		if version == "" {
			version = "1.0"
		}
		opts = append(opts, WithSoftware(cfg.Software, version))
	}
	c := New(cfg.Callsign, cfg.Passcode, callbacks, opts...)
	c.Host = cfg.Host
	c.Port = cfg.Port
	return c
}
