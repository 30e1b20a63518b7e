package config

import "github.com/waiooaung/portfolio/internal/scroll"

// Config is the top-level portfolio configuration, corresponding to
// portfolio.yml.
type Config struct {
	Server    ServerConfig `yaml:"server" koanf:"server"`
	Scroll    ScrollConfig `yaml:"scroll" koanf:"scroll"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
}

// ServerConfig holds the HTTP host settings.
type ServerConfig struct {
	Port int    `yaml:"port" koanf:"port"`
	Mode string `yaml:"mode" koanf:"mode"`
	Live bool   `yaml:"live" koanf:"live"`
}

// ScrollConfig tunes the scroll-to-top control.
type ScrollConfig struct {
	Threshold float64         `yaml:"threshold" koanf:"threshold"`
	Behavior  scroll.Behavior `yaml:"behavior" koanf:"behavior"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Mode: "release",
			Live: true,
		},
		Scroll: ScrollConfig{
			Threshold: scroll.DefaultThreshold,
			Behavior:  scroll.DefaultBehavior,
		},
		OutputDir: "public",
	}
}
