package server

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort          = 3000
	DefaultLogLevel      = "info"
	DefaultRasterizer    = RasterizerChrome
	DefaultRenderTimeout = 30 * time.Second
)

const (
	RasterizerChrome = "chrome"
	RasterizerSketch = "sketch"
)

type Config struct {
	BindAddr      string        `yaml:"bind"`
	Port          int           `yaml:"port"`
	TemplatesDir  string        `yaml:"templatesDir"`
	LogLevel      string        `yaml:"logLevel"`
	Rasterizer    string        `yaml:"rasterizer"`
	RenderTimeout time.Duration `yaml:"renderTimeout"`
	Chrome        ChromeConfig  `yaml:"chrome"`
	Sketch        SketchConfig  `yaml:"sketch,omitempty"`
}

type ChromeConfig struct {
	ExecPath  string `yaml:"execPath,omitempty"`
	NoSandbox bool   `yaml:"noSandbox"`
}

type SketchConfig struct {
	FontPath string  `yaml:"fontPath,omitempty"`
	FontSize float64 `yaml:"fontSize,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		BindAddr:      "",
		Port:          DefaultPort,
		TemplatesDir:  "",
		LogLevel:      DefaultLogLevel,
		Rasterizer:    DefaultRasterizer,
		RenderTimeout: DefaultRenderTimeout,
		Chrome:        ChromeConfig{NoSandbox: true},
	}
}

// LoadConfig applies, in order, the defaults, the YAML file at configPath (if
// any) and environment overrides, then validates the result.
func LoadConfig(configPath string) (Config, error) {
	cfg := DefaultConfig()

	if strings.TrimSpace(configPath) != "" {
		b, err := os.ReadFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("read config file %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", configPath, err)
		}
	}

	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Rasterizer = strings.ToLower(strings.TrimSpace(cfg.Rasterizer))

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	env := func(key string) string { return strings.TrimSpace(getenv(key)) }

	if v := env("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse PORT=%q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := env("BANNERGEN_BIND"); v != "" {
		cfg.BindAddr = v
	}
	if v := env("BANNERGEN_TEMPLATES_DIR"); v != "" {
		cfg.TemplatesDir = v
	}
	if v := env("BANNERGEN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := env("BANNERGEN_RASTERIZER"); v != "" {
		cfg.Rasterizer = v
	}
	if v := env("BANNERGEN_RENDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse BANNERGEN_RENDER_TIMEOUT=%q: %w", v, err)
		}
		cfg.RenderTimeout = d
	}
	if v := env("BANNERGEN_CHROME_PATH"); v != "" {
		cfg.Chrome.ExecPath = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in range 0..65535")
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Rasterizer {
	case RasterizerChrome, RasterizerSketch:
	default:
		return fmt.Errorf("invalid rasterizer %q (expected chrome|sketch)", c.Rasterizer)
	}
	if c.RenderTimeout < 0 {
		return fmt.Errorf("renderTimeout must not be negative")
	}
	return nil
}

func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.BindAddr, c.Port)
}
