// Package config loads runtime settings from defaults, an optional
// config.yaml, a .env file and HLTV_CAL_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. HLTV_CAL_BASE_URL
const EnvPrefix = "HLTV_CAL"

// Config is the full runtime configuration
type Config struct {
	BaseURL       string        `mapstructure:"base_url"`
	UserAgent     string        `mapstructure:"user_agent"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
	Browser       bool          `mapstructure:"browser"`
	DataDir       string        `mapstructure:"data_dir"`
	DownloadDir   string        `mapstructure:"download_dir"`
	LogLevel      string        `mapstructure:"log_level"`
	Gist          GistConfig    `mapstructure:"gist"`
}

// GistConfig enables the gist settings backend when both fields are set
type GistConfig struct {
	ID    string `mapstructure:"id"`
	Token string `mapstructure:"token"`
}

// Enabled reports whether settings should sync through a gist
func (g GistConfig) Enabled() bool {
	return g.ID != "" && g.Token != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "https://www.hltv.org")
	v.SetDefault("user_agent", "hltv-cal/1.0 (github.com/pfrederiksen/hltv-cal)")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("rate_per_second", 1.0)
	v.SetDefault("browser", false)
	v.SetDefault("data_dir", "~/.local/share/hltv-cal")
	v.SetDefault("download_dir", ".")
	v.SetDefault("log_level", "WARN")
	v.SetDefault("gist.id", "")
	v.SetDefault("gist.token", "")
}

// Load reads configuration. When path is empty config.yaml is looked up in the
// working directory and ~/.config/hltv-cal, and a missing file is not an error.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/hltv-cal")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// overrideFromEnv lets the usual GitHub token variable stand in for gist.token
func overrideFromEnv(cfg *Config) {
	if cfg.Gist.Token == "" {
		if v := os.Getenv("GITHUB_TOKEN"); v != "" {
			cfg.Gist.Token = v
		}
	}
}
