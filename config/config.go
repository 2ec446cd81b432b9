package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Tracker     TrackerConfig
	LLM         LLMConfig
	Fetch       FetchConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TrackerConfig locates the deadlines data and the page templates.
type TrackerConfig struct {
	DataDir       string
	DataFile      string
	TemplatesGlob string
	GithubRepoURL string
}

// LLMConfig configures the local model runtime used by the extraction
// helper.
type LLMConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// FetchConfig configures the webpage fetcher used by the extraction helper.
type FetchConfig struct {
	Timeout         time.Duration
	MaxExcerptBytes int
	UserAgent       string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/conference-tracker/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/conference-tracker/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")

	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Tracker.DataDir = viper.GetString("tracker.data_dir")
	cfg.Tracker.DataFile = viper.GetString("tracker.data_file")
	cfg.Tracker.TemplatesGlob = viper.GetString("tracker.templates_glob")
	cfg.Tracker.GithubRepoURL = viper.GetString("tracker.github_repo_url")
	if repoURL := viper.GetString("github_repo_url"); repoURL != "" {
		cfg.Tracker.GithubRepoURL = repoURL
	}

	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")

	cfg.Fetch.Timeout = viper.GetDuration("fetch.timeout")
	cfg.Fetch.MaxExcerptBytes = viper.GetInt("fetch.max_excerpt_bytes")
	cfg.Fetch.UserAgent = viper.GetString("fetch.user_agent")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Tracker.DataDir == "" {
		return fmt.Errorf("tracker.data_dir is required")
	}
	if c.Tracker.DataFile == "" {
		return fmt.Errorf("tracker.data_file is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("tracker.data_dir", "./data")
	viper.SetDefault("tracker.data_file", "conferences.yaml")
	viper.SetDefault("tracker.templates_glob", "templates/*.html")
	viper.SetDefault("tracker.github_repo_url", "https://github.com/YOUR_USERNAME/conference-tracker")
	viper.SetDefault("llm.base_url", "http://127.0.0.1:11434")
	viper.SetDefault("llm.model", "llama3.2:3b")
	viper.SetDefault("llm.timeout", "5m")
	viper.SetDefault("fetch.timeout", "10s")
	viper.SetDefault("fetch.max_excerpt_bytes", 3000)
	viper.SetDefault("fetch.user_agent", "Mozilla/5.0 (compatible; ConferenceTracker/1.0)")
}
