// Package config loads layered application configuration: .env file, yaml
// config file, then environment variables, with sensible defaults underneath.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App        App        `mapstructure:"app"`
	AI         AI         `mapstructure:"ai"`
	Server     Server     `mapstructure:"server"`
	Generation Generation `mapstructure:"generation"`
	History    History    `mapstructure:"history"`
	Logging    Logging    `mapstructure:"logging"`
}

// App holds general application configuration.
type App struct {
	Debug   bool   `mapstructure:"debug"`
	DataDir string `mapstructure:"data_dir"`
}

// AI holds AI/LLM configuration.
type AI struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration. APIKey may be empty here;
// the LLM client also consults GEMINI_API_KEY and fails fast with a
// configuration error when neither is set.
type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
	TopP        float32 `mapstructure:"top_p"`
}

// Server holds HTTP server configuration.
type Server struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORS         CORS          `mapstructure:"cors"`
}

// CORS holds CORS middleware configuration.
type CORS struct {
	Enabled        bool     `mapstructure:"enabled"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Generation holds the timeout/retry/race policy configuration.
type Generation struct {
	Timeout    time.Duration   `mapstructure:"timeout"`     // Per-attempt wait for the titles endpoint
	MaxRetries int             `mapstructure:"max_retries"` // Sequential attempts on the titles endpoint
	RetryDelay time.Duration   `mapstructure:"retry_delay"` // Fixed delay between retries
	RaceTiers  []time.Duration `mapstructure:"race_tiers"`  // Escalating timeouts raced by the news endpoint
}

// History holds history store configuration.
type History struct {
	DataDir string `mapstructure:"data_dir"`
}

// Logging holds logging configuration.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads the configuration from .env, an optional yaml file, and the
// environment.
func Load(configFile string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".newsgen")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("NEWSGEN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The Gemini key also arrives via its conventional env var.
	if config.AI.Gemini.APIKey == "" {
		config.AI.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.data_dir", ".newsgen-data")

	viper.SetDefault("ai.gemini.model", "gemini-2.5-pro-exp-03-25")
	viper.SetDefault("ai.gemini.temperature", 1.2)
	viper.SetDefault("ai.gemini.top_p", 1.0)

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "600s")
	viper.SetDefault("server.cors.enabled", true)
	viper.SetDefault("server.cors.allowed_origins", []string{"*"})

	viper.SetDefault("generation.timeout", "90s")
	viper.SetDefault("generation.max_retries", 3)
	viper.SetDefault("generation.retry_delay", "500ms")
	viper.SetDefault("generation.race_tiers", []string{"90s", "180s", "270s"})

	viper.SetDefault("history.data_dir", ".newsgen-data")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
