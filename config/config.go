package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Personal agent specifics
	Memos          MemosConfig
	Notes          NotesConfig
	Files          FilesConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
	OpenMeteo      OpenMeteoConfig
	Agent          AgentConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MemosConfig struct {
	URL         string
	AccessToken string
	ExternalURL string // URL for generating user-facing links (e.g., http://localhost:5230)
}

// NotesConfig selects the notes backend. The Memos API is the primary
// tier; LocalDir is the filesystem fallback tier.
type NotesConfig struct {
	LocalDir string
}

// FilesConfig points search_files at the user's document root.
type FilesConfig struct {
	RootDir string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

type OpenMeteoConfig struct {
	ForecastURL  string
	GeocodingURL string
}

// AgentConfig bounds the orchestration loop.
type AgentConfig struct {
	MaxTurns          int
	SessionTTL        string
	SessionLimit      int
	OracleCallsPerMin int
}

// LLMConfig configures the LLM provider fallback chain.
type LLMConfig struct {
	Providers       []ProviderConfig `mapstructure:"providers"`
	FallbackEnabled bool             `mapstructure:"fallback_enabled"`
	RetryAttempts   int              `mapstructure:"retry_attempts"`
	RetryDelay      string           `mapstructure:"retry_delay"`
	MaxTotalTimeout string           `mapstructure:"max_total_timeout"`
}

// ProviderConfig describes one provider tier in the chain.
type ProviderConfig struct {
	Name     string `mapstructure:"name"`
	Enabled  bool   `mapstructure:"enabled"`
	Priority int    `mapstructure:"priority"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
	Timeout  string `mapstructure:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Notes backends
	cfg.Memos.URL = viper.GetString("memos.url")
	cfg.Memos.AccessToken = viper.GetString("memos.access_token")
	cfg.Memos.ExternalURL = viper.GetString("memos.external_url")
	if memosURL := viper.GetString("memos_url"); memosURL != "" {
		cfg.Memos.URL = memosURL
	}
	if memosToken := viper.GetString("memos_access_token"); memosToken != "" {
		cfg.Memos.AccessToken = memosToken
	}
	// If external URL not set, default to internal URL
	if cfg.Memos.ExternalURL == "" {
		cfg.Memos.ExternalURL = cfg.Memos.URL
	}

	cfg.Notes.LocalDir = viper.GetString("notes.local_dir")
	cfg.Files.RootDir = viper.GetString("files.root_dir")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.OpenMeteo.ForecastURL = viper.GetString("openmeteo.forecast_url")
	cfg.OpenMeteo.GeocodingURL = viper.GetString("openmeteo.geocoding_url")

	cfg.Agent.MaxTurns = viper.GetInt("agent.max_turns")
	cfg.Agent.SessionTTL = viper.GetString("agent.session_ttl")
	cfg.Agent.SessionLimit = viper.GetInt("agent.session_limit")
	cfg.Agent.OracleCallsPerMin = viper.GetInt("agent.oracle_calls_per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		if err := viper.UnmarshalKey("llm.providers", &cfg.LLM.Providers); err != nil {
			return nil, fmt.Errorf("invalid llm.providers: %w", err)
		}
		for i := range cfg.LLM.Providers {
			cfg.LLM.Providers[i].APIKey = expandEnvVar(cfg.LLM.Providers[i].APIKey)
		}
	}

	// No configured provider is a legal degraded mode: the deterministic
	// oracle and routing engine still answer.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("notes.local_dir", "./data/notes")
	viper.SetDefault("files.root_dir", "./data/files")
	viper.SetDefault("openmeteo.forecast_url", "https://api.open-meteo.com/v1/forecast")
	viper.SetDefault("openmeteo.geocoding_url", "https://geocoding-api.open-meteo.com/v1/search")
	viper.SetDefault("google_calendar.timezone", "UTC")

	viper.SetDefault("agent.max_turns", 5)
	viper.SetDefault("agent.session_ttl", "10m")
	viper.SetDefault("agent.session_limit", 1000)
	viper.SetDefault("agent.oracle_calls_per_min", 30)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar resolves ${VAR_NAME} placeholders, checking viper
// (which sees both config and env) before the raw environment.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	name := value[2 : len(value)-1]
	for _, key := range []string{name, strings.ToLower(name)} {
		if v := viper.GetString(key); v != "" {
			return v
		}
	}
	if v := os.Getenv(name); v != "" {
		return v
	}
	return value
}

func validateLLMConfig(cfg *LLMConfig) error {
	enabled := 0
	seenPriority := make(map[int]bool)

	for i, p := range cfg.Providers {
		if p.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if p.Model == "" {
			return fmt.Errorf("provider %s: model is required", p.Name)
		}
		if !p.Enabled {
			continue
		}

		enabled++
		if p.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", p.Name)
		}
		if seenPriority[p.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", p.Name, p.Priority)
		}
		seenPriority[p.Priority] = true
	}

	if enabled == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	return nil
}
