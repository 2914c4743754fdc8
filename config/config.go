package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration, resolved once at start-up.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	ToolServer ToolServerConfig
	Logger     LoggerConfig

	Gemini GeminiConfig
	Tools  ToolsConfig
	Chat   ChatConfig
	Data   DataConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

// ToolServerConfig configures the tool service binary (cmd/tools).
type ToolServerConfig struct {
	Port int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig holds the text-generation service credential.
type GeminiConfig struct {
	APIKey  string
	Model   string
	APIURL  string
	Timeout time.Duration
}

// Enabled reports whether the intent resolver can call Gemini at all.
// Resolved once here instead of inspecting the environment per request.
func (g GeminiConfig) Enabled() bool {
	return g.APIKey != ""
}

// ToolsConfig points the orchestrator at the tool service.
type ToolsConfig struct {
	BaseURL string
	Timeout time.Duration
}

type ChatConfig struct {
	RateLimitPerMin int
	IntentCacheSize int
}

// DataConfig locates the reference datasets loaded by the tool service.
type DataConfig struct {
	Dir string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
// A .env file, when present, is loaded first so AutomaticEnv picks it up.
func Load() (*Config, error) {
	_ = godotenv.Load()

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

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.ToolServer.Port = viper.GetInt("tool_server.port")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")

	cfg.Tools.BaseURL = viper.GetString("tools.base_url")
	if baseURL := viper.GetString("mcp_base_url"); baseURL != "" {
		cfg.Tools.BaseURL = baseURL
	}
	cfg.Tools.Timeout = viper.GetDuration("tools.timeout")

	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")
	cfg.Chat.IntentCacheSize = viper.GetInt("chat.intent_cache_size")

	cfg.Data.Dir = viper.GetString("data.dir")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 4000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("tool_server.port", 4001)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", "30s")
	viper.SetDefault("tools.base_url", "http://mcp-server:4001")
	viper.SetDefault("tools.timeout", "10s")
	viper.SetDefault("chat.rate_limit_per_min", 60)
	viper.SetDefault("chat.intent_cache_size", 256)
	viper.SetDefault("data.dir", "./data")
}
