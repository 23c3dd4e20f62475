package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Gemini GeminiConfig
	Upload UploadConfig
	CORS   CORSConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GeminiConfig holds settings for the Gemini LLM collaborator.
type GeminiConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// UploadConfig holds claim upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// Load reads configuration from environment variables with the SUPERCLAIMS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SUPERCLAIMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.timeout_secs", 120)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "SUPERCLAIMS_SERVER_PORT",
		"server.read_timeout":     "SUPERCLAIMS_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "SUPERCLAIMS_SERVER_WRITE_TIMEOUT",
		"server.environment":      "SUPERCLAIMS_SERVER_ENVIRONMENT",
		"log.level":               "SUPERCLAIMS_LOG_LEVEL",
		"log.format":              "SUPERCLAIMS_LOG_FORMAT",
		"gemini.api_key":          "SUPERCLAIMS_GEMINI_API_KEY",
		"gemini.model":            "SUPERCLAIMS_GEMINI_MODEL",
		"gemini.timeout_secs":     "SUPERCLAIMS_GEMINI_TIMEOUT_SECS",
		"upload.max_file_size_mb": "SUPERCLAIMS_UPLOAD_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":    "SUPERCLAIMS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	// The original deployment reads GEMINI_API_KEY; honor it when the
	// prefixed variable is not set.
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && os.Getenv("SUPERCLAIMS_GEMINI_API_KEY") == "" {
		v.Set("gemini.api_key", key)
	}

	// Railway/Heroku/Render set a PORT env var. Use it if SUPERCLAIMS_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SUPERCLAIMS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg := &Config{}
	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Gemini = GeminiConfig{
		APIKey:      v.GetString("gemini.api_key"),
		Model:       v.GetString("gemini.model"),
		TimeoutSecs: v.GetInt("gemini.timeout_secs"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
