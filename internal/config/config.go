package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AppName string `mapstructure:"APP_NAME"`

	// Spanner
	SpannerDatabase string `mapstructure:"SPANNER_DATABASE"`

	// HTTP server
	HTTPPort string `mapstructure:"HTTP_PORT"`

	// Auth
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	JWTTTLHours int    `mapstructure:"JWT_TTL_HOURS"`

	// Application settings
	LogLevel string `mapstructure:"LOG_LEVEL"` // "debug", "info", "warn", "error"
}

// JWTTTL returns the token lifetime as a duration.
func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("APP_NAME", "bizmarket-service")
	viper.SetDefault("LOG_LEVEL", "info")

	// Default for local development with the Spanner emulator
	viper.SetDefault("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/bizmarket-db")

	viper.SetDefault("HTTP_PORT", "8080")

	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("JWT_TTL_HOURS", 24)

	if err = viper.ReadInConfig(); err == nil {
		log.Info().Str("file", viper.ConfigFileUsed()).Msg("Using config file")
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Info().Msg("No config file found, using environment variables and defaults.")
		err = nil
	} else {
		log.Error().Err(err).Msg("Error reading config file")
		return
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err = viper.Unmarshal(&config)
	return
}

// SetupLogging applies the configured log level to the global logger.
func SetupLogging(level string) {
	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
