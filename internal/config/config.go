package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
}

type ServerConfig struct {
	Host string
	Port string
}

// Address returns the listen address for the HTTP server.
func (c ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Configured reports whether both pieces of store configuration are present.
// When either is missing the persistence gateway runs disconnected.
func (c MongoDBConfig) Configured() bool {
	return c.URI != "" && c.Database != ""
}

// LoadConfig loads configuration from environment variables and an optional
// .env file. Missing store configuration is not an error: the backend keeps
// serving with a disconnected gateway.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("DATABASE_TIMEOUT", 10)

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("HOST"),
			Port: viper.GetString("PORT"),
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("DATABASE_URL"),
			Database: viper.GetString("DATABASE_NAME"),
			Timeout:  time.Duration(viper.GetInt("DATABASE_TIMEOUT")) * time.Second,
		},
	}

	return cfg, nil
}
