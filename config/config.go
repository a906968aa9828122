package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort      string `envconfig:"HTTP_PORT"      default:":8080"`
	DBFile        string `envconfig:"DB_FILE"        default:"db.json"`
	FavoritesFile string `envconfig:"FAVORITES_FILE" default:"favorites.json"`
	LogLevel      string `envconfig:"LOG_LEVEL"      default:"info"`

	AuthToken    string `envconfig:"AUTH_TOKEN"    default:"abcd12345"`
	AuthUsername string `envconfig:"AUTH_USERNAME" default:"student"`
	AuthPassword string `envconfig:"AUTH_PASSWORD" default:"desingp"`
	// AuthPasswordHash, when set to a bcrypt hash, supersedes the
	// plaintext AuthPassword comparison.
	AuthPasswordHash string `envconfig:"AUTH_PASSWORD_HASH"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		if err := envconfig.Process("", &config); err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, DBFile=%s, FavoritesFile=%s, LogLevel=%s",
			config.HTTPPort, config.DBFile, config.FavoritesFile, config.LogLevel)
	})
	return &config
}
