package config

import (
	"fmt"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Spendwise"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	// API_URL is the URL under which the API is reachable, used to
	// construct resource links in responses.
	API struct {
		URL string `envconfig:"API_URL" default:"http://localhost:8080"`
	}

	DB struct {
		// Path of the sqlite database, used when DB_HOST is not set
		Path string `envconfig:"DB_PATH" default:"data/spendwise.db"`

		Host     string `envconfig:"DB_HOST" default:""`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"spendwise"`
	}
}

// APIURL parses the configured API URL.
func (c *Config) APIURL() (*url.URL, error) {
	u, err := url.Parse(c.API.URL)
	if err != nil {
		return nil, fmt.Errorf("API_URL is not a valid URL: %w", err)
	}

	return u, nil
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when it exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
