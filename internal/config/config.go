package config

import (
	"net/url"
	"os"
)

type Config struct {
	ServerPort string
	Database   DBConfig
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

// Load reads all settings from the environment. Callers that want .env
// support run godotenv.Load before this.
func Load() Config {
	cfg := Config{
		ServerPort: os.Getenv("PORT"),
		Database: DBConfig{
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			DBName:   os.Getenv("DB_NAME"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
	}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.ServerPort == "" {
		c.ServerPort = "8080"
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == "" {
		c.Database.Port = "5432"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
}

// Valid reports whether the minimum connection settings are present.
func (d DBConfig) Valid() bool {
	return d.User != "" && d.Host != "" && d.Port != "" && d.DBName != ""
}

// DSN builds a URL-encoded postgres connection string.
func (d DBConfig) DSN() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host + ":" + d.Port,
		Path:   "/" + d.DBName,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
