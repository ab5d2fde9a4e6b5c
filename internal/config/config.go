// Package config carga la configuración de bookly desde YAML con
// overrides por variables de entorno (BOOKLY_*).
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		// dev | prod
		Env string `yaml:"env"`
	} `yaml:"app"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	API struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`

	UI struct {
		// pl | en (pl es el default, como en el frontend original)
		Language string `yaml:"language"`
		PageSize int    `yaml:"page_size"`
	} `yaml:"ui"`

	Session struct {
		// file | memory | redis
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
		Redis  struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"session"`

	// Mock backend (cmd/mockapi)
	Mock struct {
		Addr      string `yaml:"addr"`
		JWTSecret string `yaml:"jwt_secret"`
		TokenTTL  string `yaml:"token_ttl"`
		Seed      bool   `yaml:"seed"`
	} `yaml:"mock"`
}

// Load lee el YAML en path (si existe) y aplica defaults + env.
// Un path vacío o inexistente no es error: quedan defaults.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}
	c.applyDefaults()
	c.applyEnv()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8080"
	}
	if c.API.Timeout == "" {
		c.API.Timeout = "30s"
	}
	if c.UI.Language == "" {
		c.UI.Language = "pl"
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = 10
	}
	if c.Session.Driver == "" {
		c.Session.Driver = "file"
	}
	if c.Session.Path == "" {
		c.Session.Path = DefaultTokenPath()
	}
	if c.Session.Redis.Prefix == "" {
		c.Session.Redis.Prefix = "bookly"
	}
	if c.Mock.Addr == "" {
		c.Mock.Addr = ":8080"
	}
	if c.Mock.JWTSecret == "" {
		// solo dev; el mock no es un backend real
		c.Mock.JWTSecret = "bookly-dev-secret-change-me"
	}
	if c.Mock.TokenTTL == "" {
		c.Mock.TokenTTL = "24h"
	}
}

func (c *Config) applyEnv() {
	setStr(&c.App.Env, "BOOKLY_ENV")
	setStr(&c.Log.Level, "BOOKLY_LOG_LEVEL")
	setStr(&c.API.BaseURL, "BOOKLY_API_URL")
	setStr(&c.API.Timeout, "BOOKLY_API_TIMEOUT")
	setStr(&c.UI.Language, "BOOKLY_LANG")
	setInt(&c.UI.PageSize, "BOOKLY_PAGE_SIZE")
	setStr(&c.Session.Driver, "BOOKLY_SESSION_DRIVER")
	setStr(&c.Session.Path, "BOOKLY_TOKEN_PATH")
	setStr(&c.Session.Redis.Addr, "BOOKLY_REDIS_ADDR")
	setStr(&c.Session.Redis.Password, "BOOKLY_REDIS_PASSWORD")
	setInt(&c.Session.Redis.DB, "BOOKLY_REDIS_DB")
	setStr(&c.Mock.Addr, "BOOKLY_MOCK_ADDR")
	setStr(&c.Mock.JWTSecret, "BOOKLY_JWT_SECRET")
	setStr(&c.Mock.TokenTTL, "BOOKLY_TOKEN_TTL")
}

// APITimeout parsea API.Timeout; 30s si es inválido.
func (c *Config) APITimeout() time.Duration {
	return parseDur(c.API.Timeout, 30*time.Second)
}

// TokenTTL parsea Mock.TokenTTL; 24h si es inválido.
func (c *Config) TokenTTL() time.Duration {
	return parseDur(c.Mock.TokenTTL, 24*time.Hour)
}

// DefaultTokenPath retorna la ruta por defecto de la credencial
// persistida: ~/.bookly/token (o ./.bookly/token sin HOME).
func DefaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, ".bookly", "token")
}

func parseDur(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
