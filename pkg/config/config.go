package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const DefaultEnvPath = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
}

// New loads DefaultEnvPath once. A missing file is fine, variables may come
// from the environment itself.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(DefaultEnvPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// GetInt returns def when key is unset. Malformed values are fatal.
func (c *Config) GetInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("env %s: expected integer, got %q", key, v)
	}
	return n
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("env %s: expected duration, got %q", key, v)
	}
	return d
}

// Location loads the time zone named by key, UTC by default.
func (c *Config) Location(key string) *time.Location {
	name := c.GetStringOr(key, "UTC")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Fatalf("env %s: unknown time zone %q", key, name)
	}
	return loc
}
