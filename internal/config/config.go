package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MinYear is the earliest publication year a book may carry.
const MinYear = 1450

// Config holds the bounds used when validating books and year queries.
type Config struct {
	// CurrentYear anchors the upper year bounds. Books may be dated up to
	// CurrentYear+1 to allow for announced titles.
	CurrentYear int
}

// Default returns a Config anchored to the wall-clock year.
func Default() Config {
	return Config{CurrentYear: time.Now().Year()}
}

// ForYear returns a Config anchored to the given year.
func ForYear(year int) Config {
	return Config{CurrentYear: year}
}

// MaxBookYear is the latest publication year accepted at construction.
func (c Config) MaxBookYear() int {
	return c.CurrentYear + 1
}

// MaxQueryYear is the latest year a catalog year lookup will consider. It is
// one below MaxBookYear: announced titles can be stored but not looked up by
// year until their year arrives.
func (c Config) MaxQueryYear() int {
	return c.CurrentYear
}

// Load reads .env files and then BOOKSTORE_CURRENT_YEAR.
func Load() (Config, error) {
	LoadEnvFiles()

	cfg := Default()
	raw := strings.TrimSpace(os.Getenv("BOOKSTORE_CURRENT_YEAR"))
	if raw == "" {
		return cfg, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return Config{}, fmt.Errorf("invalid BOOKSTORE_CURRENT_YEAR %q: %w", raw, err)
	}
	if year < MinYear {
		return Config{}, fmt.Errorf("BOOKSTORE_CURRENT_YEAR %d is before %d", year, MinYear)
	}
	cfg.CurrentYear = year
	return cfg, nil
}

// LoadEnvFiles loads .env and .env.local from the working directory.
func LoadEnvFiles() {
	// Do not override environment provided by the runtime.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// GetEnv returns the value of key, or def when it is unset or empty.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
