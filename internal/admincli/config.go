package admincli

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Environment keys for defaults.
const (
	EnvBaseURL     = "SHAHEEN_BASE_URL"
	EnvStateFile   = "SHAHEEN_STATE_FILE"
	EnvTimeoutSec  = "SHAHEEN_TIMEOUT"         // seconds
	EnvRetries     = "SHAHEEN_RETRIES"         // int
	EnvBackoffInit = "SHAHEEN_BACKOFF_INIT_MS" // ms
	EnvBackoffMax  = "SHAHEEN_BACKOFF_MAX_MS"  // ms
)

// Reasonable defaults for interactive operation.
const (
	DefaultBaseURL     = "https://core-api-x41.shaheenplus.sa"
	DefaultTimeoutSec  = 60
	DefaultRetries     = 3
	DefaultBackoffInit = 500  // ms
	DefaultBackoffMax  = 4000 // ms
)

// GlobalFlags captures CLI-wide settings and defaults.
type GlobalFlags struct {
	BaseURL   string
	StateFile string

	TimeoutSec    int
	Retries       int
	BackoffInitMS int
	BackoffMaxMS  int
	Verbose       bool
}

// Defaults sources flag defaults from the environment.
func Defaults() GlobalFlags {
	return GlobalFlags{
		BaseURL:       getenvDefault(EnvBaseURL, DefaultBaseURL),
		StateFile:     getenvDefault(EnvStateFile, defaultStateFile()),
		TimeoutSec:    atoiDefault(os.Getenv(EnvTimeoutSec), DefaultTimeoutSec),
		Retries:       atoiDefault(os.Getenv(EnvRetries), DefaultRetries),
		BackoffInitMS: atoiDefault(os.Getenv(EnvBackoffInit), DefaultBackoffInit),
		BackoffMaxMS:  atoiDefault(os.Getenv(EnvBackoffMax), DefaultBackoffMax),
	}
}

func (g GlobalFlags) Timeout() time.Duration {
	return time.Duration(g.TimeoutSec) * time.Second
}

// defaultStateFile places the profile store under the user config dir.
func defaultStateFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "shaheenadmin.db"
	}
	return filepath.Join(dir, "shaheenadmin", "state.db")
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func atoiDefault(s string, d int) int {
	if s == "" {
		return d
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return i
}
