package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

var ErrProductionSecret = errors.New("AUTH_SECRET must be set in production environment")

type Config struct {
	Port        string
	Env         string
	AuditDSN    string
	AuthSecret  string
	TokenTTL    time.Duration
	SentryDSN   string
	CORSOrigins []string
	RateLimit   float64
	RateBurst   int
	Hash        crypto.HashParams
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var errs []error

	hash := crypto.DefaultHashParams()
	hash.Memory = uint32(getEnvUint("HASH_MEMORY_KIB", uint64(hash.Memory), 32, &errs))
	hash.Iterations = uint32(getEnvUint("HASH_ITERATIONS", uint64(hash.Iterations), 32, &errs))
	hash.Parallelism = uint8(getEnvUint("HASH_PARALLELISM", uint64(hash.Parallelism), 8, &errs))

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		AuditDSN:    getEnv("AUDIT_DSN", ""),
		AuthSecret:  getEnv("AUTH_SECRET", ""),
		TokenTTL:    getEnvDuration("TOKEN_TTL", 30*24*time.Hour, &errs),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
		RateLimit:   getEnvFloat("RATE_LIMIT_RPS", 5, &errs),
		RateBurst:   getEnvInt("RATE_LIMIT_BURST", 10, &errs),
		Hash:        hash,
	}

	if err := cfg.Hash.Validate(); err != nil {
		errs = append(errs, err)
	}
	if cfg.Env == "production" && cfg.AuthSecret == "" {
		errs = append(errs, ErrProductionSecret)
	}

	return cfg, errors.Join(errs...)
}

// AuthEnabled reports whether /api/v1 requires a client token.
func (c Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}

// AuditEnabled reports whether generation metadata is written to MySQL.
func (c Config) AuditEnabled() bool {
	return c.AuditDSN != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		*errs = append(*errs, fmt.Errorf("%s: expected a non-negative integer, got %q", key, v))
		return fallback
	}
	return n
}

// getEnvUint parses an unsigned integer that must fit in bitSize bits.
func getEnvUint(key string, fallback uint64, bitSize int, errs *[]error) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, bitSize)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: expected an integer between 0 and %d, got %q", key, uint64(1)<<bitSize-1, v))
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64, errs *[]error) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		*errs = append(*errs, fmt.Errorf("%s: expected a positive number, got %q", key, v))
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		*errs = append(*errs, fmt.Errorf("%s: expected a positive duration, got %q", key, v))
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
