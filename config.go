package etfwatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds the process-wide settings. It is read once at startup and
// treated as immutable afterwards; malformed values are fatal at load time.
type Config struct {
	DataDir string // directory holding the watchlist files

	CacheTTL   time.Duration // how long pipeline results stay fresh
	Timeout    time.Duration // per HTTP request
	MaxRetries int           // attempts per upstream fetch
	RetryDelay time.Duration // fixed delay between attempts

	DefaultUSDKRW decimal.Decimal // used when both FX sources fail

	USWithholdingTax float64 // US dividend withholding, 0.15 = 15%
	KRDividendTax    float64 // domestic dividend income tax, 0.154 = 15.4%
	ISATaxFreeLimit  decimal.Decimal
	// KRSeparateTax is applied on top of the US withholding for foreign
	// dividends (separate taxation assumption).
	KRSeparateTax float64

	UniverseUSFile string // optional one-ticker-per-line override of the US trending universe
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:          getEnv("ETW_DATA_DIR", "data"),
		USWithholdingTax: 0.15,
		KRDividendTax:    0.154,
		KRSeparateTax:    0.14,
		ISATaxFreeLimit:  decimal.NewFromInt(2_000_000),
		UniverseUSFile:   getEnv("ETW_UNIVERSE_US", ""),
	}

	var err error
	if cfg.CacheTTL, err = getDuration("ETW_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = getDuration("ETW_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.RetryDelay, err = getDuration("ETW_RETRY_DELAY", time.Second); err != nil {
		return nil, err
	}
	if cfg.MaxRetries, err = getInt("ETW_MAX_RETRIES", 3); err != nil {
		return nil, err
	}
	if cfg.MaxRetries < 1 {
		return nil, fmt.Errorf("ETW_MAX_RETRIES must be at least 1, got %d", cfg.MaxRetries)
	}
	if cfg.DefaultUSDKRW, err = getDecimal("ETW_DEFAULT_USDKRW", decimal.NewFromInt(1320)); err != nil {
		return nil, err
	}
	if !cfg.DefaultUSDKRW.IsPositive() {
		return nil, fmt.Errorf("ETW_DEFAULT_USDKRW must be positive, got %s", cfg.DefaultUSDKRW)
	}
	return cfg, nil
}

// ISAWatchlist is the path of the domestic tax-advantaged account watchlist.
func (c *Config) ISAWatchlist() string { return filepath.Join(c.DataDir, "isa_watchlist.csv") }

// DirectWatchlist is the path of the foreign direct-investment account watchlist.
func (c *Config) DirectWatchlist() string { return filepath.Join(c.DataDir, "direct_watchlist.csv") }

// WatchlistPath returns the watchlist file backing the given market.
func (c *Config) WatchlistPath(market Market) string {
	if market == Foreign {
		return c.DirectWatchlist()
	}
	return c.ISAWatchlist()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, value, err)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	// plain numbers are accepted as seconds
	if n, err := strconv.Atoi(value); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, value, err)
	}
	return d, nil
}

func getDecimal(key string, defaultValue decimal.Decimal) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s=%q: %w", key, value, err)
	}
	return d, nil
}
