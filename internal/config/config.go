// Package config loads runtime configuration.
// Precedence: flags > environment (PODO_*) > .env file > defaults.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	StoreBadger = "badger"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Storage StorageConfig
	Ranking RankingConfig
}

type AppConfig struct {
	Environment string
	DataDir     string
}

type LoggerConfig struct {
	Level  string
	Format string // "pretty" or "json"; empty picks by environment
}

type StorageConfig struct {
	Backend string
}

type RankingConfig struct {
	PageSize int
}

// Flags holds raw command-line values. Empty strings mean "not given".
type Flags struct {
	Env       string
	LogLevel  string
	LogFormat string
	DataDir   string
	Store     string
	PageSize  string
	EnvFile   string
}

// Load resolves the configuration from flags, the environment and the .env
// file named by flags.EnvFile (default ".env"). A missing .env file is fine.
func Load(flags Flags) (*Config, error) {
	envFile := flags.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := loadEnvFile(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(flags.Env, "PODO_ENV", "development"),
			DataDir:     getConfigValue(flags.DataDir, "PODO_DATA_DIR", ""),
		},
		Logger: LoggerConfig{
			Level:  getConfigValue(flags.LogLevel, "PODO_LOG_LEVEL", "info"),
			Format: getConfigValue(flags.LogFormat, "PODO_LOG_FORMAT", ""),
		},
		Storage: StorageConfig{
			Backend: strings.ToLower(getConfigValue(flags.Store, "PODO_STORE", StoreBadger)),
		},
		Ranking: RankingConfig{
			PageSize: getIntConfigValue(flags.PageSize, "PODO_PAGE_SIZE", 10),
		},
	}

	dataDir, err := expandPath(cfg.App.DataDir, defaultDataDir())
	if err != nil {
		return nil, fmt.Errorf("invalid data dir: %w", err)
	}
	cfg.App.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{"development": true, "production": true, "test": true}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, production, or test)", c.App.Environment)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	switch c.Logger.Format {
	case "", "pretty", "json":
	default:
		return fmt.Errorf("invalid log format: %s (must be pretty or json)", c.Logger.Format)
	}

	switch c.Storage.Backend {
	case StoreBadger, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("invalid store backend: %s (must be badger, sqlite, or memory)", c.Storage.Backend)
	}

	if c.Ranking.PageSize < 1 || c.Ranking.PageSize > 100 {
		return fmt.Errorf("invalid page size: %d (must be 1-100)", c.Ranking.PageSize)
	}

	if c.App.DataDir == "" {
		return errors.New("data dir cannot be empty after expansion")
	}
	return nil
}

// BadgerDir, SQLitePath and LogPath live under the data dir.
func (c *Config) BadgerDir() string  { return filepath.Join(c.App.DataDir, "badger") }
func (c *Config) SQLitePath() string { return filepath.Join(c.App.DataDir, "podo.db") }
func (c *Config) LogPath() string    { return filepath.Join(c.App.DataDir, "podo-rush.log") }

func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "podo-rush")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "podo-rush")
	}
	return filepath.Join(home, ".local", "share", "podo-rush")
}

func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}
	return filepath.Clean(path), nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getIntConfigValue falls back to the default when the value does not parse.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads KEY=value lines. Variables already set in the
// environment win.
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- path comes from the user
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}
