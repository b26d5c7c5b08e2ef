// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Store     StoreConfig
	Catalog   CatalogConfig
	Server    ServerConfig
	Remote    RemoteConfig
	Translate TranslateConfig
	Reader    ReaderConfig
	Quiz      QuizConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// StoreConfig holds key-value store configuration.
type StoreConfig struct {
	// BasePath is the directory holding the Badger database (default: ~/ReadMate/data).
	BasePath string
}

// CatalogConfig holds local book catalog configuration.
type CatalogConfig struct {
	// DatabasePath is the SQLite file for downloaded books (default: {store}/catalog.db).
	DatabasePath string
	// ImportPath is a watched directory; .txt files dropped there are imported as user books.
	// Empty disables the import watcher.
	ImportPath string
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Name         string
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// RemoteConfig holds remote book catalog service configuration.
type RemoteConfig struct {
	// BaseURL of the catalog backend. Empty disables remote catalog browsing.
	BaseURL string
	Timeout time.Duration
}

// TranslateConfig holds translation service configuration.
type TranslateConfig struct {
	// BaseURL of the DeepL-compatible API (default: https://api-free.deepl.com).
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RequestsPerSecond caps outbound translation calls (default: 5).
	RequestsPerSecond int
}

// ReaderConfig holds reading session configuration.
type ReaderConfig struct {
	// LinesPerPage is the fixed page window size (default: 15).
	LinesPerPage int
}

// QuizConfig holds vocabulary quiz configuration.
type QuizConfig struct {
	// MinimumWords required in the glossary to start a game (default: 10).
	MinimumWords int
	// OptionsCount is the number of answer choices per round (default: 3).
	OptionsCount int
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	storePath := flag.String("store-path", "", "Base path for key-value store data")
	catalogPath := flag.String("catalog-path", "", "Path to the SQLite catalog database")
	importPath := flag.String("import-path", "", "Directory watched for .txt book imports")
	serverName := flag.String("server-name", "", "Name for the server")

	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")

	remoteURL := flag.String("remote-catalog-url", "", "Base URL of the remote book catalog")
	translateURL := flag.String("translate-url", "", "Base URL of the translation API")
	translateKey := flag.String("translate-key", "", "API key for the translation API")

	linesPerPage := flag.String("lines-per-page", "", "Lines per reading page (default: 15)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			BasePath: getConfigValue(*storePath, "STORE_PATH", ""),
		},
		Catalog: CatalogConfig{
			DatabasePath: getConfigValue(*catalogPath, "CATALOG_PATH", ""),
			ImportPath:   getConfigValue(*importPath, "IMPORT_PATH", ""),
		},
		Server: ServerConfig{
			Name: getConfigValue(*serverName, "SERVER_NAME", "ReadMate Server"),
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
		Remote: RemoteConfig{
			BaseURL: getConfigValue(*remoteURL, "REMOTE_CATALOG_URL", ""),
		},
		Translate: TranslateConfig{
			BaseURL:           getConfigValue(*translateURL, "TRANSLATE_URL", "https://api-free.deepl.com"),
			APIKey:            getConfigValue(*translateKey, "TRANSLATE_API_KEY", ""),
			RequestsPerSecond: getIntConfigValue("", "TRANSLATE_RPS", 5),
		},
		Reader: ReaderConfig{
			LinesPerPage: getIntConfigValue(*linesPerPage, "LINES_PER_PAGE", 15),
		},
		Quiz: QuizConfig{
			MinimumWords: getIntConfigValue("", "QUIZ_MINIMUM_WORDS", 10),
			OptionsCount: getIntConfigValue("", "QUIZ_OPTIONS_COUNT", 3),
		},
	}

	// Parse server timeouts.
	var err error
	cfg.Server.ReadTimeout, err = parseDurationValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s")
	if err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	cfg.Server.WriteTimeout, err = parseDurationValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s")
	if err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	cfg.Server.IdleTimeout, err = parseDurationValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s")
	if err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}

	// Outbound client timeouts.
	cfg.Remote.Timeout, err = parseDurationValue("", "REMOTE_CATALOG_TIMEOUT", "30s")
	if err != nil {
		return nil, fmt.Errorf("invalid remote catalog timeout: %w", err)
	}
	cfg.Translate.Timeout, err = parseDurationValue("", "TRANSLATE_TIMEOUT", "15s")
	if err != nil {
		return nil, fmt.Errorf("invalid translate timeout: %w", err)
	}

	// Expand and validate paths.
	if err := cfg.expandStorePath(); err != nil {
		return nil, fmt.Errorf("invalid store path: %w", err)
	}
	if err := cfg.expandCatalogPaths(); err != nil {
		return nil, fmt.Errorf("invalid catalog path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Store.BasePath == "" {
		return errors.New("store base path cannot be empty after expansion")
	}

	if c.Reader.LinesPerPage < 1 {
		return fmt.Errorf("lines per page must be positive, got %d", c.Reader.LinesPerPage)
	}

	if c.Quiz.OptionsCount < 2 {
		return fmt.Errorf("quiz options count must be at least 2, got %d", c.Quiz.OptionsCount)
	}
	if c.Quiz.MinimumWords < c.Quiz.OptionsCount {
		return fmt.Errorf("quiz minimum words (%d) must not be below options count (%d)",
			c.Quiz.MinimumWords, c.Quiz.OptionsCount)
	}

	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
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

// expandStorePath expands ~ and makes the path absolute.
func (c *Config) expandStorePath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "ReadMate", "data")

	expanded, err := expandPath(c.Store.BasePath, defaultPath)
	if err != nil {
		return err
	}
	c.Store.BasePath = expanded
	return nil
}

// expandCatalogPaths expands the catalog database and import paths.
// The database defaults to {store}/catalog.db; the import path stays empty when unset.
func (c *Config) expandCatalogPaths() error {
	defaultDB := filepath.Join(c.Store.BasePath, "catalog.db")

	expanded, err := expandPath(c.Catalog.DatabasePath, defaultDB)
	if err != nil {
		return err
	}
	c.Catalog.DatabasePath = expanded

	if c.Catalog.ImportPath == "" {
		return nil
	}
	expanded, err = expandPath(c.Catalog.ImportPath, "")
	if err != nil {
		return err
	}
	c.Catalog.ImportPath = expanded
	return nil
}

// parseDurationValue resolves flag/env/default precedence and parses the duration.
func parseDurationValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	str := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(str)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", str, err)
	}
	return d, nil
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

// getIntConfigValue returns an int from flag, env var, or default.
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

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)

		// Env vars take precedence over .env file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
