// Package config loads CLI settings from flags, the environment and an
// optional .env file. Flags win over the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"chartspec/internal/common"
	"chartspec/internal/compile"
)

// Environment variables.
const (
	EnvLocale     = "CHARTSPEC_LOCALE"
	EnvIndent     = "CHARTSPEC_INDENT"
	EnvCacheSize  = "CHARTSPEC_CACHE_SIZE"
	EnvInlineData = "CHARTSPEC_INLINE_DATA"
	EnvLogLevel   = "CHARTSPEC_LOG_LEVEL"
)

// Config holds the CLI settings.
type Config struct {
	Locale     string
	Indent     int
	CacheSize  int
	InlineData bool
	LogLevel   slog.Level
	// OutDir receives one .json file per document. Empty writes to stdout.
	OutDir string
	// Files are the chart documents to compile.
	Files []string
}

// Load reads envFiles (".env" when none are given, ignored when missing),
// then the environment, then args.
func Load(args []string, envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	c, err := fromEnv()
	if err != nil {
		return nil, err
	}

	flags := flag.NewFlagSet("chartspec", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	logLevel := c.LogLevel.String()

	flags.StringVar(&c.Locale, "locale", c.Locale, "locale code for documents without one")
	flags.IntVar(&c.Indent, "indent", c.Indent, "JSON indentation in spaces (0 for compact output)")
	flags.IntVar(&c.CacheSize, "cache-size", c.CacheSize, "number of compiled documents to cache")
	flags.BoolVar(&c.InlineData, "inline-data", c.InlineData, "inline chart data into the table data source")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level: debug, info, warn or error")
	flags.StringVar(&c.OutDir, "o", "", "output directory (default stdout)")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := c.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	if c.Indent < 0 {
		return nil, fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}

	c.Files = flags.Args()

	return c, nil
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}

		return nil
	}

	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}

	return nil
}

func fromEnv() (*Config, error) {
	defaults := compile.DefaultConfig()

	c := &Config{
		Locale:    strings.TrimSpace(os.Getenv(EnvLocale)),
		Indent:    len(defaults.Indent),
		CacheSize: defaults.CacheSize,
		LogLevel:  slog.LevelInfo,
	}

	var err error

	if c.Indent, err = envInt(EnvIndent, c.Indent); err != nil {
		return nil, err
	}

	if c.CacheSize, err = envInt(EnvCacheSize, c.CacheSize); err != nil {
		return nil, err
	}

	if raw := strings.TrimSpace(os.Getenv(EnvInlineData)); raw != "" {
		if c.InlineData, err = strconv.ParseBool(raw); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvInlineData, err)
		}
	}

	level := strings.TrimSpace(common.FirstNonEmpty(os.Getenv(EnvLogLevel), c.LogLevel.String()))
	if err := c.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
	}

	return c, nil
}

func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return v, nil
}

// CompileConfig converts c to compiler settings using logger.
func (c *Config) CompileConfig(logger *slog.Logger) compile.Config {
	return compile.Config{
		Locale:     c.Locale,
		InlineData: c.InlineData,
		Indent:     strings.Repeat(" ", c.Indent),
		CacheSize:  c.CacheSize,
		Logger:     logger,
	}
}
