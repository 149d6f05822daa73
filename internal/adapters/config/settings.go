// Package config loads recipe's own settings from the environment and an optional .env file.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variable names.
const (
	EnvManifestFile = "RECIPE_FILE"
	EnvStateFile    = "RECIPE_STATE_FILE"
	EnvLogLevel     = "RECIPE_LOG_LEVEL"
	EnvCacheSize    = "RECIPE_CACHE_SIZE"

	// DotEnvFile is read from the working directory when present.
	DotEnvFile = ".env"

	// DefaultCacheSize is the number of decoded manifests kept in memory.
	DefaultCacheSize = 64
)

// Settings holds the process-wide configuration.
type Settings struct {
	// ManifestFile is an explicit manifest path. Empty means discover from the working directory.
	ManifestFile string
	// StateFile is the path of the read-record store.
	StateFile string
	// LogLevel is the minimum level written by the logger.
	LogLevel domain.LogLevel
	// CacheSize bounds the decoded manifest cache.
	CacheSize int
}

// LookupFunc reads one variable, reporting whether it was set.
type LookupFunc func(key string) (string, bool)

// Load reads settings from the process environment, falling back to values in envFiles.
// With no envFiles, ./.env is used if it exists. The process environment always wins.
func Load(envFiles ...string) (*Settings, error) {
	if len(envFiles) == 0 {
		if _, err := os.Stat(DotEnvFile); err == nil {
			envFiles = []string{DotEnvFile}
		}
	}

	fileEnv := map[string]string{}
	if len(envFiles) > 0 {
		values, err := godotenv.Read(envFiles...)
		if err != nil {
			err = zerr.Wrap(err, "failed to read env file")
			return nil, zerr.With(err, "files", strings.Join(envFiles, ","))
		}
		fileEnv = values
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	})
}

// FromLookup builds settings from an arbitrary variable source.
func FromLookup(lookup LookupFunc) (*Settings, error) {
	s := &Settings{
		ManifestFile: value(lookup, EnvManifestFile),
		StateFile:    value(lookup, EnvStateFile),
		CacheSize:    DefaultCacheSize,
	}

	if s.StateFile == "" {
		s.StateFile = domain.DefaultStatePath()
	}

	rawLevel := value(lookup, EnvLogLevel)
	level, ok := domain.ParseLogLevel(rawLevel)
	if !ok {
		return nil, zerr.With(domain.ErrInvalidLogLevel, "value", rawLevel)
	}
	s.LogLevel = level

	if rawSize := value(lookup, EnvCacheSize); rawSize != "" {
		size, err := strconv.Atoi(rawSize)
		if err != nil || size <= 0 {
			return nil, zerr.With(domain.ErrInvalidCacheSize, "value", rawSize)
		}
		s.CacheSize = size
	}

	return s, nil
}

func value(lookup LookupFunc, key string) string {
	v, _ := lookup(key)
	return strings.TrimSpace(v)
}
