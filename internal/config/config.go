// Package config loads the server policy from layered sources:
// built-in defaults, an optional .env-style settings file, process
// environment variables, and finally command-line directory overrides.
// Later layers win.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"

	"github.com/taigrr/localfiles-mcp/internal/types"
)

// DefaultMaxFileSize is the file size cap applied when MAX_FILE_SIZE is
// not set (10 MiB).
const DefaultMaxFileSize = 10 * 1024 * 1024

// DefaultEnvFile is the settings file consulted when none is given.
const DefaultEnvFile = ".env"

// defaultExtensions is the extension allow-list applied when
// ALLOWED_EXTENSIONS is not set.
var defaultExtensions = []string{
	".txt", ".md", ".py", ".js", ".json",
	".yaml", ".yml", ".csv", ".xml", ".html", ".css",
}

// Recognized settings keys.
const (
	keyAllowedDirectories = "ALLOWED_DIRECTORIES"
	keyMaxFileSize        = "MAX_FILE_SIZE"
	keyAllowedExtensions  = "ALLOWED_EXTENSIONS"
)

// Loader produces Config values. Load is called once per tool call so
// settings changes take effect without a restart; a Loader holds no
// state beyond its inputs and is safe for concurrent use.
type Loader struct {
	envFile   string
	overrides []string
}

// NewLoader creates a Loader reading the given settings file. Directory
// overrides, when non-empty, replace ALLOWED_DIRECTORIES from every
// other layer.
func NewLoader(envFile string, overrides []string) *Loader {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	return &Loader{envFile: envFile, overrides: overrides}
}

// Load builds the effective Config. A missing settings file is not an
// error; a malformed MAX_FILE_SIZE is.
func (l *Loader) Load() (types.Config, error) {
	cfg := types.Config{
		MaxFileSize:       DefaultMaxFileSize,
		AllowedExtensions: append([]string(nil), defaultExtensions...),
	}

	fileSettings, err := readEnvFile(l.envFile)
	if err != nil {
		return types.Config{}, err
	}

	for _, key := range []string{keyAllowedDirectories, keyMaxFileSize, keyAllowedExtensions} {
		value, ok := fileSettings[key]
		if envValue := os.Getenv(key); envValue != "" {
			value, ok = envValue, true
		}
		if !ok {
			continue
		}

		switch key {
		case keyAllowedDirectories:
			cfg.AllowedDirectories = splitList(value)
		case keyMaxFileSize:
			size, err := units.RAMInBytes(value)
			if err != nil {
				return types.Config{}, fmt.Errorf("invalid %s %q: %w", keyMaxFileSize, value, err)
			}
			cfg.MaxFileSize = size
		case keyAllowedExtensions:
			cfg.AllowedExtensions = NormalizeExtensions(splitList(value))
		}
	}

	if len(l.overrides) > 0 {
		cfg.AllowedDirectories = append([]string(nil), l.overrides...)
	}

	return cfg, nil
}

// readEnvFile parses a line-oriented KEY=value file. Blank lines and
// lines starting with '#' are ignored; values are trimmed of
// surrounding single or double quotes.
func readEnvFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open settings file %s: %w", path, err)
	}
	defer f.Close()

	settings := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		settings[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	return settings, nil
}

// splitList splits a comma-separated value, trimming each entry and
// dropping empty ones.
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// NormalizeExtensions lowercases extensions and ensures each carries a
// leading dot, so "txt" and ".TXT" both configure ".txt".
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
