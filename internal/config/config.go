// Package config loads optional defaults from a JSON file. Command-line flags
// override every value set here.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config holds tool defaults.
type Config struct {
	ChunkSize   int64  `json:"chunk_size"`   // scanner chunk size in bytes
	LogLevel    string `json:"log_level"`    // debug | info | warn | error
	IndexSuffix string `json:"index_suffix"` // appended to the FASTA path
	Wrap        int    `json:"wrap"`         // FASTA output line width, 0 = no wrap
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		ChunkSize:   1 << 20,
		LogLevel:    "info",
		IndexSuffix: ".idx.json",
		Wrap:        60,
	}
}

// Load reads path over the defaults. An empty path returns the defaults; a
// path that was given but cannot be read is an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, c.Validate()
}

// Validate rejects values no command could use.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return errors.New("config: chunk_size must be > 0")
	}
	if c.Wrap < 0 {
		return errors.New("config: wrap must be ≥ 0")
	}
	if strings.TrimSpace(c.IndexSuffix) == "" {
		return errors.New("config: index_suffix must not be empty")
	}
	return nil
}

// IndexPath is where the index of fastaPath lives by default.
func (c Config) IndexPath(fastaPath string) string {
	return fastaPath + c.IndexSuffix
}
