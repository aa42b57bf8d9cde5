// Package config provides configuration management for the pname CLI and
// server.
//
// Values are layered with koanf. Precedence, highest first:
// flags > PNAME_* environment variables > pname.yaml > defaults.
package config

import (
	"time"

	"github.com/leapstack-labs/pname/pkg/dictionary/loader"
	"github.com/leapstack-labs/pname/pkg/format"
	"github.com/leapstack-labs/pname/pkg/pname"
	"github.com/leapstack-labs/pname/pkg/token"
)

// Config holds all configuration options.
type Config struct {
	Dictionary string            `koanf:"dictionary"`
	Format     loader.Format     `koanf:"format"`
	Tokenizer  token.Strategy    `koanf:"tokenizer"`
	Naming     format.Convention `koanf:"naming"`
	Fallback   bool              `koanf:"fallback"`
	Verbose    bool              `koanf:"verbose"`
	Quiet      bool              `koanf:"quiet"`
	Output     string            `koanf:"output"`
	Server     ServerConfig      `koanf:"server"`
	Batch      BatchConfig       `koanf:"batch"`

	// FileUsed is the config file that was read, if any.
	FileUsed string `koanf:"-"`
}

// ServerConfig holds configuration for the HTTP API.
type ServerConfig struct {
	Addr            string        `koanf:"addr"`
	Watch           bool          `koanf:"watch"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// BatchConfig holds configuration for batch conversion.
type BatchConfig struct {
	Workers int `koanf:"workers"` // 0 means one per CPU
}

// Default configuration values.
const (
	DefaultTokenizer = "optimal"
	DefaultNaming    = "lower_camel"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultAddr      = ":8080"
	DefaultShutdown  = 10 * time.Second
	EnvPrefix        = "PNAME_"
)

// ConfigFileNames are searched, in order, in the working directory when no
// config file is given explicitly.
var ConfigFileNames = []string{"pname.yaml", "pname.yml"}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Tokenizer: token.StrategyOptimal,
		Naming:    format.LowerCamel,
		Output:    DefaultOutput,
		Server:    ServerConfig{Addr: DefaultAddr, ShutdownTimeout: DefaultShutdown},
	}
}

// Options returns the generation settings selected by the config.
func (c *Config) Options() pname.Options {
	return pname.Options{
		Strategy:   c.Tokenizer,
		Convention: c.Naming,
		Fallback:   c.Fallback,
	}
}
