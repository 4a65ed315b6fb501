// Package config loads jnova's TOML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/chazu/jnova/pkg/naming"
	"github.com/chazu/jnova/pkg/parser"
	"github.com/chazu/jnova/pkg/source"
)

// Config is the decoded configuration file.
type Config struct {
	// Source is the language level, "1.2" to "1.6" or "5"/"6".
	Source   string   `toml:"source"`
	Interner Interner `toml:"interner"`
	Log      Log      `toml:"log"`
	// DocComments keeps declaration doc comments in parse output.
	DocComments bool `toml:"doc-comments"`

	level source.Level
}

// Interner sizes the symbol table.
type Interner struct {
	Buckets int `toml:"buckets"`
	Arena   int `toml:"arena"`
}

// Log configures commonlog.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	if err := c.validate(); err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return c
}

// Load reads the configuration file at path. Missing keys take their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	c, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes configuration text.
func Parse(data string) (*Config, error) {
	var c Config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %s", undecoded[0])
	}
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = source.DefaultLevel.String()
	}
	if c.Interner.Buckets == 0 {
		c.Interner.Buckets = naming.DefaultBuckets
	}
	if c.Interner.Arena == 0 {
		c.Interner.Arena = naming.DefaultArenaSize
	}
}

func (c *Config) validate() error {
	level, err := source.LookupLevel(c.Source)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	c.level = level
	if b := c.Interner.Buckets; b < 0 || b&(b-1) != 0 {
		return fmt.Errorf("interner.buckets: %d is not a power of two", b)
	}
	if c.Interner.Arena < 0 {
		return fmt.Errorf("interner.arena: %d is negative", c.Interner.Arena)
	}
	if c.Log.Verbosity < -4 || c.Log.Verbosity > 2 {
		return fmt.Errorf("log.verbosity: %d is outside -4..2", c.Log.Verbosity)
	}
	return nil
}

// Level returns the configured language level.
func (c *Config) Level() source.Level {
	return c.level
}

// SetLevel overrides the language level by name.
func (c *Config) SetLevel(name string) error {
	level, err := source.LookupLevel(name)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	c.Source, c.level = name, level
	return nil
}

// NewTable creates a symbol table of the configured size.
func (c *Config) NewTable() *naming.Table {
	return naming.NewTableSize(c.Interner.Buckets, c.Interner.Arena)
}

// ParserConfig returns a parser configuration for a fresh symbol table.
// The caller supplies the diagnostics sink.
func (c *Config) ParserConfig() parser.Config {
	return parser.Config{
		Table:           c.NewTable(),
		Level:           c.level,
		KeepDocComments: c.DocComments,
	}
}
