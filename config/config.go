package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Position conventions for recorded token offsets.
const (
	// PositionsStart records the offset of the token's first character.
	PositionsStart = "start"
	// PositionsEmit records the offset of the character whose scan step
	// emitted the token, matching the original tool bit for bit.
	PositionsEmit = "emit"
)

const DefaultMaxDepth = 512

// Config holds the front-end options.
type Config struct {
	Lexer  LexerConfig  `yaml:"lexer"`
	Parser ParserConfig `yaml:"parser"`
}

type LexerConfig struct {
	Positions string `yaml:"positions"`
	// StrictQuotes makes only the opening quote character close a string.
	StrictQuotes bool `yaml:"strict_quotes"`
}

type ParserConfig struct {
	// MaxDepth bounds nesting of parenthesised expressions, call argument
	// lists and statement bodies. Zero or less means DefaultMaxDepth.
	MaxDepth int `yaml:"max_depth"`
}

func Defaults() *Config {
	return &Config{
		Lexer: LexerConfig{
			Positions: PositionsStart,
		},
		Parser: ParserConfig{
			MaxDepth: DefaultMaxDepth,
		},
	}
}

// Parse overlays the YAML document on Defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var problems []string

	switch c.Lexer.Positions {
	case PositionsStart, PositionsEmit:
	default:
		problems = append(problems, fmt.Sprintf("lexer.positions: unknown convention %q (want %q or %q)", c.Lexer.Positions, PositionsStart, PositionsEmit))
	}

	if c.Parser.MaxDepth <= 0 {
		problems = append(problems, fmt.Sprintf("parser.max_depth: must be positive, got %d", c.Parser.MaxDepth))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// Marshal renders the config back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
