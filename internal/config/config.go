// Package config holds the calculator's fixed constants and its optional
// on-disk YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CommentChar starts a comment line; such lines are ignored entirely.
const CommentChar = '#'

// MaxLineLen bounds a single input line. Deeply nested polynomials get
// long, so this is well above anything a reasonable session produces.
const MaxLineLen = 1 << 20

// DefaultPrompt is printed before each line of an interactive session.
const DefaultPrompt = "> "

// DefaultConfigFile is looked up in the working directory when no config
// path is given.
const DefaultConfigFile = "polycalc.yaml"

// DefaultHistoryFile receives the session history when enabled without an
// explicit path.
const DefaultHistoryFile = "polycalc_history.db"

// Calculator command names.
const (
	CmdZero    = "ZERO"
	CmdIsCoeff = "IS_COEFF"
	CmdIsZero  = "IS_ZERO"
	CmdClone   = "CLONE"
	CmdAdd     = "ADD"
	CmdMul     = "MUL"
	CmdNeg     = "NEG"
	CmdSub     = "SUB"
	CmdIsEq    = "IS_EQ"
	CmdDeg     = "DEG"
	CmdDegBy   = "DEG_BY"
	CmdAt      = "AT"
	CmdPrint   = "PRINT"
	CmdPop     = "POP"
	CmdCompose = "COMPOSE"
)

// Config is the calculator's optional configuration file.
type Config struct {
	// Prompt overrides the interactive prompt.
	Prompt string `yaml:"prompt,omitempty"`

	// History controls the sqlite session log.
	History History `yaml:"history,omitempty"`
}

// History configures the session log. It is off by default; enabling it
// never changes calculator output.
type History struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Prompt: DefaultPrompt}
}

// Load reads the YAML configuration at path. An empty path means "use
// DefaultConfigFile if it exists, defaults otherwise"; an explicit path
// must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.History.Enabled && cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryFile
	}
	return cfg, nil
}
