// Package config holds the interpreter's environment-driven settings,
// kept separate from command-line flags the way the teacher lineage keeps
// its mainer.Parser EnvVars/EnvPrefix wiring separate from business logic.
package config

import "github.com/caarlos0/env/v6"

// Config is populated from the process environment. It never fails open:
// a malformed value in the environment is a configuration error the
// caller surfaces before running anything.
type Config struct {
	// MaxSteps caps the number of instructions Run executes before aborting
	// with a code-99 internal error. Zero (the default) means no limit.
	MaxSteps int `env:"IPPCODE22_MAX_STEPS" envDefault:"0"`

	// Trace, when true, makes the interpreter summarize every instruction
	// fetch to stderr. It has no effect on stdout or the exit code.
	Trace bool `env:"IPPCODE22_TRACE" envDefault:"false"`
}

// Load reads Config from the current environment.
func Load() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
