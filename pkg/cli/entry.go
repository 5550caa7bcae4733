// Package cli wires the polynomial calculator together: configuration,
// optional session history, terminal detection and the interpreter loop.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/AaRaBiNoZa/multivariable-polynomial-calculator/internal/calc"
	"github.com/AaRaBiNoZa/multivariable-polynomial-calculator/internal/config"
	"github.com/AaRaBiNoZa/multivariable-polynomial-calculator/internal/diagnostics"
	"github.com/AaRaBiNoZa/multivariable-polynomial-calculator/internal/history"
)

// Options configures a single calculator run.
type Options struct {
	// ConfigPath is an explicit config file; empty means the default
	// lookup (config.DefaultConfigFile in the working directory).
	ConfigPath string

	// ScriptPath, when set, is executed instead of In.
	ScriptPath string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes the calculator and returns only setup or read failures;
// calculator diagnostics go to Err and are not errors of the run itself.
func Run(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	in := opts.In
	interactive := false
	if opts.ScriptPath != "" {
		f, err := os.Open(opts.ScriptPath)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in = f
	} else if f, ok := in.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	interp := calc.New(opts.Out, diagnostics.NewReporter(opts.Err))

	if interactive {
		interp.Prompt = func() { fmt.Fprint(opts.Out, cfg.Prompt) }
	}

	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		interp.AfterLine = func(n int, line string, ok bool) {
			// History is best-effort; a failed append must not stop the
			// calculator.
			if err := store.Append(n, line, ok); err != nil {
				fmt.Fprintf(opts.Err, "history: %v\n", err)
			}
		}
	}

	return interp.Run(in)
}
