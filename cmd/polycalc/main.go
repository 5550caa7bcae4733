// Command polycalc is a stack-based calculator for sparse multivariable
// polynomials with integer coefficients.
//
// With no arguments it reads commands from standard input, printing a
// prompt when attached to a terminal. With a file argument it executes the
// file as a script.
//
//	polycalc [-c config.yaml] [script]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AaRaBiNoZa/multivariable-polynomial-calculator/pkg/cli"
)

func main() {
	configPath := flag.String("c", "", "path to a YAML config file")
	flag.Parse()

	opts := cli.Options{
		ConfigPath: *configPath,
		In:         os.Stdin,
		Out:        os.Stdout,
		Err:        os.Stderr,
	}
	if flag.NArg() > 0 {
		opts.ScriptPath = flag.Arg(0)
	}

	if err := cli.Run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "polycalc:", err)
		os.Exit(1)
	}
}
