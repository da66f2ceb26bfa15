/*
Copyright © 2015-2022 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command delpi reads a problem in MPS format, solves it exactly (or within
// a requested delta-precision), and reports the result on stdout. It reads
// from a named file or, with "-" or no file argument, from stdin.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/pkg/errors"

	"github.com/costela/delpi"
	"github.com/costela/delpi/mps"
)

const (
	exitOK       = 0
	exitError    = 1
	exitUnsolved = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr *os.File) int {
	fs := flag.NewFlagSet("delpi", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath  = fs.String("config", "", "path to a YAML config file of defaults")
		precision   = fs.String("precision", "", "delta-optimality precision (rational, e.g. 1/1000); empty keeps the configured or embedded precision (exact if none)")
		csv         = fs.Bool("csv", false, "emit CSV output")
		silent      = fs.Bool("silent", false, "suppress stdout")
		verbosity   = fs.Int("verbosity", 0, "delpi log level")
		produceMods = fs.Bool("produce-models", false, "dump the parsed model before solving")
		storeSoln   = fs.Bool("store-solution", true, "retain the primal/dual solution vectors")
	)
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	var cfg delpi.Config
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
	}

	// CLI flags win over anything a config file or embedded MPS record set,
	// per §6's "options set on the command line take precedence" rule —
	// only apply a flag when the caller actually passed it.
	target := &cfg
	applyFlag := func(f *flag.Flag) {
		switch f.Name {
		case "csv":
			target.CSV = *csv
		case "silent":
			target.Silent = *silent
		case "verbosity":
			target.Verbosity = *verbosity
		case "produce-models":
			target.ProduceModels = *produceMods
		case "precision":
			if *precision != "" {
				r, ok := new(big.Rat).SetString(*precision)
				if !ok {
					fmt.Fprintf(stderr, "delpi: invalid -precision value %q\n", *precision)
					return
				}
				target.Precision = r
			}
		}
	}
	fs.Visit(applyFlag)

	opts := []delpi.Option{delpi.WithConfig(cfg)}
	var logger delpi.Logger
	if !cfg.Silent {
		logger = delpi.NewStdLogger(stderr, cfg.Verbosity)
		opts = append(opts, delpi.WithLogger(logger))
	}

	src, closeSrc, err := openInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	defer closeSrc()

	model, err := delpi.NewModel("cli", delpi.Minimize, opts...)
	if err != nil {
		fmt.Fprintln(stderr, errors.Wrap(err, "delpi: constructing model"))
		return exitError
	}

	driver := mps.NewDriver(model)
	if err := driver.Parse(src); err != nil {
		fmt.Fprintln(stderr, errors.Wrap(err, "delpi: parsing MPS input"))
		return exitError
	}
	// Embedded records were applied while parsing; re-apply the passed flags on top.
	target = model.Config()
	fs.Visit(applyFlag)
	for _, w := range driver.Warnings {
		if logger != nil {
			logger.Warnf("%s", w)
		}
	}

	if model.Config().ProduceModels {
		model.Dump()
	}

	res, err := model.Solve(model.Config().Precision, *storeSoln)
	if err != nil {
		fmt.Fprintln(stderr, errors.Wrap(err, "delpi: solving"))
		return exitError
	}

	if !model.CheckAgainstExpected(res.Result()) {
		expected, _ := model.Expected()
		if logger != nil {
			logger.Warnf("solved to %s, but the input declared an expected status of %s", res.Result(), expected)
		}
	}

	if !cfg.Silent {
		report(model.Config().CSV, res)
	}

	switch res.Result() {
	case delpi.Optimal, delpi.DeltaOptimal, delpi.Unbounded, delpi.Infeasible:
		return exitOK
	case delpi.Error:
		return exitError
	default:
		return exitUnsolved
	}
}

func openInput(name string) (*os.File, func(), error) {
	if name == "" || name == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, func() {}, errors.Wrapf(err, "delpi: opening %q", name)
	}
	return f, func() { f.Close() }, nil
}

// report writes the solve verdict to stdout, as the CLI's primary output
// rather than a diagnostic — kept separate from the Logger the model reports
// warnings through.
func report(csv bool, res *delpi.SolveResult) {
	if csv {
		fmt.Println("result,objective,precision")
		fmt.Printf("%s,%s,%s\n", res.Result(), res.ObjectiveValue().RatString(), res.Precision().RatString())
		return
	}
	fmt.Printf("result: %s\n", res.Result())
	if res.Result() == delpi.Optimal || res.Result() == delpi.DeltaOptimal {
		fmt.Printf("objective: %s\n", res.ObjectiveValue().RatString())
		if res.Result() == delpi.DeltaOptimal {
			fmt.Printf("precision: %s\n", res.Precision().RatString())
		}
	}
}
