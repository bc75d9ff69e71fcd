// diff prints the heckel change script for two inputs, or compares the number of changed lines
// reported by every implementation used for benchmarking.
//
// Usage:
//
//	diff [-w] [-color] [-compare] x y
//	diff [-w] [-color] [-compare] -txtar testdata/reorder.test
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"golang.org/x/tools/txtar"
	"znkr.io/heckel/internal/benchmarks"
	"znkr.io/heckel/textdiff"
)

type config struct {
	ignoreWhitespace bool
	color            bool
	compare          bool
	txtar            string
	files            []string
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.ignoreWhitespace, "w", false, "match lines ignoring whitespace")
	flag.BoolVar(&cfg.color, "color", false, "colorize the change script")
	flag.BoolVar(&cfg.compare, "compare", false, "print change counts of all implementations instead of the change script")
	flag.StringVar(&cfg.txtar, "txtar", "", "read x and y from a txtar archive")
	flag.Parse()
	cfg.files = flag.Args()

	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, w io.Writer) error {
	x, y, err := load(cfg)
	if err != nil {
		return err
	}

	if cfg.compare {
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "impl\tdeletes\tinserts\treplaces\tmoves\tedits\t")
		for _, impl := range benchmarks.Impls {
			c := impl.Diff(x, y)
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t\n", impl.Name, c.Deletes, c.Inserts, c.Replaces, c.Moves, c.Edits())
		}
		return tw.Flush()
	}

	var opts []textdiff.Option
	if cfg.ignoreWhitespace {
		opts = append(opts, textdiff.IgnoreWhitespace())
	}
	if cfg.color {
		opts = append(opts, textdiff.TerminalColors())
	}
	_, err = w.Write(textdiff.Script(x, y, opts...))
	return err
}

func load(cfg config) (x, y []byte, err error) {
	if cfg.txtar != "" {
		if len(cfg.files) != 0 {
			return nil, nil, fmt.Errorf("usage: diff -txtar <file>")
		}
		ar, err := txtar.ParseFile(cfg.txtar)
		if err != nil {
			return nil, nil, err
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				x = f.Data
			case "y":
				y = f.Data
			}
		}
		return x, y, nil
	}

	if len(cfg.files) != 2 {
		return nil, nil, fmt.Errorf("usage: diff <x> <y>")
	}
	if x, err = os.ReadFile(cfg.files[0]); err != nil {
		return nil, nil, err
	}
	if y, err = os.ReadFile(cfg.files[1]); err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
