// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// heckeldiff prints the change script between two files.
//
// Usage:
//
//	heckeldiff [-w] [-color auto|always|never] [-v] old new
//
// Either file may be /dev/null to compare against an empty file. The exit status is 0 if the files
// are identical, 1 if they differ, and 2 on error.
package main

import (
	"bytes"
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"

	"znkr.io/heckel/textdiff"
)

const (
	exitSame = 0
	exitDiff = 1
	exitErr  = 2
)

func main() {
	log.SetOutput(os.Stderr)
	isTerminal := func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	code, err := run(os.Args[1:], os.Stdout, isTerminal)
	if err != nil {
		log.WithError(err).Error("heckeldiff failed")
	}
	os.Exit(code)
}

type options struct {
	ignoreWhitespace bool
	color            string
	verbose          bool
}

func run(args []string, stdout io.Writer, isTerminal func() bool) (int, error) {
	var opts options
	fs := flag.NewFlagSet("heckeldiff", flag.ContinueOnError)
	fs.BoolVar(&opts.ignoreWhitespace, "w", false, "match lines ignoring whitespace")
	fs.StringVar(&opts.color, "color", "auto", "colorize output: auto, always, or never")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return exitErr, err
	}
	if fs.NArg() != 2 {
		return exitErr, errors.Errorf("expected 2 files, got %d", fs.NArg())
	}
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	var diffOpts []textdiff.Option
	if opts.ignoreWhitespace {
		diffOpts = append(diffOpts, textdiff.IgnoreWhitespace())
	}
	switch opts.color {
	case "always":
		diffOpts = append(diffOpts, textdiff.TerminalColors())
	case "auto":
		if isTerminal() {
			diffOpts = append(diffOpts, textdiff.TerminalColors())
		}
	case "never":
	default:
		return exitErr, errors.Errorf("invalid -color value %q", opts.color)
	}

	oldFile, newFile := fs.Arg(0), fs.Arg(1)
	old, err := readFile(oldFile)
	if err != nil {
		return exitErr, errors.Wrap(err, "reading old file")
	}
	new, err := readFile(newFile)
	if err != nil {
		return exitErr, errors.Wrap(err, "reading new file")
	}
	log.WithFields(log.Fields{
		"old":      oldFile,
		"new":      newFile,
		"oldBytes": len(old),
		"newBytes": len(new),
	}).Debug("comparing files")

	if bytes.Equal(old, new) {
		return exitSame, nil
	}

	script := textdiff.Script(old, new, diffOpts...)
	if len(script) == 0 {
		return exitSame, nil
	}
	if _, err := stdout.Write(script); err != nil {
		return exitErr, errors.Wrap(err, "writing output")
	}
	return exitDiff, nil
}

func readFile(name string) ([]byte, error) {
	if name == os.DevNull {
		return nil, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}
