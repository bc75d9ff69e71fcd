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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF to print change scripts
// instead of unified diffs:
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff HEAD~1
//
// git invokes it once per changed file with the arguments
//
//	path old-file old-hex old-mode new-file new-hex new-mode
//
// Set GITDIFF_IGNORE_WHITESPACE=1 to match lines ignoring whitespace.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"znkr.io/heckel/textdiff"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		log.WithError(err).Error("gitdiff failed")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) < 8 {
		return errors.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, newFile, newHex, newMode := args[1], args[2], args[3], args[5], args[6], args[7]

	old, err := readFile(oldFile)
	if err != nil {
		return errors.Wrap(err, "reading old file")
	}
	new, err := readFile(newFile)
	if err != nil {
		return errors.Wrap(err, "reading new file")
	}

	var opts []textdiff.Option
	if os.Getenv("GITDIFF_IGNORE_WHITESPACE") == "1" {
		opts = append(opts, textdiff.IgnoreWhitespace())
	}
	script := textdiff.Script(old, new, opts...)

	w := &errWriter{w: stdout}
	w.printf("diff --git a/%s b/%s\n", path, path)
	w.printf("index %s..%s %s\n", short(oldHex), short(newHex), newMode)
	w.printf("--- a/%s\n", path)
	w.printf("+++ b/%s\n", path)
	w.write(script)
	return w.err
}

func readFile(name string) ([]byte, error) {
	if name == os.DevNull {
		return nil, nil
	}
	b, err := os.ReadFile(name)
	return b, errors.WithStack(err)
}

func short(hex string) string {
	if len(hex) > 10 {
		return hex[:10]
	}
	return hex
}

// errWriter remembers the first write error and skips all writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) printf(format string, args ...any) {
	if w.err == nil {
		_, w.err = fmt.Fprintf(w.w, format, args...)
	}
}

func (w *errWriter) write(b []byte) {
	if w.err == nil {
		_, w.err = w.w.Write(b)
	}
}
