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

// eval validates the diffing algorithm on random inputs by replaying the resulting changes and
// checking that they reproduce the new input.
package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"znkr.io/heckel"
	"znkr.io/heckel/internal/replay"
	"znkr.io/heckel/textdiff"
)

type config struct {
	cases    int
	maxLen   int
	seed     uint64
	parallel int
	stats    string
	progress bool
	verbose  bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.cases, "cases", 10000, "number of random cases to evaluate")
	flag.IntVar(&cfg.maxLen, "max-len", 1000, "maximum length of the old input")
	flag.Uint64Var(&cfg.seed, "seed", 1, "seed for the random number generator")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.BoolVar(&cfg.progress, "progress", true, "render a progress bar")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		log.Fatalf("unexpected command line arguments: %v", flag.CommandLine.Args())
	}
	if cfg.verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := cfg.check(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	if err := run(context.Background(), &cfg); err != nil {
		log.WithError(err).Fatal("evaluation failed")
	}
}

// check reports flag values that can't be evaluated.
func (cfg *config) check() error {
	switch {
	case cfg.cases < 0:
		return errors.Errorf("-cases must not be negative, got %d", cfg.cases)
	case cfg.maxLen < 0:
		return errors.Errorf("-max-len must not be negative, got %d", cfg.maxLen)
	case cfg.parallel < 1:
		return errors.Errorf("-parallel must be positive, got %d", cfg.parallel)
	}
	return nil
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

// evalCase is a single random input pair.
type evalCase struct {
	id       int
	alphabet int
	x, y     []int
}

type result struct {
	caseID   int
	variant  string
	N, M     int
	D        int
	duration time.Duration
}

// generate returns the case with the given id. Cases are derived from the seed and the id only, so
// that a failing case can be reproduced independently of the order of evaluation.
func generate(seed uint64, id, maxLen int) evalCase {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[0:], seed)
	binary.LittleEndian.PutUint64(s[8:], uint64(id))
	rng := rand.New(rand.NewChaCha8(s))

	n := rng.IntN(maxLen + 1)
	// Small alphabets produce lots of repeated elements, large ones mostly unique elements.
	alphabet := 1 << rng.IntN(16)
	x := make([]int, n)
	for i := range x {
		x[i] = rng.IntN(alphabet)
	}

	var y []int
	for _, e := range x {
		switch rng.IntN(8) {
		case 0: // delete
		case 1: // insert
			y = append(y, rng.IntN(2*alphabet), e)
		case 2: // change
			y = append(y, rng.IntN(2*alphabet))
		default:
			y = append(y, e)
		}
	}

	// Move a few blocks around.
	for range rng.IntN(4) {
		if len(y) < 2 {
			break
		}
		i := rng.IntN(len(y))
		j := i + rng.IntN(len(y)-i) + 1
		block := slices.Clone(y[i:j])
		y = slices.Delete(y, i, j)
		k := rng.IntN(len(y) + 1)
		y = slices.Insert(y, k, block...)
	}

	return evalCase{id: id, alphabet: alphabet, x: x, y: y}
}

// evaluate diffs a case with every variant and validates the results.
func evaluate(c evalCase) ([]result, error) {
	var results []result

	start := time.Now()
	changes := heckel.Diff(c.x, c.y)
	results = append(results, result{
		caseID:   c.id,
		variant:  "diff",
		N:        len(c.x),
		M:        len(c.y),
		D:        len(changes),
		duration: time.Since(start),
	})
	if err := validate(c.x, c.y, changes); err != nil {
		return nil, errors.Wrap(err, "diff")
	}

	xtext, ytext := text(c.x), text(c.y)
	for variant, opts := range map[string][]textdiff.Option{
		"textdiff":          nil,
		"ignore-whitespace": {textdiff.IgnoreWhitespace()},
	} {
		start := time.Now()
		changes := textdiff.Changes(xtext, ytext, opts...)
		results = append(results, result{
			caseID:   c.id,
			variant:  variant,
			N:        len(c.x),
			M:        len(c.y),
			D:        len(changes),
			duration: time.Since(start),
		})
		if err := validate(lines(xtext), lines(ytext), changes); err != nil {
			return nil, errors.Wrap(err, variant)
		}
	}
	return results, nil
}

func validate[T any](x, y []T, changes []heckel.Change[T]) error {
	got, err := replay.Apply(x, changes)
	if err != nil {
		return errors.Wrap(err, "replaying changes")
	}
	if diff := cmp.Diff(y, got, cmpopts.EquateEmpty()); diff != "" {
		return errors.Errorf("replayed result differs [-want,+got]:\n%s", diff)
	}
	return nil
}

// text renders the elements as lines. Every third element is indented to give the whitespace
// insensitive comparison something to do.
func text(s []int) string {
	var b strings.Builder
	for _, e := range s {
		if e%3 == 0 {
			b.WriteString("  ")
		}
		b.WriteString(strconv.Itoa(e))
		b.WriteByte('\n')
	}
	return b.String()
}

func lines(s string) []string {
	out := strings.SplitAfter(s, "\n")
	return out[:len(out)-1]
}

func run(ctx context.Context, cfg *config) error {
	if err := cfg.check(); err != nil {
		return err
	}
	start := time.Now()
	var done, failed atomic.Int64

	var stats io.Writer
	if cfg.stats != "" {
		f, err := os.Create(cfg.stats)
		if err != nil {
			return errors.Wrap(err, "creating stats file")
		}
		defer f.Close()
		w := bufio.NewWriter(f)
		defer w.Flush()
		stats = w
	}

	g, ctx := errgroup.WithContext(ctx)

	cases := make(chan evalCase)
	g.Go(func() error {
		defer close(cases)
		for id := range cfg.cases {
			select {
			case cases <- generate(cfg.seed, id, cfg.maxLen):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	results := make(chan result)
	var workers errgroup.Group
	for range cfg.parallel {
		workers.Go(func() error {
			for c := range cases {
				res, err := evaluate(c)
				if err != nil {
					failed.Add(1)
					log.WithFields(log.Fields{
						"case":     c.id,
						"seed":     cfg.seed,
						"alphabet": c.alphabet,
					}).WithError(err).Error("validation failed")
				}
				for _, r := range res {
					select {
					case results <- r:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
				done.Add(1)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(results)
		return workers.Wait()
	})

	g.Go(func() error {
		if stats != nil {
			if _, err := io.WriteString(stats, "case,variant,N,M,D,duration_ns\n"); err != nil {
				return errors.Wrap(err, "writing stats")
			}
		}
		for r := range results {
			if stats == nil {
				continue
			}
			_, err := fmt.Fprintf(stats, "%d,%s,%d,%d,%d,%d\n", r.caseID, r.variant, r.N, r.M, r.D, r.duration.Nanoseconds())
			if err != nil {
				return errors.Wrap(err, "writing stats")
			}
		}
		return nil
	})

	if cfg.progress {
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			ticker := time.NewTicker(200 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					render(os.Stderr, done.Load(), cfg.cases, start)
				case <-stop:
					return
				}
			}
		}()
	}

	err := g.Wait()
	if cfg.progress {
		render(os.Stderr, done.Load(), cfg.cases, start)
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"cases":    done.Load(),
		"failed":   failed.Load(),
		"duration": time.Since(start).Round(time.Millisecond),
	}).Info("evaluation finished")
	if n := failed.Load(); n > 0 {
		return errors.Errorf("%d of %d cases failed", n, cfg.cases)
	}
	return nil
}

func render(w io.Writer, done int64, total int, start time.Time) {
	const width = 60
	progress := 1.0
	if total > 0 {
		progress = float64(done) / float64(total)
	}
	whole := int(progress * width)
	remainder := math.Mod(progress*width, 1)
	last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
	if width-whole < 1 {
		last = ""
	}
	bar := strings.Repeat(bars[len(bars)-1], whole) + last
	var perSec int
	if done > 0 {
		perSec = int((time.Duration(done) * time.Second) / time.Since(start))
	}
	fmt.Fprintf(w, "\r[%-*s] % 3.1f%% (%d evals/s) ", width, bar, 100*progress, perSec)
}
