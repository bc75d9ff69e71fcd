package benchmarks

import (
	"bytes"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/heckel"
	"znkr.io/heckel/textdiff"
)

// Counts tallies the lines an implementation reports as changed. Only heckel reports replacements
// and moves, the other implementations express them as a deletion plus an insertion.
type Counts struct {
	Deletes, Inserts, Replaces, Moves int
}

// Edits returns the total number of changed lines.
func (c Counts) Edits() int { return c.Deletes + c.Inserts + c.Replaces + c.Moves }

// Impl is a line diff implementation.
type Impl struct {
	Name string
	Diff func(x, y []byte) Counts
}

var Impls = []Impl{
	{"heckel", func(x, y []byte) Counts { return heckelCounts(textdiff.Changes(x, y)) }},
	{"heckel-ignore-whitespace", func(x, y []byte) Counts {
		return heckelCounts(textdiff.Changes(x, y, textdiff.IgnoreWhitespace()))
	}},
	{"go-internal", func(x, y []byte) Counts { return countUnified(gointernal.Diff("x", x, "y", y)) }},
	{"udiff", func(x, y []byte) Counts {
		return countUnified([]byte(udiff.Unified("x", "y", string(x), string(y))))
	}},
	{"godebug", func(x, y []byte) Counts {
		// Lines are prefixed like a unified diff body, there are no headers.
		return countLines([]byte(godebug.Diff(string(x), string(y))))
	}},
	{"diffmatchpatch", diffmatchpatchCounts},
	{"mb0", mb0Counts},
}

// Lookup returns the implementation with the given name.
func Lookup(name string) (Impl, bool) {
	for _, impl := range Impls {
		if impl.Name == name {
			return impl, true
		}
	}
	return Impl{}, false
}

func heckelCounts[T string | []byte](changes []heckel.Change[T]) Counts {
	var c Counts
	for _, ch := range changes {
		switch ch.Kind {
		case heckel.Delete:
			c.Deletes++
		case heckel.Insert:
			c.Inserts++
		case heckel.Replace:
			c.Replaces++
		case heckel.Move:
			c.Moves++
		}
	}
	return c
}

// countUnified counts the changed lines of a unified diff. Everything before the first hunk is a
// header, including the "---" and "+++" file lines.
func countUnified(out []byte) Counts {
	i := bytes.Index(out, []byte("\n@@"))
	if i < 0 {
		return Counts{}
	}
	return countLines(out[i+1:])
}

func countLines(out []byte) Counts {
	var c Counts
	for line := range bytes.Lines(out) {
		switch {
		case bytes.HasPrefix(line, []byte("@@")):
		case line[0] == '-':
			c.Deletes++
		case line[0] == '+':
			c.Inserts++
		}
	}
	return c
}

func diffmatchpatchCounts(x, y []byte) Counts {
	dmp := diffmatchpatch.New()
	rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(rx, ry, false), lines)

	var c Counts
	for _, d := range diffs {
		n := strings.Count(d.Text, "\n")
		if !strings.HasSuffix(d.Text, "\n") && d.Text != "" {
			n++
		}
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			c.Deletes += n
		case diffmatchpatch.DiffInsert:
			c.Inserts += n
		}
	}
	return c
}

type mb0lines struct{ x, y [][]byte }

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }

func mb0Counts(x, y []byte) Counts {
	d := mb0lines{x: splitLines(x), y: splitLines(y)}
	var c Counts
	for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
		c.Deletes += ch.Del
		c.Inserts += ch.Ins
	}
	return c
}

func splitLines(b []byte) [][]byte {
	var lines [][]byte
	for line := range bytes.Lines(b) {
		lines = append(lines, line)
	}
	return lines
}
