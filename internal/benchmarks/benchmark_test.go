package benchmarks

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

type testdata struct {
	name string
	x, y []byte
}

func loadTestdata(t testing.TB) []testdata {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []testdata
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		name := strings.TrimPrefix(filename, "testdata/")
		test := testdata{
			name: name,
		}

		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				test.x = f.Data
			case "y":
				test.y = f.Data
			default:
				t.Fatalf("unknown file in archive: %v", f)
			}
		}
		tests = append(tests, test)
	}
	return tests
}

func TestImpls(t *testing.T) {
	for _, impl := range Impls {
		t.Run("impl="+impl.Name, func(t *testing.T) {
			for _, td := range loadTestdata(t) {
				if got := impl.Diff(td.x, td.x); got != (Counts{}) {
					t.Errorf("%s: diff of identical inputs = %+v, want no edits", td.name, got)
				}
				if got := impl.Diff(td.x, td.y); got.Edits() == 0 {
					t.Errorf("%s: diff of different inputs has no edits", td.name)
				}
			}
		})
	}
}

func TestCountUnified(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Counts
	}{
		{
			name: "empty",
			in:   "",
			want: Counts{},
		},
		{
			name: "headers-are-skipped",
			in:   "diff x y\n--- x\n+++ y\n@@ -1,2 +1,2 @@\n a\n-b\n+c\n",
			want: Counts{Deletes: 1, Inserts: 1},
		},
		{
			name: "lines-that-look-like-headers",
			in:   "--- x\n+++ y\n@@ -1 +1 @@\n--- old\n+++ new\n\\ No newline at end of file\n",
			want: Counts{Deletes: 1, Inserts: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countUnified([]byte(tt.in)); got != tt.want {
				t.Errorf("countUnified(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHeckelCounts(t *testing.T) {
	impl, ok := Lookup("heckel-ignore-whitespace")
	if !ok {
		t.Fatal("heckel-ignore-whitespace not found")
	}
	got := impl.Diff([]byte("a\nb\n c\n"), []byte("c\na\nd\n"))
	want := Counts{Deletes: 1, Inserts: 1, Replaces: 1, Moves: 2}
	if got != want {
		t.Errorf("Diff(...) = %+v, want %+v", got, want)
	}
}

func BenchmarkDiffs(b *testing.B) {
	for _, impl := range Impls {
		b.Run("impl="+impl.Name, func(b *testing.B) {
			for _, td := range loadTestdata(b) {
				b.Run("name="+td.name, func(b *testing.B) {
					for b.Loop() {
						_ = impl.Diff(td.x, td.y)
					}
					b.StopTimer()
					c := impl.Diff(td.x, td.y)
					b.ReportMetric(float64(c.Edits()), "edits")
					b.ReportMetric(float64(c.Moves), "moves")
				})
			}
		})
	}
}
