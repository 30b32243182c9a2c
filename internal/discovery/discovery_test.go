package discovery

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTree creates the given files (with empty content) under a temp dir.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("(defun a ())"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestIsPattern(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{"out/a.lisp", false},
		{"out/*.lisp", true},
		{"out/**/a.lisp", true},
		{"out/a?.lisp", true},
		{"out/[ab].lisp", true},
		{"out/{a,b}.lisp", true},
		{"-", false},
	}
	for _, tt := range tests {
		if got := IsPattern(tt.arg); got != tt.want {
			t.Errorf("IsPattern(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestExpand(t *testing.T) {
	root := writeTree(t,
		"out/b.lisp",
		"out/a.lisp",
		"out/nested/c.lisp",
		"out/notes.txt",
		"out/[draft].lisp",
	)
	p := func(rel string) string { return filepath.Join(root, filepath.FromSlash(rel)) }

	tests := []struct {
		name          string
		args          []string
		wantFiles     []string
		wantUnmatched []string
	}{
		{
			name:      "literal paths keep order",
			args:      []string{p("out/b.lisp"), p("out/a.lisp")},
			wantFiles: []string{p("out/b.lisp"), p("out/a.lisp")},
		},
		{
			name:      "missing literal is kept",
			args:      []string{p("out/missing.lisp")},
			wantFiles: []string{p("out/missing.lisp")},
		},
		{
			name:      "stdin",
			args:      []string{"-"},
			wantFiles: []string{"-"},
		},
		{
			name:      "single level glob is sorted",
			args:      []string{p("out") + "/*.lisp"},
			wantFiles: []string{p("out/[draft].lisp"), p("out/a.lisp"), p("out/b.lisp")},
		},
		{
			name:      "recursive glob",
			args:      []string{p("out") + "/**/*.lisp"},
			wantFiles: []string{p("out/[draft].lisp"), p("out/a.lisp"), p("out/b.lisp"), p("out/nested/c.lisp")},
		},
		{
			name:      "directory uses default patterns",
			args:      []string{p("out")},
			wantFiles: []string{p("out/[draft].lisp"), p("out/a.lisp"), p("out/b.lisp"), p("out/nested/c.lisp")},
		},
		{
			name:      "existing file with brackets is literal",
			args:      []string{p("out/[draft].lisp")},
			wantFiles: []string{p("out/[draft].lisp")},
		},
		{
			name:      "missing file with brackets is kept",
			args:      []string{p("out/[v2].lisp")},
			wantFiles: []string{p("out/[v2].lisp")},
		},
		{
			name:      "brace pattern that matches expands",
			args:      []string{p("out") + "/{a,b}.lisp"},
			wantFiles: []string{p("out/a.lisp"), p("out/b.lisp")},
		},
		{
			name:      "unterminated bracket is a literal path",
			args:      []string{p("out/[.lisp")},
			wantFiles: []string{p("out/[.lisp")},
		},
		{
			name:          "unmatched glob is reported",
			args:          []string{p("out") + "/*.md"},
			wantUnmatched: []string{p("out") + "/*.md"},
		},
		{
			name:      "duplicates removed",
			args:      []string{p("out/a.lisp"), p("out") + "/*.lisp"},
			wantFiles: []string{p("out/a.lisp"), p("out/[draft].lisp"), p("out/b.lisp")},
		},
	}

	fd := NewFileDiscovery()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fd.Expand(tt.args)
			if err != nil {
				t.Fatalf("Expand() error = %v", err)
			}
			if !reflect.DeepEqual(got.Files, tt.wantFiles) {
				t.Errorf("Files = %v, want %v", got.Files, tt.wantFiles)
			}
			if !reflect.DeepEqual(got.Unmatched, tt.wantUnmatched) {
				t.Errorf("Unmatched = %v, want %v", got.Unmatched, tt.wantUnmatched)
			}
		})
	}
}

func TestExpand_CustomPatterns(t *testing.T) {
	root := writeTree(t, "a.lisp", "b.txt")

	got, err := NewFileDiscovery("*.txt").Expand([]string{root})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	want := []string{filepath.Join(root, "b.txt")}
	if !reflect.DeepEqual(got.Files, want) {
		t.Errorf("Files = %v, want %v", got.Files, want)
	}
}

func TestExpand_BadPattern(t *testing.T) {
	if _, err := NewFileDiscovery().Expand([]string{"out/*[.lisp"}); err == nil {
		t.Error("Expand() expected error for malformed pattern")
	}
}
