package oset

import (
	"bytes"
	"strings"
	"testing"
)

func TestDumpRendersAllLevels(t *testing.T) {
	tree := mustTree(t, 2, 20)
	var buf bytes.Buffer
	tree.Dump(&buf, &VizConfig{LineWidth: 120})
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected a multi-node dump, got %q", out)
	}
	for _, want := range []string{"[", "]"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump misses %q: %q", want, out)
		}
	}
}

func TestDumpEmptyTree(t *testing.T) {
	tree, err := NewOrdered[int](2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	tree.Dump(&buf, &VizConfig{LineWidth: 80})
	if !strings.Contains(buf.String(), "(empty)") {
		t.Errorf("empty dump = %q", buf.String())
	}
}

func TestTree2Dot(t *testing.T) {
	tree := mustTree(t, 2, 10)
	var buf bytes.Buffer
	Tree2Dot(tree, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("not a DOT digraph: %q", out)
	}
	if !strings.Contains(out, "->") {
		t.Errorf("expected edges in DOT output for a multi-node tree")
	}
}
