package textindex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeTempText(t *testing.T, lines int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		sb.WriteString("alpha beta gamma\n")
	}
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatalf("cannot write temp file: %v", err)
	}
	return path
}

func TestLoadIndexesWholeFile(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	path := writeTempText(t, 300)
	ld, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	ix, err := ld.Wait()
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if ix.Distinct() != 3 {
		t.Fatalf("expected 3 distinct words, got %d", ix.Distinct())
	}
	if ix.Total() != 900 {
		t.Fatalf("expected 900 occurrences, got %d", ix.Total())
	}
	if n := ix.Lookup("beta"); n != 300 {
		t.Errorf("Lookup(beta) = %d, expected 300", n)
	}
}

func TestLoadMatchesSynchronousBuild(t *testing.T) {
	path := writeTempText(t, 50)
	ld, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	loaded, err := ld.Wait()
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read back temp file: %v", err)
	}
	direct := New()
	direct.AddText(string(content))
	if loaded.Distinct() != direct.Distinct() || loaded.Total() != direct.Total() {
		t.Fatalf("async build (%d/%d) differs from sync build (%d/%d)",
			loaded.Distinct(), loaded.Total(), direct.Distinct(), direct.Total())
	}
}

func TestLoadBroadcastsProgress(t *testing.T) {
	path := writeTempText(t, 1000)
	ld, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	events := 0
	if ch, ok := ld.Subscribe(); ok {
		for msg := range ch {
			if _, isProgress := msg.(Progress); isProgress {
				events++
			}
		}
	}
	ix, err := ld.Wait()
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	// Subscription races with loading; events may have been missed entirely,
	// but any event received must be well-formed, and the final index must be
	// complete regardless.
	if ix.Total() != 3000 {
		t.Fatalf("expected 3000 occurrences, got %d", ix.Total())
	}
	t.Logf("received %d progress events", events)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-such-file")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("expected error for directory input")
	}
}
