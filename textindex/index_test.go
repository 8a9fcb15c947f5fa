package textindex

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAddTextCountsWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ix := New()
	ix.AddText("Hello, world! hello again")
	if ix.Distinct() != 3 {
		t.Fatalf("expected 3 distinct words, got %d", ix.Distinct())
	}
	if ix.Total() != 4 {
		t.Fatalf("expected 4 occurrences, got %d", ix.Total())
	}
	if n := ix.Lookup("hello"); n != 2 {
		t.Errorf("Lookup(hello) = %d, expected 2", n)
	}
	if n := ix.Lookup("Hello"); n != 2 {
		t.Errorf("lookup should fold case, got %d", n)
	}
	if n := ix.Lookup("world"); n != 1 {
		t.Errorf("Lookup(world) = %d, expected 1", n)
	}
	if n := ix.Lookup("absent"); n != 0 {
		t.Errorf("Lookup(absent) = %d, expected 0", n)
	}
}

func TestAddIgnoresSeparatorOnlyTokens(t *testing.T) {
	ix := New()
	ix.Add("   ")
	ix.Add("...")
	ix.Add("")
	if ix.Distinct() != 0 || ix.Total() != 0 {
		t.Fatalf("separator tokens entered the index: distinct=%d total=%d",
			ix.Distinct(), ix.Total())
	}
}

func TestWordsAreLexicographicallySorted(t *testing.T) {
	ix := New()
	ix.AddText("delta alpha charlie bravo")
	got := []string{}
	for w := range ix.Words() {
		got = append(got, w.Text)
	}
	want := []string{"alpha", "bravo", "charlie", "delta"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEachWithPrefix(t *testing.T) {
	ix := New()
	ix.AddText("car card care dog cart doom")
	got := []string{}
	ix.EachWithPrefix("car", func(w Word) bool {
		got = append(got, w.Text)
		return true
	})
	want := []string{"car", "card", "care", "cart"}
	if len(got) != len(want) {
		t.Fatalf("prefix walk yielded %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("prefix walk yielded %v, want %v", got, want)
		}
	}
	// Early termination must yield a prefix of the full walk.
	got = got[:0]
	ix.EachWithPrefix("car", func(w Word) bool {
		got = append(got, w.Text)
		return len(got) < 2
	})
	if len(got) != 2 || got[0] != "car" || got[1] != "card" {
		t.Fatalf("early stop yielded %v", got)
	}
}

func TestAddHTMLStripsTags(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ix := New()
	input := "<p>The <b>quick</b> fox</p><div>quick jumps</div>"
	if err := ix.AddHTML(strings.NewReader(input)); err != nil {
		t.Fatalf("AddHTML failed: %v", err)
	}
	if n := ix.Lookup("quick"); n != 2 {
		t.Errorf("Lookup(quick) = %d, expected 2", n)
	}
	if n := ix.Lookup("p"); n != 0 {
		t.Errorf("tag name leaked into the index")
	}
	if n := ix.Lookup("fox"); n != 1 {
		t.Errorf("Lookup(fox) = %d, expected 1", n)
	}
}
