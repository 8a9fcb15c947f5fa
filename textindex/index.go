package textindex

import (
	"bufio"
	"iter"
	"strings"
	"unicode"

	"github.com/npillmayer/oset"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Word is one vocabulary entry: a distinct word plus its occurrence count.
//
// Words are keyed by Text only; re-adding an existing word bumps Count.
type Word struct {
	Text  string
	Count int
}

// Index is a vocabulary over ingested text, backed by an ordered set of
// words. An Index is not safe for concurrent mutation.
type Index struct {
	tree  *oset.Tree[Word]
	total int
}

// indexDegree is the branching parameter of the backing tree. Wide nodes
// keep short string runs in contiguous slices.
const indexDegree = 8

// New creates an empty vocabulary index.
func New() *Index {
	tree, err := oset.New(oset.Config[Word]{
		Degree: indexDegree,
		Less:   func(a, b Word) bool { return a.Text < b.Text },
	})
	if err != nil {
		panic(err.Error()) // static config cannot fail validation
	}
	return &Index{tree: tree}
}

// Add records one occurrence of a word. Words are folded to lower case;
// empty input is ignored.
func (ix *Index) Add(word string) {
	word = normalizeWord(word)
	if word == "" {
		return
	}
	entry := Word{Text: word, Count: 1}
	if prev, ok := ix.tree.Get(entry); ok {
		entry.Count = prev.Count + 1
	}
	_, _, err := ix.tree.ReplaceOrInsert(entry)
	if err != nil {
		tracer().Errorf("index: cannot store word %q: %v", word, err)
		return
	}
	ix.total++
}

// AddText tokenizes a text into words and records each occurrence.
//
// Tokenization uses the UAX#14 line-wrap segmenter: every segment is one
// word plus trailing separators, which get trimmed before insertion.
func (ix *Index) AddText(text string) {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	for segmenter.Next() {
		ix.Add(string(segmenter.Bytes()))
	}
}

// Lookup returns the occurrence count of a word, 0 when absent.
func (ix *Index) Lookup(word string) int {
	entry, ok := ix.tree.Get(Word{Text: normalizeWord(word)})
	if !ok {
		return 0
	}
	return entry.Count
}

// Distinct returns the number of distinct words in the index.
func (ix *Index) Distinct() int {
	return ix.tree.Len()
}

// Total returns the total number of word occurrences recorded.
func (ix *Index) Total() int {
	return ix.total
}

// Words returns an iterator over all vocabulary entries in lexicographic
// order.
func (ix *Index) Words() iter.Seq[Word] {
	return ix.tree.All()
}

// EachWithPrefix visits the vocabulary entries sharing a prefix, in
// lexicographic order, until visit returns false.
//
// The walk starts at the first word >= prefix and stops at the first word
// that no longer carries the prefix; both bounds piggyback on the ordered
// iteration protocol of the backing tree.
func (ix *Index) EachWithPrefix(prefix string, visit func(Word) bool) {
	prefix = normalizeWord(prefix)
	ix.tree.AscendGreaterOrEqual(Word{Text: prefix}, func(entry Word) bool {
		if !strings.HasPrefix(entry.Text, prefix) {
			return false
		}
		return visit(entry)
	})
}

// normalizeWord trims non-letter/digit boundaries and folds case.
func normalizeWord(word string) string {
	word = strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(word)
}
