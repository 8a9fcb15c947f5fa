package textindex

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/guiguan/caster"
)

// progressStride is the number of input lines between two progress
// broadcasts.
const progressStride = 256

// Progress is the event broadcast to subscribers while a file is indexed.
type Progress struct {
	Lines int   // input lines consumed so far
	Bytes int64 // input bytes consumed so far
	Words int   // word occurrences recorded so far
}

// Loader indexes a text file asynchronously.
//
// The index under construction is owned by the loading goroutine until Wait
// returns; clients must not touch it earlier. Progress events can be
// observed through Subscribe while loading is in flight.
type Loader struct {
	path      string
	info      os.FileInfo
	file      *os.File
	cast      *caster.Caster // broadcaster for progress events
	idx       *Index
	done      chan struct{}
	lastError error
}

// Load opens a text file and starts indexing it in the background.
// Opening of the file is always done synchronously; the returned Loader
// reports completion through Wait.
func Load(name string) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	ld := &Loader{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages while lines are indexed
		idx:  New(),
		done: make(chan struct{}),
	}
	go ld.indexAllLines()
	return ld, nil
}

// Subscribe registers a listener for Progress events. The returned channel
// is closed when loading completes. ok is false when loading has already
// finished.
func (ld *Loader) Subscribe() (ch <-chan interface{}, ok bool) {
	return ld.cast.Sub(context.Background(), 1)
}

// Size returns the byte size of the file being indexed.
func (ld *Loader) Size() int64 {
	return ld.info.Size()
}

// Unsubscribe removes a listener registered with Subscribe.
func (ld *Loader) Unsubscribe(ch chan interface{}) {
	ld.cast.Unsub(ch)
}

// Wait blocks until the file is fully indexed and returns the index, or the
// first I/O error encountered.
func (ld *Loader) Wait() (*Index, error) {
	<-ld.done
	if ld.lastError != nil {
		return nil, ld.lastError
	}
	return ld.idx, nil
}

// indexAllLines runs in its own goroutine and owns ld.idx until done is
// closed.
func (ld *Loader) indexAllLines() {
	defer func() {
		ld.cast.Close()
		close(ld.done)
	}()
	defer ld.file.Close()
	scanner := bufio.NewScanner(ld.file)
	lines := 0
	var bytes int64
	for scanner.Scan() {
		line := scanner.Text()
		ld.idx.AddText(line)
		lines++
		bytes += int64(len(line)) + 1
		if lines%progressStride == 0 {
			ld.cast.Pub(Progress{Lines: lines, Bytes: bytes, Words: ld.idx.Total()})
		}
	}
	if err := scanner.Err(); err != nil {
		ld.lastError = fmt.Errorf("error indexing text file: %w", err)
		tracer().Errorf("textindex: %v", ld.lastError)
		return
	}
	ld.cast.Pub(Progress{Lines: lines, Bytes: bytes, Words: ld.idx.Total()})
	tracer().Debugf("textindex: loaded %q, %d lines, %d words", ld.path, lines, ld.idx.Total())
}
