package store

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/panjf2000/ants/v2"

	"pyroxene.dev/launcher/internal/core/desktop"
	"pyroxene.dev/launcher/internal/core/ports"
)

// Store is the ordered, read-only collection of every eligible entry.
// It is the sole owner of its entries; categories and search results
// hold pointers into it.
type Store struct {
	entries []*desktop.Entry
}

// New creates a store holding entries in the given order
func New(entries []*desktop.Entry) *Store {
	out := make([]*desktop.Entry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			out = append(out, e)
		}
	}
	return &Store{entries: out}
}

// Build parses every path once, in order, keeping the entries that parse.
// Silent rejections are dropped; every other rejection goes to rep.
func Build(paths []string, src ports.Source, parser desktop.Parser, rep ports.Reporter) *Store {
	paths = dedupe(paths)
	entries := make([]*desktop.Entry, 0, len(paths))

	for _, path := range paths {
		if entry := load(path, src, parser, rep); entry != nil {
			entries = append(entries, entry)
		}
	}

	return &Store{entries: entries}
}

// BuildParallel parses paths on a pool of workers. Results land in
// per-path slots so the store keeps discovery order. rep must be safe for
// concurrent use. A worker count below 2 falls back to Build.
func BuildParallel(paths []string, src ports.Source, parser desktop.Parser, rep ports.Reporter, workers int) (*Store, error) {
	if workers < 2 {
		return Build(paths, src, parser, rep), nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create parse pool: %w", err)
	}
	defer pool.Release()

	paths = dedupe(paths)
	slots := make([]*desktop.Entry, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			slots[i] = load(path, src, parser, rep)
		}
		if err := pool.Submit(task); err != nil {
			// pool refused the task; parse inline
			task()
		}
	}
	wg.Wait()

	return New(slots), nil
}

// load parses one path, reporting failures that are not silent skips
func load(path string, src ports.Source, parser desktop.Parser, rep ports.Reporter) *desktop.Entry {
	entry, err := parser.ParseFile(path, src.ReadFile)
	if err == nil {
		return entry
	}

	reason, ok := desktop.ReasonOf(err)
	if !ok {
		reason = desktop.ReasonIOFailure
	}
	if !reason.Silent() && rep != nil {
		rep.Reject(path, reason, err)
	}
	return nil
}

// dedupe drops repeated paths, keeping the first occurrence
func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		key := filepath.Clean(p)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Entries returns the entries in discovery order.
// The slice is a copy; the entries themselves are shared.
func (s *Store) Entries() []*desktop.Entry {
	out := make([]*desktop.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.entries)
}

// Empty reports whether no entries were found
func (s *Store) Empty() bool {
	return len(s.entries) == 0
}
