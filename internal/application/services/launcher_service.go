package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	lru "github.com/hashicorp/golang-lru/v2"

	"pyroxene.dev/launcher/internal/core/catalog"
	"pyroxene.dev/launcher/internal/core/desktop"
	"pyroxene.dev/launcher/internal/core/ports"
	"pyroxene.dev/launcher/internal/core/ranking"
	"pyroxene.dev/launcher/internal/core/store"
)

// ErrNotFound is returned when no entry matches a requested name
var ErrNotFound = errors.New("no matching application")

// LauncherOptions tunes the launcher service
type LauncherOptions struct {
	// Workers above 1 parse descriptors on a worker pool
	Workers int

	// ResultLimit caps search results; 0 means no cap
	ResultLimit int

	// CacheSize is the number of queries kept; 0 disables caching
	CacheSize int

	// Catalog defaults to catalog.Default()
	Catalog []catalog.Definition
}

// LauncherService orchestrates discovery, the descriptor store, categories,
// search and launching
type LauncherService struct {
	discoverer ports.Discoverer
	source     ports.Source
	parser     desktop.Parser
	reporter   ports.Reporter
	launcher   ports.Launcher
	logger     hclog.Logger
	opts       LauncherOptions

	cache *lru.Cache[string, []ranking.Result]

	mu         sync.RWMutex
	loaded     bool
	store      *store.Store
	categories []catalog.Category
}

// NewLauncherService creates a new launcher service
func NewLauncherService(
	discoverer ports.Discoverer,
	source ports.Source,
	parser desktop.Parser,
	reporter ports.Reporter,
	launcher ports.Launcher,
	logger hclog.Logger,
	opts LauncherOptions,
) (*LauncherService, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}

	s := &LauncherService{
		discoverer: discoverer,
		source:     source,
		parser:     parser,
		reporter:   reporter,
		launcher:   launcher,
		logger:     logger,
		opts:       opts,
		store:      store.New(nil),
	}

	if opts.CacheSize > 0 {
		cache, err := lru.New[string, []ranking.Result](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create search cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

// Load discovers descriptor files, builds the store and populates categories.
// Discovery happens once; later calls are no-ops.
func (s *LauncherService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	start := time.Now()

	paths := s.discoverer.Discover(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	st, err := store.BuildParallel(paths, s.source, s.parser, s.reporter, s.opts.Workers)
	if err != nil {
		return fmt.Errorf("failed to build descriptor store: %w", err)
	}

	s.store = st
	s.categories = catalog.Populate(s.opts.Catalog, st.Entries())
	s.loaded = true

	if st.Empty() {
		s.logger.Warn("no applications found", "files", len(paths))
	}

	s.logger.Debug("startup complete",
		"files", len(paths),
		"entries", st.Len(),
		"categories", len(s.categories),
		"elapsed_ms", float64(time.Since(start).Microseconds())/1000)

	return nil
}

// Entries returns every eligible entry in discovery order
func (s *LauncherService) Entries() []*desktop.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Entries()
}

// Categories returns the populated, non-empty categories
func (s *LauncherService) Categories() []catalog.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Search ranks entries against query, capped at the result limit.
// An empty query returns nil.
func (s *LauncherService) Search(query string) []ranking.Result {
	if query == "" {
		return nil
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(query); ok {
			return cloneResults(cached)
		}
	}

	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	results := ranking.Top(ranking.Rank(s.Entries(), query), s.opts.ResultLimit)

	// results before Load reflect an empty store
	if s.cache != nil && loaded {
		s.cache.Add(query, cloneResults(results))
	}

	return results
}

// Find returns the entry whose name equals name ignoring case, falling back
// to the best-ranked entry
func (s *LauncherService) Find(name string) (*desktop.Entry, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	want := desktop.Fold(name)
	for _, e := range s.Entries() {
		if desktop.Fold(e.Name()) == want {
			return e, nil
		}
	}

	if results := s.Search(name); len(results) > 0 && results[0].Score > 0 {
		return results[0].Entry, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Launch starts the program described by entry
func (s *LauncherService) Launch(ctx context.Context, entry *desktop.Entry) error {
	if entry == nil {
		return fmt.Errorf("%w: no entry selected", ErrNotFound)
	}

	s.logger.Info("launching", "name", entry.Name(), "source", entry.Source())

	if err := s.launcher.Launch(ctx, entry); err != nil {
		return fmt.Errorf("failed to launch %s: %w", entry.Name(), err)
	}
	return nil
}

// ValidationResult is the outcome of checking one descriptor file
type ValidationResult struct {
	Path   string
	Entry  *desktop.Entry
	Reason desktop.Reason
	Err    error
}

// OK reports whether the file produced an entry
func (r ValidationResult) OK() bool {
	return r.Err == nil
}

// Reportable reports whether the file failed for a reason worth surfacing
func (r ValidationResult) Reportable() bool {
	return r.Err != nil && !r.Reason.Silent()
}

// Validate parses each file on its own and reports every outcome,
// including silent skips
func (s *LauncherService) Validate(paths []string) []ValidationResult {
	results := make([]ValidationResult, 0, len(paths))

	for _, path := range paths {
		entry, err := s.parser.ParseFile(path, s.source.ReadFile)
		res := ValidationResult{Path: path, Entry: entry, Err: err}
		if err != nil {
			reason, ok := desktop.ReasonOf(err)
			if !ok {
				reason = desktop.ReasonIOFailure
			}
			res.Reason = reason
		}
		results = append(results, res)
	}

	return results
}

func cloneResults(in []ranking.Result) []ranking.Result {
	if in == nil {
		return nil
	}
	out := make([]ranking.Result, len(in))
	copy(out, in)
	return out
}
