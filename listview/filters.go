package listview

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
	"sync"

	"github.com/shaheenplus/shaheen-admin-go/kvstore"
)

// FilterStore holds the current filter values and page number for one
// feature and mirrors both into a durable store under the feature's key
// prefix. Persistence failures are logged and never interrupt the in-memory
// transition.
type FilterStore struct {
	mu       sync.Mutex
	store    kvstore.Store
	prefix   string
	defaults Filters
	filters  Filters
	page     int
	log      *slog.Logger
}

// NewFilterStore restores persisted state for prefix, merging it over
// defaults. Corrupt or missing persisted data falls back to defaults; the
// returned state always contains every default key.
func NewFilterStore(store kvstore.Store, prefix string, defaults Filters, log *slog.Logger) *FilterStore {
	if log == nil {
		log = slog.Default()
	}
	s := &FilterStore{
		store:    store,
		prefix:   prefix,
		defaults: defaults.Clone(),
		filters:  defaults.Clone(),
		page:     1,
		log:      log,
	}
	s.restore()
	return s
}

func (s *FilterStore) filtersKey() string { return s.prefix + ".filters" }
func (s *FilterStore) pageKey() string    { return s.prefix + ".page" }

func (s *FilterStore) restore() {
	if raw, ok, err := s.store.Get(s.filtersKey()); err != nil {
		s.log.Warn("filter restore failed", "feature", s.prefix, "err", err)
	} else if ok {
		var persisted map[string]string
		if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
			s.log.Warn("discarding corrupt persisted filters", "feature", s.prefix, "err", err)
		} else {
			// Only keys the feature declares survive the merge; stale keys
			// from older releases are dropped.
			for k, v := range persisted {
				if _, known := s.defaults[k]; known {
					s.filters[k] = v
				}
			}
		}
	}
	if raw, ok, err := s.store.Get(s.pageKey()); err != nil {
		s.log.Warn("page restore failed", "feature", s.prefix, "err", err)
	} else if ok {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			s.page = n
		}
	}
}

// Get returns the current value for key, falling back to the default.
func (s *FilterStore) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters[key]
}

// All returns a copy of the current filter state.
func (s *FilterStore) All() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Clone()
}

// Page returns the current page number (always >= 1).
func (s *FilterStore) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Update sets one filter value, resets the page to 1, and persists the full
// state synchronously.
func (s *FilterStore) Update(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters[key] = value
	s.page = 1
	s.persist()
}

// SetPage changes only the page number. Values below 1 clamp to 1.
func (s *FilterStore) SetPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		n = 1
	}
	s.page = n
	s.persistPage()
}

// Clear resets filters to defaults and the page to 1, and removes the
// persisted entries so a fresh load cannot resurrect old values.
func (s *FilterStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = s.defaults.Clone()
	s.page = 1
	if err := s.store.Delete(s.filtersKey()); err != nil {
		s.log.Warn("filter clear failed", "feature", s.prefix, "err", err)
	}
	if err := s.store.Delete(s.pageKey()); err != nil {
		s.log.Warn("page clear failed", "feature", s.prefix, "err", err)
	}
}

// Query encodes the current state into backend query parameters.
func (s *FilterStore) Query(perPage int) url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return EncodeQuery(s.filters, s.defaults, s.page, perPage)
}

func (s *FilterStore) persist() {
	b, err := json.Marshal(s.filters)
	if err != nil {
		s.log.Warn("filter persist failed", "feature", s.prefix, "err", err)
	} else if err := s.store.Set(s.filtersKey(), string(b)); err != nil {
		s.log.Warn("filter persist failed", "feature", s.prefix, "err", err)
	}
	s.persistPage()
}

func (s *FilterStore) persistPage() {
	if err := s.store.Set(s.pageKey(), strconv.Itoa(s.page)); err != nil {
		s.log.Warn("page persist failed", "feature", s.prefix, "err", err)
	}
}
