package listview

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/shaheenplus/shaheen-admin-go/kvstore"
)

// SelectionStore tracks the single entity shown in the details panel and
// persists it so a restart restores the open view. The store holds its own
// copy; it does not validate membership against any loaded page, and patches
// to the list do not propagate here unless the caller re-selects.
type SelectionStore[T Entity] struct {
	mu      sync.Mutex
	store   kvstore.Store
	key     string
	current *T
	log     *slog.Logger
}

// NewSelectionStore restores a persisted selection under prefix. Corrupt
// persisted data is discarded.
func NewSelectionStore[T Entity](store kvstore.Store, prefix string, log *slog.Logger) *SelectionStore[T] {
	if log == nil {
		log = slog.Default()
	}
	s := &SelectionStore[T]{store: store, key: prefix + ".selection", log: log}
	if raw, ok, err := store.Get(s.key); err != nil {
		log.Warn("selection restore failed", "key", s.key, "err", err)
	} else if ok {
		var e T
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			log.Warn("discarding corrupt persisted selection", "key", s.key, "err", err)
		} else {
			s.current = &e
		}
	}
	return s
}

// Select makes e the current selection and persists it.
func (s *SelectionStore[T]) Select(e T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &e
	if b, err := json.Marshal(e); err != nil {
		s.log.Warn("selection persist failed", "key", s.key, "err", err)
	} else if err := s.store.Set(s.key, string(b)); err != nil {
		s.log.Warn("selection persist failed", "key", s.key, "err", err)
	}
}

// Clear drops the selection and removes the persisted entry.
func (s *SelectionStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := s.store.Delete(s.key); err != nil {
		s.log.Warn("selection clear failed", "key", s.key, "err", err)
	}
}

// Current returns the selected entity, if any.
func (s *SelectionStore[T]) Current() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		var zero T
		return zero, false
	}
	return *s.current, true
}
