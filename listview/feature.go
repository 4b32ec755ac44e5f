package listview

import (
	"log/slog"

	"github.com/shaheenplus/shaheen-admin-go/kvstore"
)

// Feature is the per-resource configuration of the list pattern: default
// filters, storage namespace, per-page size, status rules, and the API
// bindings.
type Feature[T Entity] struct {
	// Name namespaces the persisted keys ("lands.filters", "lands.page", …).
	Name string

	// Defaults must contain every filter key the feature reads.
	Defaults Filters

	// PerPage is the fixed page size; zero falls back to the package default.
	PerPage int

	// Transitions restricts status mutations; nil disables client-side checks.
	Transitions TransitionTable

	Fetch  FetchFunc[T]
	Mutate MutateFunc[T]
	Delete DeleteFunc
}

// View bundles the five moving parts of one instantiated feature.
type View[T Entity] struct {
	Filters   *FilterStore
	List      *Controller[T]
	Selection *SelectionStore[T]
	Actions   *Mutator[T]
}

// NewView instantiates the feature against a persistence store.
func (f Feature[T]) NewView(store kvstore.Store, log *slog.Logger) *View[T] {
	filters := NewFilterStore(store, f.Name, f.Defaults, log)
	list := NewController(filters, f.PerPage, f.Fetch)
	selection := NewSelectionStore[T](store, f.Name, log)
	actions := NewMutator(list, selection, f.Transitions, f.Mutate, f.Delete)
	return &View[T]{Filters: filters, List: list, Selection: selection, Actions: actions}
}
