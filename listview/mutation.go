package listview

import (
	"context"
	"fmt"
	"strings"

	"github.com/shaheenplus/shaheen-admin-go/shaheen"
)

// MutateFunc sends a status change for one entity and returns the
// server-confirmed version.
type MutateFunc[T Entity] func(ctx context.Context, id int64, change shaheen.StatusChange) (*T, error)

// DeleteFunc permanently removes one entity.
type DeleteFunc func(ctx context.Context, id int64) error

// Mutator performs status changes and deletes against one entity and
// reconciles the loaded page without a full refetch: the matching row is
// patched (or removed) in place and the selection is cleared when it targets
// the mutated entity.
type Mutator[T Entity] struct {
	list        *Controller[T]
	selection   *SelectionStore[T]
	transitions TransitionTable
	mutate      MutateFunc[T]
	delete      DeleteFunc
}

// NewMutator wires a mutator to its list, selection, and transition rules.
func NewMutator[T Entity](list *Controller[T], selection *SelectionStore[T], transitions TransitionTable, mutate MutateFunc[T], del DeleteFunc) *Mutator[T] {
	return &Mutator[T]{list: list, selection: selection, transitions: transitions, mutate: mutate, delete: del}
}

// Apply moves entity id to status to. Reason-requiring transitions fail fast
// with a ValidationError before any network call when reason is blank.
func (m *Mutator[T]) Apply(ctx context.Context, id int64, to, reason string) (*T, error) {
	if m.mutate == nil {
		return nil, &shaheen.ValidationError{Field: "action", Message: "status changes are not available for this resource"}
	}
	if m.transitions != nil {
		if cur, ok := m.list.find(id); ok && !m.transitions.Can(cur.EntityStatus(), to) {
			return nil, &shaheen.ValidationError{
				Field:   "status",
				Message: fmt.Sprintf("transition %q -> %q is not allowed", cur.EntityStatus(), to),
			}
		}
		if m.transitions.RequiresReason(to) && strings.TrimSpace(reason) == "" {
			return nil, &shaheen.ValidationError{Field: "reason", Message: "a reason is required for this status change"}
		}
	}
	updated, err := m.mutate(ctx, id, shaheen.StatusChange{Status: to, Reason: strings.TrimSpace(reason)})
	if err != nil {
		return nil, err
	}
	m.list.patch(*updated)
	m.dropSelection(id)
	return updated, nil
}

// Delete removes entity id, drops its row from the loaded page, and clears a
// matching selection.
func (m *Mutator[T]) Delete(ctx context.Context, id int64) error {
	if m.delete == nil {
		return &shaheen.ValidationError{Field: "action", Message: "delete is not available for this resource"}
	}
	if err := m.delete(ctx, id); err != nil {
		return err
	}
	m.list.remove(id)
	m.dropSelection(id)
	return nil
}

// dropSelection closes the detail view when the mutation targeted the
// selected entity. Deliberate UX: a decided row returns the operator to the
// empty state.
func (m *Mutator[T]) dropSelection(id int64) {
	if m.selection == nil {
		return
	}
	if cur, ok := m.selection.Current(); ok && cur.EntityID() == id {
		m.selection.Clear()
	}
}
