package listview

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaheenplus/shaheen-admin-go/kvstore"
	"github.com/shaheenplus/shaheen-admin-go/shaheen"
)

var testTransitions = TransitionTable{
	shaheen.StatusUnderReview: {
		{To: shaheen.StatusOpen},
		{To: shaheen.StatusRejected, RequiresReason: true},
	},
	shaheen.StatusOpen: {
		{To: shaheen.StatusClosed},
	},
}

type mutatorFixture struct {
	list      *Controller[shaheen.Land]
	selection *SelectionStore[shaheen.Land]
	mutator   *Mutator[shaheen.Land]

	mutateCalls int
	deleteCalls int
}

func newMutatorFixture(t *testing.T, items ...shaheen.Land) *mutatorFixture {
	t.Helper()
	store := kvstore.NewMemory()
	f := &mutatorFixture{}
	filters := NewFilterStore(store, "lands", landDefaults(), nil)
	f.list = NewController(filters, 15, func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Land], error) {
		return landsPage(items...), nil
	})
	f.selection = NewSelectionStore[shaheen.Land](store, "lands", nil)
	f.mutator = NewMutator(f.list, f.selection, testTransitions,
		func(ctx context.Context, id int64, change shaheen.StatusChange) (*shaheen.Land, error) {
			f.mutateCalls++
			return &shaheen.Land{ID: id, Status: change.Status, RejectReason: change.Reason}, nil
		},
		func(ctx context.Context, id int64) error {
			f.deleteCalls++
			return nil
		},
	)
	_, err := f.list.Load(context.Background())
	require.NoError(t, err)
	return f
}

func TestMutator_ApprovePatchesRowAndClearsSelection(t *testing.T) {
	f := newMutatorFixture(t,
		shaheen.Land{ID: 7, Status: shaheen.StatusUnderReview},
		shaheen.Land{ID: 8, Status: shaheen.StatusUnderReview},
	)
	f.selection.Select(shaheen.Land{ID: 7, Status: shaheen.StatusUnderReview})

	updated, err := f.mutator.Apply(context.Background(), 7, shaheen.StatusOpen, "")
	require.NoError(t, err)
	assert.Equal(t, shaheen.StatusOpen, updated.Status)

	res := f.list.State().Result
	assert.Equal(t, shaheen.StatusOpen, res.Items[0].Status)
	assert.Equal(t, shaheen.StatusUnderReview, res.Items[1].Status)

	_, selected := f.selection.Current()
	assert.False(t, selected, "selection should close after the decision")
}

func TestMutator_RejectWithoutReasonNeverHitsNetwork(t *testing.T) {
	f := newMutatorFixture(t, shaheen.Land{ID: 7, Status: shaheen.StatusUnderReview})

	_, err := f.mutator.Apply(context.Background(), 7, shaheen.StatusRejected, "   ")
	var verr *shaheen.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "reason", verr.Field)
	assert.Zero(t, f.mutateCalls)

	// Row stays untouched.
	assert.Equal(t, shaheen.StatusUnderReview, f.list.State().Result.Items[0].Status)
}

func TestMutator_RejectWithReason(t *testing.T) {
	f := newMutatorFixture(t, shaheen.Land{ID: 7, Status: shaheen.StatusUnderReview})

	updated, err := f.mutator.Apply(context.Background(), 7, shaheen.StatusRejected, " صك غير مطابق ")
	require.NoError(t, err)
	assert.Equal(t, shaheen.StatusRejected, updated.Status)
	assert.Equal(t, "صك غير مطابق", updated.RejectReason, "reason is trimmed before sending")
}

func TestMutator_DisallowedTransitionRejectedLocally(t *testing.T) {
	f := newMutatorFixture(t, shaheen.Land{ID: 7, Status: shaheen.StatusOpen})

	_, err := f.mutator.Apply(context.Background(), 7, shaheen.StatusRejected, "x")
	var verr *shaheen.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
	assert.Zero(t, f.mutateCalls)
}

func TestMutator_UnloadedEntitySkipsTransitionCheck(t *testing.T) {
	// Entity 99 is not on the loaded page, so the current status is unknown
	// and the server is the authority.
	f := newMutatorFixture(t, shaheen.Land{ID: 7, Status: shaheen.StatusOpen})

	updated, err := f.mutator.Apply(context.Background(), 99, shaheen.StatusClosed, "")
	require.NoError(t, err)
	assert.Equal(t, shaheen.StatusClosed, updated.Status)
	assert.Equal(t, 1, f.mutateCalls)
}

func TestMutator_DeleteRemovesRowAndSelection(t *testing.T) {
	f := newMutatorFixture(t,
		shaheen.Land{ID: 1, Status: shaheen.StatusOpen},
		shaheen.Land{ID: 2, Status: shaheen.StatusOpen},
	)
	f.selection.Select(shaheen.Land{ID: 2})

	require.NoError(t, f.mutator.Delete(context.Background(), 2))
	assert.Equal(t, 1, f.deleteCalls)

	res := f.list.State().Result
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.Pagination.Total)
	_, selected := f.selection.Current()
	assert.False(t, selected)
}

func TestMutator_ApplyUnavailable(t *testing.T) {
	// Read-only features (no Mutate binding) still get a Mutator from the
	// view wiring; Apply must error, not crash.
	f := newMutatorFixture(t, shaheen.Land{ID: 1, Status: shaheen.StatusOpen})
	m := NewMutator[shaheen.Land](f.list, f.selection, nil, nil, nil)

	_, err := m.Apply(context.Background(), 1, shaheen.StatusClosed, "")
	var verr *shaheen.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "action", verr.Field)
}

func TestMutator_DeleteUnavailable(t *testing.T) {
	f := newMutatorFixture(t, shaheen.Land{ID: 1, Status: shaheen.StatusOpen})
	m := NewMutator[shaheen.Land](f.list, f.selection, nil, nil, nil)

	err := m.Delete(context.Background(), 1)
	var verr *shaheen.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "action", verr.Field)
}

func TestMutator_SelectionOnOtherEntitySurvives(t *testing.T) {
	f := newMutatorFixture(t,
		shaheen.Land{ID: 1, Status: shaheen.StatusUnderReview},
		shaheen.Land{ID: 2, Status: shaheen.StatusUnderReview},
	)
	f.selection.Select(shaheen.Land{ID: 2})

	_, err := f.mutator.Apply(context.Background(), 1, shaheen.StatusOpen, "")
	require.NoError(t, err)

	cur, selected := f.selection.Current()
	require.True(t, selected)
	assert.Equal(t, int64(2), cur.EntityID())
}
