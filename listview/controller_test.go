package listview

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaheenplus/shaheen-admin-go/kvstore"
	"github.com/shaheenplus/shaheen-admin-go/shaheen"
)

func landsPage(items ...shaheen.Land) *shaheen.ListResult[shaheen.Land] {
	return &shaheen.ListResult[shaheen.Land]{
		Items:      items,
		Pagination: shaheen.Pagination{CurrentPage: 1, LastPage: 1, PerPage: 15, Total: len(items)},
	}
}

func TestController_LoadExposesResult(t *testing.T) {
	filters := NewFilterStore(kvstore.NewMemory(), "lands", landDefaults(), nil)
	var gotQuery url.Values
	c := NewController(filters, 15, func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Land], error) {
		gotQuery = q
		return landsPage(shaheen.Land{ID: 1, Status: shaheen.StatusUnderReview}), nil
	})

	res, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, "1", gotQuery.Get("page"))

	st := c.State()
	assert.False(t, st.Loading)
	assert.False(t, st.Refreshing)
	assert.NoError(t, st.Err)
	assert.Equal(t, res, st.Result)
	assert.Equal(t, gotQuery.Encode(), c.ActiveKey())
}

func TestController_StaleResponseDiscarded(t *testing.T) {
	filters := NewFilterStore(kvstore.NewMemory(), "lands", landDefaults(), nil)

	// The first fetch blocks until a second fetch has been dispatched, then
	// resolves late. Its result must not clobber the newer one.
	firstEntered := make(chan struct{})
	release := make(chan struct{})
	calls := 0
	c := NewController(filters, 15, func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Land], error) {
		calls++
		if calls == 1 {
			close(firstEntered)
			<-release
			return landsPage(shaheen.Land{ID: 100, Title: "stale"}), nil
		}
		return landsPage(shaheen.Land{ID: 200, Title: "fresh"}), nil
	})

	firstDone := make(chan error, 1)
	go func() {
		_, err := c.Load(context.Background())
		firstDone <- err
	}()
	<-firstEntered

	res, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(200), res.Items[0].ID)

	close(release)
	err = <-firstDone
	assert.ErrorIs(t, err, ErrStaleResponse)

	// The fresh result survived the late arrival.
	assert.Equal(t, int64(200), c.State().Result.Items[0].ID)
}

func TestController_RefreshFlag(t *testing.T) {
	filters := NewFilterStore(kvstore.NewMemory(), "lands", landDefaults(), nil)
	var sawRefreshing bool
	var c *Controller[shaheen.Land]
	c = NewController(filters, 15, func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Land], error) {
		st := c.State()
		sawRefreshing = st.Refreshing && !st.Loading
		return landsPage(), nil
	})

	_, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, sawRefreshing)
	assert.False(t, c.State().Refreshing)
}

func TestController_ErrorKeptUntilNextSuccess(t *testing.T) {
	filters := NewFilterStore(kvstore.NewMemory(), "lands", landDefaults(), nil)
	fail := true
	boom := errors.New("backend down")
	c := NewController(filters, 15, func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Land], error) {
		if fail {
			return nil, boom
		}
		return landsPage(), nil
	})

	_, err := c.Load(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, c.State().Err, boom)

	fail = false
	_, err = c.Load(context.Background())
	require.NoError(t, err)
	assert.NoError(t, c.State().Err)
}

func TestController_PatchIsIdempotent(t *testing.T) {
	filters := NewFilterStore(kvstore.NewMemory(), "lands", landDefaults(), nil)
	c := NewController(filters, 15, func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Land], error) {
		return landsPage(
			shaheen.Land{ID: 1, Status: shaheen.StatusUnderReview},
			shaheen.Land{ID: 2, Status: shaheen.StatusUnderReview},
		), nil
	})
	_, err := c.Load(context.Background())
	require.NoError(t, err)

	updated := shaheen.Land{ID: 2, Status: shaheen.StatusOpen}
	c.patch(updated)
	c.patch(updated)

	res := c.State().Result
	assert.Equal(t, shaheen.StatusUnderReview, res.Items[0].Status)
	assert.Equal(t, shaheen.StatusOpen, res.Items[1].Status)
	assert.Len(t, res.Items, 2)
}

func TestController_RemoveDropsRowAndTotal(t *testing.T) {
	filters := NewFilterStore(kvstore.NewMemory(), "lands", landDefaults(), nil)
	c := NewController(filters, 15, func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Land], error) {
		return &shaheen.ListResult[shaheen.Land]{
			Items:      []shaheen.Land{{ID: 1}, {ID: 2}, {ID: 3}},
			Pagination: shaheen.Pagination{CurrentPage: 1, LastPage: 4, Total: 50},
		}, nil
	})
	_, err := c.Load(context.Background())
	require.NoError(t, err)

	c.remove(2)
	res := c.State().Result
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 49, res.Pagination.Total)

	// Removing an id that is not loaded changes nothing.
	c.remove(99)
	assert.Equal(t, 49, c.State().Result.Pagination.Total)
}
