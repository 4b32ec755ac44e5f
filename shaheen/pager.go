package shaheen

import "context"

// PageFetch loads one page of a resource, typically a closure over a List
// method with fixed filters.
type PageFetch[T any] func(ctx context.Context, page int) (*ListResult[T], error)

// Pager iterates through every page of a filtered list. Exports use it to
// collect the full result set behind one paginated endpoint.
type Pager[T any] struct {
	Fetch PageFetch[T]

	page int
	last int
	done bool
}

// Next returns the next page of items, or nil when iteration finishes.
func (p *Pager[T]) Next(ctx context.Context) ([]T, error) {
	if p.done {
		return nil, nil
	}
	p.page++
	res, err := p.Fetch(ctx, p.page)
	if err != nil {
		return nil, err
	}
	p.last = res.Pagination.LastPage
	if len(res.Items) == 0 || p.page >= p.last {
		p.done = true
	}
	if len(res.Items) == 0 {
		return nil, nil
	}
	return res.Items, nil
}

// All drains the pager and returns the concatenated items.
func (p *Pager[T]) All(ctx context.Context) ([]T, error) {
	var out []T
	for {
		items, err := p.Next(ctx)
		if err != nil {
			return out, err
		}
		if items == nil {
			return out, nil
		}
		out = append(out, items...)
	}
}
