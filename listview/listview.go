// Package listview implements the filtered, paginated list pattern every
// dashboard feature shares: filter state with durable persistence, a query
// codec, a fetch controller with a stale-response guard, status mutations
// that patch the loaded page in place, and a persisted detail selection.
//
// Features instantiate the pattern once through Feature/View instead of
// re-implementing it per resource.
package listview

// Entity is one domain record shown in a list row. Every admin resource has
// a numeric id and a localized status string.
type Entity interface {
	EntityID() int64
	EntityStatus() string
}
