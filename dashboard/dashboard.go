// Package dashboard instantiates the listview pattern for every admin
// feature: default filters, storage namespaces, status transition rules, and
// the SDK bindings, all in one place.
package dashboard

import (
	"log/slog"

	"github.com/shaheenplus/shaheen-admin-go/kvstore"
	"github.com/shaheenplus/shaheen-admin-go/listview"
	"github.com/shaheenplus/shaheen-admin-go/shaheen"
)

// Dashboard holds the instantiated views, ready for rendering.
type Dashboard struct {
	Lands            *listview.View[shaheen.Land]
	Auctions         *listview.View[shaheen.Auction]
	PurchaseRequests *listview.View[shaheen.PurchaseRequest]
	Users            *listview.View[shaheen.User]
	Customers        *listview.View[shaheen.Customer]
	Contacts         *listview.View[shaheen.ContactMessage]
	Admins           *listview.View[shaheen.Admin]
	Broadcasts       *listview.View[shaheen.Broadcast]
	Subscribers      *listview.View[shaheen.Subscriber]
}

// New builds every feature view against one client and one persistence store.
func New(c *shaheen.Client, store kvstore.Store, log *slog.Logger) *Dashboard {
	return &Dashboard{
		Lands:            Lands(c).NewView(store, log),
		Auctions:         Auctions(c).NewView(store, log),
		PurchaseRequests: PurchaseRequests(c).NewView(store, log),
		Users:            Users(c).NewView(store, log),
		Customers:        Customers(c).NewView(store, log),
		Contacts:         Contacts(c).NewView(store, log),
		Admins:           Admins(c).NewView(store, log),
		Broadcasts:       Broadcasts(c).NewView(store, log),
		Subscribers:      Subscribers(c).NewView(store, log),
	}
}
