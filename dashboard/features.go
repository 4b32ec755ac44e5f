package dashboard

import (
	"context"
	"net/url"

	"github.com/shaheenplus/shaheen-admin-go/listview"
	"github.com/shaheenplus/shaheen-admin-go/shaheen"
)

// Moderated listings: under review until an admin opens or rejects them;
// rejection always carries a reason back to the seller.
var landTransitions = listview.TransitionTable{
	shaheen.StatusUnderReview: {
		{To: shaheen.StatusOpen},
		{To: shaheen.StatusRejected, RequiresReason: true},
	},
	shaheen.StatusOpen: {
		{To: shaheen.StatusClosed},
		{To: shaheen.StatusSold},
	},
	shaheen.StatusRejected: {
		{To: shaheen.StatusUnderReview},
	},
}

// Lands configures the land-listing moderation feature.
func Lands(c *shaheen.Client) listview.Feature[shaheen.Land] {
	return listview.Feature[shaheen.Land]{
		Name:    "lands",
		PerPage: 15,
		Defaults: listview.Filters{
			"search": "", "status": "all", "city": "all", "purpose": "all",
			"date_from": "", "date_to": "",
		},
		Transitions: landTransitions,
		Fetch: func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Land], error) {
			return c.ListLands(ctx, q)
		},
		Mutate: func(ctx context.Context, id int64, change shaheen.StatusChange) (*shaheen.Land, error) {
			return c.UpdateLandStatus(ctx, id, change, shaheen.WithNewIdempotencyKey())
		},
		Delete: func(ctx context.Context, id int64) error {
			return c.DeleteLand(ctx, id)
		},
	}
}

var auctionTransitions = listview.TransitionTable{
	shaheen.StatusUnderReview: {
		{To: shaheen.StatusOpen},
		{To: shaheen.StatusRejected, RequiresReason: true},
	},
	shaheen.StatusOpen: {
		{To: shaheen.StatusClosed},
	},
}

// Auctions configures the auction moderation feature.
func Auctions(c *shaheen.Client) listview.Feature[shaheen.Auction] {
	return listview.Feature[shaheen.Auction]{
		Name:    "auctions",
		PerPage: 15,
		Defaults: listview.Filters{
			"search": "", "status": "all", "city": "all",
			"date_from": "", "date_to": "",
		},
		Transitions: auctionTransitions,
		Fetch: func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Auction], error) {
			return c.ListAuctions(ctx, q)
		},
		Mutate: func(ctx context.Context, id int64, change shaheen.StatusChange) (*shaheen.Auction, error) {
			return c.UpdateAuctionStatus(ctx, id, change, shaheen.WithNewIdempotencyKey())
		},
		Delete: func(ctx context.Context, id int64) error {
			return c.DeleteAuction(ctx, id)
		},
	}
}

var requestTransitions = listview.TransitionTable{
	shaheen.StatusUnderReview: {
		{To: shaheen.StatusOpen},
		{To: shaheen.StatusRejected, RequiresReason: true},
	},
	shaheen.StatusOpen: {
		{To: shaheen.StatusCompleted},
		{To: shaheen.StatusClosed},
	},
}

// PurchaseRequests configures the land-purchase-request feature.
func PurchaseRequests(c *shaheen.Client) listview.Feature[shaheen.PurchaseRequest] {
	return listview.Feature[shaheen.PurchaseRequest]{
		Name:    "purchase_requests",
		PerPage: 15,
		Defaults: listview.Filters{
			"search": "", "status": "all", "city": "all", "purpose": "all",
		},
		Transitions: requestTransitions,
		Fetch: func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.PurchaseRequest], error) {
			return c.ListPurchaseRequests(ctx, q)
		},
		Mutate: func(ctx context.Context, id int64, change shaheen.StatusChange) (*shaheen.PurchaseRequest, error) {
			return c.UpdatePurchaseRequestStatus(ctx, id, change, shaheen.WithNewIdempotencyKey())
		},
		Delete: func(ctx context.Context, id int64) error {
			return c.DeletePurchaseRequest(ctx, id)
		},
	}
}

var userTransitions = listview.TransitionTable{
	shaheen.StatusUnderReview: {
		{To: shaheen.StatusActive},
		{To: shaheen.StatusRejected, RequiresReason: true},
	},
	shaheen.StatusActive: {
		{To: shaheen.StatusSuspended, RequiresReason: true},
	},
	shaheen.StatusSuspended: {
		{To: shaheen.StatusActive},
	},
}

// Users configures the account-approval feature.
func Users(c *shaheen.Client) listview.Feature[shaheen.User] {
	return listview.Feature[shaheen.User]{
		Name:    "users",
		PerPage: 15,
		Defaults: listview.Filters{
			"search": "", "status": "all",
		},
		Transitions: userTransitions,
		Fetch: func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.User], error) {
			return c.ListUsers(ctx, q)
		},
		Mutate: func(ctx context.Context, id int64, change shaheen.StatusChange) (*shaheen.User, error) {
			return c.UpdateUserStatus(ctx, id, change, shaheen.WithNewIdempotencyKey())
		},
		Delete: func(ctx context.Context, id int64) error {
			return c.DeleteUser(ctx, id)
		},
	}
}

var customerTransitions = listview.TransitionTable{
	shaheen.StatusActive: {
		{To: shaheen.StatusSuspended, RequiresReason: true},
	},
	shaheen.StatusSuspended: {
		{To: shaheen.StatusActive},
	},
}

// Customers configures the client-accounts feature.
func Customers(c *shaheen.Client) listview.Feature[shaheen.Customer] {
	return listview.Feature[shaheen.Customer]{
		Name:    "customers",
		PerPage: 15,
		Defaults: listview.Filters{
			"search": "", "status": "all", "city": "all",
		},
		Transitions: customerTransitions,
		Fetch: func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Customer], error) {
			return c.ListCustomers(ctx, q)
		},
		Mutate: func(ctx context.Context, id int64, change shaheen.StatusChange) (*shaheen.Customer, error) {
			return c.UpdateCustomerStatus(ctx, id, change, shaheen.WithNewIdempotencyKey())
		},
		Delete: func(ctx context.Context, id int64) error {
			return c.DeleteCustomer(ctx, id)
		},
	}
}

var contactTransitions = listview.TransitionTable{
	shaheen.StatusNew: {
		{To: shaheen.StatusRead},
		{To: shaheen.StatusArchived},
	},
	shaheen.StatusRead: {
		{To: shaheen.StatusArchived},
	},
	shaheen.StatusArchived: {
		{To: shaheen.StatusRead},
	},
}

// Contacts configures the contact-message inbox feature.
func Contacts(c *shaheen.Client) listview.Feature[shaheen.ContactMessage] {
	return listview.Feature[shaheen.ContactMessage]{
		Name:    "contacts",
		PerPage: 20,
		Defaults: listview.Filters{
			"search": "", "status": "all", "date_from": "", "date_to": "",
		},
		Transitions: contactTransitions,
		Fetch: func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.ContactMessage], error) {
			return c.ListContactMessages(ctx, q)
		},
		Mutate: func(ctx context.Context, id int64, change shaheen.StatusChange) (*shaheen.ContactMessage, error) {
			return c.UpdateContactMessageStatus(ctx, id, change, shaheen.WithNewIdempotencyKey())
		},
		Delete: func(ctx context.Context, id int64) error {
			return c.DeleteContactMessage(ctx, id)
		},
	}
}

var adminTransitions = listview.TransitionTable{
	shaheen.StatusActive: {
		{To: shaheen.StatusSuspended, RequiresReason: true},
	},
	shaheen.StatusSuspended: {
		{To: shaheen.StatusActive},
	},
}

// Admins configures the operator-accounts feature.
func Admins(c *shaheen.Client) listview.Feature[shaheen.Admin] {
	return listview.Feature[shaheen.Admin]{
		Name:    "admins",
		PerPage: 15,
		Defaults: listview.Filters{
			"search": "", "status": "all", "role": "all",
		},
		Transitions: adminTransitions,
		Fetch: func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Admin], error) {
			return c.ListAdmins(ctx, q)
		},
		Mutate: func(ctx context.Context, id int64, change shaheen.StatusChange) (*shaheen.Admin, error) {
			return c.UpdateAdminStatus(ctx, id, change, shaheen.WithNewIdempotencyKey())
		},
		Delete: func(ctx context.Context, id int64) error {
			return c.DeleteAdmin(ctx, id)
		},
	}
}

// Broadcasts configures the campaign history feature. Campaign state is
// owned by the delivery pipeline, so no client-side transitions apply.
func Broadcasts(c *shaheen.Client) listview.Feature[shaheen.Broadcast] {
	return listview.Feature[shaheen.Broadcast]{
		Name:    "broadcasts",
		PerPage: 15,
		Defaults: listview.Filters{
			"search": "", "status": "all", "channel": "all",
		},
		Fetch: func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Broadcast], error) {
			return c.ListBroadcasts(ctx, q)
		},
		Delete: func(ctx context.Context, id int64) error {
			return c.DeleteBroadcast(ctx, id)
		},
	}
}

var subscriberTransitions = listview.TransitionTable{
	shaheen.StatusSubscribed: {
		{To: shaheen.StatusUnsubscribed},
	},
	shaheen.StatusUnsubscribed: {
		{To: shaheen.StatusSubscribed},
	},
}

// Subscribers configures the newsletter-subscriber feature.
func Subscribers(c *shaheen.Client) listview.Feature[shaheen.Subscriber] {
	return listview.Feature[shaheen.Subscriber]{
		Name:    "subscribers",
		PerPage: 25,
		Defaults: listview.Filters{
			"search": "", "status": "all",
		},
		Transitions: subscriberTransitions,
		Fetch: func(ctx context.Context, q url.Values) (*shaheen.ListResult[shaheen.Subscriber], error) {
			return c.ListSubscribers(ctx, q)
		},
		Mutate: func(ctx context.Context, id int64, change shaheen.StatusChange) (*shaheen.Subscriber, error) {
			return c.UpdateSubscriberStatus(ctx, id, change, shaheen.WithNewIdempotencyKey())
		},
	}
}
