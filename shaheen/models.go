package shaheen

import "encoding/json"

// ---- Envelope and pagination ----

// envelope is the common response wrapper of the admin API:
// {success, message, data, errors, pagination|meta}.
type envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       json.RawMessage     `json:"data"`
	Errors     map[string][]string `json:"errors"`
	Pagination *Pagination         `json:"pagination"`
	Meta       *Pagination         `json:"meta"`
}

// page returns whichever pagination block the backend used.
func (e *envelope) page() *Pagination {
	if e.Pagination != nil {
		return e.Pagination
	}
	return e.Meta
}

// Pagination describes one page of a list response. Total is the
// authoritative count even when Items holds a partial page.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// ListResult is one fetched page of a paginated resource.
type ListResult[T any] struct {
	Items      []T
	Pagination Pagination
}

// StatusChange is the body of a status mutation. Reason is required by the
// backend for destructive transitions such as rejection.
type StatusChange struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// ---- Statuses ----

// The backend stores and returns listing statuses as localized Arabic
// strings; they are mirrored here as constants so callers never scatter
// literals.
const (
	StatusUnderReview = "قيد المراجعة"
	StatusOpen        = "مفتوح"
	StatusRejected    = "مرفوض"
	StatusClosed      = "مغلق"
	StatusSold        = "مباع"
	StatusActive      = "نشط"
	StatusSuspended   = "موقوف"
	StatusCompleted   = "مكتمل"
	StatusNew         = "جديد"
	StatusRead        = "مقروء"
	StatusArchived    = "مؤرشف"
	StatusDraft       = "مسودة"
	StatusSent        = "مرسلة"
	StatusSubscribed  = "مشترك"
	StatusUnsubscribed = "ملغي"
)

// Broadcast channels.
const (
	ChannelWhatsApp   = "whatsapp"
	ChannelNewsletter = "newsletter"
)

// ---- Entities ----

// Land is a land listing submitted by a seller and moderated by an admin.
type Land struct {
	ID          int64   `json:"id"`
	ReferenceNo string  `json:"reference_no"`
	Title       string  `json:"title"`
	City        string  `json:"city"`
	District    string  `json:"district"`
	Purpose     string  `json:"purpose"`
	AreaSqM     float64 `json:"area_sqm"`
	Price       float64 `json:"price"`
	OwnerName   string  `json:"owner_name"`
	OwnerPhone  string  `json:"owner_phone"`
	Status      string  `json:"status"`
	RejectReason string `json:"reject_reason,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func (l Land) EntityID() int64      { return l.ID }
func (l Land) EntityStatus() string { return l.Status }

// Auction is a timed auction attached to a land listing.
type Auction struct {
	ID         int64   `json:"id"`
	LandID     int64   `json:"land_id"`
	Title      string  `json:"title"`
	City       string  `json:"city"`
	OpeningBid float64 `json:"opening_bid"`
	HighestBid float64 `json:"highest_bid"`
	BidCount   int     `json:"bid_count"`
	StartsAt   string  `json:"starts_at"`
	EndsAt     string  `json:"ends_at"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func (a Auction) EntityID() int64      { return a.ID }
func (a Auction) EntityStatus() string { return a.Status }

// PurchaseRequest is a buyer's land-purchase request matched against listings.
type PurchaseRequest struct {
	ID         int64   `json:"id"`
	City       string  `json:"city"`
	District   string  `json:"district"`
	Purpose    string  `json:"purpose"`
	AreaFrom   float64 `json:"area_from"`
	AreaTo     float64 `json:"area_to"`
	BudgetFrom float64 `json:"budget_from"`
	BudgetTo   float64 `json:"budget_to"`
	BuyerName  string  `json:"buyer_name"`
	BuyerPhone string  `json:"buyer_phone"`
	Notes      string  `json:"notes"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func (r PurchaseRequest) EntityID() int64      { return r.ID }
func (r PurchaseRequest) EntityStatus() string { return r.Status }

// User is a marketplace account pending or past admin approval.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"national_id"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func (u User) EntityID() int64      { return u.ID }
func (u User) EntityStatus() string { return u.Status }

// Customer is an approved client account with published activity.
type Customer struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	City       string `json:"city"`
	LandsCount int    `json:"lands_count"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func (c Customer) EntityID() int64      { return c.ID }
func (c Customer) EntityStatus() string { return c.Status }

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m ContactMessage) EntityID() int64      { return m.ID }
func (m ContactMessage) EntityStatus() string { return m.Status }

// Admin is a dashboard operator account.
type Admin struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	LastLoginAt string `json:"last_login_at"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func (a Admin) EntityID() int64      { return a.ID }
func (a Admin) EntityStatus() string { return a.Status }

// Broadcast is a WhatsApp or newsletter campaign sent to an audience segment.
type Broadcast struct {
	ID         int64  `json:"id"`
	Channel    string `json:"channel"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Audience   string `json:"audience"`
	Recipients int    `json:"recipients"`
	Status     string `json:"status"`
	SentAt     string `json:"sent_at"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func (b Broadcast) EntityID() int64      { return b.ID }
func (b Broadcast) EntityStatus() string { return b.Status }

// Subscriber is a newsletter subscription.
type Subscriber struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (s Subscriber) EntityID() int64      { return s.ID }
func (s Subscriber) EntityStatus() string { return s.Status }
