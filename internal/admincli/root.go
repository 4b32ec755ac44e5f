package admincli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shaheenplus/shaheen-admin-go/dashboard"
	"github.com/shaheenplus/shaheen-admin-go/export"
	"github.com/shaheenplus/shaheen-admin-go/shaheen"
)

// NewRootCmd assembles the shaheenadmin command tree.
func NewRootCmd() *cobra.Command {
	app := &App{Flags: Defaults()}

	root := &cobra.Command{
		Use:           "shaheenadmin",
		Short:         "Operator console for the Shaheen marketplace admin API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
		},
	}

	defs := Defaults()
	root.PersistentFlags().StringVar(&app.Flags.BaseURL, "base", defs.BaseURL, "API base URL (env "+EnvBaseURL+")")
	root.PersistentFlags().StringVar(&app.Flags.StateFile, "state", defs.StateFile, "Profile state file (env "+EnvStateFile+")")
	root.PersistentFlags().IntVar(&app.Flags.TimeoutSec, "timeout", defs.TimeoutSec, "Request timeout seconds (env "+EnvTimeoutSec+")")
	root.PersistentFlags().IntVar(&app.Flags.Retries, "retries", defs.Retries, "Max retries on 429/5xx (env "+EnvRetries+")")
	root.PersistentFlags().IntVar(&app.Flags.BackoffInitMS, "backoff-init", defs.BackoffInitMS, "Initial backoff ms (env "+EnvBackoffInit+")")
	root.PersistentFlags().IntVar(&app.Flags.BackoffMaxMS, "backoff-max", defs.BackoffMaxMS, "Max backoff ms (env "+EnvBackoffMax+")")
	root.PersistentFlags().BoolVarP(&app.Flags.Verbose, "verbose", "v", false, "Verbose request/response logs (token redacted)")

	root.AddCommand(loginCommand(app))
	root.AddCommand(logoutCommand(app))
	root.AddCommand(reportsCommand(app))
	root.AddCommand(landsCommand(app))
	root.AddCommand(auctionsCommand(app))
	root.AddCommand(requestsCommand(app))
	root.AddCommand(usersCommand(app))
	root.AddCommand(customersCommand(app))
	root.AddCommand(contactsCommand(app))
	root.AddCommand(adminsCommand(app))
	root.AddCommand(broadcastCommand(app))
	root.AddCommand(subscribersCommand(app))
	return root
}

func fmtMoney(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) }
func fmtArea(v float64) string  { return strconv.FormatFloat(v, 'f', 0, 64) }

func landsCommand(app *App) *cobra.Command {
	return featureCommand(app, featureSpec[shaheen.Land]{
		use:     "lands",
		short:   "Land listings",
		feature: dashboard.Lands,
		columns: []export.Column{
			{Header: "ID", Width: 14}, {Header: "Reference", Width: 26}, {Header: "Title"},
			{Header: "City", Width: 26}, {Header: "Area m²", Width: 20}, {Header: "Price", Width: 24},
			{Header: "Status", Width: 28}, {Header: "Created", Width: 28},
		},
		cells: func(l shaheen.Land) []string {
			return []string{
				strconv.FormatInt(l.ID, 10), l.ReferenceNo, l.Title, l.City,
				fmtArea(l.AreaSqM), fmtMoney(l.Price), l.Status, l.CreatedAt,
			}
		},
		actions: []statusAction{
			{use: "approve", short: "Publish a listing under review", to: shaheen.StatusOpen},
			{use: "reject", short: "Reject a listing (requires --reason)", to: shaheen.StatusRejected},
			{use: "close", short: "Close an open listing", to: shaheen.StatusClosed},
			{use: "mark-sold", short: "Mark an open listing as sold", to: shaheen.StatusSold},
		},
	})
}

func auctionsCommand(app *App) *cobra.Command {
	return featureCommand(app, featureSpec[shaheen.Auction]{
		use:     "auctions",
		short:   "Auctions",
		feature: dashboard.Auctions,
		columns: []export.Column{
			{Header: "ID", Width: 14}, {Header: "Title"}, {Header: "City", Width: 26},
			{Header: "Opening bid", Width: 26}, {Header: "Highest bid", Width: 26},
			{Header: "Bids", Width: 14}, {Header: "Ends", Width: 30}, {Header: "Status", Width: 28},
		},
		cells: func(a shaheen.Auction) []string {
			return []string{
				strconv.FormatInt(a.ID, 10), a.Title, a.City,
				fmtMoney(a.OpeningBid), fmtMoney(a.HighestBid),
				strconv.Itoa(a.BidCount), a.EndsAt, a.Status,
			}
		},
		actions: []statusAction{
			{use: "approve", short: "Open an auction under review", to: shaheen.StatusOpen},
			{use: "reject", short: "Reject an auction (requires --reason)", to: shaheen.StatusRejected},
			{use: "close", short: "Close an open auction", to: shaheen.StatusClosed},
		},
	})
}

func requestsCommand(app *App) *cobra.Command {
	return featureCommand(app, featureSpec[shaheen.PurchaseRequest]{
		use:     "requests",
		short:   "Land purchase requests",
		feature: dashboard.PurchaseRequests,
		columns: []export.Column{
			{Header: "ID", Width: 14}, {Header: "City", Width: 26}, {Header: "District", Width: 30},
			{Header: "Area from", Width: 22}, {Header: "Area to", Width: 22},
			{Header: "Budget to", Width: 26}, {Header: "Buyer"}, {Header: "Status", Width: 28},
		},
		cells: func(r shaheen.PurchaseRequest) []string {
			return []string{
				strconv.FormatInt(r.ID, 10), r.City, r.District,
				fmtArea(r.AreaFrom), fmtArea(r.AreaTo), fmtMoney(r.BudgetTo),
				r.BuyerName, r.Status,
			}
		},
		actions: []statusAction{
			{use: "approve", short: "Publish a request under review", to: shaheen.StatusOpen},
			{use: "reject", short: "Reject a request (requires --reason)", to: shaheen.StatusRejected},
			{use: "complete", short: "Mark an open request as completed", to: shaheen.StatusCompleted},
		},
	})
}

func usersCommand(app *App) *cobra.Command {
	return featureCommand(app, featureSpec[shaheen.User]{
		use:     "users",
		short:   "Account approvals",
		feature: dashboard.Users,
		columns: []export.Column{
			{Header: "ID", Width: 14}, {Header: "Name"}, {Header: "Email"},
			{Header: "Phone", Width: 30}, {Header: "Status", Width: 28}, {Header: "Created", Width: 28},
		},
		cells: func(u shaheen.User) []string {
			return []string{
				strconv.FormatInt(u.ID, 10), u.Name, u.Email, u.Phone, u.Status, u.CreatedAt,
			}
		},
		actions: []statusAction{
			{use: "approve", short: "Activate an account under review", to: shaheen.StatusActive},
			{use: "reject", short: "Reject an account (requires --reason)", to: shaheen.StatusRejected},
			{use: "suspend", short: "Suspend an active account (requires --reason)", to: shaheen.StatusSuspended},
			{use: "activate", short: "Reactivate a suspended account", to: shaheen.StatusActive},
		},
	})
}

func customersCommand(app *App) *cobra.Command {
	return featureCommand(app, featureSpec[shaheen.Customer]{
		use:     "customers",
		short:   "Client accounts",
		feature: dashboard.Customers,
		columns: []export.Column{
			{Header: "ID", Width: 14}, {Header: "Name"}, {Header: "Phone", Width: 30},
			{Header: "City", Width: 26}, {Header: "Listings", Width: 18}, {Header: "Status", Width: 28},
		},
		cells: func(c shaheen.Customer) []string {
			return []string{
				strconv.FormatInt(c.ID, 10), c.Name, c.Phone, c.City,
				strconv.Itoa(c.LandsCount), c.Status,
			}
		},
		actions: []statusAction{
			{use: "suspend", short: "Suspend a client (requires --reason)", to: shaheen.StatusSuspended},
			{use: "activate", short: "Reactivate a suspended client", to: shaheen.StatusActive},
		},
	})
}

func contactsCommand(app *App) *cobra.Command {
	return featureCommand(app, featureSpec[shaheen.ContactMessage]{
		use:     "contacts",
		short:   "Contact messages",
		feature: dashboard.Contacts,
		columns: []export.Column{
			{Header: "ID", Width: 14}, {Header: "Name", Width: 40}, {Header: "Subject"},
			{Header: "Status", Width: 24}, {Header: "Received", Width: 28},
		},
		cells: func(m shaheen.ContactMessage) []string {
			return []string{
				strconv.FormatInt(m.ID, 10), m.Name, m.Subject, m.Status, m.CreatedAt,
			}
		},
		actions: []statusAction{
			{use: "mark-read", short: "Mark a message as read", to: shaheen.StatusRead},
			{use: "archive", short: "Archive a message", to: shaheen.StatusArchived},
		},
	})
}

func adminsCommand(app *App) *cobra.Command {
	cmd := featureCommand(app, featureSpec[shaheen.Admin]{
		use:     "admins",
		short:   "Operator accounts",
		feature: dashboard.Admins,
		columns: []export.Column{
			{Header: "ID", Width: 14}, {Header: "Name"}, {Header: "Email"},
			{Header: "Role", Width: 26}, {Header: "Status", Width: 24}, {Header: "Last login", Width: 30},
		},
		cells: func(a shaheen.Admin) []string {
			return []string{
				strconv.FormatInt(a.ID, 10), a.Name, a.Email, a.Role, a.Status, a.LastLoginAt,
			}
		},
		actions: []statusAction{
			{use: "suspend", short: "Suspend an operator (requires --reason)", to: shaheen.StatusSuspended},
			{use: "activate", short: "Reactivate a suspended operator", to: shaheen.StatusActive},
		},
	})

	var req shaheen.CreateAdminRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a new operator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.Ctx(cmd.Context())
			defer cancel()
			admin, err := app.Client().CreateAdmin(ctx, req, shaheen.WithNewIdempotencyKey())
			if err != nil {
				return err
			}
			PrintJSON(admin)
			return nil
		},
	}
	create.Flags().StringVar(&req.Name, "name", "", "Full name")
	create.Flags().StringVar(&req.Email, "email", "", "Login email")
	create.Flags().StringVar(&req.Password, "password", "", "Initial password")
	create.Flags().StringVar(&req.Role, "role", "moderator", "Role (moderator, supervisor, owner)")
	create.MarkFlagRequired("name")
	create.MarkFlagRequired("email")
	create.MarkFlagRequired("password")
	cmd.AddCommand(create)
	return cmd
}

func subscribersCommand(app *App) *cobra.Command {
	return featureCommand(app, featureSpec[shaheen.Subscriber]{
		use:     "subscribers",
		short:   "Newsletter subscribers",
		feature: dashboard.Subscribers,
		columns: []export.Column{
			{Header: "ID", Width: 14}, {Header: "Email"}, {Header: "Status", Width: 24},
			{Header: "Subscribed", Width: 30},
		},
		cells: func(s shaheen.Subscriber) []string {
			return []string{strconv.FormatInt(s.ID, 10), s.Email, s.Status, s.CreatedAt}
		},
		actions: []statusAction{
			{use: "unsubscribe", short: "Unsubscribe an address", to: shaheen.StatusUnsubscribed},
			{use: "resubscribe", short: "Resubscribe an address", to: shaheen.StatusSubscribed},
		},
	})
}

func broadcastCommand(app *App) *cobra.Command {
	cmd := featureCommand(app, featureSpec[shaheen.Broadcast]{
		use:     "broadcast",
		short:   "WhatsApp and newsletter campaigns",
		feature: dashboard.Broadcasts,
		columns: []export.Column{
			{Header: "ID", Width: 14}, {Header: "Channel", Width: 26}, {Header: "Title"},
			{Header: "Audience", Width: 26}, {Header: "Recipients", Width: 22},
			{Header: "Status", Width: 24}, {Header: "Sent", Width: 28},
		},
		cells: func(b shaheen.Broadcast) []string {
			return []string{
				strconv.FormatInt(b.ID, 10), b.Channel, b.Title, b.Audience,
				strconv.Itoa(b.Recipients), b.Status, b.SentAt,
			}
		},
	})

	var (
		req shaheen.SendBroadcastRequest
		yes bool
	)
	send := &cobra.Command{
		Use:   "send",
		Short: "Queue a campaign for delivery",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to send a campaign without --yes")
			}
			ctx, cancel := app.Ctx(cmd.Context())
			defer cancel()
			b, err := app.Client().SendBroadcast(ctx, req, shaheen.WithNewIdempotencyKey())
			if err != nil {
				return err
			}
			PrintJSON(b)
			return nil
		},
	}
	send.Flags().StringVar(&req.Channel, "channel", shaheen.ChannelNewsletter, "Delivery channel: whatsapp or newsletter")
	send.Flags().StringVar(&req.Title, "title", "", "Campaign title")
	send.Flags().StringVar(&req.Body, "body", "", "Message body")
	send.Flags().StringVar(&req.Audience, "audience", "all", "Recipient segment: all, customers, subscribers")
	send.Flags().BoolVar(&yes, "yes", false, "Confirm the send")
	send.MarkFlagRequired("title")
	send.MarkFlagRequired("body")
	cmd.AddCommand(send)
	return cmd
}

func loginCommand(app *App) *cobra.Command {
	var req shaheen.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.Ctx(cmd.Context())
			defer cancel()
			res, err := app.Client().Login(ctx, req)
			if err != nil {
				return err
			}
			fmt.Printf("logged in as %s (%s)\n", res.Admin.Name, res.Admin.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "Operator email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Operator password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the session and clear the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.Ctx(cmd.Context())
			defer cancel()
			if err := app.Client().Logout(ctx); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}

func reportsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Aggregate dashboard counts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Per-status counts across all domains",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.Ctx(cmd.Context())
			defer cancel()
			sum, err := app.Client().GetReportSummary(ctx)
			if err != nil {
				return err
			}
			PrintJSON(sum)
			return nil
		},
	})
	return cmd
}
