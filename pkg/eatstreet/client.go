package eatstreet

import (
	"context"
	"time"
)

// DefaultAPIEndpoint is the production EatStreet public API base URL.
const DefaultAPIEndpoint = "https://eatstreet.com/publicapi/v1"

// Client is the entry point composed from the resource clients. One Client
// is one API session: it owns the credentials and the per-session caches
// (current user, order history, restaurant menus).
type Client interface {
	Users() UsersClient
	Restaurants() RestaurantsClient
	Orders() OrdersClient

	// Credentials exposes the session's token state, e.g. to persist a user
	// token obtained from Register or SignIn.
	Credentials() *Credentials
}

// UsersClient manages the signed-in user's account. Every operation except
// Register requires a user token and fails with ErrUserTokenRequired before
// any network call when none is set.
type UsersClient interface {
	// Register creates a new account, stores the returned user token on the
	// session credentials, and returns it.
	Register(ctx context.Context, req *RegisterUserRequest) (string, error)

	// SignIn exchanges an email and password for a user token, stores it on
	// the session credentials, and returns it.
	SignIn(ctx context.Context, email, password string) (string, error)

	// Update changes profile fields; nil fields are not sent and retain
	// their server-side values. Returns true iff the server's response
	// carried a fresh user token, its signal of a successful update.
	Update(ctx context.Context, req *UserUpdateRequest) (bool, error)

	// Get lazily fetches the current user and caches it for the lifetime of
	// the client; repeated calls cost no further network round-trips.
	Get(ctx context.Context) (*User, error)

	// AddAddress saves an address. If an equal address is already saved it
	// is returned as-is with no network call.
	AddAddress(ctx context.Context, addr *Address) (*Address, error)

	// RemoveAddress deletes a saved address. Returns false with no network
	// call when no equal address is saved; the local collection is mutated
	// only after the remote deletion succeeds.
	RemoveAddress(ctx context.Context, addr *Address) (bool, error)

	// AddCard saves a credit card, attaching the card number to the payload.
	// If an equal card is already saved it is returned with no network call.
	AddCard(ctx context.Context, card *CreditCard) (*CreditCard, error)

	// RemoveCard deletes a saved card, mirroring RemoveAddress semantics.
	RemoveCard(ctx context.Context, card *CreditCard) (bool, error)

	// OrderHistory returns the user's past orders, cached after the first
	// fetch. refresh forces a re-fetch and replaces the cache.
	OrderHistory(ctx context.Context, refresh bool) ([]*Order, error)
}

// RestaurantsClient searches restaurants and fetches their menus. No user
// token is required.
type RestaurantsClient interface {
	// SearchByAddress finds restaurants near a free-text street address in
	// the "[Street], [City], [State]" format.
	SearchByAddress(ctx context.Context, streetAddress string, method OrderMethod, radiusMiles int, searchTerms ...string) ([]*Restaurant, error)

	// Search finds restaurants near a saved or constructed Address.
	Search(ctx context.Context, addr *Address, method OrderMethod, radiusMiles int, searchTerms ...string) ([]*Restaurant, error)

	// SearchByLocation finds restaurants near a latitude/longitude pair.
	SearchByLocation(ctx context.Context, latitude, longitude float64, method OrderMethod, radiusMiles int, searchTerms ...string) ([]*Restaurant, error)

	// Menu returns the restaurant's menu, fetching it on first access and
	// caching it on the Restaurant instance afterward.
	Menu(ctx context.Context, restaurant *Restaurant) ([]*MenuCategory, error)

	// Details fetches a single restaurant by its API key.
	Details(ctx context.Context, apiKey string) (*Restaurant, error)
}

// OrdersClient validates, submits, and inspects orders. All operations
// require a user token.
type OrdersClient interface {
	// Validate checks the order with the server without persisting it,
	// merging the authoritative price fields into the same Order instance
	// and moving it to the Validated state.
	Validate(ctx context.Context, order *Order) error

	// Send submits the order, merging the server-assigned identity and
	// price fields into the same Order instance and moving it to the Sent
	// state. A prior Validate is not required.
	Send(ctx context.Context, order *Order) error

	// Get fetches a previously placed order by its API key.
	Get(ctx context.Context, apiKey string) (*Order, error)

	// Statuses returns the status history of a placed order.
	Statuses(ctx context.Context, orderAPIKey string) ([]*OrderStatus, error)
}

// Logger is the structured logging interface accepted by the client. The
// transport logs request/response pairs through it when Debug is enabled.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config carries everything needed to build a client.
type Config struct {
	// APIEndpoint is the API base URL. Defaults to DefaultAPIEndpoint; a
	// bare host is given an https scheme and trailing slashes are trimmed.
	APIEndpoint string

	// AccessToken is the developer token identifying the application.
	// Required; appended to every request as the access-token query
	// parameter.
	AccessToken string

	// UserToken optionally pre-populates the session's user token, e.g. one
	// persisted from an earlier Register or SignIn.
	UserToken string

	// HTTPTimeout bounds each request end to end. Zero means no timeout
	// beyond the transport defaults. Requests are single-attempt; there is
	// no retry or backoff configuration.
	HTTPTimeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/response logging through Logger.
	Debug bool

	// Logger receives structured log output; nil disables logging.
	Logger Logger
}

// RegisterUserRequest is the payload for UsersClient.Register.
type RegisterUserRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Phone     string `json:"phone"     validate:"required"`
}

// UserUpdateRequest is the payload for UsersClient.Update. Nil fields are
// omitted from the request and keep their server-side values.
type UserUpdateRequest struct {
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}
