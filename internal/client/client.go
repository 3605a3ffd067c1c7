// Package client implements the eatstreet.Client interface.
package client

import (
	"github.com/go-playground/validator/v10"

	internalhttp "github.com/eatstreet-community/eatstreet-go/internal/http"
	"github.com/eatstreet-community/eatstreet-go/pkg/eatstreet"
)

// validate checks request payloads before any network call is made, so a
// client misconfiguration surfaces as a precondition failure rather than a
// server-side 4xx.
var validate = validator.New()

// Client implements the eatstreet.Client interface. One Client is one API
// session; the resource clients share its credentials and caches.
type Client struct {
	httpClient *internalhttp.Client
	creds      *eatstreet.Credentials

	users       *UsersClient
	restaurants *RestaurantsClient
	orders      *OrdersClient
}

// New creates a client from a transport and session credentials.
func New(httpClient *internalhttp.Client, creds *eatstreet.Credentials) *Client {
	client := &Client{
		httpClient: httpClient,
		creds:      creds,
	}

	client.users = NewUsersClient(httpClient, creds)
	client.restaurants = NewRestaurantsClient(httpClient)
	client.orders = NewOrdersClient(httpClient, creds)

	return client
}

// Users implements eatstreet.Client.Users.
func (c *Client) Users() eatstreet.UsersClient {
	return c.users
}

// Restaurants implements eatstreet.Client.Restaurants.
func (c *Client) Restaurants() eatstreet.RestaurantsClient {
	return c.restaurants
}

// Orders implements eatstreet.Client.Orders.
func (c *Client) Orders() eatstreet.OrdersClient {
	return c.orders
}

// Credentials implements eatstreet.Client.Credentials.
func (c *Client) Credentials() *eatstreet.Credentials {
	return c.creds
}

// requireUserToken is the shared precondition for user-scoped endpoints: it
// reads the current user token immediately before the request would be
// issued and fails without a round-trip when none is set.
func requireUserToken(creds *eatstreet.Credentials) (string, error) {
	token := creds.UserToken()
	if token == "" {
		return "", eatstreet.ErrUserTokenRequired
	}

	return token, nil
}
