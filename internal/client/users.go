package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eatstreet-community/eatstreet-go/internal/endpoint"
	internalhttp "github.com/eatstreet-community/eatstreet-go/internal/http"
	"github.com/eatstreet-community/eatstreet-go/pkg/eatstreet"
)

// ErrNoUserToken is returned when a register or sign-in response does not
// carry a user token.
var ErrNoUserToken = errors.New("response did not contain a user token")

// UsersClient implements eatstreet.UsersClient. It owns the session's lazy
// caches: the current user and the order history, both fetched on first use
// and held for the lifetime of the client.
type UsersClient struct {
	httpClient *internalhttp.Client
	creds      *eatstreet.Credentials

	user    *eatstreet.User
	history []*eatstreet.Order
}

// NewUsersClient creates a users client sharing the session credentials.
func NewUsersClient(httpClient *internalhttp.Client, creds *eatstreet.Credentials) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
		creds:      creds,
	}
}

// tokenResponse is the apiKey envelope returned by register-user, signin,
// and update-user.
type tokenResponse struct {
	APIKey string `json:"apiKey"`
}

// Register implements eatstreet.UsersClient.Register.
func (c *UsersClient) Register(ctx context.Context, req *eatstreet.RegisterUserRequest) (string, error) {
	err := validate.Struct(req)
	if err != nil {
		return "", fmt.Errorf("validating registration request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, endpoint.RegisterUser, req)
	if err != nil {
		return "", fmt.Errorf("registering user: %w", err)
	}

	return c.adoptToken(resp.Body)
}

// SignIn implements eatstreet.UsersClient.SignIn.
func (c *UsersClient) SignIn(ctx context.Context, email, password string) (string, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Email:    email,
		Password: password,
	}

	resp, err := c.httpClient.Post(ctx, endpoint.SignIn, payload)
	if err != nil {
		return "", fmt.Errorf("signing in: %w", err)
	}

	return c.adoptToken(resp.Body)
}

// adoptToken extracts the user token from a response body and stores it on
// the session credentials. The previously cached user, if any, belongs to
// the previous token and is dropped along with the order history.
func (c *UsersClient) adoptToken(body []byte) (string, error) {
	var token tokenResponse

	err := json.Unmarshal(body, &token)
	if err != nil {
		return "", fmt.Errorf("parsing token response: %w", err)
	}

	if token.APIKey == "" {
		return "", ErrNoUserToken
	}

	c.creds.SetUserToken(token.APIKey)
	c.user = nil
	c.history = nil

	return token.APIKey, nil
}

// Update implements eatstreet.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, req *eatstreet.UserUpdateRequest) (bool, error) {
	userToken, err := requireUserToken(c.creds)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Post(ctx, endpoint.UpdateUser, req, userToken)
	if err != nil {
		return false, fmt.Errorf("updating user: %w", err)
	}

	if c.user != nil {
		_, err = eatstreet.Merge(resp.Body, c.user)
		if err != nil {
			return false, fmt.Errorf("merging updated user: %w", err)
		}
	}

	var token tokenResponse
	if err := json.Unmarshal(resp.Body, &token); err != nil {
		return false, fmt.Errorf("parsing update response: %w", err)
	}

	return token.APIKey != "", nil
}

// Get implements eatstreet.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context) (*eatstreet.User, error) {
	if c.user != nil {
		return c.user, nil
	}

	userToken, err := requireUserToken(c.creds)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, endpoint.GetUser, nil, userToken)
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	var user eatstreet.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	c.user = &user

	return c.user, nil
}

// AddAddress implements eatstreet.UsersClient.AddAddress.
func (c *UsersClient) AddAddress(ctx context.Context, addr *eatstreet.Address) (*eatstreet.Address, error) {
	if addr == nil {
		return nil, eatstreet.ErrNilAddress
	}

	user, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}

	if saved, ok := user.FindAddress(addr); ok {
		return saved, nil
	}

	userToken, err := requireUserToken(c.creds)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, endpoint.AddAddress, addr, userToken)
	if err != nil {
		return nil, fmt.Errorf("adding address: %w", err)
	}

	var saved eatstreet.Address
	if err := json.Unmarshal(resp.Body, &saved); err != nil {
		return nil, fmt.Errorf("parsing saved address: %w", err)
	}

	user.SavedAddresses = append(user.SavedAddresses, &saved)

	return &saved, nil
}

// RemoveAddress implements eatstreet.UsersClient.RemoveAddress.
func (c *UsersClient) RemoveAddress(ctx context.Context, addr *eatstreet.Address) (bool, error) {
	if addr == nil {
		return false, eatstreet.ErrNilAddress
	}

	user, err := c.Get(ctx)
	if err != nil {
		return false, err
	}

	saved, ok := user.FindAddress(addr)
	if !ok {
		return false, nil
	}

	userToken, err := requireUserToken(c.creds)
	if err != nil {
		return false, err
	}

	_, err = c.httpClient.Post(ctx, endpoint.RemoveAddress, nil, userToken, saved.APIKey)
	if err != nil {
		return false, fmt.Errorf("removing address: %w", err)
	}

	user.SavedAddresses = withoutAddress(user.SavedAddresses, saved)

	return true, nil
}

// AddCard implements eatstreet.UsersClient.AddCard. The card number never
// travels inside the serialized card, so the payload is assembled as a map
// with the number attached explicitly.
func (c *UsersClient) AddCard(ctx context.Context, card *eatstreet.CreditCard) (*eatstreet.CreditCard, error) {
	if card == nil {
		return nil, eatstreet.ErrNilCard
	}

	err := validate.Var(card.CardNumber, "required,numeric")
	if err != nil {
		return nil, fmt.Errorf("validating card number: %w", err)
	}

	user, err := c.Get(ctx)
	if err != nil {
		return nil, err
	}

	if saved, ok := user.FindCard(card); ok {
		return saved, nil
	}

	userToken, err := requireUserToken(c.creds)
	if err != nil {
		return nil, err
	}

	payload, err := cardPayload(card)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, endpoint.AddCard, payload, userToken)
	if err != nil {
		return nil, fmt.Errorf("adding card: %w", err)
	}

	var saved eatstreet.CreditCard
	if err := json.Unmarshal(resp.Body, &saved); err != nil {
		return nil, fmt.Errorf("parsing saved card: %w", err)
	}

	saved.CardNumber = card.CardNumber
	user.SavedCards = append(user.SavedCards, &saved)

	return &saved, nil
}

// RemoveCard implements eatstreet.UsersClient.RemoveCard.
func (c *UsersClient) RemoveCard(ctx context.Context, card *eatstreet.CreditCard) (bool, error) {
	if card == nil {
		return false, eatstreet.ErrNilCard
	}

	user, err := c.Get(ctx)
	if err != nil {
		return false, err
	}

	saved, ok := user.FindCard(card)
	if !ok {
		return false, nil
	}

	userToken, err := requireUserToken(c.creds)
	if err != nil {
		return false, err
	}

	_, err = c.httpClient.Post(ctx, endpoint.RemoveCard, nil, userToken, saved.APIKey)
	if err != nil {
		return false, fmt.Errorf("removing card: %w", err)
	}

	user.SavedCards = withoutCard(user.SavedCards, saved)

	return true, nil
}

// OrderHistory implements eatstreet.UsersClient.OrderHistory.
func (c *UsersClient) OrderHistory(ctx context.Context, refresh bool) ([]*eatstreet.Order, error) {
	if c.history != nil && !refresh {
		return c.history, nil
	}

	userToken, err := requireUserToken(c.creds)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, endpoint.OrderHistory, nil, userToken)
	if err != nil {
		return nil, fmt.Errorf("fetching order history: %w", err)
	}

	var history []*eatstreet.Order
	if err := json.Unmarshal(resp.Body, &history); err != nil {
		return nil, fmt.Errorf("parsing order history: %w", err)
	}

	c.history = history

	return c.history, nil
}

// cardPayload serializes a card and attaches the card number, which the
// struct itself never marshals.
func cardPayload(card *eatstreet.CreditCard) (map[string]interface{}, error) {
	raw, err := json.Marshal(card)
	if err != nil {
		return nil, fmt.Errorf("marshaling card: %w", err)
	}

	payload := map[string]interface{}{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("assembling card payload: %w", err)
	}

	payload["cardNumber"] = card.CardNumber

	return payload, nil
}

func withoutAddress(addresses []*eatstreet.Address, remove *eatstreet.Address) []*eatstreet.Address {
	kept := addresses[:0]
	for _, addr := range addresses {
		if addr != remove {
			kept = append(kept, addr)
		}
	}

	return kept
}

func withoutCard(cards []*eatstreet.CreditCard, remove *eatstreet.CreditCard) []*eatstreet.CreditCard {
	kept := cards[:0]
	for _, card := range cards {
		if card != remove {
			kept = append(kept, card)
		}
	}

	return kept
}
