package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eatstreet-community/eatstreet-go/internal/endpoint"
	internalhttp "github.com/eatstreet-community/eatstreet-go/internal/http"
	"github.com/eatstreet-community/eatstreet-go/pkg/eatstreet"
)

// OrdersClient implements eatstreet.OrdersClient. Validate and Send share
// one submission path; they differ only in the endpoint and the resulting
// lifecycle state.
type OrdersClient struct {
	httpClient *internalhttp.Client
	creds      *eatstreet.Credentials
}

// NewOrdersClient creates an orders client sharing the session credentials.
func NewOrdersClient(httpClient *internalhttp.Client, creds *eatstreet.Credentials) *OrdersClient {
	return &OrdersClient{
		httpClient: httpClient,
		creds:      creds,
	}
}

// Validate implements eatstreet.OrdersClient.Validate.
func (c *OrdersClient) Validate(ctx context.Context, order *eatstreet.Order) error {
	return c.submit(ctx, order, endpoint.ValidateOrder, eatstreet.OrderValidated)
}

// Send implements eatstreet.OrdersClient.Send.
func (c *OrdersClient) Send(ctx context.Context, order *eatstreet.Order) error {
	return c.submit(ctx, order, endpoint.SendOrder, eatstreet.OrderSent)
}

// submit posts the order with the recipient attached, merges the server's
// authoritative fields back into the same Order instance, and records the
// lifecycle transition. The order's state is untouched when anything fails.
func (c *OrdersClient) submit(ctx context.Context, order *eatstreet.Order, desc endpoint.Descriptor, next eatstreet.OrderState) error {
	if order == nil {
		return eatstreet.ErrNilOrder
	}

	userToken, err := requireUserToken(c.creds)
	if err != nil {
		return err
	}

	payload, err := orderPayload(order, userToken)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(ctx, desc, payload)
	if err != nil {
		return fmt.Errorf("submitting order to %s: %w", desc.Name, err)
	}

	_, err = eatstreet.Merge(resp.Body, order)
	if err != nil {
		return fmt.Errorf("merging order response: %w", err)
	}

	order.SetState(next)

	return nil
}

// Get implements eatstreet.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, apiKey string) (*eatstreet.Order, error) {
	if _, err := requireUserToken(c.creds); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, endpoint.GetOrder, nil, apiKey)
	if err != nil {
		return nil, fmt.Errorf("fetching order: %w", err)
	}

	var order eatstreet.Order
	if err := json.Unmarshal(resp.Body, &order); err != nil {
		return nil, fmt.Errorf("parsing order: %w", err)
	}

	return &order, nil
}

// Statuses implements eatstreet.OrdersClient.Statuses.
func (c *OrdersClient) Statuses(ctx context.Context, orderAPIKey string) ([]*eatstreet.OrderStatus, error) {
	if _, err := requireUserToken(c.creds); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, endpoint.OrderStatuses, nil, orderAPIKey)
	if err != nil {
		return nil, fmt.Errorf("fetching order statuses: %w", err)
	}

	var statuses []*eatstreet.OrderStatus
	if err := json.Unmarshal(resp.Body, &statuses); err != nil {
		return nil, fmt.Errorf("parsing order statuses: %w", err)
	}

	return statuses, nil
}

// orderPayload serializes the order and attaches the recipient object: the
// user token plus any per-order overrides of the recipient's profile. The
// overrides live outside the order JSON and are only sent when set.
func orderPayload(order *eatstreet.Order, userToken string) (map[string]interface{}, error) {
	raw, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("marshaling order: %w", err)
	}

	payload := map[string]interface{}{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("assembling order payload: %w", err)
	}

	recipient := map[string]interface{}{
		"apiKey": userToken,
	}

	if order.Phone != "" {
		recipient["phone"] = order.Phone
	}

	if order.FirstName != "" {
		recipient["firstName"] = order.FirstName
	}

	if order.LastName != "" {
		recipient["lastName"] = order.LastName
	}

	payload["recipient"] = recipient

	return payload, nil
}
