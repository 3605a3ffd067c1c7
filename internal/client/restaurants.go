package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/eatstreet-community/eatstreet-go/internal/endpoint"
	internalhttp "github.com/eatstreet-community/eatstreet-go/internal/http"
	"github.com/eatstreet-community/eatstreet-go/pkg/eatstreet"
)

// RestaurantsClient implements eatstreet.RestaurantsClient. Search and
// details need no user token; menus are cached on the Restaurant instance.
type RestaurantsClient struct {
	httpClient *internalhttp.Client
}

// NewRestaurantsClient creates a restaurants client on the shared transport.
func NewRestaurantsClient(httpClient *internalhttp.Client) *RestaurantsClient {
	return &RestaurantsClient{
		httpClient: httpClient,
	}
}

// SearchByAddress implements eatstreet.RestaurantsClient.SearchByAddress.
func (c *RestaurantsClient) SearchByAddress(ctx context.Context, streetAddress string, method eatstreet.OrderMethod, radiusMiles int, searchTerms ...string) ([]*eatstreet.Restaurant, error) {
	query := url.Values{}
	query.Set("street-address", streetAddress)

	return c.search(ctx, query, method, radiusMiles, searchTerms)
}

// Search implements eatstreet.RestaurantsClient.Search.
func (c *RestaurantsClient) Search(ctx context.Context, addr *eatstreet.Address, method eatstreet.OrderMethod, radiusMiles int, searchTerms ...string) ([]*eatstreet.Restaurant, error) {
	if addr == nil {
		return nil, eatstreet.ErrNilAddress
	}

	return c.SearchByAddress(ctx, addr.String(), method, radiusMiles, searchTerms...)
}

// SearchByLocation implements eatstreet.RestaurantsClient.SearchByLocation.
func (c *RestaurantsClient) SearchByLocation(ctx context.Context, latitude, longitude float64, method eatstreet.OrderMethod, radiusMiles int, searchTerms ...string) ([]*eatstreet.Restaurant, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))

	return c.search(ctx, query, method, radiusMiles, searchTerms)
}

// search issues the restaurant search with the shared parameter set. The
// three entry points differ only in how they locate the search center.
func (c *RestaurantsClient) search(ctx context.Context, query url.Values, method eatstreet.OrderMethod, radiusMiles int, searchTerms []string) ([]*eatstreet.Restaurant, error) {
	query.Set("method", string(method))
	query.Set("pickup-radius", strconv.Itoa(radiusMiles))

	if len(searchTerms) > 0 {
		query.Set("search", strings.Join(searchTerms, " "))
	}

	resp, err := c.httpClient.Get(ctx, endpoint.RestaurantSearch, query)
	if err != nil {
		return nil, fmt.Errorf("searching restaurants: %w", err)
	}

	var results struct {
		Restaurants []*eatstreet.Restaurant `json:"restaurants"`
	}

	if err := json.Unmarshal(resp.Body, &results); err != nil {
		return nil, fmt.Errorf("parsing restaurant search results: %w", err)
	}

	return results.Restaurants, nil
}

// Menu implements eatstreet.RestaurantsClient.Menu.
func (c *RestaurantsClient) Menu(ctx context.Context, restaurant *eatstreet.Restaurant) ([]*eatstreet.MenuCategory, error) {
	if menu, ok := restaurant.CachedMenu(); ok {
		return menu, nil
	}

	query := url.Values{}
	query.Set("includeCustomizations", "true")

	resp, err := c.httpClient.Get(ctx, endpoint.RestaurantMenu, query, restaurant.APIKey)
	if err != nil {
		return nil, fmt.Errorf("fetching menu: %w", err)
	}

	var menu []*eatstreet.MenuCategory
	if err := json.Unmarshal(resp.Body, &menu); err != nil {
		return nil, fmt.Errorf("parsing menu: %w", err)
	}

	restaurant.SetMenu(menu)

	return menu, nil
}

// Details implements eatstreet.RestaurantsClient.Details.
func (c *RestaurantsClient) Details(ctx context.Context, apiKey string) (*eatstreet.Restaurant, error) {
	resp, err := c.httpClient.Get(ctx, endpoint.RestaurantDetails, nil, apiKey)
	if err != nil {
		return nil, fmt.Errorf("fetching restaurant: %w", err)
	}

	var restaurant eatstreet.Restaurant
	if err := json.Unmarshal(resp.Body, &restaurant); err != nil {
		return nil, fmt.Errorf("parsing restaurant: %w", err)
	}

	return &restaurant, nil
}
