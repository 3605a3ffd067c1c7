// Package http implements the request transport for the EatStreet API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/eatstreet-community/eatstreet-go/internal/endpoint"
	"github.com/eatstreet-community/eatstreet-go/pkg/eatstreet"
)

const defaultUserAgent = "eatstreet-go"

// Response is a fully-read API response. The underlying connection is
// released before Response is returned, on every exit path.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client issues GET and POST calls against the API host. It resolves
// endpoint templates, injects the developer access token as a query
// parameter on every call, and translates non-2xx responses into the
// structured error taxonomy. Single-attempt semantics: retries are disabled
// and no backoff is configured.
type Client struct {
	baseURL    string
	creds      *eatstreet.Credentials
	httpClient *retryablehttp.Client
	userAgent  string
	logger     eatstreet.Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger eatstreet.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each request end to end.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a transport for the given API base URL and session
// credentials.
func NewClient(baseURL string, creds *eatstreet.Credentials, opts ...Option) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 0
	httpClient.Logger = nil

	client := &Client{
		baseURL:    baseURL,
		creds:      creds,
		httpClient: httpClient,
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get issues a GET against an endpoint, substituting pathArgs into the
// template and appending query alongside the access token.
func (c *Client) Get(ctx context.Context, desc endpoint.Descriptor, query url.Values, pathArgs ...string) (*Response, error) {
	return c.do(ctx, http.MethodGet, desc, query, nil, pathArgs...)
}

// Post issues a POST against an endpoint. A non-nil body is marshaled to
// JSON and sent with an application/json content type; a nil body sends
// none.
func (c *Client) Post(ctx context.Context, desc endpoint.Descriptor, body any, pathArgs ...string) (*Response, error) {
	return c.do(ctx, http.MethodPost, desc, nil, body, pathArgs...)
}

func (c *Client) do(ctx context.Context, method string, desc endpoint.Descriptor, query url.Values, body any, pathArgs ...string) (*Response, error) {
	requestURL, err := c.buildURL(desc, query, pathArgs...)
	if err != nil {
		return nil, err
	}

	var payload []byte

	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	var rawBody interface{}
	if payload != nil {
		rawBody = payload
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, requestURL, rawBody)
	if err != nil {
		return nil, &eatstreet.TransportError{Op: "building " + method + " request", Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    requestURL,
			"body":   string(payload),
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &eatstreet.TransportError{Op: "performing " + method + " request", Err: err}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &eatstreet.TransportError{Op: "reading response body", Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(respBody),
		})
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	err = translateStatus(response)
	if err != nil {
		return response, err
	}

	return response, nil
}

// buildURL resolves the endpoint template and assembles the final URL with
// the developer token attached. The token is read from the credentials at
// call time, not at client construction.
func (c *Client) buildURL(desc endpoint.Descriptor, query url.Values, pathArgs ...string) (string, error) {
	path, err := desc.Resolve(pathArgs...)
	if err != nil {
		return "", err
	}

	parsed, err := url.Parse(c.baseURL + "/" + path)
	if err != nil {
		return "", &eatstreet.TransportError{Op: "constructing request URL", Err: err}
	}

	values := url.Values{}
	for key, list := range query {
		values[key] = list
	}

	values.Set("access-token", c.creds.AccessToken())
	parsed.RawQuery = values.Encode()

	return parsed.String(), nil
}

// translateStatus converts the response status into the error taxonomy:
// 2xx with an empty body is an error, 4xx with a structured body becomes an
// APIError, and any other non-2xx becomes a StatusError.
func translateStatus(resp *Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if len(bytes.TrimSpace(resp.Body)) == 0 {
			return eatstreet.ErrNoResponseBody
		}

		return nil
	}

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError {
		var apiErr eatstreet.APIError

		err := json.Unmarshal(resp.Body, &apiErr)
		if err == nil && (apiErr.Code != 0 || apiErr.Details != "") {
			return &apiErr
		}
	}

	return &eatstreet.StatusError{StatusCode: resp.StatusCode}
}
