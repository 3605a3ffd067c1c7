// Package esclient provides the main entry point for creating EatStreet API
// clients.
package esclient

import (
	"strings"

	"github.com/eatstreet-community/eatstreet-go/internal/client"
	internalhttp "github.com/eatstreet-community/eatstreet-go/internal/http"
	"github.com/eatstreet-community/eatstreet-go/pkg/eatstreet"
)

// New creates an EatStreet API client from a config. The developer access
// token is required; everything else has a default.
func New(config *eatstreet.Config) (eatstreet.Client, error) {
	if config == nil {
		return nil, eatstreet.ErrConfigRequired
	}

	if config.AccessToken == "" {
		return nil, eatstreet.ErrAccessTokenRequired
	}

	apiEndpoint := normalizeEndpoint(config.APIEndpoint)

	creds := eatstreet.NewCredentials(config.AccessToken)
	if config.UserToken != "" {
		creds.SetUserToken(config.UserToken)
	}

	opts := []internalhttp.Option{
		internalhttp.WithDebug(config.Debug),
	}

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	transport := internalhttp.NewClient(apiEndpoint, creds, opts...)

	return client.New(transport, creds), nil
}

// NewWithAccessToken creates a client for a developer token with all other
// settings defaulted.
func NewWithAccessToken(accessToken string) (eatstreet.Client, error) {
	return New(&eatstreet.Config{
		AccessToken: accessToken,
	})
}

// NewWithUserToken creates a client for a developer token with a previously
// obtained user token already attached, e.g. one persisted from an earlier
// Register or SignIn.
func NewWithUserToken(accessToken, userToken string) (eatstreet.Client, error) {
	return New(&eatstreet.Config{
		AccessToken: accessToken,
		UserToken:   userToken,
	})
}

// normalizeEndpoint applies the endpoint defaults: the production API when
// unset, an https scheme when none is given, and no trailing slash.
func normalizeEndpoint(apiEndpoint string) string {
	if apiEndpoint == "" {
		return eatstreet.DefaultAPIEndpoint
	}

	apiEndpoint = strings.TrimSuffix(apiEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	return apiEndpoint
}
