package eatstreet

// Credentials holds the tokens for one API session: the developer access
// token, set at construction and immutable afterward, and the current user
// token, which may be set, swapped, or absent.
//
// Every transport call reads the developer token at call time, so all
// requests issued through a client share this one session object. A
// Credentials value is not safe for concurrent mutation; callers that swap
// user tokens from multiple goroutines must provide their own locking.
type Credentials struct {
	accessToken string
	userToken   string
}

// NewCredentials creates session credentials from a developer access token.
func NewCredentials(accessToken string) *Credentials {
	return &Credentials{accessToken: accessToken}
}

// AccessToken returns the developer access token.
func (c *Credentials) AccessToken() string {
	return c.accessToken
}

// UserToken returns the current user token, or "" when no user is signed in.
func (c *Credentials) UserToken() string {
	return c.userToken
}

// SetUserToken replaces the current user token. In-flight requests are not
// affected; only subsequent calls observe the new token.
func (c *Credentials) SetUserToken(token string) {
	c.userToken = token
}
