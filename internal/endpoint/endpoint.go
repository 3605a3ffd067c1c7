// Package endpoint is the static registry of EatStreet API endpoint paths.
package endpoint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrArityMismatch is returned when Resolve receives the wrong number of
// path arguments for a template.
var ErrArityMismatch = errors.New("wrong number of path arguments for endpoint")

// Descriptor is one logical API operation: a URL path template with zero or
// more positional %s placeholders, filled left to right at request time.
type Descriptor struct {
	Name     string
	Template string
}

// Arity returns the number of path arguments the template requires.
func (d Descriptor) Arity() int {
	return strings.Count(d.Template, "%s")
}

// RequiresSubstitution reports whether the template has placeholders.
func (d Descriptor) RequiresSubstitution() bool {
	return d.Arity() > 0
}

// Resolve substitutes args into the template in order. It fails loudly on an
// arity mismatch instead of producing a malformed path.
func (d Descriptor) Resolve(args ...string) (string, error) {
	if len(args) != d.Arity() {
		return "", fmt.Errorf("%w: %s wants %d, got %d", ErrArityMismatch, d.Name, d.Arity(), len(args))
	}

	if !d.RequiresSubstitution() {
		return d.Template, nil
	}

	anyArgs := make([]any, len(args))
	for i, arg := range args {
		anyArgs[i] = arg
	}

	return fmt.Sprintf(d.Template, anyArgs...), nil
}

// The endpoint registry, defined once at startup. Placeholders are filled
// with caller-supplied path segments such as the user token or a card key.
var (
	// Restaurant endpoints.
	RestaurantSearch  = Descriptor{Name: "restaurant-search", Template: "restaurant/search"}
	RestaurantMenu    = Descriptor{Name: "restaurant-menu", Template: "restaurant/%s/menu"}
	RestaurantDetails = Descriptor{Name: "restaurant-details", Template: "restaurant/%s"}

	// Order endpoints.
	SendOrder     = Descriptor{Name: "send-order", Template: "send-order"}
	ValidateOrder = Descriptor{Name: "validate-order", Template: "validate-order"}
	GetOrder      = Descriptor{Name: "get-order", Template: "order/%s"}
	OrderStatuses = Descriptor{Name: "order-statuses", Template: "order/%s/statuses"}

	// User endpoints.
	RegisterUser  = Descriptor{Name: "register-user", Template: "register-user"}
	SignIn        = Descriptor{Name: "sign-in", Template: "signin"}
	UpdateUser    = Descriptor{Name: "update-user", Template: "update-user/%s"}
	GetUser       = Descriptor{Name: "get-user", Template: "user/%s"}
	OrderHistory  = Descriptor{Name: "order-history", Template: "user/%s/orders"}
	AddAddress    = Descriptor{Name: "add-address", Template: "user/%s/add-address"}
	RemoveAddress = Descriptor{Name: "remove-address", Template: "user/%s/remove-address/%s"}
	AddCard       = Descriptor{Name: "add-card", Template: "user/%s/add-card"}
	RemoveCard    = Descriptor{Name: "remove-card", Template: "user/%s/remove-card/%s"}
)
