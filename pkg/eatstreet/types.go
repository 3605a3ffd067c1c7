package eatstreet

import "strings"

// OrderMethod is the fulfillment method for a restaurant search or an order.
type OrderMethod string

// Fulfillment methods accepted by the API.
const (
	MethodPickup   OrderMethod = "pickup"
	MethodDelivery OrderMethod = "delivery"
	MethodBoth     OrderMethod = "both"
)

// PaymentMethod is the payment type for an order.
type PaymentMethod string

// Payment types accepted by the API.
const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Address is a delivery or billing address saved on a user's account.
//
// A client-constructed Address has no API key until the server assigns one;
// equality deliberately ignores the key so a fresh Address can be recognized
// as already saved before the round-trip.
type Address struct {
	APIKey        string `json:"apiKey,omitempty"`
	StreetAddress string `json:"streetAddress,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	Zip           string `json:"zip,omitempty"`
	AptNumber     string `json:"aptNumber,omitempty"`
	Latitude      string `json:"latitude,omitempty"`
	Longitude     string `json:"longitude,omitempty"`
}

// Equal reports whether two addresses match on their visible fields: street
// address, city, state, zip, and apartment number, compared
// case-insensitively. Nil compares equal only to nil.
func (a *Address) Equal(other *Address) bool {
	if a == other {
		return true
	}

	if a == nil || other == nil {
		return false
	}

	return strings.EqualFold(a.StreetAddress, other.StreetAddress) &&
		strings.EqualFold(a.City, other.City) &&
		strings.EqualFold(a.State, other.State) &&
		strings.EqualFold(a.Zip, other.Zip) &&
		strings.EqualFold(a.AptNumber, other.AptNumber)
}

// String renders the address in the "[Street], [City], [State]" format the
// restaurant search endpoint expects.
func (a *Address) String() string {
	return a.StreetAddress + ", " + a.City + ", " + a.State
}

// CreditCard is a payment card saved on a user's account.
//
// CardNumber is never serialized with the rest of the card; the add-card
// operation attaches it to the payload explicitly, and it is otherwise kept
// client-side only.
type CreditCard struct {
	APIKey                  string `json:"apiKey,omitempty"`
	Nickname                string `json:"nickname,omitempty"`
	CardholderName          string `json:"cardholderName,omitempty"`
	CardholderStreetAddress string `json:"cardholderStreetAddress,omitempty"`
	CardholderZip           string `json:"cardholderZip,omitempty"`
	CardNumber              string `json:"-"`
	LastFour                string `json:"lastFour,omitempty"`
	CVV                     string `json:"cvv,omitempty"`
	ExpirationMonth         string `json:"expirationMonth,omitempty"`
	ExpirationYear          string `json:"expirationYear,omitempty"`
}

// SetCardNumber stores the card number with all non-digit formatting
// characters (spaces, dashes) stripped.
func (c *CreditCard) SetCardNumber(number string) {
	var digits strings.Builder

	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	c.CardNumber = digits.String()
}

// Equal reports whether two cards match on last four digits, expiration
// month and year, and, when both sides carry one, the full card number. The
// full number is only known client-side, so it participates only when both
// cards have it; this lets a client-constructed card be recognized against
// its server-materialized counterpart. The server-assigned key is ignored.
// Nil compares equal only to nil.
func (c *CreditCard) Equal(other *CreditCard) bool {
	if c == other {
		return true
	}

	if c == nil || other == nil {
		return false
	}

	if c.CardNumber != "" && other.CardNumber != "" && !strings.EqualFold(c.CardNumber, other.CardNumber) {
		return false
	}

	return strings.EqualFold(c.LastFour, other.LastFour) &&
		strings.EqualFold(c.ExpirationMonth, other.ExpirationMonth) &&
		strings.EqualFold(c.ExpirationYear, other.ExpirationYear)
}

// LatLongPoint is a geographic coordinate.
type LatLongPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DeliveryZone describes one zone a restaurant delivers to.
type DeliveryZone struct {
	APIKey      string         `json:"apiKey,omitempty"`
	Description string         `json:"description,omitempty"`
	Zips        []string       `json:"zips,omitempty"`
	Points      []LatLongPoint `json:"points,omitempty"`
	HolePoints  []LatLongPoint `json:"holePoints,omitempty"`
	MaxRadius   float64        `json:"maxRadius,omitempty"`
}

// OrderStatus is one entry in an order's status history.
type OrderStatus struct {
	Status      string `json:"status"`
	Date        int64  `json:"date"`
	OrderAPIKey string `json:"orderApiKey"`
}
