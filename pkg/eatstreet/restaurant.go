package eatstreet

import "strings"

// Restaurant represents a restaurant on the EatStreet API. Instances are
// materialized from search or details responses; the menu is fetched lazily
// through RestaurantsClient.Menu and cached here for the lifetime of the
// instance, with no automatic invalidation.
type Restaurant struct {
	APIKey           string              `json:"apiKey,omitempty"`
	Name             string              `json:"name,omitempty"`
	StreetAddress    string              `json:"streetAddress,omitempty"`
	City             string              `json:"city,omitempty"`
	State            string              `json:"state,omitempty"`
	Zip              string              `json:"zip,omitempty"`
	Phone            string              `json:"phone,omitempty"`
	Latitude         float64             `json:"latitude,omitempty"`
	Longitude        float64             `json:"longitude,omitempty"`
	LogoURL          string              `json:"logoUrl,omitempty"`
	URL              string              `json:"url,omitempty"`
	FoodTypes        []string            `json:"foodTypes,omitempty"`
	DeliveryMin      float64             `json:"deliveryMin,omitempty"`
	DeliveryPrice    float64             `json:"deliveryPrice,omitempty"`
	MinFreeDelivery  float64             `json:"minFreeDelivery,omitempty"`
	TaxRate          float64             `json:"taxRate,omitempty"`
	AcceptsCash      bool                `json:"acceptsCash,omitempty"`
	AcceptsCard      bool                `json:"acceptsCard,omitempty"`
	OffersPickup     bool                `json:"offersPickup,omitempty"`
	OffersDelivery   bool                `json:"offersDelivery,omitempty"`
	IsTestRestaurant bool                `json:"isTestRestaurant,omitempty"`
	MinWaitTime      int                 `json:"minWaitTime,omitempty"`
	MaxWaitTime      int                 `json:"maxWaitTime,omitempty"`
	Open             bool                `json:"open,omitempty"`
	Hours            map[string][]string `json:"hours,omitempty"`
	Timezone         string              `json:"timezone,omitempty"`
	Zones            []DeliveryZone      `json:"zones,omitempty"`

	menu []*MenuCategory
}

// CachedMenu returns the menu cached on this instance and whether one has
// been fetched yet.
func (r *Restaurant) CachedMenu() ([]*MenuCategory, bool) {
	return r.menu, r.menu != nil
}

// SetMenu stores a fetched menu on this instance. Subsequent Menu calls
// through the restaurants client return it without a network round-trip.
func (r *Restaurant) SetMenu(menu []*MenuCategory) {
	r.menu = menu
}

// HoursFor returns the opening hours for a day name (any casing). Unknown
// days and restaurants without hours yield a single empty entry.
func (r *Restaurant) HoursFor(day string) []string {
	if r.Hours == nil || day == "" {
		return []string{""}
	}

	name := strings.ToUpper(day[:1]) + strings.ToLower(day[1:])

	hours, ok := r.Hours[name]
	if !ok {
		return []string{""}
	}

	return hours
}

// MeetsDeliveryMinimum reports whether an order clears this restaurant's
// delivery minimum. Pickup orders always do.
func (r *Restaurant) MeetsDeliveryMinimum(order *Order) bool {
	if order.Method == MethodPickup {
		return true
	}

	return order.ComputeTotal() >= r.DeliveryMin
}

// Equal reports whether two restaurants are the same venue: the street
// address and name match case-insensitively. The server-assigned key is not
// part of equality. Nil compares equal only to nil.
func (r *Restaurant) Equal(other *Restaurant) bool {
	if r == other {
		return true
	}

	if r == nil || other == nil {
		return false
	}

	return strings.EqualFold(r.StreetAddress, other.StreetAddress) &&
		strings.EqualFold(r.Name, other.Name)
}

// MenuCategory is a named group of items on a restaurant's menu.
type MenuCategory struct {
	APIKey      string      `json:"apiKey,omitempty"`
	Name        string      `json:"name,omitempty"`
	Description string      `json:"description,omitempty"`
	Items       []*MenuItem `json:"items,omitempty"`
}

// MenuItem is a single orderable item within a menu category.
type MenuItem struct {
	APIKey              string                `json:"apiKey,omitempty"`
	Name                string                `json:"name,omitempty"`
	Description         string                `json:"description,omitempty"`
	BasePrice           float64               `json:"basePrice,omitempty"`
	CustomizationGroups []*CustomizationGroup `json:"customizationGroups,omitempty"`
}

// CustomizationGroup bundles the customizations available for a menu item.
// MaxCount limits how many choices from the group may be applied; each
// choice's Count states how much it contributes toward that limit.
type CustomizationGroup struct {
	APIKey         string           `json:"apiKey,omitempty"`
	Name           string           `json:"name,omitempty"`
	MaxCount       int              `json:"maxCount,omitempty"`
	BasePrice      float64          `json:"basePrice,omitempty"`
	Customizations []*Customization `json:"customizations,omitempty"`
}

// Customization is one modification that can be made to a menu item.
type Customization struct {
	APIKey  string                 `json:"apiKey,omitempty"`
	Name    string                 `json:"name,omitempty"`
	Type    string                 `json:"type,omitempty"`
	Choices []*CustomizationChoice `json:"customizationChoices,omitempty"`
}

// CustomizationChoice is one selectable option for a customization.
type CustomizationChoice struct {
	APIKey string  `json:"apiKey,omitempty"`
	Name   string  `json:"name,omitempty"`
	Price  float64 `json:"price,omitempty"`
	Count  int     `json:"count,omitempty"`
}
