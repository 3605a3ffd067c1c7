package eatstreet

// OrderState is the lifecycle position of an Order relative to the server.
type OrderState string

// Order lifecycle states. The library records transitions but does not
// enforce ordering: sending a Draft order directly is permitted.
const (
	OrderDraft     OrderState = "draft"
	OrderValidated OrderState = "validated"
	OrderSent      OrderState = "sent"
)

// Order represents an order built against a single restaurant.
//
// Server-mapped fields (prices, identity) are populated by merging the
// validate-order or send-order response into the same instance, so an Order
// keeps its identity across the validate-then-send workflow. FirstName,
// LastName, and Phone are per-order overrides of the recipient's profile:
// they travel inside the request's recipient object, never in the order
// JSON itself, and are untouched by merges.
//
// Pricing precedence: Subtotal, Tax, and Total hold whatever the server last
// reported (zero until a validate or send response arrives). The Compute
// methods always recompute client-side from the current items and the tax
// rate snapshot, regardless of any merged values.
type Order struct {
	APIKey           string        `json:"apiKey,omitempty"`
	ID               int64         `json:"id,omitempty"`
	DatePlaced       int64         `json:"datePlaced,omitempty"`
	Method           OrderMethod   `json:"method,omitempty"`
	Payment          PaymentMethod `json:"payment,omitempty"`
	RestaurantAPIKey string        `json:"restaurantApiKey,omitempty"`
	RecipientAPIKey  string        `json:"recipientApiKey,omitempty"`
	Card             *CreditCard   `json:"card,omitempty"`
	Address          *Address      `json:"address,omitempty"`
	Comments         string        `json:"comments,omitempty"`
	Tip              float64       `json:"tip,omitempty"`
	Subtotal         float64       `json:"subtotal,omitempty"`
	Tax              float64       `json:"tax,omitempty"`
	Total            float64       `json:"total,omitempty"`
	Items            []*OrderItem  `json:"items,omitempty"`

	FirstName string `json:"-"`
	LastName  string `json:"-"`
	Phone     string `json:"-"`

	taxRate float64
	state   OrderState
}

// NewOrder creates a Draft order for a restaurant, snapshotting its API key
// and tax rate at construction time.
func NewOrder(restaurant *Restaurant) *Order {
	return &Order{
		RestaurantAPIKey: restaurant.APIKey,
		Items:            []*OrderItem{},
		taxRate:          restaurant.TaxRate,
		state:            OrderDraft,
	}
}

// NewOrderFor creates a Draft order from a restaurant API key and tax rate
// directly, for callers that did not go through a restaurant search.
func NewOrderFor(restaurantAPIKey string, taxRate float64) *Order {
	return &Order{
		RestaurantAPIKey: restaurantAPIKey,
		Items:            []*OrderItem{},
		taxRate:          taxRate,
		state:            OrderDraft,
	}
}

// State returns the order's lifecycle state.
func (o *Order) State() OrderState {
	if o.state == "" {
		return OrderDraft
	}

	return o.state
}

// SetState records a lifecycle transition. The orders client calls this
// after a successful validate or send.
func (o *Order) SetState(state OrderState) {
	o.state = state
}

// TaxRate returns the tax rate snapshot captured at construction.
func (o *Order) TaxRate() float64 {
	return o.taxRate
}

// AddItem appends an item to the order.
func (o *Order) AddItem(item *OrderItem) {
	o.Items = append(o.Items, item)
}

// AddItems appends several items to the order.
func (o *Order) AddItems(items ...*OrderItem) {
	o.Items = append(o.Items, items...)
}

// ItemCount returns the number of line items on the order.
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// ComputeSubtotal sums every item's contribution and rounds the result up to
// two decimals. Item contributions themselves are not rounded.
func (o *Order) ComputeSubtotal() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Subtotal()
	}

	return RoundUp(sum)
}

// ComputeTax applies the tax rate snapshot to the rounded subtotal and
// rounds the result up to two decimals.
func (o *Order) ComputeTax() float64 {
	return RoundUp(o.ComputeSubtotal() * o.taxRate)
}

// ComputeTotal sums the rounded subtotal and rounded tax, then rounds once
// more. The three stages round independently: this differs, in general, from
// rounding subtotal*(1+rate) once at the end.
func (o *Order) ComputeTotal() float64 {
	return RoundUp(o.ComputeSubtotal() + o.ComputeTax())
}

// OrderItem is one line item on an order: a menu item reference, its base
// price, and the customization choices applied to it.
type OrderItem struct {
	APIKey         string                     `json:"apiKey,omitempty"`
	Name           string                     `json:"name,omitempty"`
	Comments       string                     `json:"comments,omitempty"`
	BasePrice      float64                    `json:"basePrice,omitempty"`
	TotalPrice     float64                    `json:"totalPrice,omitempty"`
	Customizations []*OrderCustomizationChoice `json:"customizationChoices,omitempty"`
}

// NewOrderItem builds an order item from a menu item.
func NewOrderItem(item *MenuItem) *OrderItem {
	return &OrderItem{
		APIKey:         item.APIKey,
		Name:           item.Name,
		BasePrice:      item.BasePrice,
		Customizations: []*OrderCustomizationChoice{},
	}
}

// Subtotal returns the item's contribution to the order subtotal: base price
// plus the price of every selected customization. No rounding happens at
// this level.
func (i *OrderItem) Subtotal() float64 {
	sum := i.BasePrice
	for _, choice := range i.Customizations {
		sum += choice.Price
	}

	return sum
}

// AddCustomization appends a customization choice to the item.
func (i *OrderItem) AddCustomization(choice *OrderCustomizationChoice) {
	i.Customizations = append(i.Customizations, choice)
}

// CustomizationCount returns the number of customization choices applied.
func (i *OrderItem) CustomizationCount() int {
	return len(i.Customizations)
}

// OrderCustomizationChoice is a customization selected for an order item,
// contributing its own price to the item subtotal.
type OrderCustomizationChoice struct {
	APIKey  string  `json:"apiKey,omitempty"`
	Details string  `json:"details,omitempty"`
	Price   float64 `json:"price,omitempty"`
}

// NewOrderCustomizationChoice builds an order customization from a menu
// customization choice.
func NewOrderCustomizationChoice(choice *CustomizationChoice) *OrderCustomizationChoice {
	return &OrderCustomizationChoice{
		APIKey:  choice.APIKey,
		Details: choice.Name,
		Price:   choice.Price,
	}
}
