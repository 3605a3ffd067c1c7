package eatstreet

// User represents a user account on the EatStreet API.
//
// The saved address and card collections are materialized with the user and
// then maintained locally by the users client: additions and removals mutate
// them only after the corresponding remote call succeeds. Order history is
// not carried on the struct; it is cached by the users client with an
// explicit refresh operation.
type User struct {
	APIKey         string        `json:"apiKey,omitempty"`
	Email          string        `json:"email,omitempty"`
	Password       string        `json:"password,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	FirstName      string        `json:"firstName,omitempty"`
	MiddleName     string        `json:"middleName,omitempty"`
	LastName       string        `json:"lastName,omitempty"`
	SavedAddresses []*Address    `json:"savedAddresses,omitempty"`
	SavedCards     []*CreditCard `json:"creditCards,omitempty"`
}

// FindAddress returns the saved address equal to addr, if any.
func (u *User) FindAddress(addr *Address) (*Address, bool) {
	for _, saved := range u.SavedAddresses {
		if saved.Equal(addr) {
			return saved, true
		}
	}

	return nil, false
}

// FindCard returns the saved card equal to card, if any.
func (u *User) FindCard(card *CreditCard) (*CreditCard, bool) {
	for _, saved := range u.SavedCards {
		if saved.Equal(card) {
			return saved, true
		}
	}

	return nil, false
}
