package domain

import "errors"

// Address is an optional postal address linked to a single account via
// users.address_id.
type Address struct {
	ID         int64  `json:"id"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalcode"`
	AptNum     *int   `json:"apt_num,omitempty"`
}

var ErrAddressNotFound = errors.New("address not found")
