package ports

import (
	"context"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// AddressInput carries the fields for creating the caller's address.
type AddressInput struct {
	Address1   string
	Address2   string
	City       string
	State      string
	Country    string
	PostalCode string
	AptNum     *int
}

// AddressService defines the owned-address use cases.
type AddressService interface {
	Create(ctx context.Context, ownerID int64, input AddressInput) (*domain.Address, error)
	Get(ctx context.Context, ownerID int64) (*domain.Address, error)
}
