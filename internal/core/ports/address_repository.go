package ports

import (
	"context"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// AddressRepository defines persistence for addresses.
type AddressRepository interface {
	// CreateForUser inserts the address and links it to the user's account
	// in a single transaction.
	CreateForUser(ctx context.Context, ownerID int64, address *domain.Address) (*domain.Address, error)
	// FindByOwner returns the address linked to the account, or
	// domain.ErrAddressNotFound when none is linked.
	FindByOwner(ctx context.Context, ownerID int64) (*domain.Address, error)
}
