package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-api/internal/core/domain"
	"github.com/taskhub/todo-api/internal/core/ports"
)

// AddressService implements the owned-address use cases.
type AddressService struct {
	repo   ports.AddressRepository
	logger zerolog.Logger
}

func NewAddressService(repo ports.AddressRepository, logger zerolog.Logger) *AddressService {
	return &AddressService{repo: repo, logger: logger}
}

// Create inserts the address and links it to the caller's account.
func (s *AddressService) Create(ctx context.Context, ownerID int64, input ports.AddressInput) (*domain.Address, error) {
	address := &domain.Address{
		Address1:   input.Address1,
		Address2:   input.Address2,
		City:       input.City,
		State:      input.State,
		Country:    input.Country,
		PostalCode: input.PostalCode,
		AptNum:     input.AptNum,
	}

	created, err := s.repo.CreateForUser(ctx, ownerID, address)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("address_id", created.ID).Int64("owner_id", ownerID).Msg("address created")
	return created, nil
}

// Get returns the caller's linked address.
func (s *AddressService) Get(ctx context.Context, ownerID int64) (*domain.Address, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}
