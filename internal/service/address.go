package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

// AddressFactory builds an address model from its payload.
type AddressFactory func(model.AddressPayload) (model.Address, error)

// AddressService reads address balances from the backend.
type AddressService struct {
	client  APIClient
	factory AddressFactory
}

// NewAddressService builds the service; a nil factory means model.NewAddress.
func NewAddressService(client APIClient, factory AddressFactory) *AddressService {
	if factory == nil {
		factory = model.NewAddress
	}
	return &AddressService{
		client:  client,
		factory: factory,
	}
}

// GetAddress fetches /balance/{address}.
func (s *AddressService) GetAddress(ctx context.Context, address string) (model.Address, error) {
	var payload model.AddressPayload
	if err := s.client.Get(ctx, "get_address", "/balance/{address}", map[string]string{"address": address}, &payload); err != nil {
		return model.Address{}, fmt.Errorf("get address %s: %w", address, err)
	}
	addr, err := s.factory(payload)
	if err != nil {
		return model.Address{}, fmt.Errorf("get address %s: %w", address, err)
	}
	return addr, nil
}
