package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

type NetworkFactory func(model.NetworkPayload) model.Network

// NetworkService reads the backend's chain status.
type NetworkService struct {
	client  APIClient
	factory NetworkFactory
}

func NewNetworkService(client APIClient, factory NetworkFactory) *NetworkService {
	if factory == nil {
		factory = model.NewNetwork
	}
	return &NetworkService{
		client:  client,
		factory: factory,
	}
}

// GetNetworkInfo fetches /network/info.
func (s *NetworkService) GetNetworkInfo(ctx context.Context) (model.Network, error) {
	var payload model.NetworkPayload
	if err := s.client.Get(ctx, "get_network_info", "/network/info", nil, &payload); err != nil {
		return model.Network{}, fmt.Errorf("get network info: %w", err)
	}
	return s.factory(payload), nil
}
