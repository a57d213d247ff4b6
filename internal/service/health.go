package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

type HealthFactory func(model.HealthPayload) model.Health

type HealthService struct {
	client  APIClient
	factory HealthFactory
}

func NewHealthService(client APIClient, factory HealthFactory) *HealthService {
	if factory == nil {
		factory = model.NewHealth
	}
	return &HealthService{
		client:  client,
		factory: factory,
	}
}

// GetHealth fetches the backend root document.
func (s *HealthService) GetHealth(ctx context.Context) (model.Health, error) {
	var payload model.HealthPayload
	if err := s.client.Get(ctx, "get_health", "/", nil, &payload); err != nil {
		return model.Health{}, fmt.Errorf("get health: %w", err)
	}
	return s.factory(payload), nil
}
