package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

type MempoolFactory func(model.MempoolPayload) model.Mempool

// MempoolService reads the backend mempool summary.
type MempoolService struct {
	client  APIClient
	factory MempoolFactory
}

func NewMempoolService(client APIClient, factory MempoolFactory) *MempoolService {
	if factory == nil {
		factory = model.NewMempool
	}
	return &MempoolService{
		client:  client,
		factory: factory,
	}
}

// GetMempool fetches /mempool.
func (s *MempoolService) GetMempool(ctx context.Context) (model.Mempool, error) {
	var payload model.MempoolPayload
	if err := s.client.Get(ctx, "get_mempool", "/mempool", nil, &payload); err != nil {
		return model.Mempool{}, fmt.Errorf("get mempool: %w", err)
	}
	return s.factory(payload), nil
}
