package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

type BlockFactory func(model.BlockPayload) (model.Block, error)

// BlockService reads blocks by height or hash.
type BlockService struct {
	client  APIClient
	factory BlockFactory
}

func NewBlockService(client APIClient, factory BlockFactory) *BlockService {
	if factory == nil {
		factory = model.NewBlock
	}
	return &BlockService{
		client:  client,
		factory: factory,
	}
}

// GetBlock fetches /blocks/{blockId}; blockID is either a height or a hash.
func (s *BlockService) GetBlock(ctx context.Context, blockID string) (model.Block, error) {
	var payload model.BlockPayload
	if err := s.client.Get(ctx, "get_block", "/blocks/{blockId}", map[string]string{"blockId": blockID}, &payload); err != nil {
		return model.Block{}, fmt.Errorf("get block %s: %w", blockID, err)
	}
	block, err := s.factory(payload)
	if err != nil {
		return model.Block{}, fmt.Errorf("get block %s: %w", blockID, err)
	}
	return block, nil
}
