package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	AddressService interface {
		GetAddress(ctx context.Context, address string) (model.Address, error)
	}
	BlockService interface {
		GetBlock(ctx context.Context, blockID string) (model.Block, error)
	}
	TransactionService interface {
		GetTransaction(ctx context.Context, txid string) (model.Transaction, error)
	}
	MempoolService interface {
		GetMempool(ctx context.Context) (model.Mempool, error)
	}
	HealthService interface {
		GetHealth(ctx context.Context) (model.Health, error)
	}
	NetworkSnapshot interface {
		NetworkInfo() (model.Network, bool)
	}
)
