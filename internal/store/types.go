package store

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NetworkService interface {
		GetNetworkInfo(ctx context.Context) (model.Network, error)
	}
	MonitorMetrics interface {
		ObserveRefresh(err error, elapsed time.Duration)
		ObserveSnapshot(lastBlock, mempoolSize int64)
	}
)
