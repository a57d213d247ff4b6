// Package store keeps application state shared between requests.
package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

// DefaultRefreshInterval is how often the network monitor polls the backend.
const DefaultRefreshInterval = 30 * time.Second

// NetworkStore holds the latest network snapshot reported by the backend.
type NetworkStore struct {
	service  NetworkService
	metrics  MonitorMetrics
	clock    clock.Clock
	interval time.Duration
	logger   *zap.Logger

	mu      sync.RWMutex
	network model.Network
	loaded  bool
}

// NewNetworkStore builds an empty store. A non-positive interval means DefaultRefreshInterval.
func NewNetworkStore(
	service NetworkService,
	metrics MonitorMetrics,
	clk clock.Clock,
	interval time.Duration,
	logger *zap.Logger,
) *NetworkStore {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &NetworkStore{
		service:  service,
		metrics:  metrics,
		clock:    clk,
		interval: interval,
		logger:   logger.Named("network_store"),
	}
}

// NetworkInfo returns the current snapshot and whether one was ever loaded.
func (s *NetworkStore) NetworkInfo() (model.Network, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.network, s.loaded
}

// UpdateNetworkInfo refreshes the snapshot once. On failure the error is
// logged and the previous snapshot stays in place.
func (s *NetworkStore) UpdateNetworkInfo(ctx context.Context) {
	started := s.clock.Now()
	network, err := s.service.GetNetworkInfo(ctx)
	s.metrics.ObserveRefresh(err, s.clock.Since(started))
	if err != nil {
		s.logger.Error("Failed to fetch network info", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.network = network
	s.loaded = true
	s.mu.Unlock()

	s.metrics.ObserveSnapshot(network.LastBlock(), network.MempoolSize())
	s.logger.Debug("Network info updated",
		zap.String("network", network.NetworkName()),
		zap.Int64("last_block", network.LastBlock()),
		zap.Int64("mempool_size", network.MempoolSize()),
	)
}

// StartNetworkMonitor refreshes now and then once per interval until ctx is done.
// It does not block.
func (s *NetworkStore) StartNetworkMonitor(ctx context.Context) {
	s.logger.Info("Starting network monitor", zap.Duration("interval", s.interval))
	clock.Every(ctx, s.clock, s.interval, s.UpdateNetworkInfo)
}
