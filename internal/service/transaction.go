package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

type TransactionFactory func(model.TransactionPayload) model.Transaction

// TransactionService reads single transactions.
type TransactionService struct {
	client  APIClient
	factory TransactionFactory
}

func NewTransactionService(client APIClient, factory TransactionFactory) *TransactionService {
	if factory == nil {
		factory = model.NewTransaction
	}
	return &TransactionService{
		client:  client,
		factory: factory,
	}
}

// GetTransaction fetches /transactions/{txid}.
func (s *TransactionService) GetTransaction(ctx context.Context, txid string) (model.Transaction, error) {
	var payload model.TransactionPayload
	if err := s.client.Get(ctx, "get_transaction", "/transactions/{txid}", map[string]string{"txid": txid}, &payload); err != nil {
		return model.Transaction{}, fmt.Errorf("get transaction %s: %w", txid, err)
	}
	return s.factory(payload), nil
}
