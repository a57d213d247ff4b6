package model

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/format"
)

// MempoolTransaction is an unconfirmed transaction waiting in the mempool.
type MempoolTransaction struct {
	txID string
	size int64
	fee  Amount
	time time.Time
}

func (t MempoolTransaction) TxID() string         { return t.txID }
func (t MempoolTransaction) Size() int64          { return t.size }
func (t MempoolTransaction) Fee() Amount          { return t.fee }
func (t MempoolTransaction) Time() time.Time      { return t.time }
func (t MempoolTransaction) FormattedFee() string { return FormatBTC(t.fee) }
func (t MempoolTransaction) FormattedSize() string {
	return format.WithUnit(float64(t.size), 0, "bytes")
}

// Mempool summarizes the backend's pool of unconfirmed transactions.
type Mempool struct {
	size         int64
	bytes        int64
	usage        int64
	transactions []MempoolTransaction
}

func NewMempool(p MempoolPayload) Mempool {
	m := Mempool{
		size:         p.Size,
		bytes:        p.Bytes,
		usage:        p.Usage,
		transactions: make([]MempoolTransaction, 0, len(p.Transactions)),
	}
	for _, tx := range p.Transactions {
		mt := MempoolTransaction{
			txID: tx.TxID,
			size: tx.Size,
			fee:  tx.Fee.Amount(),
		}
		if tx.Time != 0 {
			mt.time = time.Unix(tx.Time, 0).UTC()
		}
		m.transactions = append(m.transactions, mt)
	}
	return m
}

func (m Mempool) Size() int64  { return m.size }
func (m Mempool) Bytes() int64 { return m.bytes }
func (m Mempool) Usage() int64 { return m.usage }

func (m Mempool) Transactions() []MempoolTransaction {
	return slices.Clone(m.transactions)
}

func (m Mempool) FormattedBytes() string {
	return format.WithUnit(float64(m.bytes)/1024, 2, "KB")
}

// TotalFees sums the fees of the listed transactions; it is invalid if any fee is.
func (m Mempool) TotalFees() Amount {
	total := NewAmount(decimal.Zero)
	for _, tx := range m.transactions {
		total = total.Add(tx.fee)
	}
	return total
}
