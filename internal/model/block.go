package model

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/format"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
)

// Block is a mined block together with its transactions.
type Block struct {
	height          int64
	hash            string
	time            time.Time
	nonce           uint32
	difficulty      float64
	numTransactions int64
	size            int64
	weight          int64
	merkleRoot      string
	transactions    []Transaction
}

// NewBlock validates p and builds a Block. Each embedded transaction is
// completed with what a block implies: one confirmation, not in the mempool,
// the block time and a reference back to this block.
func NewBlock(p BlockPayload) (Block, error) {
	const entity = "block"
	if err := check(entity, ErrNegativeHeight, safe.NonNegative(p.Height)); err != nil {
		return Block{}, err
	}
	if err := check(entity, ErrNonPositiveSize, safe.Positive(p.Size)); err != nil {
		return Block{}, err
	}

	b := Block{
		height:          p.Height,
		hash:            p.Hash,
		time:            time.Unix(p.Time, 0).UTC(),
		nonce:           p.Nonce,
		difficulty:      p.Difficulty,
		numTransactions: p.NumTransactions,
		size:            p.Size,
		weight:          p.Weight,
		merkleRoot:      p.MerkleRoot,
		transactions:    make([]Transaction, 0, len(p.Transactions)),
	}

	blockTime := p.Time
	for _, tx := range p.Transactions {
		b.transactions = append(b.transactions, NewTransaction(TransactionPayload{
			TxID:          tx.TxID,
			Size:          tx.Size,
			VSize:         tx.VSize,
			Weight:        tx.Weight,
			Fee:           tx.Fee,
			TotalInput:    tx.TotalInput,
			TotalOutput:   tx.TotalOutput,
			Confirmations: 1,
			Time:          &blockTime,
			InMempool:     false,
			InputCount:    tx.InputCount,
			OutputCount:   tx.OutputCount,
			Inputs:        tx.Inputs,
			Outputs:       tx.Outputs,
			Block: &BlockRef{
				Hash:   p.Hash,
				Height: p.Height,
				Time:   p.Time,
			},
		}))
	}
	return b, nil
}

func (b Block) Height() int64          { return b.height }
func (b Block) Hash() string           { return b.hash }
func (b Block) Time() time.Time        { return b.time }
func (b Block) Nonce() uint32          { return b.nonce }
func (b Block) Difficulty() float64    { return b.difficulty }
func (b Block) NumTransactions() int64 { return b.numTransactions }
func (b Block) Size() int64            { return b.size }
func (b Block) Weight() int64          { return b.weight }
func (b Block) MerkleRoot() string     { return b.merkleRoot }

// Transactions returns a copy of the block transactions, never nil.
func (b Block) Transactions() []Transaction {
	return slices.Clone(b.transactions)
}

func (b Block) FormattedTime(loc format.Locale) string {
	return loc.DateTime(b.time)
}

func (b Block) FormattedSize() string {
	return format.WithUnit(float64(b.size)/1024, 2, "KB")
}

func (b Block) FormattedWeight() string {
	return format.WithUnit(float64(b.weight)/1000, 2, "kWU")
}

func (b Block) FormattedDifficulty(loc format.Locale) string {
	return loc.Number(b.difficulty)
}

func (b Block) FormattedHeight(loc format.Locale) string {
	return loc.Number(float64(b.height))
}

// ShortHash keeps the first 8 characters and everything from offset 56,
// which for a 64-character hash is the last 8.
func (b Block) ShortHash() string {
	head := b.hash
	if len(head) > 8 {
		head = head[:8]
	}
	var tail string
	if len(b.hash) > 56 {
		tail = b.hash[56:]
	}
	return head + "..." + tail
}

// TotalFees sums the transaction fees; it is invalid if any fee is.
func (b Block) TotalFees() Amount {
	total := NewAmount(decimal.Zero)
	for _, tx := range b.transactions {
		total = total.Add(tx.fee)
	}
	return total
}

func (b Block) FormattedTotalFees() string {
	return FormatBTC(b.TotalFees())
}

// AverageTransactionSize is size/numTransactions; +Inf for a block that reports no transactions.
func (b Block) AverageTransactionSize() float64 {
	return float64(b.size) / float64(b.numTransactions)
}

func (b Block) FormattedAverageTransactionSize() string {
	return format.WithUnit(b.AverageTransactionSize(), 2, "bytes")
}
