package model

import (
	"slices"
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/format"
)

// TransferType tells whether a transfer spends or creates value.
type TransferType string

const (
	TransferInput  TransferType = "input"
	TransferOutput TransferType = "output"
)

// Transfer is a single movement of value to or from an address.
type Transfer struct {
	kind    TransferType
	address string
	value   Amount
	txID    string
	vout    *uint32
}

func NewTransfer(p TransferPayload) Transfer {
	t := Transfer{
		kind:    p.Type,
		address: p.Address,
		value:   p.Value.Amount(),
		txID:    p.TxID,
	}
	if p.Vout != nil {
		v := *p.Vout
		t.vout = &v
	}
	return t
}

func (t Transfer) Type() TransferType { return t.kind }
func (t Transfer) Address() string    { return t.address }
func (t Transfer) Value() Amount      { return t.value }
func (t Transfer) TxID() string       { return t.txID }

func (t Transfer) Vout() (uint32, bool) {
	if t.vout == nil {
		return 0, false
	}
	return *t.vout, true
}

func (t Transfer) FormattedValue() string {
	return FormatBTC(t.value)
}

// TransactionInput spends a previous output.
type TransactionInput struct {
	txID      string
	vout      uint32
	sequence  uint32
	addresses []string
	value     Amount
	kind      string
	scriptSig ScriptSig
}

func NewTransactionInput(p TransactionInputPayload) TransactionInput {
	return TransactionInput{
		txID:      p.TxID,
		vout:      p.Vout,
		sequence:  p.Sequence,
		addresses: cloneStrings(p.Addresses),
		value:     p.Value.Amount(),
		kind:      p.Type,
		scriptSig: p.ScriptSig,
	}
}

func (in TransactionInput) TxID() string         { return in.txID }
func (in TransactionInput) Vout() uint32         { return in.vout }
func (in TransactionInput) Sequence() uint32     { return in.sequence }
func (in TransactionInput) Addresses() []string  { return slices.Clone(in.addresses) }
func (in TransactionInput) Value() Amount        { return in.value }
func (in TransactionInput) Type() string         { return in.kind }
func (in TransactionInput) ScriptSig() ScriptSig { return in.scriptSig }

// FormattedValue renders the input value, or the placeholder when it was not a number.
func (in TransactionInput) FormattedValue() string {
	return FormatBTC(in.value)
}

// TransactionOutput creates spendable value.
type TransactionOutput struct {
	value        Amount
	n            uint32
	kind         string
	addresses    []string
	scriptPubKey string
}

func NewTransactionOutput(p TransactionOutputPayload) TransactionOutput {
	return TransactionOutput{
		value:        p.Value.Amount(),
		n:            p.N,
		kind:         p.Type,
		addresses:    cloneStrings(p.Addresses),
		scriptPubKey: p.ScriptPubKey,
	}
}

func (out TransactionOutput) Value() Amount        { return out.value }
func (out TransactionOutput) N() uint32            { return out.n }
func (out TransactionOutput) Type() string         { return out.kind }
func (out TransactionOutput) Addresses() []string  { return slices.Clone(out.addresses) }
func (out TransactionOutput) ScriptPubKey() string { return out.scriptPubKey }

// FormattedValue renders the output value, or the placeholder when it was not a number.
func (out TransactionOutput) FormattedValue() string {
	return FormatBTC(out.value)
}

// Transaction is a confirmed or mempool transaction with its inputs, outputs and transfers.
type Transaction struct {
	txID            string
	size            int64
	vsize           int64
	weight          int64
	fee             Amount
	totalInput      Amount
	totalOutput     Amount
	confirmations   int64
	time            time.Time
	inMempool       bool
	inputCount      int64
	outputCount     int64
	inputs          []TransactionInput
	outputs         []TransactionOutput
	transfers       []Transfer
	inputAddresses  []string
	outputAddresses []string
	block           *BlockRef
}

// NewTransaction builds a Transaction. Decimal fields that fail to parse
// become invalid amounts; the constructor itself never fails.
func NewTransaction(p TransactionPayload) Transaction {
	tx := Transaction{
		txID:            p.TxID,
		size:            p.Size,
		vsize:           p.VSize,
		weight:          p.Weight,
		fee:             p.Fee.Amount(),
		totalInput:      p.TotalInput.Amount(),
		totalOutput:     p.TotalOutput.Amount(),
		confirmations:   p.Confirmations,
		inMempool:       p.InMempool,
		inputCount:      p.InputCount,
		outputCount:     p.OutputCount,
		inputs:          make([]TransactionInput, 0, len(p.Inputs)),
		outputs:         make([]TransactionOutput, 0, len(p.Outputs)),
		transfers:       make([]Transfer, 0, len(p.Transfers)),
		inputAddresses:  cloneStrings(p.InputAddresses),
		outputAddresses: cloneStrings(p.OutputAddresses),
	}
	if p.Time != nil {
		tx.time = time.Unix(*p.Time, 0).UTC()
	}
	for _, in := range p.Inputs {
		tx.inputs = append(tx.inputs, NewTransactionInput(in))
	}
	for _, out := range p.Outputs {
		tx.outputs = append(tx.outputs, NewTransactionOutput(out))
	}
	for _, tr := range p.Transfers {
		tx.transfers = append(tx.transfers, NewTransfer(tr))
	}
	if p.Block != nil {
		ref := *p.Block
		tx.block = &ref
	}
	return tx
}

func (tx Transaction) TxID() string         { return tx.txID }
func (tx Transaction) Size() int64          { return tx.size }
func (tx Transaction) VSize() int64         { return tx.vsize }
func (tx Transaction) Weight() int64        { return tx.weight }
func (tx Transaction) Fee() Amount          { return tx.fee }
func (tx Transaction) TotalInput() Amount   { return tx.totalInput }
func (tx Transaction) TotalOutput() Amount  { return tx.totalOutput }
func (tx Transaction) Confirmations() int64 { return tx.confirmations }
func (tx Transaction) Time() time.Time      { return tx.time }
func (tx Transaction) InMempool() bool      { return tx.inMempool }
func (tx Transaction) InputCount() int64    { return tx.inputCount }
func (tx Transaction) OutputCount() int64   { return tx.outputCount }

func (tx Transaction) Inputs() []TransactionInput   { return slices.Clone(tx.inputs) }
func (tx Transaction) Outputs() []TransactionOutput { return slices.Clone(tx.outputs) }
func (tx Transaction) Transfers() []Transfer        { return slices.Clone(tx.transfers) }
func (tx Transaction) InputAddresses() []string     { return slices.Clone(tx.inputAddresses) }
func (tx Transaction) OutputAddresses() []string    { return slices.Clone(tx.outputAddresses) }

// Block returns the confirming block reference, if any.
func (tx Transaction) Block() (BlockRef, bool) {
	if tx.block == nil {
		return BlockRef{}, false
	}
	return *tx.block, true
}

func (tx Transaction) FormattedSize() string {
	return format.WithUnit(float64(tx.size), 0, "bytes")
}

func (tx Transaction) FormattedWeight() string {
	return format.WithUnit(float64(tx.weight), 0, "WU")
}

func (tx Transaction) FormattedFee() string         { return FormatBTC(tx.fee) }
func (tx Transaction) FormattedTotalInput() string  { return FormatBTC(tx.totalInput) }
func (tx Transaction) FormattedTotalOutput() string { return FormatBTC(tx.totalOutput) }

// FeeRate is fee/vsize in BTC per virtual byte. A zero vsize is not guarded
// and yields ±Inf (or NaN for a zero fee).
func (tx Transaction) FeeRate() float64 {
	return tx.fee.Float64() / float64(tx.vsize)
}

// FormattedFeeRate renders the fee rate in sat/vB.
func (tx Transaction) FormattedFeeRate() string {
	return format.WithUnit(tx.FeeRate()*btcutil.SatoshiPerBitcoin, 2, "sat/vB")
}

func (tx Transaction) FormattedTime(loc format.Locale) string {
	return loc.DateTime(tx.time)
}

// IsConfirmed reports whether the transaction has at least one confirmation.
func (tx Transaction) IsConfirmed() bool {
	return tx.confirmations > 0
}

func (tx Transaction) BlockHeight() (int64, bool) {
	if tx.block == nil {
		return 0, false
	}
	return tx.block.Height, true
}

func (tx Transaction) BlockHash() (string, bool) {
	if tx.block == nil {
		return "", false
	}
	return tx.block.Hash, true
}

// BlockTime returns the confirming block time. A zero block time counts as absent.
func (tx Transaction) BlockTime() (time.Time, bool) {
	if tx.block == nil || tx.block.Time == 0 {
		return time.Time{}, false
	}
	return time.Unix(tx.block.Time, 0).UTC(), true
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
