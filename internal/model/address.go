package model

import (
	"fmt"
	"slices"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/format"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
)

const currencyBTC = "BTC"

// UnspentOutput is a spendable output owned by an address.
type UnspentOutput struct {
	txID          string
	vout          uint32
	amount        float64
	confirmations int64
	height        *int64
}

// NewUnspentOutput validates p and builds an UnspentOutput.
func NewUnspentOutput(p UnspentOutputPayload) (UnspentOutput, error) {
	const entity = "unspent output"
	if err := check(entity, ErrNegativeAmount, safe.NonNegative(p.Amount)); err != nil {
		return UnspentOutput{}, err
	}
	if err := check(entity, ErrNegativeConfirmations, safe.NonNegative(p.Confirmations)); err != nil {
		return UnspentOutput{}, err
	}

	u := UnspentOutput{
		txID:          p.TxID,
		vout:          p.Vout,
		amount:        p.Amount,
		confirmations: p.Confirmations,
	}
	if p.Height != nil {
		h := *p.Height
		u.height = &h
	}
	return u, nil
}

func (u UnspentOutput) TxID() string         { return u.txID }
func (u UnspentOutput) Vout() uint32         { return u.vout }
func (u UnspentOutput) Amount() float64      { return u.amount }
func (u UnspentOutput) Confirmations() int64 { return u.confirmations }

// Height returns the confirming block height when the backend reported one.
func (u UnspentOutput) Height() (int64, bool) {
	if u.height == nil {
		return 0, false
	}
	return *u.height, true
}

// IsConfirmed reports whether the output has at least one confirmation.
func (u UnspentOutput) IsConfirmed() bool {
	return u.confirmations > 0
}

// Satoshis converts the BTC amount to satoshis, rounding to the nearest unit.
func (u UnspentOutput) Satoshis() (btcutil.Amount, error) {
	return toSatoshis(u.amount)
}

func (u UnspentOutput) FormattedAmount(loc format.Locale) string {
	return loc.Currency(u.amount, currencyBTC, 8)
}

// Address is the balance summary of an address.
type Address struct {
	address        string
	network        string
	balance        float64
	unspentCount   int64
	unspentOutputs []UnspentOutput
}

// NewAddress validates p and its unspent outputs and builds an Address.
func NewAddress(p AddressPayload) (Address, error) {
	const entity = "address"
	if err := check(entity, ErrNegativeBalance, safe.NonNegative(p.Balance)); err != nil {
		return Address{}, err
	}
	if err := check(entity, ErrNegativeUnspentCount, safe.NonNegative(p.UnspentCount)); err != nil {
		return Address{}, err
	}

	outputs := make([]UnspentOutput, 0, len(p.UnspentOutputs))
	for i, raw := range p.UnspentOutputs {
		utxo, err := NewUnspentOutput(raw)
		if err != nil {
			return Address{}, fmt.Errorf("address %s unspent output %d: %w", p.Address, i, err)
		}
		outputs = append(outputs, utxo)
	}

	return Address{
		address:        p.Address,
		network:        p.Network,
		balance:        p.Balance,
		unspentCount:   p.UnspentCount,
		unspentOutputs: outputs,
	}, nil
}

func (a Address) Address() string     { return a.address }
func (a Address) Network() string     { return a.network }
func (a Address) Balance() float64    { return a.balance }
func (a Address) UnspentCount() int64 { return a.unspentCount }

// UnspentOutputs returns a copy of the address outputs, never nil.
func (a Address) UnspentOutputs() []UnspentOutput {
	return slices.Clone(a.unspentOutputs)
}

func (a Address) BalanceSatoshis() (btcutil.Amount, error) {
	return toSatoshis(a.balance)
}

func (a Address) FormattedBalance(loc format.Locale) string {
	return loc.Currency(a.balance, currencyBTC, 8)
}

// TotalConfirmedBalance sums the amounts of confirmed unspent outputs.
func (a Address) TotalConfirmedBalance() float64 {
	var total float64
	for _, utxo := range a.unspentOutputs {
		if utxo.IsConfirmed() {
			total += utxo.amount
		}
	}
	return total
}

func (a Address) FormattedTotalConfirmedBalance(loc format.Locale) string {
	return loc.Currency(a.TotalConfirmedBalance(), currencyBTC, 8)
}

func (a Address) IsTestnet() bool {
	return a.network == "testnet"
}

func toSatoshis(btc float64) (btcutil.Amount, error) {
	amt, err := btcutil.NewAmount(btc)
	if err != nil {
		return 0, fmt.Errorf("convert %v BTC to satoshis: %w", btc, err)
	}
	return amt, nil
}
