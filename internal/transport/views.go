package transport

import (
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/format"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
)

// Page is the JSON document returned for every explorer page.
type Page struct {
	Page    string       `json:"page"`
	Tab     string       `json:"tab,omitempty"`
	Theme   string       `json:"theme"`
	Network *NetworkView `json:"network,omitempty"`
	Data    any          `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type NetworkView struct {
	IsTestnet          bool   `json:"is_testnet"`
	NetworkName        string `json:"network_name"`
	LastBlock          int64  `json:"last_block"`
	FormattedLastBlock string `json:"formatted_last_block"`
	MempoolSize        int64  `json:"mempool_size"`
}

func newNetworkView(n model.Network, loc format.Locale) *NetworkView {
	return &NetworkView{
		IsTestnet:          n.IsTestnet(),
		NetworkName:        n.NetworkName(),
		LastBlock:          n.LastBlock(),
		FormattedLastBlock: loc.Number(float64(n.LastBlock())),
		MempoolSize:        n.MempoolSize(),
	}
}

type UnspentOutputView struct {
	TxID            string  `json:"txid"`
	Vout            uint32  `json:"vout"`
	Amount          float64 `json:"amount"`
	AmountSats      int64   `json:"amount_sats"`
	FormattedAmount string  `json:"formatted_amount"`
	Confirmations   int64   `json:"confirmations"`
	Confirmed       bool    `json:"confirmed"`
	Height          *int64  `json:"height,omitempty"`
}

type AddressView struct {
	Address                        string              `json:"address"`
	Network                        string              `json:"network"`
	IsTestnet                      bool                `json:"is_testnet"`
	Balance                        float64             `json:"balance"`
	BalanceSats                    int64               `json:"balance_sats"`
	FormattedBalance               string              `json:"formatted_balance"`
	TotalConfirmedBalance          float64             `json:"total_confirmed_balance"`
	FormattedTotalConfirmedBalance string              `json:"formatted_total_confirmed_balance"`
	UnspentCount                   int64               `json:"unspent_count"`
	UnspentOutputs                 []UnspentOutputView `json:"unspent_outputs"`
}

func newAddressView(a model.Address, loc format.Locale) AddressView {
	view := AddressView{
		Address:                        a.Address(),
		Network:                        a.Network(),
		IsTestnet:                      a.IsTestnet(),
		Balance:                        a.Balance(),
		FormattedBalance:               a.FormattedBalance(loc),
		TotalConfirmedBalance:          a.TotalConfirmedBalance(),
		FormattedTotalConfirmedBalance: a.FormattedTotalConfirmedBalance(loc),
		UnspentCount:                   a.UnspentCount(),
		UnspentOutputs:                 []UnspentOutputView{},
	}
	if sats, err := a.BalanceSatoshis(); err == nil {
		view.BalanceSats = int64(sats)
	}
	for _, u := range a.UnspentOutputs() {
		out := UnspentOutputView{
			TxID:            u.TxID(),
			Vout:            u.Vout(),
			Amount:          u.Amount(),
			FormattedAmount: u.FormattedAmount(loc),
			Confirmations:   u.Confirmations(),
			Confirmed:       u.IsConfirmed(),
		}
		if h, ok := u.Height(); ok {
			out.Height = &h
		}
		if sats, err := u.Satoshis(); err == nil {
			out.AmountSats = int64(sats)
		}
		view.UnspentOutputs = append(view.UnspentOutputs, out)
	}
	return view
}

type TransferView struct {
	Type           string  `json:"type"`
	Address        string  `json:"address"`
	Value          string  `json:"value"`
	FormattedValue string  `json:"formatted_value"`
	TxID           string  `json:"txid"`
	Vout           *uint32 `json:"vout,omitempty"`
}

type InputView struct {
	TxID           string   `json:"txid"`
	Vout           uint32   `json:"vout"`
	Sequence       uint32   `json:"sequence"`
	Addresses      []string `json:"addresses"`
	Value          string   `json:"value"`
	FormattedValue string   `json:"formatted_value"`
	Type           string   `json:"type"`
}

type OutputView struct {
	N              uint32   `json:"n"`
	Addresses      []string `json:"addresses"`
	Value          string   `json:"value"`
	FormattedValue string   `json:"formatted_value"`
	Type           string   `json:"type"`
	ScriptPubKey   string   `json:"script_pubkey"`
}

// TransactionView carries amounts as decimal strings; float renderings that
// may be NaN or Inf only appear formatted.
type TransactionView struct {
	TxID                 string         `json:"txid"`
	Size                 int64          `json:"size"`
	FormattedSize        string         `json:"formatted_size"`
	VSize                int64          `json:"vsize"`
	Weight               int64          `json:"weight"`
	FormattedWeight      string         `json:"formatted_weight"`
	Fee                  string         `json:"fee"`
	FormattedFee         string         `json:"formatted_fee"`
	FormattedFeeRate     string         `json:"formatted_fee_rate"`
	TotalInput           string         `json:"total_input"`
	FormattedTotalInput  string         `json:"formatted_total_input"`
	TotalOutput          string         `json:"total_output"`
	FormattedTotalOutput string         `json:"formatted_total_output"`
	Confirmations        int64          `json:"confirmations"`
	Confirmed            bool           `json:"confirmed"`
	InMempool            bool           `json:"in_mempool"`
	FormattedTime        string         `json:"formatted_time"`
	BlockHeight          *int64         `json:"block_height,omitempty"`
	BlockHash            string         `json:"block_hash,omitempty"`
	InputCount           int64          `json:"input_count"`
	OutputCount          int64          `json:"output_count"`
	Inputs               []InputView    `json:"inputs"`
	Outputs              []OutputView   `json:"outputs"`
	Transfers            []TransferView `json:"transfers"`
}

func newTransactionView(tx model.Transaction, loc format.Locale) TransactionView {
	view := TransactionView{
		TxID:                 tx.TxID(),
		Size:                 tx.Size(),
		FormattedSize:        tx.FormattedSize(),
		VSize:                tx.VSize(),
		Weight:               tx.Weight(),
		FormattedWeight:      tx.FormattedWeight(),
		Fee:                  tx.Fee().String(),
		FormattedFee:         tx.FormattedFee(),
		FormattedFeeRate:     tx.FormattedFeeRate(),
		TotalInput:           tx.TotalInput().String(),
		FormattedTotalInput:  tx.FormattedTotalInput(),
		TotalOutput:          tx.TotalOutput().String(),
		FormattedTotalOutput: tx.FormattedTotalOutput(),
		Confirmations:        tx.Confirmations(),
		Confirmed:            tx.IsConfirmed(),
		InMempool:            tx.InMempool(),
		FormattedTime:        tx.FormattedTime(loc),
		InputCount:           tx.InputCount(),
		OutputCount:          tx.OutputCount(),
		Inputs:               []InputView{},
		Outputs:              []OutputView{},
		Transfers:            []TransferView{},
	}
	if h, ok := tx.BlockHeight(); ok {
		view.BlockHeight = &h
	}
	if hash, ok := tx.BlockHash(); ok {
		view.BlockHash = hash
	}
	for _, in := range tx.Inputs() {
		view.Inputs = append(view.Inputs, InputView{
			TxID:           in.TxID(),
			Vout:           in.Vout(),
			Sequence:       in.Sequence(),
			Addresses:      in.Addresses(),
			Value:          in.Value().String(),
			FormattedValue: in.FormattedValue(),
			Type:           in.Type(),
		})
	}
	for _, out := range tx.Outputs() {
		view.Outputs = append(view.Outputs, OutputView{
			N:              out.N(),
			Addresses:      out.Addresses(),
			Value:          out.Value().String(),
			FormattedValue: out.FormattedValue(),
			Type:           out.Type(),
			ScriptPubKey:   out.ScriptPubKey(),
		})
	}
	for _, tr := range tx.Transfers() {
		tv := TransferView{
			Type:           string(tr.Type()),
			Address:        tr.Address(),
			Value:          tr.Value().String(),
			FormattedValue: tr.FormattedValue(),
			TxID:           tr.TxID(),
		}
		if vout, ok := tr.Vout(); ok {
			tv.Vout = &vout
		}
		view.Transfers = append(view.Transfers, tv)
	}
	return view
}

type BlockView struct {
	Height                          int64             `json:"height"`
	FormattedHeight                 string            `json:"formatted_height"`
	Hash                            string            `json:"hash"`
	ShortHash                       string            `json:"short_hash"`
	Time                            int64             `json:"time"`
	FormattedTime                   string            `json:"formatted_time"`
	Nonce                           uint32            `json:"nonce"`
	Difficulty                      float64           `json:"difficulty"`
	FormattedDifficulty             string            `json:"formatted_difficulty"`
	NumTransactions                 int64             `json:"num_transactions"`
	Size                            int64             `json:"size"`
	FormattedSize                   string            `json:"formatted_size"`
	Weight                          int64             `json:"weight"`
	FormattedWeight                 string            `json:"formatted_weight"`
	MerkleRoot                      string            `json:"merkle_root"`
	TotalFees                       string            `json:"total_fees"`
	FormattedTotalFees              string            `json:"formatted_total_fees"`
	FormattedAverageTransactionSize string            `json:"formatted_average_transaction_size"`
	Transactions                    []TransactionView `json:"transactions"`
}

func newBlockView(b model.Block, loc format.Locale) BlockView {
	view := BlockView{
		Height:                          b.Height(),
		FormattedHeight:                 b.FormattedHeight(loc),
		Hash:                            b.Hash(),
		ShortHash:                       b.ShortHash(),
		Time:                            b.Time().Unix(),
		FormattedTime:                   b.FormattedTime(loc),
		Nonce:                           b.Nonce(),
		Difficulty:                      b.Difficulty(),
		FormattedDifficulty:             b.FormattedDifficulty(loc),
		NumTransactions:                 b.NumTransactions(),
		Size:                            b.Size(),
		FormattedSize:                   b.FormattedSize(),
		Weight:                          b.Weight(),
		FormattedWeight:                 b.FormattedWeight(),
		MerkleRoot:                      b.MerkleRoot(),
		TotalFees:                       b.TotalFees().String(),
		FormattedTotalFees:              b.FormattedTotalFees(),
		FormattedAverageTransactionSize: b.FormattedAverageTransactionSize(),
		Transactions:                    []TransactionView{},
	}
	for _, tx := range b.Transactions() {
		view.Transactions = append(view.Transactions, newTransactionView(tx, loc))
	}
	return view
}

type MempoolTransactionView struct {
	TxID          string `json:"txid"`
	Size          int64  `json:"size"`
	FormattedSize string `json:"formatted_size"`
	Fee           string `json:"fee"`
	FormattedFee  string `json:"formatted_fee"`
	FormattedTime string `json:"formatted_time"`
}

type MempoolView struct {
	Size               int64                    `json:"size"`
	Bytes              int64                    `json:"bytes"`
	FormattedBytes     string                   `json:"formatted_bytes"`
	Usage              int64                    `json:"usage"`
	TotalFees          string                   `json:"total_fees"`
	FormattedTotalFees string                   `json:"formatted_total_fees"`
	Transactions       []MempoolTransactionView `json:"transactions"`
}

func newMempoolView(m model.Mempool, loc format.Locale) MempoolView {
	view := MempoolView{
		Size:               m.Size(),
		Bytes:              m.Bytes(),
		FormattedBytes:     m.FormattedBytes(),
		Usage:              m.Usage(),
		TotalFees:          m.TotalFees().String(),
		FormattedTotalFees: model.FormatBTC(m.TotalFees()),
		Transactions:       []MempoolTransactionView{},
	}
	for _, tx := range m.Transactions() {
		view.Transactions = append(view.Transactions, MempoolTransactionView{
			TxID:          tx.TxID(),
			Size:          tx.Size(),
			FormattedSize: tx.FormattedSize(),
			Fee:           tx.Fee().String(),
			FormattedFee:  tx.FormattedFee(),
			FormattedTime: loc.DateTime(tx.Time()),
		})
	}
	return view
}

type StatusView struct {
	Status  string `json:"status"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Chain   string `json:"chain"`
	Blocks  int64  `json:"blocks"`
}

func newStatusView(h model.Health) StatusView {
	return StatusView{
		Status:  h.Status(),
		OK:      h.IsOK(),
		Message: h.Message(),
		Chain:   h.Chain(),
		Blocks:  h.Blocks(),
	}
}
