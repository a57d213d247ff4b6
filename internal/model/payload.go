package model

// Payload types mirror the JSON documents served by the explorer backend.

type UnspentOutputPayload struct {
	TxID          string  `json:"txid"`
	Vout          uint32  `json:"vout"`
	Amount        float64 `json:"amount"`
	Confirmations int64   `json:"confirmations"`
	Height        *int64  `json:"height,omitempty"`
}

type AddressPayload struct {
	Address        string                 `json:"address"`
	Network        string                 `json:"network"`
	Balance        float64                `json:"balance"`
	UnspentCount   int64                  `json:"unspent_count"`
	UnspentOutputs []UnspentOutputPayload `json:"unspent_outputs"`
}

type TransferPayload struct {
	Type    TransferType  `json:"type"`
	Address string        `json:"address"`
	Value   DecimalString `json:"value"`
	TxID    string        `json:"txid"`
	Vout    *uint32       `json:"vout,omitempty"`
}

type ScriptSig struct {
	Asm string `json:"asm"`
	Hex string `json:"hex"`
}

type TransactionInputPayload struct {
	TxID      string        `json:"txid"`
	Vout      uint32        `json:"vout"`
	Sequence  uint32        `json:"sequence"`
	Addresses []string      `json:"addresses"`
	Value     DecimalString `json:"value"`
	Type      string        `json:"type"`
	ScriptSig ScriptSig     `json:"scriptSig"`
}

type TransactionOutputPayload struct {
	Value        DecimalString `json:"value"`
	N            uint32        `json:"n"`
	Type         string        `json:"type"`
	Addresses    []string      `json:"addresses"`
	ScriptPubKey string        `json:"scriptPubKey"`
}

// BlockRef points a transaction at the block that confirmed it.
type BlockRef struct {
	Hash   string `json:"hash"`
	Height int64  `json:"height"`
	Time   int64  `json:"time"`
}

type TransactionPayload struct {
	TxID            string                     `json:"txid"`
	Size            int64                      `json:"size"`
	VSize           int64                      `json:"vsize"`
	Weight          int64                      `json:"weight"`
	Fee             DecimalString              `json:"fee"`
	TotalInput      DecimalString              `json:"total_input"`
	TotalOutput     DecimalString              `json:"total_output"`
	Confirmations   int64                      `json:"confirmations"`
	Time            *int64                     `json:"time"`
	InMempool       bool                       `json:"in_mempool"`
	InputCount      int64                      `json:"input_count"`
	OutputCount     int64                      `json:"output_count"`
	Inputs          []TransactionInputPayload  `json:"inputs"`
	Outputs         []TransactionOutputPayload `json:"outputs"`
	Transfers       []TransferPayload          `json:"transfers"`
	InputAddresses  []string                   `json:"input_addresses"`
	OutputAddresses []string                   `json:"output_addresses"`
	Block           *BlockRef                  `json:"block"`
}

// BlockTransactionPayload is the reduced transaction shape embedded in a block.
type BlockTransactionPayload struct {
	TxID        string                     `json:"txid"`
	Size        int64                      `json:"size"`
	VSize       int64                      `json:"vsize"`
	Weight      int64                      `json:"weight"`
	Fee         DecimalString              `json:"fee"`
	TotalInput  DecimalString              `json:"total_input"`
	TotalOutput DecimalString              `json:"total_output"`
	InputCount  int64                      `json:"input_count"`
	OutputCount int64                      `json:"output_count"`
	Inputs      []TransactionInputPayload  `json:"inputs"`
	Outputs     []TransactionOutputPayload `json:"outputs"`
}

type BlockPayload struct {
	Height          int64                     `json:"height"`
	Hash            string                    `json:"hash"`
	Time            int64                     `json:"time"`
	Nonce           uint32                    `json:"nonce"`
	Difficulty      float64                   `json:"difficulty"`
	NumTransactions int64                     `json:"num_transactions"`
	Size            int64                     `json:"size"`
	Weight          int64                     `json:"weight"`
	MerkleRoot      string                    `json:"merkle_root"`
	Transactions    []BlockTransactionPayload `json:"transactions"`
}

type NetworkPayload struct {
	IsTestnet   bool   `json:"isTestnet"`
	NetworkName string `json:"networkName"`
	LastBlock   int64  `json:"lastBlock"`
	MempoolSize int64  `json:"mempoolSize"`
}

type MempoolTransactionPayload struct {
	TxID string        `json:"txid"`
	Size int64         `json:"size"`
	Fee  DecimalString `json:"fee"`
	Time int64         `json:"time"`
}

type MempoolPayload struct {
	Size         int64                       `json:"size"`
	Bytes        int64                       `json:"bytes"`
	Usage        int64                       `json:"usage"`
	Transactions []MempoolTransactionPayload `json:"transactions"`
}

type HealthPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Chain   string `json:"chain"`
	Blocks  int64  `json:"blocks"`
}
