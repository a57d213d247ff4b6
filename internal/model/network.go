package model

import (
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network is a snapshot of the backend's chain status. Every field defaults
// to its zero value; no payload is rejected.
type Network struct {
	isTestnet   bool
	networkName string
	lastBlock   int64
	mempoolSize int64
}

func NewNetwork(p NetworkPayload) Network {
	return Network{
		isTestnet:   p.IsTestnet,
		networkName: p.NetworkName,
		lastBlock:   p.LastBlock,
		mempoolSize: p.MempoolSize,
	}
}

func (n Network) IsTestnet() bool     { return n.isTestnet }
func (n Network) NetworkName() string { return n.networkName }
func (n Network) LastBlock() int64    { return n.lastBlock }
func (n Network) MempoolSize() int64  { return n.mempoolSize }

// Params maps the network name to chain parameters. Unknown names fall back
// to testnet3 when the backend flags a test network and to nil otherwise.
func (n Network) Params() *chaincfg.Params {
	switch strings.ToLower(n.networkName) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams
	case "test", "testnet", "testnet3":
		return &chaincfg.TestNet3Params
	case "regtest":
		return &chaincfg.RegressionNetParams
	case "signet":
		return &chaincfg.SigNetParams
	}
	if n.isTestnet {
		return &chaincfg.TestNet3Params
	}
	return nil
}
