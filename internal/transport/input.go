package transport

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

var (
	ErrInvalidHash    = errors.New("invalid hash")
	ErrInvalidHeight  = errors.New("invalid block height")
	ErrInvalidAddress = errors.New("invalid address")
)

var knownNets = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SigNetParams,
}

func validateHash(s string) error {
	if len(s) != chainhash.MaxHashStringSize {
		return fmt.Errorf("%w: %q", ErrInvalidHash, s)
	}
	if _, err := chainhash.NewHashFromStr(s); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidHash, s, err)
	}
	return nil
}

// normalizeBlockID accepts a decimal height made of digits only, returned in
// canonical form, or a block hash, returned as is.
func normalizeBlockID(id string) (string, error) {
	if isDigits(id) {
		height, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", ErrInvalidHeight, id, err)
		}
		return strconv.FormatInt(height, 10), nil
	}
	if err := validateHash(id); err != nil {
		return "", err
	}
	return id, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validateAddress decodes addr for params, or for any known network when params is nil.
func validateAddress(addr string, params *chaincfg.Params) error {
	nets := knownNets
	if params != nil {
		nets = []*chaincfg.Params{params}
	}
	for _, net := range nets {
		decoded, err := btcutil.DecodeAddress(addr, net)
		if err == nil && decoded.IsForNet(net) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
}
