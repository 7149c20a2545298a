package wallet

import (
	"encoding/hex"
	"fmt"
	"strconv"

	wtypes "gowallet/types"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal coin amount into base units.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	units := d.Shift(wtypes.CoinPrecision)
	if !units.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than %d decimal places", s, wtypes.CoinPrecision)
	}
	if units.IsNegative() {
		return 0, fmt.Errorf("amount %q is negative", s)
	}
	if !units.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %q is out of range", s)
	}
	return units.IntPart(), nil
}

// ParseRecipients interprets a flat token list as address/amount pairs.
func ParseRecipients(tokens []string) ([]wtypes.Recipient, error) {
	if len(tokens) == 0 || len(tokens)%2 != 0 {
		return nil, fmt.Errorf("recipients must be address/amount pairs")
	}
	rcpts := make([]wtypes.Recipient, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		amount, err := ParseAmount(tokens[i+1])
		if err != nil {
			return nil, err
		}
		rcpts = append(rcpts, wtypes.Recipient{Address: tokens[i], Amount: amount})
	}
	return rcpts, nil
}

// ValidatePubKeys checks that every token is a hex-encoded secp256k1
// public key before anything is sent to the server.
func ValidatePubKeys(keys []string) error {
	for _, k := range keys {
		raw, err := hex.DecodeString(k)
		if err != nil {
			return fmt.Errorf("invalid public key %q: %w", k, err)
		}
		if _, err := btcec.ParsePubKey(raw); err != nil {
			return fmt.Errorf("invalid public key %q: %w", k, err)
		}
	}
	return nil
}

// ParsePage interprets the optional trailing paging argument of the
// listing commands. No argument selects the first page.
func ParsePage(args []string) (int, error) {
	switch len(args) {
	case 0:
		return 0, nil
	case 1:
		page, err := strconv.Atoi(args[0])
		if err != nil || page < 0 {
			return 0, fmt.Errorf("invalid page %q", args[0])
		}
		return page, nil
	default:
		return 0, fmt.Errorf("expected at most one page argument")
	}
}
