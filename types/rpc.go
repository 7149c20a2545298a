package wtypes

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CoinPrecision is the number of decimal places between a base unit
// and a displayed coin amount.
const CoinPrecision = 8

// FormatAmount renders a base-unit amount as a coin-denominated decimal.
func FormatAmount(units int64) string {
	return decimal.New(units, -CoinPrecision).StringFixed(CoinPrecision)
}

// Recipient is one address/amount pair of a send request. Amounts are
// in base units.
type Recipient struct {
	Address string `json:"address" yaml:"address"`
	Amount  int64  `json:"amount" yaml:"amount"`
}

// Requests accepted by the wallet server. Field names mirror the
// server's JSON-RPC API.

type KeyringReq struct {
	Keyring string `json:"keyring"`
}

type NewKeyringReq struct {
	Keyring    string   `json:"keyring"`
	Passphrase string   `json:"passphrase"`
	Mnemonic   []string `json:"mnemonic,omitempty"`
}

type AccountReq struct {
	Keyring string `json:"keyring"`
	Name    string `json:"name"`
}

type NewReadReq struct {
	Keyring string `json:"keyring"`
	Name    string `json:"name"`
	Key     string `json:"key"`
}

type NewMsReq struct {
	Keyring  string   `json:"keyring"`
	Name     string   `json:"name"`
	M        int      `json:"m"`
	N        int      `json:"n"`
	Keys     []string `json:"keys"`
	ReadOnly bool     `json:"readonly"`
}

type AddKeysReq struct {
	Keyring string   `json:"keyring"`
	Name    string   `json:"name"`
	Keys    []string `json:"keys"`
}

type SetGapReq struct {
	Keyring string `json:"keyring"`
	Gap     int    `json:"gap"`
}

type UnusedReq struct {
	Keyring  string `json:"keyring"`
	Name     string `json:"name"`
	Internal bool   `json:"internal"`
}

type LabelReq struct {
	Keyring string `json:"keyring"`
	Name    string `json:"name"`
	Index   int    `json:"index"`
	Label   string `json:"label"`
}

type GenAddrsReq struct {
	Keyring  string `json:"keyring"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Internal bool   `json:"internal"`
}

type PageReq struct {
	Keyring string `json:"keyring"`
	Account string `json:"account"`
	Page    int    `json:"page"`
	Count   int    `json:"count"`
	Reverse bool   `json:"reverse"`
}

type AddrPageReq struct {
	PageReq
	Address string `json:"address"`
}

type SendReq struct {
	Keyring    string      `json:"keyring"`
	Account    string      `json:"account"`
	Recipients []Recipient `json:"recipients"`
	Fee        int         `json:"fee"`
	Minconf    int         `json:"minconf"`
	RcptFee    bool        `json:"rcptfee"`
	Sign       bool        `json:"sign"`
	Passphrase string      `json:"passphrase,omitempty"`
}

type ImportTxReq struct {
	Keyring string `json:"keyring"`
	Account string `json:"account"`
	Tx      string `json:"tx"`
}

type SignTxReq struct {
	Keyring    string `json:"keyring"`
	Account    string `json:"account"`
	TxID       string `json:"txid"`
	Passphrase string `json:"passphrase,omitempty"`
}

type TxReq struct {
	Keyring string `json:"keyring"`
	Account string `json:"account"`
	TxID    string `json:"txid"`
}

type BalanceReq struct {
	Keyring string `json:"keyring"`
	Account string `json:"account"`
	Minconf int    `json:"minconf"`
	Offline bool   `json:"offline"`
}

type SignOfflineReq struct {
	Keyring    string        `json:"keyring"`
	Account    string        `json:"account"`
	Passphrase string        `json:"passphrase,omitempty"`
	Bundle     OfflineBundle `json:"bundle"`
}

type DeleteTxReq struct {
	TxID string `json:"txid"`
}

type DecodeTxReq struct {
	Tx string `json:"tx"`
}

type RescanReq struct {
	Timestamp string `json:"timestamp,omitempty"`
}

// Responses returned by the wallet server.

type KeyringInfo struct {
	Name    string  `json:"name" yaml:"name"`
	Network Network `json:"network" yaml:"network"`
	Master  string  `json:"master,omitempty" yaml:"master,omitempty"`
}

func (k KeyringInfo) String() string {
	return fmt.Sprintf("Keyring: %s\nNetwork: %s\nMaster: %s", k.Name, k.Network, k.Master)
}

type KeyringList struct {
	Keyrings []KeyringInfo `json:"keyrings" yaml:"keyrings"`
}

func (l KeyringList) String() string {
	names := make([]string, len(l.Keyrings))
	for i, k := range l.Keyrings {
		names[i] = fmt.Sprintf("%s (%s)", k.Name, k.Network)
	}
	return "Keyrings:\n  " + strings.Join(names, "\n  ")
}

type KeypairInfo struct {
	Public     string `json:"public" yaml:"public"`
	Derivation string `json:"derivation" yaml:"derivation"`
}

func (k KeypairInfo) String() string {
	return fmt.Sprintf("Public key: %s\nDerivation: %s", k.Public, k.Derivation)
}

type AccountInfo struct {
	Keyring string   `json:"keyring" yaml:"keyring"`
	Name    string   `json:"name" yaml:"name"`
	Type    string   `json:"type" yaml:"type"`
	M       int      `json:"m,omitempty" yaml:"m,omitempty"`
	N       int      `json:"n,omitempty" yaml:"n,omitempty"`
	Gap     int      `json:"gap" yaml:"gap"`
	Keys    []string `json:"keys,omitempty" yaml:"keys,omitempty"`
}

func (a AccountInfo) String() string {
	s := fmt.Sprintf("Account: %s\nType: %s\nGap: %d", a.Name, a.Type, a.Gap)
	if a.N > 0 {
		s += fmt.Sprintf("\nMultisig: %d of %d", a.M, a.N)
	}
	return s
}

type AddressInfo struct {
	Index   uint32 `json:"index" yaml:"index"`
	Address string `json:"address" yaml:"address"`
	Label   string `json:"label,omitempty" yaml:"label,omitempty"`
}

func (a AddressInfo) String() string {
	if a.Label == "" {
		return fmt.Sprintf("%d: %s", a.Index, a.Address)
	}
	return fmt.Sprintf("%d: %s (%s)", a.Index, a.Address, a.Label)
}

type AddressList struct {
	Addresses  []AddressInfo `json:"addresses" yaml:"addresses"`
	Page       int           `json:"page" yaml:"page"`
	TotalPages int           `json:"totalpages" yaml:"totalpages"`
}

func (l AddressList) String() string {
	lines := make([]string, 0, len(l.Addresses)+1)
	for _, a := range l.Addresses {
		lines = append(lines, a.String())
	}
	if l.TotalPages > 1 {
		lines = append(lines, fmt.Sprintf("Page %d of %d", l.Page, l.TotalPages))
	}
	return strings.Join(lines, "\n")
}

type TxInfo struct {
	TxID          string `json:"txid" yaml:"txid"`
	Value         int64  `json:"value" yaml:"value"`
	Confirmations int    `json:"confirmations" yaml:"confirmations"`
	Height        int64  `json:"height,omitempty" yaml:"height,omitempty"`
}

func (t TxInfo) String() string {
	return fmt.Sprintf("%s  %s  %d confirmations",
		t.TxID, FormatAmount(t.Value), t.Confirmations)
}

type TxList struct {
	Txs        []TxInfo `json:"txs" yaml:"txs"`
	Page       int      `json:"page" yaml:"page"`
	TotalPages int      `json:"totalpages" yaml:"totalpages"`
}

func (l TxList) String() string {
	lines := make([]string, 0, len(l.Txs)+1)
	for _, t := range l.Txs {
		lines = append(lines, t.String())
	}
	if l.TotalPages > 1 {
		lines = append(lines, fmt.Sprintf("Page %d of %d", l.Page, l.TotalPages))
	}
	return strings.Join(lines, "\n")
}

type Balance struct {
	Account string `json:"account" yaml:"account"`
	Balance int64  `json:"balance" yaml:"balance"`
	Minconf int    `json:"minconf" yaml:"minconf"`
	Offline bool   `json:"offline,omitempty" yaml:"offline,omitempty"`
}

func (b Balance) String() string {
	return fmt.Sprintf("Balance: %s", FormatAmount(b.Balance))
}

type SendResp struct {
	TxID     string `json:"txid" yaml:"txid"`
	Complete bool   `json:"complete" yaml:"complete"`
}

func (s SendResp) String() string {
	if !s.Complete {
		return fmt.Sprintf("Tx: %s (incomplete, more signatures required)", s.TxID)
	}
	return fmt.Sprintf("Tx: %s", s.TxID)
}

// OfflineBundle carries everything needed to sign a transaction on a
// machine with no network access. The contents are opaque to the client.
type OfflineBundle struct {
	TxID   string   `json:"txid" yaml:"txid"`
	Tx     string   `json:"tx" yaml:"tx"`
	Inputs []string `json:"inputs" yaml:"inputs"`
}

type DecodedTx struct {
	TxID    string      `json:"txid" yaml:"txid"`
	Version int         `json:"version" yaml:"version"`
	Inputs  []string    `json:"inputs" yaml:"inputs"`
	Outputs []Recipient `json:"outputs" yaml:"outputs"`
}

type RescanResp struct {
	Started   bool   `json:"started" yaml:"started"`
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

func (r RescanResp) String() string {
	if !r.Started {
		return "Rescan not started"
	}
	if r.Timestamp == "" {
		return "Rescan started from birth"
	}
	return "Rescan started from " + r.Timestamp
}

type StatusInfo struct {
	Version string  `json:"version" yaml:"version"`
	Network Network `json:"network" yaml:"network"`
	Height  int64   `json:"height" yaml:"height"`
	Synced  bool    `json:"synced" yaml:"synced"`
}

func (s StatusInfo) String() string {
	sync := "syncing"
	if s.Synced {
		sync = "synced"
	}
	return fmt.Sprintf("Server %s on %s, height %d (%s)", s.Version, s.Network, s.Height, sync)
}

type VersionInfo struct {
	Client string `json:"client" yaml:"client"`
	Server string `json:"server,omitempty" yaml:"server,omitempty"`
}

func (v VersionInfo) String() string {
	if v.Server == "" {
		return "Client version: " + v.Client
	}
	return fmt.Sprintf("Client version: %s\nServer version: %s", v.Client, v.Server)
}
