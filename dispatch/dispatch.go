// Package dispatch matches positional command tokens against a static
// grammar table and invokes the matching wallet handler with the
// resolved configuration.
package dispatch

import (
	"fmt"
	"io"
	"strings"

	"gowallet/config"
	"gowallet/utils"
	"gowallet/wallet"
)

// Handler is an external command handler. It receives the resolved
// configuration explicitly; this layer performs no business logic and
// does not intercept handler errors.
type Handler func(cfg *config.Config, args []string) error

// Arity classifies a command's positional shape.
type Arity int

const (
	// Zero takes no arguments beyond the keyword.
	Zero Arity = iota
	// Fixed takes exactly len(Slots) arguments.
	Fixed
	// Variadic takes the named prefix plus an open-ended list.
	Variadic
	// OptionalSuffix takes the named prefix plus zero or more
	// trailing tokens passed through verbatim.
	OptionalSuffix
)

// Command is one grammar entry.
type Command struct {
	Keyword string
	Kind    Arity
	Slots   []string // named prefix slots, bound positionally
	Tail    string   // placeholder for the open or optional tail
	Help    string
	Run     Handler
}

// Matches reports whether the token sequence selects this entry.
func (c *Command) Matches(tokens []string) bool {
	if len(tokens) == 0 || tokens[0] != c.Keyword {
		return false
	}
	n := len(tokens) - 1
	switch c.Kind {
	case Zero:
		return n == 0
	case Fixed:
		return n == len(c.Slots)
	default:
		return n >= len(c.Slots)
	}
}

func (c *Command) usageLine() string {
	parts := []string{c.Keyword}
	for _, s := range c.Slots {
		parts = append(parts, "<"+s+">")
	}
	switch c.Kind {
	case Variadic:
		parts = append(parts, "["+c.Tail+"...]")
	case OptionalSuffix:
		parts = append(parts, "["+c.Tail+"]")
	}
	return strings.Join(parts, " ")
}

// Dispatch selects exactly one grammar entry for the given tokens and
// runs its handler. An empty token list or the help keyword prints the
// usage text; an unmatched command prints a diagnostic plus the usage
// text. Neither is an error.
func Dispatch(cfg *config.Config, tokens []string, table []Command, w io.Writer) error {
	if len(tokens) == 0 || (len(tokens) == 1 && tokens[0] == "help") {
		PrintUsage(w, table)
		return nil
	}
	for i := range table {
		if table[i].Matches(tokens) {
			return table[i].Run(cfg, tokens[1:])
		}
	}
	utils.Warn(w, "Invalid command: %s", strings.Join(tokens, " "))
	fmt.Fprintln(w)
	PrintUsage(w, table)
	return nil
}

// PrintUsage writes the full usage text: command grammar followed by
// the flag table.
func PrintUsage(w io.Writer, table []Command) {
	fmt.Fprintln(w, "Usage: gowallet [options] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for i := range table {
		fmt.Fprintf(w, "  %-42s %s\n", table[i].usageLine(), table[i].Help)
	}
	fmt.Fprintf(w, "  %-42s %s\n", "help", "Print this help text")
	fmt.Fprintln(w)
	fmt.Fprint(w, config.OptionUsage())
}

// Table returns the static command grammar wired to the wallet
// handlers.
func Table() []Command {
	return []Command{
		{Keyword: "start", Kind: Zero, Help: "Start the wallet server", Run: wallet.Start},
		{Keyword: "stop", Kind: Zero, Help: "Stop the wallet server", Run: wallet.Stop},
		{Keyword: "status", Kind: Zero, Help: "Show wallet server status", Run: wallet.Status},
		{Keyword: "version", Kind: Zero, Help: "Show client and server versions", Run: wallet.VersionCmd},
		{Keyword: "keyring", Kind: Zero, Help: "Show the active keyring", Run: wallet.Keyring},
		{Keyword: "keyrings", Kind: Zero, Help: "List all keyrings", Run: wallet.Keyrings},
		{Keyword: "keypair", Kind: Zero, Help: "Show the keyring master public key", Run: wallet.Keypair},
		{Keyword: "newkeyring", Kind: Variadic, Slots: []string{"name"}, Tail: "word",
			Help: "Create a keyring, optionally from a mnemonic", Run: wallet.NewKeyring},
		{Keyword: "newacc", Kind: Fixed, Slots: []string{"name"},
			Help: "Create an account", Run: wallet.NewAcc},
		{Keyword: "newread", Kind: Fixed, Slots: []string{"name", "key"},
			Help: "Create a read-only account from a public key", Run: wallet.NewRead},
		{Keyword: "newms", Kind: Variadic, Slots: []string{"name", "m", "n"}, Tail: "key",
			Help: "Create an m-of-n multisig account", Run: wallet.NewMs},
		{Keyword: "newreadms", Kind: Variadic, Slots: []string{"name", "m", "n"}, Tail: "key",
			Help: "Create a read-only multisig account", Run: wallet.NewReadMs},
		{Keyword: "addkeys", Kind: Variadic, Slots: []string{"name", "key"}, Tail: "key",
			Help: "Add public keys to a multisig account", Run: wallet.AddKeys},
		{Keyword: "setgap", Kind: Fixed, Slots: []string{"gap"},
			Help: "Set the address gap limit", Run: wallet.SetGap},
		{Keyword: "account", Kind: Fixed, Slots: []string{"name"},
			Help: "Show an account", Run: wallet.Account},
		{Keyword: "unused", Kind: Fixed, Slots: []string{"name"},
			Help: "List unused addresses", Run: wallet.Unused},
		{Keyword: "label", Kind: Fixed, Slots: []string{"name", "index", "label"},
			Help: "Label an address", Run: wallet.Label},
		{Keyword: "genaddrs", Kind: Fixed, Slots: []string{"name", "count"},
			Help: "Generate new addresses", Run: wallet.GenAddrs},
		{Keyword: "list", Kind: OptionalSuffix, Slots: []string{"name"}, Tail: "page",
			Help: "List account addresses", Run: wallet.List},
		{Keyword: "txs", Kind: OptionalSuffix, Slots: []string{"name"}, Tail: "page",
			Help: "List account transactions", Run: wallet.Txs},
		{Keyword: "addrtxs", Kind: OptionalSuffix, Slots: []string{"name", "addr"}, Tail: "page",
			Help: "List transactions of one address", Run: wallet.AddrTxs},
		{Keyword: "send", Kind: Fixed, Slots: []string{"name", "addr", "amount"},
			Help: "Send coins to an address", Run: wallet.Send},
		{Keyword: "sendmany", Kind: Variadic, Slots: []string{"name", "addr", "amount"}, Tail: "addr amount",
			Help: "Send coins to many addresses", Run: wallet.SendMany},
		{Keyword: "import", Kind: Fixed, Slots: []string{"name", "tx"},
			Help: "Import a raw transaction", Run: wallet.ImportTx},
		{Keyword: "sign", Kind: Fixed, Slots: []string{"name", "txid"},
			Help: "Sign a pending transaction", Run: wallet.SignTx},
		{Keyword: "gettx", Kind: Fixed, Slots: []string{"name", "txid"},
			Help: "Show a transaction", Run: wallet.GetTx},
		{Keyword: "balance", Kind: Fixed, Slots: []string{"name"},
			Help: "Show an account balance", Run: wallet.BalanceCmd},
		{Keyword: "getoffline", Kind: Fixed, Slots: []string{"name", "txid"},
			Help: "Fetch an offline signing bundle", Run: wallet.GetOffline},
		{Keyword: "signoffline", Kind: Fixed, Slots: []string{"name", "file"},
			Help: "Sign an offline bundle", Run: wallet.SignOffline},
		{Keyword: "deletetx", Kind: Fixed, Slots: []string{"txid"},
			Help: "Delete a pending transaction", Run: wallet.DeleteTx},
		{Keyword: "decodetx", Kind: Fixed, Slots: []string{"tx"},
			Help: "Decode a raw transaction", Run: wallet.DecodeTx},
		{Keyword: "rescan", Kind: Variadic, Tail: "timestamp",
			Help: "Rescan the chain, optionally from a timestamp", Run: wallet.Rescan},
	}
}
