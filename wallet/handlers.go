package wallet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"gowallet/config"
	wtypes "gowallet/types"
	"gowallet/utils"

	"github.com/google/uuid"
)

// Handlers receive the resolved configuration explicitly as their
// first argument together with the positional tokens bound by the
// dispatcher. They validate and convert arguments, call the wallet
// server and render the response; errors propagate untouched.

// out is the handler output stream, redirected in tests.
var out io.Writer = os.Stdout

func render(cfg *config.Config, v any) error {
	return utils.Render(out, cfg, v)
}

// passphrase returns the configured passphrase or prompts for one.
func passphrase(cfg *config.Config) (string, error) {
	if cfg.Passphrase != "" {
		return cfg.Passphrase, nil
	}
	return utils.PromptPassphrase("Passphrase: ")
}

func pageReq(cfg *config.Config, account string, args []string) (wtypes.PageReq, error) {
	page, err := ParsePage(args)
	if err != nil {
		return wtypes.PageReq{}, err
	}
	return wtypes.PageReq{
		Keyring: cfg.Keyring,
		Account: account,
		Page:    page,
		Count:   cfg.Count,
		Reverse: cfg.Reverse,
	}, nil
}

func NewKeyring(cfg *config.Config, args []string) error {
	pass, err := passphrase(cfg)
	if err != nil {
		return err
	}
	req := wtypes.NewKeyringReq{Keyring: args[0], Passphrase: pass, Mnemonic: args[1:]}
	var resp wtypes.KeyringInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.NewKeyring", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func Keyring(cfg *config.Config, _ []string) error {
	req := wtypes.KeyringReq{Keyring: cfg.Keyring}
	var resp wtypes.KeyringInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Keyring", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func Keyrings(cfg *config.Config, _ []string) error {
	var resp wtypes.KeyringList
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Keyrings", struct{}{}, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func Keypair(cfg *config.Config, _ []string) error {
	req := wtypes.KeyringReq{Keyring: cfg.Keyring}
	var resp wtypes.KeypairInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Keypair", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func NewAcc(cfg *config.Config, args []string) error {
	req := wtypes.AccountReq{Keyring: cfg.Keyring, Name: args[0]}
	var resp wtypes.AccountInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.NewAccount", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func NewRead(cfg *config.Config, args []string) error {
	if err := ValidatePubKeys(args[1:2]); err != nil {
		return err
	}
	req := wtypes.NewReadReq{Keyring: cfg.Keyring, Name: args[0], Key: args[1]}
	var resp wtypes.AccountInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.NewReadAccount", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func newMsReq(cfg *config.Config, args []string, readOnly bool) (wtypes.NewMsReq, error) {
	m, err := strconv.Atoi(args[1])
	if err != nil {
		return wtypes.NewMsReq{}, fmt.Errorf("invalid multisig threshold %q", args[1])
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return wtypes.NewMsReq{}, fmt.Errorf("invalid multisig key count %q", args[2])
	}
	if m < 1 || n < m {
		return wtypes.NewMsReq{}, fmt.Errorf("invalid multisig scheme %d of %d", m, n)
	}
	keys := args[3:]
	if err := ValidatePubKeys(keys); err != nil {
		return wtypes.NewMsReq{}, err
	}
	return wtypes.NewMsReq{
		Keyring:  cfg.Keyring,
		Name:     args[0],
		M:        m,
		N:        n,
		Keys:     keys,
		ReadOnly: readOnly,
	}, nil
}

func NewMs(cfg *config.Config, args []string) error {
	req, err := newMsReq(cfg, args, false)
	if err != nil {
		return err
	}
	var resp wtypes.AccountInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.NewMsAccount", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func NewReadMs(cfg *config.Config, args []string) error {
	req, err := newMsReq(cfg, args, true)
	if err != nil {
		return err
	}
	var resp wtypes.AccountInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.NewMsAccount", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func AddKeys(cfg *config.Config, args []string) error {
	keys := args[1:]
	if err := ValidatePubKeys(keys); err != nil {
		return err
	}
	req := wtypes.AddKeysReq{Keyring: cfg.Keyring, Name: args[0], Keys: keys}
	var resp wtypes.AccountInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.AddKeys", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func SetGap(cfg *config.Config, args []string) error {
	gap, err := strconv.Atoi(args[0])
	if err != nil || gap < 0 {
		return fmt.Errorf("invalid gap %q", args[0])
	}
	req := wtypes.SetGapReq{Keyring: cfg.Keyring, Gap: gap}
	var resp wtypes.KeyringInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.SetGap", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func Account(cfg *config.Config, args []string) error {
	req := wtypes.AccountReq{Keyring: cfg.Keyring, Name: args[0]}
	var resp wtypes.AccountInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Account", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func Unused(cfg *config.Config, args []string) error {
	req := wtypes.UnusedReq{
		Keyring:  cfg.Keyring,
		Name:     args[0],
		Internal: cfg.AddrType == wtypes.AddrInternal,
	}
	var resp wtypes.AddressList
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Unused", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func Label(cfg *config.Config, args []string) error {
	index, err := strconv.Atoi(args[1])
	if err != nil || index < 0 {
		return fmt.Errorf("invalid address index %q", args[1])
	}
	req := wtypes.LabelReq{Keyring: cfg.Keyring, Name: args[0], Index: index, Label: args[2]}
	var resp wtypes.AddressInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Label", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func GenAddrs(cfg *config.Config, args []string) error {
	count, err := strconv.Atoi(args[1])
	if err != nil || count < 1 {
		return fmt.Errorf("invalid address count %q", args[1])
	}
	req := wtypes.GenAddrsReq{
		Keyring:  cfg.Keyring,
		Name:     args[0],
		Count:    count,
		Internal: cfg.AddrType == wtypes.AddrInternal,
	}
	var resp wtypes.AddressList
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.GenAddrs", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func List(cfg *config.Config, args []string) error {
	req, err := pageReq(cfg, args[0], args[1:])
	if err != nil {
		return err
	}
	var resp wtypes.AddressList
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Addresses", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func Txs(cfg *config.Config, args []string) error {
	req, err := pageReq(cfg, args[0], args[1:])
	if err != nil {
		return err
	}
	var resp wtypes.TxList
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Txs", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func AddrTxs(cfg *config.Config, args []string) error {
	pr, err := pageReq(cfg, args[0], args[2:])
	if err != nil {
		return err
	}
	req := wtypes.AddrPageReq{PageReq: pr, Address: args[1]}
	var resp wtypes.TxList
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.AddrTxs", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func sendReq(cfg *config.Config, account string, rcpts []wtypes.Recipient) (wtypes.SendReq, error) {
	req := wtypes.SendReq{
		Keyring:    cfg.Keyring,
		Account:    account,
		Recipients: rcpts,
		Fee:        cfg.Fee,
		Minconf:    cfg.Minconf,
		RcptFee:    cfg.RcptFee,
		Sign:       cfg.Sign,
	}
	if cfg.Sign {
		pass, err := passphrase(cfg)
		if err != nil {
			return wtypes.SendReq{}, err
		}
		req.Passphrase = pass
	}
	return req, nil
}

func Send(cfg *config.Config, args []string) error {
	rcpts, err := ParseRecipients(args[1:])
	if err != nil {
		return err
	}
	req, err := sendReq(cfg, args[0], rcpts)
	if err != nil {
		return err
	}
	var resp wtypes.SendResp
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Send", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func SendMany(cfg *config.Config, args []string) error {
	rcpts, err := ParseRecipients(args[1:])
	if err != nil {
		return err
	}
	req, err := sendReq(cfg, args[0], rcpts)
	if err != nil {
		return err
	}
	var resp wtypes.SendResp
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Send", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func ImportTx(cfg *config.Config, args []string) error {
	req := wtypes.ImportTxReq{Keyring: cfg.Keyring, Account: args[0], Tx: args[1]}
	var resp wtypes.TxInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.ImportTx", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func SignTx(cfg *config.Config, args []string) error {
	pass, err := passphrase(cfg)
	if err != nil {
		return err
	}
	req := wtypes.SignTxReq{Keyring: cfg.Keyring, Account: args[0], TxID: args[1], Passphrase: pass}
	var resp wtypes.SendResp
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.SignTx", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func GetTx(cfg *config.Config, args []string) error {
	req := wtypes.TxReq{Keyring: cfg.Keyring, Account: args[0], TxID: args[1]}
	var resp wtypes.TxInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.GetTx", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func BalanceCmd(cfg *config.Config, args []string) error {
	req := wtypes.BalanceReq{
		Keyring: cfg.Keyring,
		Account: args[0],
		Minconf: cfg.Minconf,
		Offline: cfg.Offline,
	}
	var resp wtypes.Balance
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Balance", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

// GetOffline fetches the signing bundle for a transaction and stores
// it in a uniquely named file in the working directory, ready to carry
// to an offline signer.
func GetOffline(cfg *config.Config, args []string) error {
	req := wtypes.TxReq{Keyring: cfg.Keyring, Account: args[0], TxID: args[1]}
	var bundle wtypes.OfflineBundle
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.GetOfflineTx", req, &bundle); err != nil {
			return err
		}
		name := fmt.Sprintf("offline-%s.json", uuid.New())
		data, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal offline bundle: %w", err)
		}
		if err := os.WriteFile(name, data, 0o600); err != nil {
			return fmt.Errorf("failed to write offline bundle: %w", err)
		}
		logging.Debugf("stored offline bundle for %s in %s", bundle.TxID, name)
		fmt.Fprintf(out, "Offline bundle written to %s\n", name)
		return nil
	})
}

// SignOffline reads a bundle produced by GetOffline and has the server
// sign it.
func SignOffline(cfg *config.Config, args []string) error {
	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read offline bundle: %w", err)
	}
	var bundle wtypes.OfflineBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return fmt.Errorf("failed to parse offline bundle %s: %w", args[1], err)
	}
	pass, err := passphrase(cfg)
	if err != nil {
		return err
	}
	req := wtypes.SignOfflineReq{Keyring: cfg.Keyring, Account: args[0], Passphrase: pass, Bundle: bundle}
	var resp wtypes.SendResp
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.SignOfflineTx", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func DeleteTx(cfg *config.Config, args []string) error {
	req := wtypes.DeleteTxReq{TxID: args[0]}
	var resp wtypes.TxInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.DeleteTx", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func DecodeTx(cfg *config.Config, args []string) error {
	req := wtypes.DecodeTxReq{Tx: args[0]}
	var resp wtypes.DecodedTx
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.DecodeTx", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func Rescan(cfg *config.Config, args []string) error {
	req := wtypes.RescanReq{}
	if len(args) > 0 {
		// the timestamp format is owned by the server, pass it through
		req.Timestamp = args[0]
	}
	var resp wtypes.RescanResp
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Rescan", req, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func Status(cfg *config.Config, _ []string) error {
	var resp wtypes.StatusInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Status", struct{}{}, &resp); err != nil {
			return err
		}
		return render(cfg, resp)
	})
}

func Stop(cfg *config.Config, _ []string) error {
	var resp wtypes.StatusInfo
	return withClient(cfg, func(c caller) error {
		if err := c.Call("Wallet.Stop", struct{}{}, &resp); err != nil {
			return err
		}
		fmt.Fprintln(out, "Server stopping")
		return nil
	})
}

// VersionCmd prints the client version and, when a server is
// reachable, its version too.
func VersionCmd(cfg *config.Config, _ []string) error {
	info := wtypes.VersionInfo{Client: Version}
	if c, err := dial(cfg.Server); err == nil {
		var resp wtypes.StatusInfo
		if err := c.Call("Wallet.Status", struct{}{}, &resp); err == nil {
			info.Server = resp.Version
		}
		c.Close()
	}
	return render(cfg, info)
}
