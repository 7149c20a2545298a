package config

import (
	"fmt"
	"strconv"
	"strings"

	wtypes "gowallet/types"
)

// Option declares one command-line flag: its short and long names,
// whether it takes a value, and the pure transformation it applies to
// the configuration. Transformations assign a single field and nothing
// else; Resolve replays them a second time over the file-derived
// configuration.
type Option struct {
	Short byte   // single-letter name, e.g. 'k' for -k
	Long  string // long name, e.g. "keyring" for --keyring
	Arg   string // value placeholder in usage text, empty for toggles
	Usage string

	apply func(value string) (Transform, error)
}

func strOpt(set func(Config, string) Config) func(string) (Transform, error) {
	return func(v string) (Transform, error) {
		return func(c Config) Config { return set(c, v) }, nil
	}
}

func intOpt(set func(Config, int) Config) func(string) (Transform, error) {
	return func(v string) (Transform, error) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("could not parse %q as a number", v)
		}
		return func(c Config) Config { return set(c, n) }, nil
	}
}

func boolOpt(set func(Config) Config) func(string) (Transform, error) {
	return func(string) (Transform, error) {
		return set, nil
	}
}

// Options is the table of recognized flags in help-text order.
var Options = []Option{
	{'k', "keyring", "NAME", "Keyring to use for commands",
		strOpt(func(c Config, v string) Config { c.Keyring = v; return c })},
	{'c', "count", "N", "Items per page",
		intOpt(func(c Config, n int) Config { c.Count = n; return c })},
	{'m', "minconf", "N", "Minimum confirmations",
		intOpt(func(c Config, n int) Config { c.Minconf = n; return c })},
	{'f', "fee", "N", "Fee rate in base units per kilobyte",
		intOpt(func(c Config, n int) Config { c.Fee = n; return c })},
	{'R', "rcptfee", "", "Recipient pays the fee",
		boolOpt(func(c Config) Config { c.RcptFee = true; return c })},
	{'S', "nosig", "", "Do not sign transactions",
		boolOpt(func(c Config) Config { c.Sign = false; return c })},
	{'i', "internal", "", "Use internal addresses",
		boolOpt(func(c Config) Config { c.AddrType = wtypes.AddrInternal; return c })},
	{'o', "offline", "", "Offline balances and transactions",
		boolOpt(func(c Config) Config { c.Offline = true; return c })},
	{'r', "reverse", "", "Reverse paging order",
		boolOpt(func(c Config) Config { c.Reverse = true; return c })},
	{'p', "passphrase", "PASSPHRASE", "Passphrase unlocking the keyring",
		strOpt(func(c Config, v string) Config { c.Passphrase = v; return c })},
	{'j', "json", "", "Produce JSON output",
		boolOpt(func(c Config) Config { c.Format = wtypes.FormatJSON; return c })},
	{'y', "yaml", "", "Produce YAML output",
		boolOpt(func(c Config) Config { c.Format = wtypes.FormatYAML; return c })},
	{'s', "server", "HOST:PORT", "Wallet server address",
		strOpt(func(c Config, v string) Config { c.Server = v; return c })},
	{'d', "detach", "", "Detach the server when starting",
		boolOpt(func(c Config) Config { c.Detach = true; return c })},
	{'t', "testnet", "", "Use testnet",
		boolOpt(func(c Config) Config { c.Testnet = true; return c })},
	{'g', "config", "FILE", "Configuration file",
		strOpt(func(c Config, v string) Config { c.CfgFile = v; return c })},
	{'w', "dir", "DIR", "Working directory",
		strOpt(func(c Config, v string) Config { c.Dir = v; return c })},
	{'v', "verbose", "", "Verbose output",
		boolOpt(func(c Config) Config { c.Verbose = true; return c })},
}

func findLong(name string) *Option {
	for i := range Options {
		if Options[i].Long == name {
			return &Options[i]
		}
	}
	return nil
}

func findShort(name byte) *Option {
	for i := range Options {
		if Options[i].Short == name {
			return &Options[i]
		}
	}
	return nil
}

// ParseArgs consumes the raw argument vector and yields the flag
// transformations in the order the flags appeared, plus the remaining
// positional tokens. Flags and positionals may be interleaved. On any
// malformed input it yields human-readable diagnostics instead, with
// no transformations or positional tokens.
func ParseArgs(args []string) (transforms []Transform, positional []string, diags []string) {
	addOpt := func(opt *Option, value string) {
		t, err := opt.apply(value)
		if err != nil {
			diags = append(diags, err.Error())
			return
		}
		transforms = append(transforms, t)
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)

		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			opt := findLong(name)
			switch {
			case opt == nil:
				diags = append(diags, fmt.Sprintf("unrecognized option --%s", name))
			case opt.Arg == "" && hasValue:
				diags = append(diags, fmt.Sprintf("option --%s does not take an argument", name))
			case opt.Arg != "" && !hasValue:
				i++
				if i >= len(args) {
					diags = append(diags, fmt.Sprintf("option --%s requires an argument %s", name, opt.Arg))
					continue
				}
				addOpt(opt, args[i])
			default:
				addOpt(opt, value)
			}

		case len(arg) > 1 && arg[0] == '-':
			// short options may be grouped; a value-taking option
			// consumes the rest of the token or the next argument
			for j := 1; j < len(arg); j++ {
				opt := findShort(arg[j])
				if opt == nil {
					diags = append(diags, fmt.Sprintf("unrecognized option -%c", arg[j]))
					continue
				}
				if opt.Arg == "" {
					addOpt(opt, "")
					continue
				}
				if j+1 < len(arg) {
					addOpt(opt, arg[j+1:])
				} else {
					i++
					if i >= len(args) {
						diags = append(diags, fmt.Sprintf("option -%c requires an argument %s", arg[j], opt.Arg))
						break
					}
					addOpt(opt, args[i])
				}
				break
			}

		default:
			positional = append(positional, arg)
		}
	}

	if len(diags) > 0 {
		return nil, nil, diags
	}
	return transforms, positional, nil
}

// OptionUsage returns the flag section of the usage text.
func OptionUsage() string {
	var b strings.Builder
	b.WriteString("Options:\n")
	for _, opt := range Options {
		left := fmt.Sprintf("-%c, --%s", opt.Short, opt.Long)
		if opt.Arg != "" {
			left += " " + opt.Arg
		}
		fmt.Fprintf(&b, "  %-28s %s\n", left, opt.Usage)
	}
	return b.String()
}
