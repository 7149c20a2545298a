package wtypes

// Network represents the chain a wallet operates on
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// ValidNetworks contains all valid network types
var ValidNetworks = map[Network]bool{
	Mainnet: true,
	Testnet: true,
}

// OutputFormat selects how command results are rendered
type OutputFormat string

const (
	FormatHuman OutputFormat = "human"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// AddressClass selects which address chain new addresses come from
type AddressClass string

const (
	AddrExternal AddressClass = "external"
	AddrInternal AddressClass = "internal"
)
