package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	wtypes "gowallet/types"

	"github.com/spf13/viper"
)

// DefaultConfigFile is the config file name looked up relative to the
// working directory when no absolute path is given.
const DefaultConfigFile = "config.toml"

// DefaultServer is the wallet server address used when none is configured.
const DefaultServer = "localhost:4002"

// Config holds all client configuration. Flag transformations and the
// config file both produce plain field assignments on this struct, so
// replaying a transformation is always idempotent.
type Config struct {
	Keyring    string              `mapstructure:"keyring"`
	Count      int                 `mapstructure:"count"`
	Minconf    int                 `mapstructure:"minconf"`
	Fee        int                 `mapstructure:"fee"`
	RcptFee    bool                `mapstructure:"rcptfee"`
	Sign       bool                `mapstructure:"sign"`
	AddrType   wtypes.AddressClass `mapstructure:"addrtype"`
	Offline    bool                `mapstructure:"offline"`
	Reverse    bool                `mapstructure:"reverse"`
	Passphrase string              `mapstructure:"passphrase"`
	Format     wtypes.OutputFormat `mapstructure:"format"`
	Server     string              `mapstructure:"server"`
	Detach     bool                `mapstructure:"detach"`
	Testnet    bool                `mapstructure:"testnet"`
	Dir        string              `mapstructure:"dir"`
	CfgFile    string              `mapstructure:"cfgfile"`
	Verbose    bool                `mapstructure:"verbose"`
}

// Transform is a pure change to one configuration field. Transforms
// are replayed over the file-derived configuration, so they must not
// accumulate state across applications.
type Transform func(Config) Config

// DefaultConfig returns the built-in defaults every resolution starts from.
func DefaultConfig() Config {
	return Config{
		Keyring:  "main",
		Count:    5,
		Minconf:  6,
		Fee:      10000,
		Sign:     true,
		AddrType: wtypes.AddrExternal,
		Format:   wtypes.FormatHuman,
		Server:   DefaultServer,
		CfgFile:  DefaultConfigFile,
	}
}

// Network returns the chain selected by the testnet flag.
func (c *Config) Network() wtypes.Network {
	if c.Testnet {
		return wtypes.Testnet
	}
	return wtypes.Mainnet
}

// Resolve combines defaults, the optional config file and the flag
// transformations into the final configuration.
//
// The config file location depends on the working directory, which may
// itself be set by a flag, so resolution runs in two phases: the
// transforms are applied once over the defaults to locate the file,
// and then replayed in the same order over the file-derived
// configuration so that flags always win over file contents.
func Resolve(transforms []Transform) (*Config, string, error) {
	provisional := DefaultConfig()
	for _, t := range transforms {
		provisional = t(provisional)
	}

	workdir, err := effectiveWorkdir(&provisional)
	if err != nil {
		return nil, "", err
	}

	path := provisional.CfgFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(workdir, path)
	}

	final := provisional
	if _, err := os.Stat(path); err == nil {
		final, err = loadFile(path)
		if err != nil {
			return nil, "", err
		}
		for _, t := range transforms {
			final = t(final)
		}
	}

	if final.Dir == "" {
		final.Dir = workdir
	}
	return &final, workdir, nil
}

// effectiveWorkdir picks the directory flag value verbatim when set,
// and otherwise places a per-network directory under the platform
// application-data directory.
func effectiveWorkdir(c *Config) (string, error) {
	dir := c.Dir
	if dir == "" {
		dir = filepath.Join(AppDataDir(runtime.GOOS, os.Getenv), string(c.Network()))
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory %q: %w", dir, err)
	}
	return abs, nil
}

// loadFile parses the config file at path over a defaults-prefilled
// configuration: missing keys keep their defaults, unknown keys are
// ignored.
func loadFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
	}
	return cfg, nil
}
