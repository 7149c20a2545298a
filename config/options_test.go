package config

import (
	"reflect"
	"strings"
	"testing"

	wtypes "gowallet/types"
)

func apply(t *testing.T, transforms []Transform) Config {
	t.Helper()
	cfg := DefaultConfig()
	for _, tr := range transforms {
		cfg = tr(cfg)
	}
	return cfg
}

func TestParseArgsLongAndShort(t *testing.T) {
	transforms, positional, diags := ParseArgs([]string{
		"-k", "personal", "--count", "10", "balance", "savings",
	})
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !reflect.DeepEqual(positional, []string{"balance", "savings"}) {
		t.Fatalf("positional = %v", positional)
	}
	cfg := apply(t, transforms)
	if cfg.Keyring != "personal" {
		t.Errorf("Keyring = %q, want %q", cfg.Keyring, "personal")
	}
	if cfg.Count != 10 {
		t.Errorf("Count = %d, want 10", cfg.Count)
	}
}

func TestParseArgsEqualsForm(t *testing.T) {
	transforms, _, diags := ParseArgs([]string{"--server=example.com:9000"})
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if cfg := apply(t, transforms); cfg.Server != "example.com:9000" {
		t.Errorf("Server = %q", cfg.Server)
	}
}

func TestParseArgsGroupedToggles(t *testing.T) {
	transforms, _, diags := ParseArgs([]string{"-ot"})
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	cfg := apply(t, transforms)
	if !cfg.Offline || !cfg.Testnet {
		t.Errorf("Offline = %v, Testnet = %v, want both true", cfg.Offline, cfg.Testnet)
	}
}

func TestParseArgsShortValueAttached(t *testing.T) {
	transforms, _, diags := ParseArgs([]string{"-kpersonal"})
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if cfg := apply(t, transforms); cfg.Keyring != "personal" {
		t.Errorf("Keyring = %q", cfg.Keyring)
	}
}

func TestParseArgsOrderMatters(t *testing.T) {
	transforms, _, _ := ParseArgs([]string{"-j", "-y"})
	if cfg := apply(t, transforms); cfg.Format != wtypes.FormatYAML {
		t.Errorf("Format = %q, want yaml (last flag wins)", cfg.Format)
	}
	transforms, _, _ = ParseArgs([]string{"-y", "-j"})
	if cfg := apply(t, transforms); cfg.Format != wtypes.FormatJSON {
		t.Errorf("Format = %q, want json (last flag wins)", cfg.Format)
	}
}

func TestParseArgsTerminator(t *testing.T) {
	transforms, positional, diags := ParseArgs([]string{"-t", "--", "-k", "foo"})
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !reflect.DeepEqual(positional, []string{"-k", "foo"}) {
		t.Fatalf("positional = %v", positional)
	}
	if cfg := apply(t, transforms); cfg.Keyring != DefaultConfig().Keyring {
		t.Errorf("Keyring changed by token after --")
	}
}

func TestParseArgsDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown long", []string{"--bogus"}, "unrecognized option --bogus"},
		{"unknown short", []string{"-z"}, "unrecognized option -z"},
		{"missing value long", []string{"--keyring"}, "requires an argument"},
		{"missing value short", []string{"-k"}, "requires an argument"},
		{"bad numeric", []string{"--count", "abc"}, "could not parse"},
		{"toggle with value", []string{"--testnet=1"}, "does not take an argument"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transforms, positional, diags := ParseArgs(tt.args)
			if transforms != nil || positional != nil {
				t.Errorf("transforms/positional not nil on malformed input")
			}
			if len(diags) == 0 {
				t.Fatal("expected diagnostics")
			}
			if !strings.Contains(diags[0], tt.want) {
				t.Errorf("diagnostic %q does not contain %q", diags[0], tt.want)
			}
		})
	}
}

func TestParseArgsCollectsAllDiagnostics(t *testing.T) {
	_, _, diags := ParseArgs([]string{"--bogus", "-c", "nan"})
	if len(diags) != 2 {
		t.Fatalf("diagnostics = %v, want 2 entries", diags)
	}
}

func TestTransformsIdempotent(t *testing.T) {
	// Resolve replays every transformation over the file-derived
	// configuration, so double application must equal single
	// application for each table entry.
	args := []string{
		"-k", "a", "-c", "1", "-m", "2", "-f", "3", "-R", "-S", "-i", "-o", "-r",
		"-p", "x", "-j", "-y", "-s", "h:1", "-d", "-t", "-g", "f", "-w", "d", "-v",
	}
	transforms, _, diags := ParseArgs(args)
	if diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	once := apply(t, transforms)
	twice := once
	for _, tr := range transforms {
		twice = tr(twice)
	}
	if once != twice {
		t.Errorf("double application changed the configuration:\nonce  %+v\ntwice %+v", once, twice)
	}
}

func TestOptionUsageListsEveryFlag(t *testing.T) {
	usage := OptionUsage()
	for _, opt := range Options {
		if !strings.Contains(usage, "--"+opt.Long) {
			t.Errorf("usage text missing --%s", opt.Long)
		}
	}
}
