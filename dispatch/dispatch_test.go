package dispatch

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"gowallet/config"
)

// stubTable returns the real grammar with every handler replaced by a
// recorder, so matching is exercised against the shipped table.
func stubTable(calls map[string][]string) []Command {
	table := Table()
	for i := range table {
		keyword := table[i].Keyword
		table[i].Run = func(_ *config.Config, args []string) error {
			calls[keyword] = append([]string{}, args...)
			return nil
		}
	}
	return table
}

func dispatchTokens(t *testing.T, tokens []string) (map[string][]string, string) {
	t.Helper()
	calls := map[string][]string{}
	var buf bytes.Buffer
	cfg := config.DefaultConfig()
	if err := Dispatch(&cfg, tokens, stubTable(calls), &buf); err != nil {
		t.Fatalf("Dispatch(%v) = %v", tokens, err)
	}
	return calls, buf.String()
}

func TestDispatchFixedArity(t *testing.T) {
	calls, _ := dispatchTokens(t, []string{"newacc", "foo"})
	if !reflect.DeepEqual(calls["newacc"], []string{"foo"}) {
		t.Errorf("newacc args = %v, want [foo]", calls["newacc"])
	}
}

func TestDispatchVariadic(t *testing.T) {
	tokens := []string{"newms", "foo", "2", "3", "keyA", "keyB", "keyC"}
	calls, _ := dispatchTokens(t, tokens)
	if !reflect.DeepEqual(calls["newms"], tokens[1:]) {
		t.Errorf("newms args = %v, want %v", calls["newms"], tokens[1:])
	}
}

func TestDispatchVariadicPrefixOnly(t *testing.T) {
	calls, _ := dispatchTokens(t, []string{"newkeyring", "savings"})
	if !reflect.DeepEqual(calls["newkeyring"], []string{"savings"}) {
		t.Errorf("newkeyring args = %v", calls["newkeyring"])
	}
}

func TestDispatchOptionalSuffix(t *testing.T) {
	calls, _ := dispatchTokens(t, []string{"list", "foo"})
	if !reflect.DeepEqual(calls["list"], []string{"foo"}) {
		t.Errorf("list args = %v, want [foo]", calls["list"])
	}
	calls, _ = dispatchTokens(t, []string{"list", "foo", "2"})
	if !reflect.DeepEqual(calls["list"], []string{"foo", "2"}) {
		t.Errorf("list args = %v, want [foo 2]", calls["list"])
	}
}

func TestDispatchZeroArg(t *testing.T) {
	calls, _ := dispatchTokens(t, []string{"status"})
	if got, ok := calls["status"]; !ok || len(got) != 0 {
		t.Errorf("status call = %v, %v", got, ok)
	}
}

func TestDispatchRescan(t *testing.T) {
	calls, _ := dispatchTokens(t, []string{"rescan"})
	if _, ok := calls["rescan"]; !ok {
		t.Error("bare rescan did not match")
	}
	calls, _ = dispatchTokens(t, []string{"rescan", "1700000000"})
	if !reflect.DeepEqual(calls["rescan"], []string{"1700000000"}) {
		t.Errorf("rescan args = %v", calls["rescan"])
	}
}

func TestDispatchHelp(t *testing.T) {
	for _, tokens := range [][]string{nil, {"help"}} {
		calls, out := dispatchTokens(t, tokens)
		if len(calls) != 0 {
			t.Errorf("tokens %v invoked handlers: %v", tokens, calls)
		}
		if !strings.Contains(out, "Usage:") {
			t.Errorf("tokens %v did not print usage", tokens)
		}
	}
}

func TestDispatchInvalidCommand(t *testing.T) {
	calls, out := dispatchTokens(t, []string{"bogus"})
	if len(calls) != 0 {
		t.Errorf("bogus invoked handlers: %v", calls)
	}
	if !strings.Contains(out, "Invalid command") || !strings.Contains(out, "Usage:") {
		t.Errorf("output missing diagnostic or usage:\n%s", out)
	}
}

func TestDispatchArityMismatch(t *testing.T) {
	// newacc is fixed arity 1; two arguments must not match
	calls, out := dispatchTokens(t, []string{"newacc", "foo", "bar"})
	if len(calls) != 0 {
		t.Errorf("arity mismatch invoked handlers: %v", calls)
	}
	if !strings.Contains(out, "Invalid command") {
		t.Error("arity mismatch did not print diagnostic")
	}
}

func TestTableKeywordsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Table() {
		if seen[c.Keyword] {
			t.Errorf("duplicate keyword %q", c.Keyword)
		}
		seen[c.Keyword] = true
	}
}

func TestUsageListsEveryCommand(t *testing.T) {
	var buf bytes.Buffer
	table := Table()
	PrintUsage(&buf, table)
	out := buf.String()
	for _, c := range table {
		if !strings.Contains(out, c.Keyword) {
			t.Errorf("usage text missing command %q", c.Keyword)
		}
	}
}
