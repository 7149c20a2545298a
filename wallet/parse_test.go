package wallet

import (
	"reflect"
	"testing"

	wtypes "gowallet/types"
)

// generator point of secp256k1, compressed
const validKey = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 100000000, false},
		{"1.5", 150000000, false},
		{"0.00000001", 1, false},
		{"0", 0, false},
		{"0.000000001", 0, true}, // below base-unit precision
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseRecipients(t *testing.T) {
	got, err := ParseRecipients([]string{"addrA", "1", "addrB", "0.5"})
	if err != nil {
		t.Fatal(err)
	}
	want := []wtypes.Recipient{
		{Address: "addrA", Amount: 100000000},
		{Address: "addrB", Amount: 50000000},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("recipients = %v, want %v", got, want)
	}

	if _, err := ParseRecipients([]string{"addrA"}); err == nil {
		t.Error("expected error for odd token count")
	}
	if _, err := ParseRecipients(nil); err == nil {
		t.Error("expected error for empty recipients")
	}
}

func TestValidatePubKeys(t *testing.T) {
	if err := ValidatePubKeys([]string{validKey}); err != nil {
		t.Errorf("valid key rejected: %v", err)
	}
	if err := ValidatePubKeys([]string{"zz"}); err == nil {
		t.Error("non-hex key accepted")
	}
	if err := ValidatePubKeys([]string{"02" + "00000000000000000000000000000000" +
		"00000000000000000000000000000000"}); err == nil {
		t.Error("off-curve key accepted")
	}
	if err := ValidatePubKeys(nil); err != nil {
		t.Errorf("empty key list rejected: %v", err)
	}
}

func TestParsePage(t *testing.T) {
	if page, err := ParsePage(nil); err != nil || page != 0 {
		t.Errorf("ParsePage(nil) = %d, %v", page, err)
	}
	if page, err := ParsePage([]string{"2"}); err != nil || page != 2 {
		t.Errorf("ParsePage([2]) = %d, %v", page, err)
	}
	if _, err := ParsePage([]string{"x"}); err == nil {
		t.Error("non-numeric page accepted")
	}
	if _, err := ParsePage([]string{"-1"}); err == nil {
		t.Error("negative page accepted")
	}
	if _, err := ParsePage([]string{"1", "2"}); err == nil {
		t.Error("extra page tokens accepted")
	}
}
