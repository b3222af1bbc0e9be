package opcode

import (
	"testing"

	"github.com/ethereum/go-ethereum/core/vm"
)

func TestByteMatchesGoEthereum(t *testing.T) {
	cases := []struct {
		k    Kind
		want vm.OpCode
	}{
		{Stop, vm.STOP},
		{Selfbalance, vm.SELFBALANCE},
		{Keccak256, vm.KECCAK256},
		{Push1, vm.PUSH1},
		{Swap16, vm.SWAP16},
		{Selfdestruct, vm.SELFDESTRUCT},
	}
	for _, c := range cases {
		if got := c.k.Byte(); got != byte(c.want) {
			t.Errorf("%s.Byte() = 0x%02X, want 0x%02X (vm.%s)", c.k, got, byte(c.want), c.want)
		}
	}
}

func TestByteOfficialAssignment(t *testing.T) {
	cases := []struct {
		k    Kind
		want byte
	}{
		{Stop, 0x00},
		{Add, 0x01},
		{Signextend, 0x0B},
		{Keccak256, 0x20},
		{Selfbalance, 0x47}, // official assignment, not the 0x67 divergence
		{Pop, 0x50},
		{Jumpdest, 0x5B},
		{Push1, 0x60},
		{Push32, 0x7F},
		{Dup1, 0x80},
		{Dup16, 0x8F},
		{Swap1, 0x90},
		{Swap16, 0x9F},
		{Log4, 0xA4},
		{Create, 0xF0},
		{Staticcall, 0xFA},
		{Revert, 0xFD},
		{Selfdestruct, 0xFF},
		{Invalid, 0xFE},
	}
	for _, c := range cases {
		if got := c.k.Byte(); got != c.want {
			t.Errorf("%s.Byte() = 0x%02X, want 0x%02X", c.k, got, c.want)
		}
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	for _, name := range []string{"push1", "PUSH1", "Push1"} {
		k, ok := Lookup(name)
		if !ok || k != Push1 {
			t.Errorf("Lookup(%q) = (%v, %v), want (Push1, true)", name, k, ok)
		}
	}
}

func TestLookupKeccakSha3Alias(t *testing.T) {
	k1, ok1 := Lookup("KECCAK256")
	k2, ok2 := Lookup("SHA3")
	if !ok1 || !ok2 || k1 != Keccak256 || k2 != Keccak256 {
		t.Fatalf("KECCAK256/SHA3 must both resolve to Keccak256, got (%v,%v) (%v,%v)", k1, ok1, k2, ok2)
	}
}

func TestLookupInvalidIsWired(t *testing.T) {
	k, ok := Lookup("invalid")
	if !ok || k != Invalid {
		t.Fatalf("Lookup(invalid) = (%v, %v), want (Invalid, true)", k, ok)
	}
	if got := k.Byte(); got != 0xFE {
		t.Errorf("Invalid.Byte() = 0x%02X, want 0xFE", got)
	}
	if got := k.Effect(); got.Pops != 0 || got.Pushes != 0 || got.MinDepth != 0 {
		t.Errorf("Invalid.Effect() = %+v, want {0 0 0}", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("NOTANOPCODE"); ok {
		t.Error("Lookup(NOTANOPCODE) should fail")
	}
}

func TestSwapMinDepthIsKPlus1(t *testing.T) {
	if got := Swap1.Effect().Required(); got != 2 {
		t.Errorf("SWAP1 required depth = %d, want 2", got)
	}
	if got := Swap16.Effect().Required(); got != 17 {
		t.Errorf("SWAP16 required depth = %d, want 17", got)
	}
}

func TestDupMinDepthIsK(t *testing.T) {
	if got := Dup1.Effect().Required(); got != 1 {
		t.Errorf("DUP1 required depth = %d, want 1", got)
	}
	if got := Dup16.Effect().Required(); got != 16 {
		t.Errorf("DUP16 required depth = %d, want 16", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for name, k := range byName {
		if name == "SHA3" {
			continue // alias, canonical name is KECCAK256
		}
		if k.String() != name {
			t.Errorf("%v.String() = %q, want %q", k, k.String(), name)
		}
	}
}

func TestPushWidth(t *testing.T) {
	if Push1.PushWidth() != 1 {
		t.Errorf("PUSH1 width = %d, want 1", Push1.PushWidth())
	}
	if Push32.PushWidth() != 32 {
		t.Errorf("PUSH32 width = %d, want 32", Push32.PushWidth())
	}
}
