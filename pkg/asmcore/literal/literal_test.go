package literal

import (
	"errors"
	"strings"
	"testing"

	"github.com/evmasm-go/evmasm/pkg/asmcore/asmerr"
)

func TestByteWidthZeroIsZero(t *testing.T) {
	v, err := Parse("0", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w := ByteWidth(v); w != 0 {
		t.Errorf("ByteWidth(0) = %d, want 0", w)
	}
}

func TestByteWidthMinimal(t *testing.T) {
	v, err := Parse("0x0102030405", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w := ByteWidth(v); w != 5 {
		t.Errorf("ByteWidth(0x0102030405) = %d, want 5", w)
	}
}

func TestByteWidthCountsTextDigitsNotMinimalValue(t *testing.T) {
	// 9 hex digits after the prefix, ceil(9/2) = 5 bytes, even though the
	// value itself (0x10203040) would minimally fit in 4.
	v, err := Parse("0x010203040", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w := ByteWidth(v); w != 5 {
		t.Errorf("ByteWidth(0x010203040) = %d, want 5", w)
	}
}

func TestByteWidthHexLeadingZeroPairCounts(t *testing.T) {
	// 4 hex digits, ceil(4/2) = 2 bytes, even though the value (2) fits in 1.
	v, err := Parse("0x0002", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w := ByteWidth(v); w != 2 {
		t.Errorf("ByteWidth(0x0002) = %d, want 2", w)
	}
}

func TestHexDigitsUppercaseMinimal(t *testing.T) {
	v, err := Parse("0x0102030405", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := HexDigits(v); got != "0102030405" {
		t.Errorf("HexDigits = %q, want %q", got, "0102030405")
	}
}

func TestHexDigitsPreservesLeadingZeros(t *testing.T) {
	v, err := Parse("0x010203040", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := HexDigits(v); got != "010203040" {
		t.Errorf("HexDigits = %q, want %q", got, "010203040")
	}
}

func TestPadLeft(t *testing.T) {
	if got := PadLeft("01", 2); got != "0001" {
		t.Errorf("PadLeft(01,2) = %q, want 0001", got)
	}
	if got := PadLeft("", 1); got != "00" {
		t.Errorf("PadLeft(\"\",1) = %q, want 00", got)
	}
}

func TestPadLeftHandlesOddDigitCount(t *testing.T) {
	if got := PadLeft("010203040", 5); got != "0010203040" {
		t.Errorf("PadLeft(010203040,5) = %q, want 0010203040", got)
	}
}

func TestParseOverwideHexLiteralIsParseError(t *testing.T) {
	// 66 hex digits = 33 bytes, one more than a 256-bit word holds.
	text := "0x" + strings.Repeat("FF", 33)
	_, err := Parse(text, true)
	if err == nil {
		t.Fatal("expected an error for a 33-byte literal")
	}
	var target *asmerr.ParseError
	if !errors.As(err, &target) {
		t.Fatalf("Parse error = %v, want *asmerr.ParseError", err)
	}
}

func TestParseDecimal(t *testing.T) {
	v, err := Parse("255", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := HexDigits(v); got != "FF" {
		t.Errorf("HexDigits(255) = %q, want FF", got)
	}
}
