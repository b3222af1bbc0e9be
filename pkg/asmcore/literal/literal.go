// Package literal encodes decimal and hexadecimal operand tokens into the
// hex-digit strings PUSH instructions embed, built on holiman/uint256 for
// 256-bit arithmetic rather than math/big — the same library go-ethereum
// and the wider corpus use for EVM words.
package literal

import (
	"fmt"
	"strings"

	"github.com/evmasm-go/evmasm/pkg/asmcore/asmerr"
	"github.com/holiman/uint256"
)

// Literal is a parsed decimal or hexadecimal operand. Hex literals carry
// their source digit text alongside the parsed value because their byte
// width is measured from the text (every hex digit the author wrote
// counts, including non-significant leading zeros), while decimal
// literals are measured from the parsed value's minimal representation.
type Literal struct {
	isHex  bool
	digits string // hex literals only: text after "0x", uppercased, unstripped
	value  *uint256.Int
}

// Parse converts a literal token's text into a Literal. For hex literals,
// text is expected in its original "0x..." form. A literal that does not
// fit a 256-bit word (e.g. more than 32 bytes) fails to parse here and is
// reported as *asmerr.ParseError, the same failure mode the lexer itself
// uses for an unrecognized lexeme — it never reaches the PUSH validator.
// Leading zero digits of a hex literal are accepted: they are stripped
// before the value is parsed (SetFromHex rejects them) and kept in the
// digit text.
func Parse(text string, isHex bool) (*Literal, error) {
	v := new(uint256.Int)
	if isHex {
		digits := text[2:]
		significant := strings.TrimLeft(digits, "0")
		if significant == "" {
			significant = "0"
		}
		if err := v.SetFromHex("0x" + significant); err != nil {
			return nil, &asmerr.ParseError{Lexeme: text}
		}
		return &Literal{isHex: true, digits: strings.ToUpper(digits), value: v}, nil
	}
	if err := v.SetFromDecimal(text); err != nil {
		return nil, &asmerr.ParseError{Lexeme: text}
	}
	return &Literal{value: v}, nil
}

// ByteWidth returns the number of bytes the literal's author-visible text
// encodes. For a hex literal this is ⌈hex_digit_count/2⌉ over the raw
// digit text (so "0x0002" measures 2 bytes, not 1), matching a PUSH
// validator that checks what was written, not what the value trims to.
// For a decimal literal it is the minimum number of bytes needed to
// represent the parsed 256-bit integer — except that zero measures 0
// bytes by convention (see the zero-operand PUSH convention).
func ByteWidth(lit *Literal) int {
	if lit.isHex {
		return (len(lit.digits) + 1) / 2
	}
	if lit.value.IsZero() {
		return 0
	}
	return lit.value.ByteLen()
}

// HexDigits returns the literal's uppercase hex digit string as the PUSH
// operand encoder embeds it: a hex literal's own digits, unstripped of
// non-significant leading zeros; a decimal literal's minimal big-endian
// encoding (zero encodes to the empty string).
func HexDigits(lit *Literal) string {
	if lit.isHex {
		return lit.digits
	}
	if lit.value.IsZero() {
		return ""
	}
	return strings.ToUpper(fmt.Sprintf("%x", lit.value.Bytes()))
}

// PadLeft prepends zero characters to digits until it spans exactly
// 2*targetBytes hex characters.
func PadLeft(digits string, targetBytes int) string {
	want := targetBytes * 2
	if len(digits) >= want {
		return digits
	}
	return strings.Repeat("0", want-len(digits)) + digits
}
