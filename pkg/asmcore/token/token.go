// Package token defines the lexical tokens produced by the lexer and
// consumed by the assembler driver.
package token

import "github.com/evmasm-go/evmasm/pkg/asmcore/opcode"

// Type identifies the syntactic category of a Token.
type Type int

const (
	// Invalid is the zero value; a well-formed lex never produces it.
	Invalid Type = iota
	// Mnemonic is an opcode keyword such as PUSH1 or ADD.
	Mnemonic
	// Decimal is a base-10 integer literal, e.g. 42.
	Decimal
	// Hex is a 0x-prefixed hexadecimal literal, e.g. 0x01.
	Hex
	// EOF marks the end of input.
	EOF
)

// Token is one lexical unit: its syntactic Type, the raw source Text, the
// resolved opcode.Kind when Type is Mnemonic, and the source position for
// error reporting.
type Token struct {
	Type Type
	Text string
	Kind opcode.Kind
	Line int
	Col  int
}

// String renders the token for diagnostics.
func (t Token) String() string {
	switch t.Type {
	case Mnemonic:
		return t.Kind.String()
	case Decimal, Hex:
		return t.Text
	case EOF:
		return "<eof>"
	default:
		return "<invalid:" + t.Text + ">"
	}
}
