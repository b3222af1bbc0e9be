// Package asmerr defines the assembler's error taxonomy as distinct
// types implementing the error interface, one per failure mode, instead
// of a single stringly-typed error. Callers that need to distinguish
// failure kinds use errors.As.
package asmerr

import "fmt"

// ParseError reports a lexical failure: a lexeme the scanner could not
// classify into any recognized token, at the given 1-based line/column.
type ParseError struct {
	Lexeme string
	Line   int
	Col    int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: unrecognized token %q", e.Line, e.Col, e.Lexeme)
}

// ExpectedInstruction reports that the assembler reached the end of input
// while a PUSH{n} mnemonic was still waiting for its literal operand.
type ExpectedInstruction struct {
	Mnemonic string
}

func (e *ExpectedInstruction) Error() string {
	return fmt.Sprintf("expected an instruction to follow %q", e.Mnemonic)
}

// UnexpectedInstruction reports a token of the wrong kind: a bare numeric
// literal where an opcode mnemonic was expected, or a non-literal token
// where a PUSH{n} expected its operand.
type UnexpectedInstruction struct {
	Text string
}

func (e *UnexpectedInstruction) Error() string {
	return fmt.Sprintf("unexpected instruction: %q", e.Text)
}

// ValueTooBigForPushInstruction reports that a literal operand's encoded
// byte width exceeds the operand width implied by its PUSH{n} mnemonic.
type ValueTooBigForPushInstruction struct {
	Mnemonic    string
	LiteralText string
	ActualBytes int
}

func (e *ValueTooBigForPushInstruction) Error() string {
	return fmt.Sprintf("value %q is too big for instruction %q: encodes to %d bytes", e.LiteralText, e.Mnemonic, e.ActualBytes)
}

// NotEnoughValuesOnStack reports that an opcode's static stack
// precondition is not satisfiable given everything assembled before it.
type NotEnoughValuesOnStack struct {
	Mnemonic string
	Required int
	Actual   int
}

func (e *NotEnoughValuesOnStack) Error() string {
	return fmt.Sprintf("not enough values on stack for instruction %q: requires %d, have %d", e.Mnemonic, e.Required, e.Actual)
}

// ContractNotFound reports that a requested contract source file, or the
// directory to search for contracts, does not exist.
type ContractNotFound struct {
	Path string
}

func (e *ContractNotFound) Error() string {
	return fmt.Sprintf("contract not found: %s", e.Path)
}
