// Package assembler implements the single-pass driver that turns a token
// stream into a hex-encoded EVM bytecode string, tracking operand-stack
// depth as it goes.
package assembler

import (
	"errors"
	"strings"

	"github.com/evmasm-go/evmasm/pkg/asmcore/asmerr"
	"github.com/evmasm-go/evmasm/pkg/asmcore/lexer"
	"github.com/evmasm-go/evmasm/pkg/asmcore/literal"
	"github.com/evmasm-go/evmasm/pkg/asmcore/opcode"
	"github.com/evmasm-go/evmasm/pkg/asmcore/token"
)

// state is the transient, per-call working set of the driver.
type state struct {
	out   strings.Builder
	depth int
}

// Assemble walks src's token stream exactly once and returns the uppercase
// hex-encoded bytecode it produces, or the first error encountered. On
// failure the partial output is discarded.
func Assemble(src string) (string, error) {
	lx := lexer.New(src)
	st := &state{}

	for {
		tok, err := lx.Next()
		if err != nil {
			return "", err
		}
		if tok.Type == token.EOF {
			break
		}
		if tok.Type != token.Mnemonic {
			return "", &asmerr.UnexpectedInstruction{Text: tok.Text}
		}
		if err := st.step(lx, tok); err != nil {
			return "", err
		}
	}

	return st.out.String(), nil
}

// step emits one opcode (and, for PUSH{n}, its literal operand), enforcing
// stack preconditions and updating depth.
func (st *state) step(lx *lexer.Lexer, tok token.Token) error {
	k := tok.Kind
	eff := k.Effect()

	if st.depth < eff.Required() {
		return &asmerr.NotEnoughValuesOnStack{
			Mnemonic: k.String(),
			Required: eff.Required(),
			Actual:   st.depth,
		}
	}

	st.writeByte(k.Byte())

	if k.IsPush() {
		if err := st.emitPushOperand(lx, k); err != nil {
			return err
		}
	}

	st.depth += eff.Net()
	return nil
}

// emitPushOperand consumes the literal token following a PUSH{n} mnemonic,
// validates its encoded width against n, and appends its zero-padded hex.
func (st *state) emitPushOperand(lx *lexer.Lexer, k opcode.Kind) error {
	operand, err := lx.Next()
	if err != nil {
		return err
	}
	if operand.Type != token.Decimal && operand.Type != token.Hex {
		if operand.Type == token.EOF {
			return &asmerr.ExpectedInstruction{Mnemonic: k.String()}
		}
		return &asmerr.UnexpectedInstruction{Text: operand.Text}
	}

	v, err := literal.Parse(operand.Text, operand.Type == token.Hex)
	if err != nil {
		var pe *asmerr.ParseError
		if errors.As(err, &pe) {
			pe.Line, pe.Col = operand.Line, operand.Col
		}
		return err
	}

	width := k.PushWidth()
	actual := literal.ByteWidth(v)
	if actual > width {
		return &asmerr.ValueTooBigForPushInstruction{
			Mnemonic:    k.String(),
			LiteralText: operand.Text,
			ActualBytes: actual,
		}
	}

	st.out.WriteString(literal.PadLeft(literal.HexDigits(v), width))
	return nil
}

func (st *state) writeByte(b byte) {
	const hexDigits = "0123456789ABCDEF"
	st.out.WriteByte(hexDigits[b>>4])
	st.out.WriteByte(hexDigits[b&0x0f])
}
