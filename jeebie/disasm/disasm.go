// Package disasm turns CB prefixed bit operation opcodes into mnemonics and back.
package disasm

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valerio/jeebie-bitunit/jeebie/cpu"
)

var (
	// ErrUnknownMnemonic indicates an instruction other than BIT, RES or SET.
	ErrUnknownMnemonic = errors.New("unknown mnemonic")

	// ErrInvalidBit indicates a bit index outside 0-7.
	ErrInvalidBit = errors.New("bit index must be between 0 and 7")

	// ErrInvalidOperand indicates an operand other than B, C, D, E, H, L, (HL) or A.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrNotBitOperation indicates a raw opcode in the rotate and shift block.
	ErrNotBitOperation = errors.New("opcode is not a bit operation")
)

// Mnemonic returns the assembly text of the byte following the 0xCB prefix.
func Mnemonic(opcode uint8) string {
	inst, ok := cpu.Decode(opcode)
	if !ok {
		return fmt.Sprintf("DB 0xCB,0x%02X", opcode)
	}
	return inst.String()
}

// Parse accepts either a mnemonic ("BIT 7,A", "res 3, (hl)") or a raw
// opcode ("0x7F", "7F", "CB7F") and returns the byte following the prefix.
func Parse(text string) (uint8, error) {
	text = strings.TrimSpace(text)
	if opcode, ok := parseOpcode(text); ok {
		if _, valid := cpu.Decode(opcode); !valid {
			return 0, fmt.Errorf("%w: 0xCB%02X", ErrNotBitOperation, opcode)
		}
		return opcode, nil
	}

	inst, err := parseMnemonic(text)
	if err != nil {
		return 0, err
	}
	return cpu.Encode(inst), nil
}

func parseOpcode(text string) (uint8, bool) {
	upper := strings.ToUpper(text)
	upper = strings.TrimPrefix(upper, "0X")
	if len(upper) == 4 && strings.HasPrefix(upper, "CB") {
		upper = upper[2:]
	}
	if len(upper) != 2 {
		return 0, false
	}
	value, err := strconv.ParseUint(upper, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(value), true
}

func parseMnemonic(text string) (cpu.Instruction, error) {
	name, rest, _ := strings.Cut(strings.ToUpper(text), " ")

	var op cpu.Op
	switch name {
	case "BIT":
		op = cpu.OpTest
	case "RES":
		op = cpu.OpReset
	case "SET":
		op = cpu.OpSet
	default:
		return cpu.Instruction{}, fmt.Errorf("%w: %q", ErrUnknownMnemonic, name)
	}

	bitText, operandText, found := strings.Cut(rest, ",")
	if !found {
		return cpu.Instruction{}, fmt.Errorf("%w: missing operand in %q", ErrInvalidOperand, text)
	}

	index, err := strconv.ParseUint(strings.TrimSpace(bitText), 10, 8)
	if err != nil || index > 7 {
		return cpu.Instruction{}, fmt.Errorf("%w: %q", ErrInvalidBit, strings.TrimSpace(bitText))
	}

	target, err := parseTarget(strings.TrimSpace(operandText))
	if err != nil {
		return cpu.Instruction{}, err
	}

	return cpu.Instruction{Op: op, Bit: uint8(index), Target: target}, nil
}

func parseTarget(text string) (cpu.Target, error) {
	compact := strings.ReplaceAll(text, " ", "")
	for _, t := range cpu.Operands() {
		if t.String() == compact {
			return t, nil
		}
	}
	return cpu.Target{}, fmt.Errorf("%w: %q", ErrInvalidOperand, text)
}

// Listing writes one line per bit operation: opcode, mnemonic and cycles.
func Listing(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-6s  %-12s  %s\n", "OPCODE", "MNEMONIC", "CYCLES"); err != nil {
		return err
	}

	for op := 0; op < 256; op++ {
		inst, ok := cpu.Decode(uint8(op))
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "CB%02X    %-12s  %d\n", op, inst, inst.Cycles()); err != nil {
			return err
		}
	}
	return nil
}
