package cpu

import "github.com/valerio/jeebie-bitunit/jeebie/bit"

// Cycle costs, in machine cycles. (HL) operands pay one bus access per
// read or write on top of the register cost.
const (
	registerCycles    = 2
	memoryReadCycles  = 3
	memoryWriteCycles = 4
)

// Test sets the zero flag if the bit at index is 0 in the target, resets
// subtract and sets half carry. Carry and the operand are left untouched.
func Test(index uint8, t Target, p Processor) int {
	assertBit(index)
	assertTarget(t)

	value := p.ReadByte(t)
	p.SetFlagToCondition(ZeroFlag, !bit.IsSet(index, value))
	p.SetFlagToCondition(SubFlag, false)
	p.SetFlagToCondition(HalfCarryFlag, true)

	if t.memory {
		return memoryReadCycles
	}
	return registerCycles
}

// Reset clears the bit at index in the target. Flags are not affected.
func Reset(index uint8, t Target, p Processor) int {
	assertBit(index)
	assertTarget(t)

	p.WriteByte(t, bit.Reset(index, p.ReadByte(t)))
	return writeCycles(t)
}

// Set sets the bit at index in the target. Flags are not affected.
func Set(index uint8, t Target, p Processor) int {
	assertBit(index)
	assertTarget(t)

	p.WriteByte(t, bit.Set(index, p.ReadByte(t)))
	return writeCycles(t)
}

func writeCycles(t Target) int {
	if t.memory {
		return memoryWriteCycles
	}
	return registerCycles
}
