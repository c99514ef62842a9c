package cpu

import "fmt"

// Op is the kind of bit operation.
type Op uint8

const (
	OpTest Op = iota
	OpReset
	OpSet
)

var opMnemonics = [...]string{OpTest: "BIT", OpReset: "RES", OpSet: "SET"}

func (o Op) String() string {
	if int(o) < len(opMnemonics) {
		return opMnemonics[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Ops returns every operation kind in opcode order.
func Ops() []Op {
	return []Op{OpTest, OpReset, OpSet}
}

// Instruction is a decoded bit operation.
type Instruction struct {
	Op     Op
	Bit    uint8
	Target Target
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s %d,%s", i.Op, i.Bit, i.Target)
}

// Cycles returns the machine cycles the instruction takes.
func (i Instruction) Cycles() int {
	if !i.Target.memory {
		return registerCycles
	}
	if i.Op == OpTest {
		return memoryReadCycles
	}
	return memoryWriteCycles
}

// Opcode represents a function that executes a CB prefixed opcode
type Opcode func(Processor) int

type entry struct {
	inst  Instruction
	valid bool
	exec  Opcode
}

// opcodesCB is indexed by the byte following the 0xCB prefix.
var opcodesCB = buildTable()

// Encoding: 01bbbrrr BIT, 10bbbrrr RES, 11bbbrrr SET. 00xxxxxx holds the
// rotate and shift family, which has no entry here.
func buildTable() [256]entry {
	var table [256]entry

	for i := range table {
		opcode := uint8(i)
		table[i].exec = func(Processor) int {
			panic(fmt.Sprintf("cpu: opcode 0xCB%02X is not a bit operation", opcode))
		}
	}

	run := [...]func(uint8, Target, Processor) int{OpTest: Test, OpReset: Reset, OpSet: Set}

	for _, op := range Ops() {
		for b := uint8(0); b < 8; b++ {
			for _, t := range operandTargets {
				inst := Instruction{Op: op, Bit: b, Target: t}
				fn, index, target := run[op], b, t
				table[Encode(inst)] = entry{
					inst:  inst,
					valid: true,
					exec:  func(p Processor) int { return fn(index, target, p) },
				}
			}
		}
	}

	return table
}

// Encode returns the CB opcode for the instruction. Panics if the
// instruction cannot be encoded (bit > 7, F or an undefined register).
func Encode(i Instruction) uint8 {
	operand, ok := operandIndex(i.Target)
	if !ok || i.Bit > 7 || int(i.Op) >= len(opMnemonics) {
		panic(fmt.Sprintf("cpu: cannot encode %s", i))
	}
	return (uint8(i.Op)+1)<<6 | i.Bit<<3 | operand
}

// Decode returns the bit operation identified by the byte following the
// 0xCB prefix. The second value is false for the rotate and shift block.
func Decode(opcode uint8) (Instruction, bool) {
	e := opcodesCB[opcode]
	return e.inst, e.valid
}

// Execute runs the CB prefixed opcode against p and returns its cycles.
// Opcodes outside the bit operation block panic.
func Execute(opcode uint8, p Processor) int {
	return opcodesCB[opcode].exec(p)
}
