// Package cpu implements the bit test, reset and set instruction family of
// the Sharp LR35902 and the register file it operates on.
package cpu

// Memory is the byte addressable storage reached through (HL).
type Memory interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// Processor is the access the bit operation unit needs from whoever owns
// the CPU state.
type Processor interface {
	ReadByte(t Target) uint8
	WriteByte(t Target, value uint8)
	IsSetFlag(flag Flag) bool
	SetFlagToCondition(flag Flag, condition bool)
}

// State owns the register file and a cycle counter, and borrows memory.
// It is not safe for concurrent use.
type State struct {
	Registers

	memory Memory
	cycles uint64
}

// NewState returns a State with cleared registers on top of mem.
func NewState(mem Memory) *State {
	return &State{memory: mem}
}

// ReadByte reads the register or memory byte named by t.
func (s *State) ReadByte(t Target) uint8 {
	if t.memory {
		return s.memory.Read(s.HL())
	}
	return s.Get(t.reg)
}

// WriteByte writes the register or memory byte named by t.
func (s *State) WriteByte(t Target, value uint8) {
	if t.memory {
		s.memory.Write(s.HL(), value)
		return
	}
	s.Set(t.reg, value)
}

// Exec runs the CB prefixed opcode and accounts its cycles.
// Returns the amount of cycles that execution has taken.
func (s *State) Exec(opcode uint8) int {
	cycles := Execute(opcode, s)
	s.cycles += uint64(cycles)
	return cycles
}

// Cycles returns the total of cycles spent in Exec.
func (s *State) Cycles() uint64 {
	return s.cycles
}
