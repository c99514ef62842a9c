package cpu

// Target is the operand of a bit operation: either an 8 bit register, or the
// memory byte at the address held by HL.
type Target struct {
	memory bool
	reg    Register
}

// MemoryHL addresses the byte at (HL).
var MemoryHL = Target{memory: true}

// RegisterTarget addresses an 8 bit register.
func RegisterTarget(reg Register) Target {
	return Target{reg: reg}
}

// IsMemory reports whether the target is (HL).
func (t Target) IsMemory() bool {
	return t.memory
}

// Register returns the targeted register. Only meaningful when IsMemory is false.
func (t Target) Register() Register {
	return t.reg
}

func (t Target) String() string {
	if t.memory {
		return "(HL)"
	}
	return t.reg.String()
}

// operandTargets maps the 3 low bits of a CB opcode to its operand.
var operandTargets = [8]Target{
	RegisterTarget(B),
	RegisterTarget(C),
	RegisterTarget(D),
	RegisterTarget(E),
	RegisterTarget(H),
	RegisterTarget(L),
	MemoryHL,
	RegisterTarget(A),
}

// Operands returns the 8 targets in opcode encoding order: B, C, D, E, H, L, (HL), A.
func Operands() [8]Target {
	return operandTargets
}

// operandIndex is the inverse of operandTargets. F is not encodable.
func operandIndex(t Target) (uint8, bool) {
	for i, candidate := range operandTargets {
		if candidate == t {
			return uint8(i), true
		}
	}
	return 0, false
}
