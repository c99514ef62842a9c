package cpu

import "fmt"

// assertBit panics on a bit index outside 0-7 when built with -tags debug.
func assertBit(index uint8) {
	if assertionsEnabled && index > 7 {
		panic(fmt.Sprintf("cpu: bit index %d out of range", index))
	}
}

// assertTarget panics on a register target that is not a defined register.
func assertTarget(t Target) {
	if assertionsEnabled && !t.memory && int(t.reg) >= len(registerSlots) {
		panic(fmt.Sprintf("cpu: undefined register %d", uint8(t.reg)))
	}
}
