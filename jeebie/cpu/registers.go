package cpu

import (
	"fmt"

	"github.com/valerio/jeebie-bitunit/jeebie/bit"
)

// Register identifies one of the 8 bit registers.
type Register uint8

const (
	B Register = iota
	C
	D
	E
	H
	L
	F
	A
)

var registerNames = [...]string{B: "B", C: "C", D: "D", E: "E", H: "H", L: "L", F: "F", A: "A"}

func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("Register(%d)", uint8(r))
}

// Pair identifies one of the 16 bit register pairs.
type Pair uint8

const (
	AF Pair = iota
	BC
	DE
	HL
)

var pairNames = [...]string{AF: "AF", BC: "BC", DE: "DE", HL: "HL"}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// slot locates an 8 bit register inside its pair.
type slot struct {
	pair Pair
	high bool
}

// registerSlots is the only place that knows how registers are paired.
var registerSlots = [...]slot{
	A: {AF, true},
	F: {AF, false},
	B: {BC, true},
	C: {BC, false},
	D: {DE, true},
	E: {DE, false},
	H: {HL, true},
	L: {HL, false},
}

// PairOf returns the pair holding r and whether r is its high byte.
func PairOf(r Register) (Pair, bool) {
	s := registerSlots[r]
	return s.pair, s.high
}

// Registers is the LR35902 register file, stored as the four 16 bit pairs.
// The zero value has every register cleared.
type Registers struct {
	af uint16
	bc uint16
	de uint16
	hl uint16
}

func (r *Registers) pair(p Pair) *uint16 {
	switch p {
	case AF:
		return &r.af
	case BC:
		return &r.bc
	case DE:
		return &r.de
	case HL:
		return &r.hl
	}
	panic(fmt.Sprintf("cpu: undefined register pair %d", uint8(p)))
}

// Get returns the value of an 8 bit register.
func (r *Registers) Get(reg Register) uint8 {
	s := registerSlots[reg]
	value := *r.pair(s.pair)
	if s.high {
		return bit.High(value)
	}
	return bit.Low(value)
}

// Set writes an 8 bit register, leaving the other half of its pair untouched.
func (r *Registers) Set(reg Register, value uint8) {
	if reg == F {
		value &= flagMask
	}

	s := registerSlots[reg]
	p := r.pair(s.pair)
	if s.high {
		*p = bit.ReplaceHigh(*p, value)
		return
	}
	*p = bit.ReplaceLow(*p, value)
}

// Pair returns the value of a 16 bit register pair.
func (r *Registers) Pair(p Pair) uint16 {
	return *r.pair(p)
}

// SetPair writes a 16 bit register pair. The low nibble of F is always cleared.
func (r *Registers) SetPair(p Pair, value uint16) {
	if p == AF {
		value &= 0xFF00 | uint16(flagMask)
	}
	*r.pair(p) = value
}

// HL returns the address held by the HL pair.
func (r *Registers) HL() uint16 {
	return r.hl
}
