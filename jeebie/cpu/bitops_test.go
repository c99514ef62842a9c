package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/jeebie-bitunit/jeebie/memory"
)

func newTestState() (*State, *memory.RAM) {
	ram := memory.New()
	return NewState(ram), ram
}

// recorder counts the accesses made through the Processor interface.
type recorder struct {
	*State
	reads, writes int
}

func (r *recorder) ReadByte(t Target) uint8 {
	r.reads++
	return r.State.ReadByte(t)
}

func (r *recorder) WriteByte(t Target, value uint8) {
	r.writes++
	r.State.WriteByte(t, value)
}

func TestTest_allValues(t *testing.T) {
	s, _ := newTestState()

	for b := uint8(0); b < 8; b++ {
		for v := 0; v < 256; v++ {
			for _, carry := range []bool{false, true} {
				s.Set(A, uint8(v))
				s.Set(F, 0)
				s.SetFlagToCondition(SubFlag, true)
				s.SetFlagToCondition(CarryFlag, carry)

				cycles := Test(b, RegisterTarget(A), s)

				wantZero := (uint8(v)>>b)&1 == 0
				require.Equal(t, wantZero, s.IsSetFlag(ZeroFlag), "bit %d of %08b", b, v)
				require.False(t, s.IsSetFlag(SubFlag))
				require.True(t, s.IsSetFlag(HalfCarryFlag))
				require.Equal(t, carry, s.IsSetFlag(CarryFlag))
				require.Equal(t, uint8(v), s.Get(A))
				require.Equal(t, 2, cycles)
			}
		}
	}
}

func TestTest_memory(t *testing.T) {
	s, ram := newTestState()
	s.SetPair(HL, 0xC000)
	ram.Write(0xC000, 0b00010000)

	cycles := Test(4, MemoryHL, s)
	assert.Equal(t, 3, cycles)
	assert.False(t, s.IsSetFlag(ZeroFlag))

	cycles = Test(3, MemoryHL, s)
	assert.Equal(t, 3, cycles)
	assert.True(t, s.IsSetFlag(ZeroFlag))
	assert.Equal(t, byte(0b00010000), ram.Read(0xC000))
}

func TestResetSet_allValues(t *testing.T) {
	s, _ := newTestState()

	for b := uint8(0); b < 8; b++ {
		mask := uint8(1) << b
		for v := 0; v < 256; v++ {
			value := uint8(v)
			s.Set(F, 0xB0)

			s.Set(C, value)
			require.Equal(t, 2, Reset(b, RegisterTarget(C), s))
			reset := s.Get(C)
			require.Equal(t, value&^mask, reset)

			Reset(b, RegisterTarget(C), s)
			require.Equal(t, reset, s.Get(C), "reset is idempotent")

			s.Set(C, value)
			require.Equal(t, 2, Set(b, RegisterTarget(C), s))
			set := s.Get(C)
			require.Equal(t, value|mask, set)

			Set(b, RegisterTarget(C), s)
			require.Equal(t, set, s.Get(C), "set is idempotent")

			// Reset(Set(v)) and Set(Reset(v)) land on the canonical forms
			Reset(b, RegisterTarget(C), s)
			require.Equal(t, value&^mask, s.Get(C))
			Set(b, RegisterTarget(C), s)
			require.Equal(t, value|mask, s.Get(C))

			require.Equal(t, uint8(0xB0), s.Get(F), "flags are not affected")
		}
	}
}

func TestResetSet_memory(t *testing.T) {
	s, ram := newTestState()
	s.SetPair(HL, 0xD000)
	ram.Write(0xD000, 0x0F)
	s.Set(F, 0x50)

	assert.Equal(t, 4, Set(7, MemoryHL, s))
	assert.Equal(t, byte(0x8F), ram.Read(0xD000))
	assert.Equal(t, 4, Reset(0, MemoryHL, s))
	assert.Equal(t, byte(0x8E), ram.Read(0xD000))
	assert.Equal(t, uint8(0x50), s.Get(F))

	// registers are untouched by memory operands
	assert.Equal(t, uint8(0xD0), s.Get(H))
	assert.Equal(t, uint8(0x00), s.Get(L))
}

func TestBitOps_singleWrite(t *testing.T) {
	for _, target := range Operands() {
		t.Run(target.String(), func(t *testing.T) {
			s, _ := newTestState()
			s.SetPair(HL, 0xC000)
			r := &recorder{State: s}

			Test(1, target, r)
			assert.Equal(t, 1, r.reads)
			assert.Equal(t, 0, r.writes)

			Reset(1, target, r)
			assert.Equal(t, 2, r.reads)
			assert.Equal(t, 1, r.writes)

			Set(1, target, r)
			assert.Equal(t, 3, r.reads)
			assert.Equal(t, 2, r.writes)
		})
	}
}

func TestBitOps_scenarios(t *testing.T) {
	t.Run("BIT 5,A with bit set", func(t *testing.T) {
		s, _ := newTestState()
		s.Set(A, 0b10100000)

		cycles := Test(5, RegisterTarget(A), s)

		assert.Equal(t, 2, cycles)
		assert.Equal(t, "--H-", FlagString(s.Get(F)))
		assert.Equal(t, uint8(0b10100000), s.Get(A))
	})

	t.Run("BIT 0,A with bit clear", func(t *testing.T) {
		s, _ := newTestState()
		s.Set(A, 0b10100000)

		Test(0, RegisterTarget(A), s)

		assert.Equal(t, "Z-H-", FlagString(s.Get(F)))
		assert.Equal(t, uint8(0b10100000), s.Get(A))
	})

	t.Run("RES 3,(HL)", func(t *testing.T) {
		s, ram := newTestState()
		s.SetPair(HL, 0xC010)
		ram.Write(0xC010, 0xFF)
		s.Set(F, 0x30)

		cycles := Reset(3, MemoryHL, s)

		assert.Equal(t, 4, cycles)
		assert.Equal(t, byte(0xF7), ram.Read(0xC010))
		assert.Equal(t, uint8(0x30), s.Get(F))
	})

	t.Run("SET 7,B", func(t *testing.T) {
		s, _ := newTestState()
		s.Set(F, 0x80)

		cycles := Set(7, RegisterTarget(B), s)

		assert.Equal(t, 2, cycles)
		assert.Equal(t, uint8(0x80), s.Get(B))
		assert.Equal(t, uint8(0x80), s.Get(F))
	})
}
