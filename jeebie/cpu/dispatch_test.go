package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		want   string
	}{
		{"first BIT", 0x40, "BIT 0,B"},
		{"BIT on memory", 0x7E, "BIT 7,(HL)"},
		{"BIT 5,A", 0x6F, "BIT 5,A"},
		{"first RES", 0x80, "RES 0,B"},
		{"RES 3,(HL)", 0x9E, "RES 3,(HL)"},
		{"SET 7,B", 0xF8, "SET 7,B"},
		{"last SET", 0xFF, "SET 7,A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, ok := Decode(tt.opcode)
			require.True(t, ok)
			assert.Equal(t, tt.want, inst.String())
		})
	}
}

func TestDecode_rotateBlockIsNotBitOperation(t *testing.T) {
	for op := 0x00; op < 0x40; op++ {
		_, ok := Decode(uint8(op))
		assert.False(t, ok, "0x%02X", op)
	}
}

func TestTable_coversFamily(t *testing.T) {
	counts := map[Op]int{}
	for op := 0; op < 256; op++ {
		inst, ok := Decode(uint8(op))
		if !ok {
			continue
		}
		counts[inst.Op]++
		assert.Equal(t, uint8(op), Encode(inst), "round trip of %s", inst)
	}

	assert.Equal(t, map[Op]int{OpTest: 64, OpReset: 64, OpSet: 64}, counts)
}

func TestExecute_cyclesMatchTable(t *testing.T) {
	for op := 0x40; op < 0x100; op++ {
		s, _ := newTestState()
		s.SetPair(HL, 0xC000)
		inst, _ := Decode(uint8(op))

		assert.Equal(t, inst.Cycles(), Execute(uint8(op), s), inst.String())
	}
}

func TestExecute_cycleCosts(t *testing.T) {
	testCases := []struct {
		desc   string
		opcode uint8
		want   int
	}{
		{desc: "BIT register", opcode: 0x47, want: 2},
		{desc: "BIT (HL)", opcode: 0x46, want: 3},
		{desc: "RES register", opcode: 0x87, want: 2},
		{desc: "RES (HL)", opcode: 0x86, want: 4},
		{desc: "SET register", opcode: 0xC7, want: 2},
		{desc: "SET (HL)", opcode: 0xC6, want: 4},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			s, _ := newTestState()
			assert.Equal(t, tC.want, Execute(tC.opcode, s))
		})
	}
}

func TestExecute_appliesOperation(t *testing.T) {
	s, ram := newTestState()
	s.SetPair(HL, 0xC000)
	ram.Write(0xC000, 0xFF)

	Execute(0x9E, s) // RES 3,(HL)
	assert.Equal(t, byte(0xF7), ram.Read(0xC000))

	Execute(0xF8, s) // SET 7,B
	assert.Equal(t, uint8(0x80), s.Get(B))

	Execute(0x5E, s) // BIT 3,(HL)
	assert.True(t, s.IsSetFlag(ZeroFlag))
}

func TestExecute_panicsOutsideBitBlock(t *testing.T) {
	s, _ := newTestState()
	assert.PanicsWithValue(t, "cpu: opcode 0xCB37 is not a bit operation", func() {
		Execute(0x37, s)
	})
}

func TestEncode_panicsOnUnencodable(t *testing.T) {
	assert.Panics(t, func() { Encode(Instruction{Op: OpTest, Bit: 0, Target: RegisterTarget(F)}) })
	assert.Panics(t, func() { Encode(Instruction{Op: OpSet, Bit: 8, Target: RegisterTarget(A)}) })
	assert.Panics(t, func() { Encode(Instruction{Op: Op(3), Bit: 0, Target: RegisterTarget(A)}) })
}

func TestState_Exec(t *testing.T) {
	s, _ := newTestState()

	total := 0
	for _, op := range []uint8{0x47, 0x46, 0x86, 0xC7} {
		total += s.Exec(op)
	}

	assert.Equal(t, 11, total)
	assert.Equal(t, uint64(11), s.Cycles())
}
