package headless_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/jeebie-bitunit/jeebie/backend"
	"github.com/valerio/jeebie-bitunit/jeebie/backend/headless"
	"github.com/valerio/jeebie-bitunit/jeebie/cpu"
	"github.com/valerio/jeebie-bitunit/jeebie/disasm"
)

func TestLoadProgram(t *testing.T) {
	src := `; clear the top bit of (HL)
RES 7,(HL)

BIT 7,(HL)   # should set Z
0xCBC0
`
	program, err := headless.LoadProgram(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []uint8{0xBE, 0x7E, 0xC0}, program)
}

func TestParseProgram_reportsLine(t *testing.T) {
	_, err := headless.ParseProgram([]string{"BIT 0,A", "", "BIT 9,A"})
	require.Error(t, err)
	assert.ErrorIs(t, err, disasm.ErrInvalidBit)
	assert.Contains(t, err.Error(), "line 3")
}

func TestHeadlessBackend(t *testing.T) {
	t.Run("normal operation", func(t *testing.T) {
		var out bytes.Buffer
		program := []uint8{0x9E, 0x5E, 0xF8} // RES 3,(HL); BIT 3,(HL); SET 7,B
		h := headless.New(program, &out)

		config := backend.Config{
			Registers: map[cpu.Register]uint8{cpu.H: 0xC0},
			MemHL:     0xFF,
		}
		require.NoError(t, h.Init(config))

		session := backend.NewSession(config)
		require.NoError(t, h.Run(session))
		require.NoError(t, h.Cleanup())

		lines := strings.Split(out.String(), "\n")
		assert.Equal(t, "CB9E  RES 3,(HL)   4  (0xC000): 0xFF -> 0xF7", lines[0])
		assert.Equal(t, "CB5E  BIT 3,(HL)   3  F: ---- -> Z-H-", lines[1])
		assert.Equal(t, "CBF8  SET 7,B      2  B: 0x00 -> 0x80", lines[2])
		assert.Contains(t, out.String(), "Cycles: 9")
		assert.Len(t, session.History(), 3)
	})

	t.Run("no change is reported", func(t *testing.T) {
		var out bytes.Buffer
		h := headless.New([]uint8{0x87}, &out) // RES 0,A on zero

		require.NoError(t, h.Init(backend.Config{}))
		require.NoError(t, h.Run(backend.NewSession(backend.Config{})))

		assert.True(t, strings.HasPrefix(out.String(), "CB87  RES 0,A      2  no change\n"))
	})

	t.Run("empty program", func(t *testing.T) {
		h := headless.New(nil, &bytes.Buffer{})
		assert.ErrorIs(t, h.Init(backend.Config{}), headless.ErrEmptyProgram)
	})

	t.Run("unsupported opcode", func(t *testing.T) {
		h := headless.New([]uint8{0x40, 0x10}, &bytes.Buffer{})
		require.NoError(t, h.Init(backend.Config{}))

		err := h.Run(backend.NewSession(backend.Config{}))
		assert.ErrorIs(t, err, backend.ErrUnsupportedOpcode)
		assert.Contains(t, err.Error(), "instruction 2")
	})
}
