// Package memory provides the flat address space that (HL) operands read
// from and write to.
package memory

import "log/slog"

// Size is the number of addressable bytes.
const Size = 0x10000

// RAM is a flat 64KiB byte array with no banking or memory mapped I/O.
type RAM struct {
	data [Size]byte
}

// New returns zeroed RAM.
func New() *RAM {
	return &RAM{}
}

func (m *RAM) Read(address uint16) byte {
	return m.data[address]
}

func (m *RAM) Write(address uint16, value byte) {
	m.data[address] = value
}

// Load copies data starting at address. Bytes past the top of the address
// space are dropped.
func (m *RAM) Load(address uint16, data []byte) {
	n := copy(m.data[address:], data)
	if n < len(data) {
		slog.Warn("Load truncated at end of address space", "address", address, "dropped", len(data)-n)
	}
}

// Reset clears every byte.
func (m *RAM) Reset() {
	m.data = [Size]byte{}
}
