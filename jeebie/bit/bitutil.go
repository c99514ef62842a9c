// Package bit holds the small bit and byte helpers shared by the register
// file and the bit operation unit.
package bit

// Mask returns a byte with only the bit at index set.
// Indexes past 7 produce an empty mask.
func Mask(index uint8) uint8 {
	return 1 << index
}

// IsSet will check if the bit at the specified index is set to 1 or not.
func IsSet(index, value uint8) bool {
	return value&Mask(index) != 0
}

// Set will return the passed byte with the bit at the specified index set to 1.
func Set(index, value uint8) uint8 {
	return value | Mask(index)
}

// Reset will return the passed byte with the bit at the specified index set to 0.
func Reset(index, value uint8) uint8 {
	return value &^ Mask(index)
}

// GetBitValue returns 1 if the bit at the specified index is set, 0 otherwise.
func GetBitValue(index, value uint8) uint8 {
	if IsSet(index, value) {
		return 1
	}

	return 0
}

// Combine combines two 8 bit values into a single 16 bit value.
// The high byte will be the most significant one.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// Low returns the low (LSB) part of a 16 bit number.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the high (MSB) part of a 16 bit number.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// ReplaceHigh returns value with its most significant byte swapped for high.
func ReplaceHigh(value uint16, high uint8) uint16 {
	return Combine(high, Low(value))
}

// ReplaceLow returns value with its least significant byte swapped for low.
func ReplaceLow(value uint16, low uint8) uint16 {
	return Combine(High(value), low)
}
