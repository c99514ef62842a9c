package cpu

// Flag is one of the 4 possible flags used in the flag register (high part of AF)
type Flag uint8

const (
	ZeroFlag      Flag = 0x80
	SubFlag       Flag = 0x40
	HalfCarryFlag Flag = 0x20
	CarryFlag     Flag = 0x10
)

// flagMask covers every defined flag, the low nibble of F always reads 0.
const flagMask uint8 = uint8(ZeroFlag | SubFlag | HalfCarryFlag | CarryFlag)

func (r *Registers) SetFlag(flag Flag) {
	r.af |= uint16(flag)
}

func (r *Registers) ResetFlag(flag Flag) {
	r.af &^= uint16(flag)
}

func (r Registers) IsSetFlag(flag Flag) bool {
	return uint8(r.af)&uint8(flag) != 0
}

// SetFlagToCondition sets flag when condition holds and resets it otherwise.
func (r *Registers) SetFlagToCondition(flag Flag, condition bool) {
	if !condition {
		r.ResetFlag(flag)
		return
	}

	r.SetFlag(flag)
}

// FlagString returns a human-readable representation of the flag register, e.g. "Z-H-".
func FlagString(f uint8) string {
	flags := []byte("----")
	for i, fl := range [...]struct {
		flag Flag
		name byte
	}{{ZeroFlag, 'Z'}, {SubFlag, 'N'}, {HalfCarryFlag, 'H'}, {CarryFlag, 'C'}} {
		if f&uint8(fl.flag) != 0 {
			flags[i] = fl.name
		}
	}
	return string(flags)
}
