package coco

// condition code bits
const (
	flagC = uint8(1 << iota) // Carry
	flagV                    // Overflow
	flagZ                    // Zero
	flagN                    // Negative
	flagI                    // IRQ mask
	flagH                    // Half carry
	flagF                    // FIRQ mask
	flagE                    // Entire state stacked
)

// Registers is the programmer visible register file. D is not stored, it is
// always derived from A and B.
type Registers struct {
	A  uint8
	B  uint8
	X  uint16
	Y  uint16
	U  uint16 // user stack
	S  uint16 // system stack
	PC uint16
	DP uint8 // direct page
	CC uint8
}

func (r Registers) D() uint16 {
	return word(r.A, r.B)
}

func (r *Registers) SetD(d uint16) {
	r.A = hi(d)
	r.B = lo(d)
}

func (r Registers) flag(f uint8) bool {
	return r.CC&f != 0
}

func (r *Registers) setFlag(f uint8, v bool) {
	if v {
		r.CC |= f
		return
	}
	r.CC &^= f
}

func (r *Registers) setFlagsZN8(v uint8) {
	r.setFlag(flagZ, v == 0)
	r.setFlag(flagN, isNegative8(v))
}

func (r *Registers) setFlagsZN16(v uint16) {
	r.setFlag(flagZ, v == 0)
	r.setFlag(flagN, isNegative16(v))
}

// FlagsString renders CC as EFHINZVC with a dash for clear bits.
func (r Registers) FlagsString() string {
	const names = "CVZNIHFE"
	s := make([]byte, 8)
	for i := 0; i < 8; i++ {
		if r.CC&(1<<i) != 0 {
			s[7-i] = names[i]
		} else {
			s[7-i] = '-'
		}
	}
	return string(s)
}

// register codes used by the TFR and EXG postbyte
const (
	regD  = 0x0
	regX  = 0x1
	regY  = 0x2
	regU  = 0x3
	regS  = 0x4
	regPC = 0x5
	regA  = 0x8
	regB  = 0x9
	regCC = 0xa
	regDP = 0xb
)

var regNames = map[uint8]string{
	regD: "D", regX: "X", regY: "Y", regU: "U", regS: "S", regPC: "PC",
	regA: "A", regB: "B", regCC: "CC", regDP: "DP",
}

// get returns the register selected by a TFR/EXG code. 8-bit registers read
// into a 16-bit slot come back as 0xFF00|value. Undefined codes read as all
// ones.
func (r *Registers) get(code uint8) uint16 {
	switch code {
	case regD:
		return r.D()
	case regX:
		return r.X
	case regY:
		return r.Y
	case regU:
		return r.U
	case regS:
		return r.S
	case regPC:
		return r.PC
	case regA:
		return 0xff00 | uint16(r.A)
	case regB:
		return 0xff00 | uint16(r.B)
	case regCC:
		return 0xff00 | uint16(r.CC)
	case regDP:
		return 0xff00 | uint16(r.DP)
	}
	return 0xffff
}

// set writes the register selected by a TFR/EXG code. 8-bit registers keep
// the low byte. Undefined codes are ignored.
func (r *Registers) set(code uint8, v uint16) {
	switch code {
	case regD:
		r.SetD(v)
	case regX:
		r.X = v
	case regY:
		r.Y = v
	case regU:
		r.U = v
	case regS:
		r.S = v
	case regPC:
		r.PC = v
	case regA:
		r.A = lo(v)
	case regB:
		r.B = lo(v)
	case regCC:
		r.CC = lo(v)
	case regDP:
		r.DP = lo(v)
	}
}
