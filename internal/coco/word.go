package coco

// Byte and word helpers. All arithmetic on uint8/uint16 wraps on its own,
// these only cover the bits Go doesn't say out loud.

func hi(w uint16) uint8 {
	return uint8(w >> 8)
}

func lo(w uint16) uint8 {
	return uint8(w)
}

func word(h, l uint8) uint16 {
	return uint16(h)<<8 | uint16(l)
}

// twos complement
func neg8(v uint8) uint8 {
	return ^v + 1
}

func isNegative8(v uint8) bool {
	return v&0x80 != 0
}

func isNegative16(v uint16) bool {
	return v&0x8000 != 0
}

// signExtend8 widens an 8-bit two's complement value to 16 bits.
func signExtend8(v uint8) uint16 {
	return uint16(int16(int8(v)))
}

// signExtend5 widens the 5-bit offset of a short indexed postbyte.
func signExtend5(v uint8) uint16 {
	v &= 0x1f
	if v&0x10 != 0 {
		return uint16(v) | 0xffe0
	}
	return uint16(v)
}
