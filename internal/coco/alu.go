package coco

// add8 adds with an optional carry in. Half carry is only tracked when asked
// for, which is for byte adds into A.
func (c *CPU) add8(a, m uint8, carry bool, half bool) uint8 {
	sum := uint16(a) + uint16(m)
	if carry {
		sum++
	}
	r := uint8(sum)
	c.reg.setFlag(flagC, sum > 0xff)
	c.reg.setFlag(flagV, (a^r)&(m^r)&0x80 != 0)
	c.reg.setFlagsZN8(r)
	if half {
		c.reg.setFlag(flagH, (a^m^r)&0x10 != 0)
	}
	return r
}

// sub8 subtracts with an optional borrow in. C is set when a borrow occurred.
func (c *CPU) sub8(a, m uint8, borrow bool) uint8 {
	diff := uint16(a) - uint16(m)
	if borrow {
		diff--
	}
	r := uint8(diff)
	c.reg.setFlag(flagC, diff&0x100 != 0)
	c.reg.setFlag(flagV, (a^m)&(a^r)&0x80 != 0)
	c.reg.setFlagsZN8(r)
	return r
}

// add16 leaves H alone, it is undefined for word operations.
func (c *CPU) add16(a, m uint16) uint16 {
	sum := uint32(a) + uint32(m)
	r := uint16(sum)
	c.reg.setFlag(flagC, sum > 0xffff)
	c.reg.setFlag(flagV, (a^r)&(m^r)&0x8000 != 0)
	c.reg.setFlagsZN16(r)
	return r
}

func (c *CPU) sub16(a, m uint16) uint16 {
	diff := uint32(a) - uint32(m)
	r := uint16(diff)
	c.reg.setFlag(flagC, diff&0x10000 != 0)
	c.reg.setFlag(flagV, (a^m)&(a^r)&0x8000 != 0)
	c.reg.setFlagsZN16(r)
	return r
}

// Negate
// R = 0 - M
//
// Flags affected: N, Z, V, C
func (c *CPU) neg(v uint8) uint8 {
	r := neg8(v)
	c.reg.setFlagsZN8(r)
	c.reg.setFlag(flagV, v == 0x80)
	c.reg.setFlag(flagC, v != 0)
	return r
}

// Complement
// R = ^M
//
// Flags affected: N, Z, V (cleared), C (set)
func (c *CPU) com(v uint8) uint8 {
	r := ^v
	c.reg.setFlagsZN8(r)
	c.reg.setFlag(flagV, false)
	c.reg.setFlag(flagC, true)
	return r
}

// Logical Shift Right
// 0 -> b7 .. b0 -> C
//
// Flags affected: N (cleared), Z, C
func (c *CPU) lsr(v uint8) uint8 {
	r := v >> 1
	c.reg.setFlag(flagC, v&0x01 != 0)
	c.reg.setFlagsZN8(r)
	return r
}

// Rotate Right
// C -> b7 .. b0 -> C
//
// Flags affected: N, Z, C
func (c *CPU) ror(v uint8) uint8 {
	r := v >> 1
	if c.reg.flag(flagC) {
		r |= 0x80
	}
	c.reg.setFlag(flagC, v&0x01 != 0)
	c.reg.setFlagsZN8(r)
	return r
}

// Arithmetic Shift Right
// b7 -> b7 .. b0 -> C
//
// Flags affected: N, Z, C
func (c *CPU) asr(v uint8) uint8 {
	r := v&0x80 | v>>1
	c.reg.setFlag(flagC, v&0x01 != 0)
	c.reg.setFlagsZN8(r)
	return r
}

// Arithmetic Shift Left (same as LSL)
// C <- b7 .. b0 <- 0
//
// Flags affected: N, Z, V (b7 xor b6), C
func (c *CPU) asl(v uint8) uint8 {
	r := v << 1
	c.reg.setFlag(flagC, v&0x80 != 0)
	c.reg.setFlag(flagV, (v^r)&0x80 != 0)
	c.reg.setFlagsZN8(r)
	return r
}

// Rotate Left
// C <- b7 .. b0 <- C
//
// Flags affected: N, Z, V (b7 xor b6), C
func (c *CPU) rol(v uint8) uint8 {
	r := v << 1
	if c.reg.flag(flagC) {
		r |= 0x01
	}
	c.reg.setFlag(flagC, v&0x80 != 0)
	c.reg.setFlag(flagV, (v^(v<<1))&0x80 != 0)
	c.reg.setFlagsZN8(r)
	return r
}

// Decrement
// R = M - 1
//
// Flags affected: N, Z, V. C is not touched.
func (c *CPU) dec(v uint8) uint8 {
	r := v - 1
	c.reg.setFlag(flagV, v == 0x80)
	c.reg.setFlagsZN8(r)
	return r
}

// Increment
// R = M + 1
//
// Flags affected: N, Z, V. C is not touched.
func (c *CPU) inc(v uint8) uint8 {
	r := v + 1
	c.reg.setFlag(flagV, v == 0x7f)
	c.reg.setFlagsZN8(r)
	return r
}

// Test
//
// Flags affected: N, Z, V (cleared)
func (c *CPU) tst(v uint8) uint8 {
	c.reg.setFlagsZN8(v)
	c.reg.setFlag(flagV, false)
	return v
}

// Clear
//
// Flags affected: N (cleared), Z (set), V (cleared), C (cleared)
func (c *CPU) clr(_ uint8) uint8 {
	c.reg.CC &^= flagN | flagV | flagC
	c.reg.CC |= flagZ
	return 0
}

func (c *CPU) sub(a, m uint8) uint8 {
	return c.sub8(a, m, false)
}

func (c *CPU) sbc(a, m uint8) uint8 {
	return c.sub8(a, m, c.reg.flag(flagC))
}

func (c *CPU) add(a, m uint8) uint8 {
	return c.add8(a, m, false, false)
}

func (c *CPU) adc(a, m uint8) uint8 {
	return c.add8(a, m, c.reg.flag(flagC), false)
}

// addh and adch are the A accumulator forms that track half carry.
func (c *CPU) addh(a, m uint8) uint8 {
	return c.add8(a, m, false, true)
}

func (c *CPU) adch(a, m uint8) uint8 {
	return c.add8(a, m, c.reg.flag(flagC), true)
}

func (c *CPU) logical(r uint8) uint8 {
	c.reg.setFlagsZN8(r)
	c.reg.setFlag(flagV, false)
	return r
}

func (c *CPU) and(a, m uint8) uint8 {
	return c.logical(a & m)
}

func (c *CPU) or(a, m uint8) uint8 {
	return c.logical(a | m)
}

func (c *CPU) eor(a, m uint8) uint8 {
	return c.logical(a ^ m)
}

// Load
//
// Flags affected: N, Z
func (c *CPU) ld(_, m uint8) uint8 {
	c.reg.setFlagsZN8(m)
	return m
}

// Store
//
// Flags affected: N, Z
func (c *CPU) st8(v uint8) {
	c.write8(c.op.addr, v)
	c.reg.setFlagsZN8(v)
}

func (c *CPU) sta() {
	c.st8(c.reg.A)
}

func (c *CPU) stb() {
	c.st8(c.reg.B)
}

func (c *CPU) st16(v uint16) {
	c.write16(c.op.addr, v)
	c.reg.setFlagsZN16(v)
}

func (c *CPU) std() {
	c.st16(c.reg.D())
}

func (c *CPU) stx() {
	c.st16(c.reg.X)
}

func (c *CPU) sty() {
	c.st16(c.reg.Y)
}

func (c *CPU) stu() {
	c.st16(c.reg.U)
}

func (c *CPU) sts() {
	c.st16(c.reg.S)
}

func (c *CPU) ld16() uint16 {
	c.reg.setFlagsZN16(c.op.value16)
	return c.op.value16
}

func (c *CPU) ldd() {
	c.reg.SetD(c.ld16())
}

func (c *CPU) ldx() {
	c.reg.X = c.ld16()
}

func (c *CPU) ldy() {
	c.reg.Y = c.ld16()
}

func (c *CPU) ldu() {
	c.reg.U = c.ld16()
}

func (c *CPU) lds() {
	c.reg.S = c.ld16()
}

func (c *CPU) addd() {
	c.reg.SetD(c.add16(c.reg.D(), c.op.value16))
}

func (c *CPU) subd() {
	c.reg.SetD(c.sub16(c.reg.D(), c.op.value16))
}

func (c *CPU) cmpd() {
	c.sub16(c.reg.D(), c.op.value16)
}

func (c *CPU) cmpx() {
	c.sub16(c.reg.X, c.op.value16)
}

func (c *CPU) cmpy() {
	c.sub16(c.reg.Y, c.op.value16)
}

func (c *CPU) cmpu() {
	c.sub16(c.reg.U, c.op.value16)
}

func (c *CPU) cmps() {
	c.sub16(c.reg.S, c.op.value16)
}

// Load Effective Address
//
// Flags affected: Z for X and Y, none for S and U
func (c *CPU) leax() {
	c.reg.X = c.op.addr
	c.reg.setFlag(flagZ, c.reg.X == 0)
}

func (c *CPU) leay() {
	c.reg.Y = c.op.addr
	c.reg.setFlag(flagZ, c.reg.Y == 0)
}

func (c *CPU) leas() {
	c.reg.S = c.op.addr
}

func (c *CPU) leau() {
	c.reg.U = c.op.addr
}

// Multiply
// D = A * B (unsigned)
//
// Flags affected: Z, C (bit 7 of the result)
func (c *CPU) mul() {
	d := uint16(c.reg.A) * uint16(c.reg.B)
	c.reg.SetD(d)
	c.reg.setFlag(flagZ, d == 0)
	c.reg.setFlag(flagC, d&0x80 != 0)
}

// Sign Extend
// A = 0xFF if B is negative, 0 otherwise
//
// Flags affected: N, Z
func (c *CPU) sex() {
	if isNegative8(c.reg.B) {
		c.reg.A = 0xff
	} else {
		c.reg.A = 0
	}
	c.reg.setFlagsZN16(c.reg.D())
}

// Add B to X, unsigned
//
// Flags affected: None
func (c *CPU) abx() {
	c.reg.X += uint16(c.reg.B)
}

// Decimal Adjust A
//
// Flags affected: N, Z, V (cleared), C
func (c *CPU) daa() {
	a := c.reg.A
	lsn := a & 0x0f
	msn := a & 0xf0

	var correction uint8
	if c.reg.flag(flagH) || lsn > 0x09 {
		correction |= 0x06
	}
	if c.reg.flag(flagC) || msn > 0x90 || (msn > 0x80 && lsn > 0x09) {
		correction |= 0x60
	}

	sum := uint16(a) + uint16(correction)
	r := uint8(sum)
	if sum > 0xff {
		c.reg.setFlag(flagC, true)
	}
	c.reg.setFlagsZN8(r)
	c.reg.setFlag(flagV, false)
	c.reg.A = r
}

func (c *CPU) orcc() {
	c.reg.CC |= c.op.value8
}

func (c *CPU) andcc() {
	c.reg.CC &= c.op.value8
}

func (c *CPU) nop() {
}

// Transfer register to register. The postbyte holds the source in the high
// nibble and the destination in the low one.
func (c *CPU) tfr() {
	src := c.op.value8 >> 4
	dst := c.op.value8 & 0x0f
	c.reg.set(dst, c.reg.get(src))
}

// Exchange registers. When sizes differ the 8-bit side sees the low byte and
// the 16-bit side sees 0xFF in the high byte.
func (c *CPU) exg() {
	r1 := c.op.value8 >> 4
	r2 := c.op.value8 & 0x0f
	v1 := c.reg.get(r1)
	v2 := c.reg.get(r2)
	c.reg.set(r1, v2)
	c.reg.set(r2, v1)
}

func (c *CPU) pshs() {
	c.cycles += c.pushRegs(&c.reg.S, c.reg.U, c.op.value8)
}

func (c *CPU) pshu() {
	c.cycles += c.pushRegs(&c.reg.U, c.reg.S, c.op.value8)
}

func (c *CPU) puls() {
	c.cycles += c.pullRegs(&c.reg.S, &c.reg.U, c.op.value8)
}

func (c *CPU) pulu() {
	c.cycles += c.pullRegs(&c.reg.U, &c.reg.S, c.op.value8)
}

func (c *CPU) jmp() {
	c.reg.PC = c.op.addr
}

// Jump to Subroutine
// S <- PC, PC <- EA
func (c *CPU) jsr() {
	c.push16(&c.reg.S, c.reg.PC)
	c.reg.PC = c.op.addr
}

// Return from Subroutine
// PC <- S
func (c *CPU) rts() {
	c.reg.PC = c.pull16(&c.reg.S)
}
