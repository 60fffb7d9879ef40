package coco

type addrMode uint8

const (
	// Inherent
	// No operand, the instruction works on registers only.
	// Example: CLRA
	addrModeINH addrMode = iota + 1

	// Immediate
	// The operand follows the opcode, one or two bytes depending on width.
	// Example: LDA #$10, LDX #$1234
	addrModeIMM

	// Direct
	// One byte follows the opcode, DP supplies the high byte of the address.
	// Example: LDA <$10 (load A from DP:$10)
	addrModeDIR

	// Extended
	// A full big-endian 16-bit address follows the opcode.
	// Example: LDA $1234
	addrModeEXT

	// Indexed
	// A postbyte selects an index register and one of the offset,
	// auto increment/decrement or indirect forms.
	// Example: LDA ,X+  LDA -2,Y  LDA [$10,U]
	addrModeIDX

	// Relative
	// 8-bit signed offset from the PC after the instruction.
	// Example: BNE $10
	addrModeREL

	// Long relative
	// 16-bit offset from the PC after the instruction.
	// Example: LBNE $1000
	addrModeLREL
)

var addrModeNames = map[addrMode]string{
	addrModeINH:  "INH",
	addrModeIMM:  "IMM",
	addrModeDIR:  "DIR",
	addrModeEXT:  "EXT",
	addrModeIDX:  "IDX",
	addrModeREL:  "REL",
	addrModeLREL: "LREL",
}

// operand is what the resolver hands to the instruction. It only lives for
// the duration of one instruction.
type operand struct {
	n       int // instruction bytes consumed after the opcode
	value8  uint8
	value16 uint16
	addr    uint16 // effective address
	cycles  int    // extra cycles spent by indexed addressing
}

// resolve consumes the operand bytes of the current instruction, advancing
// PC, and computes the effective address and the operand value.
func (c *CPU) resolve(mode addrMode, width operandWidth) (operand, error) {
	var op operand

	switch mode {
	case addrModeINH:
		return op, nil

	case addrModeIMM, addrModeREL, addrModeLREL:
		op.addr = c.reg.PC
		if width == widthWord {
			op.value16 = c.fetch16()
			op.value8 = lo(op.value16)
			op.n = 2
		} else {
			op.value8 = c.fetch8()
			op.value16 = uint16(op.value8)
			op.n = 1
		}
		return op, nil

	case addrModeDIR:
		op.addr = word(c.reg.DP, c.fetch8())
		op.n = 1

	case addrModeEXT:
		op.addr = c.fetch16()
		op.n = 2

	case addrModeIDX:
		var err error
		op.addr, op.n, op.cycles, err = c.indexed()
		if err != nil {
			return operand{}, err
		}
	}

	switch width {
	case widthByte:
		op.value8 = c.read8(op.addr)
		op.value16 = uint16(op.value8)
	case widthWord:
		op.value16 = c.read16(op.addr)
		op.value8 = lo(op.value16)
	}
	return op, nil
}

// indexReg returns the register selected by bits 5-6 of the postbyte.
func (c *CPU) indexReg(postbyte uint8) *uint16 {
	switch (postbyte >> 5) & 0x3 {
	case 0:
		return &c.reg.X
	case 1:
		return &c.reg.Y
	case 2:
		return &c.reg.U
	}
	return &c.reg.S
}

func illegalPostbyte(postbyte uint8, reason string) error {
	return &MalformedInstruction{Indexed: true, Postbyte: postbyte, Reason: reason}
}

// indexed decodes a postbyte and its trailing bytes.
//
//	0RRnnnnn         n,R  5-bit offset
//	1RRI0000         ,R+         (no indirect)
//	1RRI0001         ,R++
//	1RRI0010         ,-R         (no indirect)
//	1RRI0011         ,--R
//	1RRI0100         ,R
//	1RRI0101         B,R
//	1RRI0110         A,R
//	1RRI1000         n8,R
//	1RRI1001         n16,R
//	1RRI1011         D,R
//	1RRI1100         n8,PCR
//	1RRI1101         n16,PCR
//	1RR11111         [n16]
//
// I is the indirect bit. The register is not touched when the postbyte is
// illegal.
func (c *CPU) indexed() (addr uint16, n int, cycles int, err error) {
	postbyte := c.fetch8()
	n = 1
	r := c.indexReg(postbyte)

	if postbyte&0x80 == 0 {
		return *r + signExtend5(postbyte), n, 1, nil
	}

	indirect := postbyte&0x10 != 0
	switch postbyte & 0x0f {
	case 0x0:
		if indirect {
			return 0, n, 0, illegalPostbyte(postbyte, "indirect post-increment by one")
		}
		addr = *r
		*r++
		cycles = 2
	case 0x1:
		addr = *r
		*r += 2
		cycles = 3
	case 0x2:
		if indirect {
			return 0, n, 0, illegalPostbyte(postbyte, "indirect pre-decrement by one")
		}
		*r--
		addr = *r
		cycles = 2
	case 0x3:
		*r -= 2
		addr = *r
		cycles = 3
	case 0x4:
		addr = *r
	case 0x5:
		addr = *r + signExtend8(c.reg.B)
		cycles = 1
	case 0x6:
		addr = *r + signExtend8(c.reg.A)
		cycles = 1
	case 0x8:
		offset := c.fetch8()
		n++
		addr = *r + signExtend8(offset)
		cycles = 1
	case 0x9:
		offset := c.fetch16()
		n += 2
		addr = *r + offset
		cycles = 4
	case 0xb:
		addr = *r + c.reg.D()
		cycles = 4
	case 0xc:
		offset := c.fetch8()
		n++
		addr = c.reg.PC + signExtend8(offset)
		cycles = 1
	case 0xd:
		offset := c.fetch16()
		n += 2
		addr = c.reg.PC + offset
		cycles = 5
	case 0xf:
		if !indirect {
			return 0, n, 0, illegalPostbyte(postbyte, "extended indexed without indirection")
		}
		addr = c.fetch16()
		n += 2
		cycles = 2
	default:
		return 0, n, 0, illegalPostbyte(postbyte, "undefined indexed mode")
	}

	if indirect {
		addr = c.read16(addr)
		cycles += 3
	}
	return addr, n, cycles, nil
}
