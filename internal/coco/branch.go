package coco

// Branch conditions, numbered like the low nibble of the branch opcodes.
type condition uint8

const (
	condAlways condition = iota
	condNever
	condHigher         // C=0 and Z=0
	condLowerOrSame    // C=1 or Z=1
	condCarryClear     // C=0
	condCarrySet       // C=1
	condNotEqual       // Z=0
	condEqual          // Z=1
	condOverflowClear  // V=0
	condOverflowSet    // V=1
	condPlus           // N=0
	condMinus          // N=1
	condGreaterOrEqual // N xor V = 0
	condLess           // N xor V = 1
	condGreater        // Z=0 and N xor V = 0
	condLessOrEqual    // Z=1 or N xor V = 1
)

func (r Registers) test(cond condition) bool {
	c := r.flag(flagC)
	v := r.flag(flagV)
	z := r.flag(flagZ)
	n := r.flag(flagN)

	switch cond {
	case condAlways:
		return true
	case condNever:
		return false
	case condHigher:
		return !c && !z
	case condLowerOrSame:
		return c || z
	case condCarryClear:
		return !c
	case condCarrySet:
		return c
	case condNotEqual:
		return !z
	case condEqual:
		return z
	case condOverflowClear:
		return !v
	case condOverflowSet:
		return v
	case condPlus:
		return !n
	case condMinus:
		return n
	case condGreaterOrEqual:
		return n == v
	case condLess:
		return n != v
	case condGreater:
		return !z && n == v
	case condLessOrEqual:
		return z || n != v
	}
	return false
}

// shortBranch builds a Bcc. The offset is relative to the PC after the
// opcode and offset bytes, wrapping around 64KB.
func shortBranch(cond condition) func(*CPU) {
	return func(c *CPU) {
		if !c.reg.test(cond) {
			return
		}
		c.reg.PC += signExtend8(c.op.value8)
	}
}

// longBranch builds an LBcc. A taken long branch costs one extra cycle.
func longBranch(cond condition) func(*CPU) {
	return func(c *CPU) {
		if !c.reg.test(cond) {
			return
		}
		c.reg.PC += c.op.value16
		c.cycles++
	}
}

func (c *CPU) lbra() {
	c.reg.PC += c.op.value16
}

// Branch to Subroutine
// S <- PC, PC <- PC + offset
func (c *CPU) bsr() {
	c.push16(&c.reg.S, c.reg.PC)
	c.reg.PC += signExtend8(c.op.value8)
}

func (c *CPU) lbsr() {
	c.push16(&c.reg.S, c.reg.PC)
	c.reg.PC += c.op.value16
}
