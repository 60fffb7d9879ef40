package coco

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// interrupt and reset vectors
const (
	vectorSWI3  = uint16(0xfff2)
	vectorSWI2  = uint16(0xfff4)
	vectorFIRQ  = uint16(0xfff6)
	vectorIRQ   = uint16(0xfff8)
	vectorSWI   = uint16(0xfffa)
	vectorNMI   = uint16(0xfffc)
	vectorReset = uint16(0xfffe)
)

type cpuState uint8

const (
	stateRunning cpuState = iota
	stateWaitingForSync
	stateWaitingForInterrupt
)

var cpuStateNames = map[cpuState]string{
	stateRunning:             "RUNNING",
	stateWaitingForSync:      "SYNC",
	stateWaitingForInterrupt: "CWAI",
}

// cycles Step reports while the CPU sits in SYNC or CWAI
const idleCycles = 1

type CPU struct {
	reg   Registers
	mem   ReadWriter
	state cpuState

	// interrupt latches
	nmiPending  bool
	firqPending bool
	irqPending  bool

	op          operand // operand of the instruction being executed
	cycles      int     // cycles of the instruction being executed
	totalCycles uint64
}

func NewCPU(mem ReadWriter) *CPU {
	return &CPU{
		mem: mem,
	}
}

func (c CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

// read16 reads a big-endian word.
func (c CPU) read16(addr uint16) uint16 {
	return word(c.read8(addr), c.read8(addr+1))
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c *CPU) write16(addr uint16, data uint16) {
	c.write8(addr, hi(data))
	c.write8(addr+1, lo(data))
}

func (c *CPU) fetch8() uint8 {
	v := c.read8(c.reg.PC)
	c.reg.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	v := c.read16(c.reg.PC)
	c.reg.PC += 2
	return v
}

// push8 pushes onto the stack sp points at (S or U). Stacks grow down and the
// pointer addresses the last byte pushed.
func (c *CPU) push8(sp *uint16, data uint8) {
	*sp--
	c.write8(*sp, data)
}

// push16 leaves the low byte at the higher address.
func (c *CPU) push16(sp *uint16, data uint16) {
	c.push8(sp, lo(data))
	c.push8(sp, hi(data))
}

func (c *CPU) pull8(sp *uint16) uint8 {
	v := c.read8(*sp)
	*sp++
	return v
}

func (c *CPU) pull16(sp *uint16) uint16 {
	h := c.pull8(sp)
	l := c.pull8(sp)
	return word(h, l)
}

// pushRegs pushes the registers selected by a PSHS/PSHU postbyte, PC first
// and CC last. other is the stack pointer that is not sp. Returns the number
// of bytes pushed.
func (c *CPU) pushRegs(sp *uint16, other uint16, mask uint8) int {
	n := 0
	if mask&0x80 != 0 {
		c.push16(sp, c.reg.PC)
		n += 2
	}
	if mask&0x40 != 0 {
		c.push16(sp, other)
		n += 2
	}
	if mask&0x20 != 0 {
		c.push16(sp, c.reg.Y)
		n += 2
	}
	if mask&0x10 != 0 {
		c.push16(sp, c.reg.X)
		n += 2
	}
	if mask&0x08 != 0 {
		c.push8(sp, c.reg.DP)
		n++
	}
	if mask&0x04 != 0 {
		c.push8(sp, c.reg.B)
		n++
	}
	if mask&0x02 != 0 {
		c.push8(sp, c.reg.A)
		n++
	}
	if mask&0x01 != 0 {
		c.push8(sp, c.reg.CC)
		n++
	}
	return n
}

// pullRegs is the reverse of pushRegs.
func (c *CPU) pullRegs(sp *uint16, other *uint16, mask uint8) int {
	n := 0
	if mask&0x01 != 0 {
		c.reg.CC = c.pull8(sp)
		n++
	}
	if mask&0x02 != 0 {
		c.reg.A = c.pull8(sp)
		n++
	}
	if mask&0x04 != 0 {
		c.reg.B = c.pull8(sp)
		n++
	}
	if mask&0x08 != 0 {
		c.reg.DP = c.pull8(sp)
		n++
	}
	if mask&0x10 != 0 {
		c.reg.X = c.pull16(sp)
		n += 2
	}
	if mask&0x20 != 0 {
		c.reg.Y = c.pull16(sp)
		n += 2
	}
	if mask&0x40 != 0 {
		*other = c.pull16(sp)
		n += 2
	}
	if mask&0x80 != 0 {
		c.reg.PC = c.pull16(sp)
		n += 2
	}
	return n
}

// Registers returns a copy of the register file.
func (c CPU) Registers() Registers {
	return c.reg
}

func (c *CPU) SetRegisters(r Registers) {
	c.reg = r
}

func (c CPU) TotalCycles() uint64 {
	return c.totalCycles
}

func (c CPU) State() string {
	return cpuStateNames[c.state]
}

// Reset loads PC from the reset vector and masks both IRQ and FIRQ. Every
// other register is cleared.
func (c *CPU) Reset() {
	c.reg = Registers{CC: flagI | flagF}
	c.state = stateRunning
	c.nmiPending = false
	c.firqPending = false
	c.irqPending = false
	c.op = operand{}
	c.cycles = 0
	c.totalCycles = 0
	c.reg.PC = c.read16(vectorReset)
}

// Step executes one whole instruction and returns the number of cycles it
// took. While the CPU waits in SYNC or CWAI nothing is executed and one idle
// cycle is reported.
func (c *CPU) Step() (int, error) {
	if c.state != stateRunning {
		c.totalCycles += idleCycles
		return idleCycles, nil
	}

	pc := c.reg.PC
	page := uint8(0)
	opcode := c.fetch8()
	if opcode == prefixPage2 || opcode == prefixPage3 {
		page = opcode
		opcode = c.fetch8()
	}

	in := lookupInstr(page, opcode)
	if in.fn == nil {
		return 0, &MalformedInstruction{PC: pc, Page: page, Opcode: opcode, Reason: "unassigned opcode"}
	}

	op, err := c.resolve(in.mode, in.width)
	if err != nil {
		var mi *MalformedInstruction
		if errors.As(err, &mi) {
			mi.PC = pc
			mi.Page = page
			mi.Opcode = opcode
		}
		return 0, err
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.WithFields(logrus.Fields{
			"pc":     pc,
			"opcode": opcode,
			"page":   page,
			"instr":  in.name,
			"mode":   addrModeNames[in.mode],
			"ea":     op.addr,
		}).Trace("cpu step")
	}

	c.op = op
	c.cycles = int(in.cycles) + op.cycles
	in.fn(c)
	n := c.cycles
	c.totalCycles += uint64(n)

	c.op = operand{}
	c.cycles = 0
	return n, nil
}
