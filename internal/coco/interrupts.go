package coco

const (
	entireState = uint8(0xff) // PC U Y X DP B A CC
	fastState   = uint8(0x81) // PC CC
)

// interrupt entry cycle counts
const (
	cyclesNMI  = 19
	cyclesIRQ  = 19
	cyclesFIRQ = 10
)

func (c *CPU) ScheduleIRQ() {
	c.irqPending = true
}

func (c *CPU) ScheduleFIRQ() {
	c.firqPending = true
}

func (c *CPU) ScheduleNMI() {
	c.nmiPending = true
}

func (c CPU) anyPending() bool {
	return c.nmiPending || c.firqPending || c.irqPending
}

// stackState pushes the entire register set or only PC and CC onto S. E is
// updated before CC is pushed so RTI knows how much to pull.
func (c *CPU) stackState(entire bool) {
	if entire {
		c.reg.setFlag(flagE, true)
		c.pushRegs(&c.reg.S, c.reg.U, entireState)
		return
	}
	c.reg.setFlag(flagE, false)
	c.pushRegs(&c.reg.S, c.reg.U, fastState)
}

// enter finishes an interrupt entry: stacks the state unless CWAI already
// did, masks interrupts and jumps through the vector.
func (c *CPU) enter(vector uint16, entire bool, mask uint8) {
	if c.state == stateWaitingForInterrupt {
		c.state = stateRunning
	} else {
		c.stackState(entire)
	}
	c.reg.CC |= mask
	c.reg.PC = c.read16(vector)
}

// ServiceInterrupts checks the latches in priority order NMI, FIRQ, IRQ and
// enters at most one handler. It must be called between instructions. The
// number of cycles spent on the entry is returned.
func (c *CPU) ServiceInterrupts() int {
	if c.state == stateWaitingForSync {
		if !c.anyPending() {
			return 0
		}
		// any interrupt line ends SYNC, a masked one just resumes execution
		c.state = stateRunning
	}

	switch {
	case c.nmiPending:
		c.nmiPending = false
		c.enter(vectorNMI, true, flagI|flagF)
		return cyclesNMI
	case c.firqPending && !c.reg.flag(flagF):
		c.firqPending = false
		c.enter(vectorFIRQ, false, flagI|flagF)
		return cyclesFIRQ
	case c.irqPending && !c.reg.flag(flagI):
		c.irqPending = false
		c.enter(vectorIRQ, true, flagI)
		return cyclesIRQ
	}
	return 0
}

// Software Interrupt
// Entire state stacked, I and F set, PC <- (FFFA)
func (c *CPU) swi() {
	c.stackState(true)
	c.reg.CC |= flagI | flagF
	c.reg.PC = c.read16(vectorSWI)
}

// Software Interrupt 2, does not mask interrupts
func (c *CPU) swi2() {
	c.stackState(true)
	c.reg.PC = c.read16(vectorSWI2)
}

// Software Interrupt 3, does not mask interrupts
func (c *CPU) swi3() {
	c.stackState(true)
	c.reg.PC = c.read16(vectorSWI3)
}

// Return from Interrupt
// Pulls CC, then the rest of the entire state when E is set, or only PC.
func (c *CPU) rti() {
	c.reg.CC = c.pull8(&c.reg.S)
	if c.reg.flag(flagE) {
		c.pullRegs(&c.reg.S, &c.reg.U, entireState&^0x01)
		c.cycles += 9
		return
	}
	c.reg.PC = c.pull16(&c.reg.S)
}

// Clear CC bits and Wait for Interrupt
// CC &= imm, entire state stacked, then wait for an interrupt.
func (c *CPU) cwai() {
	c.reg.CC &= c.op.value8
	c.stackState(true)
	c.state = stateWaitingForInterrupt
}

// Synchronize to external event
func (c *CPU) sync() {
	c.state = stateWaitingForSync
}
