package coco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newInterruptCPU sets up every vector to point at a distinct handler.
func newInterruptCPU() (*CPU, *flatMem) {
	cpu, mem := newTestCPU(0x1234)
	mem.load(vectorSWI3, 0x03, 0x00)
	mem.load(vectorSWI2, 0x02, 0x00)
	mem.load(vectorFIRQ, 0x0f, 0x00)
	mem.load(vectorIRQ, 0x01, 0x00)
	mem.load(vectorSWI, 0x05, 0x00)
	mem.load(vectorNMI, 0x0a, 0x00)
	mem.load(vectorReset, 0x80, 0x00)
	cpu.reg = Registers{
		PC: 0x1234, U: 0x5678, Y: 0x9abc, X: 0xdef1,
		DP: 0x32, B: 0x54, A: 0x76, CC: 0x01, S: 0x5000,
	}
	return cpu, mem
}

func Test_NMI_StacksEntireState(t *testing.T) {
	cpu, mem := newInterruptCPU()

	cpu.ScheduleNMI()
	n := cpu.ServiceInterrupts()

	assert.Equal(t, cyclesNMI, n)
	expected := []uint8{0x34, 0x12, 0x78, 0x56, 0xbc, 0x9a, 0xf1, 0xde, 0x32, 0x54, 0x76, 0x81}
	for i, b := range expected {
		addr := uint16(0x4fff - i)
		assert.Equal(t, b, mem.data[addr], "byte at %04X", addr)
	}
	assert.Equal(t, uint16(0x4ff4), cpu.reg.S)
	assert.Equal(t, uint16(0x0a00), cpu.reg.PC)
	assert.Equal(t, flagE|flagF|flagI|flagC, cpu.reg.CC)
	assert.False(t, cpu.nmiPending)
}

func Test_FIRQ_StacksPCAndCC(t *testing.T) {
	cpu, mem := newInterruptCPU()
	cpu.reg.CC = flagE | flagC

	cpu.ScheduleFIRQ()
	n := cpu.ServiceInterrupts()

	assert.Equal(t, cyclesFIRQ, n)
	assert.Equal(t, uint16(0x4ffd), cpu.reg.S, "three bytes")
	assert.Equal(t, uint8(0x34), mem.data[0x4fff])
	assert.Equal(t, uint8(0x12), mem.data[0x4ffe])
	assert.Equal(t, flagC, mem.data[0x4ffd], "E clear in the pushed CC")
	assert.Equal(t, uint16(0x0f00), cpu.reg.PC)
	assert.Equal(t, flagF|flagI|flagC, cpu.reg.CC)
}

func Test_IRQ_Masking(t *testing.T) {
	cpu, _ := newInterruptCPU()
	cpu.reg.CC = flagI

	cpu.ScheduleIRQ()
	assert.Equal(t, 0, cpu.ServiceInterrupts())
	assert.Equal(t, uint16(0x1234), cpu.reg.PC)
	assert.True(t, cpu.irqPending, "latch survives while masked")

	cpu.reg.CC = 0
	assert.Equal(t, cyclesIRQ, cpu.ServiceInterrupts())
	assert.Equal(t, uint16(0x0100), cpu.reg.PC)
	assert.Equal(t, uint16(0x4ff4), cpu.reg.S)
	assert.True(t, cpu.reg.flag(flagI))
	assert.False(t, cpu.reg.flag(flagF), "IRQ doesn't mask FIRQ")
}

func Test_FIRQ_Masking(t *testing.T) {
	cpu, _ := newInterruptCPU()
	cpu.reg.CC = flagF

	cpu.ScheduleFIRQ()
	assert.Equal(t, 0, cpu.ServiceInterrupts())
	assert.True(t, cpu.firqPending)
}

func Test_InterruptPriority(t *testing.T) {
	cpu, _ := newInterruptCPU()
	cpu.reg.CC = 0

	cpu.ScheduleIRQ()
	cpu.ScheduleFIRQ()
	cpu.ScheduleNMI()

	cpu.ServiceInterrupts()
	assert.Equal(t, uint16(0x0a00), cpu.reg.PC, "NMI first")

	// the NMI handler masked everything
	assert.Equal(t, 0, cpu.ServiceInterrupts())

	cpu.reg.CC = 0
	cpu.ServiceInterrupts()
	assert.Equal(t, uint16(0x0f00), cpu.reg.PC, "then FIRQ")

	cpu.reg.CC = 0
	cpu.ServiceInterrupts()
	assert.Equal(t, uint16(0x0100), cpu.reg.PC, "then IRQ")
	assert.False(t, cpu.anyPending())
}

func Test_RTI(t *testing.T) {
	t.Run("entire state", func(t *testing.T) {
		cpu, mem := newInterruptCPU()
		mem.load(0x0100, 0x3b)
		cpu.reg.CC = 0
		saved := cpu.reg

		cpu.ScheduleIRQ()
		cpu.ServiceInterrupts()
		n, err := cpu.Step()
		require.NoError(t, err)

		saved.CC = flagE
		assert.Equal(t, saved, cpu.reg)
		assert.Equal(t, 15, n)
	})

	t.Run("fast state", func(t *testing.T) {
		cpu, mem := newInterruptCPU()
		mem.load(0x0f00, 0x3b)
		cpu.reg.CC = 0
		saved := cpu.reg

		cpu.ScheduleFIRQ()
		cpu.ServiceInterrupts()
		cpu.reg.A = 0xaa
		n, err := cpu.Step()
		require.NoError(t, err)

		saved.A = 0xaa
		assert.Equal(t, saved, cpu.reg)
		assert.Equal(t, 6, n)
	})
}

func Test_SWI(t *testing.T) {
	t.Run("SWI masks interrupts", func(t *testing.T) {
		cpu, mem := newInterruptCPU()
		mem.load(0x1234, 0x3f)
		cpu.reg.CC = 0

		n, err := cpu.Step()
		require.NoError(t, err)
		assert.Equal(t, 19, n)
		assert.Equal(t, uint16(0x0500), cpu.reg.PC)
		assert.Equal(t, uint16(0x4ff4), cpu.reg.S)
		assert.Equal(t, flagE|flagF|flagI, cpu.reg.CC)
		assert.Equal(t, uint8(0x35), mem.data[0x4fff], "return address after SWI")
	})

	t.Run("SWI2", func(t *testing.T) {
		cpu, mem := newInterruptCPU()
		mem.load(0x1234, 0x10, 0x3f)
		cpu.reg.CC = 0

		_, err := cpu.Step()
		require.NoError(t, err)
		assert.Equal(t, uint16(0x0200), cpu.reg.PC)
		assert.Equal(t, flagE, cpu.reg.CC)
	})

	t.Run("SWI3", func(t *testing.T) {
		cpu, mem := newInterruptCPU()
		mem.load(0x1234, 0x11, 0x3f)
		cpu.reg.CC = 0

		_, err := cpu.Step()
		require.NoError(t, err)
		assert.Equal(t, uint16(0x0300), cpu.reg.PC)
		assert.Equal(t, flagE, cpu.reg.CC)
	})
}

func Test_CWAI(t *testing.T) {
	cpu, mem := newInterruptCPU()
	mem.load(0x1234, 0x3c, 0xef)
	cpu.reg.CC = flagI | flagC

	_, err := cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, "CWAI", cpu.State())
	assert.Equal(t, uint16(0x4ff4), cpu.reg.S, "state stacked while waiting")
	assert.Equal(t, flagE|flagC, mem.data[0x4ff4])

	n, err := cpu.Step()
	require.NoError(t, err)
	assert.Equal(t, idleCycles, n)
	assert.Equal(t, uint16(0x1236), cpu.reg.PC, "nothing executes while waiting")

	cpu.ScheduleIRQ()
	cpu.ServiceInterrupts()
	assert.Equal(t, "RUNNING", cpu.State())
	assert.Equal(t, uint16(0x4ff4), cpu.reg.S, "not stacked twice")
	assert.Equal(t, uint16(0x0100), cpu.reg.PC)
	assert.True(t, cpu.reg.flag(flagI))
}

func Test_SYNC(t *testing.T) {
	t.Run("masked interrupt resumes", func(t *testing.T) {
		cpu, mem := newInterruptCPU()
		mem.load(0x1234, 0x13)
		cpu.reg.CC = flagI

		_, err := cpu.Step()
		require.NoError(t, err)
		assert.Equal(t, "SYNC", cpu.State())

		assert.Equal(t, 0, cpu.ServiceInterrupts(), "no latch, keep waiting")
		assert.Equal(t, "SYNC", cpu.State())

		cpu.ScheduleIRQ()
		assert.Equal(t, 0, cpu.ServiceInterrupts())
		assert.Equal(t, "RUNNING", cpu.State())
		assert.Equal(t, uint16(0x1235), cpu.reg.PC)
		assert.Equal(t, uint16(0x5000), cpu.reg.S)
		assert.True(t, cpu.irqPending)
	})

	t.Run("unmasked interrupt is taken", func(t *testing.T) {
		cpu, mem := newInterruptCPU()
		mem.load(0x1234, 0x13)
		cpu.reg.CC = 0

		_, err := cpu.Step()
		require.NoError(t, err)

		cpu.ScheduleFIRQ()
		assert.Equal(t, cyclesFIRQ, cpu.ServiceInterrupts())
		assert.Equal(t, uint16(0x0f00), cpu.reg.PC)
		assert.Equal(t, uint16(0x4ffd), cpu.reg.S)
	})
}

func Test_Reset(t *testing.T) {
	cpu, _ := newInterruptCPU()
	cpu.ScheduleNMI()
	cpu.state = stateWaitingForSync

	cpu.Reset()

	assert.Equal(t, Registers{PC: 0x8000, CC: flagI | flagF}, cpu.reg)
	assert.Equal(t, "RUNNING", cpu.State())
	assert.False(t, cpu.anyPending())
	assert.Equal(t, uint64(0), cpu.TotalCycles())
}
