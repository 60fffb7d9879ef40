package coco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type portMock struct {
	mock.Mock
}

func (m *portMock) Read8(addr uint16) uint8 {
	args := m.Called(addr)
	return args.Get(0).(uint8)
}

func (m *portMock) Write8(addr uint16, data uint8) {
	m.Called(addr, data)
}

func Test_IO_INIT0(t *testing.T) {
	mem := NewMemory()
	mem.Write8(regInit0, init0MMUEnable|romModeCartridge32)

	assert.True(t, mem.MMU().Enabled())
	assert.Equal(t, uint8(romModeCartridge32), mem.MMU().ROMMode())
	assert.Equal(t, uint8(init0MMUEnable|romModeCartridge32), mem.Read8(regInit0))

	mem.Write8(regInit0, 0)
	assert.False(t, mem.MMU().Enabled())
}

func Test_IO_INIT1(t *testing.T) {
	mem := NewMemory()
	mem.Write8(regInit1, init1TaskSelect)
	assert.True(t, mem.MMU().TaskSelected())

	mem.Write8(regInit1, 0)
	assert.False(t, mem.MMU().TaskSelected())
}

func Test_IO_PARs(t *testing.T) {
	mem := NewMemory()
	for i := uint16(0); i < 16; i++ {
		mem.Write8(regPARStart+i, uint8(0x30+i))
	}

	assert.Equal(t, uint8(0x30), mem.MMU().PAR(false, 0))
	assert.Equal(t, uint8(0x37), mem.MMU().PAR(false, 7))
	assert.Equal(t, uint8(0x38), mem.MMU().PAR(true, 0))
	assert.Equal(t, uint8(0x3e), mem.MMU().PAR(true, 5), "0x3D aliases")
	assert.Equal(t, uint8(0x3e), mem.Read8(regPARStart+13))
	assert.Equal(t, uint8(0x3f), mem.Read8(regPAREnd))
}

func Test_IO_AllRAM(t *testing.T) {
	mem := NewMemory()
	mem.Write8(regSAMAllRAM, 0)
	assert.True(t, mem.MMU().AllRAM())

	mem.Write8(regSAMROM, 0)
	assert.False(t, mem.MMU().AllRAM())
}

func Test_IO_Raise(t *testing.T) {
	t.Run("IRQ", func(t *testing.T) {
		lines := &linesMock{}
		lines.On("ScheduleIRQ").Return().Once()

		mem := NewMemory()
		mem.IO().Connect(lines)
		mem.Write8(regInit0, init0IRQEnable)
		mem.Write8(regIRQEnable, SourceVBORD)

		mem.IO().Raise(SourceVBORD)
		mem.IO().Raise(SourceKeyboard)

		lines.AssertExpectations(t)
		lines.AssertNotCalled(t, "ScheduleFIRQ")
		assert.Equal(t, SourceVBORD, mem.Read8(regIRQEnable))
	})

	t.Run("FIRQ", func(t *testing.T) {
		lines := &linesMock{}
		lines.On("ScheduleFIRQ").Return().Once()

		mem := NewMemory()
		mem.IO().Connect(lines)
		mem.Write8(regInit0, init0FIRQEnable)
		mem.Write8(regFIRQEnable, SourceCartridge)

		mem.IO().Raise(SourceCartridge)

		lines.AssertExpectations(t)
		lines.AssertNotCalled(t, "ScheduleIRQ")
		assert.Equal(t, SourceCartridge, mem.Read8(regFIRQEnable))
		assert.Equal(t, uint8(0), mem.Read8(regFIRQEnable), "status cleared by the read")
	})

	t.Run("GIME interrupts disabled in INIT0", func(t *testing.T) {
		lines := &linesMock{}

		mem := NewMemory()
		mem.IO().Connect(lines)
		mem.Write8(regIRQEnable, 0xff)
		mem.Write8(regFIRQEnable, 0xff)

		mem.IO().Raise(SourceTimer)

		lines.AssertNotCalled(t, "ScheduleIRQ")
		lines.AssertNotCalled(t, "ScheduleFIRQ")
	})
}

func Test_IO_TimerInterrupt(t *testing.T) {
	lines := &linesMock{}
	lines.On("ScheduleIRQ").Return().Twice()

	mem := NewMemory()
	mem.IO().Connect(lines)
	mem.Write8(regInit0, init0IRQEnable)
	mem.Write8(regIRQEnable, SourceTimer)
	mem.Write8(regTimerMSB, 0x00)
	mem.Write8(regTimerLSB, 0x10)
	assert.Equal(t, uint8(0x10), mem.Read8(regTimerLSB))

	mem.IO().Tick(0x0f)
	mem.IO().Tick(0x11)

	lines.AssertExpectations(t)
}

func Test_IO_Ports(t *testing.T) {
	pia := &portMock{}
	pia.On("Read8", uint16(0xff00)).Return(uint8(0x7f))
	pia.On("Write8", uint16(0xff02), uint8(0x55)).Return()

	disk := &portMock{}
	disk.On("Read8", uint16(0xff48)).Return(uint8(0x80))

	mem := NewMemory()
	mem.IO().Attach(0xff00, 0xff1f, pia)
	mem.IO().Attach(0xff40, 0xff5f, disk)

	assert.Equal(t, uint8(0x7f), mem.Read8(0xff00))
	mem.Write8(0xff02, 0x55)
	assert.Equal(t, uint8(0x80), mem.Read8(0xff48))
	assert.Equal(t, uint8(0xff), mem.Read8(0xff30), "nothing attached")
	assert.Equal(t, uint8(0xff), mem.Peek8(0xff48), "peek doesn't reach ports")

	pia.AssertExpectations(t)
	disk.AssertNumberOfCalls(t, "Read8", 1)
}

func Test_IO_ScreenStart(t *testing.T) {
	mem := NewMemory()
	mem.Write8(regVertOffHi, 0x12)
	mem.Write8(regVertOffLo, 0x34)

	assert.Equal(t, uint32(0x91a0), mem.IO().ScreenStart())
	assert.Equal(t, uint8(0x12), mem.Read8(regVertOffHi))

	mem.Reset()
	assert.Equal(t, uint32(0), mem.IO().ScreenStart())
}
