package coco

import (
	"github.com/stretchr/testify/mock"
)

// flatMem is 64KB of plain RAM without any mapping or I/O.
type flatMem struct {
	data [0x10000]uint8
}

func newFlatMem() *flatMem {
	return &flatMem{}
}

func (m *flatMem) Read8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *flatMem) Write8(addr uint16, data uint8) {
	m.data[addr] = data
}

func (m *flatMem) Peek8(addr uint16) uint8 {
	return m.data[addr]
}

func (m *flatMem) load(addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		m.data[addr+uint16(i)] = b
	}
}

// newTestCPU places a program at pc and points the CPU at it.
func newTestCPU(pc uint16, program ...uint8) (*CPU, *flatMem) {
	mem := newFlatMem()
	mem.load(pc, program...)
	cpu := NewCPU(mem)
	cpu.reg.PC = pc
	return cpu, mem
}

type memMock struct {
	mock.Mock
}

func (m *memMock) Read8(addr uint16) uint8 {
	args := m.Called(addr)
	return args.Get(0).(uint8)
}

func (m *memMock) Write8(addr uint16, data uint8) {
	m.Called(addr, data)
}

type linesMock struct {
	mock.Mock
}

func (m *linesMock) ScheduleIRQ() {
	m.Called()
}

func (m *linesMock) ScheduleFIRQ() {
	m.Called()
}
