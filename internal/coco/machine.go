package coco

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	// 0.89MHz CPU clock, 60 frames per second
	cpuClockHz     = 894886
	cyclesPerFrame = cpuClockHz / 60
)

// Machine owns the whole emulated computer: CPU, memory, MMU and the I/O
// window. Everything runs on the goroutine that calls it.
type Machine struct {
	cpu *CPU
	mem *Memory

	paused     bool
	stepOnce   bool
	lastErr    error
	ticCounter uint64
}

func NewMachine() *Machine {
	m := &Machine{}
	m.mem = NewMemory()
	m.cpu = NewCPU(m.mem)
	m.mem.IO().Connect(m.cpu)
	return m
}

// NewMachineFromConfig builds a machine, loads the images named in cfg and
// resets it.
func NewMachineFromConfig(cfg Config) (*Machine, error) {
	m := NewMachine()

	if cfg.SystemROM != "" {
		data, err := ReadROMFile(cfg.SystemROM)
		if err != nil {
			return nil, fmt.Errorf("system rom %s: %w", cfg.SystemROM, err)
		}
		m.mem.LoadSystemROM(data)
	}
	if cfg.CartridgeROM != "" {
		data, err := ReadROMFile(cfg.CartridgeROM)
		if err != nil {
			return nil, fmt.Errorf("cartridge rom %s: %w", cfg.CartridgeROM, err)
		}
		m.mem.LoadCartridgeROM(data)
	}

	m.Reset()
	m.mem.MMU().SetAllRAM(cfg.AllRAM)

	if cfg.Program != "" {
		data, err := ReadProgramFile(cfg.Program)
		if err != nil {
			return nil, fmt.Errorf("program %s: %w", cfg.Program, err)
		}
		m.LoadProgram(cfg.LoadAddr, data)
	}
	if cfg.EntryAddr >= 0 {
		regs := m.cpu.Registers()
		regs.PC = uint16(cfg.EntryAddr)
		m.cpu.SetRegisters(regs)
	}

	logrus.WithFields(logrus.Fields{
		"pc":     m.cpu.Registers().PC,
		"allRAM": cfg.AllRAM,
	}).Info("machine: ready")
	return m, nil
}

func (m *Machine) CPU() *CPU {
	return m.cpu
}

func (m *Machine) Memory() *Memory {
	return m.mem
}

// Reset puts the MMU and GIME back into their power-on state and resets the
// CPU, which reads the reset vector through the fresh mapping.
func (m *Machine) Reset() {
	m.mem.Reset()
	m.cpu.Reset()
	m.ticCounter = 0
	m.lastErr = nil
}

// LoadProgram writes data through the bus starting at addr. Bytes that land
// on ROM are dropped like any other CPU write.
func (m *Machine) LoadProgram(addr uint16, data []uint8) {
	for i, b := range data {
		m.mem.Write8(addr+uint16(i), b)
	}
}

// Step runs one instruction, advances the GIME by the cycles it used and
// services pending interrupts. A decode failure is returned untouched and
// leaves the machine where it stopped.
func (m *Machine) Step() (int, error) {
	n, err := m.cpu.Step()
	if err != nil {
		fields := logrus.Fields{"cycles": m.cpu.TotalCycles()}
		var mi *MalformedInstruction
		if errors.As(err, &mi) {
			fields["pc"] = fmt.Sprintf("$%04X", mi.PC)
			fields["opcode"] = fmt.Sprintf("$%02X", mi.Opcode)
			fields["page"] = fmt.Sprintf("$%02X", mi.Page)
		}
		logrus.WithFields(fields).WithError(err).Error("machine: decode failure")
		return n, err
	}
	m.mem.IO().Tick(n)
	n += m.cpu.ServiceInterrupts()
	return n, nil
}

// RunFor steps until at least the given number of cycles has passed or an
// instruction fails. It returns the cycles actually run.
func (m *Machine) RunFor(cycles int) (int, error) {
	total := 0
	for total < cycles {
		n, err := m.Step()
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Tic runs one video frame worth of cycles and signals the vertical border.
// Paused machines only move when a single step was requested. A decode
// failure pauses the machine.
func (m *Machine) Tic() {
	m.ticCounter++

	if m.paused {
		if !m.stepOnce {
			return
		}
		m.stepOnce = false
		if _, err := m.Step(); err != nil {
			m.lastErr = err
		}
		return
	}

	if _, err := m.RunFor(cyclesPerFrame); err != nil {
		m.lastErr = err
		m.paused = true
		return
	}
	m.mem.IO().Raise(SourceVBORD)
}

func (m *Machine) TogglePause() {
	m.paused = !m.paused
}

func (m *Machine) OneStepAndStop() {
	m.paused = true
	m.stepOnce = true
}

// ScreenStart is the physical offset of the video buffer set through the
// GIME vertical offset registers.
func (m *Machine) ScreenStart() uint32 {
	return m.mem.IO().ScreenStart()
}

func (m *Machine) ReadPhysicalByte(offset uint32) uint8 {
	return m.mem.ReadPhysicalByte(offset)
}

func (m *Machine) Disassemble(from, to uint16) map[uint16]string {
	return Disassemble(m.mem, from, to)
}

type DebugInfo struct {
	Registers
	State   string
	Cycles  uint64
	Paused  bool
	MMU     bool
	Task    bool
	AllRAM  bool
	ROMMode uint8
	Err     error
}

func (m *Machine) DebugInfo() DebugInfo {
	mmu := m.mem.MMU()
	return DebugInfo{
		Registers: m.cpu.Registers(),
		State:     m.cpu.State(),
		Cycles:    m.cpu.TotalCycles(),
		Paused:    m.paused,
		MMU:       mmu.Enabled(),
		Task:      mmu.TaskSelected(),
		AllRAM:    mmu.AllRAM(),
		ROMMode:   mmu.ROMMode(),
		Err:       m.lastErr,
	}
}
