package coco

import (
	"github.com/sirupsen/logrus"
)

const (
	pageSizeBytes = 0x2000 // one 8KB window/block
	pageShift     = 13
	pageMask      = 0x1fff

	physicalBlocks  = 64 // 512KB
	parMask         = physicalBlocks - 1
	parROMAlias     = 0x3d
	parROMAliasNext = parROMAlias + 1
)

// ROM overlay modes, INIT0 bits 0-1
const (
	romModeSplit16     = 0x0 // 16KB system ROM + 16KB cartridge
	romModeSplit16Alt  = 0x1 // same as romModeSplit16
	romModeSystem32    = 0x2 // 32KB system ROM
	romModeCartridge32 = 0x3 // 32KB cartridge ROM
)

type region uint8

const (
	regionRAM region = iota
	regionSystemROM
	regionCartridgeROM
)

// MMU translates 16-bit logical addresses into offsets of the physical RAM or
// of one of the ROM images.
//
// The logical space is split into eight 8KB windows. With the MMU enabled the
// active PAR set picks the physical block behind every window. With the MMU
// disabled the windows map 1:1 to the first eight blocks and the upper half
// is covered by ROM unless all-RAM mode is set.
type MMU struct {
	enabled bool
	task    bool // task PAR set active instead of the executive one
	allRAM  bool
	romMode uint8

	executivePARs [8]uint8
	taskPARs      [8]uint8
}

func NewMMU() *MMU {
	return &MMU{}
}

func (m *MMU) Reset() {
	m.enabled = false
	m.task = false
	m.allRAM = false
	m.romMode = romModeSplit16
}

func (m *MMU) Enabled() bool {
	return m.enabled
}

func (m *MMU) SetEnabled(v bool) {
	m.enabled = v
}

func (m *MMU) TaskSelected() bool {
	return m.task
}

func (m *MMU) SelectTask(v bool) {
	m.task = v
}

func (m *MMU) AllRAM() bool {
	return m.allRAM
}

func (m *MMU) SetAllRAM(v bool) {
	m.allRAM = v
}

func (m *MMU) ROMMode() uint8 {
	return m.romMode
}

func (m *MMU) SetROMMode(mode uint8) {
	m.romMode = mode & 0x3
}

// normalizePAR reproduces the GIME aliasing: only 6 bits are kept and the
// block reserved for the ROM image moves to the next one.
func normalizePAR(v uint8) uint8 {
	v &= parMask
	if v == parROMAlias {
		return parROMAliasNext
	}
	return v
}

// SetPAR writes one page address register of the executive or task set.
func (m *MMU) SetPAR(task bool, window int, value uint8) {
	value = normalizePAR(value)
	window &= 0x7
	if task {
		m.taskPARs[window] = value
	} else {
		m.executivePARs[window] = value
	}
	logrus.WithFields(logrus.Fields{
		"task":   task,
		"window": window,
		"block":  value,
	}).Debug("mmu: PAR write")
}

func (m *MMU) PAR(task bool, window int) uint8 {
	window &= 0x7
	if task {
		return m.taskPARs[window]
	}
	return m.executivePARs[window]
}

// Translate maps a logical address to a backing region and an offset inside
// it. The I/O window is not handled here.
func (m *MMU) Translate(addr uint16) (region, uint32) {
	window := int(addr >> pageShift)

	if !m.enabled {
		if !m.allRAM && addr >= 0x8000 {
			return m.translateROM(addr)
		}
		return regionRAM, uint32(window)<<pageShift | uint32(addr&pageMask)
	}

	block := m.PAR(m.task, window)
	return regionRAM, uint32(block)<<pageShift | uint32(addr&pageMask)
}

func (m *MMU) translateROM(addr uint16) (region, uint32) {
	offset := uint32(addr - 0x8000)
	switch m.romMode {
	case romModeSystem32:
		return regionSystemROM, offset
	case romModeCartridge32:
		return regionCartridgeROM, offset
	}
	if addr < 0xc000 {
		return regionSystemROM, offset
	}
	return regionCartridgeROM, uint32(addr - 0xc000)
}
