package coco

type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

const (
	physicalSizeBytes = physicalBlocks * pageSizeBytes // 512KB
	romSizeBytes      = 0x8000
	ioStartAddr       = 0xff00
)

// Memory is the CPU side of the bus.
//
// $0000-$FEFF: translated by the MMU into physical RAM or ROM
// $FF00-$FFFF: I/O window (GIME, PIAs, disk controller, vectors)
type Memory struct {
	ram          []uint8
	systemROM    [romSizeBytes]uint8
	cartridgeROM [romSizeBytes]uint8

	mmu *MMU
	io  *IO
}

func NewMemory() *Memory {
	m := &Memory{
		ram: make([]uint8, physicalSizeBytes),
		mmu: NewMMU(),
	}
	m.io = newIO(m)
	return m
}

func (m *Memory) MMU() *MMU {
	return m.mmu
}

func (m *Memory) IO() *IO {
	return m.io
}

func (m *Memory) Reset() {
	m.mmu.Reset()
	m.io.Reset()
}

func (m *Memory) Read8(addr uint16) uint8 {
	if addr >= ioStartAddr {
		return m.io.Read8(addr)
	}

	reg, offset := m.mmu.Translate(addr)
	switch reg {
	case regionSystemROM:
		return m.systemROM[offset]
	case regionCartridgeROM:
		return m.cartridgeROM[offset]
	}
	return m.ram[offset]
}

func (m *Memory) Write8(addr uint16, data uint8) {
	if addr >= ioStartAddr {
		m.io.Write8(addr, data)
		return
	}

	reg, offset := m.mmu.Translate(addr)
	if reg != regionRAM {
		// ROM is not writable
		return
	}
	m.ram[offset] = data
}

// ReadPhysicalByte reads RAM by physical offset, bypassing the MMU. The
// offset wraps at the end of physical memory.
func (m *Memory) ReadPhysicalByte(offset uint32) uint8 {
	return m.ram[offset%physicalSizeBytes]
}

func (m *Memory) WritePhysicalByte(offset uint32, data uint8) {
	m.ram[offset%physicalSizeBytes] = data
}

// LoadSystemROM copies an image into the system ROM. Images shorter than
// the ROM are mirrored until it is full.
func (m *Memory) LoadSystemROM(data []uint8) {
	fillROM(m.systemROM[:], data)
}

func (m *Memory) LoadCartridgeROM(data []uint8) {
	fillROM(m.cartridgeROM[:], data)
}

func fillROM(rom []uint8, data []uint8) {
	if len(data) == 0 {
		for i := range rom {
			rom[i] = 0
		}
		return
	}
	for i := 0; i < len(rom); i += len(data) {
		copy(rom[i:], data)
	}
}

// vector reads a byte from the top 16 bytes of the system ROM, which the
// hardware mirrors at $FFF0-$FFFF.
func (m *Memory) vector(addr uint16) uint8 {
	return m.systemROM[romSizeBytes-0x10+int(addr&0xf)]
}

// Peek8 reads like Read8 but without touching I/O side effects.
func (m *Memory) Peek8(addr uint16) uint8 {
	if addr >= ioStartAddr {
		return m.io.peek8(addr)
	}
	return m.Read8(addr)
}
