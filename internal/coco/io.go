package coco

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// GIME registers in the I/O window
const (
	regInit0      = 0xff90
	regInit1      = 0xff91
	regIRQEnable  = 0xff92
	regFIRQEnable = 0xff93
	regTimerMSB   = 0xff94
	regTimerLSB   = 0xff95
	regVertOffHi  = 0xff9d
	regVertOffLo  = 0xff9e
	regPARStart   = 0xffa0
	regPAREnd     = 0xffaf
	regSAMROM     = 0xffde
	regSAMAllRAM  = 0xffdf
	vectorStart   = 0xfff0
)

// INIT0 bits
const (
	init0ROMMode    = 0x03
	init0FIRQEnable = 0x10
	init0IRQEnable  = 0x20
	init0MMUEnable  = 0x40
)

const init1TaskSelect = 0x01

// Interrupt sources, as laid out in IRQENR/FIRQENR.
const (
	SourceCartridge = uint8(1 << iota)
	SourceKeyboard
	SourceSerial
	SourceVBORD
	SourceHBORD
	SourceTimer
)

// Port is a peripheral mapped into the I/O window: disk controller, PIAs,
// cassette and so on. It receives the full logical address.
type Port interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// InterruptLines is where the GIME drives the CPU interrupt inputs.
type InterruptLines interface {
	ScheduleIRQ()
	ScheduleFIRQ()
}

type portRange struct {
	lo, hi uint16
	port   Port
}

// IO dispatches the $FF00-$FFFF window. The GIME registers that control
// memory mapping, the timer and the interrupt enables live here, everything
// else goes to attached ports.
type IO struct {
	mem   *Memory
	lines InterruptLines
	ports []portRange

	init0      uint8
	init1      uint8
	irqEnable  uint8
	firqEnable uint8
	irqStatus  uint8
	firqStatus uint8
	vertOffset uint16

	timer Timer
}

func newIO(mem *Memory) *IO {
	return &IO{mem: mem}
}

// Connect wires the GIME interrupt outputs to the CPU.
func (io *IO) Connect(lines InterruptLines) {
	io.lines = lines
}

// Attach maps a peripheral on [lo, hi]. Later attachments win on overlap.
func (io *IO) Attach(lo, hi uint16, port Port) {
	io.ports = append(io.ports, portRange{lo: lo, hi: hi, port: port})
	sort.SliceStable(io.ports, func(i, j int) bool {
		return io.ports[i].lo < io.ports[j].lo
	})
}

func (io *IO) Reset() {
	io.init0 = 0
	io.init1 = 0
	io.irqEnable = 0
	io.firqEnable = 0
	io.irqStatus = 0
	io.firqStatus = 0
	io.vertOffset = 0
	io.timer.Reset()
}

func (io *IO) port(addr uint16) Port {
	var found Port
	for _, p := range io.ports {
		if addr >= p.lo && addr <= p.hi {
			found = p.port
		}
	}
	return found
}

func (io *IO) Read8(addr uint16) uint8 {
	switch {
	case addr >= vectorStart:
		return io.mem.vector(addr)
	case addr >= regPARStart && addr <= regPAREnd:
		i := int(addr - regPARStart)
		return io.mem.mmu.PAR(i >= 8, i&0x7)
	}

	switch addr {
	case regInit0:
		return io.init0
	case regInit1:
		return io.init1
	case regIRQEnable:
		v := io.irqStatus
		io.irqStatus = 0
		return v
	case regFIRQEnable:
		v := io.firqStatus
		io.firqStatus = 0
		return v
	case regTimerMSB:
		return uint8(io.timer.Reload() >> 8)
	case regTimerLSB:
		return uint8(io.timer.Reload())
	case regVertOffHi:
		return hi(io.vertOffset)
	case regVertOffLo:
		return lo(io.vertOffset)
	}

	if p := io.port(addr); p != nil {
		return p.Read8(addr)
	}
	logrus.WithField("addr", addr).Debug("io: read from unmapped register")
	return 0xff
}

// peek8 reads GIME registers without clearing the interrupt status. Ports
// are not asked.
func (io *IO) peek8(addr uint16) uint8 {
	switch addr {
	case regIRQEnable:
		return io.irqStatus
	case regFIRQEnable:
		return io.firqStatus
	}
	if io.port(addr) != nil {
		return 0xff
	}
	return io.Read8(addr)
}

func (io *IO) Write8(addr uint16, data uint8) {
	switch {
	case addr >= vectorStart:
		return
	case addr >= regPARStart && addr <= regPAREnd:
		i := int(addr - regPARStart)
		io.mem.mmu.SetPAR(i >= 8, i&0x7, data)
		return
	}

	switch addr {
	case regInit0:
		io.init0 = data
		io.mem.mmu.SetEnabled(data&init0MMUEnable != 0)
		io.mem.mmu.SetROMMode(data & init0ROMMode)
		logrus.WithField("value", data).Debug("io: INIT0 write")
		return
	case regInit1:
		io.init1 = data
		io.mem.mmu.SelectTask(data&init1TaskSelect != 0)
		logrus.WithField("value", data).Debug("io: INIT1 write")
		return
	case regIRQEnable:
		io.irqEnable = data
		return
	case regFIRQEnable:
		io.firqEnable = data
		return
	case regTimerMSB:
		io.timer.setMSB(data)
		return
	case regTimerLSB:
		io.timer.setLSB(data)
		return
	case regVertOffHi:
		io.vertOffset = word(data, lo(io.vertOffset))
		return
	case regVertOffLo:
		io.vertOffset = word(hi(io.vertOffset), data)
		return
	case regSAMROM:
		io.mem.mmu.SetAllRAM(false)
		return
	case regSAMAllRAM:
		io.mem.mmu.SetAllRAM(true)
		return
	}

	if p := io.port(addr); p != nil {
		p.Write8(addr, data)
		return
	}
	logrus.WithFields(logrus.Fields{"addr": addr, "value": data}).Debug("io: write to unmapped register")
}

// Raise signals an interrupt source. The GIME latches it and asserts IRQ
// and/or FIRQ depending on the enable registers.
func (io *IO) Raise(source uint8) {
	if io.init0&init0IRQEnable != 0 && io.irqEnable&source != 0 {
		io.irqStatus |= source
		if io.lines != nil {
			io.lines.ScheduleIRQ()
		}
	}
	if io.init0&init0FIRQEnable != 0 && io.firqEnable&source != 0 {
		io.firqStatus |= source
		if io.lines != nil {
			io.lines.ScheduleFIRQ()
		}
	}
}

// Tick advances the time driven GIME parts by a number of CPU cycles.
func (io *IO) Tick(cycles int) {
	for n := io.timer.Tick(cycles); n > 0; n-- {
		io.Raise(SourceTimer)
	}
}

// ScreenStart is the physical offset of the video buffer.
func (io *IO) ScreenStart() uint32 {
	return uint32(io.vertOffset) << 3
}
