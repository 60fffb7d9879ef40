package coco

import (
	"fmt"
	"strings"
)

// Peeker reads memory without side effects.
type Peeker interface {
	Peek8(addr uint16) uint8
}

var indexRegNames = [4]string{"X", "Y", "U", "S"}

var stackRegNames = [8]string{"CC", "A", "B", "DP", "X", "Y", "", "PC"}

// DisassembleOne decodes the instruction at addr and returns its text and
// length in bytes. Unassigned opcodes come out as "???" with length 1.
func DisassembleOne(mem Peeker, addr uint16) (string, int) {
	pc := addr
	page := uint8(0)
	opcode := mem.Peek8(pc)
	pc++
	if opcode == prefixPage2 || opcode == prefixPage3 {
		page = opcode
		opcode = mem.Peek8(pc)
		pc++
	}

	in := lookupInstr(page, opcode)
	if in.fn == nil {
		return "???", 1
	}

	peek16 := func(a uint16) uint16 {
		return word(mem.Peek8(a), mem.Peek8(a+1))
	}

	var operand string
	switch in.mode {
	case addrModeIMM:
		if in.width == widthWord {
			operand = fmt.Sprintf("#$%04X", peek16(pc))
			pc += 2
			break
		}
		post := mem.Peek8(pc)
		pc++
		switch in.name {
		case "TFR", "EXG":
			operand = regNames[post>>4] + "," + regNames[post&0x0f]
		case "PSHS", "PULS", "PSHU", "PULU":
			operand = stackRegList(post, in.name == "PSHS" || in.name == "PULS")
		default:
			operand = fmt.Sprintf("#$%02X", post)
		}
	case addrModeDIR:
		operand = fmt.Sprintf("<$%02X", mem.Peek8(pc))
		pc++
	case addrModeEXT:
		operand = fmt.Sprintf("$%04X", peek16(pc))
		pc += 2
	case addrModeIDX:
		var n int
		operand, n = indexedString(mem, pc)
		pc += uint16(n)
	case addrModeREL:
		offset := mem.Peek8(pc)
		pc++
		operand = fmt.Sprintf("$%04X", pc+signExtend8(offset))
	case addrModeLREL:
		offset := peek16(pc)
		pc += 2
		operand = fmt.Sprintf("$%04X", pc+offset)
	}

	if operand == "" {
		return in.name, int(pc - addr)
	}
	return fmt.Sprintf("%-5s %s", in.name, operand), int(pc - addr)
}

func stackRegList(post uint8, systemStack bool) string {
	var regs []string
	for i := 0; i < 8; i++ {
		if post&(1<<i) == 0 {
			continue
		}
		name := stackRegNames[i]
		if i == 6 {
			name = "U"
			if !systemStack {
				name = "S"
			}
		}
		regs = append(regs, name)
	}
	return strings.Join(regs, ",")
}

// indexedString renders an indexed operand starting at its postbyte.
func indexedString(mem Peeker, addr uint16) (string, int) {
	post := mem.Peek8(addr)
	r := indexRegNames[(post>>5)&0x3]
	if post&0x80 == 0 {
		return fmt.Sprintf("%d,%s", int16(signExtend5(post)), r), 1
	}

	n := 1
	var s string
	switch post & 0x0f {
	case 0x0:
		s = "," + r + "+"
	case 0x1:
		s = "," + r + "++"
	case 0x2:
		s = ",-" + r
	case 0x3:
		s = ",--" + r
	case 0x4:
		s = "," + r
	case 0x5:
		s = "B," + r
	case 0x6:
		s = "A," + r
	case 0x8:
		s = fmt.Sprintf("%d,%s", int8(mem.Peek8(addr+1)), r)
		n++
	case 0x9:
		s = fmt.Sprintf("%d,%s", int16(word(mem.Peek8(addr+1), mem.Peek8(addr+2))), r)
		n += 2
	case 0xb:
		s = "D," + r
	case 0xc:
		s = fmt.Sprintf("%d,PCR", int8(mem.Peek8(addr+1)))
		n++
	case 0xd:
		s = fmt.Sprintf("%d,PCR", int16(word(mem.Peek8(addr+1), mem.Peek8(addr+2))))
		n += 2
	case 0xf:
		s = fmt.Sprintf("$%04X", word(mem.Peek8(addr+1), mem.Peek8(addr+2)))
		n += 2
	default:
		return "???", n
	}

	if post&0x10 != 0 {
		s = "[" + s + "]"
	}
	return s, n
}

// Disassemble returns a map of addresses and their instructions between from
// and to, both inclusive.
func Disassemble(mem Peeker, from, to uint16) map[uint16]string {
	disasm := make(map[uint16]string)

	addr := uint32(from)
	for addr <= uint32(to) {
		text, n := DisassembleOne(mem, uint16(addr))
		disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s", addr, text)
		addr += uint32(n)
	}
	return disasm
}
