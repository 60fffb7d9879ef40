package coco

type operandWidth uint8

const (
	widthNone operandWidth = iota // operand is an address or nothing, memory is not read
	widthByte
	widthWord
)

type instr struct {
	name   string
	mode   addrMode
	width  operandWidth
	fn     func(*CPU)
	cycles uint8
}

// Opcode tables for the primary page and the pages behind the 0x10 and 0x11
// prefixes. Built once by init and never written afterwards. An entry with a
// nil fn is an unassigned opcode.
var (
	primary [0x100]instr
	page2   [0x100]instr
	page3   [0x100]instr
)

const (
	prefixPage2 = 0x10
	prefixPage3 = 0x11
)

func init() {
	initInstructions()
}

func lookupInstr(page, opcode uint8) instr {
	switch page {
	case prefixPage2:
		return page2[opcode]
	case prefixPage3:
		return page3[opcode]
	}
	return primary[opcode]
}

type unaryOp func(c *CPU, v uint8) uint8

type binaryOp func(c *CPU, a, m uint8) uint8

func onA(f unaryOp) func(*CPU) {
	return func(c *CPU) { c.reg.A = f(c, c.reg.A) }
}

func onB(f unaryOp) func(*CPU) {
	return func(c *CPU) { c.reg.B = f(c, c.reg.B) }
}

// onMem is a read-modify-write on the resolved operand.
func onMem(f unaryOp) func(*CPU) {
	return func(c *CPU) { c.write8(c.op.addr, f(c, c.op.value8)) }
}

func peekA(f unaryOp) func(*CPU) {
	return func(c *CPU) { f(c, c.reg.A) }
}

func peekB(f unaryOp) func(*CPU) {
	return func(c *CPU) { f(c, c.reg.B) }
}

func peekMem(f unaryOp) func(*CPU) {
	return func(c *CPU) { f(c, c.op.value8) }
}

func intoA(f binaryOp) func(*CPU) {
	return func(c *CPU) { c.reg.A = f(c, c.reg.A, c.op.value8) }
}

func intoB(f binaryOp) func(*CPU) {
	return func(c *CPU) { c.reg.B = f(c, c.reg.B, c.op.value8) }
}

// withA and withB only keep the flags: CMP and BIT.
func withA(f binaryOp) func(*CPU) {
	return func(c *CPU) { f(c, c.reg.A, c.op.value8) }
}

func withB(f binaryOp) func(*CPU) {
	return func(c *CPU) { f(c, c.reg.B, c.op.value8) }
}

func initInstructions() {
	primary[0x00] = instr{name: "NEG", mode: addrModeDIR, width: widthByte, fn: onMem((*CPU).neg), cycles: 6}
	primary[0x03] = instr{name: "COM", mode: addrModeDIR, width: widthByte, fn: onMem((*CPU).com), cycles: 6}
	primary[0x04] = instr{name: "LSR", mode: addrModeDIR, width: widthByte, fn: onMem((*CPU).lsr), cycles: 6}
	primary[0x06] = instr{name: "ROR", mode: addrModeDIR, width: widthByte, fn: onMem((*CPU).ror), cycles: 6}
	primary[0x07] = instr{name: "ASR", mode: addrModeDIR, width: widthByte, fn: onMem((*CPU).asr), cycles: 6}
	primary[0x08] = instr{name: "ASL", mode: addrModeDIR, width: widthByte, fn: onMem((*CPU).asl), cycles: 6}
	primary[0x09] = instr{name: "ROL", mode: addrModeDIR, width: widthByte, fn: onMem((*CPU).rol), cycles: 6}
	primary[0x0a] = instr{name: "DEC", mode: addrModeDIR, width: widthByte, fn: onMem((*CPU).dec), cycles: 6}
	primary[0x0c] = instr{name: "INC", mode: addrModeDIR, width: widthByte, fn: onMem((*CPU).inc), cycles: 6}
	primary[0x0d] = instr{name: "TST", mode: addrModeDIR, width: widthByte, fn: peekMem((*CPU).tst), cycles: 6}
	primary[0x0e] = instr{name: "JMP", mode: addrModeDIR, width: widthNone, fn: (*CPU).jmp, cycles: 3}
	primary[0x0f] = instr{name: "CLR", mode: addrModeDIR, width: widthByte, fn: onMem((*CPU).clr), cycles: 6}
	primary[0x12] = instr{name: "NOP", mode: addrModeINH, width: widthNone, fn: (*CPU).nop, cycles: 2}
	primary[0x13] = instr{name: "SYNC", mode: addrModeINH, width: widthNone, fn: (*CPU).sync, cycles: 4}
	primary[0x16] = instr{name: "LBRA", mode: addrModeLREL, width: widthWord, fn: (*CPU).lbra, cycles: 5}
	primary[0x17] = instr{name: "LBSR", mode: addrModeLREL, width: widthWord, fn: (*CPU).lbsr, cycles: 9}
	primary[0x19] = instr{name: "DAA", mode: addrModeINH, width: widthNone, fn: (*CPU).daa, cycles: 2}
	primary[0x1a] = instr{name: "ORCC", mode: addrModeIMM, width: widthByte, fn: (*CPU).orcc, cycles: 3}
	primary[0x1c] = instr{name: "ANDCC", mode: addrModeIMM, width: widthByte, fn: (*CPU).andcc, cycles: 3}
	primary[0x1d] = instr{name: "SEX", mode: addrModeINH, width: widthNone, fn: (*CPU).sex, cycles: 2}
	primary[0x1e] = instr{name: "EXG", mode: addrModeIMM, width: widthByte, fn: (*CPU).exg, cycles: 8}
	primary[0x1f] = instr{name: "TFR", mode: addrModeIMM, width: widthByte, fn: (*CPU).tfr, cycles: 6}
	primary[0x20] = instr{name: "BRA", mode: addrModeREL, width: widthByte, fn: shortBranch(condAlways), cycles: 3}
	primary[0x21] = instr{name: "BRN", mode: addrModeREL, width: widthByte, fn: shortBranch(condNever), cycles: 3}
	primary[0x22] = instr{name: "BHI", mode: addrModeREL, width: widthByte, fn: shortBranch(condHigher), cycles: 3}
	primary[0x23] = instr{name: "BLS", mode: addrModeREL, width: widthByte, fn: shortBranch(condLowerOrSame), cycles: 3}
	primary[0x24] = instr{name: "BCC", mode: addrModeREL, width: widthByte, fn: shortBranch(condCarryClear), cycles: 3}
	primary[0x25] = instr{name: "BCS", mode: addrModeREL, width: widthByte, fn: shortBranch(condCarrySet), cycles: 3}
	primary[0x26] = instr{name: "BNE", mode: addrModeREL, width: widthByte, fn: shortBranch(condNotEqual), cycles: 3}
	primary[0x27] = instr{name: "BEQ", mode: addrModeREL, width: widthByte, fn: shortBranch(condEqual), cycles: 3}
	primary[0x28] = instr{name: "BVC", mode: addrModeREL, width: widthByte, fn: shortBranch(condOverflowClear), cycles: 3}
	primary[0x29] = instr{name: "BVS", mode: addrModeREL, width: widthByte, fn: shortBranch(condOverflowSet), cycles: 3}
	primary[0x2a] = instr{name: "BPL", mode: addrModeREL, width: widthByte, fn: shortBranch(condPlus), cycles: 3}
	primary[0x2b] = instr{name: "BMI", mode: addrModeREL, width: widthByte, fn: shortBranch(condMinus), cycles: 3}
	primary[0x2c] = instr{name: "BGE", mode: addrModeREL, width: widthByte, fn: shortBranch(condGreaterOrEqual), cycles: 3}
	primary[0x2d] = instr{name: "BLT", mode: addrModeREL, width: widthByte, fn: shortBranch(condLess), cycles: 3}
	primary[0x2e] = instr{name: "BGT", mode: addrModeREL, width: widthByte, fn: shortBranch(condGreater), cycles: 3}
	primary[0x2f] = instr{name: "BLE", mode: addrModeREL, width: widthByte, fn: shortBranch(condLessOrEqual), cycles: 3}
	primary[0x30] = instr{name: "LEAX", mode: addrModeIDX, width: widthNone, fn: (*CPU).leax, cycles: 4}
	primary[0x31] = instr{name: "LEAY", mode: addrModeIDX, width: widthNone, fn: (*CPU).leay, cycles: 4}
	primary[0x32] = instr{name: "LEAS", mode: addrModeIDX, width: widthNone, fn: (*CPU).leas, cycles: 4}
	primary[0x33] = instr{name: "LEAU", mode: addrModeIDX, width: widthNone, fn: (*CPU).leau, cycles: 4}
	primary[0x34] = instr{name: "PSHS", mode: addrModeIMM, width: widthByte, fn: (*CPU).pshs, cycles: 5}
	primary[0x35] = instr{name: "PULS", mode: addrModeIMM, width: widthByte, fn: (*CPU).puls, cycles: 5}
	primary[0x36] = instr{name: "PSHU", mode: addrModeIMM, width: widthByte, fn: (*CPU).pshu, cycles: 5}
	primary[0x37] = instr{name: "PULU", mode: addrModeIMM, width: widthByte, fn: (*CPU).pulu, cycles: 5}
	primary[0x39] = instr{name: "RTS", mode: addrModeINH, width: widthNone, fn: (*CPU).rts, cycles: 5}
	primary[0x3a] = instr{name: "ABX", mode: addrModeINH, width: widthNone, fn: (*CPU).abx, cycles: 3}
	primary[0x3b] = instr{name: "RTI", mode: addrModeINH, width: widthNone, fn: (*CPU).rti, cycles: 6}
	primary[0x3c] = instr{name: "CWAI", mode: addrModeIMM, width: widthByte, fn: (*CPU).cwai, cycles: 20}
	primary[0x3d] = instr{name: "MUL", mode: addrModeINH, width: widthNone, fn: (*CPU).mul, cycles: 11}
	primary[0x3f] = instr{name: "SWI", mode: addrModeINH, width: widthNone, fn: (*CPU).swi, cycles: 19}
	primary[0x40] = instr{name: "NEGA", mode: addrModeINH, width: widthNone, fn: onA((*CPU).neg), cycles: 2}
	primary[0x43] = instr{name: "COMA", mode: addrModeINH, width: widthNone, fn: onA((*CPU).com), cycles: 2}
	primary[0x44] = instr{name: "LSRA", mode: addrModeINH, width: widthNone, fn: onA((*CPU).lsr), cycles: 2}
	primary[0x46] = instr{name: "RORA", mode: addrModeINH, width: widthNone, fn: onA((*CPU).ror), cycles: 2}
	primary[0x47] = instr{name: "ASRA", mode: addrModeINH, width: widthNone, fn: onA((*CPU).asr), cycles: 2}
	primary[0x48] = instr{name: "ASLA", mode: addrModeINH, width: widthNone, fn: onA((*CPU).asl), cycles: 2}
	primary[0x49] = instr{name: "ROLA", mode: addrModeINH, width: widthNone, fn: onA((*CPU).rol), cycles: 2}
	primary[0x4a] = instr{name: "DECA", mode: addrModeINH, width: widthNone, fn: onA((*CPU).dec), cycles: 2}
	primary[0x4c] = instr{name: "INCA", mode: addrModeINH, width: widthNone, fn: onA((*CPU).inc), cycles: 2}
	primary[0x4d] = instr{name: "TSTA", mode: addrModeINH, width: widthNone, fn: peekA((*CPU).tst), cycles: 2}
	primary[0x4f] = instr{name: "CLRA", mode: addrModeINH, width: widthNone, fn: onA((*CPU).clr), cycles: 2}
	primary[0x50] = instr{name: "NEGB", mode: addrModeINH, width: widthNone, fn: onB((*CPU).neg), cycles: 2}
	primary[0x53] = instr{name: "COMB", mode: addrModeINH, width: widthNone, fn: onB((*CPU).com), cycles: 2}
	primary[0x54] = instr{name: "LSRB", mode: addrModeINH, width: widthNone, fn: onB((*CPU).lsr), cycles: 2}
	primary[0x56] = instr{name: "RORB", mode: addrModeINH, width: widthNone, fn: onB((*CPU).ror), cycles: 2}
	primary[0x57] = instr{name: "ASRB", mode: addrModeINH, width: widthNone, fn: onB((*CPU).asr), cycles: 2}
	primary[0x58] = instr{name: "ASLB", mode: addrModeINH, width: widthNone, fn: onB((*CPU).asl), cycles: 2}
	primary[0x59] = instr{name: "ROLB", mode: addrModeINH, width: widthNone, fn: onB((*CPU).rol), cycles: 2}
	primary[0x5a] = instr{name: "DECB", mode: addrModeINH, width: widthNone, fn: onB((*CPU).dec), cycles: 2}
	primary[0x5c] = instr{name: "INCB", mode: addrModeINH, width: widthNone, fn: onB((*CPU).inc), cycles: 2}
	primary[0x5d] = instr{name: "TSTB", mode: addrModeINH, width: widthNone, fn: peekB((*CPU).tst), cycles: 2}
	primary[0x5f] = instr{name: "CLRB", mode: addrModeINH, width: widthNone, fn: onB((*CPU).clr), cycles: 2}
	primary[0x60] = instr{name: "NEG", mode: addrModeIDX, width: widthByte, fn: onMem((*CPU).neg), cycles: 6}
	primary[0x63] = instr{name: "COM", mode: addrModeIDX, width: widthByte, fn: onMem((*CPU).com), cycles: 6}
	primary[0x64] = instr{name: "LSR", mode: addrModeIDX, width: widthByte, fn: onMem((*CPU).lsr), cycles: 6}
	primary[0x66] = instr{name: "ROR", mode: addrModeIDX, width: widthByte, fn: onMem((*CPU).ror), cycles: 6}
	primary[0x67] = instr{name: "ASR", mode: addrModeIDX, width: widthByte, fn: onMem((*CPU).asr), cycles: 6}
	primary[0x68] = instr{name: "ASL", mode: addrModeIDX, width: widthByte, fn: onMem((*CPU).asl), cycles: 6}
	primary[0x69] = instr{name: "ROL", mode: addrModeIDX, width: widthByte, fn: onMem((*CPU).rol), cycles: 6}
	primary[0x6a] = instr{name: "DEC", mode: addrModeIDX, width: widthByte, fn: onMem((*CPU).dec), cycles: 6}
	primary[0x6c] = instr{name: "INC", mode: addrModeIDX, width: widthByte, fn: onMem((*CPU).inc), cycles: 6}
	primary[0x6d] = instr{name: "TST", mode: addrModeIDX, width: widthByte, fn: peekMem((*CPU).tst), cycles: 6}
	primary[0x6e] = instr{name: "JMP", mode: addrModeIDX, width: widthNone, fn: (*CPU).jmp, cycles: 3}
	primary[0x6f] = instr{name: "CLR", mode: addrModeIDX, width: widthByte, fn: onMem((*CPU).clr), cycles: 6}
	primary[0x70] = instr{name: "NEG", mode: addrModeEXT, width: widthByte, fn: onMem((*CPU).neg), cycles: 7}
	primary[0x73] = instr{name: "COM", mode: addrModeEXT, width: widthByte, fn: onMem((*CPU).com), cycles: 7}
	primary[0x74] = instr{name: "LSR", mode: addrModeEXT, width: widthByte, fn: onMem((*CPU).lsr), cycles: 7}
	primary[0x76] = instr{name: "ROR", mode: addrModeEXT, width: widthByte, fn: onMem((*CPU).ror), cycles: 7}
	primary[0x77] = instr{name: "ASR", mode: addrModeEXT, width: widthByte, fn: onMem((*CPU).asr), cycles: 7}
	primary[0x78] = instr{name: "ASL", mode: addrModeEXT, width: widthByte, fn: onMem((*CPU).asl), cycles: 7}
	primary[0x79] = instr{name: "ROL", mode: addrModeEXT, width: widthByte, fn: onMem((*CPU).rol), cycles: 7}
	primary[0x7a] = instr{name: "DEC", mode: addrModeEXT, width: widthByte, fn: onMem((*CPU).dec), cycles: 7}
	primary[0x7c] = instr{name: "INC", mode: addrModeEXT, width: widthByte, fn: onMem((*CPU).inc), cycles: 7}
	primary[0x7d] = instr{name: "TST", mode: addrModeEXT, width: widthByte, fn: peekMem((*CPU).tst), cycles: 7}
	primary[0x7e] = instr{name: "JMP", mode: addrModeEXT, width: widthNone, fn: (*CPU).jmp, cycles: 4}
	primary[0x7f] = instr{name: "CLR", mode: addrModeEXT, width: widthByte, fn: onMem((*CPU).clr), cycles: 7}
	primary[0x80] = instr{name: "SUBA", mode: addrModeIMM, width: widthByte, fn: intoA((*CPU).sub), cycles: 2}
	primary[0x81] = instr{name: "CMPA", mode: addrModeIMM, width: widthByte, fn: withA((*CPU).sub), cycles: 2}
	primary[0x82] = instr{name: "SBCA", mode: addrModeIMM, width: widthByte, fn: intoA((*CPU).sbc), cycles: 2}
	primary[0x83] = instr{name: "SUBD", mode: addrModeIMM, width: widthWord, fn: (*CPU).subd, cycles: 4}
	primary[0x84] = instr{name: "ANDA", mode: addrModeIMM, width: widthByte, fn: intoA((*CPU).and), cycles: 2}
	primary[0x85] = instr{name: "BITA", mode: addrModeIMM, width: widthByte, fn: withA((*CPU).and), cycles: 2}
	primary[0x86] = instr{name: "LDA", mode: addrModeIMM, width: widthByte, fn: intoA((*CPU).ld), cycles: 2}
	primary[0x88] = instr{name: "EORA", mode: addrModeIMM, width: widthByte, fn: intoA((*CPU).eor), cycles: 2}
	primary[0x89] = instr{name: "ADCA", mode: addrModeIMM, width: widthByte, fn: intoA((*CPU).adch), cycles: 2}
	primary[0x8a] = instr{name: "ORA", mode: addrModeIMM, width: widthByte, fn: intoA((*CPU).or), cycles: 2}
	primary[0x8b] = instr{name: "ADDA", mode: addrModeIMM, width: widthByte, fn: intoA((*CPU).addh), cycles: 2}
	primary[0x8c] = instr{name: "CMPX", mode: addrModeIMM, width: widthWord, fn: (*CPU).cmpx, cycles: 4}
	primary[0x8d] = instr{name: "BSR", mode: addrModeREL, width: widthByte, fn: (*CPU).bsr, cycles: 7}
	primary[0x8e] = instr{name: "LDX", mode: addrModeIMM, width: widthWord, fn: (*CPU).ldx, cycles: 3}
	primary[0x90] = instr{name: "SUBA", mode: addrModeDIR, width: widthByte, fn: intoA((*CPU).sub), cycles: 4}
	primary[0x91] = instr{name: "CMPA", mode: addrModeDIR, width: widthByte, fn: withA((*CPU).sub), cycles: 4}
	primary[0x92] = instr{name: "SBCA", mode: addrModeDIR, width: widthByte, fn: intoA((*CPU).sbc), cycles: 4}
	primary[0x93] = instr{name: "SUBD", mode: addrModeDIR, width: widthWord, fn: (*CPU).subd, cycles: 6}
	primary[0x94] = instr{name: "ANDA", mode: addrModeDIR, width: widthByte, fn: intoA((*CPU).and), cycles: 4}
	primary[0x95] = instr{name: "BITA", mode: addrModeDIR, width: widthByte, fn: withA((*CPU).and), cycles: 4}
	primary[0x96] = instr{name: "LDA", mode: addrModeDIR, width: widthByte, fn: intoA((*CPU).ld), cycles: 4}
	primary[0x97] = instr{name: "STA", mode: addrModeDIR, width: widthNone, fn: (*CPU).sta, cycles: 4}
	primary[0x98] = instr{name: "EORA", mode: addrModeDIR, width: widthByte, fn: intoA((*CPU).eor), cycles: 4}
	primary[0x99] = instr{name: "ADCA", mode: addrModeDIR, width: widthByte, fn: intoA((*CPU).adch), cycles: 4}
	primary[0x9a] = instr{name: "ORA", mode: addrModeDIR, width: widthByte, fn: intoA((*CPU).or), cycles: 4}
	primary[0x9b] = instr{name: "ADDA", mode: addrModeDIR, width: widthByte, fn: intoA((*CPU).addh), cycles: 4}
	primary[0x9c] = instr{name: "CMPX", mode: addrModeDIR, width: widthWord, fn: (*CPU).cmpx, cycles: 6}
	primary[0x9d] = instr{name: "JSR", mode: addrModeDIR, width: widthNone, fn: (*CPU).jsr, cycles: 7}
	primary[0x9e] = instr{name: "LDX", mode: addrModeDIR, width: widthWord, fn: (*CPU).ldx, cycles: 5}
	primary[0x9f] = instr{name: "STX", mode: addrModeDIR, width: widthNone, fn: (*CPU).stx, cycles: 5}
	primary[0xa0] = instr{name: "SUBA", mode: addrModeIDX, width: widthByte, fn: intoA((*CPU).sub), cycles: 4}
	primary[0xa1] = instr{name: "CMPA", mode: addrModeIDX, width: widthByte, fn: withA((*CPU).sub), cycles: 4}
	primary[0xa2] = instr{name: "SBCA", mode: addrModeIDX, width: widthByte, fn: intoA((*CPU).sbc), cycles: 4}
	primary[0xa3] = instr{name: "SUBD", mode: addrModeIDX, width: widthWord, fn: (*CPU).subd, cycles: 6}
	primary[0xa4] = instr{name: "ANDA", mode: addrModeIDX, width: widthByte, fn: intoA((*CPU).and), cycles: 4}
	primary[0xa5] = instr{name: "BITA", mode: addrModeIDX, width: widthByte, fn: withA((*CPU).and), cycles: 4}
	primary[0xa6] = instr{name: "LDA", mode: addrModeIDX, width: widthByte, fn: intoA((*CPU).ld), cycles: 4}
	primary[0xa7] = instr{name: "STA", mode: addrModeIDX, width: widthNone, fn: (*CPU).sta, cycles: 4}
	primary[0xa8] = instr{name: "EORA", mode: addrModeIDX, width: widthByte, fn: intoA((*CPU).eor), cycles: 4}
	primary[0xa9] = instr{name: "ADCA", mode: addrModeIDX, width: widthByte, fn: intoA((*CPU).adch), cycles: 4}
	primary[0xaa] = instr{name: "ORA", mode: addrModeIDX, width: widthByte, fn: intoA((*CPU).or), cycles: 4}
	primary[0xab] = instr{name: "ADDA", mode: addrModeIDX, width: widthByte, fn: intoA((*CPU).addh), cycles: 4}
	primary[0xac] = instr{name: "CMPX", mode: addrModeIDX, width: widthWord, fn: (*CPU).cmpx, cycles: 6}
	primary[0xad] = instr{name: "JSR", mode: addrModeIDX, width: widthNone, fn: (*CPU).jsr, cycles: 7}
	primary[0xae] = instr{name: "LDX", mode: addrModeIDX, width: widthWord, fn: (*CPU).ldx, cycles: 5}
	primary[0xaf] = instr{name: "STX", mode: addrModeIDX, width: widthNone, fn: (*CPU).stx, cycles: 5}
	primary[0xb0] = instr{name: "SUBA", mode: addrModeEXT, width: widthByte, fn: intoA((*CPU).sub), cycles: 5}
	primary[0xb1] = instr{name: "CMPA", mode: addrModeEXT, width: widthByte, fn: withA((*CPU).sub), cycles: 5}
	primary[0xb2] = instr{name: "SBCA", mode: addrModeEXT, width: widthByte, fn: intoA((*CPU).sbc), cycles: 5}
	primary[0xb3] = instr{name: "SUBD", mode: addrModeEXT, width: widthWord, fn: (*CPU).subd, cycles: 7}
	primary[0xb4] = instr{name: "ANDA", mode: addrModeEXT, width: widthByte, fn: intoA((*CPU).and), cycles: 5}
	primary[0xb5] = instr{name: "BITA", mode: addrModeEXT, width: widthByte, fn: withA((*CPU).and), cycles: 5}
	primary[0xb6] = instr{name: "LDA", mode: addrModeEXT, width: widthByte, fn: intoA((*CPU).ld), cycles: 5}
	primary[0xb7] = instr{name: "STA", mode: addrModeEXT, width: widthNone, fn: (*CPU).sta, cycles: 5}
	primary[0xb8] = instr{name: "EORA", mode: addrModeEXT, width: widthByte, fn: intoA((*CPU).eor), cycles: 5}
	primary[0xb9] = instr{name: "ADCA", mode: addrModeEXT, width: widthByte, fn: intoA((*CPU).adch), cycles: 5}
	primary[0xba] = instr{name: "ORA", mode: addrModeEXT, width: widthByte, fn: intoA((*CPU).or), cycles: 5}
	primary[0xbb] = instr{name: "ADDA", mode: addrModeEXT, width: widthByte, fn: intoA((*CPU).addh), cycles: 5}
	primary[0xbc] = instr{name: "CMPX", mode: addrModeEXT, width: widthWord, fn: (*CPU).cmpx, cycles: 7}
	primary[0xbd] = instr{name: "JSR", mode: addrModeEXT, width: widthNone, fn: (*CPU).jsr, cycles: 8}
	primary[0xbe] = instr{name: "LDX", mode: addrModeEXT, width: widthWord, fn: (*CPU).ldx, cycles: 6}
	primary[0xbf] = instr{name: "STX", mode: addrModeEXT, width: widthNone, fn: (*CPU).stx, cycles: 6}
	primary[0xc0] = instr{name: "SUBB", mode: addrModeIMM, width: widthByte, fn: intoB((*CPU).sub), cycles: 2}
	primary[0xc1] = instr{name: "CMPB", mode: addrModeIMM, width: widthByte, fn: withB((*CPU).sub), cycles: 2}
	primary[0xc2] = instr{name: "SBCB", mode: addrModeIMM, width: widthByte, fn: intoB((*CPU).sbc), cycles: 2}
	primary[0xc3] = instr{name: "ADDD", mode: addrModeIMM, width: widthWord, fn: (*CPU).addd, cycles: 4}
	primary[0xc4] = instr{name: "ANDB", mode: addrModeIMM, width: widthByte, fn: intoB((*CPU).and), cycles: 2}
	primary[0xc5] = instr{name: "BITB", mode: addrModeIMM, width: widthByte, fn: withB((*CPU).and), cycles: 2}
	primary[0xc6] = instr{name: "LDB", mode: addrModeIMM, width: widthByte, fn: intoB((*CPU).ld), cycles: 2}
	primary[0xc8] = instr{name: "EORB", mode: addrModeIMM, width: widthByte, fn: intoB((*CPU).eor), cycles: 2}
	primary[0xc9] = instr{name: "ADCB", mode: addrModeIMM, width: widthByte, fn: intoB((*CPU).adc), cycles: 2}
	primary[0xca] = instr{name: "ORB", mode: addrModeIMM, width: widthByte, fn: intoB((*CPU).or), cycles: 2}
	primary[0xcb] = instr{name: "ADDB", mode: addrModeIMM, width: widthByte, fn: intoB((*CPU).add), cycles: 2}
	primary[0xcc] = instr{name: "LDD", mode: addrModeIMM, width: widthWord, fn: (*CPU).ldd, cycles: 3}
	primary[0xce] = instr{name: "LDU", mode: addrModeIMM, width: widthWord, fn: (*CPU).ldu, cycles: 3}
	primary[0xd0] = instr{name: "SUBB", mode: addrModeDIR, width: widthByte, fn: intoB((*CPU).sub), cycles: 4}
	primary[0xd1] = instr{name: "CMPB", mode: addrModeDIR, width: widthByte, fn: withB((*CPU).sub), cycles: 4}
	primary[0xd2] = instr{name: "SBCB", mode: addrModeDIR, width: widthByte, fn: intoB((*CPU).sbc), cycles: 4}
	primary[0xd3] = instr{name: "ADDD", mode: addrModeDIR, width: widthWord, fn: (*CPU).addd, cycles: 6}
	primary[0xd4] = instr{name: "ANDB", mode: addrModeDIR, width: widthByte, fn: intoB((*CPU).and), cycles: 4}
	primary[0xd5] = instr{name: "BITB", mode: addrModeDIR, width: widthByte, fn: withB((*CPU).and), cycles: 4}
	primary[0xd6] = instr{name: "LDB", mode: addrModeDIR, width: widthByte, fn: intoB((*CPU).ld), cycles: 4}
	primary[0xd7] = instr{name: "STB", mode: addrModeDIR, width: widthNone, fn: (*CPU).stb, cycles: 4}
	primary[0xd8] = instr{name: "EORB", mode: addrModeDIR, width: widthByte, fn: intoB((*CPU).eor), cycles: 4}
	primary[0xd9] = instr{name: "ADCB", mode: addrModeDIR, width: widthByte, fn: intoB((*CPU).adc), cycles: 4}
	primary[0xda] = instr{name: "ORB", mode: addrModeDIR, width: widthByte, fn: intoB((*CPU).or), cycles: 4}
	primary[0xdb] = instr{name: "ADDB", mode: addrModeDIR, width: widthByte, fn: intoB((*CPU).add), cycles: 4}
	primary[0xdc] = instr{name: "LDD", mode: addrModeDIR, width: widthWord, fn: (*CPU).ldd, cycles: 5}
	primary[0xdd] = instr{name: "STD", mode: addrModeDIR, width: widthNone, fn: (*CPU).std, cycles: 5}
	primary[0xde] = instr{name: "LDU", mode: addrModeDIR, width: widthWord, fn: (*CPU).ldu, cycles: 5}
	primary[0xdf] = instr{name: "STU", mode: addrModeDIR, width: widthNone, fn: (*CPU).stu, cycles: 5}
	primary[0xe0] = instr{name: "SUBB", mode: addrModeIDX, width: widthByte, fn: intoB((*CPU).sub), cycles: 4}
	primary[0xe1] = instr{name: "CMPB", mode: addrModeIDX, width: widthByte, fn: withB((*CPU).sub), cycles: 4}
	primary[0xe2] = instr{name: "SBCB", mode: addrModeIDX, width: widthByte, fn: intoB((*CPU).sbc), cycles: 4}
	primary[0xe3] = instr{name: "ADDD", mode: addrModeIDX, width: widthWord, fn: (*CPU).addd, cycles: 6}
	primary[0xe4] = instr{name: "ANDB", mode: addrModeIDX, width: widthByte, fn: intoB((*CPU).and), cycles: 4}
	primary[0xe5] = instr{name: "BITB", mode: addrModeIDX, width: widthByte, fn: withB((*CPU).and), cycles: 4}
	primary[0xe6] = instr{name: "LDB", mode: addrModeIDX, width: widthByte, fn: intoB((*CPU).ld), cycles: 4}
	primary[0xe7] = instr{name: "STB", mode: addrModeIDX, width: widthNone, fn: (*CPU).stb, cycles: 4}
	primary[0xe8] = instr{name: "EORB", mode: addrModeIDX, width: widthByte, fn: intoB((*CPU).eor), cycles: 4}
	primary[0xe9] = instr{name: "ADCB", mode: addrModeIDX, width: widthByte, fn: intoB((*CPU).adc), cycles: 4}
	primary[0xea] = instr{name: "ORB", mode: addrModeIDX, width: widthByte, fn: intoB((*CPU).or), cycles: 4}
	primary[0xeb] = instr{name: "ADDB", mode: addrModeIDX, width: widthByte, fn: intoB((*CPU).add), cycles: 4}
	primary[0xec] = instr{name: "LDD", mode: addrModeIDX, width: widthWord, fn: (*CPU).ldd, cycles: 5}
	primary[0xed] = instr{name: "STD", mode: addrModeIDX, width: widthNone, fn: (*CPU).std, cycles: 5}
	primary[0xee] = instr{name: "LDU", mode: addrModeIDX, width: widthWord, fn: (*CPU).ldu, cycles: 5}
	primary[0xef] = instr{name: "STU", mode: addrModeIDX, width: widthNone, fn: (*CPU).stu, cycles: 5}
	primary[0xf0] = instr{name: "SUBB", mode: addrModeEXT, width: widthByte, fn: intoB((*CPU).sub), cycles: 5}
	primary[0xf1] = instr{name: "CMPB", mode: addrModeEXT, width: widthByte, fn: withB((*CPU).sub), cycles: 5}
	primary[0xf2] = instr{name: "SBCB", mode: addrModeEXT, width: widthByte, fn: intoB((*CPU).sbc), cycles: 5}
	primary[0xf3] = instr{name: "ADDD", mode: addrModeEXT, width: widthWord, fn: (*CPU).addd, cycles: 7}
	primary[0xf4] = instr{name: "ANDB", mode: addrModeEXT, width: widthByte, fn: intoB((*CPU).and), cycles: 5}
	primary[0xf5] = instr{name: "BITB", mode: addrModeEXT, width: widthByte, fn: withB((*CPU).and), cycles: 5}
	primary[0xf6] = instr{name: "LDB", mode: addrModeEXT, width: widthByte, fn: intoB((*CPU).ld), cycles: 5}
	primary[0xf7] = instr{name: "STB", mode: addrModeEXT, width: widthNone, fn: (*CPU).stb, cycles: 5}
	primary[0xf8] = instr{name: "EORB", mode: addrModeEXT, width: widthByte, fn: intoB((*CPU).eor), cycles: 5}
	primary[0xf9] = instr{name: "ADCB", mode: addrModeEXT, width: widthByte, fn: intoB((*CPU).adc), cycles: 5}
	primary[0xfa] = instr{name: "ORB", mode: addrModeEXT, width: widthByte, fn: intoB((*CPU).or), cycles: 5}
	primary[0xfb] = instr{name: "ADDB", mode: addrModeEXT, width: widthByte, fn: intoB((*CPU).add), cycles: 5}
	primary[0xfc] = instr{name: "LDD", mode: addrModeEXT, width: widthWord, fn: (*CPU).ldd, cycles: 6}
	primary[0xfd] = instr{name: "STD", mode: addrModeEXT, width: widthNone, fn: (*CPU).std, cycles: 6}
	primary[0xfe] = instr{name: "LDU", mode: addrModeEXT, width: widthWord, fn: (*CPU).ldu, cycles: 6}
	primary[0xff] = instr{name: "STU", mode: addrModeEXT, width: widthNone, fn: (*CPU).stu, cycles: 6}

	page2[0x21] = instr{name: "LBRN", mode: addrModeLREL, width: widthWord, fn: longBranch(condNever), cycles: 5}
	page2[0x22] = instr{name: "LBHI", mode: addrModeLREL, width: widthWord, fn: longBranch(condHigher), cycles: 5}
	page2[0x23] = instr{name: "LBLS", mode: addrModeLREL, width: widthWord, fn: longBranch(condLowerOrSame), cycles: 5}
	page2[0x24] = instr{name: "LBCC", mode: addrModeLREL, width: widthWord, fn: longBranch(condCarryClear), cycles: 5}
	page2[0x25] = instr{name: "LBCS", mode: addrModeLREL, width: widthWord, fn: longBranch(condCarrySet), cycles: 5}
	page2[0x26] = instr{name: "LBNE", mode: addrModeLREL, width: widthWord, fn: longBranch(condNotEqual), cycles: 5}
	page2[0x27] = instr{name: "LBEQ", mode: addrModeLREL, width: widthWord, fn: longBranch(condEqual), cycles: 5}
	page2[0x28] = instr{name: "LBVC", mode: addrModeLREL, width: widthWord, fn: longBranch(condOverflowClear), cycles: 5}
	page2[0x29] = instr{name: "LBVS", mode: addrModeLREL, width: widthWord, fn: longBranch(condOverflowSet), cycles: 5}
	page2[0x2a] = instr{name: "LBPL", mode: addrModeLREL, width: widthWord, fn: longBranch(condPlus), cycles: 5}
	page2[0x2b] = instr{name: "LBMI", mode: addrModeLREL, width: widthWord, fn: longBranch(condMinus), cycles: 5}
	page2[0x2c] = instr{name: "LBGE", mode: addrModeLREL, width: widthWord, fn: longBranch(condGreaterOrEqual), cycles: 5}
	page2[0x2d] = instr{name: "LBLT", mode: addrModeLREL, width: widthWord, fn: longBranch(condLess), cycles: 5}
	page2[0x2e] = instr{name: "LBGT", mode: addrModeLREL, width: widthWord, fn: longBranch(condGreater), cycles: 5}
	page2[0x2f] = instr{name: "LBLE", mode: addrModeLREL, width: widthWord, fn: longBranch(condLessOrEqual), cycles: 5}
	page2[0x3f] = instr{name: "SWI2", mode: addrModeINH, width: widthNone, fn: (*CPU).swi2, cycles: 20}
	page2[0x83] = instr{name: "CMPD", mode: addrModeIMM, width: widthWord, fn: (*CPU).cmpd, cycles: 5}
	page2[0x8c] = instr{name: "CMPY", mode: addrModeIMM, width: widthWord, fn: (*CPU).cmpy, cycles: 5}
	page2[0x8e] = instr{name: "LDY", mode: addrModeIMM, width: widthWord, fn: (*CPU).ldy, cycles: 4}
	page2[0x93] = instr{name: "CMPD", mode: addrModeDIR, width: widthWord, fn: (*CPU).cmpd, cycles: 7}
	page2[0x9c] = instr{name: "CMPY", mode: addrModeDIR, width: widthWord, fn: (*CPU).cmpy, cycles: 7}
	page2[0x9e] = instr{name: "LDY", mode: addrModeDIR, width: widthWord, fn: (*CPU).ldy, cycles: 6}
	page2[0x9f] = instr{name: "STY", mode: addrModeDIR, width: widthNone, fn: (*CPU).sty, cycles: 6}
	page2[0xa3] = instr{name: "CMPD", mode: addrModeIDX, width: widthWord, fn: (*CPU).cmpd, cycles: 7}
	page2[0xac] = instr{name: "CMPY", mode: addrModeIDX, width: widthWord, fn: (*CPU).cmpy, cycles: 7}
	page2[0xae] = instr{name: "LDY", mode: addrModeIDX, width: widthWord, fn: (*CPU).ldy, cycles: 6}
	page2[0xaf] = instr{name: "STY", mode: addrModeIDX, width: widthNone, fn: (*CPU).sty, cycles: 6}
	page2[0xb3] = instr{name: "CMPD", mode: addrModeEXT, width: widthWord, fn: (*CPU).cmpd, cycles: 8}
	page2[0xbc] = instr{name: "CMPY", mode: addrModeEXT, width: widthWord, fn: (*CPU).cmpy, cycles: 8}
	page2[0xbe] = instr{name: "LDY", mode: addrModeEXT, width: widthWord, fn: (*CPU).ldy, cycles: 7}
	page2[0xbf] = instr{name: "STY", mode: addrModeEXT, width: widthNone, fn: (*CPU).sty, cycles: 7}
	page2[0xce] = instr{name: "LDS", mode: addrModeIMM, width: widthWord, fn: (*CPU).lds, cycles: 4}
	page2[0xde] = instr{name: "LDS", mode: addrModeDIR, width: widthWord, fn: (*CPU).lds, cycles: 6}
	page2[0xdf] = instr{name: "STS", mode: addrModeDIR, width: widthNone, fn: (*CPU).sts, cycles: 6}
	page2[0xee] = instr{name: "LDS", mode: addrModeIDX, width: widthWord, fn: (*CPU).lds, cycles: 6}
	page2[0xef] = instr{name: "STS", mode: addrModeIDX, width: widthNone, fn: (*CPU).sts, cycles: 6}
	page2[0xfe] = instr{name: "LDS", mode: addrModeEXT, width: widthWord, fn: (*CPU).lds, cycles: 7}
	page2[0xff] = instr{name: "STS", mode: addrModeEXT, width: widthNone, fn: (*CPU).sts, cycles: 7}

	page3[0x3f] = instr{name: "SWI3", mode: addrModeINH, width: widthNone, fn: (*CPU).swi3, cycles: 20}
	page3[0x83] = instr{name: "CMPU", mode: addrModeIMM, width: widthWord, fn: (*CPU).cmpu, cycles: 5}
	page3[0x8c] = instr{name: "CMPS", mode: addrModeIMM, width: widthWord, fn: (*CPU).cmps, cycles: 5}
	page3[0x93] = instr{name: "CMPU", mode: addrModeDIR, width: widthWord, fn: (*CPU).cmpu, cycles: 7}
	page3[0x9c] = instr{name: "CMPS", mode: addrModeDIR, width: widthWord, fn: (*CPU).cmps, cycles: 7}
	page3[0xa3] = instr{name: "CMPU", mode: addrModeIDX, width: widthWord, fn: (*CPU).cmpu, cycles: 7}
	page3[0xac] = instr{name: "CMPS", mode: addrModeIDX, width: widthWord, fn: (*CPU).cmps, cycles: 7}
	page3[0xb3] = instr{name: "CMPU", mode: addrModeEXT, width: widthWord, fn: (*CPU).cmpu, cycles: 8}
	page3[0xbc] = instr{name: "CMPS", mode: addrModeEXT, width: widthWord, fn: (*CPU).cmps, cycles: 8}
}
