package coco

import (
	"errors"
	"fmt"
)

// ErrMalformedInstruction matches every MalformedInstruction with errors.Is.
var ErrMalformedInstruction = errors.New("malformed instruction")

// MalformedInstruction is returned by Step for an unassigned opcode or for an
// indexed postbyte the hardware treats as illegal. PC already points past the
// bytes that were consumed before the problem was found.
type MalformedInstruction struct {
	PC       uint16 // address of the first opcode byte
	Page     uint8  // 0, 0x10 or 0x11
	Opcode   uint8
	Postbyte uint8
	Indexed  bool
	Reason   string
}

func (e *MalformedInstruction) Error() string {
	op := fmt.Sprintf("%02X", e.Opcode)
	if e.Page != 0 {
		op = fmt.Sprintf("%02X%02X", e.Page, e.Opcode)
	}
	if e.Indexed {
		return fmt.Sprintf("malformed instruction at $%04X: opcode %s postbyte %02X: %s", e.PC, op, e.Postbyte, e.Reason)
	}
	return fmt.Sprintf("malformed instruction at $%04X: opcode %s: %s", e.PC, op, e.Reason)
}

func (e *MalformedInstruction) Is(target error) bool {
	return target == ErrMalformedInstruction
}
