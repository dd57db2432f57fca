package cpu

import "fmt"

// addressingFormats renders an opcode's operand the way a disassembly
// listing traditionally does: immediates as #$aa, absolutes as $aaaa, etc.
var addressingFormats = map[AddressingMode]string{
	Immediate:       "#$%02X",
	ZeroPage:        "$%02X",
	ZeroPageX:       "$%02X,X",
	ZeroPageY:       "$%02X,Y",
	Absolute:        "$%04X",
	AbsoluteX:       "$%04X,X",
	AbsoluteY:       "$%04X,Y",
	Indirect:        "($%04X)",
	IndexedIndirect: "($%02X,X)",
	IndirectIndexed: "($%02X),Y",
	Relative:        "$%04X",
	Accumulator:     "A",
}

// operandBytes reports how many bytes after the opcode byte belong to
// the operand, for printing it and for the reported instruction length.
func operandBytes(mode AddressingMode) uint8 {
	switch mode {
	case Implied, Accumulator:
		return 0
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, Relative, IndexedIndirect, IndirectIndexed:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return 2
	default:
		return 0
	}
}

// Disassemble renders the instruction at pc as NAME plus a formatted
// operand (no memory side effects beyond the plain Read calls needed to
// print it), and reports the instruction's total length in bytes. Used
// by embedders building a trace view or step debugger.
func (c *CPU) Disassemble(pc uint16) (text string, length uint8) {
	opcode := c.mem.Read(pc)
	entry := &opcodeTable[opcode]
	length = operandBytes(entry.Mode) + 1

	format, hasOperand := addressingFormats[entry.Mode]
	if !hasOperand || entry.Mode == Accumulator {
		return entry.Name + " " + format, length
	}

	var operand uint16
	switch operandBytes(entry.Mode) {
	case 1:
		operand = uint16(c.mem.Read(pc + 1))
	case 2:
		lo := uint16(c.mem.Read(pc + 1))
		hi := uint16(c.mem.Read(pc + 2))
		operand = hi<<8 | lo
	}
	if entry.Mode == Relative {
		operand = pc + 2 + uint16(int8(uint8(operand)))
	}

	return fmt.Sprintf("%s "+format, entry.Name, operand), length
}
