package cpu

// opcodeEntry describes one of the 256 possible opcode bytes: its
// addressing mode and base cycle cost. Illegal/unimplemented bytes get
// the Implied/2-cycle NOP entry so Step never indexes into a hole.
type opcodeEntry struct {
	Name   string
	Mode   AddressingMode
	Cycles uint8
}

var opcodeTable [256]opcodeEntry

func op(code uint8, name string, mode AddressingMode, cycles uint8) {
	opcodeTable[code] = opcodeEntry{Name: name, Mode: mode, Cycles: cycles}
}

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = opcodeEntry{Name: "NOP", Mode: Implied, Cycles: 2}
	}

	op(0xA9, "LDA", Immediate, 2)
	op(0xA5, "LDA", ZeroPage, 3)
	op(0xB5, "LDA", ZeroPageX, 4)
	op(0xAD, "LDA", Absolute, 4)
	op(0xBD, "LDA", AbsoluteX, 4)
	op(0xB9, "LDA", AbsoluteY, 4)
	op(0xA1, "LDA", IndexedIndirect, 6)
	op(0xB1, "LDA", IndirectIndexed, 5)

	op(0xA2, "LDX", Immediate, 2)
	op(0xA6, "LDX", ZeroPage, 3)
	op(0xB6, "LDX", ZeroPageY, 4)
	op(0xAE, "LDX", Absolute, 4)
	op(0xBE, "LDX", AbsoluteY, 4)

	op(0xA0, "LDY", Immediate, 2)
	op(0xA4, "LDY", ZeroPage, 3)
	op(0xB4, "LDY", ZeroPageX, 4)
	op(0xAC, "LDY", Absolute, 4)
	op(0xBC, "LDY", AbsoluteX, 4)

	op(0x85, "STA", ZeroPage, 3)
	op(0x95, "STA", ZeroPageX, 4)
	op(0x8D, "STA", Absolute, 4)
	op(0x9D, "STA", AbsoluteX, 5)
	op(0x99, "STA", AbsoluteY, 5)
	op(0x81, "STA", IndexedIndirect, 6)
	op(0x91, "STA", IndirectIndexed, 6)

	op(0x86, "STX", ZeroPage, 3)
	op(0x96, "STX", ZeroPageY, 4)
	op(0x8E, "STX", Absolute, 4)

	op(0x84, "STY", ZeroPage, 3)
	op(0x94, "STY", ZeroPageX, 4)
	op(0x8C, "STY", Absolute, 4)

	op(0x69, "ADC", Immediate, 2)
	op(0x65, "ADC", ZeroPage, 3)
	op(0x75, "ADC", ZeroPageX, 4)
	op(0x6D, "ADC", Absolute, 4)
	op(0x7D, "ADC", AbsoluteX, 4)
	op(0x79, "ADC", AbsoluteY, 4)
	op(0x61, "ADC", IndexedIndirect, 6)
	op(0x71, "ADC", IndirectIndexed, 5)

	op(0xE9, "SBC", Immediate, 2)
	op(0xEB, "SBC", Immediate, 2) // unofficial alias
	op(0xE5, "SBC", ZeroPage, 3)
	op(0xF5, "SBC", ZeroPageX, 4)
	op(0xED, "SBC", Absolute, 4)
	op(0xFD, "SBC", AbsoluteX, 4)
	op(0xF9, "SBC", AbsoluteY, 4)
	op(0xE1, "SBC", IndexedIndirect, 6)
	op(0xF1, "SBC", IndirectIndexed, 5)

	op(0x29, "AND", Immediate, 2)
	op(0x25, "AND", ZeroPage, 3)
	op(0x35, "AND", ZeroPageX, 4)
	op(0x2D, "AND", Absolute, 4)
	op(0x3D, "AND", AbsoluteX, 4)
	op(0x39, "AND", AbsoluteY, 4)
	op(0x21, "AND", IndexedIndirect, 6)
	op(0x31, "AND", IndirectIndexed, 5)

	op(0x09, "ORA", Immediate, 2)
	op(0x05, "ORA", ZeroPage, 3)
	op(0x15, "ORA", ZeroPageX, 4)
	op(0x0D, "ORA", Absolute, 4)
	op(0x1D, "ORA", AbsoluteX, 4)
	op(0x19, "ORA", AbsoluteY, 4)
	op(0x01, "ORA", IndexedIndirect, 6)
	op(0x11, "ORA", IndirectIndexed, 5)

	op(0x49, "EOR", Immediate, 2)
	op(0x45, "EOR", ZeroPage, 3)
	op(0x55, "EOR", ZeroPageX, 4)
	op(0x4D, "EOR", Absolute, 4)
	op(0x5D, "EOR", AbsoluteX, 4)
	op(0x59, "EOR", AbsoluteY, 4)
	op(0x41, "EOR", IndexedIndirect, 6)
	op(0x51, "EOR", IndirectIndexed, 5)

	op(0x0A, "ASL", Accumulator, 2)
	op(0x06, "ASL", ZeroPage, 5)
	op(0x16, "ASL", ZeroPageX, 6)
	op(0x0E, "ASL", Absolute, 6)
	op(0x1E, "ASL", AbsoluteX, 7)

	op(0x4A, "LSR", Accumulator, 2)
	op(0x46, "LSR", ZeroPage, 5)
	op(0x56, "LSR", ZeroPageX, 6)
	op(0x4E, "LSR", Absolute, 6)
	op(0x5E, "LSR", AbsoluteX, 7)

	op(0x2A, "ROL", Accumulator, 2)
	op(0x26, "ROL", ZeroPage, 5)
	op(0x36, "ROL", ZeroPageX, 6)
	op(0x2E, "ROL", Absolute, 6)
	op(0x3E, "ROL", AbsoluteX, 7)

	op(0x6A, "ROR", Accumulator, 2)
	op(0x66, "ROR", ZeroPage, 5)
	op(0x76, "ROR", ZeroPageX, 6)
	op(0x6E, "ROR", Absolute, 6)
	op(0x7E, "ROR", AbsoluteX, 7)

	op(0xC9, "CMP", Immediate, 2)
	op(0xC5, "CMP", ZeroPage, 3)
	op(0xD5, "CMP", ZeroPageX, 4)
	op(0xCD, "CMP", Absolute, 4)
	op(0xDD, "CMP", AbsoluteX, 4)
	op(0xD9, "CMP", AbsoluteY, 4)
	op(0xC1, "CMP", IndexedIndirect, 6)
	op(0xD1, "CMP", IndirectIndexed, 5)

	op(0xE0, "CPX", Immediate, 2)
	op(0xE4, "CPX", ZeroPage, 3)
	op(0xEC, "CPX", Absolute, 4)

	op(0xC0, "CPY", Immediate, 2)
	op(0xC4, "CPY", ZeroPage, 3)
	op(0xCC, "CPY", Absolute, 4)

	op(0xE6, "INC", ZeroPage, 5)
	op(0xF6, "INC", ZeroPageX, 6)
	op(0xEE, "INC", Absolute, 6)
	op(0xFE, "INC", AbsoluteX, 7)

	op(0xC6, "DEC", ZeroPage, 5)
	op(0xD6, "DEC", ZeroPageX, 6)
	op(0xCE, "DEC", Absolute, 6)
	op(0xDE, "DEC", AbsoluteX, 7)

	op(0xE8, "INX", Implied, 2)
	op(0xCA, "DEX", Implied, 2)
	op(0xC8, "INY", Implied, 2)
	op(0x88, "DEY", Implied, 2)

	op(0xAA, "TAX", Implied, 2)
	op(0x8A, "TXA", Implied, 2)
	op(0xA8, "TAY", Implied, 2)
	op(0x98, "TYA", Implied, 2)
	op(0xBA, "TSX", Implied, 2)
	op(0x9A, "TXS", Implied, 2)

	op(0x48, "PHA", Implied, 3)
	op(0x68, "PLA", Implied, 4)
	op(0x08, "PHP", Implied, 3)
	op(0x28, "PLP", Implied, 4)

	op(0x18, "CLC", Implied, 2)
	op(0x38, "SEC", Implied, 2)
	op(0x58, "CLI", Implied, 2)
	op(0x78, "SEI", Implied, 2)
	op(0xB8, "CLV", Implied, 2)
	op(0xD8, "CLD", Implied, 2)
	op(0xF8, "SED", Implied, 2)

	op(0x4C, "JMP", Absolute, 3)
	op(0x6C, "JMP", Indirect, 5)
	op(0x20, "JSR", Absolute, 6)
	op(0x60, "RTS", Implied, 6)
	op(0x40, "RTI", Implied, 6)

	op(0x90, "BCC", Relative, 2)
	op(0xB0, "BCS", Relative, 2)
	op(0xD0, "BNE", Relative, 2)
	op(0xF0, "BEQ", Relative, 2)
	op(0x10, "BPL", Relative, 2)
	op(0x30, "BMI", Relative, 2)
	op(0x50, "BVC", Relative, 2)
	op(0x70, "BVS", Relative, 2)

	op(0x24, "BIT", ZeroPage, 3)
	op(0x2C, "BIT", Absolute, 4)
	op(0xEA, "NOP", Implied, 2)
	op(0x00, "BRK", Implied, 7)

	// unofficial NOPs
	for _, code := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		op(code, "NOP", Implied, 2)
	}
	for _, code := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		op(code, "NOP", Immediate, 2)
	}
	for _, code := range []uint8{0x04, 0x44, 0x64} {
		op(code, "NOP", ZeroPage, 3)
	}
	for _, code := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		op(code, "NOP", ZeroPageX, 4)
	}
	op(0x0C, "NOP", Absolute, 4)
	for _, code := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		op(code, "NOP", AbsoluteX, 4)
	}

	op(0xA7, "LAX", ZeroPage, 3)
	op(0xB7, "LAX", ZeroPageY, 4)
	op(0xAF, "LAX", Absolute, 4)
	op(0xBF, "LAX", AbsoluteY, 4)
	op(0xA3, "LAX", IndexedIndirect, 6)
	op(0xB3, "LAX", IndirectIndexed, 5)

	op(0x87, "SAX", ZeroPage, 3)
	op(0x97, "SAX", ZeroPageY, 4)
	op(0x8F, "SAX", Absolute, 4)
	op(0x83, "SAX", IndexedIndirect, 6)

	op(0xC7, "DCP", ZeroPage, 5)
	op(0xD7, "DCP", ZeroPageX, 6)
	op(0xCF, "DCP", Absolute, 6)
	op(0xDF, "DCP", AbsoluteX, 7)
	op(0xDB, "DCP", AbsoluteY, 7)
	op(0xC3, "DCP", IndexedIndirect, 8)
	op(0xD3, "DCP", IndirectIndexed, 8)

	op(0xE7, "ISB", ZeroPage, 5)
	op(0xF7, "ISB", ZeroPageX, 6)
	op(0xEF, "ISB", Absolute, 6)
	op(0xFF, "ISB", AbsoluteX, 7)
	op(0xFB, "ISB", AbsoluteY, 7)
	op(0xE3, "ISB", IndexedIndirect, 8)
	op(0xF3, "ISB", IndirectIndexed, 8)

	op(0x07, "SLO", ZeroPage, 5)
	op(0x17, "SLO", ZeroPageX, 6)
	op(0x0F, "SLO", Absolute, 6)
	op(0x1F, "SLO", AbsoluteX, 7)
	op(0x1B, "SLO", AbsoluteY, 7)
	op(0x03, "SLO", IndexedIndirect, 8)
	op(0x13, "SLO", IndirectIndexed, 8)

	op(0x27, "RLA", ZeroPage, 5)
	op(0x37, "RLA", ZeroPageX, 6)
	op(0x2F, "RLA", Absolute, 6)
	op(0x3F, "RLA", AbsoluteX, 7)
	op(0x3B, "RLA", AbsoluteY, 7)
	op(0x23, "RLA", IndexedIndirect, 8)
	op(0x33, "RLA", IndirectIndexed, 8)

	op(0x47, "SRE", ZeroPage, 5)
	op(0x57, "SRE", ZeroPageX, 6)
	op(0x4F, "SRE", Absolute, 6)
	op(0x5F, "SRE", AbsoluteX, 7)
	op(0x5B, "SRE", AbsoluteY, 7)
	op(0x43, "SRE", IndexedIndirect, 8)
	op(0x53, "SRE", IndirectIndexed, 8)

	op(0x67, "RRA", ZeroPage, 5)
	op(0x77, "RRA", ZeroPageX, 6)
	op(0x6F, "RRA", Absolute, 6)
	op(0x7F, "RRA", AbsoluteX, 7)
	op(0x7B, "RRA", AbsoluteY, 7)
	op(0x63, "RRA", IndexedIndirect, 8)
	op(0x73, "RRA", IndirectIndexed, 8)
}

// readPenaltyOpcodes pay one extra cycle only when the indexed/indirect
// addressing mode actually crosses a page boundary.
var readPenaltyOpcodes = map[uint8]bool{
	0xBD: true, 0xB9: true, 0xB1: true, 0xBE: true, 0xBC: true,
	0x7D: true, 0x79: true, 0x71: true,
	0x3D: true, 0x39: true, 0x31: true,
	0x1D: true, 0x19: true, 0x11: true,
	0x5D: true, 0x59: true, 0x51: true,
	0xDD: true, 0xD9: true, 0xD1: true,
	0x1C: true, 0x3C: true, 0x5C: true, 0x7C: true, 0xDC: true, 0xFC: true,
	0xBF: true, 0xB3: true, 0xD3: true, 0xD7: true, 0xDF: true,
	0xF3: true, 0xF7: true, 0xFF: true,
	0x13: true, 0x17: true, 0x1F: true,
	0x33: true, 0x37: true, 0x3F: true,
	0x53: true, 0x57: true, 0x5F: true,
	0x73: true, 0x77: true, 0x7F: true,
}

// execute dispatches the fetched opcode to its operation and returns any
// extra cycles beyond the opcode table's base count: branches taken,
// branch page-crosses, and indexed/indirect reads that crossed a page.
func (c *CPU) execute(opcode uint8, addr uint16, accumulator bool, pageCrossed bool) uint8 {
	var extra uint8

	switch opcode {
	case 0xA9, 0xA5, 0xB5, 0xAD, 0xBD, 0xB9, 0xA1, 0xB1:
		c.lda(addr)
	case 0xA2, 0xA6, 0xB6, 0xAE, 0xBE:
		c.ldx(addr)
	case 0xA0, 0xA4, 0xB4, 0xAC, 0xBC:
		c.ldy(addr)
	case 0x85, 0x95, 0x8D, 0x9D, 0x99, 0x81, 0x91:
		c.sta(addr)
	case 0x86, 0x96, 0x8E:
		c.stx(addr)
	case 0x84, 0x94, 0x8C:
		c.sty(addr)

	case 0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71:
		c.adc(addr)
	case 0xE9, 0xEB, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1:
		c.sbc(addr)

	case 0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31:
		c.A &= c.mem.Read(addr)
		c.setZN(c.A)
	case 0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11:
		c.A |= c.mem.Read(addr)
		c.setZN(c.A)
	case 0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51:
		c.A ^= c.mem.Read(addr)
		c.setZN(c.A)

	case 0x0A:
		c.C = c.A&0x80 != 0
		c.A <<= 1
		c.setZN(c.A)
	case 0x06, 0x16, 0x0E, 0x1E:
		c.asl(addr)
	case 0x4A:
		c.C = c.A&0x01 != 0
		c.A >>= 1
		c.setZN(c.A)
	case 0x46, 0x56, 0x4E, 0x5E:
		c.lsr(addr)
	case 0x2A:
		old := c.C
		c.C = c.A&0x80 != 0
		c.A <<= 1
		if old {
			c.A |= 0x01
		}
		c.setZN(c.A)
	case 0x26, 0x36, 0x2E, 0x3E:
		c.rol(addr)
	case 0x6A:
		old := c.C
		c.C = c.A&0x01 != 0
		c.A >>= 1
		if old {
			c.A |= 0x80
		}
		c.setZN(c.A)
	case 0x66, 0x76, 0x6E, 0x7E:
		c.ror(addr)

	case 0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1:
		c.compare(c.A, c.mem.Read(addr))
	case 0xE0, 0xE4, 0xEC:
		c.compare(c.X, c.mem.Read(addr))
	case 0xC0, 0xC4, 0xCC:
		c.compare(c.Y, c.mem.Read(addr))

	case 0xE6, 0xF6, 0xEE, 0xFE:
		v := c.mem.Read(addr) + 1
		c.mem.Write(addr, v)
		c.setZN(v)
	case 0xC6, 0xD6, 0xCE, 0xDE:
		v := c.mem.Read(addr) - 1
		c.mem.Write(addr, v)
		c.setZN(v)
	case 0xE8:
		c.X++
		c.setZN(c.X)
	case 0xCA:
		c.X--
		c.setZN(c.X)
	case 0xC8:
		c.Y++
		c.setZN(c.Y)
	case 0x88:
		c.Y--
		c.setZN(c.Y)

	case 0xAA:
		c.X = c.A
		c.setZN(c.X)
	case 0x8A:
		c.A = c.X
		c.setZN(c.A)
	case 0xA8:
		c.Y = c.A
		c.setZN(c.Y)
	case 0x98:
		c.A = c.Y
		c.setZN(c.A)
	case 0xBA:
		c.X = c.SP
		c.setZN(c.X)
	case 0x9A:
		c.SP = c.X

	case 0x48:
		c.push(c.A)
	case 0x68:
		c.A = c.pop()
		c.setZN(c.A)
	case 0x08:
		c.push(c.GetStatusByte() | flagB)
	case 0x28:
		c.SetStatusByte(c.pop())

	case 0x18:
		c.C = false
	case 0x38:
		c.C = true
	case 0x58:
		c.I = false
	case 0x78:
		c.I = true
	case 0xB8:
		c.V = false
	case 0xD8:
		c.D = false
	case 0xF8:
		c.D = true

	case 0x4C, 0x6C:
		c.PC = addr
	case 0x20:
		c.pushWord(c.PC - 1)
		c.PC = addr
	case 0x60:
		c.PC = c.popWord() + 1
	case 0x40:
		c.SetStatusByte(c.pop())
		c.PC = c.popWord()

	case 0x90:
		extra = c.branch(!c.C, addr, pageCrossed)
	case 0xB0:
		extra = c.branch(c.C, addr, pageCrossed)
	case 0xD0:
		extra = c.branch(!c.Z, addr, pageCrossed)
	case 0xF0:
		extra = c.branch(c.Z, addr, pageCrossed)
	case 0x10:
		extra = c.branch(!c.N, addr, pageCrossed)
	case 0x30:
		extra = c.branch(c.N, addr, pageCrossed)
	case 0x50:
		extra = c.branch(!c.V, addr, pageCrossed)
	case 0x70:
		extra = c.branch(c.V, addr, pageCrossed)

	case 0x24, 0x2C:
		v := c.mem.Read(addr)
		c.N = v&flagN != 0
		c.V = v&flagV != 0
		c.Z = c.A&v == 0

	case 0x00:
		c.brk()

	case 0xA3, 0xA7, 0xAF, 0xB3, 0xB7, 0xBF:
		c.A = c.mem.Read(addr)
		c.X = c.A
		c.setZN(c.A)
	case 0x83, 0x87, 0x8F, 0x97:
		c.mem.Write(addr, c.A&c.X)
	case 0xC3, 0xC7, 0xCF, 0xD3, 0xD7, 0xDF, 0xDB:
		v := c.mem.Read(addr) - 1
		c.mem.Write(addr, v)
		c.compare(c.A, v)
	case 0xE3, 0xE7, 0xEF, 0xF3, 0xF7, 0xFF, 0xFB:
		v := c.mem.Read(addr) + 1
		c.mem.Write(addr, v)
		c.sbcValue(v)
	case 0x03, 0x07, 0x0F, 0x13, 0x17, 0x1F, 0x1B:
		v := c.mem.Read(addr)
		c.C = v&0x80 != 0
		v <<= 1
		c.mem.Write(addr, v)
		c.A |= v
		c.setZN(c.A)
	case 0x23, 0x27, 0x2F, 0x33, 0x37, 0x3F, 0x3B:
		old := c.C
		v := c.mem.Read(addr)
		c.C = v&0x80 != 0
		v <<= 1
		if old {
			v |= 0x01
		}
		c.mem.Write(addr, v)
		c.A &= v
		c.setZN(c.A)
	case 0x43, 0x47, 0x4F, 0x53, 0x57, 0x5F, 0x5B:
		v := c.mem.Read(addr)
		c.C = v&0x01 != 0
		v >>= 1
		c.mem.Write(addr, v)
		c.A ^= v
		c.setZN(c.A)
	case 0x63, 0x67, 0x6F, 0x73, 0x77, 0x7F, 0x7B:
		old := c.C
		v := c.mem.Read(addr)
		c.C = v&0x01 != 0
		v >>= 1
		if old {
			v |= 0x80
		}
		c.mem.Write(addr, v)
		c.adcValue(v)

	default:
		// unofficial NOP of whatever addressing mode the table assigned
	}

	if pageCrossed && readPenaltyOpcodes[opcode] {
		extra++
	}
	return extra
}

func (c *CPU) lda(addr uint16) {
	c.A = c.mem.Read(addr)
	c.setZN(c.A)
}

func (c *CPU) ldx(addr uint16) {
	c.X = c.mem.Read(addr)
	c.setZN(c.X)
}

func (c *CPU) ldy(addr uint16) {
	c.Y = c.mem.Read(addr)
	c.setZN(c.Y)
}

func (c *CPU) sta(addr uint16) { c.mem.Write(addr, c.A) }
func (c *CPU) stx(addr uint16) { c.mem.Write(addr, c.X) }
func (c *CPU) sty(addr uint16) { c.mem.Write(addr, c.Y) }

func (c *CPU) adc(addr uint16) { c.adcValue(c.mem.Read(addr)) }

// adcValue is split out from adc so RRA can feed it an already-rotated
// operand instead of re-reading memory.
func (c *CPU) adcValue(value uint8) {
	var carry uint16
	if c.C {
		carry = 1
	}
	result := uint16(c.A) + uint16(value) + carry
	c.V = (c.A^uint8(result))&0x80 != 0 && (c.A^value)&0x80 == 0
	c.C = result > 0xFF
	c.A = uint8(result)
	c.setZN(c.A)
}

func (c *CPU) sbc(addr uint16) { c.sbcValue(c.mem.Read(addr)) }

// sbcValue mirrors adcValue: SBC is ADC with the operand's bits inverted.
func (c *CPU) sbcValue(value uint8) { c.adcValue(value ^ 0xFF) }

func (c *CPU) asl(addr uint16) {
	v := c.mem.Read(addr)
	c.C = v&0x80 != 0
	v <<= 1
	c.mem.Write(addr, v)
	c.setZN(v)
}

func (c *CPU) lsr(addr uint16) {
	v := c.mem.Read(addr)
	c.C = v&0x01 != 0
	v >>= 1
	c.mem.Write(addr, v)
	c.setZN(v)
}

func (c *CPU) rol(addr uint16) {
	old := c.C
	v := c.mem.Read(addr)
	c.C = v&0x80 != 0
	v <<= 1
	if old {
		v |= 0x01
	}
	c.mem.Write(addr, v)
	c.setZN(v)
}

func (c *CPU) ror(addr uint16) {
	old := c.C
	v := c.mem.Read(addr)
	c.C = v&0x01 != 0
	v >>= 1
	if old {
		v |= 0x80
	}
	c.mem.Write(addr, v)
	c.setZN(v)
}

// compare backs CMP/CPX/CPY: all three subtract without touching carry's
// role in the ALU and set flags from the wrapping-subtraction result.
func (c *CPU) compare(reg, value uint8) {
	c.C = reg >= value
	c.setZN(reg - value)
}

func (c *CPU) branch(take bool, addr uint16, pageCrossed bool) uint8 {
	if !take {
		return 0
	}
	c.PC = addr
	if pageCrossed {
		return 2
	}
	return 1
}

// brk pushes PC+2 and status with B set, then jumps through the IRQ
// vector. The operand byte after the opcode is a padding byte debuggers
// use to tag the break reason; BRK never reads it.
func (c *CPU) brk() {
	c.PC++
	c.pushWord(c.PC)
	c.push(c.GetStatusByte() | flagB)
	c.I = true
	lo := uint16(c.mem.Read(irqVector))
	hi := uint16(c.mem.Read(irqVector + 1))
	c.PC = hi<<8 | lo
}
