package cpu

// AddressingMode tags how an opcode's operand byte(s) are turned into an
// effective address. Kept as an enum rather than per-opcode closures so the
// opcode table stays a flat, inspectable array (also what Disassemble reads
// off to print an operand).
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

const (
	zeroPageMask = 0xFF
	pageMask     = 0xFF00
)

// resolveOperand computes the effective address for the opcode at c.PC,
// advancing PC past the opcode's operand bytes. accumulator is true for
// the Accumulator mode, where ops like ROL/ROR/ASL/LSR target A rather
// than a memory cell. pageCrossed reports whether an indexed/relative
// mode's effective address fell on a different page than its base,
// which several opcodes charge an extra cycle for.
func (c *CPU) resolveOperand(mode AddressingMode) (addr uint16, accumulator bool, pageCrossed bool) {
	switch mode {
	case Implied:
		c.PC++
		return 0, false, false

	case Accumulator:
		c.PC++
		return 0, true, false

	case Immediate:
		addr = c.PC + 1
		c.PC += 2
		return addr, false, false

	case ZeroPage:
		addr = uint16(c.mem.Read(c.PC + 1))
		c.PC += 2
		return addr, false, false

	case ZeroPageX:
		base := c.mem.Read(c.PC + 1)
		addr = uint16((base + c.X) & zeroPageMask)
		c.PC += 2
		return addr, false, false

	case ZeroPageY:
		base := c.mem.Read(c.PC + 1)
		addr = uint16((base + c.Y) & zeroPageMask)
		c.PC += 2
		return addr, false, false

	case Relative:
		offset := int8(c.mem.Read(c.PC + 1))
		oldPC := c.PC + 2
		newPC := uint16(int32(oldPC) + int32(offset))
		c.PC = oldPC
		pageCrossed = (oldPC & pageMask) != (newPC & pageMask)
		return newPC, false, pageCrossed

	case Absolute:
		lo := uint16(c.mem.Read(c.PC + 1))
		hi := uint16(c.mem.Read(c.PC + 2))
		addr = hi<<8 | lo
		c.PC += 3
		return addr, false, false

	case AbsoluteX:
		lo := uint16(c.mem.Read(c.PC + 1))
		hi := uint16(c.mem.Read(c.PC + 2))
		base := hi<<8 | lo
		addr = base + uint16(c.X)
		c.PC += 3
		pageCrossed = (base & pageMask) != (addr & pageMask)
		return addr, false, pageCrossed

	case AbsoluteY:
		lo := uint16(c.mem.Read(c.PC + 1))
		hi := uint16(c.mem.Read(c.PC + 2))
		base := hi<<8 | lo
		addr = base + uint16(c.Y)
		c.PC += 3
		pageCrossed = (base & pageMask) != (addr & pageMask)
		return addr, false, pageCrossed

	case Indirect: // JMP only
		loPtr := uint16(c.mem.Read(c.PC + 1))
		hiPtr := uint16(c.mem.Read(c.PC + 2))
		ptr := hiPtr<<8 | loPtr

		var lo, hi uint16
		if ptr&zeroPageMask == zeroPageMask {
			// Hardware bug: the high byte is fetched from the start of the
			// same page instead of wrapping into the next one.
			lo = uint16(c.mem.Read(ptr))
			hi = uint16(c.mem.Read(ptr & pageMask))
		} else {
			lo = uint16(c.mem.Read(ptr))
			hi = uint16(c.mem.Read(ptr + 1))
		}
		addr = hi<<8 | lo
		c.PC += 3
		return addr, false, false

	case IndexedIndirect:
		base := c.mem.Read(c.PC + 1)
		ptr := (base + c.X) & zeroPageMask
		lo := uint16(c.mem.Read(uint16(ptr)))
		hi := uint16(c.mem.Read(uint16((ptr + 1) & zeroPageMask)))
		addr = hi<<8 | lo
		c.PC += 2
		return addr, false, false

	case IndirectIndexed:
		ptr := uint16(c.mem.Read(c.PC + 1))
		lo := uint16(c.mem.Read(ptr))
		hi := uint16(c.mem.Read((ptr + 1) & zeroPageMask))
		base := hi<<8 | lo
		addr = base + uint16(c.Y)
		c.PC += 2
		pageCrossed = (base & pageMask) != (addr & pageMask)
		return addr, false, pageCrossed

	default:
		return 0, false, false
	}
}
