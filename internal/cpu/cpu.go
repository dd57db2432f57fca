// Package cpu implements the NES's MOS 6502-derived CPU: fetch/decode/
// execute, interrupt dispatch, and per-cycle pacing.
package cpu

// Memory is the bus-facing interface the CPU reads and writes through.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// Status flag bit masks, packed N V - B D I Z C on the stack (bit 5,
// marked "-" above, always reads as 1 when pushed).
const (
	flagC uint8 = 1 << 0
	flagZ uint8 = 1 << 1
	flagI uint8 = 1 << 2
	flagD uint8 = 1 << 3
	flagB uint8 = 1 << 4
	flagU uint8 = 1 << 5 // unused, always 1 on the stack
	flagV uint8 = 1 << 6
	flagN uint8 = 1 << 7
)

const (
	stackBase   = 0x0100
	resetVector = 0xFFFC
	nmiVector   = 0xFFFA
	irqVector   = 0xFFFE
)

// CPU holds the 6502 register file plus the pending-cycle and jam-
// detection bookkeeping that lets Step advance exactly one machine
// cycle at a time.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16

	C, Z, I, D, B, V, N bool

	mem Memory

	pendingCycles uint64 // cycles left to charge before the next fetch
	Tick          uint64 // total elapsed cycles, exposed for jam detection

	// jam detection: PC that hasn't moved across consecutive fetches
	lastPC      uint16
	stallCount  int
	jammed      bool
}

// New creates a CPU wired to the given bus. Call Reset before stepping.
func New(mem Memory) *CPU {
	return &CPU{mem: mem}
}

// Reset performs the 6502 power-up/reset sequence: PC from the reset
// vector, I set, registers zeroed, SP at 0xFD, seven cycles charged.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.C, c.Z, c.D, c.V, c.N = false, false, false, false, false
	c.I = true
	c.B = false

	lo := uint16(c.mem.Read(resetVector))
	hi := uint16(c.mem.Read(resetVector + 1))
	c.PC = hi<<8 | lo

	c.pendingCycles = 6 // Step() below charges the 7th
	c.Tick = 0
	c.lastPC = c.PC
	c.stallCount = 0
	c.jammed = false
}

// Step advances the CPU by exactly one machine cycle. When a pending-
// cycle counter is outstanding it is decremented and Step returns; a
// new opcode is only fetched once the counter reaches zero, per
// spec.md §9 ("pending-cycle accounting").
func (c *CPU) Step() {
	c.Tick++
	if c.pendingCycles > 0 {
		c.pendingCycles--
		return
	}

	startPC := c.PC
	opcode := c.mem.Read(c.PC)
	entry := &opcodeTable[opcode]

	addr, accumulator, pageCrossed := c.resolveOperand(entry.Mode)
	extra := c.execute(opcode, addr, accumulator, pageCrossed)

	total := uint64(entry.Cycles) + uint64(extra)
	if total == 0 {
		total = 1
	}
	c.pendingCycles = total - 1

	c.trackJam(startPC)
}

// trackJam flags the CPU as jammed once PC has failed to advance across
// more than jamThreshold consecutive instruction fetches — the signature of a
// single-instruction infinite loop (e.g. "JMP $ABSOLUTE to self").
func (c *CPU) trackJam(startPC uint16) {
	if c.PC == startPC {
		c.stallCount++
	} else {
		c.stallCount = 0
	}
	c.lastPC = startPC
	c.jammed = c.stallCount > jamThreshold
}

const jamThreshold = 64

// Jammed reports whether the CPU has been observed re-executing the
// same instruction at the same PC for more than jamThreshold consecutive fetches
// — the embedder's signal that a ROM has looped forever (spec.md §7).
func (c *CPU) Jammed() bool { return c.jammed }

// GetStatusByte packs the flags as NV-BDIZC, with the unused bit always
// set; B reflects the caller's current B flag (set by PHP/BRK callers).
func (c *CPU) GetStatusByte() uint8 {
	var s uint8 = flagU
	if c.N {
		s |= flagN
	}
	if c.V {
		s |= flagV
	}
	if c.B {
		s |= flagB
	}
	if c.D {
		s |= flagD
	}
	if c.I {
		s |= flagI
	}
	if c.Z {
		s |= flagZ
	}
	if c.C {
		s |= flagC
	}
	return s
}

// SetStatusByte unpacks NV-BDIZC, forcing the unused bit to 1 and
// leaving B as whatever the caller already had (PLP/RTI ignore bit 4).
func (c *CPU) SetStatusByte(s uint8) {
	c.N = s&flagN != 0
	c.V = s&flagV != 0
	c.D = s&flagD != 0
	c.I = s&flagI != 0
	c.Z = s&flagZ != 0
	c.C = s&flagC != 0
}

func (c *CPU) push(v uint8) {
	c.mem.Write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.mem.Read(stackBase + uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

func (c *CPU) setZN(v uint8) {
	c.Z = v == 0
	c.N = v&0x80 != 0
}

// TriggerNMI services an edge-triggered NMI: push PC and status (B=0),
// set I, load PC from the NMI vector. Costs 7 cycles, charged as the
// pending-cycle counter since the caller (the scheduler) has already
// spent the current cycle invoking this.
func (c *CPU) TriggerNMI() {
	c.pushWord(c.PC)
	c.B = false
	c.push(c.GetStatusByte())
	c.I = true
	lo := uint16(c.mem.Read(nmiVector))
	hi := uint16(c.mem.Read(nmiVector + 1))
	c.PC = hi<<8 | lo
	c.pendingCycles = 6
}

// TriggerIRQ services a level-triggered IRQ the same way NMI does, from
// the IRQ/BRK vector, only when interrupts are not masked.
func (c *CPU) TriggerIRQ() {
	if c.I {
		return
	}
	c.pushWord(c.PC)
	c.B = false
	c.push(c.GetStatusByte())
	c.I = true
	lo := uint16(c.mem.Read(irqVector))
	hi := uint16(c.mem.Read(irqVector + 1))
	c.PC = hi<<8 | lo
	c.pendingCycles = 6
}
