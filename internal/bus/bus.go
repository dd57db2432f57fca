// Package bus implements the NES system bus: CPU-visible address
// decoding across RAM, the PPU register window, the APU stub,
// controllers, OAM DMA, and the cartridge.
package bus

import (
	"github.com/nescore/gones/internal/apu"
	"github.com/nescore/gones/internal/cartridge"
	"github.com/nescore/gones/internal/controller"
	"github.com/nescore/gones/internal/ppu"
)

const (
	ramSize     = 0x0800
	ramMirror   = 0x2000
	ppuBase     = 0x2000
	ppuMirrorEnd = 0x4000
	oamDMAReg   = 0x4014
	controller1 = 0x4016
	controller2 = 0x4017
)

// Bus wires the CPU's flat 16-bit address space to its backing devices.
// It implements cpu.Memory. Per the ownership model, it holds the PPU
// and cartridge directly but never references the CPU; DMA stall and
// NMI delivery are surfaced to the scheduler rather than invoked here.
type Bus struct {
	ram [ramSize]uint8

	PPU  *ppu.PPU
	APU  *apu.APU
	Cart *cartridge.Cartridge

	Pad1 *controller.Controller
	Pad2 *controller.Controller

	cycles uint64 // parity source for odd/even OAM DMA stall length

	dmaStall uint16 // cycles left to stall the CPU for an in-flight OAM DMA
}

// New wires a bus around an already-loaded cartridge.
func New(cart *cartridge.Cartridge) *Bus {
	return &Bus{
		PPU:  ppu.New(),
		APU:  apu.New(),
		Cart: cart,
		Pad1: controller.New(),
		Pad2: controller.New(),
	}
}

// Tick advances the bus's own cycle counter, which only exists to
// determine whether an OAM DMA trigger lands on an odd or even cycle.
// The scheduler calls this once per CPU-cycle-equivalent step.
func (b *Bus) Tick() {
	b.cycles++
}

// DMAStallCycles reports how many CPU cycles remain to charge for an
// in-flight OAM DMA; the scheduler decrements this instead of stepping
// the CPU while it is nonzero.
func (b *Bus) DMAStallCycles() uint16 { return b.dmaStall }

// ConsumeDMAStallCycle decrements the stall counter by one, returning
// whether a cycle was actually consumed (i.e. a stall was in progress).
func (b *Bus) ConsumeDMAStallCycle() bool {
	if b.dmaStall == 0 {
		return false
	}
	b.dmaStall--
	return true
}

// Read services a CPU read. Side-effecting register reads (PPUSTATUS,
// PPUDATA, controller shift-out) behave exactly as Write/ReadDebug
// describe; see spec.md §4.2's address decode table.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < ramMirror:
		return b.ram[addr%ramSize]
	case addr < ppuMirrorEnd:
		return b.PPU.ReadRegister((addr-ppuBase)%8, b.Cart)
	case addr == 0x4015:
		return b.APU.ReadStatus()
	case addr == controller1:
		return b.Pad1.Read()
	case addr == controller2:
		return b.Pad2.Read()
	case addr < 0x4018:
		return 0 // remaining APU/IO registers, not modeled
	default:
		return b.Cart.ReadPRG(addr)
	}
}

// ReadDebug peeks at an address with no side effects, for embedder
// tooling (memory viewers, disassemblers) per spec.md §7.
func (b *Bus) ReadDebug(addr uint16) uint8 {
	switch {
	case addr < ramMirror:
		return b.ram[addr%ramSize]
	case addr < ppuMirrorEnd:
		return 0 // PPU register reads are inherently side-effecting; omit
	case addr < 0x4018:
		return 0
	default:
		return b.Cart.ReadPRG(addr)
	}
}

// Write services a CPU write.
func (b *Bus) Write(addr uint16, v uint8) {
	switch {
	case addr < ramMirror:
		b.ram[addr%ramSize] = v
	case addr < ppuMirrorEnd:
		b.PPU.WriteRegister((addr-ppuBase)%8, v, b.Cart)
	case addr == oamDMAReg:
		b.triggerOAMDMA(v)
	case addr == controller1:
		b.Pad1.Write(v)
		b.Pad2.Write(v)
	case addr < 0x4018:
		b.APU.WriteRegister(addr, v)
	default:
		b.Cart.WritePRG(addr, v)
	}
}

// triggerOAMDMA copies 256 bytes from page (v<<8) into OAM immediately
// and arms the CPU stall counter: 513 cycles, or 514 if the triggering
// write landed on an odd CPU cycle (spec.md §4.2/§4.5).
func (b *Bus) triggerOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.PPU.WriteOAMByte(uint8(i), b.Read(base+uint16(i)))
	}
	b.dmaStall = 513
	if b.cycles%2 != 0 {
		b.dmaStall++
	}
}
