// Package scheduler interleaves CPU and PPU stepping at the NES's
// native 1:3 cycle ratio and routes OAM DMA stall and VBlank NMI
// delivery between the two, per spec.md §4.5.
package scheduler

import (
	"github.com/nescore/gones/internal/bus"
	"github.com/nescore/gones/internal/cpu"
)

// Scheduler owns nothing the CPU or Bus don't already own; it only
// sequences calls between them so neither needs a reference to the
// other.
type Scheduler struct {
	CPU *cpu.CPU
	Bus *bus.Bus
}

// New builds a scheduler over an already-wired CPU and Bus.
func New(c *cpu.CPU, b *bus.Bus) *Scheduler {
	return &Scheduler{CPU: c, Bus: b}
}

// Step advances the system by one scheduler tick: one CPU cycle's worth
// of work (or a DMA stall cycle in its place) plus three PPU dots,
// always in that order. Returns true if this tick completed a frame.
func (s *Scheduler) Step() bool {
	if s.Bus.ConsumeDMAStallCycle() {
		// CPU is stalled; only the bus's parity counter advances via Bus.Tick.
	} else {
		if s.Bus.PPU.NMIPending() {
			s.CPU.TriggerNMI()
		}
		s.CPU.Step()
	}
	s.Bus.Tick()

	frameDone := false
	for i := 0; i < 3; i++ {
		s.Bus.PPU.Step(s.Bus.Cart)
		if s.Bus.PPU.FrameDone() {
			frameDone = true
		}
	}
	return frameDone
}

// RunFrame steps the system until a full frame has been produced.
func (s *Scheduler) RunFrame() {
	for !s.Step() {
	}
}
