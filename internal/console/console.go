// Package console assembles the cartridge, bus, CPU, PPU, and scheduler
// into the single embedder-facing surface described by spec.md §6:
// Load, Reset, Step, RunFrame, Framebuffer, SetButton, ReadDebug, and
// DisassembleAt.
package console

import (
	"io"
	"log"
	"os"

	"github.com/nescore/gones/internal/bus"
	"github.com/nescore/gones/internal/cartridge"
	"github.com/nescore/gones/internal/controller"
	"github.com/nescore/gones/internal/cpu"
	"github.com/nescore/gones/internal/scheduler"
)

// Logger receives diagnostics at the boundaries that can actually fail
// or need an embedder's attention: ROM load errors and CPU jams. An
// embedder may redirect or silence it (e.g. log.New(io.Discard, "", 0)).
var Logger = log.New(os.Stderr, "gones: ", log.LstdFlags)

// Config controls session startup. All fields are optional.
type Config struct {
	// MuteAPU is accepted for forward compatibility; the APU is
	// already a silent stub (spec.md §1's Non-goals), so this is
	// currently a no-op retained as a documented seam.
	MuteAPU bool
}

// Console is the assembled system an embedder drives one frame or one
// scheduler step at a time.
type Console struct {
	cart *cartridge.Cartridge
	Bus  *bus.Bus
	CPU  *cpu.CPU
	sched *scheduler.Scheduler

	cfg       Config
	loggedJam bool
}

// Load parses an iNES image and wires a fresh console around it. The
// CPU is reset before returning, ready for Step/RunFrame.
func Load(image io.Reader, cfg Config) (*Console, error) {
	cart, err := cartridge.Load(image)
	if err != nil {
		Logger.Printf("load failed: %v", err)
		return nil, err
	}

	b := bus.New(cart)
	c := cpu.New(b)
	c.Reset()

	return &Console{
		cart:  cart,
		Bus:   b,
		CPU:   c,
		sched: scheduler.New(c, b),
		cfg:   cfg,
	}, nil
}

// Reset re-runs the power-up/reset sequence without reloading the ROM.
func (con *Console) Reset() {
	con.Bus.PPU.Reset()
	con.CPU.Reset()
}

// Step advances the system by one scheduler tick (one CPU cycle's worth
// of work, or a DMA stall cycle, plus three PPU dots). Reports whether
// this tick completed a frame.
func (con *Console) Step() bool {
	done := con.sched.Step()
	if con.CPU.Jammed() && !con.loggedJam {
		con.loggedJam = true
		Logger.Printf("CPU jammed at PC=%#04x (tick %d)", con.CPU.PC, con.CPU.Tick)
	}
	return done
}

// RunFrame steps until a full frame (341×262 PPU dots) has elapsed.
func (con *Console) RunFrame() {
	for !con.Step() {
	}
}

// Framebuffer returns the current 256x240 RGB pixel buffer. The backing
// array belongs to the PPU; callers that need to retain a frame across
// further stepping should copy it.
func (con *Console) Framebuffer() *[256 * 240]uint32 {
	return &con.Bus.PPU.Framebuffer
}

// SetButton updates one button's held state on one of the two
// controller ports (1 or 2).
func (con *Console) SetButton(port int, button controller.Button, pressed bool) {
	switch port {
	case 1:
		con.Bus.Pad1.SetButton(button, pressed)
	case 2:
		con.Bus.Pad2.SetButton(button, pressed)
	}
}

// ReadDebug peeks at a CPU address with no side effects.
func (con *Console) ReadDebug(addr uint16) uint8 {
	return con.Bus.ReadDebug(addr)
}

// DisassembleAt renders the instruction at pc and its byte length.
func (con *Console) DisassembleAt(pc uint16) (text string, length uint8) {
	return con.CPU.Disassemble(pc)
}

// Jammed reports whether the CPU has stalled on a self-looping
// instruction, the embedder's signal to stop driving the session.
func (con *Console) Jammed() bool {
	return con.CPU.Jammed()
}

// Cartridge exposes the loaded cartridge, primarily so an embedder can
// read/write battery-backed SRAM across sessions.
func (con *Console) Cartridge() *cartridge.Cartridge {
	return con.cart
}
