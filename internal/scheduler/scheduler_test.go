package scheduler

import (
	"bytes"
	"testing"

	"github.com/nescore/gones/internal/bus"
	"github.com/nescore/gones/internal/cartridge"
	"github.com/nescore/gones/internal/cpu"
)

func buildNROMImage(resetLo, resetHi byte) []byte {
	buf := &bytes.Buffer{}
	buf.Write([]byte{0x4E, 0x45, 0x53, 0x1A})
	buf.WriteByte(2)
	buf.WriteByte(1)
	buf.Write(make([]byte, 10))
	prg := make([]byte, 32*1024)
	// Reset vector at the very end of the PRG window (0xFFFC).
	prg[0x7FFC] = resetLo
	prg[0x7FFD] = resetHi
	prg[0x0000] = 0xEA // NOP at 0x8000
	buf.Write(prg)
	buf.Write(make([]byte, 8*1024))
	return buf.Bytes()
}

func newTestSystem(t *testing.T) (*Scheduler, *bus.Bus, *cpu.CPU) {
	t.Helper()
	cart, err := cartridge.Load(bytes.NewReader(buildNROMImage(0x00, 0x80)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b := bus.New(cart)
	c := cpu.New(b)
	c.Reset()
	return New(c, b), b, c
}

func TestStepRunsThreePPUDotsPerCPUStep(t *testing.T) {
	sched, b, _ := newTestSystem(t)
	for i := 0; i < 20; i++ {
		sched.Step()
	}
	total := b.PPU.TotalDots()
	if total != 60 {
		t.Errorf("after 20 scheduler steps, PPU advanced %d dots, want 60", total)
	}
}

// Every scheduler step runs three PPU dots, and RunFrame returns at the
// end of the step in which the frame wraps, so one frame from a fresh PPU
// takes 341*262 dots rounded up to a whole number of steps.
func TestRunFrameProducesOneFrameRoundedToWholeSteps(t *testing.T) {
	sched, b, _ := newTestSystem(t)
	startDots := b.PPU.TotalDots()
	sched.RunFrame()
	got := b.PPU.TotalDots() - startDots
	want := uint64((341*262 + 2) / 3 * 3)
	if got != want {
		t.Errorf("RunFrame advanced %d PPU dots, want %d", got, want)
	}
}

func TestDMAStallSkipsCPUWorkButKeepsPPURunning(t *testing.T) {
	sched, b, c := newTestSystem(t)
	b.Write(0x4014, 0x00) // arm OAM DMA, 513 or 514 cycle stall

	startTick := c.Tick
	startDots := b.PPU.TotalDots()
	stallLen := b.DMAStallCycles()
	for i := uint16(0); i < stallLen; i++ {
		sched.Step()
	}

	if c.Tick != startTick {
		t.Errorf("CPU.Tick advanced by %d during DMA stall, want 0", c.Tick-startTick)
	}
	if got := b.PPU.TotalDots() - startDots; got != uint64(stallLen)*3 {
		t.Errorf("PPU advanced %d dots during stall, want %d", got, uint64(stallLen)*3)
	}
}
