package console

import (
	"bytes"
	"testing"

	"github.com/nescore/gones/internal/controller"
)

func buildNOPLoopImage() []byte {
	buf := &bytes.Buffer{}
	buf.Write([]byte{0x4E, 0x45, 0x53, 0x1A})
	buf.WriteByte(2)
	buf.WriteByte(1)
	buf.Write(make([]byte, 10))
	prg := make([]byte, 32*1024)
	prg[0x7FFC] = 0x00
	prg[0x7FFD] = 0x80
	prg[0x0000] = 0xEA // NOP
	buf.Write(prg)
	buf.Write(make([]byte, 8*1024))
	return buf.Bytes()
}

func TestLoadAndRunFrameProducesFramebuffer(t *testing.T) {
	con, err := Load(bytes.NewReader(buildNOPLoopImage()), Config{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	con.RunFrame()
	fb := con.Framebuffer()
	if len(fb) != 256*240 {
		t.Fatalf("framebuffer length = %d, want %d", len(fb), 256*240)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("not a rom")), Config{})
	if err == nil {
		t.Error("expected an error loading a non-iNES image")
	}
}

func TestSetButtonReachesCorrectPort(t *testing.T) {
	con, err := Load(bytes.NewReader(buildNOPLoopImage()), Config{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	con.SetButton(1, controller.A, true)
	con.Bus.Write(0x4016, 1)
	con.Bus.Write(0x4016, 0)
	if got := con.Bus.Read(0x4016); got&1 != 1 {
		t.Error("port 1 should report A held after SetButton(1, A, true)")
	}
	if got := con.Bus.Read(0x4017); got&1 != 0 {
		t.Error("port 2 should not have A held")
	}
}

func TestDisassembleAtReadsResetVectorInstruction(t *testing.T) {
	con, err := Load(bytes.NewReader(buildNOPLoopImage()), Config{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	text, length := con.DisassembleAt(0x8000)
	if length != 1 {
		t.Errorf("NOP length = %d, want 1", length)
	}
	if text == "" {
		t.Error("expected non-empty disassembly text")
	}
}

func TestReadDebugReflectsRAMWrites(t *testing.T) {
	con, err := Load(bytes.NewReader(buildNOPLoopImage()), Config{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_ = con.ReadDebug(0x0010)
	con.Bus.Write(0x0010, 0x55)
	if got := con.ReadDebug(0x0010); got != 0x55 {
		t.Errorf("ReadDebug after write = %#02x, want 0x55", got)
	}
}
