package cartridge

import (
	"bytes"
	"errors"
	"testing"
)

// buildImage constructs a minimal iNES image for testing.
func buildImage(prgBanks, chrBanks int, flags6, flags7 byte, fill byte) []byte {
	buf := &bytes.Buffer{}
	buf.Write(inesMagic[:])
	buf.WriteByte(byte(prgBanks))
	buf.WriteByte(byte(chrBanks))
	buf.WriteByte(flags6)
	buf.WriteByte(flags7)
	buf.Write(make([]byte, 8)) // PRGRAMSize, TVSystem1/2, padding[5]

	prg := make([]byte, prgBanks*prgBankSize)
	for i := range prg {
		prg[i] = byte(i) + fill
	}
	buf.Write(prg)

	chr := make([]byte, chrBanks*chrBankSize)
	for i := range chr {
		chr[i] = byte(i>>4) + fill
	}
	buf.Write(chr)

	return buf.Bytes()
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := buildImage(1, 1, 0, 0, 0)
	data[0] = 0x00
	if _, err := Load(bytes.NewReader(data)); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestLoadRejectsTooManyBanks(t *testing.T) {
	data := buildImage(1, 1, 0, 0, 0)
	data[4] = 17 // PRG bank count over the 16-bank maximum
	if _, err := Load(bytes.NewReader(data)); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestLoadRejectsUnsupportedMapper(t *testing.T) {
	data := buildImage(1, 1, 0x10, 0, 0) // mapper nibble -> mapper 1
	if _, err := Load(bytes.NewReader(data)); !errors.Is(err, ErrUnsupportedMapper) {
		t.Fatalf("expected ErrUnsupportedMapper, got %v", err)
	}
}

func TestLoadMirroring(t *testing.T) {
	cases := []struct {
		name   string
		flags6 byte
		want   Mirroring
	}{
		{"horizontal", 0x00, MirrorHorizontal},
		{"vertical", 0x01, MirrorVertical},
		{"four-screen overrides bit0", 0x09, MirrorFourScreen},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cart, err := Load(bytes.NewReader(buildImage(1, 1, c.flags6, 0, 0)))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got := cart.Mirroring(); got != c.want {
				t.Errorf("Mirroring() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestNROM16KBMirrorsAcross32KBWindow(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildImage(1, 1, 0, 0, 0)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := cart.ReadPRG(0x8123), cart.ReadPRG(0xC123); got != want {
		t.Errorf("16KB PRG should mirror: 0x8123=%#02x 0xC123=%#02x", got, want)
	}
}

func TestNROM32KBDoesNotMirror(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildImage(2, 1, 0, 0, 0)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	// buildImage's byte(i) fill repeats every 256 bytes, so make the first
	// byte of the second bank differ from the first byte of the first bank.
	cart.prg[prgBankSize] = cart.prg[0] + 1
	if cart.ReadPRG(0x8000) == cart.ReadPRG(0xC000) {
		t.Error("32KB PRG should not mirror between the two banks")
	}
}

func TestNROMIgnoresPRGWrites(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildImage(1, 1, 0, 0, 0)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	before := cart.ReadPRG(0x8000)
	cart.WritePRG(0x8000, before+1)
	if after := cart.ReadPRG(0x8000); after != before {
		t.Errorf("PRG ROM write should be ignored: before=%#02x after=%#02x", before, after)
	}
}

func TestNROMSRAMReadWrite(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildImage(1, 1, 0, 0, 0)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cart.WritePRG(0x6000, 0xDE)
	cart.WritePRG(0x7FFF, 0xAD)
	if got := cart.ReadPRG(0x6000); got != 0xDE {
		t.Errorf("SRAM[0x6000] = %#02x, want 0xDE", got)
	}
	if got := cart.ReadPRG(0x7FFF); got != 0xAD {
		t.Errorf("SRAM[0x7FFF] = %#02x, want 0xAD", got)
	}
}

func TestCHRRAMWhenNoCHRBanks(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildImage(1, 0, 0, 0, 0)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cart.WriteCHR(0x0010, 0xAB)
	if got := cart.ReadCHR(0x0010); got != 0xAB {
		t.Errorf("CHR RAM should be writable, got %#02x", got)
	}
}

func TestCHRROMIsReadOnly(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildImage(1, 1, 0, 0, 0)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	before := cart.ReadCHR(0x0100)
	cart.WriteCHR(0x0100, before+1)
	if after := cart.ReadCHR(0x0100); after != before {
		t.Errorf("CHR ROM write should be ignored: before=%#02x after=%#02x", before, after)
	}
}

func TestSaveRAMRoundTrip(t *testing.T) {
	cart, err := Load(bytes.NewReader(buildImage(1, 1, 0x02, 0, 0)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cart.HasBattery() {
		t.Fatal("expected HasBattery true when flags6 bit1 is set")
	}
	snapshot := append([]byte(nil), cart.SRAM()...)
	snapshot[0] = 0x42
	if err := cart.LoadSRAM(snapshot); err != nil {
		t.Fatalf("LoadSRAM: %v", err)
	}
	if got := cart.ReadPRG(0x6000); got != 0x42 {
		t.Errorf("SRAM after LoadSRAM = %#02x, want 0x42", got)
	}
	if err := cart.LoadSRAM(snapshot[:10]); !errors.Is(err, ErrCorruptSave) {
		t.Errorf("expected ErrCorruptSave for mismatched length, got %v", err)
	}
}
