package cartridge

// nrom implements mapper 0 (NROM): no bank switching. A single 16KiB PRG
// bank is mirrored to fill the 32KiB CPU window; a 32KiB image is mapped
// directly. CHR is either fixed ROM or, when the header declared zero
// CHR banks, 8KiB of CHR RAM.
type nrom struct {
	cart    *Cartridge
	prgMask uint16
}

func newNROM(cart *Cartridge) *nrom {
	mask := uint16(0x3FFF)
	if len(cart.prg) > prgBankSize {
		mask = 0x7FFF
	}
	return &nrom{cart: cart, prgMask: mask}
}

func (m *nrom) ReadPRG(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		offset := (addr - 0x8000) & m.prgMask
		if int(offset) < len(m.cart.prg) {
			return m.cart.prg[offset]
		}
		return 0
	case addr >= 0x6000:
		return m.cart.prgRAM[addr-0x6000]
	default:
		return 0
	}
}

func (m *nrom) WritePRG(addr uint16, value uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.cart.prgRAM[addr-0x6000] = value
	}
	// Writes to the ROM window are a no-op: NROM has no bank registers.
}

func (m *nrom) ReadCHR(addr uint16) uint8 {
	if addr < 0x2000 && int(addr) < len(m.cart.chr) {
		return m.cart.chr[addr]
	}
	return 0
}

func (m *nrom) WriteCHR(addr uint16, value uint8) {
	if addr < 0x2000 && m.cart.hasCHRRAM && int(addr) < len(m.cart.chr) {
		m.cart.chr[addr] = value
	}
}

func (m *nrom) Mirroring() Mirroring { return m.cart.mirroring }
