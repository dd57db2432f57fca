// Package ppu implements the NES's 2C02 picture processing unit: a
// per-dot background/sprite pipeline driven one dot at a time by the
// scheduler, plus the CPU-visible register window at 0x2000-0x3FFF.
package ppu

import "github.com/nescore/gones/internal/cartridge"

// CHRSource is the cartridge-facing surface the PPU fetches pattern and
// nametable mirroring data through. Passed into Step rather than held,
// so the PPU never back-references the cartridge or bus that own it.
type CHRSource interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, value uint8)
	Mirroring() cartridge.Mirroring
}

// Register indices into the 8-byte, mirrored CPU-visible window.
const (
	RegPPUCTRL = iota
	RegPPUMASK
	RegPPUSTATUS
	RegOAMADDR
	RegOAMDATA
	RegPPUSCROLL
	RegPPUADDR
	RegPPUDATA
)

// PPUCTRL bits.
const (
	ctrlIncrement32    = 1 << 2
	ctrlSpritePattern  = 1 << 3
	ctrlBGPattern      = 1 << 4
	ctrlSpriteSize8x16 = 1 << 5
	ctrlNMIEnable      = 1 << 7
)

// PPUMASK bits.
const (
	maskShowBGLeft     = 1 << 1
	maskShowSpriteLeft = 1 << 2
	maskShowBG         = 1 << 3
	maskShowSprites    = 1 << 4
)

// PPUSTATUS bits.
const (
	statusSpriteOverflow = 1 << 5
	statusSprite0Hit     = 1 << 6
	statusVBlank         = 1 << 7
)

const (
	visibleScanlines = 240
	vblankStartLine  = 241
	preRenderLine    = 261
)

type spriteUnit struct {
	patternLo, patternHi uint8
	attr                 uint8
	x                    uint8
}

// PPU is the NES picture processing unit. Step advances it by one dot.
type PPU struct {
	ctrl, mask, status uint8
	oamAddr            uint8

	v, t loopy
	x    uint8 // fine X scroll, 0-7
	w    bool  // write-toggle latch

	readBuffer uint8 // buffered PPUDATA read

	nametables [2][1024]uint8
	paletteRAM [32]uint8
	oam        [256]uint8

	dot      int
	scanline int
	frame    uint64

	nmiPending bool

	// background pipeline
	bgNextTileID  uint8
	bgNextAttrib  uint8
	bgNextLo      uint8
	bgNextHi      uint8
	bgShiftLo     uint16
	bgShiftHi     uint16
	bgShiftAttrLo uint16
	bgShiftAttrHi uint16

	// sprite pipeline, built during evaluation and consumed next line
	sprites        [8]spriteUnit
	spriteCount    int
	sprite0OnLine  bool
	sprite0Visible bool

	Framebuffer [256 * 240]uint32

	totalDots uint64
}

// TotalDots reports the number of dots this PPU has ever stepped,
// exposed for embedder/test timing checks.
func (p *PPU) TotalDots() uint64 { return p.totalDots }

// New returns a PPU with all registers at their power-on state.
func New() *PPU {
	p := &PPU{}
	p.Reset()
	return p
}

// Reset restores power-on register state without touching VRAM contents.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.v, p.t, p.x, p.w = 0, 0, 0, false
	p.readBuffer = 0
	p.dot, p.scanline = 0, 0
	p.nmiPending = false
}

// NMIPending reports and clears the one-shot NMI request the scheduler
// consumes after each dot-triple, per the Bus/CPU ownership split that
// keeps the PPU from calling into the CPU directly.
func (p *PPU) NMIPending() bool {
	pending := p.nmiPending
	p.nmiPending = false
	return pending
}

// FrameDone reports whether the dot just stepped was the final dot of a
// frame (the scanline/dot counter wrapping from the pre-render line back
// to scanline 0, dot 0), the scheduler's cue to hand the framebuffer off.
func (p *PPU) FrameDone() bool {
	return p.scanline == 0 && p.dot == 0
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&(maskShowBG|maskShowSprites) != 0
}

// Step advances the PPU exactly one dot against the given cartridge CHR
// source, which supplies pattern data and nametable mirroring.
func (p *PPU) Step(cart CHRSource) {
	switch {
	case p.scanline < visibleScanlines || p.scanline == preRenderLine:
		p.renderScanline(cart)
	case p.scanline == vblankStartLine && p.dot == 1:
		p.status |= statusVBlank
		if p.ctrl&ctrlNMIEnable != 0 {
			p.nmiPending = true
		}
	}

	p.totalDots++
	p.advanceDot()
}

func (p *PPU) advanceDot() {
	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > preRenderLine {
			p.scanline = 0
			p.frame++
		}
	}
}

func (p *PPU) renderScanline(cart CHRSource) {
	if p.scanline == preRenderLine && p.dot == 1 {
		p.status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
	}

	if !p.renderingEnabled() {
		return
	}

	visibleFetch := (p.dot >= 1 && p.dot <= 256) || (p.dot >= 321 && p.dot <= 336)
	if visibleFetch {
		p.shiftBackground()
		p.fetchBackground(cart)
	}

	if p.dot == 256 {
		p.v.incrementFineY()
	}
	if p.dot == 257 {
		p.v.copyHorizontal(p.t)
		p.evaluateSprites(cart)
	}
	if p.scanline == preRenderLine && p.dot >= 280 && p.dot <= 304 {
		p.v.copyVertical(p.t)
	}

	if p.scanline < visibleScanlines && p.dot >= 1 && p.dot <= 256 {
		p.renderPixel()
	}
}

// fetchBackground runs the 8-cycle nametable/attribute/pattern fetch
// sequence: on dot%8==1 it reloads the shift registers from the "next"
// latches and fetches the next tile id, on dots 3, 5 and 7 it fetches the
// attribute and the two pattern planes into those latches, and on
// dot%8==0 it increments coarse X.
func (p *PPU) fetchBackground(cart CHRSource) {
	switch p.dot % 8 {
	case 1:
		p.reloadShifters()
		ntAddr := 0x2000 | (uint16(p.v) & 0x0FFF)
		p.bgNextTileID = p.readVRAM(cart, ntAddr)
	case 3:
		attrAddr := 0x23C0 | (uint16(p.v) & 0x0C00) | ((p.v.coarseY() >> 2) << 3) | (p.v.coarseX() >> 2)
		attr := p.readVRAM(cart, attrAddr)
		shift := (p.v.coarseY()&0x02)<<1 | (p.v.coarseX() & 0x02)
		p.bgNextAttrib = (attr >> shift) & 0x03
	case 5:
		table := uint16(0)
		if p.ctrl&ctrlBGPattern != 0 {
			table = 0x1000
		}
		addr := table + uint16(p.bgNextTileID)*16 + p.v.fineY()
		p.bgNextLo = cart.ReadCHR(addr)
	case 7:
		table := uint16(0)
		if p.ctrl&ctrlBGPattern != 0 {
			table = 0x1000
		}
		addr := table + uint16(p.bgNextTileID)*16 + p.v.fineY() + 8
		p.bgNextHi = cart.ReadCHR(addr)
	case 0:
		p.v.incrementCoarseX()
	}
}

func (p *PPU) reloadShifters() {
	p.bgShiftLo = (p.bgShiftLo &^ 0x00FF) | uint16(p.bgNextLo)
	p.bgShiftHi = (p.bgShiftHi &^ 0x00FF) | uint16(p.bgNextHi)
	var lo, hi uint16
	if p.bgNextAttrib&0x01 != 0 {
		lo = 0x00FF
	}
	if p.bgNextAttrib&0x02 != 0 {
		hi = 0x00FF
	}
	p.bgShiftAttrLo = (p.bgShiftAttrLo &^ 0x00FF) | lo
	p.bgShiftAttrHi = (p.bgShiftAttrHi &^ 0x00FF) | hi
}

func (p *PPU) shiftBackground() {
	p.bgShiftLo <<= 1
	p.bgShiftHi <<= 1
	p.bgShiftAttrLo <<= 1
	p.bgShiftAttrHi <<= 1
}

// evaluateSprites scans all 64 OAM entries for the NEXT scanline,
// keeping up to 8 and setting the overflow flag by simple count past
// that — the documented simplification of the hardware's buggy
// diagonal secondary-OAM scan.
func (p *PPU) evaluateSprites(cart CHRSource) {
	height := 8
	if p.ctrl&ctrlSpriteSize8x16 != 0 {
		height = 16
	}
	nextLine := p.scanline + 1

	p.spriteCount = 0
	p.sprite0OnLine = false
	matched := 0
	for i := 0; i < 64; i++ {
		y := int(p.oam[i*4])
		row := nextLine - y
		if row < 0 || row >= height {
			continue
		}
		matched++
		if matched > 8 {
			p.status |= statusSpriteOverflow
			continue
		}
		if i == 0 {
			p.sprite0OnLine = true
		}

		tileIdx := p.oam[i*4+1]
		attr := p.oam[i*4+2]
		x := p.oam[i*4+3]
		flipV := attr&0x80 != 0
		flipH := attr&0x40 != 0
		if flipV {
			row = height - 1 - row
		}

		var addr uint16
		if height == 16 {
			table := uint16(tileIdx&0x01) * 0x1000
			tile := uint16(tileIdx &^ 0x01)
			if row >= 8 {
				tile++
				row -= 8
			}
			addr = table + tile*16 + uint16(row)
		} else {
			table := uint16(0)
			if p.ctrl&ctrlSpritePattern != 0 {
				table = 0x1000
			}
			addr = table + uint16(tileIdx)*16 + uint16(row)
		}

		lo := cart.ReadCHR(addr)
		hi := cart.ReadCHR(addr + 8)
		if flipH {
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}

		slot := matched - 1
		p.sprites[slot] = spriteUnit{patternLo: lo, patternHi: hi, attr: attr, x: x}
		p.spriteCount = slot + 1
	}
}

func reverseBits(b uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

func (p *PPU) renderPixel() {
	x := p.dot - 1
	y := p.scanline

	bgPixel, bgPalette := p.backgroundPixel(x)
	spritePixel, spritePalette, spritePriority, isSprite0 := p.spritePixel(x)

	var paletteAddr uint16
	switch {
	case bgPixel == 0 && spritePixel == 0:
		paletteAddr = 0
	case bgPixel == 0 && spritePixel != 0:
		paletteAddr = 0x10 + uint16(spritePalette)*4 + uint16(spritePixel)
	case bgPixel != 0 && spritePixel == 0:
		paletteAddr = uint16(bgPalette)*4 + uint16(bgPixel)
	default:
		if isSprite0 && p.sprite0Visible && x != 255 {
			p.status |= statusSprite0Hit
		}
		if spritePriority {
			paletteAddr = uint16(bgPalette)*4 + uint16(bgPixel)
		} else {
			paletteAddr = 0x10 + uint16(spritePalette)*4 + uint16(spritePixel)
		}
	}

	index := p.readPaletteRAM(paletteAddr)
	p.Framebuffer[y*256+x] = rgb(index)
}

func (p *PPU) backgroundPixel(x int) (pixel, palette uint8) {
	if p.mask&maskShowBG == 0 || (x < 8 && p.mask&maskShowBGLeft == 0) {
		return 0, 0
	}
	bit := uint16(0x8000) >> p.x
	lo := uint8(0)
	hi := uint8(0)
	if p.bgShiftLo&bit != 0 {
		lo = 1
	}
	if p.bgShiftHi&bit != 0 {
		hi = 1
	}
	pixel = hi<<1 | lo

	alo, ahi := uint8(0), uint8(0)
	if p.bgShiftAttrLo&bit != 0 {
		alo = 1
	}
	if p.bgShiftAttrHi&bit != 0 {
		ahi = 1
	}
	palette = ahi<<1 | alo
	return pixel, palette
}

func (p *PPU) spritePixel(x int) (pixel, palette uint8, behindBG bool, isSprite0 bool) {
	p.sprite0Visible = false
	if p.mask&maskShowSprites == 0 || (x < 8 && p.mask&maskShowSpriteLeft == 0) {
		return 0, 0, false, false
	}
	for i := 0; i < p.spriteCount; i++ {
		s := &p.sprites[i]
		offset := x - int(s.x)
		if offset < 0 || offset > 7 {
			continue
		}
		bit := uint(7 - offset)
		lo := (s.patternLo >> bit) & 1
		hi := (s.patternHi >> bit) & 1
		px := hi<<1 | lo
		if px == 0 {
			continue
		}
		if i == 0 && p.sprite0OnLine {
			p.sprite0Visible = true
		}
		return px, s.attr & 0x03, s.attr&0x20 != 0, i == 0 && p.sprite0OnLine
	}
	return 0, 0, false, false
}

func (p *PPU) readPaletteRAM(addr uint16) uint8 {
	addr &= 0x1F
	if addr >= 0x10 && addr%4 == 0 {
		addr -= 0x10
	}
	return p.paletteRAM[addr]
}

func (p *PPU) writePaletteRAM(addr uint16, v uint8) {
	addr &= 0x1F
	if addr >= 0x10 && addr%4 == 0 {
		addr -= 0x10
	}
	p.paletteRAM[addr] = v & 0x3F
}

// readVRAM resolves a nametable address (0x2000-0x3EFF) through the
// cartridge's mirroring mode into one of the PPU's two physical 1KB
// nametables, or reads CHR/palette space directly.
func (p *PPU) readVRAM(cart CHRSource, addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return cart.ReadCHR(addr)
	case addr < 0x3F00:
		table, offset := p.mirrorNametable(cart.Mirroring(), addr)
		return p.nametables[table][offset]
	default:
		return p.readPaletteRAM(addr)
	}
}

func (p *PPU) writeVRAM(cart CHRSource, addr uint16, v uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		cart.WriteCHR(addr, v)
	case addr < 0x3F00:
		table, offset := p.mirrorNametable(cart.Mirroring(), addr)
		p.nametables[table][offset] = v
	default:
		p.writePaletteRAM(addr, v)
	}
}

func (p *PPU) mirrorNametable(mode cartridge.Mirroring, addr uint16) (table int, offset uint16) {
	rel := (addr - 0x2000) % 0x1000
	quadrant := rel / 0x0400
	offset = rel % 0x0400

	switch mode {
	case cartridge.MirrorVertical:
		table = int(quadrant % 2)
	case cartridge.MirrorHorizontal:
		table = int(quadrant / 2)
	case cartridge.MirrorSingleScreen:
		table = 0
	default: // four-screen: fold pairs, we only have 2 physical banks
		table = int(quadrant % 2)
	}
	return table, offset
}
