package video

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-jeebie/jeebie/addr"
	"github.com/valerio/go-jeebie/jeebie/bit"
	"github.com/valerio/go-jeebie/jeebie/memory"
)

// GpuMode represents the PPU's current rendering stage.
// These values match the STAT register bits 1-0.
type GpuMode int

const (
	// hblankMode (Mode 0): Horizontal blank period, CPU can access VRAM/OAM
	hblankMode GpuMode = 0
	// vblankMode (Mode 1): Vertical blank period, CPU can access VRAM/OAM
	vblankMode GpuMode = 1
	// oamReadMode (Mode 2): PPU is reading OAM, CPU cannot access OAM
	oamReadMode GpuMode = 2
	// vramReadMode (Mode 3): PPU is reading VRAM, CPU cannot access VRAM/OAM
	vramReadMode GpuMode = 3
)

const (
	oamScanlineCycles  = 80
	vramScanlineCycles = 172
	hblankCycles       = 204
	scanlineCycles     = oamScanlineCycles + vramScanlineCycles + hblankCycles // 456 T-states/scanline
	visibleScanlines   = 144
	totalScanlines     = 154
	framePeriodCycles  = scanlineCycles * totalScanlines // 70224
)

// GPU drives the DMG picture pipeline one M-cycle at a time. Rather than
// tracking mode-local cycle budgets, it keeps a single running position
// within the frame (frameCycle) and derives both the current scanline
// and the offset into that scanline from it; mode transitions and the
// LY register fall directly out of that position instead of being
// advanced by hand at each boundary.
type GPU struct {
	memory         *memory.MMU
	framebuffer    *FrameBuffer
	oam            *OAM
	bgPixelBuffer  []byte // background/window color index (0-3) per pixel, for sprite priority

	mode         GpuMode
	line         int // LY, 0-153
	frameCycle   int // position within the 70224 T-state frame
	pixelCounter int // exposed for scanline-chunked renders (kept at 0/160 boundaries today)
	windowLine   int // internal window line counter, only advances on visible window lines

	statLine bool // combined STAT interrupt condition, latched to detect rising edges
}

func NewGpu(mem *memory.MMU) *GPU {
	gpu := &GPU{
		framebuffer:   NewFrameBuffer(),
		memory:        mem,
		oam:           NewOAM(mem),
		mode:          vblankMode,
		bgPixelBuffer: make([]byte, FramebufferSize),
		line:          144,
	}

	lcdc := mem.Read(addr.LCDC)
	bgp := mem.Read(addr.BGP)
	slog.Debug("GPU initialized", "LCDC", fmt.Sprintf("0x%02X", lcdc), "LCD_enabled", (lcdc&0x80) != 0, "BGP", fmt.Sprintf("0x%02X", bgp))

	return gpu
}

func (g *GPU) GetFrameBuffer() *FrameBuffer {
	return g.framebuffer
}

// Tick advances the PPU by the given number of T-states, one M-cycle
// (4 T-states) at a time so every hardware boundary (OAM scan end,
// scanline end, VBlank entry, frame wrap) is observed exactly once.
func (g *GPU) Tick(cycles int) {
	if g.readLCDCVariable(lcdDisplayEnable) == 0 {
		g.disableLCD()
		return
	}

	for remaining := cycles; remaining > 0; remaining -= 4 {
		g.stepMCycle()
	}
}

// disableLCD holds the PPU in its reset state while bit 7 of LCDC is
// clear: LY pinned at 0, mode forced to HBlank, frame position held at
// the start of the frame.
func (g *GPU) disableLCD() {
	g.frameCycle = 0
	g.windowLine = 0
	if g.mode != hblankMode {
		g.mode = hblankMode
	}
	if g.line != 0 {
		g.line = 0
		g.memory.Write(addr.LY, 0)
	}
}

func (g *GPU) stepMCycle() {
	g.frameCycle = (g.frameCycle + 4) % framePeriodCycles

	scanline := g.frameCycle / scanlineCycles
	clocks := g.frameCycle % scanlineCycles

	if clocks == 0 {
		g.setLY(scanline)
		if scanline == 0 {
			g.windowLine = 0
		}
	}

	if scanline < visibleScanlines {
		switch clocks {
		case 0:
			g.setMode(oamReadMode)
		case oamScanlineCycles:
			g.setMode(vramReadMode)
			g.drawScanline()
		case oamScanlineCycles + vramScanlineCycles:
			g.setMode(hblankMode)
		}
	} else if scanline == visibleScanlines && clocks == 0 {
		g.setMode(vblankMode)
		g.memory.RequestInterrupt(addr.VBlankInterrupt)
	}

	g.updateStatLine()
}

func (g *GPU) drawScanline() {
	if g.readLCDCVariable(lcdDisplayEnable) == 0 {
		for i := 0; i < FramebufferWidth; i++ {
			g.framebuffer.SetPixel(uint(i), uint(g.line), 0, 0x00) // color index 0 under palette 0x00 resolves to white
		}
		return
	}

	g.drawBackground()
	g.drawWindow()
	g.drawSprites()
}

func (g *GPU) drawBackground() {
	lineWidth := g.line * FramebufferWidth
	palette := g.memory.Read(addr.BGP)

	if g.readLCDCVariable(bgDisplay) == 0 {
		// background disabled: display color 0 from BGP, sprites still draw over it
		for i := 0; i < FramebufferWidth; i++ {
			g.framebuffer.SetPixel(uint(i), uint(g.line), 0, palette)
			g.bgPixelBuffer[lineWidth+i] = 0
		}
		return
	}

	useSignedTileSet := g.readLCDCVariable(bgWindowTileDataSelect) == 0
	useTileMapZero := g.readLCDCVariable(bgTileMapDisplaySelect) == 0

	tilesAddr := addr.TileData0
	if useSignedTileSet {
		tilesAddr = addr.TileData2
	}

	tileMapAddr := addr.TileMap1
	if useTileMapZero {
		tileMapAddr = addr.TileMap0
	}

	scrollX := g.memory.Read(addr.SCX)
	scrollY := g.memory.Read(addr.SCY)
	lineScrolled := (g.line + int(scrollY)) & 0xFF
	tileRowBase := (lineScrolled / 8) * 32
	tilePixelY2 := (lineScrolled % 8) * 2

	for screenX := 0; screenX < FramebufferWidth; screenX++ {
		mapPixelX := (screenX + int(scrollX)) & 0xFF
		mapTileX := mapPixelX / 8
		tileXOffset := mapPixelX % 8

		tileValue := g.memory.Read(tileMapAddr + uint16(tileRowBase+mapTileX))
		tileAddr := decodeTileAddress(tilesAddr, tileValue, tilePixelY2, useSignedTileSet)

		low := g.memory.Read(tileAddr)
		high := g.memory.Read(tileAddr + 1)

		colorIndex := tileRowPixel(low, high, 7-tileXOffset)

		position := lineWidth + screenX
		g.framebuffer.SetPixel(uint(screenX), uint(g.line), colorIndex, palette)
		g.bgPixelBuffer[position] = colorIndex
	}
}

func (g *GPU) drawWindow() {
	if g.windowLine > 143 {
		return
	}

	if g.readLCDCVariable(windowDisplayEnable) == 0 {
		return
	}

	wx := g.memory.Read(addr.WX) - 7
	wy := g.memory.Read(addr.WY)

	if wx > 159 {
		return
	}
	if wy > 143 || int(wy) > g.line {
		return
	}

	if g.line < 5 {
		slog.Debug("Window rendering", "line", g.line, "windowLine", g.windowLine, "wx", wx, "wy", wy)
	}

	useSignedTileSet := g.readLCDCVariable(bgWindowTileDataSelect) == 0
	useTileMapZero := g.readLCDCVariable(windowTileMapSelect) == 0

	tilesAddr := addr.TileData0
	if useSignedTileSet {
		tilesAddr = addr.TileData2
	}

	tileMapAddr := addr.TileMap1
	if useTileMapZero {
		tileMapAddr = addr.TileMap0
	}

	tileRowBase := (g.windowLine / 8) * 32
	tilePixelY2 := (g.windowLine & 7) * 2
	lineWidth := g.line * FramebufferWidth
	palette := g.memory.Read(addr.BGP)

	endTileX := (FramebufferWidth - int(wx) + 7) / 8
	if endTileX > 32 {
		endTileX = 32
	}

	for tile := 0; tile < endTileX; tile++ {
		tileValue := g.memory.Read(tileMapAddr + uint16(tileRowBase+tile))
		tileAddr := decodeTileAddress(tilesAddr, tileValue, tilePixelY2, useSignedTileSet)

		low := g.memory.Read(tileAddr)
		high := g.memory.Read(tileAddr + 1)
		xBase := tile * 8

		for px := 0; px < 8; px++ {
			bufferX := xBase + px + int(wx)
			if bufferX < int(wx) || bufferX >= FramebufferWidth {
				continue
			}

			position := lineWidth + bufferX
			if position >= len(g.bgPixelBuffer) {
				continue
			}

			colorIndex := tileRowPixel(low, high, 7-px)
			g.framebuffer.SetPixel(uint(bufferX), uint(g.line), colorIndex, palette)
			g.bgPixelBuffer[position] = colorIndex
		}
	}

	g.windowLine++
}

// decodeTileAddress resolves the VRAM address of a tile row, handling the
// LCDC bit 4 addressing-mode split: unsigned indices from 0x8000, or
// signed indices (-128..127) from a 0x9000 base.
func decodeTileAddress(tilesBase uint16, tileValue byte, rowOffset2 int, signed bool) uint16 {
	if signed {
		offset := int(int8(tileValue)) * 16
		return uint16(int(tilesBase) + offset + rowOffset2)
	}
	return tilesBase + uint16(int(tileValue)*16+rowOffset2)
}

// tileRowPixel extracts the 2-bit color index at bitIndex (7=leftmost,
// 0=rightmost) from a tile row's low/high bit planes.
func tileRowPixel(low, high byte, bitIndex int) byte {
	idx := uint8(bitIndex)
	var colorIndex byte
	if bit.IsSet(idx, low) {
		colorIndex |= 1
	}
	if bit.IsSet(idx, high) {
		colorIndex |= 2
	}
	return colorIndex
}

func (g *GPU) drawSprites() {
	if g.readLCDCVariable(spriteDisplayEnable) != 1 {
		return
	}

	lineWidth := g.line * FramebufferWidth
	sprites := g.oam.GetSpritesForScanline(g.line)

	for i := range sprites {
		sprite := &sprites[i]
		if !sprite.HasPriorityForAnyPixel() {
			continue
		}

		tileAddr := g.spriteTileAddress(sprite)
		low := g.memory.Read(tileAddr)
		high := g.memory.Read(tileAddr + 1)

		objPaletteAddr := addr.OBP0
		if sprite.PaletteOBP1 {
			objPaletteAddr = addr.OBP1
		}
		palette := g.memory.Read(objPaletteAddr)

		for px := 0; px < 8; px++ {
			if !sprite.HasPriorityForPixel(px) {
				continue
			}

			bufferX := int(sprite.X) + px
			if bufferX < 0 || bufferX >= FramebufferWidth {
				continue
			}

			srcBit := px
			if !sprite.FlipX {
				srcBit = 7 - px
			}
			colorIndex := tileRowPixel(low, high, srcBit)
			if colorIndex == 0 {
				continue // sprite color 0 is always transparent
			}

			position := lineWidth + bufferX
			if sprite.BehindBG && g.bgPixelBuffer[position] != 0 {
				continue
			}

			g.framebuffer.SetPixel(uint(bufferX), uint(g.line), colorIndex, palette)
		}
	}
}

// spriteTileAddress resolves the VRAM row address for a sprite, handling
// 8x16 mode (bit 0 of the tile index is ignored, and the row crosses
// into the second tile at pixel row 8) and the Y flip flag.
func (g *GPU) spriteTileAddress(sprite *Sprite) uint16 {
	row := g.line - int(sprite.Y)
	if sprite.FlipY {
		row = sprite.Height - 1 - row
	}

	tileIndex := int(sprite.TileIndex)
	if sprite.Height == 16 {
		tileIndex &= 0xFE
	}

	rowOffset := row * 2
	if sprite.Height == 16 && row >= 8 {
		rowOffset = (row - 8) * 2
		tileIndex++
	}

	// sprites always use unsigned addressing from 0x8000
	return addr.TileData0 + uint16(tileIndex*16+rowOffset)
}

// LCD Stat (Status) Register bit values
// Bit 7 - unused
// Bit 6 - Interrupt based on LYC to LY comparison (based on bit 2)
// Bit 5 - Interrupt when Mode 10 (oamReadMode)
// Bit 4 - Interrupt when Mode 01 (vblankMode)
// Bit 3 - Interrupt when Mode 00 (hblankMode)
// Bit 2 - condition for triggering LYC/LY (0=LYC != LY, 1=LYC == LY)
// Bit 1,0 - represents the current GPU mode
type statFlag uint8

const (
	statLycIrq       statFlag = 6
	statOamIrq                = 5
	statVblankIrq             = 4
	statHblankIrq             = 3
	statLycCondition          = 2
)

// LCDC (LCD Control) Register bit values
type lcdcFlag uint8

const (
	lcdDisplayEnable       lcdcFlag = 7
	windowTileMapSelect             = 6
	windowDisplayEnable             = 5
	bgWindowTileDataSelect          = 4
	bgTileMapDisplaySelect          = 3
	spriteSize                      = 2
	spriteDisplayEnable             = 1
	bgDisplay                       = 0
)

func (g *GPU) readLCDCVariable(flag lcdcFlag) byte {
	if bit.IsSet(uint8(flag), g.memory.Read(addr.LCDC)) {
		return 1
	}
	return 0
}

// updateStatLine recomputes the combined STAT interrupt condition (LYC
// match ORed with whichever mode sources are enabled) and fires the
// LCDSTAT interrupt only on its rising edge, mirroring real hardware:
// a STAT line held high by one source does not re-fire when another
// source also goes high while it's already asserted.
func (g *GPU) updateStatLine() {
	stat := g.memory.Read(addr.STAT)

	lycMatch := byte(g.line) == g.memory.Read(addr.LYC)
	if lycMatch {
		stat = bit.Set(uint8(statLycCondition), stat)
	} else {
		stat = bit.Reset(uint8(statLycCondition), stat)
	}
	g.memory.Write(addr.STAT, stat)

	condition := (bit.IsSet(uint8(statLycIrq), stat) && lycMatch) ||
		(bit.IsSet(uint8(statOamIrq), stat) && g.mode == oamReadMode) ||
		(bit.IsSet(uint8(statVblankIrq), stat) && g.mode == vblankMode) ||
		(bit.IsSet(uint8(statHblankIrq), stat) && g.mode == hblankMode)

	if condition && !g.statLine {
		g.memory.RequestInterrupt(addr.LCDSTATInterrupt)
	}
	g.statLine = condition
}

// setMode sets the two bits (1,0) in the STAT register according to the
// selected GPU mode.
func (g *GPU) setMode(mode GpuMode) {
	g.mode = mode
	stat := g.memory.Read(addr.STAT)
	stat = stat&0xFC | byte(g.mode)
	g.memory.Write(addr.STAT, stat)
}

// setLY updates the current scanline (LY register).
func (g *GPU) setLY(line int) {
	g.line = line
	g.memory.Write(addr.LY, byte(g.line))
}
