package video

import "math/rand"

// GBColor is a resolved RGBA color, one of the four shades the DMG LCD
// can display.
type GBColor uint32

const (
	FramebufferWidth  = 160
	FramebufferHeight = 144
	FramebufferSize   = FramebufferWidth * FramebufferHeight
)

const (
	WhiteColor     GBColor = 0xFFFFFFFF
	LightGreyColor         = 0x989898FF
	DarkGreyColor          = 0x4C4C4CFF
	BlackColor             = 0x000000FF
)

// identityPalette maps color index N to shade N (BGP/OBP register value
// 0xE4), used where a pixel has never been written a real palette.
const identityPalette = 0xE4

func ByteToColor(value byte) GBColor {
	switch value {
	case 0:
		return WhiteColor
	case 1:
		return LightGreyColor
	case 2:
		return DarkGreyColor
	case 3:
		return BlackColor
	}

	return 0
}

// cell is one plotted pixel, kept in its raw, unresolved form: the 2-bit
// color index the PPU fetched from tile/sprite data, and the palette
// register byte in effect at the moment it was plotted. Reading a pixel
// decodes the index through that palette on demand.
//
// Carrying the palette alongside the index (rather than folding the two
// into a final shade at draw time) matters because BGP/OBP0/OBP1 can
// change mid-scanline: a write that lands between two plotted pixels
// must only affect pixels plotted after it, not pixels already drawn
// with the old mapping.
type cell struct {
	index   byte
	palette byte
}

func (c cell) resolve() uint32 {
	shade := (c.palette >> (c.index * 2)) & 0x03
	return uint32(ByteToColor(shade))
}

type FrameBuffer struct {
	width  uint
	height uint
	buffer []cell
}

func NewFrameBuffer() *FrameBuffer {
	cells := make([]cell, FramebufferSize)

	return &FrameBuffer{
		width:  FramebufferWidth,
		height: FramebufferHeight,
		buffer: cells,
	}
}

// GetPixel resolves the pixel at (x, y) to its final RGBA color, decoding
// the stored color index through the palette byte captured when it was
// plotted.
func (fb FrameBuffer) GetPixel(x, y uint) uint32 {
	return fb.buffer[y*fb.width+x].resolve()
}

// SetPixel plots a pixel as a color index (0-3) plus the palette register
// byte currently in effect. Resolution to an RGBA shade is deferred until
// the pixel is read.
func (fb *FrameBuffer) SetPixel(x, y uint, colorIndex, palette byte) {
	fb.buffer[y*fb.width+x] = cell{index: colorIndex & 0x03, palette: palette}
}

// ToSlice resolves the whole framebuffer to RGBA pixels, in row-major
// order, for consumers that need a flat pixel buffer (SDL textures,
// terminal renderers, debug snapshots).
func (fb *FrameBuffer) ToSlice() []uint32 {
	out := make([]uint32, len(fb.buffer))
	for i, c := range fb.buffer {
		out[i] = c.resolve()
	}
	return out
}

// Clear resets the framebuffer to color index 0 under the identity
// palette (solid black).
func (fb *FrameBuffer) Clear() {
	for i := range fb.buffer {
		fb.buffer[i] = cell{}
	}
}

func (fb *FrameBuffer) DrawNoise() {
	// placeholder: draws random pixels under the identity palette
	for i := range fb.buffer {
		fb.buffer[i] = cell{index: byte(rand.Uint32() % 4), palette: identityPalette}
	}
}

// ToBinaryData returns the resolved framebuffer as raw RGBA bytes, for
// test comparison against golden frames.
func (fb *FrameBuffer) ToBinaryData() []byte {
	data := make([]byte, len(fb.buffer)*4)
	for i, c := range fb.buffer {
		pixel := c.resolve()
		data[i*4] = byte(pixel >> 24)   // R
		data[i*4+1] = byte(pixel >> 16) // G
		data[i*4+2] = byte(pixel >> 8)  // B
		data[i*4+3] = byte(pixel)       // A
	}
	return data
}

// ToGrayscale converts the framebuffer to grayscale shade values (0-3)
// for simpler comparison, resolving each cell through its palette first.
func (fb *FrameBuffer) ToGrayscale() []byte {
	data := make([]byte, len(fb.buffer))
	for i, c := range fb.buffer {
		switch GBColor(c.resolve()) {
		case BlackColor:
			data[i] = 0
		case DarkGreyColor:
			data[i] = 1
		case LightGreyColor:
			data[i] = 2
		case WhiteColor:
			data[i] = 3
		default:
			data[i] = 0
		}
	}
	return data
}
