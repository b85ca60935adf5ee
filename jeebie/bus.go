package jeebie

import (
	"github.com/valerio/go-jeebie/jeebie/addr"
	"github.com/valerio/go-jeebie/jeebie/cpu"
	"github.com/valerio/go-jeebie/jeebie/memory"
	"github.com/valerio/go-jeebie/jeebie/video"
)

// BusInterface defines the interface for component communication.
type BusInterface interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
	RequestInterrupt(interrupt addr.Interrupt)
}

// Bus is the clock manager threaded through CPU execution as cpu.Bus. It
// owns the MMU and GPU, and drives both (plus the APU living inside the
// MMU) on every m-cycle the CPU spends, in the fixed order the hardware
// requires: timer/DMA (inside MMU.Tick), then PPU, then APU. GPU lives
// outside the memory package to avoid an import cycle (video depends on
// memory for VRAM/OAM access), so it can't be ticked from inside
// MMU.Tick directly.
type Bus struct {
	CPU *cpu.CPU
	MMU *memory.MMU
	GPU *video.GPU
}

// NewBus wires a CPU-facing bus around an already constructed MMU and GPU.
func NewBus(mem *memory.MMU, gpu *video.GPU) *Bus {
	return &Bus{MMU: mem, GPU: gpu}
}

func (b *Bus) Read(address uint16) byte {
	return b.MMU.Read(address)
}

func (b *Bus) Write(address uint16, value byte) {
	b.MMU.Write(address, value)
}

// Tick advances the timer, DMA, PPU and APU by cycles T-states, in that
// order. Called once per m-cycle from inside CPU instruction execution.
func (b *Bus) Tick(cycles int) {
	b.MMU.Tick(cycles)
	if b.GPU != nil {
		b.GPU.Tick(cycles)
	}
	if b.MMU.APU != nil {
		b.MMU.APU.Tick(cycles)
	}
}

func (b *Bus) RequestInterrupt(interrupt addr.Interrupt) {
	b.MMU.RequestInterrupt(interrupt)
}

func (b *Bus) ReadBit(index uint8, address uint16) bool {
	return b.MMU.ReadBit(index, address)
}
