package memory

import (
	"testing"

	"github.com/valerio/go-jeebie/jeebie/addr"
)

func TestOAMDMATransfer(t *testing.T) {
	mmu := New()

	// Source: WRAM at 0xC000-0xC09F, filled with a recognizable pattern.
	for i := 0; i < 160; i++ {
		mmu.Write(0xC000+uint16(i), byte(i))
	}

	mmu.Write(addr.DMA, 0xC0) // arms a transfer from 0xC000

	if mmu.Read(0xFE00) != 0xFF {
		t.Fatalf("OAM read immediately after arming DMA = 0x%02X; want 0xFF (locked out)", mmu.Read(0xFE00))
	}

	// One m-cycle copies exactly one byte.
	mmu.Tick(4)
	if mmu.memory[0xFE00] != 0x00 {
		t.Fatalf("OAM[0] after one m-cycle = 0x%02X; want 0x00", mmu.memory[0xFE00])
	}
	if mmu.memory[0xFE01] != 0x00 {
		t.Fatalf("OAM[1] copied before its m-cycle elapsed: 0x%02X", mmu.memory[0xFE01])
	}

	// CPU-facing OAM access is still locked out mid-transfer.
	if mmu.Read(0xFE01) != 0xFF {
		t.Fatalf("OAM read mid-transfer = 0x%02X; want 0xFF", mmu.Read(0xFE01))
	}
	mmu.Write(0xFE01, 0x99)
	if mmu.memory[0xFE01] == 0x99 {
		t.Fatalf("OAM write during active DMA was not dropped")
	}

	// Run the remaining 159 m-cycles to completion.
	mmu.Tick(159 * 4)

	for i := 0; i < 160; i++ {
		if mmu.memory[0xFE00+i] != byte(i) {
			t.Fatalf("OAM[%d] = 0x%02X; want 0x%02X", i, mmu.memory[0xFE00+i], byte(i))
		}
	}

	// Transfer has completed: OAM is readable again.
	if mmu.Read(0xFE00) != 0x00 {
		t.Fatalf("OAM read after completed transfer = 0x%02X; want 0x00", mmu.Read(0xFE00))
	}
}

func TestOAMDMAEchoSource(t *testing.T) {
	mmu := New()

	// Write through WRAM proper; DMA sourced from the echo region
	// (0xE000-0xFDFF) should fold back onto the same bytes.
	mmu.Write(0xC000, 0xAB)

	mmu.Write(addr.DMA, 0xE0) // source 0xE000, echoes 0xC000
	mmu.Tick(4)

	if mmu.memory[0xFE00] != 0xAB {
		t.Fatalf("OAM[0] via echo-sourced DMA = 0x%02X; want 0xAB", mmu.memory[0xFE00])
	}
}
