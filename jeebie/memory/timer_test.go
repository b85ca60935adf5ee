package memory

import (
	"testing"

	"github.com/valerio/go-jeebie/jeebie/addr"
)

func TestTimerOverflowReload(t *testing.T) {
	timer := &Timer{}
	timer.SetSeed(0)

	interrupts := 0
	timer.TimerInterruptHandler = func() { interrupts++ }

	timer.Write(addr.TAC, 0x05) // enabled, mode 01 (bit 3, falling edge every 16 cycles)
	timer.Write(addr.TMA, 0x10)
	timer.Write(addr.TIMA, 0xFF)

	// Sixteen cycles carries the system counter through the one falling
	// edge of bit 3 that increments TIMA from 0xFF, overflowing it.
	timer.Tick(16)
	if timer.Read(addr.TIMA) != 0x00 {
		t.Fatalf("TIMA after overflow = 0x%02X; want 0x00", timer.Read(addr.TIMA))
	}
	if interrupts != 0 {
		t.Fatalf("interrupt fired before the reload delay elapsed")
	}

	// The reload is delayed by one M-cycle (4 T-states).
	timer.Tick(4)
	if timer.Read(addr.TIMA) != 0x10 {
		t.Fatalf("TIMA after reload = 0x%02X; want TMA (0x10)", timer.Read(addr.TIMA))
	}

	timer.Tick(1)
	if interrupts != 1 {
		t.Fatalf("interrupts = %d; want 1 after the delayed interrupt cycle", interrupts)
	}
}

func TestTimerWriteDuringOverflowCancelsReload(t *testing.T) {
	timer := &Timer{}
	timer.SetSeed(0)

	interrupts := 0
	timer.TimerInterruptHandler = func() { interrupts++ }

	timer.Write(addr.TAC, 0x05)
	timer.Write(addr.TMA, 0x10)
	timer.Write(addr.TIMA, 0xFF)

	timer.Tick(16) // triggers the overflow, TIMA = 0x00, reload pending

	// Writing TIMA during the overflow window cancels the pending reload
	// and the interrupt it would have fired.
	timer.Write(addr.TIMA, 0x77)

	timer.Tick(8)
	if timer.Read(addr.TIMA) != 0x77 {
		t.Fatalf("TIMA after cancelled reload = 0x%02X; want 0x77 unchanged", timer.Read(addr.TIMA))
	}
	if interrupts != 0 {
		t.Fatalf("interrupts = %d; want 0, the write should have cancelled it", interrupts)
	}
}

func TestTimerWriteTMADuringDelayLoadsNewValue(t *testing.T) {
	timer := &Timer{}
	timer.SetSeed(0)

	interrupts := 0
	timer.TimerInterruptHandler = func() { interrupts++ }

	timer.Write(addr.TAC, 0x05)
	timer.Write(addr.TMA, 0x10)
	timer.Write(addr.TIMA, 0xFF)

	timer.Tick(16) // overflow
	timer.Tick(4)  // reload fires this cycle: TIMA = 0x10, delayed interrupt armed

	if timer.Read(addr.TIMA) != 0x10 {
		t.Fatalf("TIMA before TMA rewrite = 0x%02X; want 0x10", timer.Read(addr.TIMA))
	}

	// A TMA write landing on the same cycle the reload fires retroactively
	// changes what gets loaded into TIMA.
	timer.Write(addr.TMA, 0x99)
	if timer.Read(addr.TIMA) != 0x99 {
		t.Fatalf("TIMA after in-window TMA write = 0x%02X; want 0x99", timer.Read(addr.TIMA))
	}

	// The interrupt itself still fires; only the reloaded value changed.
	timer.Tick(1)
	if interrupts != 1 {
		t.Fatalf("interrupts = %d; want 1, TMA write should not cancel the interrupt", interrupts)
	}
}
