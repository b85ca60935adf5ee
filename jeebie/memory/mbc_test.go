package memory

import (
	"testing"
)

func TestMBC1(t *testing.T) {
	t.Run("ROM Bank 0 (Fixed)", func(t *testing.T) {
		// Create a fake ROM with recognizable data
		rom := make([]uint8, 0x8000) // 32KB
		for i := range rom {
			rom[i] = uint8(i & 0xFF)
		}

		mbc := NewMBC1(rom, false, 0)

		// Test reading from bank 0 (non-switchable)
		for addr := uint16(0x0000); addr < 0x4000; addr++ {
			got := mbc.Read(addr)
			want := uint8(addr & 0xFF)
			if got != want {
				t.Errorf("Read(0x%04X) = 0x%02X; want 0x%02X", addr, got, want)
			}
		}
	})

	t.Run("ROM Bank Switching", func(t *testing.T) {
		// Create a fake ROM with 4 banks (64KB)
		rom := make([]uint8, 0x10000)
		for i := range rom {
			// Fill each bank with its bank number
			bankNum := uint8(i / 0x4000)
			rom[i] = bankNum
		}

		mbc := NewMBC1(rom, false, 0)

		tests := []struct {
			name     string
			bankNum  uint8
			wantByte uint8
		}{
			{"Default Bank (1)", 1, 1},
			{"Switch to Bank 2", 2, 2},
			{"Switch to Bank 3", 3, 3},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if tt.bankNum > 1 {
					mbc.Write(0x2000, tt.bankNum)
				}
				got := mbc.Read(0x4000)
				if got != tt.wantByte {
					t.Errorf("Bank %d: Read(0x4000) = 0x%02X; want 0x%02X",
						tt.bankNum, got, tt.wantByte)
				}
			})
		}
	})

	t.Run("RAM Banking", func(t *testing.T) {
		mbc := NewMBC1(make([]uint8, 0x8000), false, 4) // 4 RAM banks

		t.Run("RAM Disabled by Default", func(t *testing.T) {
			got := mbc.Read(0xA000)
			if got != 0xFF {
				t.Errorf("Read from disabled RAM = 0x%02X; want 0xFF", got)
			}
		})

		t.Run("RAM Enable/Disable", func(t *testing.T) {
			// Enable RAM
			mbc.Write(0x0000, 0x0A)
			mbc.Write(0xA000, 0x42)
			got := mbc.Read(0xA000)
			if got != 0x42 {
				t.Errorf("Read after RAM enable = 0x%02X; want 0x42", got)
			}

			// Disable RAM
			mbc.Write(0x0000, 0x00)
			got = mbc.Read(0xA000)
			if got != 0xFF {
				t.Errorf("Read after RAM disable = 0x%02X; want 0xFF", got)
			}
		})

		t.Run("Multiple RAM Banks", func(t *testing.T) {
			// Enable RAM
			mbc.Write(0x0000, 0x0A)
			// Switch to RAM banking mode
			mbc.Write(0x6000, 1)

			// Write different values to different banks
			tests := []struct {
				bankNum uint8
				value   uint8
			}{
				{0, 0x42},
				{1, 0x43},
				{2, 0x44},
				{3, 0x45},
			}

			// Write to each bank
			for _, tt := range tests {
				mbc.Write(0x4000, tt.bankNum)
				mbc.Write(0xA000, tt.value)
			}

			// Verify each bank retained its value
			for _, tt := range tests {
				mbc.Write(0x4000, tt.bankNum)
				got := mbc.Read(0xA000)
				if got != tt.value {
					t.Errorf("Bank %d: got 0x%02X; want 0x%02X",
						tt.bankNum, got, tt.value)
				}
			}
		})
	})

	t.Run("Banking Modes", func(t *testing.T) {
		// Create a ROM with 8 banks (128KB)
		rom := make([]uint8, 8*0x4000) // 8 banks * 16KB per bank
		for i := range rom {
			// Fill each bank with its bank number
			bankNum := uint8(i / 0x4000)
			rom[i] = bankNum
		}

		mbc := NewMBC1(rom, false, 4)

		t.Run("ROM Banking Mode (0)", func(t *testing.T) {
			mbc.Write(0x6000, 0) // ROM banking mode
			mbc.Write(0x2000, 5) // Set lower 5 bits of ROM bank to 5
			mbc.Write(0x4000, 0) // Set upper 2 bits of ROM bank to 0

			got := mbc.Read(0x4000)
			want := uint8(5) // Bank 5 (00101b)
			if got != want {
				t.Errorf("Read in ROM mode = 0x%02X; want 0x%02X", got, want)
			}

			// Test bank wrapping (trying to access bank 37 with only 8 banks should wrap to bank 5)
			// 37 % 8 = 5
			mbc.Write(0x2000, 5) // Set lower 5 bits of ROM bank to 5
			mbc.Write(0x4000, 1) // Set upper 2 bits of ROM bank to 1 (would be bank 37)

			got = mbc.Read(0x4000)
			want = uint8(5) // Bank wraps from 37 to 5 (37 % 8 = 5)
			if got != want {
				t.Errorf("Read in ROM mode with bank wrapping = 0x%02X; want 0x%02X", got, want)
			}
		})

		t.Run("RAM Banking Mode (1)", func(t *testing.T) {
			mbc.Write(0x6000, 1) // RAM banking mode
			mbc.Write(0x2000, 5) // Set ROM bank to 5
			mbc.Write(0x4000, 2) // Set RAM bank to 2

			// In RAM mode, the upper bits should not affect ROM bank
			if mbc.romBank != 5 {
				t.Errorf("ROM bank in RAM mode = %d; want 5", mbc.romBank)
			}

			// But should affect RAM bank
			if mbc.ramBank != 2 {
				t.Errorf("RAM bank = %d; want 2", mbc.ramBank)
			}

			// Verify we can still read from the correct ROM bank
			got := mbc.Read(0x4000)
			want := uint8(5) // Should read from bank 5
			if got != want {
				t.Errorf("Read in RAM mode = 0x%02X; want 0x%02X", got, want)
			}
		})
	})

	t.Run("Invalid Bank Handling", func(t *testing.T) {
		mbc := NewMBC1(make([]uint8, 0x8000), false, 0)

		t.Run("Bank 0 Translation", func(t *testing.T) {
			mbc.Write(0x2000, 0)
			if mbc.romBank != 1 {
				t.Errorf("ROM bank 0 not translated to 1, got bank %d", mbc.romBank)
			}
		})

		t.Run("Out of Bounds Access", func(t *testing.T) {
			got := mbc.Read(0xC000) // Outside of ROM/RAM range
			if got != 0xFF {
				t.Errorf("Read from invalid address = 0x%02X; want 0xFF", got)
			}
		})
	})
}

func TestMBC2(t *testing.T) {
	t.Run("ROM Bank Switching", func(t *testing.T) {
		rom := make([]uint8, 16*0x4000)
		for i := range rom {
			rom[i] = uint8(i / 0x4000)
		}

		mbc := NewMBC2(rom)

		// Bit 8 of the write address selects ROM-bank vs RAM-enable.
		mbc.Write(0x2100, 5)
		got := mbc.Read(0x4000)
		if got != 5 {
			t.Errorf("Read(0x4000) after bank select = %d; want 5", got)
		}
	})

	t.Run("Bank 0 Translates To 1", func(t *testing.T) {
		mbc := NewMBC2(make([]uint8, 0x8000))
		mbc.Write(0x2100, 0)
		if mbc.romBank != 1 {
			t.Errorf("ROM bank 0 not translated to 1, got bank %d", mbc.romBank)
		}
	})

	t.Run("Built-in RAM", func(t *testing.T) {
		mbc := NewMBC2(make([]uint8, 0x8000))

		if got := mbc.Read(0xA000); got != 0xFF {
			t.Errorf("Read from disabled RAM = 0x%02X; want 0xFF", got)
		}

		mbc.Write(0x0000, 0x0A) // bit 8 clear: RAM enable
		mbc.Write(0xA000, 0x07)
		got := mbc.Read(0xA000)
		if got != 0xF7 {
			t.Errorf("Read after write = 0x%02X; want 0xF7 (high nibble forced)", got)
		}

		// The 512 nibbles are mirrored across the whole 0xA000-0xBFFF window.
		if got := mbc.Read(0xA200); got != 0xF7 {
			t.Errorf("Mirrored read = 0x%02X; want 0xF7", got)
		}
	})
}

func TestMBC3(t *testing.T) {
	t.Run("ROM Bank Switching", func(t *testing.T) {
		rom := make([]uint8, 8*0x4000)
		for i := range rom {
			rom[i] = uint8(i / 0x4000)
		}

		mbc := NewMBC3(rom, false, 4)
		mbc.Write(0x2000, 3)
		got := mbc.Read(0x4000)
		if got != 3 {
			t.Errorf("Read(0x4000) after bank select = %d; want 3", got)
		}
	})

	t.Run("Bank 0 Translates To 1", func(t *testing.T) {
		mbc := NewMBC3(make([]uint8, 0x8000), false, 0)
		mbc.Write(0x2000, 0)
		if mbc.romBank != 1 {
			t.Errorf("ROM bank 0 not translated to 1, got bank %d", mbc.romBank)
		}
	})

	t.Run("RAM Banking", func(t *testing.T) {
		mbc := NewMBC3(make([]uint8, 0x8000), true, 4)
		mbc.Write(0x0000, 0x0A) // enable RAM/RTC
		mbc.Write(0x4000, 2)    // select RAM bank 2
		mbc.Write(0xA000, 0x42)
		if got := mbc.Read(0xA000); got != 0x42 {
			t.Errorf("Read(0xA000) = 0x%02X; want 0x42", got)
		}
	})

	t.Run("RTC Latch And Tick", func(t *testing.T) {
		mbc := NewMBC3(make([]uint8, 0x8000), true, 0)
		mbc.Write(0x0000, 0x0A)

		// Tick just under two seconds worth of T-states.
		mbc.Tick(2*mbc3CyclesPerSecond - 1)

		mbc.Write(0x4000, 0x08) // select seconds register
		mbc.Write(0x6000, 0x00)
		mbc.Write(0x6000, 0x01) // 0->1 latch edge
		got := mbc.Read(0xA000)
		if got != 1 {
			t.Errorf("Latched seconds = %d; want 1", got)
		}

		mbc.Tick(1) // cross into the second second
		mbc.Write(0x6000, 0x00)
		mbc.Write(0x6000, 0x01)
		got = mbc.Read(0xA000)
		if got != 2 {
			t.Errorf("Latched seconds after crossing boundary = %d; want 2", got)
		}
	})

	t.Run("RTC Halt Stops Ticking", func(t *testing.T) {
		mbc := NewMBC3(make([]uint8, 0x8000), true, 0)
		mbc.Write(0x0000, 0x0A)
		mbc.Write(0x4000, 0x0C) // select day-high/flags register
		mbc.Write(0xA000, 0x40) // set halt bit

		mbc.Tick(5 * mbc3CyclesPerSecond)

		mbc.Write(0x4000, 0x08)
		mbc.Write(0x6000, 0x00)
		mbc.Write(0x6000, 0x01)
		if got := mbc.Read(0xA000); got != 0 {
			t.Errorf("Seconds after halted tick = %d; want 0", got)
		}
	})
}

func TestMBC5(t *testing.T) {
	t.Run("9-bit ROM Bank Switching", func(t *testing.T) {
		rom := make([]uint8, 512*0x4000)
		for bank := 0; bank < 512; bank++ {
			rom[bank*0x4000] = uint8(bank)
			rom[bank*0x4000+1] = uint8(bank >> 8)
		}

		mbc := NewMBC5(rom, false, 0)

		mbc.Write(0x2000, 0xFF) // low 8 bits
		mbc.Write(0x3000, 0x01) // bit 8
		got := mbc.Read(0x4000)
		if got != 0xFF {
			t.Errorf("Read(0x4000) low byte = 0x%02X; want 0xFF", got)
		}
		gotHigh := mbc.Read(0x4001)
		if gotHigh != 0x01 {
			t.Errorf("Read(0x4001) high byte = 0x%02X; want 0x01 (bank 0x1FF)", gotHigh)
		}
	})

	t.Run("Bank 0 Is Valid (No Auto-Bump)", func(t *testing.T) {
		mbc := NewMBC5(make([]uint8, 0x8000), false, 0)
		mbc.Write(0x2000, 0x00)
		if mbc.romBank != 0 {
			t.Errorf("ROM bank = %d; want 0 (MBC5 does not bump bank 0)", mbc.romBank)
		}
	})

	t.Run("Rumble Bit Masked Out Of RAM Bank", func(t *testing.T) {
		mbc := NewMBC5(make([]uint8, 0x8000), true, 4)
		mbc.Write(0x4000, 0x0F) // bit 3 would be the rumble motor line
		if mbc.ramBank != 0x07 {
			t.Errorf("RAM bank on rumble cart = %d; want 7 (bit 3 masked)", mbc.ramBank)
		}
	})

	t.Run("Non-Rumble Cart Keeps Full Bank Width", func(t *testing.T) {
		mbc := NewMBC5(make([]uint8, 0x8000), false, 4)
		mbc.Write(0x4000, 0x0F)
		if mbc.ramBank != 0x0F {
			t.Errorf("RAM bank on non-rumble cart = %d; want 15", mbc.ramBank)
		}
	})
}
