package cpu

import "github.com/valerio/go-jeebie/jeebie/addr"

// Bus is the subset of the memory interconnect the CPU needs to execute
// instructions and service interrupts. It is satisfied by *memory.MMU.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
	Tick(cycles int)
}

// Flag represents one of the four bits of the F register that the CPU
// exposes after every ALU operation.
type Flag uint8

const (
	zeroFlag      Flag = 1 << 7
	subFlag       Flag = 1 << 6
	halfCarryFlag Flag = 1 << 5
	carryFlag     Flag = 1 << 4
)

// CPU emulates the Sharp LR35902 core: eight 8-bit registers (paired into
// AF/BC/DE/HL), the stack pointer, program counter and the interrupt
// machinery (IME, the EI delay and the HALT bug).
type CPU struct {
	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8

	sp uint16
	pc uint16

	bus Bus

	currentOpcode uint16

	interruptsEnabled bool
	eiPending         bool
	halted            bool
	haltBug           bool

	cycles uint64
}

// New creates a CPU wired to bus, with registers set to the values the
// DMG boot ROM leaves behind when it hands control to the cartridge at
// 0x0100. Running without a boot ROM image starts from this state.
func New(bus Bus) *CPU {
	return &CPU{
		a: 0x01, f: 0xB0,
		b: 0x00, c: 0x13,
		d: 0x00, e: 0xD8,
		h: 0x01, l: 0x4D,
		sp:  0xFFFE,
		pc:  0x0100,
		bus: bus,
	}
}

func (c *CPU) getBC() uint16 { return uint16(c.b)<<8 | uint16(c.c) }
func (c *CPU) getDE() uint16 { return uint16(c.d)<<8 | uint16(c.e) }
func (c *CPU) getHL() uint16 { return uint16(c.h)<<8 | uint16(c.l) }
func (c *CPU) getAF() uint16 { return uint16(c.a)<<8 | uint16(c.f&0xF0) }

func (c *CPU) setBC(v uint16) { c.b = uint8(v >> 8); c.c = uint8(v) }
func (c *CPU) setDE(v uint16) { c.d = uint8(v >> 8); c.e = uint8(v) }
func (c *CPU) setHL(v uint16) { c.h = uint8(v >> 8); c.l = uint8(v) }
func (c *CPU) setAF(v uint16) { c.a = uint8(v >> 8); c.f = uint8(v) & 0xF0 }

func (c *CPU) setFlag(flag Flag)   { c.f |= uint8(flag) }
func (c *CPU) resetFlag(flag Flag) { c.f &^= uint8(flag) }
func (c *CPU) isSetFlag(flag Flag) bool {
	return c.f&uint8(flag) != 0
}

func (c *CPU) setFlagToCondition(flag Flag, condition bool) {
	if condition {
		c.setFlag(flag)
	} else {
		c.resetFlag(flag)
	}
}

// flagToBit returns 1 if flag is set, 0 otherwise. Used by the rotate
// instructions to fold the carry flag back into the rotated value.
func (c *CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}
	return 0
}

// readImmediate reads the byte the program counter points at and
// advances the program counter past it.
func (c *CPU) readImmediate() uint8 {
	v := c.bus.Read(c.pc)
	c.pc++
	return v
}

// readImmediateWord reads the little-endian word the program counter
// points at and advances the program counter past both bytes.
func (c *CPU) readImmediateWord() uint16 {
	lo := c.readImmediate()
	hi := c.readImmediate()
	return uint16(hi)<<8 | uint16(lo)
}

// peekImmediateWord reads the little-endian word at pc without moving
// it, used by Decode to look past a CB prefix.
func (c *CPU) peekImmediateWord() uint16 {
	lo := c.bus.Read(c.pc)
	hi := c.bus.Read(c.pc + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Decode fetches the opcode the program counter currently points at
// without advancing pc, storing it (expanded to 0xCBnn for CB-prefixed
// instructions) in cpu.currentOpcode, and returns the handler for it.
func Decode(c *CPU) Opcode {
	first := c.bus.Read(c.pc)

	if first == 0xCB {
		second := c.bus.Read(c.pc + 1)
		c.currentOpcode = 0xCB00 | uint16(second)
	} else {
		c.currentOpcode = uint16(first)
	}

	return decode(c.currentOpcode)
}

// Step executes a single instruction (or services a pending interrupt,
// or burns a cycle while halted) and returns the number of T-states it
// took, threading bus ticks through the opcode handlers as it goes.
func (c *CPU) Step() int {
	// An EI executed by the previous Step takes effect after this one.
	eiWasPending := c.eiPending
	imeBefore := c.interruptsEnabled

	if pending := c.handleInterrupts(); pending {
		if c.halted {
			c.halted = false
			if !imeBefore {
				c.haltBug = true
			}
		}
		if imeBefore {
			return 20
		}
	}

	if c.halted {
		c.bus.Tick(4)
		return 4
	}

	op := Decode(c)

	if c.currentOpcode < 0x100 {
		c.pc++
		if c.haltBug {
			// The halt bug replays the byte after HALT: PC does not
			// advance on this one fetch.
			c.pc--
			c.haltBug = false
		}
	} else {
		c.pc += 2
	}

	cycles := op(c)
	c.cycles += uint64(cycles)

	if eiWasPending && c.eiPending {
		c.eiPending = false
		c.interruptsEnabled = true
	}

	return cycles
}

// Tick executes a single instruction, alias for Step kept for callers that
// drive the CPU directly rather than through a Bus.
func (c *CPU) Tick() int { return c.Step() }

func (c *CPU) GetA() uint8   { return c.a }
func (c *CPU) GetF() uint8   { return c.f }
func (c *CPU) GetB() uint8   { return c.b }
func (c *CPU) GetC() uint8   { return c.c }
func (c *CPU) GetD() uint8   { return c.d }
func (c *CPU) GetE() uint8   { return c.e }
func (c *CPU) GetH() uint8   { return c.h }
func (c *CPU) GetL() uint8   { return c.l }
func (c *CPU) GetSP() uint16 { return c.sp }
func (c *CPU) GetPC() uint16 { return c.pc }

// JumpTo forces the program counter, used to hand control to a boot ROM
// at 0x0000 instead of the post-boot default of 0x0100.
func (c *CPU) JumpTo(pc uint16) { c.pc = pc }

// GetFlagString renders the flag register as the conventional four-letter
// Z/N/H/C mnemonic string, with a dash for each flag that is clear.
func (c *CPU) GetFlagString() string {
	flags := [4]struct {
		flag Flag
		ch   byte
	}{
		{zeroFlag, 'Z'}, {subFlag, 'N'}, {halfCarryFlag, 'H'}, {carryFlag, 'C'},
	}

	buf := make([]byte, 4)
	for i, f := range flags {
		if c.isSetFlag(f.flag) {
			buf[i] = f.ch
		} else {
			buf[i] = '-'
		}
	}
	return string(buf)
}

// handleInterrupts reports whether any interrupt is pending (IF&IE != 0)
// regardless of IME, and additionally dispatches the highest-priority
// one (pushing pc, jumping to its vector, clearing IME) when IME is set.
func (c *CPU) handleInterrupts() bool {
	ifReg := c.bus.Read(addr.IF)
	ieReg := c.bus.Read(addr.IE)
	pending := ifReg & ieReg & 0x1F

	if pending == 0 {
		return false
	}

	if !c.interruptsEnabled {
		return true
	}

	for i := uint8(0); i < 5; i++ {
		mask := uint8(1) << i
		if pending&mask == 0 {
			continue
		}

		c.interruptsEnabled = false
		c.bus.Write(addr.IF, ifReg&^mask)
		c.pushStack(c.pc)
		c.pc = 0x40 + uint16(i)*8
		c.cycles += 20
		c.bus.Tick(20)
		return true
	}

	return true
}
