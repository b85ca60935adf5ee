package cpu

import "fmt"

func illegal(c *CPU) int {
	panic(fmt.Sprintf("illegal opcode 0x%02X executed at 0x%04X", c.currentOpcode, c.pc-1))
}

// opcode0x00
func opcode0x00(c *CPU) int {
	c.bus.Tick(4)
	return 4
}

// opcode0x01
func opcode0x01(c *CPU) int {
	value := c.readImmediateWord()
	c.setBC(value)
	c.bus.Tick(12)
	return 12
}

// opcode0x02
func opcode0x02(c *CPU) int {
	c.bus.Write(c.getBC(), c.a)
	c.bus.Tick(8)
	return 8
}

// opcode0x03
func opcode0x03(c *CPU) int {
	c.setBC(c.getBC() + 1)
	c.bus.Tick(8)
	return 8
}

// opcode0x04
func opcode0x04(c *CPU) int {
	c.inc(&c.b)
	c.bus.Tick(4)
	return 4
}

// opcode0x05
func opcode0x05(c *CPU) int {
	c.dec(&c.b)
	c.bus.Tick(4)
	return 4
}

// opcode0x06
func opcode0x06(c *CPU) int {
	c.b = c.readImmediate()
	c.bus.Tick(8)
	return 8
}

// opcode0x07
func opcode0x07(c *CPU) int {
	c.rlca()
	c.bus.Tick(4)
	return 4
}

// opcode0x08
func opcode0x08(c *CPU) int {
	addr := c.readImmediateWord()
	c.bus.Write(addr, uint8(c.sp))
	c.bus.Write(addr+1, uint8(c.sp>>8))
	c.bus.Tick(20)
	return 20
}

// opcode0x09
func opcode0x09(c *CPU) int {
	c.addToHL(c.getBC())
	c.bus.Tick(8)
	return 8
}

// opcode0x0A
func opcode0x0A(c *CPU) int {
	c.a = c.bus.Read(c.getBC())
	c.bus.Tick(8)
	return 8
}

// opcode0x0B
func opcode0x0B(c *CPU) int {
	c.setBC(c.getBC() - 1)
	c.bus.Tick(8)
	return 8
}

// opcode0x0C
func opcode0x0C(c *CPU) int {
	c.inc(&c.c)
	c.bus.Tick(4)
	return 4
}

// opcode0x0D
func opcode0x0D(c *CPU) int {
	c.dec(&c.c)
	c.bus.Tick(4)
	return 4
}

// opcode0x0E
func opcode0x0E(c *CPU) int {
	c.c = c.readImmediate()
	c.bus.Tick(8)
	return 8
}

// opcode0x0F
func opcode0x0F(c *CPU) int {
	c.rrca()
	c.bus.Tick(4)
	return 4
}

// opcode0x10
func opcode0x10(c *CPU) int {
	c.readImmediate()
	c.bus.Tick(4)
	return 4
}

// opcode0x11
func opcode0x11(c *CPU) int {
	value := c.readImmediateWord()
	c.setDE(value)
	c.bus.Tick(12)
	return 12
}

// opcode0x12
func opcode0x12(c *CPU) int {
	c.bus.Write(c.getDE(), c.a)
	c.bus.Tick(8)
	return 8
}

// opcode0x13
func opcode0x13(c *CPU) int {
	c.setDE(c.getDE() + 1)
	c.bus.Tick(8)
	return 8
}

// opcode0x14
func opcode0x14(c *CPU) int {
	c.inc(&c.d)
	c.bus.Tick(4)
	return 4
}

// opcode0x15
func opcode0x15(c *CPU) int {
	c.dec(&c.d)
	c.bus.Tick(4)
	return 4
}

// opcode0x16
func opcode0x16(c *CPU) int {
	c.d = c.readImmediate()
	c.bus.Tick(8)
	return 8
}

// opcode0x17
func opcode0x17(c *CPU) int {
	c.rla()
	c.bus.Tick(4)
	return 4
}

// opcode0x18
func opcode0x18(c *CPU) int {
	c.jr()
	c.bus.Tick(12)
	return 12
}

// opcode0x19
func opcode0x19(c *CPU) int {
	c.addToHL(c.getDE())
	c.bus.Tick(8)
	return 8
}

// opcode0x1A
func opcode0x1A(c *CPU) int {
	c.a = c.bus.Read(c.getDE())
	c.bus.Tick(8)
	return 8
}

// opcode0x1B
func opcode0x1B(c *CPU) int {
	c.setDE(c.getDE() - 1)
	c.bus.Tick(8)
	return 8
}

// opcode0x1C
func opcode0x1C(c *CPU) int {
	c.inc(&c.e)
	c.bus.Tick(4)
	return 4
}

// opcode0x1D
func opcode0x1D(c *CPU) int {
	c.dec(&c.e)
	c.bus.Tick(4)
	return 4
}

// opcode0x1E
func opcode0x1E(c *CPU) int {
	c.e = c.readImmediate()
	c.bus.Tick(8)
	return 8
}

// opcode0x1F
func opcode0x1F(c *CPU) int {
	c.rra()
	c.bus.Tick(4)
	return 4
}

// opcode0x20
func opcode0x20(c *CPU) int {
	if !c.isSetFlag(zeroFlag) {
		c.jr()
		c.bus.Tick(12)
		return 12
	}
	c.readImmediate()
	c.bus.Tick(8)
	return 8
}

// opcode0x21
func opcode0x21(c *CPU) int {
	value := c.readImmediateWord()
	c.setHL(value)
	c.bus.Tick(12)
	return 12
}

// opcode0x22
func opcode0x22(c *CPU) int {
	hl := c.getHL()
	c.bus.Write(hl, c.a)
	c.setHL(hl + 1)
	c.bus.Tick(8)
	return 8
}

// opcode0x23
func opcode0x23(c *CPU) int {
	c.setHL(c.getHL() + 1)
	c.bus.Tick(8)
	return 8
}

// opcode0x24
func opcode0x24(c *CPU) int {
	c.inc(&c.h)
	c.bus.Tick(4)
	return 4
}

// opcode0x25
func opcode0x25(c *CPU) int {
	c.dec(&c.h)
	c.bus.Tick(4)
	return 4
}

// opcode0x26
func opcode0x26(c *CPU) int {
	c.h = c.readImmediate()
	c.bus.Tick(8)
	return 8
}

// opcode0x27
func opcode0x27(c *CPU) int {
	c.daa()
	c.bus.Tick(4)
	return 4
}

// opcode0x28
func opcode0x28(c *CPU) int {
	if c.isSetFlag(zeroFlag) {
		c.jr()
		c.bus.Tick(12)
		return 12
	}
	c.readImmediate()
	c.bus.Tick(8)
	return 8
}

// opcode0x29
func opcode0x29(c *CPU) int {
	c.addToHL(c.getHL())
	c.bus.Tick(8)
	return 8
}

// opcode0x2A
func opcode0x2A(c *CPU) int {
	hl := c.getHL()
	c.a = c.bus.Read(hl)
	c.setHL(hl + 1)
	c.bus.Tick(8)
	return 8
}

// opcode0x2B
func opcode0x2B(c *CPU) int {
	c.setHL(c.getHL() - 1)
	c.bus.Tick(8)
	return 8
}

// opcode0x2C
func opcode0x2C(c *CPU) int {
	c.inc(&c.l)
	c.bus.Tick(4)
	return 4
}

// opcode0x2D
func opcode0x2D(c *CPU) int {
	c.dec(&c.l)
	c.bus.Tick(4)
	return 4
}

// opcode0x2E
func opcode0x2E(c *CPU) int {
	c.l = c.readImmediate()
	c.bus.Tick(8)
	return 8
}

// opcode0x2F
func opcode0x2F(c *CPU) int {
	c.a = ^c.a
	c.setFlag(subFlag)
	c.setFlag(halfCarryFlag)
	c.bus.Tick(4)
	return 4
}

// opcode0x30
func opcode0x30(c *CPU) int {
	if !c.isSetFlag(carryFlag) {
		c.jr()
		c.bus.Tick(12)
		return 12
	}
	c.readImmediate()
	c.bus.Tick(8)
	return 8
}

// opcode0x31
func opcode0x31(c *CPU) int {
	value := c.readImmediateWord()
	c.sp = value
	c.bus.Tick(12)
	return 12
}

// opcode0x32
func opcode0x32(c *CPU) int {
	hl := c.getHL()
	c.bus.Write(hl, c.a)
	c.setHL(hl - 1)
	c.bus.Tick(8)
	return 8
}

// opcode0x33
func opcode0x33(c *CPU) int {
	c.sp++
	c.bus.Tick(8)
	return 8
}

// opcode0x34
func opcode0x34(c *CPU) int {
	addr := c.getHL()
	c.bus.Tick(4)
	value := c.bus.Read(addr)
	c.bus.Tick(4)
	c.inc(&value)
	c.bus.Write(addr, value)
	c.bus.Tick(4)
	return 12
}

// opcode0x35
func opcode0x35(c *CPU) int {
	addr := c.getHL()
	c.bus.Tick(4)
	value := c.bus.Read(addr)
	c.bus.Tick(4)
	c.dec(&value)
	c.bus.Write(addr, value)
	c.bus.Tick(4)
	return 12
}

// opcode0x36
func opcode0x36(c *CPU) int {
	value := c.readImmediate()
	c.bus.Write(c.getHL(), value)
	c.bus.Tick(12)
	return 12
}

// opcode0x37
func opcode0x37(c *CPU) int {
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlag(carryFlag)
	c.bus.Tick(4)
	return 4
}

// opcode0x38
func opcode0x38(c *CPU) int {
	if c.isSetFlag(carryFlag) {
		c.jr()
		c.bus.Tick(12)
		return 12
	}
	c.readImmediate()
	c.bus.Tick(8)
	return 8
}

// opcode0x39
func opcode0x39(c *CPU) int {
	c.addToHL(c.sp)
	c.bus.Tick(8)
	return 8
}

// opcode0x3A
func opcode0x3A(c *CPU) int {
	hl := c.getHL()
	c.a = c.bus.Read(hl)
	c.setHL(hl - 1)
	c.bus.Tick(8)
	return 8
}

// opcode0x3B
func opcode0x3B(c *CPU) int {
	c.sp--
	c.bus.Tick(8)
	return 8
}

// opcode0x3C
func opcode0x3C(c *CPU) int {
	c.inc(&c.a)
	c.bus.Tick(4)
	return 4
}

// opcode0x3D
func opcode0x3D(c *CPU) int {
	c.dec(&c.a)
	c.bus.Tick(4)
	return 4
}

// opcode0x3E
func opcode0x3E(c *CPU) int {
	c.a = c.readImmediate()
	c.bus.Tick(8)
	return 8
}

// opcode0x3F
func opcode0x3F(c *CPU) int {
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, !c.isSetFlag(carryFlag))
	c.bus.Tick(4)
	return 4
}

// opcode0x40
func opcode0x40(c *CPU) int {
	c.bus.Tick(4)
	return 4
}

// opcode0x41
func opcode0x41(c *CPU) int {
	c.b = c.c
	c.bus.Tick(4)
	return 4
}

// opcode0x42
func opcode0x42(c *CPU) int {
	c.b = c.d
	c.bus.Tick(4)
	return 4
}

// opcode0x43
func opcode0x43(c *CPU) int {
	c.b = c.e
	c.bus.Tick(4)
	return 4
}

// opcode0x44
func opcode0x44(c *CPU) int {
	c.b = c.h
	c.bus.Tick(4)
	return 4
}

// opcode0x45
func opcode0x45(c *CPU) int {
	c.b = c.l
	c.bus.Tick(4)
	return 4
}

// opcode0x46
func opcode0x46(c *CPU) int {
	c.b = c.bus.Read(c.getHL())
	c.bus.Tick(8)
	return 8
}

// opcode0x47
func opcode0x47(c *CPU) int {
	c.b = c.a
	c.bus.Tick(4)
	return 4
}

// opcode0x48
func opcode0x48(c *CPU) int {
	c.c = c.b
	c.bus.Tick(4)
	return 4
}

// opcode0x49
func opcode0x49(c *CPU) int {
	c.bus.Tick(4)
	return 4
}

// opcode0x4A
func opcode0x4A(c *CPU) int {
	c.c = c.d
	c.bus.Tick(4)
	return 4
}

// opcode0x4B
func opcode0x4B(c *CPU) int {
	c.c = c.e
	c.bus.Tick(4)
	return 4
}

// opcode0x4C
func opcode0x4C(c *CPU) int {
	c.c = c.h
	c.bus.Tick(4)
	return 4
}

// opcode0x4D
func opcode0x4D(c *CPU) int {
	c.c = c.l
	c.bus.Tick(4)
	return 4
}

// opcode0x4E
func opcode0x4E(c *CPU) int {
	c.c = c.bus.Read(c.getHL())
	c.bus.Tick(8)
	return 8
}

// opcode0x4F
func opcode0x4F(c *CPU) int {
	c.c = c.a
	c.bus.Tick(4)
	return 4
}

// opcode0x50
func opcode0x50(c *CPU) int {
	c.d = c.b
	c.bus.Tick(4)
	return 4
}

// opcode0x51
func opcode0x51(c *CPU) int {
	c.d = c.c
	c.bus.Tick(4)
	return 4
}

// opcode0x52
func opcode0x52(c *CPU) int {
	c.bus.Tick(4)
	return 4
}

// opcode0x53
func opcode0x53(c *CPU) int {
	c.d = c.e
	c.bus.Tick(4)
	return 4
}

// opcode0x54
func opcode0x54(c *CPU) int {
	c.d = c.h
	c.bus.Tick(4)
	return 4
}

// opcode0x55
func opcode0x55(c *CPU) int {
	c.d = c.l
	c.bus.Tick(4)
	return 4
}

// opcode0x56
func opcode0x56(c *CPU) int {
	c.d = c.bus.Read(c.getHL())
	c.bus.Tick(8)
	return 8
}

// opcode0x57
func opcode0x57(c *CPU) int {
	c.d = c.a
	c.bus.Tick(4)
	return 4
}

// opcode0x58
func opcode0x58(c *CPU) int {
	c.e = c.b
	c.bus.Tick(4)
	return 4
}

// opcode0x59
func opcode0x59(c *CPU) int {
	c.e = c.c
	c.bus.Tick(4)
	return 4
}

// opcode0x5A
func opcode0x5A(c *CPU) int {
	c.e = c.d
	c.bus.Tick(4)
	return 4
}

// opcode0x5B
func opcode0x5B(c *CPU) int {
	c.bus.Tick(4)
	return 4
}

// opcode0x5C
func opcode0x5C(c *CPU) int {
	c.e = c.h
	c.bus.Tick(4)
	return 4
}

// opcode0x5D
func opcode0x5D(c *CPU) int {
	c.e = c.l
	c.bus.Tick(4)
	return 4
}

// opcode0x5E
func opcode0x5E(c *CPU) int {
	c.e = c.bus.Read(c.getHL())
	c.bus.Tick(8)
	return 8
}

// opcode0x5F
func opcode0x5F(c *CPU) int {
	c.e = c.a
	c.bus.Tick(4)
	return 4
}

// opcode0x60
func opcode0x60(c *CPU) int {
	c.h = c.b
	c.bus.Tick(4)
	return 4
}

// opcode0x61
func opcode0x61(c *CPU) int {
	c.h = c.c
	c.bus.Tick(4)
	return 4
}

// opcode0x62
func opcode0x62(c *CPU) int {
	c.h = c.d
	c.bus.Tick(4)
	return 4
}

// opcode0x63
func opcode0x63(c *CPU) int {
	c.h = c.e
	c.bus.Tick(4)
	return 4
}

// opcode0x64
func opcode0x64(c *CPU) int {
	c.bus.Tick(4)
	return 4
}

// opcode0x65
func opcode0x65(c *CPU) int {
	c.h = c.l
	c.bus.Tick(4)
	return 4
}

// opcode0x66
func opcode0x66(c *CPU) int {
	c.h = c.bus.Read(c.getHL())
	c.bus.Tick(8)
	return 8
}

// opcode0x67
func opcode0x67(c *CPU) int {
	c.h = c.a
	c.bus.Tick(4)
	return 4
}

// opcode0x68
func opcode0x68(c *CPU) int {
	c.l = c.b
	c.bus.Tick(4)
	return 4
}

// opcode0x69
func opcode0x69(c *CPU) int {
	c.l = c.c
	c.bus.Tick(4)
	return 4
}

// opcode0x6A
func opcode0x6A(c *CPU) int {
	c.l = c.d
	c.bus.Tick(4)
	return 4
}

// opcode0x6B
func opcode0x6B(c *CPU) int {
	c.l = c.e
	c.bus.Tick(4)
	return 4
}

// opcode0x6C
func opcode0x6C(c *CPU) int {
	c.l = c.h
	c.bus.Tick(4)
	return 4
}

// opcode0x6D
func opcode0x6D(c *CPU) int {
	c.bus.Tick(4)
	return 4
}

// opcode0x6E
func opcode0x6E(c *CPU) int {
	c.l = c.bus.Read(c.getHL())
	c.bus.Tick(8)
	return 8
}

// opcode0x6F
func opcode0x6F(c *CPU) int {
	c.l = c.a
	c.bus.Tick(4)
	return 4
}

// opcode0x70
func opcode0x70(c *CPU) int {
	c.bus.Write(c.getHL(), c.b)
	c.bus.Tick(8)
	return 8
}

// opcode0x71
func opcode0x71(c *CPU) int {
	c.bus.Write(c.getHL(), c.c)
	c.bus.Tick(8)
	return 8
}

// opcode0x72
func opcode0x72(c *CPU) int {
	c.bus.Write(c.getHL(), c.d)
	c.bus.Tick(8)
	return 8
}

// opcode0x73
func opcode0x73(c *CPU) int {
	c.bus.Write(c.getHL(), c.e)
	c.bus.Tick(8)
	return 8
}

// opcode0x74
func opcode0x74(c *CPU) int {
	c.bus.Write(c.getHL(), c.h)
	c.bus.Tick(8)
	return 8
}

// opcode0x75
func opcode0x75(c *CPU) int {
	c.bus.Write(c.getHL(), c.l)
	c.bus.Tick(8)
	return 8
}

// opcode0x76
func opcode0x76(c *CPU) int {
	c.halted = true
	c.bus.Tick(4)
	return 4
}

// opcode0x77
func opcode0x77(c *CPU) int {
	c.bus.Write(c.getHL(), c.a)
	c.bus.Tick(8)
	return 8
}

// opcode0x78
func opcode0x78(c *CPU) int {
	c.a = c.b
	c.bus.Tick(4)
	return 4
}

// opcode0x79
func opcode0x79(c *CPU) int {
	c.a = c.c
	c.bus.Tick(4)
	return 4
}

// opcode0x7A
func opcode0x7A(c *CPU) int {
	c.a = c.d
	c.bus.Tick(4)
	return 4
}

// opcode0x7B
func opcode0x7B(c *CPU) int {
	c.a = c.e
	c.bus.Tick(4)
	return 4
}

// opcode0x7C
func opcode0x7C(c *CPU) int {
	c.a = c.h
	c.bus.Tick(4)
	return 4
}

// opcode0x7D
func opcode0x7D(c *CPU) int {
	c.a = c.l
	c.bus.Tick(4)
	return 4
}

// opcode0x7E
func opcode0x7E(c *CPU) int {
	c.a = c.bus.Read(c.getHL())
	c.bus.Tick(8)
	return 8
}

// opcode0x7F
func opcode0x7F(c *CPU) int {
	c.bus.Tick(4)
	return 4
}

// opcode0x80
func opcode0x80(c *CPU) int {
	c.addToA(c.b)
	c.bus.Tick(4)
	return 4
}

// opcode0x81
func opcode0x81(c *CPU) int {
	c.addToA(c.c)
	c.bus.Tick(4)
	return 4
}

// opcode0x82
func opcode0x82(c *CPU) int {
	c.addToA(c.d)
	c.bus.Tick(4)
	return 4
}

// opcode0x83
func opcode0x83(c *CPU) int {
	c.addToA(c.e)
	c.bus.Tick(4)
	return 4
}

// opcode0x84
func opcode0x84(c *CPU) int {
	c.addToA(c.h)
	c.bus.Tick(4)
	return 4
}

// opcode0x85
func opcode0x85(c *CPU) int {
	c.addToA(c.l)
	c.bus.Tick(4)
	return 4
}

// opcode0x86
func opcode0x86(c *CPU) int {
	c.addToA(c.bus.Read(c.getHL()))
	c.bus.Tick(8)
	return 8
}

// opcode0x87
func opcode0x87(c *CPU) int {
	c.addToA(c.a)
	c.bus.Tick(4)
	return 4
}

// opcode0x88
func opcode0x88(c *CPU) int {
	c.adc(c.b)
	c.bus.Tick(4)
	return 4
}

// opcode0x89
func opcode0x89(c *CPU) int {
	c.adc(c.c)
	c.bus.Tick(4)
	return 4
}

// opcode0x8A
func opcode0x8A(c *CPU) int {
	c.adc(c.d)
	c.bus.Tick(4)
	return 4
}

// opcode0x8B
func opcode0x8B(c *CPU) int {
	c.adc(c.e)
	c.bus.Tick(4)
	return 4
}

// opcode0x8C
func opcode0x8C(c *CPU) int {
	c.adc(c.h)
	c.bus.Tick(4)
	return 4
}

// opcode0x8D
func opcode0x8D(c *CPU) int {
	c.adc(c.l)
	c.bus.Tick(4)
	return 4
}

// opcode0x8E
func opcode0x8E(c *CPU) int {
	c.adc(c.bus.Read(c.getHL()))
	c.bus.Tick(8)
	return 8
}

// opcode0x8F
func opcode0x8F(c *CPU) int {
	c.adc(c.a)
	c.bus.Tick(4)
	return 4
}

// opcode0x90
func opcode0x90(c *CPU) int {
	c.sub(c.b)
	c.bus.Tick(4)
	return 4
}

// opcode0x91
func opcode0x91(c *CPU) int {
	c.sub(c.c)
	c.bus.Tick(4)
	return 4
}

// opcode0x92
func opcode0x92(c *CPU) int {
	c.sub(c.d)
	c.bus.Tick(4)
	return 4
}

// opcode0x93
func opcode0x93(c *CPU) int {
	c.sub(c.e)
	c.bus.Tick(4)
	return 4
}

// opcode0x94
func opcode0x94(c *CPU) int {
	c.sub(c.h)
	c.bus.Tick(4)
	return 4
}

// opcode0x95
func opcode0x95(c *CPU) int {
	c.sub(c.l)
	c.bus.Tick(4)
	return 4
}

// opcode0x96
func opcode0x96(c *CPU) int {
	c.sub(c.bus.Read(c.getHL()))
	c.bus.Tick(8)
	return 8
}

// opcode0x97
func opcode0x97(c *CPU) int {
	c.sub(c.a)
	c.bus.Tick(4)
	return 4
}

// opcode0x98
func opcode0x98(c *CPU) int {
	c.sbc(c.b)
	c.bus.Tick(4)
	return 4
}

// opcode0x99
func opcode0x99(c *CPU) int {
	c.sbc(c.c)
	c.bus.Tick(4)
	return 4
}

// opcode0x9A
func opcode0x9A(c *CPU) int {
	c.sbc(c.d)
	c.bus.Tick(4)
	return 4
}

// opcode0x9B
func opcode0x9B(c *CPU) int {
	c.sbc(c.e)
	c.bus.Tick(4)
	return 4
}

// opcode0x9C
func opcode0x9C(c *CPU) int {
	c.sbc(c.h)
	c.bus.Tick(4)
	return 4
}

// opcode0x9D
func opcode0x9D(c *CPU) int {
	c.sbc(c.l)
	c.bus.Tick(4)
	return 4
}

// opcode0x9E
func opcode0x9E(c *CPU) int {
	c.sbc(c.bus.Read(c.getHL()))
	c.bus.Tick(8)
	return 8
}

// opcode0x9F
func opcode0x9F(c *CPU) int {
	c.sbc(c.a)
	c.bus.Tick(4)
	return 4
}

// opcode0xA0
func opcode0xA0(c *CPU) int {
	c.and(c.b)
	c.bus.Tick(4)
	return 4
}

// opcode0xA1
func opcode0xA1(c *CPU) int {
	c.and(c.c)
	c.bus.Tick(4)
	return 4
}

// opcode0xA2
func opcode0xA2(c *CPU) int {
	c.and(c.d)
	c.bus.Tick(4)
	return 4
}

// opcode0xA3
func opcode0xA3(c *CPU) int {
	c.and(c.e)
	c.bus.Tick(4)
	return 4
}

// opcode0xA4
func opcode0xA4(c *CPU) int {
	c.and(c.h)
	c.bus.Tick(4)
	return 4
}

// opcode0xA5
func opcode0xA5(c *CPU) int {
	c.and(c.l)
	c.bus.Tick(4)
	return 4
}

// opcode0xA6
func opcode0xA6(c *CPU) int {
	c.and(c.bus.Read(c.getHL()))
	c.bus.Tick(8)
	return 8
}

// opcode0xA7
func opcode0xA7(c *CPU) int {
	c.and(c.a)
	c.bus.Tick(4)
	return 4
}

// opcode0xA8
func opcode0xA8(c *CPU) int {
	c.xor(c.b)
	c.bus.Tick(4)
	return 4
}

// opcode0xA9
func opcode0xA9(c *CPU) int {
	c.xor(c.c)
	c.bus.Tick(4)
	return 4
}

// opcode0xAA
func opcode0xAA(c *CPU) int {
	c.xor(c.d)
	c.bus.Tick(4)
	return 4
}

// opcode0xAB
func opcode0xAB(c *CPU) int {
	c.xor(c.e)
	c.bus.Tick(4)
	return 4
}

// opcode0xAC
func opcode0xAC(c *CPU) int {
	c.xor(c.h)
	c.bus.Tick(4)
	return 4
}

// opcode0xAD
func opcode0xAD(c *CPU) int {
	c.xor(c.l)
	c.bus.Tick(4)
	return 4
}

// opcode0xAE
func opcode0xAE(c *CPU) int {
	c.xor(c.bus.Read(c.getHL()))
	c.bus.Tick(8)
	return 8
}

// opcode0xAF
func opcode0xAF(c *CPU) int {
	c.xor(c.a)
	c.bus.Tick(4)
	return 4
}

// opcode0xB0
func opcode0xB0(c *CPU) int {
	c.or(c.b)
	c.bus.Tick(4)
	return 4
}

// opcode0xB1
func opcode0xB1(c *CPU) int {
	c.or(c.c)
	c.bus.Tick(4)
	return 4
}

// opcode0xB2
func opcode0xB2(c *CPU) int {
	c.or(c.d)
	c.bus.Tick(4)
	return 4
}

// opcode0xB3
func opcode0xB3(c *CPU) int {
	c.or(c.e)
	c.bus.Tick(4)
	return 4
}

// opcode0xB4
func opcode0xB4(c *CPU) int {
	c.or(c.h)
	c.bus.Tick(4)
	return 4
}

// opcode0xB5
func opcode0xB5(c *CPU) int {
	c.or(c.l)
	c.bus.Tick(4)
	return 4
}

// opcode0xB6
func opcode0xB6(c *CPU) int {
	c.or(c.bus.Read(c.getHL()))
	c.bus.Tick(8)
	return 8
}

// opcode0xB7
func opcode0xB7(c *CPU) int {
	c.or(c.a)
	c.bus.Tick(4)
	return 4
}

// opcode0xB8
func opcode0xB8(c *CPU) int {
	c.cp(c.b)
	c.bus.Tick(4)
	return 4
}

// opcode0xB9
func opcode0xB9(c *CPU) int {
	c.cp(c.c)
	c.bus.Tick(4)
	return 4
}

// opcode0xBA
func opcode0xBA(c *CPU) int {
	c.cp(c.d)
	c.bus.Tick(4)
	return 4
}

// opcode0xBB
func opcode0xBB(c *CPU) int {
	c.cp(c.e)
	c.bus.Tick(4)
	return 4
}

// opcode0xBC
func opcode0xBC(c *CPU) int {
	c.cp(c.h)
	c.bus.Tick(4)
	return 4
}

// opcode0xBD
func opcode0xBD(c *CPU) int {
	c.cp(c.l)
	c.bus.Tick(4)
	return 4
}

// opcode0xBE
func opcode0xBE(c *CPU) int {
	c.cp(c.bus.Read(c.getHL()))
	c.bus.Tick(8)
	return 8
}

// opcode0xBF
func opcode0xBF(c *CPU) int {
	c.cp(c.a)
	c.bus.Tick(4)
	return 4
}

// opcode0xC0
func opcode0xC0(c *CPU) int {
	if !c.isSetFlag(zeroFlag) {
		c.pc = c.popStack()
		c.bus.Tick(20)
		return 20
	}
	c.bus.Tick(8)
	return 8
}

// opcode0xC1
func opcode0xC1(c *CPU) int {
	value := c.popStack()
	c.setBC(value)
	c.bus.Tick(12)
	return 12
}

// opcode0xC2
func opcode0xC2(c *CPU) int {
	target := c.readImmediateWord()
	if !c.isSetFlag(zeroFlag) {
		c.pc = target
		c.bus.Tick(16)
		return 16
	}
	c.bus.Tick(12)
	return 12
}

// opcode0xC3
func opcode0xC3(c *CPU) int {
	c.jp()
	c.bus.Tick(16)
	return 16
}

// opcode0xC4
func opcode0xC4(c *CPU) int {
	target := c.readImmediateWord()
	if !c.isSetFlag(zeroFlag) {
		c.pushStack(c.pc)
		c.pc = target
		c.bus.Tick(24)
		return 24
	}
	c.bus.Tick(12)
	return 12
}

// opcode0xC5
func opcode0xC5(c *CPU) int {
	c.pushStack(c.getBC())
	c.bus.Tick(16)
	return 16
}

// opcode0xC6
func opcode0xC6(c *CPU) int {
	value := c.readImmediate()
	c.addToA(value)
	c.bus.Tick(8)
	return 8
}

// opcode0xC7
func opcode0xC7(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x00
	c.bus.Tick(16)
	return 16
}

// opcode0xC8
func opcode0xC8(c *CPU) int {
	if c.isSetFlag(zeroFlag) {
		c.pc = c.popStack()
		c.bus.Tick(20)
		return 20
	}
	c.bus.Tick(8)
	return 8
}

// opcode0xC9
func opcode0xC9(c *CPU) int {
	c.pc = c.popStack()
	c.bus.Tick(16)
	return 16
}

// opcode0xCA
func opcode0xCA(c *CPU) int {
	target := c.readImmediateWord()
	if c.isSetFlag(zeroFlag) {
		c.pc = target
		c.bus.Tick(16)
		return 16
	}
	c.bus.Tick(12)
	return 12
}

// opcode0xCB
func opcode0xCB(c *CPU) int {
	return 0
}

// opcode0xCC
func opcode0xCC(c *CPU) int {
	target := c.readImmediateWord()
	if c.isSetFlag(zeroFlag) {
		c.pushStack(c.pc)
		c.pc = target
		c.bus.Tick(24)
		return 24
	}
	c.bus.Tick(12)
	return 12
}

// opcode0xCD
func opcode0xCD(c *CPU) int {
	target := c.readImmediateWord()
	c.pushStack(c.pc)
	c.pc = target
	c.bus.Tick(24)
	return 24
}

// opcode0xCE
func opcode0xCE(c *CPU) int {
	value := c.readImmediate()
	c.adc(value)
	c.bus.Tick(8)
	return 8
}

// opcode0xCF
func opcode0xCF(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x08
	c.bus.Tick(16)
	return 16
}

// opcode0xD0
func opcode0xD0(c *CPU) int {
	if !c.isSetFlag(carryFlag) {
		c.pc = c.popStack()
		c.bus.Tick(20)
		return 20
	}
	c.bus.Tick(8)
	return 8
}

// opcode0xD1
func opcode0xD1(c *CPU) int {
	value := c.popStack()
	c.setDE(value)
	c.bus.Tick(12)
	return 12
}

// opcode0xD2
func opcode0xD2(c *CPU) int {
	target := c.readImmediateWord()
	if !c.isSetFlag(carryFlag) {
		c.pc = target
		c.bus.Tick(16)
		return 16
	}
	c.bus.Tick(12)
	return 12
}

// opcode0xD3
func opcode0xD3(c *CPU) int {
	return illegal(c)
}

// opcode0xD4
func opcode0xD4(c *CPU) int {
	target := c.readImmediateWord()
	if !c.isSetFlag(carryFlag) {
		c.pushStack(c.pc)
		c.pc = target
		c.bus.Tick(24)
		return 24
	}
	c.bus.Tick(12)
	return 12
}

// opcode0xD5
func opcode0xD5(c *CPU) int {
	c.pushStack(c.getDE())
	c.bus.Tick(16)
	return 16
}

// opcode0xD6
func opcode0xD6(c *CPU) int {
	value := c.readImmediate()
	c.sub(value)
	c.bus.Tick(8)
	return 8
}

// opcode0xD7
func opcode0xD7(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x10
	c.bus.Tick(16)
	return 16
}

// opcode0xD8
func opcode0xD8(c *CPU) int {
	if c.isSetFlag(carryFlag) {
		c.pc = c.popStack()
		c.bus.Tick(20)
		return 20
	}
	c.bus.Tick(8)
	return 8
}

// opcode0xD9
func opcode0xD9(c *CPU) int {
	c.pc = c.popStack()
	c.interruptsEnabled = true
	c.bus.Tick(16)
	return 16
}

// opcode0xDA
func opcode0xDA(c *CPU) int {
	target := c.readImmediateWord()
	if c.isSetFlag(carryFlag) {
		c.pc = target
		c.bus.Tick(16)
		return 16
	}
	c.bus.Tick(12)
	return 12
}

// opcode0xDB
func opcode0xDB(c *CPU) int {
	return illegal(c)
}

// opcode0xDC
func opcode0xDC(c *CPU) int {
	target := c.readImmediateWord()
	if c.isSetFlag(carryFlag) {
		c.pushStack(c.pc)
		c.pc = target
		c.bus.Tick(24)
		return 24
	}
	c.bus.Tick(12)
	return 12
}

// opcode0xDD
func opcode0xDD(c *CPU) int {
	return illegal(c)
}

// opcode0xDE
func opcode0xDE(c *CPU) int {
	value := c.readImmediate()
	c.sbc(value)
	c.bus.Tick(8)
	return 8
}

// opcode0xDF
func opcode0xDF(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x18
	c.bus.Tick(16)
	return 16
}

// opcode0xE0
func opcode0xE0(c *CPU) int {
	offset := c.readImmediate()
	c.bus.Write(0xFF00+uint16(offset), c.a)
	c.bus.Tick(12)
	return 12
}

// opcode0xE1
func opcode0xE1(c *CPU) int {
	value := c.popStack()
	c.setHL(value)
	c.bus.Tick(12)
	return 12
}

// opcode0xE2
func opcode0xE2(c *CPU) int {
	c.bus.Write(0xFF00+uint16(c.c), c.a)
	c.bus.Tick(8)
	return 8
}

// opcode0xE3
func opcode0xE3(c *CPU) int {
	return illegal(c)
}

// opcode0xE4
func opcode0xE4(c *CPU) int {
	return illegal(c)
}

// opcode0xE5
func opcode0xE5(c *CPU) int {
	c.pushStack(c.getHL())
	c.bus.Tick(16)
	return 16
}

// opcode0xE6
func opcode0xE6(c *CPU) int {
	value := c.readImmediate()
	c.and(value)
	c.bus.Tick(8)
	return 8
}

// opcode0xE7
func opcode0xE7(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x20
	c.bus.Tick(16)
	return 16
}

// opcode0xE8
func opcode0xE8(c *CPU) int {
	offset := int8(c.readImmediate())
	sp := c.sp
	result := uint16(int32(sp) + int32(offset))
	c.setFlagToCondition(carryFlag, (sp&0xFF)+uint16(uint8(offset)) > 0xFF)
	c.setFlagToCondition(halfCarryFlag, (sp&0xF)+uint16(uint8(offset)&0xF) > 0xF)
	c.resetFlag(zeroFlag)
	c.resetFlag(subFlag)
	c.sp = result
	c.bus.Tick(16)
	return 16
}

// opcode0xE9
func opcode0xE9(c *CPU) int {
	c.pc = c.getHL()
	c.bus.Tick(4)
	return 4
}

// opcode0xEA
func opcode0xEA(c *CPU) int {
	addr := c.readImmediateWord()
	c.bus.Write(addr, c.a)
	c.bus.Tick(16)
	return 16
}

// opcode0xEB
func opcode0xEB(c *CPU) int {
	return illegal(c)
}

// opcode0xEC
func opcode0xEC(c *CPU) int {
	return illegal(c)
}

// opcode0xED
func opcode0xED(c *CPU) int {
	return illegal(c)
}

// opcode0xEE
func opcode0xEE(c *CPU) int {
	value := c.readImmediate()
	c.xor(value)
	c.bus.Tick(8)
	return 8
}

// opcode0xEF
func opcode0xEF(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x28
	c.bus.Tick(16)
	return 16
}

// opcode0xF0
func opcode0xF0(c *CPU) int {
	offset := c.readImmediate()
	c.a = c.bus.Read(0xFF00 + uint16(offset))
	c.bus.Tick(12)
	return 12
}

// opcode0xF1
func opcode0xF1(c *CPU) int {
	value := c.popStack()
	c.setAF(value)
	c.bus.Tick(12)
	return 12
}

// opcode0xF2
func opcode0xF2(c *CPU) int {
	c.a = c.bus.Read(0xFF00 + uint16(c.c))
	c.bus.Tick(8)
	return 8
}

// opcode0xF3
func opcode0xF3(c *CPU) int {
	c.interruptsEnabled = false
	c.eiPending = false
	c.bus.Tick(4)
	return 4
}

// opcode0xF4
func opcode0xF4(c *CPU) int {
	return illegal(c)
}

// opcode0xF5
func opcode0xF5(c *CPU) int {
	c.pushStack(c.getAF())
	c.bus.Tick(16)
	return 16
}

// opcode0xF6
func opcode0xF6(c *CPU) int {
	value := c.readImmediate()
	c.or(value)
	c.bus.Tick(8)
	return 8
}

// opcode0xF7
func opcode0xF7(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x30
	c.bus.Tick(16)
	return 16
}

// opcode0xF8
func opcode0xF8(c *CPU) int {
	offset := int8(c.readImmediate())
	sp := c.sp
	result := uint16(int32(sp) + int32(offset))
	c.setFlagToCondition(carryFlag, (sp&0xFF)+uint16(uint8(offset)) > 0xFF)
	c.setFlagToCondition(halfCarryFlag, (sp&0xF)+uint16(uint8(offset)&0xF) > 0xF)
	c.resetFlag(zeroFlag)
	c.resetFlag(subFlag)
	c.setHL(result)
	c.bus.Tick(12)
	return 12
}

// opcode0xF9
func opcode0xF9(c *CPU) int {
	c.sp = c.getHL()
	c.bus.Tick(8)
	return 8
}

// opcode0xFA
func opcode0xFA(c *CPU) int {
	addr := c.readImmediateWord()
	c.a = c.bus.Read(addr)
	c.bus.Tick(16)
	return 16
}

// opcode0xFB
func opcode0xFB(c *CPU) int {
	c.eiPending = true
	c.bus.Tick(4)
	return 4
}

// opcode0xFC
func opcode0xFC(c *CPU) int {
	return illegal(c)
}

// opcode0xFD
func opcode0xFD(c *CPU) int {
	return illegal(c)
}

// opcode0xFE
func opcode0xFE(c *CPU) int {
	value := c.readImmediate()
	c.cp(value)
	c.bus.Tick(8)
	return 8
}

// opcode0xFF
func opcode0xFF(c *CPU) int {
	c.pushStack(c.pc)
	c.pc = 0x38
	c.bus.Tick(16)
	return 16
}
