package memory

import "fmt"

const titleLength = 11

const (
	entryPointAddress       = 0x100
	logoAddress             = 0x104
	titleAddress            = 0x134
	manufacturerCodeAddress = 0x13F
	cgbFlagAddress          = 0x143
	newLicenseCodeAddress   = 0x144
	sgbFlagAddress          = 0x146
	cartridgeTypeAddress    = 0x147
	romSizeAddress          = 0x148
	ramSizeAddress          = 0x149
	destinationCodeAddress  = 0x14A
	oldLicenseCodeAddress   = 0x14B
	versionNumberAddress    = 0x14C
	headerChecksumAddress   = 0x14D
	globalChecksumAddress   = 0x14E
)

// MBCType identifies which memory bank controller a cartridge header
// asks for.
type MBCType uint8

const (
	NoMBCType MBCType = iota
	MBC1Type
	MBC1MultiType
	MBC2Type
	MBC3Type
	MBC5Type
	MBCUnknownType
)

// ramSizeTable maps the byte at 0x149 to the total external RAM size,
// in KiB, the header declares.
var ramSizeTable = [6]uint32{0, 2, 8, 32, 128, 16}

type Cartridge struct {
	data           []byte
	title          string
	headerChecksum uint16
	globalChecksum uint16
	version        uint8
	cartType       uint8
	romSize        uint8
	ramSize        uint8

	mbcType      MBCType
	hasBattery   bool
	hasRTC       bool
	hasRumble    bool
	ramBankCount uint8
}

// NewCartridge creates an empty cartridge, useful only for debugging purposes.
func NewCartridge() *Cartridge {
	return &Cartridge{
		data:    make([]byte, 0x10000),
		mbcType: NoMBCType,
	}
}

// NewCartridgeWithData initializes a new Cartridge from a slice of bytes,
// deriving the mapper type and RAM layout from the ROM header.
func NewCartridgeWithData(bytes []byte) *Cartridge {
	titleBytes := bytes[titleAddress : titleAddress+titleLength]

	cart := &Cartridge{
		data:           make([]byte, len(bytes)),
		title:          cleanGameboyTitle(titleBytes),
		headerChecksum: combineBytes(bytes[headerChecksumAddress+1], bytes[headerChecksumAddress]),
		globalChecksum: combineBytes(bytes[globalChecksumAddress+1], bytes[globalChecksumAddress]),
		version:        bytes[versionNumberAddress],
		cartType:       bytes[cartridgeTypeAddress],
		romSize:        bytes[romSizeAddress],
		ramSize:        bytes[ramSizeAddress],
	}

	copy(cart.data, bytes)
	cart.deriveMapper()

	return cart
}

func combineBytes(low, high uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// deriveMapper interprets the cartridge-type byte (0x147) and the
// RAM-size byte (0x149), rejecting mapper types the core does not
// support.
func (c *Cartridge) deriveMapper() {
	if int(c.ramSize) < len(ramSizeTable) {
		kib := ramSizeTable[c.ramSize]
		c.ramBankCount = uint8(kib / 8)
		if kib > 0 && c.ramBankCount == 0 {
			c.ramBankCount = 1
		}
	}

	switch c.cartType {
	case 0x00:
		c.mbcType = NoMBCType
	case 0x01:
		c.mbcType = MBC1Type
	case 0x02:
		c.mbcType = MBC1Type
	case 0x03:
		c.mbcType = MBC1Type
		c.hasBattery = true
	case 0x05:
		c.mbcType = MBC2Type
		c.ramBankCount = 1
	case 0x06:
		c.mbcType = MBC2Type
		c.hasBattery = true
		c.ramBankCount = 1
	case 0x0F:
		c.mbcType = MBC3Type
		c.hasRTC = true
		c.hasBattery = true
	case 0x10:
		c.mbcType = MBC3Type
		c.hasRTC = true
		c.hasBattery = true
	case 0x11:
		c.mbcType = MBC3Type
	case 0x12:
		c.mbcType = MBC3Type
	case 0x13:
		c.mbcType = MBC3Type
		c.hasBattery = true
	case 0x19:
		c.mbcType = MBC5Type
	case 0x1A:
		c.mbcType = MBC5Type
	case 0x1B:
		c.mbcType = MBC5Type
		c.hasBattery = true
	default:
		c.mbcType = MBCUnknownType
		panic(fmt.Sprintf("unsupported cartridge type: 0x%02X", c.cartType))
	}
}

// ReadByte reads a byte at the specified address. Does not check bounds, so the caller must make sure the
// address is valid for the cartridge.
func (c Cartridge) ReadByte(addr uint16) uint8 {
	return c.data[addr]
}

// WriteByte attempts a write to the specified address. Writing to a cartridge has sense if the cartridge
// has extra RAM or for some special operations, like switching ROM banks.
func (c Cartridge) WriteByte(addr uint16, value uint8) uint8 {
	return c.data[addr]
}
