package audio

import "github.com/valerio/go-jeebie/jeebie/bit"

var noiseDividers = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

// stepNoise advances CH4's LFSR by cycles T-cycles and returns its raw
// (pre-mix) amplitude.
func (a *APU) stepNoise(ch *Channel, cycles int) int64 {
	period := a.noisePeriodCycles(ch)
	if period == 0 {
		return 0
	}
	if ch.lfsr == 0 {
		ch.lfsr = 0x7FFF
	}
	if ch.noiseTimer <= 0 {
		ch.noiseTimer = period
	}

	ch.noiseTimer -= cycles
	for ch.noiseTimer <= 0 {
		ch.noiseTimer += period
		newBit := (ch.lfsr & 1) ^ ((ch.lfsr >> 1) & 1)
		ch.lfsr = (ch.lfsr >> 1) | (newBit << 14)
		if ch.use7bitLFSR {
			ch.lfsr = (ch.lfsr &^ (1 << 6)) | (newBit << 6)
		}
	}

	if ch.volume == 0 {
		return 0
	}
	level := int64(ch.volume)
	if bit.IsSet(0, uint8(ch.lfsr)) {
		// Per Pan Docs: Noise output bit is inverted before it hits the DAC
		return -level
	}
	return level
}

func (a *APU) noisePeriodCycles(ch *Channel) int {
	div := noiseDividers[ch.divider&0x7]
	period := div << ch.shift
	if period <= 0 {
		return 0
	}
	return period
}

// mapChannel4 derives CH4 (noise channel) state from NR41-NR44.
func (a *APU) mapChannel4() {
	ch := &a.ch[3]

	// NR41 - Channel 4 Length Timer (write-only)
	// 7-6: - | 5-0: Length Timer (0-63, actual = 64-value)
	ch.timer = bit.ExtractBits(a.NR41, 5, 0)

	// NR42 - Channel 4 Volume & Envelope
	// 7-4: Initial Volume | 3: Direction | 2-0: Period
	ch.volume = bit.ExtractBits(a.NR42, 7, 4)
	ch.envelopeUp = bit.IsSet(3, a.NR42)
	ch.envelopePace = bit.ExtractBits(a.NR42, 2, 0)

	// NR43 - Channel 4 Frequency & Randomness
	// 7-4: Clock Shift | 3: LFSR Width | 2-0: Clock Divider
	// frequency = 524288 / r / 2^(s+1) where r=divider, s=shift
	ch.shift = bit.ExtractBits(a.NR43, 7, 4)
	ch.use7bitLFSR = bit.IsSet(3, a.NR43)
	ch.divider = bit.ExtractBits(a.NR43, 2, 0)

	// DAC for a channel is enabled if initial volume > 0 or envelope is increasing
	ch.dacEnabled = (ch.volume > 0) || ch.envelopeUp

	// NR44 - Channel 4 Control
	// 7: Trigger | 6: Length Enable | 5-0: -
	prevLenEnable := ch.lengthEnable
	lengthBefore := ch.length
	triggered := bit.IsSet(7, a.NR44)
	ch.lengthEnable = bit.IsSet(6, a.NR44)
	ch.trigger = triggered
	if ch.trigger {
		if ch.dacEnabled {
			ch.enabled = true
		}
		ch.envelopeLatched = false
		if ch.envelopePace == 0 {
			ch.envelopeCounter = 8
		} else {
			ch.envelopeCounter = ch.envelopePace
		}
		ch.lfsr = 0x7FFF
		ch.noiseTimer = a.noisePeriodCycles(ch)
		// reset the bit, since it's write-only this effectively gets triggered only on a write from 0 to 1
		a.NR44 = bit.Reset(7, a.NR44)
		ch.trigger = false
	}
	a.handleLengthEnableTransition(prevLenEnable, lengthBefore, triggered, 64, 3)
}
