package audio

const sampleScale = 32767.0 / 15.0

// scaleToPCM converts an averaged raw amplitude into a signed 16-bit PCM
// sample, scaled by the NR50 master volume for that channel lane.
func scaleToPCM(avg float64, masterVol uint8) int16 {
	gain := float64(masterVol+1) / 8.0
	value := avg * gain * sampleScale
	if value > 32767 {
		value = 32767
	} else if value < -32768 {
		value = -32768
	}
	return int16(value)
}
