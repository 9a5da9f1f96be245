package scheme

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxHue is the largest allowed hue randomization range. Historical constant;
// downstream visuals depend on it staying below a full hue circle.
const MaxHue = 340

// RandomizationRange bounds how far one palette slot may drift from its base
// color, per HSV channel. The zero value means no randomization.
type RandomizationRange struct {
	Hue        uint16 // degrees, 0..MaxHue
	Saturation uint8
	Value      uint8
}

// IsNull reports whether the range permits no variation at all.
func (r RandomizationRange) IsNull() bool {
	return r.Hue == 0 && r.Saturation == 0 && r.Value == 0
}

// jitterLane maps one 16-bit hash lane onto [-bound, +bound].
func jitterLane(lane uint64, bound float64) float64 {
	if bound == 0 {
		return 0
	}
	return (float64(lane&0xFFFF)/0xFFFF*2 - 1) * bound
}

// randomize derives a perturbed copy of entry from (seed, slot). The same
// inputs always produce the same output: the variation comes from a hash of
// the seed and the slot index, not from any stateful generator.
func randomize(entry ColorEntry, rng RandomizationRange, seed uint64, slot int) ColorEntry {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[0:8], seed)
	binary.LittleEndian.PutUint64(key[8:16], uint64(slot))
	sum := xxhash.Sum64(key[:])

	base := colorful.Color{
		R: float64(entry.R) / 255,
		G: float64(entry.G) / 255,
		B: float64(entry.B) / 255,
	}
	h, s, v := base.Hsv()

	// Hue is circular: wrap. Saturation and value clamp to their channel range.
	h = math.Mod(h+jitterLane(sum, float64(rng.Hue))+360, 360)
	s = clamp01(s + jitterLane(sum>>16, float64(rng.Saturation)/255))
	v = clamp01(v + jitterLane(sum>>32, float64(rng.Value)/255))

	shifted := colorful.Hsv(h, s, v)
	out := entry // keep Transparent and Bold untouched
	out.R = channelByte(shifted.R)
	out.G = channelByte(shifted.G)
	out.B = channelByte(shifted.B)
	return out
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func channelByte(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}
