// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixel

// blendSourceOver composites a straight-alpha source over a straight-alpha
// destination. Channels are normalized to [0, 1], blended in float64 and
// re-quantized with rounding. coverage scales the source alpha.
//
//	sa   = Sa * coverage
//	outA = sa + Da*(1-sa)
//	outC = (Sc*sa + Dc*Da*(1-sa)) / outA
//
// When outA is zero the destination color is kept.
func blendSourceOver(dst []uint8, src Color, coverage float64) {
	sa := float64(src.A) / 255 * coverage
	if sa <= 0 {
		return
	}
	da := float64(dst[3]) / 255
	keep := da * (1 - sa)
	outA := sa + keep
	if outA <= 0 {
		dst[3] = 0
		return
	}

	dst[0] = blendChannel(src.R, dst[0], sa, keep, outA)
	dst[1] = blendChannel(src.G, dst[1], sa, keep, outA)
	dst[2] = blendChannel(src.B, dst[2], sa, keep, outA)
	dst[3] = quantize(outA)
}

func blendChannel(s, d uint8, sa, keep, outA float64) uint8 {
	c := (float64(s)/255*sa + float64(d)/255*keep) / outA
	return quantize(c)
}

// quantize maps a normalized value back to 0-255, rounding to nearest.
func quantize(v float64) uint8 {
	v = v*255 + 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// clampUnit restricts a value to [0, 1]. NaN maps to 0.
func clampUnit(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
