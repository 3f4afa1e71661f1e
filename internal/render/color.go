// SPDX-License-Identifier: Unlicense OR MIT

package render

import "math"

// srgbToLinear converts an sRGB encoded component to linear light.
func srgbToLinear(c uint8) float32 {
	v := float64(c) / 0xff
	if v <= 0.04045 {
		return float32(v / 12.92)
	}
	return float32(math.Pow((v+0.055)/1.055, 2.4))
}
