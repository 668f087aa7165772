package raytracer

import (
	"math"
	"math/rand"

	"scenetrace/internal/rgb"
)

// Sky gradient color at full height rate.
var skyColor = rgb.FromRGB8(67, 133, 255)

const (
	skyStart     = 0.2  // rows above this fraction of the image stay black
	starBand     = 0.35 // stars appear while the height rate is at most this
	starFadeFrom = 0.05
	starChance   = 0.005
	starFade     = 0.003
	starMinGray  = 55
	starGrayspan = 200
)

// Background returns the sky color for row y of an image of the given
// height. Near the top of the sky a few pixels become stars; rng decides
// which, and is only consumed inside the star band.
func Background(y, height int, rng *rand.Rand) rgb.Color {
	rate := math.Max(0, float64(y)/float64(height)-skyStart)

	if rate <= starBand {
		chance := starChance
		if rate >= starFadeFrom {
			chance = (starBand + starFadeFrom - rate) / starBand * starFade
		}
		if rng.Float64() <= chance {
			gray := starMinGray + int(rng.Float64()*starGrayspan)
			return rgb.Gray(float64(gray) / 255)
		}
	}

	return skyColor.Scale(rate)
}
