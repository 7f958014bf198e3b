package tesseract

import (
	"math"
	"strconv"
)

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions use).
func ToRadians(degrees float64) float64 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float64) float64 {
	return radians / math.Pi * 180
}

func clamp[V ~float64 | ~float32 | ~int | ~int64](value, min, max V) V {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

func mustBeFinite(what string, value float64) {
	if !isFinite(value) {
		panic("tesseract: " + what + " must be finite, got " + strconv.FormatFloat(value, 'g', -1, 64))
	}
}
