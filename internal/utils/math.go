// internal/utils/math.go
package utils

import (
	"fmt"
	"math"
)

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// FormatHMS renders seconds as hh:mm:ss.mmm.
func FormatHMS(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := int(seconds / 3600)
	seconds -= float64(hours) * 3600
	minutes := int(seconds / 60)
	seconds -= float64(minutes) * 60
	return fmt.Sprintf("%02d:%02d:%06.3f", hours, minutes, seconds)
}
