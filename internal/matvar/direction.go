package matvar

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// The exposure direction is stored as a unit vector (what the generator
// wants) but edited as azimuth/elevation degrees (what a user can reason
// about). Azimuth 0 points along +Z and increases clockwise when viewed
// from above; elevation 0 is horizontal, 90 straight up.

// AzElToDirection converts azimuth [0, 360) and elevation [0, 90] degrees
// into a unit vector. Inputs outside the ranges are wrapped (azimuth) or
// clamped (elevation).
func AzElToDirection(azimuthDeg, elevationDeg float64) mgl32.Vec3 {
	az := wrapDegrees(azimuthDeg)
	el := clampElevation(elevationDeg)

	azRad := az * math.Pi / 180
	elRad := el * math.Pi / 180

	horiz := math.Cos(elRad)
	return mgl32.Vec3{
		float32(math.Sin(azRad) * horiz),
		float32(math.Sin(elRad)),
		float32(math.Cos(azRad) * horiz),
	}
}

// DirectionToAzEl converts a direction vector back to azimuth [0, 360) and
// elevation [0, 90] degrees. The vector need not be normalized; a zero or
// downward vector maps to elevation 0. At elevation 90 the azimuth is
// degenerate and reported as 0.
func DirectionToAzEl(dir mgl32.Vec3) (azimuthDeg, elevationDeg float64) {
	x := float64(dir.X())
	y := float64(dir.Y())
	z := float64(dir.Z())

	horiz := math.Hypot(x, z)
	if horiz < 1e-8 {
		if y > 0 {
			return 0, 90
		}
		return 0, 0
	}

	az := math.Atan2(x, z) * 180 / math.Pi
	az = wrapDegrees(az)

	el := math.Atan2(y, horiz) * 180 / math.Pi
	el = clampElevation(el)
	return az, el
}

// wrapDegrees maps any finite angle into [0, 360). Non-finite input wraps
// to 0.
func wrapDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func clampElevation(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	if deg < 0 {
		return 0
	}
	if deg > 90 {
		return 90
	}
	return deg
}
