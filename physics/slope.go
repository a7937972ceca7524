package physics

import "math"

// slopeLimit bounds the displacement fed into the slope-angle table.
const slopeLimit = 11

// slopeTable[slopeLimit+y][slopeLimit+x] is the angle of the (y, x) slope.
// Precomputed so the angle probe never calls atan2 on the hot path.
var slopeTable [2*slopeLimit + 1][2*slopeLimit + 1]int

func init() {
	for y := -slopeLimit; y <= slopeLimit; y++ {
		for x := -slopeLimit; x <= slopeLimit; x++ {
			a := int(math.Round(math.Atan2(float64(y), float64(x)) * 128 / math.Pi))
			slopeTable[slopeLimit+y][slopeLimit+x] = a & 0xFF
		}
	}
}

// slopeAngle looks up the angle of the (y, x) slope. Out-of-range
// displacements are clamped to the table bounds.
func slopeAngle(y, x int) int {
	if y < -slopeLimit {
		y = -slopeLimit
	} else if y > slopeLimit {
		y = slopeLimit
	}
	if x < -slopeLimit {
		x = -slopeLimit
	} else if x > slopeLimit {
		x = slopeLimit
	}
	return slopeTable[slopeLimit+y][slopeLimit+x]
}
