package components

import (
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Position   Vector
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

var Camera = donburi.NewComponentType[CameraData]()
