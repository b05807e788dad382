package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// StaffData drives the delayed fade-in of the staff (singleton component)
type StaffData struct {
	Delay    int // frames left before the fade starts
	Fade     *gween.Tween
	Alpha    float32
	Revealed bool
}

var Staff = donburi.NewComponentType[StaffData]()

// MarkerData is one note on the staff
type MarkerData struct {
	X, Y  float64 // staff coordinates
	Line  int
	Pop   *gween.Tween
	Scale float32
}

var Marker = donburi.NewComponentType[MarkerData]()
