package tags

import "github.com/yohamta/donburi"

var (
	Polygon  = donburi.NewTag().SetName("Polygon")
	Boundary = donburi.NewTag().SetName("Boundary")
	Marker   = donburi.NewTag().SetName("Marker")
)

// Resolv tags for the occupancy grid
const (
	ResolvSolid   = "solid"
	ResolvPolygon = "polygon"
)
