package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors a body's bounding box in the occupancy grid
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv grid holding every ObjectData (singleton component)
var Space = donburi.NewComponentType[resolv.Space]()
