package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collision body. resolv positions by top-left corner;
// gameplay works in centre coordinates.
type ObjectData struct {
	*resolv.Object
}

func (o ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

func (o ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

// SetCenter moves the body so its centre sits at (x, y).
func (o ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
