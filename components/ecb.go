package components

import (
	"github.com/automoto/platfight/geom"
	"github.com/yohamta/donburi"
)

// ECB vertex order
const (
	ECBTop = iota
	ECBRight
	ECBBottom
	ECBLeft
)

// ECBData is the environment collision box: a diamond whose bottom vertex
// is the fighter's position. Prev holds the diamond of the previous tick.
type ECBData struct {
	Cur    [4]geom.Vec2
	Prev   [4]geom.Vec2
	Width  float64
	Height float64
}

var ECB = donburi.NewComponentType[ECBData]()

// NewECB returns a box of the given size placed at pos with no motion.
func NewECB(pos geom.Vec2, width, height float64) ECBData {
	e := ECBData{Width: width, Height: height}
	e.Place(pos)
	return e
}

// Diamond returns the box vertices for a fighter at pos.
func (e *ECBData) Diamond(pos geom.Vec2) [4]geom.Vec2 {
	hw, hh := e.Width/2, e.Height/2
	return [4]geom.Vec2{
		ECBTop:    {X: pos.X, Y: pos.Y - e.Height},
		ECBRight:  {X: pos.X + hw, Y: pos.Y - hh},
		ECBBottom: pos,
		ECBLeft:   {X: pos.X - hw, Y: pos.Y - hh},
	}
}

// Place moves the box to pos and clears its motion.
func (e *ECBData) Place(pos geom.Vec2) {
	e.Cur = e.Diamond(pos)
	e.Prev = e.Cur
}

// Update shifts the current box into Prev and rebuilds it at pos.
func (e *ECBData) Update(pos geom.Vec2) {
	e.Prev = e.Cur
	e.Cur = e.Diamond(pos)
}

// Shift moves the current box by d, leaving Prev alone.
func (e *ECBData) Shift(d geom.Vec2) {
	for i := range e.Cur {
		e.Cur[i] = geom.Add(e.Cur[i], d)
	}
}

// Bottom returns the grounded sensor point.
func (e *ECBData) Bottom() geom.Vec2 {
	return e.Cur[ECBBottom]
}
