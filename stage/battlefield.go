package stage

import "github.com/automoto/platfight/geom"

// Battlefield returns the default stage: a grabbable main platform with
// three solid floating platforms above it.
func Battlefield() *Stage {
	main := geom.Polygon{
		{X: 300, Y: 600},
		{X: 900, Y: 600},
		{X: 860, Y: 660},
		{X: 620, Y: 720},
		{X: 580, Y: 720},
		{X: 340, Y: 660},
	}
	pieces := []Piece{
		{Name: "main", Polygon: main, Grabbable: true},
		{Name: "left", Polygon: geom.Rect(380, 480, 140, 12)},
		{Name: "right", Polygon: geom.Rect(680, 480, 140, 12)},
		{Name: "top", Polygon: geom.Rect(530, 370, 140, 12)},
	}
	spawns := []Spawn{
		{Pos: geom.Vec2{X: 420, Y: 600}, Facing: 1},
		{Pos: geom.Vec2{X: 780, Y: 600}, Facing: -1},
		{Pos: geom.Vec2{X: 540, Y: 600}, Facing: 1},
		{Pos: geom.Vec2{X: 660, Y: 600}, Facing: -1},
	}

	s, err := New("battlefield", pieces, spawns, 300)
	if err != nil {
		// The geometry above is fixed.
		panic(err)
	}
	return s
}
