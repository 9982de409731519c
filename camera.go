package main

import (
	"math"

	"github.com/automoto/platfight/core"
	"github.com/automoto/platfight/geom"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	cameraEaseSeconds = 0.6
	cameraRetarget    = 24.0 // Goal drift before the camera eases again
)

// Camera eases toward the midpoint of the fighters.
type Camera struct {
	Pos  geom.Vec2
	goal geom.Vec2
	x, y *gween.Tween
}

func NewCamera(pos geom.Vec2) *Camera {
	return &Camera{Pos: pos, goal: pos}
}

// Update retargets the camera when the fighters have drifted far enough and
// advances the easing by dt seconds.
func (c *Camera) Update(snap *core.Snapshot, dt float32) {
	if target, ok := focus(snap); ok && geom.Length(geom.Sub(target, c.goal)) > cameraRetarget {
		c.goal = target
		c.x = gween.New(float32(c.Pos.X), float32(target.X), cameraEaseSeconds, ease.OutQuad)
		c.y = gween.New(float32(c.Pos.Y), float32(target.Y), cameraEaseSeconds, ease.OutQuad)
	}
	if c.x != nil {
		x, doneX := c.x.Update(dt)
		y, doneY := c.y.Update(dt)
		c.Pos = geom.V(float64(x), float64(y))
		if doneX && doneY {
			c.x, c.y = nil, nil
		}
	}
}

// Offset is the translation from world to screen coordinates.
func (c *Camera) Offset(width, height int) geom.Vec2 {
	return geom.V(math.Round(float64(width)/2-c.Pos.X), math.Round(float64(height)/2-c.Pos.Y))
}

func focus(snap *core.Snapshot) (geom.Vec2, bool) {
	if snap == nil || len(snap.Players) == 0 {
		return geom.Vec2{}, false
	}
	var sum geom.Vec2
	for _, p := range snap.Players {
		sum = geom.Add(sum, p.Pos)
	}
	return geom.Scale(sum, 1/float64(len(snap.Players))), true
}
