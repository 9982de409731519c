package systems

import (
	"math"

	"github.com/automoto/platfight/components"
	cfg "github.com/automoto/platfight/config"
	"github.com/automoto/platfight/geom"
	"github.com/automoto/platfight/shared/gamemath"
	"github.com/automoto/platfight/stage"
	"github.com/yohamta/donburi/ecs"
)

// normalTolerance is the largest normal component still treated as zero
// when classifying a hit. It lets gentle slopes count as ground.
const normalTolerance = 0.25

type surface int

const (
	surfaceGround surface = iota
	surfaceCeiling
	surfaceWallLeft
	surfaceWallRight
	surfaceCorner
)

// classify maps a normal pointing from the fighter into the stage to the
// surface it hit.
func classify(n geom.Vec2) surface {
	flatX := math.Abs(n.X) < normalTolerance
	flatY := math.Abs(n.Y) < normalTolerance
	switch {
	case flatX && n.Y > 0:
		return surfaceGround
	case flatX && n.Y < 0:
		return surfaceCeiling
	case flatY && n.X > 0:
		return surfaceWallRight
	case flatY && n.X < 0:
		return surfaceWallLeft
	default:
		return surfaceCorner
	}
}

// UpdateCollisions tests each player's swept hull against the stage,
// pushes the player out of anything it hit and refreshes its grounded
// flag.
func UpdateCollisions(ecs *ecs.ECS) {
	matchEntry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(matchEntry)

	for _, e := range match.Players {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		box := components.ECB.Get(e)
		contact := components.Contact.Get(e)

		*contact = components.ContactData{}
		resolveStage(match, player, physics, box, contact)
		refreshGround(match.Stage, physics, box, contact)
	}
}

func resolveStage(match *components.MatchData, player *components.PlayerData, physics *components.PhysicsData, box *components.ECBData, contact *components.ContactData) {
	hull := match.Pools.Hulls.Rent()
	poly := hull.Build(box.Prev, box.Cur)

	match.Candidates = candidates(match, player, poly, match.Candidates[:0])
	for _, i := range match.Candidates {
		piece := match.Stage.Pieces[i].Polygon
		res := match.Pools.Results.Rent()
		if !geom.Intersect(poly, piece, res) {
			continue
		}
		contact.Hits++

		depth := penetration(box, piece, res.Normal)
		if depth > contact.Depth {
			contact.Depth = depth
			contact.Normal = res.Normal
		}

		kind := classify(res.Normal)
		markContact(contact, kind)
		if depth <= 0 {
			// Only the motion during the tick touched the piece.
			continue
		}

		correction := geom.Scale(res.Normal, -(depth + cfg.Physics.CollisionEpsilon))
		if kind == surfaceCorner {
			correction = geom.Vec2{X: correction.X + gamemath.Sign(correction.X)*math.Abs(correction.Y)}
		}
		physics.Pos = geom.Add(physics.Pos, correction)
		box.Shift(correction)
		stopInto(physics, kind, res.Normal)

		// Later pieces are tested against the corrected motion.
		poly = hull.Build(box.Prev, box.Cur)
	}
}

// candidates appends the indices of stage pieces near poly. Without a
// probe every piece is a candidate.
func candidates(match *components.MatchData, player *components.PlayerData, poly geom.Polygon, dst []int) []int {
	if player.Probe == nil {
		for i := range match.Stage.Pieces {
			dst = append(dst, i)
		}
		return dst
	}
	minX, minY, maxX, maxY := poly.Bounds()
	return player.Probe.Candidates(minX, minY, maxX, maxY, dst)
}

// penetration returns how far the current box reaches past the near side
// of piece along n.
func penetration(box *components.ECBData, piece geom.Polygon, n geom.Vec2) float64 {
	_, reach := geom.Polygon(box.Cur[:]).Project(n)
	near, _ := piece.Project(n)
	return reach - near
}

func markContact(contact *components.ContactData, kind surface) {
	switch kind {
	case surfaceGround:
		contact.Ground = true
	case surfaceCeiling:
		contact.Ceiling = true
	case surfaceWallLeft:
		contact.WallLeft = true
	case surfaceWallRight:
		contact.WallRight = true
	case surfaceCorner:
		contact.Corner = true
	}
}

// stopInto removes the velocity component that drives the fighter into the
// surface it was pushed out of.
func stopInto(physics *components.PhysicsData, kind surface, n geom.Vec2) {
	switch kind {
	case surfaceGround:
		physics.Vel.Y = math.Min(physics.Vel.Y, 0)
	case surfaceCeiling:
		physics.Vel.Y = math.Max(physics.Vel.Y, 0)
	case surfaceWallRight:
		physics.Vel.X = math.Min(physics.Vel.X, 0)
	case surfaceWallLeft:
		physics.Vel.X = math.Max(physics.Vel.X, 0)
	case surfaceCorner:
		if physics.Vel.X*n.X > 0 {
			physics.Vel.X = 0
		}
	}
}

// refreshGround casts the ground sensor from the bottom of the box. A
// fighter that is not rising settles just above the surface it finds.
func refreshGround(s *stage.Stage, physics *components.PhysicsData, box *components.ECBData, contact *components.ContactData) {
	if physics.Vel.Y < 0 || physics.Ledge >= 0 {
		physics.Grounded = false
		return
	}
	hit, ok := s.GroundAt(box.Bottom(), cfg.Physics.GroundSensorLength)
	if !ok {
		physics.Grounded = false
		return
	}

	settle := geom.Vec2{Y: hit.Y - cfg.Physics.CollisionEpsilon - physics.Pos.Y}
	if settle.Y > geom.Epsilon {
		physics.Pos = geom.Add(physics.Pos, settle)
		box.Shift(settle)
	}
	physics.Grounded = true
	physics.Vel.Y = 0
	contact.Ground = true
}
