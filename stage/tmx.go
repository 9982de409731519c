package stage

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/automoto/platfight/geom"
	"github.com/lafriks/go-tiled"
)

const defaultBlastMargin = 300

// LoadTMX builds a stage from a Tiled map. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
//
// The "Stage" object group holds the solid pieces: polygon objects are used
// as-is and rectangle objects become boxes. A piece with the bool property
// "grabbable" exposes ledges. "PlayerSpawn" holds point objects ordered by
// their "spawnIndex" property, with an optional "facing" of "left" or
// "right". An optional rectangle in "BlastZone" overrides the default zone.
func LoadTMX(fsys fs.FS, tmxPath string) (*Stage, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var (
		pieces []Piece
		spawns []indexedSpawn
		zone   *BlastZone
	)
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Stage":
			for _, o := range og.Objects {
				poly := objectPolygon(o)
				if poly == nil {
					log.Printf("[stage] Skipping object %d in %s: no area", o.ID, tmxPath)
					continue
				}
				pieces = append(pieces, Piece{
					Name:      o.Name,
					Polygon:   poly,
					Grabbable: o.Properties.GetBool("grabbable"),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				facing := 1.0
				if o.Properties.GetString("facing") == "left" {
					facing = -1
				}
				spawns = append(spawns, indexedSpawn{
					index: o.Properties.GetInt("spawnIndex"),
					Spawn: Spawn{Pos: geom.Vec2{X: o.X, Y: o.Y}, Facing: facing},
				})
			}
		case "BlastZone":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				zone = &BlastZone{MinX: o.X, MinY: o.Y, MaxX: o.X + o.Width, MaxY: o.Y + o.Height}
			}
		}
	}

	// Order spawns by index, then left to right for consistent assignment
	sort.SliceStable(spawns, func(i, j int) bool {
		if spawns[i].index != spawns[j].index {
			return spawns[i].index < spawns[j].index
		}
		return spawns[i].Pos.X < spawns[j].Pos.X
	})
	ordered := make([]Spawn, len(spawns))
	for i, sp := range spawns {
		ordered[i] = sp.Spawn
	}

	name := strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	s, err := New(name, pieces, ordered, defaultBlastMargin)
	if err != nil {
		return nil, fmt.Errorf("build stage %s: %w", tmxPath, err)
	}
	if zone != nil {
		s.BlastZone = *zone
	}
	log.Printf("[stage] Loaded %s: %d pieces, %d ledges, %d spawns", name, len(s.Pieces), len(s.Ledges), len(s.Spawns))
	return s, nil
}

type indexedSpawn struct {
	Spawn
	index int
}

func objectPolygon(o *tiled.Object) geom.Polygon {
	if len(o.Polygons) > 0 && o.Polygons[0].Points != nil {
		pts := *o.Polygons[0].Points
		poly := make(geom.Polygon, len(pts))
		for i, p := range pts {
			poly[i] = geom.Vec2{X: o.X + p.X, Y: o.Y + p.Y}
		}
		return poly
	}
	if o.Width > 0 && o.Height > 0 {
		return geom.Rect(o.X, o.Y, o.Width, o.Height)
	}
	return nil
}

// LoadAll discovers every .tmx file in dir within fsys and returns the stages
// keyed by file stem plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Stage, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%w: no .tmx files found in %s", ErrMissingStage, dir)
	}

	stages := make(map[string]*Stage, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		s, err := LoadTMX(fsys, m)
		if err != nil {
			return nil, nil, err
		}
		stages[s.Name] = s
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return stages, names, nil
}
