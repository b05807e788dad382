// Package arena loads the simulation boundary layouts from embedded Tiled maps.
// It has no dependencies on ebitengine, donburi, or the physics engine: pure data only.
package arena

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/polytone/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

//go:embed arenas/*.tmx
var arenaFS embed.FS

const (
	dir           = "arenas"
	groupBoundary = "boundary"
	groupSpawn    = "spawn"
	insetName     = "inset"
)

// Boundary is one static wall of the arena.
type Boundary struct {
	Name string
	gamemath.Rect
}

// Arena is a fixed logical simulation area with its walls and spawn regions.
type Arena struct {
	Name       string
	Width      float64
	Height     float64
	Boundaries []Boundary
	Spawns     []gamemath.Rect // rotation order
	Inset      gamemath.Rect   // single region for random placement
}

// Load reads one of the embedded arenas by name.
func Load(name string) (*Arena, error) {
	return LoadFS(arenaFS, path.Join(dir, name+".tmx"))
}

// Names lists the embedded arenas.
func Names() ([]string, error) {
	matches, err := fs.Glob(arenaFS, dir+"/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob arenas: %w", err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadFS parses a TMX file from fsys. The map size gives the logical area;
// the "boundary" object group gives the walls and the "spawn" group the
// placement regions.
func LoadFS(fsys fs.FS, tmxPath string) (*Arena, error) {
	if _, err := fs.Stat(fsys, tmxPath); err != nil {
		return nil, fmt.Errorf("arena %s: %w", tmxPath, err)
	}
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	type ordered struct {
		order int
		rect  gamemath.Rect
	}
	var spawns []ordered
	var haveInset bool

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case groupBoundary:
			for _, o := range og.Objects {
				a.Boundaries = append(a.Boundaries, Boundary{
					Name: o.Name,
					Rect: gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
				})
			}
		case groupSpawn:
			for _, o := range og.Objects {
				r := gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				if o.Name == insetName {
					a.Inset = r
					haveInset = true
					continue
				}
				spawns = append(spawns, ordered{order: o.Properties.GetInt("order"), rect: r})
			}
		}
	}

	if len(a.Boundaries) == 0 {
		return nil, fmt.Errorf("arena %s: no %q objects", a.Name, groupBoundary)
	}
	if len(spawns) == 0 {
		return nil, fmt.Errorf("arena %s: no %q regions", a.Name, groupSpawn)
	}

	sort.SliceStable(spawns, func(i, j int) bool {
		return spawns[i].order < spawns[j].order
	})
	for _, s := range spawns {
		a.Spawns = append(a.Spawns, s.rect)
	}
	if !haveInset {
		a.Inset = a.Spawns[0]
	}

	return a, nil
}

// Offset returns the translation that centres the arena inside a viewport of
// viewW×viewH whose top band of height top is reserved.
func (a *Arena) Offset(viewW, viewH, top float64) (dx, dy float64) {
	dx = (viewW - a.Width) / 2
	dy = top + (viewH-top-a.Height)/2
	return dx, dy
}

// Bounds is the logical area.
func (a *Arena) Bounds() gamemath.Rect {
	return gamemath.Rect{W: a.Width, H: a.Height}
}
