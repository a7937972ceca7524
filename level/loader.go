package level

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/mottasm/rollick/physics"
)

// Tile properties understood by the loader:
//
//	kind  "" (solid) or "cloud" (one-way platform)
//	slope "", "45_up_right" or "45_up_left"
//	layer "", "green" or "yellow"
const (
	kindCloud    = "cloud"
	slopeUpRight = "45_up_right"
	slopeUpLeft  = "45_up_left"
)

// Load parses a TMX file and builds the level's obstacles and spawn
// points. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	tmx, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  tmx.Width * tmx.TileWidth,
		Height: tmx.Height * tmx.TileHeight,
	}

	tileW, tileH := tmx.TileWidth, tmx.TileHeight
	for _, layer := range tmx.Layers {
		for y := 0; y < tmx.Height; y++ {
			for x := 0; x < tmx.Width; x++ {
				tile := layer.Tiles[y*tmx.Width+x]
				if tile.IsNil() {
					continue
				}

				var kind, slope, obstacleLayer string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					kind = tilesetTile.Properties.GetString("kind")
					slope = tilesetTile.Properties.GetString("slope")
					obstacleLayer = tilesetTile.Properties.GetString("layer")
				}

				lvl.Obstacles = append(lvl.Obstacles, buildObstacle(
					x*tileW, y*tileH, tileW, tileH,
					kind, slope, obstacleLayer,
				))
			}
		}
	}

	for _, og := range tmx.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			lvl.Spawns = append(lvl.Spawns, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	// sort spawns for a deterministic pick
	sort.Slice(lvl.Spawns, func(i, j int) bool {
		if lvl.Spawns[i].Index != lvl.Spawns[j].Index {
			return lvl.Spawns[i].Index < lvl.Spawns[j].Index
		}
		return lvl.Spawns[i].X < lvl.Spawns[j].X
	})

	return lvl, nil
}

func buildObstacle(x, y, w, h int, kind, slope, layerName string) *physics.Obstacle {
	solid := kind != kindCloud
	layer := parseLayer(layerName)

	switch slope {
	case slopeUpRight:
		mask := make([]int, w)
		for i := range mask {
			mask[i] = 1 + i*h/w
		}
		return physics.NewMaskedObstacle(x, y, w, h, solid, layer, mask)
	case slopeUpLeft:
		mask := make([]int, w)
		for i := range mask {
			mask[i] = 1 + (w-1-i)*h/w
		}
		return physics.NewMaskedObstacle(x, y, w, h, solid, layer, mask)
	}
	return physics.NewObstacle(x, y, w, h, solid, layer)
}

func parseLayer(name string) physics.Layer {
	switch name {
	case "green":
		return physics.LayerGreen
	case "yellow":
		return physics.LayerYellow
	}
	return physics.LayerDefault
}

// LoadAll discovers every .tmx file in a directory and loads each one,
// returning the levels keyed by stem name plus the sorted name list.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		lvl, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}
	sort.Strings(names)
	return levels, names, nil
}
