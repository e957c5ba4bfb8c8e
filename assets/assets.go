package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	cfg "github.com/automoto/flowerhop/config"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// CoursePath is the embedded default layout
const CoursePath = "levels/course.tmx"

// FlowerSlot is the centre of one pooled flower in the starting layout
type FlowerSlot struct {
	X, Y    float64
	Slot    int
	Variant int
}

// Course is the starting layout of a run: where the flower pool sits and
// where the player rests before the first press.
type Course struct {
	Name    string
	Width   int
	Height  int
	Flowers []FlowerSlot
	SpawnX  float64
	SpawnY  float64
}

// DefaultCourse builds the layout from configuration alone. Flowers sit
// Spacing apart starting at StartX, all at StartY, and the player rests on slot 0.
func DefaultCourse() *Course {
	c := &Course{
		Name:   "default",
		Width:  cfg.C.Width,
		Height: cfg.C.Height,
		SpawnX: cfg.Flowers.StartX,
		SpawnY: cfg.PlayerStartY(cfg.Flowers.StartY),
	}
	for i := 0; i < cfg.Flowers.Count; i++ {
		c.Flowers = append(c.Flowers, FlowerSlot{
			X:       cfg.Flowers.StartX + float64(i)*cfg.Flowers.Spacing,
			Y:       cfg.Flowers.StartY,
			Slot:    i,
			Variant: i % max(cfg.Flowers.Variants, 1),
		})
	}
	return c
}

// LoadDefaultCourse loads the embedded course.
func LoadDefaultCourse() (*Course, error) {
	return LoadCourse(assetFS, CoursePath)
}

// LoadCourse parses a Tiled map. Rectangles in the "Flowers" object group
// become pool slots, ordered by their "slot" property; the first rectangle
// in "PlayerSpawn" is the resting position. Object coordinates are top-left
// in Tiled and converted to centres here.
func LoadCourse(fsys fs.FS, path string) (*Course, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load course %s: %w", path, err)
	}

	course := &Course{
		Name:   path,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Flowers":
			for _, o := range og.Objects {
				course.Flowers = append(course.Flowers, FlowerSlot{
					X:       o.X + o.Width/2,
					Y:       o.Y + o.Height/2,
					Slot:    o.Properties.GetInt("slot"),
					Variant: o.Properties.GetInt("variant"),
				})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 && !spawnFound {
				o := og.Objects[0]
				course.SpawnX = o.X + o.Width/2
				course.SpawnY = o.Y + o.Height/2
				spawnFound = true
			}
		}
	}

	if len(course.Flowers) == 0 {
		return nil, fmt.Errorf("course %s has no flowers", path)
	}
	if !spawnFound {
		return nil, fmt.Errorf("course %s has no player spawn", path)
	}

	sort.SliceStable(course.Flowers, func(i, j int) bool {
		return course.Flowers[i].Slot < course.Flowers[j].Slot
	})
	for i := range course.Flowers {
		course.Flowers[i].Slot = i
	}

	return course, nil
}
