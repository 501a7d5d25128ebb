package assets

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/silentvalley/platformer/config"
)

// Layer names used in the level maps.
const (
	LayerPlatforms       = "Platforms"
	LayerMovingPlatforms = "Moving Platforms"
	LayerCoins           = "Coins"
	LayerDeath           = "Death"
	LayerEnemies         = "Enemies"
)

// Rect is an axis aligned box in y-up world space. X and Y are the
// bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// scaledAboutCenter resizes r to w x h keeping its center.
func (r Rect) scaledAboutCenter(w, h float64) Rect {
	return Rect{
		X: r.X + (r.W-w)/2,
		Y: r.Y + (r.H-h)/2,
		W: w,
		H: h,
	}
}

// PatrolBounds limits horizontal movement. A missing side is open and holds
// an infinity.
type PatrolBounds struct {
	Left, Right float64
}

func (p PatrolBounds) valid() bool {
	return p.Left <= p.Right
}

type EnemySpawn struct {
	// X is the horizontal center, Bottom the feet of the sprite.
	X, Bottom float64
	Kind      string
	ChangeX   float64
	Patrol    *PatrolBounds
}

type MovingPlatformSpawn struct {
	Rect
	ChangeX, ChangeY float64
	// Horizontal holds left/right bounds, Vertical holds bottom/top.
	Horizontal *PatrolBounds
	Vertical   *PatrolBounds
}

type Level struct {
	Name   string
	Path   string
	Width  float64
	Height float64
	Scale  float64

	Background color.Color

	Walls           []Rect
	Coins           []Rect
	Hazards         []Rect
	Enemies         []EnemySpawn
	MovingPlatforms []MovingPlatformSpawn

	tmx  *tiled.Map
	fsys fs.FS
}

// LevelPath is the bundle path of the numbered level map.
func LevelPath(n int) string {
	return fmt.Sprintf(config.Level.MapPathFormat, n)
}

// LevelExists reports whether the numbered level ships in fsys.
func LevelExists(fsys fs.FS, n int) bool {
	_, err := fs.Stat(fsys, LevelPath(n))
	return err == nil
}

// LoadLevel parses a Tiled map into world-space collision data. Tile and
// object coordinates are multiplied by scale and flipped so that y grows
// upwards from the bottom of the map.
func LoadLevel(fsys fs.FS, path string, scale float64) (*Level, error) {
	if _, err := fs.Stat(fsys, path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("level %s: %w", path, ErrResourceNotFound)
		}
		return nil, fmt.Errorf("level %s: %w", path, err)
	}

	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	mapH := float64(levelMap.Height) * tileH

	level := &Level{
		Name:   path,
		Path:   path,
		Width:  float64(levelMap.Width) * tileW * scale,
		Height: mapH * scale,
		Scale:  scale,
		tmx:    levelMap,
		fsys:   fsys,
	}
	if levelMap.BackgroundColor != nil {
		level.Background = levelMap.BackgroundColor
	}

	var hasPlatforms, hasEnemies bool

	for _, layer := range levelMap.Layers {
		var dst *[]Rect
		switch layer.Name {
		case LayerPlatforms:
			hasPlatforms = true
			dst = &level.Walls
		case LayerCoins:
			dst = &level.Coins
		case LayerDeath:
			dst = &level.Hazards
		default:
			continue
		}

		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				r := Rect{
					X: float64(x) * tileW * scale,
					Y: float64(levelMap.Height-1-y) * tileH * scale,
					W: tileW * scale,
					H: tileH * scale,
				}
				if layer.Name == LayerCoins {
					r = r.scaledAboutCenter(tileW*config.Level.CoinScale, tileH*config.Level.CoinScale)
				}
				*dst = append(*dst, r)
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case LayerEnemies:
			hasEnemies = true
			for _, o := range og.Objects {
				spawn, err := parseEnemy(o, mapH, scale)
				if err != nil {
					return nil, fmt.Errorf("level %s: enemy %d: %w", path, o.ID, err)
				}
				level.Enemies = append(level.Enemies, spawn)
			}
		case LayerMovingPlatforms:
			for _, o := range og.Objects {
				spawn, err := parsePlatform(o, mapH, scale)
				if err != nil {
					return nil, fmt.Errorf("level %s: platform %d: %w", path, o.ID, err)
				}
				level.MovingPlatforms = append(level.MovingPlatforms, spawn)
			}
		}
	}

	if !hasPlatforms {
		return nil, fmt.Errorf("level %s: missing %q layer: %w", path, LayerPlatforms, ErrInvalidLevelData)
	}
	if !hasEnemies {
		return nil, fmt.Errorf("level %s: missing %q layer: %w", path, LayerEnemies, ErrInvalidLevelData)
	}

	return level, nil
}

// objectRect converts a Tiled object to world space. Tile objects are
// anchored at their bottom edge, shapes at their top edge.
func objectRect(o *tiled.Object, mapH, scale float64) Rect {
	bottom := mapH - (o.Y + o.Height)
	if o.GID != 0 {
		bottom = mapH - o.Y
	}
	return Rect{
		X: o.X * scale,
		Y: bottom * scale,
		W: o.Width * scale,
		H: o.Height * scale,
	}
}

func parseEnemy(o *tiled.Object, mapH, scale float64) (EnemySpawn, error) {
	kind := o.Properties.GetString("type")
	if _, ok := config.Enemy.Types[kind]; !ok {
		return EnemySpawn{}, fmt.Errorf("unknown enemy type %q: %w", kind, ErrInvalidLevelData)
	}

	r := objectRect(o, mapH, scale)
	spawn := EnemySpawn{
		X:       r.X + r.W/2,
		Bottom:  r.Y,
		Kind:    kind,
		ChangeX: o.Properties.GetFloat("change_x"),
	}

	patrol, err := bounds(o.Properties, "boundary_left", "boundary_right")
	if err != nil {
		return EnemySpawn{}, err
	}
	spawn.Patrol = patrol
	return spawn, nil
}

func parsePlatform(o *tiled.Object, mapH, scale float64) (MovingPlatformSpawn, error) {
	spawn := MovingPlatformSpawn{
		Rect:    objectRect(o, mapH, scale),
		ChangeX: o.Properties.GetFloat("change_x"),
		ChangeY: o.Properties.GetFloat("change_y"),
	}

	var err error
	if spawn.Horizontal, err = bounds(o.Properties, "boundary_left", "boundary_right"); err != nil {
		return spawn, err
	}
	if spawn.Vertical, err = bounds(o.Properties, "boundary_bottom", "boundary_top"); err != nil {
		return spawn, err
	}
	return spawn, nil
}

// bounds reads a pair of boundary properties. Both missing means no bounds.
// Boundary values are world units.
func bounds(props tiled.Properties, low, high string) (*PatrolBounds, error) {
	_, hasLow := floatProperty(props, low)
	_, hasHigh := floatProperty(props, high)
	if !hasLow && !hasHigh {
		return nil, nil
	}

	b := &PatrolBounds{Left: math.Inf(-1), Right: math.Inf(1)}
	if v, ok := floatProperty(props, low); ok {
		b.Left = v
	}
	if v, ok := floatProperty(props, high); ok {
		b.Right = v
	}
	if !b.valid() {
		return nil, fmt.Errorf("%s %v > %s %v: %w", low, b.Left, high, b.Right, ErrInvalidLevelData)
	}
	return b, nil
}

func floatProperty(props tiled.Properties, name string) (float64, bool) {
	if len(props.Get(name)) == 0 {
		return 0, false
	}
	return props.GetFloat(name), true
}

// RenderBackground draws the static tile layers of the level once, decorative
// ones such as statues included. Coins are entities and are left out.
func RenderBackground(level *Level) (*ebiten.Image, error) {
	if level.tmx == nil {
		return nil, fmt.Errorf("level %s has no map: %w", level.Path, ErrInvalidLevelData)
	}

	renderer, err := render.NewRendererWithFileSystem(level.tmx, level.fsys)
	if err != nil {
		return nil, fmt.Errorf("renderer for %s: %w", level.Path, err)
	}

	for i, layer := range level.tmx.Layers {
		if layer.Name == LayerCoins {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Warn("failed to render layer", "level", level.Path, "layer", layer.Name, "err", err)
			continue
		}
	}

	return ebiten.NewImageFromImage(renderer.Result), nil
}
