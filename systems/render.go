package systems

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/silentvalley/platformer/assets"
	"github.com/silentvalley/platformer/components"
	cfg "github.com/silentvalley/platformer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	// missing textures are reported once
	missingTextures = map[string]bool{}
)

// Viewport culling skips entities that are off-screen. A small padding
// keeps sprites from popping in at the edges.
const cullPadding = 64.0

type viewport struct {
	camX, camY    float64
	width, height float64
}

func viewportOf(e *ecs.ECS, screen *ebiten.Image) (viewport, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return viewport{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return viewport{
		camX:   camera.Position.X,
		camY:   camera.Position.Y,
		width:  float64(screen.Bounds().Dx()),
		height: float64(screen.Bounds().Dy()),
	}, true
}

// toScreen maps a y-up world point to y-down screen pixels.
func (v viewport) toScreen(x, y float64) (float64, float64) {
	return x - v.camX, v.height - (y - v.camY)
}

func (v viewport) visible(o components.ObjectData) bool {
	return o.Right() >= v.camX-cullPadding &&
		o.Left() <= v.camX+v.width+cullPadding &&
		o.Top() >= v.camY-cullPadding &&
		o.Bottom() <= v.camY+v.height+cullPadding
}

func texture(path string) *ebiten.Image {
	img, err := assets.GetImage(path)
	if err != nil {
		if !missingTextures[path] {
			missingTextures[path] = true
			log.Warn("missing texture", "path", path, "err", err)
		}
		return nil
	}
	return img
}

// DrawLevel fills the sky and draws the pre-rendered tile layers.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Current == nil {
		return
	}

	if level.Current.Background != nil {
		screen.Fill(level.Current.Background)
	} else {
		screen.Fill(cfg.Level.BackgroundColor)
	}

	v, ok := viewportOf(e, screen)
	if !ok || level.Background == nil {
		return
	}

	// The rendered map is y-down; its top edge sits at the level height.
	x, y := v.toScreen(0, level.Current.Height)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(level.Current.Scale, level.Current.Scale)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(level.Background, drawOp)
}

// DrawSprites stretches static textures over coins and moving platforms.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewportOf(e, screen)
	if !ok {
		return
	}

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if !v.visible(*o) {
			return
		}
		img := texture(components.Sprite.Get(entry).Path)
		if img == nil {
			return
		}

		x, y := v.toScreen(o.Left(), o.Top())
		b := img.Bounds()
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(o.W/float64(b.Dx()), o.H/float64(b.Dy()))
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	})
}

// DrawAnimated renders the player and enemies with their current frame,
// mirrored when facing left.
func DrawAnimated(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewportOf(e, screen)
	if !ok {
		return
	}

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		if !v.visible(*o) {
			return
		}

		anim := components.Animation.Get(entry)
		img := texture(TexturePath(anim))
		if img == nil {
			img = texture(cfg.AnimationSets[anim.Set].Idle)
		}
		if img == nil {
			return
		}

		cx, cy := o.Position()
		x, y := v.toScreen(cx, cy)
		b := img.Bounds()
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		drawOp.GeoM.Scale(anim.Facing.Multiplier()*anim.Scale, anim.Scale)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	})
}
