package systems

import (
	"github.com/automoto/kyra-copper/assets"
	"github.com/automoto/kyra-copper/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// textureCache holds the GPU copy of each loaded texture. An entry is
// replaced when the texture's version changes after a reload.
type cachedTexture struct {
	version int
	image   *ebiten.Image
	frames  map[int]*ebiten.Image
}

var textureCache = make(map[*assets.Texture]*cachedTexture)

func cachedImage(tex *assets.Texture) *cachedTexture {
	if !tex.Ready() {
		return nil
	}
	c, ok := textureCache[tex]
	if ok && c.version == tex.Version() {
		return c
	}
	if ok {
		c.image.Deallocate()
	}
	c = &cachedTexture{
		version: tex.Version(),
		image:   ebiten.NewImageFromImage(tex.Image()),
		frames:  make(map[int]*ebiten.Image),
	}
	textureCache[tex] = c
	return c
}

// textureImage returns the whole texture, or nil while it is not loaded.
func textureImage(tex *assets.Texture) *ebiten.Image {
	c := cachedImage(tex)
	if c == nil {
		return nil
	}
	return c.image
}

// frameImage returns cell i of an atlas, or nil while its texture is not
// loaded or the cell is outside the sheet.
func frameImage(atlas *assets.Atlas, i int) *ebiten.Image {
	if !atlas.Ready() {
		return nil
	}
	c := cachedImage(atlas.Texture)
	if img, ok := c.frames[i]; ok {
		return img
	}
	rect, ok := atlas.Rect(i)
	if !ok || !rect.In(c.image.Bounds()) {
		return nil
	}
	img := c.image.SubImage(rect).(*ebiten.Image)
	c.frames[i] = img
	return img
}

func worldToScreen(camera *components.CameraData, width, height int, x, y float64) (float64, float64) {
	return x - camera.Position.X + float64(width)/2, float64(height)/2 - (y - camera.Position.Y)
}

// DrawAnimated renders every character's current frame centered on its
// position. Characters whose sheet is still loading are skipped.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		img := frameImage(sprite.Atlas, sprite.Frame)
		if img == nil {
			return
		}
		pos := components.Position.Get(e)
		sx, sy := worldToScreen(camera, width, height, pos.X, pos.Y)

		facing := sprite.Facing
		if facing == 0 {
			facing = 1
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(sprite.Atlas.CellWidth)/2, -float64(sprite.Atlas.CellHeight)/2)
		drawOp.GeoM.Scale(facing*sprite.Scale, sprite.Scale)
		drawOp.GeoM.Translate(sx, sy)
		screen.DrawImage(img, drawOp)
	})
}
