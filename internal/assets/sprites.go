// internal/assets/sprites.go
package assets

import (
	"embed"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"go-turret-sentinel/internal/component"
	"go-turret-sentinel/internal/config"
)

//go:embed svg/*.svg
var svgFS embed.FS

// ImageSet holds every sprite as a plain image.
type ImageSet struct {
	Turret    [3]*image.RGBA // indexed by component.Mode
	Base      *image.RGBA
	Mobs      []*image.RGBA
	Debris    *image.RGBA
	Steam     []*image.RGBA
	Explosion []*image.RGBA
}

// SpriteSet is ImageSet uploaded as ebiten images.
type SpriteSet struct {
	Turret    [3]*ebiten.Image
	Base      *ebiten.Image
	Mobs      []*ebiten.Image
	Debris    *ebiten.Image
	Steam     []*ebiten.Image
	Explosion []*ebiten.Image
}

func loadSVG(name string, w, h int) (*image.RGBA, error) {
	data, err := svgFS.ReadFile("svg/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite %s: %w", name, err)
	}
	img, err := Rasterize(data, w, h)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize sprite %s: %w", name, err)
	}
	return img, nil
}

// Decode rasterizes every sprite. Any failure is fatal to the caller.
func Decode() (*ImageSet, error) {
	set := &ImageSet{}
	var err error

	turrets := map[component.Mode]string{
		component.ModeSearching: "turret_sentinel.svg",
		component.ModeAlert:     "turret_alert.svg",
		component.ModeFiring:    "turret_fire.svg",
	}
	for mode, name := range turrets {
		if set.Turret[mode], err = loadSVG(name, config.TurretWidth, config.TurretHeight); err != nil {
			return nil, err
		}
	}
	if set.Base, err = loadSVG("turret_base.svg", config.BaseSize, config.BaseSize); err != nil {
		return nil, err
	}
	for i := 1; i <= config.MobVariants; i++ {
		img, err := loadSVG(fmt.Sprintf("mob_%d.svg", i), config.MobSize, config.MobSize)
		if err != nil {
			return nil, err
		}
		set.Mobs = append(set.Mobs, img)
	}
	if set.Debris, err = loadSVG("destroyed.svg", config.MobSize, config.MobSize); err != nil {
		return nil, err
	}

	for i := 0; i < config.SteamFrames; i++ {
		img, err := Rasterize(steamFrame(i, config.SteamFrames, config.SteamWidth, config.SteamHeight), config.SteamWidth, config.SteamHeight)
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize steam frame %d: %w", i, err)
		}
		set.Steam = append(set.Steam, img)
	}
	for i := 0; i < config.ExplosionFrames; i++ {
		img, err := Rasterize(explosionFrame(i, config.ExplosionFrames, config.BlastSize), config.BlastSize, config.BlastSize)
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize explosion frame %d: %w", i, err)
		}
		set.Explosion = append(set.Explosion, img)
	}
	return set, nil
}

// Load decodes every sprite and uploads it to the GPU.
func Load() (*SpriteSet, error) {
	set, err := Decode()
	if err != nil {
		return nil, err
	}

	sprites := &SpriteSet{
		Base:   ebiten.NewImageFromImage(set.Base),
		Debris: ebiten.NewImageFromImage(set.Debris),
	}
	for i, img := range set.Turret {
		sprites.Turret[i] = ebiten.NewImageFromImage(img)
	}
	sprites.Mobs = toEbiten(set.Mobs)
	sprites.Steam = toEbiten(set.Steam)
	sprites.Explosion = toEbiten(set.Explosion)

	log.Printf("Assets: %d mob variants, %d steam and %d explosion frames loaded",
		len(sprites.Mobs), len(sprites.Steam), len(sprites.Explosion))
	return sprites, nil
}

func toEbiten(imgs []*image.RGBA) []*ebiten.Image {
	out := make([]*ebiten.Image, len(imgs))
	for i, img := range imgs {
		out[i] = ebiten.NewImageFromImage(img)
	}
	return out
}
