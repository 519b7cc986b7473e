package export

import (
	"image"
	"image/color/palette"
	"image/gif"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Animation accumulates frames for a looping GIF.
type Animation struct {
	anim gif.GIF
	// Delay is the per-frame delay in 100ths of a second.
	Delay int
}

func NewAnimation(delay int) *Animation {
	return &Animation{anim: gif.GIF{LoopCount: 0}, Delay: max(delay, 1)}
}

// Add quantises img onto the web-safe palette and appends it.
func (a *Animation) Add(img image.Image) {
	b := img.Bounds()
	p := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.WebSafe)
	xdraw.Draw(p, p.Bounds(), img, b.Min, xdraw.Src)
	a.anim.Image = append(a.anim.Image, p)
	a.anim.Delay = append(a.anim.Delay, a.Delay)
}

func (a *Animation) Len() int { return len(a.anim.Image) }

// Encode writes the animation. An animation without frames writes nothing.
func (a *Animation) Encode(w io.Writer) error {
	if len(a.anim.Image) == 0 {
		return nil
	}
	return gif.EncodeAll(w, &a.anim)
}
