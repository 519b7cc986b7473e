package export

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/quarkviz/internal/quantum"
)

const (
	PlasmaTitle = "Quark-Gluon Plasma Simulation"
	titleBand   = 24
)

// PlasmaRGB maps a grid onto a size×size×3 array of channel intensities.
func PlasmaRGB(g quantum.Grid) [][][3]float64 {
	n := g.Size()
	img := make([][][3]float64, n)
	for r := 0; r < n; r++ {
		img[r] = make([][3]float64, n)
		for c := 0; c < n; c++ {
			img[r][c] = g.At(r, c).RGB()
		}
	}
	return img
}

// PlasmaPixels returns the PlasmaRGB array as an image with one pixel per cell.
func PlasmaPixels(g quantum.Grid) *image.RGBA {
	rgb := PlasmaRGB(g)
	img := image.NewRGBA(image.Rect(0, 0, len(rgb), len(rgb)))
	for r, row := range rgb {
		for c, px := range row {
			img.SetRGBA(c, r, color.RGBA{R: channel(px[0]), G: channel(px[1]), B: channel(px[2]), A: 255})
		}
	}
	return img
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

// PlasmaImage upscales the grid so each cell covers scale×scale pixels and
// puts the title above it. No axes are drawn.
func PlasmaImage(g quantum.Grid, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	side := g.Size() * scale
	width := max(side, textWidth(PlasmaTitle)+16)
	img := image.NewRGBA(image.Rect(0, 0, width, side+titleBand))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)

	dst := image.Rect((width-side)/2, titleBand, (width-side)/2+side, titleBand+side)
	xdraw.NearestNeighbor.Scale(img, dst, PlasmaPixels(g), image.Rect(0, 0, g.Size(), g.Size()), xdraw.Src, nil)

	addLabel(img, (width-textWidth(PlasmaTitle))/2, titleBand-7, PlasmaTitle, color.Black)
	return img
}

// PlasmaScale picks a cell scale that makes the grid roughly target pixels wide.
func PlasmaScale(size, target int) int {
	if size <= 0 {
		return 1
	}
	return max(target/size, 1)
}
