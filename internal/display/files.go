package display

import (
	"context"
	"fmt"
	"image/png"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/quarkviz/internal/export"
	"github.com/san-kum/quarkviz/internal/quantum"
)

// Output file names.
const (
	PlasmaFile   = "plasma.png"
	WalkFile     = "neutrino.png"
	WalkSVGFile  = "neutrino.svg"
	FieldGIFFile = "darkmatter.gif"
	FieldAVIFile = "darkmatter.avi"
)

// Files writes every visualization into a directory.
type Files struct {
	dir      string
	interval time.Duration
	closed   bool
	written  []string
}

func NewFiles(dir string, interval time.Duration) (*Files, error) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Files{dir: dir, interval: interval}, nil
}

// Written lists the files created so far.
func (f *Files) Written() []string { return f.written }

func (f *Files) path(name string) string {
	p := filepath.Join(f.dir, name)
	f.written = append(f.written, p)
	return p
}

func (f *Files) ShowGrid(_ context.Context, g quantum.Grid) error {
	if f.closed {
		return quantum.ErrDisplayClosed
	}
	img := export.PlasmaImage(g, export.PlasmaScale(g.Size(), 600))
	return writeFile(f.path(PlasmaFile), func(file *os.File) error {
		return png.Encode(file, img)
	})
}

func (f *Files) ShowPath(_ context.Context, p quantum.Path) error {
	if f.closed {
		return quantum.ErrDisplayClosed
	}
	err := writeFile(f.path(WalkFile), func(file *os.File) error {
		return export.RenderPNG(export.WalkChart(p), file)
	})
	if err != nil {
		return err
	}
	svg := export.PathToSVG(p, export.ChartWidth, export.ChartHeight, "purple")
	return os.WriteFile(f.path(WalkSVGFile), []byte(svg), 0644)
}

// Animate renders each frame with go-chart and appends it to both a GIF
// and an MJPEG video. Nothing is written for an empty sequence.
func (f *Files) Animate(ctx context.Context, frames iter.Seq[quantum.Frame]) error {
	if f.closed {
		return quantum.ErrDisplayClosed
	}
	anim := export.NewAnimation(int(f.interval / (10 * time.Millisecond)))
	var video *export.Video
	defer func() {
		if video != nil {
			video.Close()
		}
	}()

	for fr := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := export.RenderImage(export.FieldChart(fr))
		if err != nil {
			return fmt.Errorf("frame %d: %w", fr.Index, err)
		}
		if video == nil {
			b := img.Bounds()
			fps := int(time.Second / f.interval)
			if video, err = export.NewVideo(f.path(FieldAVIFile), b.Dx(), b.Dy(), fps); err != nil {
				return err
			}
		}
		if err := video.Add(img); err != nil {
			return fmt.Errorf("frame %d: %w", fr.Index, err)
		}
		anim.Add(img)
	}

	if video != nil {
		err := video.Close()
		video = nil
		if err != nil {
			return err
		}
	}
	if anim.Len() == 0 {
		return nil
	}
	return writeFile(f.path(FieldGIFFile), func(file *os.File) error {
		return anim.Encode(file)
	})
}

func (f *Files) Close() error {
	f.closed = true
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}
