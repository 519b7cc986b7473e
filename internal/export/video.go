package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// Video streams frames into an MJPEG AVI file.
type Video struct {
	aw     mjpeg.AviWriter
	buf    bytes.Buffer
	opts   jpeg.Options
	frames int
}

// NewVideo creates the file at path. All frames must be width×height.
func NewVideo(path string, width, height, fps int) (*Video, error) {
	aw, err := mjpeg.New(path, int32(width), int32(height), int32(max(fps, 1)))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &Video{aw: aw, opts: jpeg.Options{Quality: 90}}, nil
}

func (v *Video) Add(img image.Image) error {
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &v.opts); err != nil {
		return err
	}
	if err := v.aw.AddFrame(v.buf.Bytes()); err != nil {
		return err
	}
	v.frames++
	return nil
}

func (v *Video) Frames() int { return v.frames }

func (v *Video) Close() error {
	return v.aw.Close()
}
