// Package snapshot renders frames offscreen with gg and saves them as images.
package snapshot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// ImageCanvas is a ui.Canvas backed by an in-memory RGBA image.
type ImageCanvas struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[int]font.Face
}

func NewImageCanvas(width, height int) (*ImageCanvas, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &ImageCanvas{
		dc:    gg.NewContext(width, height),
		font:  f,
		faces: make(map[int]font.Face),
	}, nil
}

// face caches one font face per pixel size.
func (c *ImageCanvas) face(size int) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(c.font, &truetype.Options{Size: float64(size), DPI: 72})
	c.faces[size] = f
	return f
}

func (c *ImageCanvas) Clear(col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

func (c *ImageCanvas) FillRect(x, y, w, h int, col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

func (c *ImageCanvas) Line(x1, y1, x2, y2 int, col color.RGBA) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(1)
	// Pixel centres, so a 1px line covers exactly one row or column.
	c.dc.DrawLine(float64(x1)+0.5, float64(y1)+0.5, float64(x2)+0.5, float64(y2)+0.5)
	c.dc.Stroke()
}

func (c *ImageCanvas) Text(s string, x, y, size int, col color.RGBA) {
	c.dc.SetFontFace(c.face(size))
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, float64(x), float64(y), 0, 1)
}

func (c *ImageCanvas) MeasureText(s string, size int) (int, int) {
	c.dc.SetFontFace(c.face(size))
	w, h := c.dc.MeasureString(s)
	return int(w), int(h)
}

func (c *ImageCanvas) Image() image.Image {
	return c.dc.Image()
}

// Save writes the image, picking the format from the file extension.
func (c *ImageCanvas) Save(path string) error {
	if err := imaging.Save(c.dc.Image(), path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}
