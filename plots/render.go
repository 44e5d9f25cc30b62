package plots

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	marginLeft   = 56
	marginRight  = 16
	marginTop    = 28
	marginBottom = 40
	strokeWidth  = 2
	markerSize   = 5
)

var palette = []color.RGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
	{0xe3, 0x77, 0xc2, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff},
}

var (
	black = image.NewUniform(color.Black)
	gray  = image.NewUniform(color.Gray{Y: 0x99})
)

func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

type canvas struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	area   image.Rectangle
	xmin   float64
	xmax   float64
	ymin   float64
	ymax   float64
}

func (f *Figure) render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.size.Width, f.size.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	c := &canvas{
		img:    img,
		raster: vector.NewRasterizer(f.size.Width, f.size.Height),
		area: image.Rect(
			marginLeft,
			marginTop,
			max(marginLeft+1, f.size.Width-marginRight),
			max(marginTop+1, f.size.Height-marginBottom),
		),
	}
	c.raster.DrawOp = draw.Over
	c.fit(f.series)

	for i, s := range f.series {
		src := image.NewUniform(palette[i%len(palette)])
		switch s.kind {
		case lineSeries:
			for j := 1; j < len(s.xs); j++ {
				x0, y0 := c.project(s.xs[j-1], s.ys[j-1])
				x1, y1 := c.project(s.xs[j], s.ys[j])
				c.stroke(src, x0, y0, x1, y1)
			}
			if len(s.xs) == 1 {
				x, y := c.project(s.xs[0], s.ys[0])
				c.rect(src, x-markerSize/2, y-markerSize/2, x+markerSize/2, y+markerSize/2)
			}
		case pointSeries:
			for j := range s.xs {
				x, y := c.project(s.xs[j], s.ys[j])
				c.rect(src, x-markerSize/2, y-markerSize/2, x+markerSize/2, y+markerSize/2)
			}
		case barSeries:
			width := c.barWidth(s.xs)
			_, base := c.project(0, 0)
			for j := range s.xs {
				x, y := c.project(s.xs[j], s.ys[j])
				c.rect(src, x-width/2, min(y, base), x+width/2, max(y, base))
			}
		}
	}

	c.frame()
	c.ticks()
	c.legend(f.series)

	if f.title != "" {
		c.textCentered(f.title, (c.area.Min.X+c.area.Max.X)/2, marginTop-10)
	}
	if f.xlabel != "" {
		c.textCentered(f.xlabel, (c.area.Min.X+c.area.Max.X)/2, f.size.Height-6)
	}
	if f.ylabel != "" {
		c.text(f.ylabel, 4, marginTop-10)
	}

	return img
}

// fit computes the data ranges. Bars always include zero.
func (c *canvas) fit(all []series) {
	c.xmin, c.ymin = math.Inf(1), math.Inf(1)
	c.xmax, c.ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range all {
		for i := range s.xs {
			c.xmin = min(c.xmin, s.xs[i])
			c.xmax = max(c.xmax, s.xs[i])
			c.ymin = min(c.ymin, s.ys[i])
			c.ymax = max(c.ymax, s.ys[i])
		}
		if s.kind == barSeries && len(s.xs) > 0 {
			c.ymin = min(c.ymin, 0)
			c.ymax = max(c.ymax, 0)
			half := c.barSpacing(s.xs) / 2
			c.xmin -= half
			c.xmax += half
		}
	}
	if math.IsInf(c.xmin, 1) {
		c.xmin, c.xmax, c.ymin, c.ymax = 0, 1, 0, 1
	}
	if c.xmax == c.xmin {
		c.xmin -= 0.5
		c.xmax += 0.5
	}
	if c.ymax == c.ymin {
		c.ymin -= 0.5
		c.ymax += 0.5
	}
}

func (c *canvas) project(x, y float64) (float32, float32) {
	w := float64(c.area.Dx())
	h := float64(c.area.Dy())
	px := float64(c.area.Min.X) + (x-c.xmin)/(c.xmax-c.xmin)*w
	py := float64(c.area.Max.Y) - (y-c.ymin)/(c.ymax-c.ymin)*h
	return float32(px), float32(py)
}

// barSpacing is the smallest distance between two bar positions.
func (c *canvas) barSpacing(xs []float64) float64 {
	spacing := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		if d := math.Abs(xs[i] - xs[i-1]); d > 0 {
			spacing = min(spacing, d)
		}
	}
	if math.IsInf(spacing, 1) {
		return 1
	}
	return spacing
}

func (c *canvas) barWidth(xs []float64) float32 {
	x0, _ := c.project(0, 0)
	x1, _ := c.project(c.barSpacing(xs), 0)
	return max(1, (x1-x0)*0.8)
}

func (c *canvas) stroke(src image.Image, x0, y0, x1, y1 float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx := -dy / length * strokeWidth / 2
	ny := dx / length * strokeWidth / 2
	c.raster.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	c.raster.DrawOp = draw.Over
	c.raster.MoveTo(x0+nx, y0+ny)
	c.raster.LineTo(x1+nx, y1+ny)
	c.raster.LineTo(x1-nx, y1-ny)
	c.raster.LineTo(x0-nx, y0-ny)
	c.raster.ClosePath()
	c.raster.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

func (c *canvas) rect(src image.Image, x0, y0, x1, y1 float32) {
	c.raster.Reset(c.img.Bounds().Dx(), c.img.Bounds().Dy())
	c.raster.DrawOp = draw.Over
	c.raster.MoveTo(x0, y0)
	c.raster.LineTo(x1, y0)
	c.raster.LineTo(x1, y1)
	c.raster.LineTo(x0, y1)
	c.raster.ClosePath()
	c.raster.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

func (c *canvas) frame() {
	r := c.area
	left, top := float32(r.Min.X), float32(r.Min.Y)
	right, bottom := float32(r.Max.X), float32(r.Max.Y)
	c.rect(black, left, top, right, top+1)
	c.rect(black, left, bottom-1, right, bottom)
	c.rect(black, left, top, left+1, bottom)
	c.rect(black, right-1, top, right, bottom)
}

func (c *canvas) ticks() {
	r := c.area
	for _, v := range []float64{c.xmin, c.xmax} {
		x, _ := c.project(v, c.ymin)
		c.rect(gray, x-0.5, float32(r.Max.Y), x+0.5, float32(r.Max.Y+4))
		c.textCentered(formatTick(v), int(x), r.Max.Y+16)
	}
	for _, v := range []float64{c.ymin, c.ymax} {
		_, y := c.project(c.xmin, v)
		c.rect(gray, float32(r.Min.X-4), y-0.5, float32(r.Min.X), y+0.5)
		label := formatTick(v)
		width := font.MeasureString(basicfont.Face7x13, label).Ceil()
		c.text(label, r.Min.X-6-width, int(y)+4)
	}
}

func (c *canvas) legend(all []series) {
	y := c.area.Min.Y + 6
	for i, s := range all {
		if s.label == "" {
			continue
		}
		width := font.MeasureString(basicfont.Face7x13, s.label).Ceil()
		x := c.area.Max.X - 8 - width
		src := image.NewUniform(palette[i%len(palette)])
		c.rect(src, float32(x-14), float32(y), float32(x-4), float32(y+10))
		c.text(s.label, x, y+10)
		y += 16
	}
}

func (c *canvas) text(s string, x, y int) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (c *canvas) textCentered(s string, x, y int) {
	width := font.MeasureString(basicfont.Face7x13, s).Ceil()
	c.text(s, x-width/2, y)
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
