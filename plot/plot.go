// Package plot renders shapes as before/after comparison plots, the
// visual collaborator of the transformation core. Output is PNG: axes
// through the world origin, a unit grid, closed polygon outlines (or
// square markers for isolated points), a title and a legend of shape
// labels.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"transform2d/geom"
	"transform2d/observability"
)

// Renderer rasterizes shapes onto a fixed-size canvas. The zero value is
// not usable; call NewRenderer.
type Renderer struct {
	Width    int
	Height   int
	Margin   int     // pixels reserved on every side
	GridStep float64 // world units between grid lines
	Logger   observability.Logger
}

// NewRenderer returns a renderer with the default 640x640 canvas.
func NewRenderer() *Renderer {
	return &Renderer{
		Width:    640,
		Height:   640,
		Margin:   48,
		GridStep: 1,
		Logger:   observability.NopLogger{},
	}
}

var (
	colOriginal    = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	colTransformed = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	colAxis        = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colGrid        = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	colText        = color.RGBA{R: 20, G: 20, B: 20, A: 255}

	// Step palette for sequence plots, darkest last.
	stepPalette = []color.RGBA{
		{R: 68, G: 1, B: 84, A: 255},
		{R: 49, G: 104, B: 142, A: 255},
		{R: 53, G: 183, B: 121, A: 255},
		{R: 253, G: 231, B: 37, A: 255},
	}
)

type series struct {
	shape  geom.Shape
	col    color.RGBA
	dashed bool
	label  string
}

// RenderComparison draws the original and transformed shapes on one
// canvas and writes the PNG to w.
func (r *Renderer) RenderComparison(w io.Writer, title string, original, transformed geom.Shape) error {
	return r.render(w, title, []series{
		{shape: original, col: colOriginal, label: original.Label()},
		{shape: transformed, col: colTransformed, dashed: true, label: transformed.Label()},
	})
}

// RenderSequence draws every stage of a transformation chain. Steps keep
// their order; later steps are drawn on top.
func (r *Renderer) RenderSequence(w io.Writer, title string, steps []geom.Shape) error {
	if len(steps) == 0 {
		return fmt.Errorf("%w: sequence plot needs at least one shape", geom.ErrInvalidArgument)
	}
	ss := make([]series, len(steps))
	for i, s := range steps {
		ss[i] = series{
			shape:  s,
			col:    stepPalette[i%len(stepPalette)],
			dashed: i > 0,
			label:  s.Label(),
		}
	}
	return r.render(w, title, ss)
}

// viewport maps world coordinates to canvas pixels with equal aspect and
// a flipped y-axis.
type viewport struct {
	minX, minY float64
	scale      float64
	offX, offY float64
	height     int
}

func (v viewport) toPixel(p geom.Point) (float32, float32) {
	x := v.offX + (p.X-v.minX)*v.scale
	y := v.offY + (p.Y-v.minY)*v.scale
	return float32(x), float32(float64(v.height) - y)
}

func (r *Renderer) fitViewport(ss []series) viewport {
	// Bounds over every shape, always including the world origin so the
	// axes stay on canvas.
	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	for _, s := range ss {
		for _, p := range s.shape.Points() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	// One world unit of breathing room.
	minX, minY = minX-1, minY-1
	maxX, maxY = maxX+1, maxY+1

	spanX := maxX - minX
	spanY := maxY - minY
	availW := float64(r.Width - 2*r.Margin)
	availH := float64(r.Height - 2*r.Margin)
	scale := math.Min(availW/spanX, availH/spanY)

	return viewport{
		minX:   minX,
		minY:   minY,
		scale:  scale,
		offX:   float64(r.Margin) + (availW-spanX*scale)/2,
		offY:   float64(r.Margin) + (availH-spanY*scale)/2,
		height: r.Height,
	}
}

func (r *Renderer) render(w io.Writer, title string, ss []series) error {
	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	vp := r.fitViewport(ss)
	r.drawGrid(img, vp)
	r.drawAxes(img, vp)

	for _, s := range ss {
		r.drawSeries(img, vp, s)
	}

	r.drawString(img, title, r.Margin, 20, colText)
	r.drawLegend(img, ss)

	for _, s := range ss {
		r.Logger.Debug("series drawn",
			observability.String("label", s.label),
			observability.Int(observability.MetricShapePoints, s.shape.Len()),
		)
	}
	return png.Encode(w, img)
}

func (r *Renderer) drawGrid(img *image.RGBA, vp viewport) {
	if r.GridStep <= 0 {
		return
	}
	maxX := vp.minX + float64(r.Width)/vp.scale
	maxY := vp.minY + float64(r.Height)/vp.scale
	for x := math.Ceil(vp.minX/r.GridStep) * r.GridStep; x <= maxX; x += r.GridStep {
		px, _ := vp.toPixel(geom.Point{X: x, Y: vp.minY})
		fillRect(img, int(px), 0, int(px)+1, r.Height, colGrid)
	}
	for y := math.Ceil(vp.minY/r.GridStep) * r.GridStep; y <= maxY; y += r.GridStep {
		_, py := vp.toPixel(geom.Point{X: vp.minX, Y: y})
		fillRect(img, 0, int(py), r.Width, int(py)+1, colGrid)
	}
}

func (r *Renderer) drawAxes(img *image.RGBA, vp viewport) {
	ox, oy := vp.toPixel(geom.Point{})
	fillRect(img, int(ox), 0, int(ox)+1, r.Height, colAxis)
	fillRect(img, 0, int(oy), r.Width, int(oy)+1, colAxis)
}

func (r *Renderer) drawSeries(img *image.RGBA, vp viewport, s series) {
	points := s.shape.Points()

	if len(points) > 1 {
		z := vector.NewRasterizer(r.Width, r.Height)
		// Close the polygon by returning to the first vertex.
		for i := range points {
			x0, y0 := vp.toPixel(points[i])
			x1, y1 := vp.toPixel(points[(i+1)%len(points)])
			if s.dashed {
				strokeDashed(z, x0, y0, x1, y1, 1.2, 6, 4)
			} else {
				strokeSegment(z, x0, y0, x1, y1, 1.2)
			}
		}
		z.Draw(img, img.Bounds(), image.NewUniform(s.col), image.Point{})
	}

	// Vertex markers; an isolated point gets only its marker.
	for _, p := range points {
		x, y := vp.toPixel(p)
		const m = 3
		fillRect(img, int(x)-m, int(y)-m, int(x)+m+1, int(y)+m+1, s.col)
	}
}

func (r *Renderer) drawLegend(img *image.RGBA, ss []series) {
	y := 40
	for _, s := range ss {
		fillRect(img, r.Margin, y-8, r.Margin+10, y+2, s.col)
		r.drawString(img, s.label, r.Margin+16, y, colText)
		y += 16
	}
}

func (r *Renderer) drawString(img *image.RGBA, s string, x, y int, col color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// strokeSegment adds a filled quad covering the segment with half-width
// hw to the rasterizer's path.
func strokeSegment(z *vector.Rasterizer, x0, y0, x1, y1, hw float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx := -dy / length * hw
	ny := dx / length * hw
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// strokeDashed draws the segment as alternating on/off runs.
func strokeDashed(z *vector.Rasterizer, x0, y0, x1, y1, hw, on, off float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for start := float32(0); start < length; start += on + off {
		end := start + on
		if end > length {
			end = length
		}
		strokeSegment(z, x0+ux*start, y0+uy*start, x0+ux*end, y0+uy*end, hw)
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	b := img.Bounds()
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if x1 > b.Max.X {
		x1 = b.Max.X
	}
	if y1 > b.Max.Y {
		y1 = b.Max.Y
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}
