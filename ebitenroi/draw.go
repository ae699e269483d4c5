package ebitenroi

import (
	"image/color"
	"math"

	"github.com/phanxgames/roi"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled into lines and handle markers.
// Created on first draw so importing the package never touches the GPU.
var whitePixel *ebiten.Image

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Style controls how ROIs are drawn.
type Style struct {
	Outline     color.Color
	Hover       color.Color
	Active      color.Color
	Handle      color.Color
	LineWidth   float64 // pixels
	HandleSize  float64 // pixels
	HideHandles bool
}

// DefaultStyle returns a yellow outline with white handles.
func DefaultStyle() Style {
	return Style{
		Outline:    color.RGBA{R: 255, G: 220, B: 0, A: 255},
		Hover:      color.RGBA{R: 255, G: 255, B: 160, A: 255},
		Active:     color.RGBA{R: 0, G: 200, B: 255, A: 255},
		Handle:     color.White,
		LineWidth:  1,
		HandleSize: 7,
	}
}

// GeoM converts a roi.Matrix into an ebiten.GeoM.
func GeoM(m roi.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// ROIMatrix returns the matrix mapping r's unscaled local coordinates onto
// the screen through view (nil for identity).
func ROIMatrix(r *roi.ROI, view *View) roi.Matrix {
	m := r.ParentTransform().Multiply(r.State().Transform())
	if view != nil {
		m = view.Matrix().Multiply(m)
	}
	return m
}

// DrawImage draws img stretched over r, following its rotation.
func DrawImage(dst, img *ebiten.Image, r *roi.ROI, view *View) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	size := r.Size()
	m := ROIMatrix(r, view).Multiply(roi.Scaling(size.X/float64(b.Dx()), size.Y/float64(b.Dy())))
	op := &ebiten.DrawImageOptions{GeoM: GeoM(m)}
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// DrawROI strokes the outline of r and marks its handles. Colors follow the
// input's hover and drag state when in is non-nil.
func DrawROI(dst *ebiten.Image, r *roi.ROI, view *View, in *Input, style Style) {
	outline := style.Outline
	if in != nil {
		switch {
		case in.Active().ROI == r.ID() && in.Active().Handle == 0:
			outline = style.Active
		case in.Hovered().ROI == r.ID():
			outline = style.Hover
		}
	}

	size := r.Size()
	local := [4]roi.Vec2{{}, {X: size.X}, size, {Y: size.Y}}
	var pts [4]roi.Vec2
	for i, p := range local {
		pts[i] = sceneToScreen(view, r.MapToScene(p))
	}
	for i := range pts {
		drawLine(dst, pts[i], pts[(i+1)%4], style.LineWidth, outline)
	}

	if style.HideHandles {
		return
	}
	hs := r.Handles()
	for i, p := range r.HandlePositions(roi.FrameScene) {
		clr := style.Handle
		if in != nil && (in.Active().Handle == hs[i].ID || in.Hovered().Handle == hs[i].ID) {
			clr = style.Active
		}
		drawMarker(dst, sceneToScreen(view, p), hs[i].Role, style.HandleSize, clr)
	}
}

// DrawRegistry draws every ROI in reg in creation order.
func DrawRegistry(dst *ebiten.Image, reg *roi.Registry, view *View, in *Input, style Style) {
	for _, r := range reg.ROIs() {
		DrawROI(dst, r, view, in, style)
	}
}

// drawLine draws a segment from a to b by stretching the white pixel.
func drawLine(dst *ebiten.Image, a, b roi.Vec2, width float64, clr color.Color) {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -width/2)
	op.GeoM.Scale(length, width)
	op.GeoM.Rotate(math.Atan2(d.Y, d.X))
	op.GeoM.Translate(a.X, a.Y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(pixel(), op)
}

// drawMarker draws a handle marker centered on p: a square for translate,
// free and scale handles, a diamond for the rotating roles.
func drawMarker(dst *ebiten.Image, p roi.Vec2, role roi.HandleRole, size float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(size, size)
	switch role {
	case roi.RoleRotate, roi.RoleScaleRotate, roi.RoleRotateFree:
		op.GeoM.Rotate(math.Pi / 4)
	}
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(pixel(), op)
}
