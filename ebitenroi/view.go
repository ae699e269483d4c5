package ebitenroi

import (
	"github.com/phanxgames/roi"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the view's X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// viewParams is the input of the cached view matrix.
type viewParams struct {
	x, y, zoom, rotation float64
	viewport             roi.Rect
}

// View maps between scene coordinates and screen pixels: pan, zoom and
// rotation about the viewport center.
type View struct {
	// X and Y are the scene position shown at the viewport center.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the view rotation in degrees.
	Rotation float64
	// Viewport is the screen-space rectangle the view renders into.
	Viewport roi.Rect

	cached        viewParams
	viewMatrix    roi.Matrix
	invViewMatrix roi.Matrix
	valid         bool

	scrollTween *scrollAnim
}

// NewView creates a View with no zoom or rotation centered on the viewport,
// so scene and screen coordinates coincide.
func NewView(viewport roi.Rect) *View {
	return &View{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Zoom:     1.0,
		Viewport: viewport,
	}
}

// ScrollTo animates the view to the given scene position over duration
// seconds.
func (v *View) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *View) Scrolling() bool { return v.scrollTween != nil }

// ZoomAt multiplies the zoom by factor keeping the scene point under the
// screen position fixed.
func (v *View) ZoomAt(screen roi.Vec2, factor float64) {
	before := v.ScreenToScene(screen)
	v.Zoom *= factor
	after := v.ScreenToScene(screen)
	v.X += before.X - after.X
	v.Y += before.Y - after.Y
}

// Update advances the scroll animation by dt seconds.
func (v *View) Update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	if !v.scrollTween.doneX {
		val, done := v.scrollTween.tweenX.Update(dt)
		v.X = float64(val)
		v.scrollTween.doneX = done
	}
	if !v.scrollTween.doneY {
		val, done := v.scrollTween.tweenY.Update(dt)
		v.Y = float64(val)
		v.scrollTween.doneY = done
	}
	if v.scrollTween.doneX && v.scrollTween.doneY {
		v.scrollTween = nil
	}
}

// Matrix returns the scene-to-screen matrix:
//
//	Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
//
// where cx, cy is the viewport center.
func (v *View) Matrix() roi.Matrix {
	v.compute()
	return v.viewMatrix
}

// compute recomputes the cached matrices if any field changed.
func (v *View) compute() {
	p := viewParams{v.X, v.Y, v.Zoom, v.Rotation, v.Viewport}
	if v.valid && p == v.cached {
		return
	}
	v.cached, v.valid = p, true

	cx := v.Viewport.X + v.Viewport.Width/2
	cy := v.Viewport.Y + v.Viewport.Height/2
	m := roi.Translation(cx, cy).
		Multiply(roi.Scaling(v.Zoom, v.Zoom)).
		Multiply(roi.Rotation(-v.Rotation)).
		Multiply(roi.Translation(-v.X, -v.Y))
	v.viewMatrix = m
	v.invViewMatrix = m.Invert()
}

// SceneToScreen converts scene coordinates to screen coordinates.
func (v *View) SceneToScreen(p roi.Vec2) roi.Vec2 {
	v.compute()
	return v.viewMatrix.Apply(p)
}

// ScreenToScene converts screen coordinates to scene coordinates.
func (v *View) ScreenToScene(p roi.Vec2) roi.Vec2 {
	v.compute()
	return v.invViewMatrix.Apply(p)
}

// VisibleBounds returns the axis-aligned bounding rect of the visible area
// in scene coordinates.
func (v *View) VisibleBounds() roi.Rect {
	v.compute()
	return v.invViewMatrix.MapRect(v.Viewport)
}
