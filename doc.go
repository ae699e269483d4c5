// Package roi is an interactive region-of-interest geometry engine.
//
// An ROI is an on-screen shape with a position, size and angle. Users
// transform it by dragging typed handles; every drag is resolved into a new
// state that satisfies the ROI's constraints, and collaborators are told
// about it through a three-phase started/changing/finished protocol. The
// package has no rendering or windowing dependency: package ebitenroi
// connects it to [Ebitengine] and package ecs forwards its events into a
// [Donburi] world.
//
// # Quick start
//
//	reg := roi.NewRegistry()
//	r := reg.NewROI(roi.ShapeState{Size: roi.Vec2{X: 100, Y: 50}},
//		roi.WithMaxBounds(roi.Rect{Width: 640, Height: 480}),
//	)
//	h := r.AddScaleHandle(roi.Vec2{X: 1, Y: 1}, roi.Vec2{})
//	r.OnFinished(func(e roi.ChangeEvent) { fmt.Println(e.State) })
//
//	reg.Drag(roi.DragSample{Handle: h.ID, Pos: roi.Vec2{X: 100, Y: 50}, Phase: roi.PhaseStart})
//	reg.Drag(roi.DragSample{Handle: h.ID, Pos: roi.Vec2{X: 200, Y: 80}, Phase: roi.PhaseUpdate})
//	reg.Drag(roi.DragSample{Handle: h.ID, Phase: roi.PhaseFinish})
//
// # Geometry
//
// A [ShapeState] maps local coordinates (0,0)..Size into its parent frame by
// rotating about Pos and then translating. Its [AffineState] counterpart is
// the scale/rotate/translate decomposition of a [Matrix]; [Compose],
// [Decompose], [Divide] and [Multiply] move states between frames and
// compute the net transform between two configurations of the same shape.
// Matrices that contain shear decompose on a best-effort basis and report a
// [*DecompositionError].
//
// # Handles
//
// Each [Handle] has a [HandleRole] that decides how a drag changes its
// owners: translate, free, scale, rotate, scale-rotate and rotate-free. A
// handle may be owned by several ROIs; [Chain] uses this to join segments
// of a path.
//
// # Change notification
//
// A gesture emits exactly one Started, any number of Changing and exactly
// one Finished event. Changing is not a commitment; defer expensive work to
// Finished. A cancelled gesture restores the pre-move state and still emits
// Finished, with [ChangeEvent.Cancelled] set.
//
// # Concurrency
//
// A [Registry] and everything in it are not safe for concurrent use. All
// resolution runs synchronously on the goroutine delivering input.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package roi
