package roi

import "log/slog"

// RegistryOption configures a Registry during creation.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	logger *slog.Logger
	sink   EventSink
	debug  bool
}

// WithLogger sets the registry's logger. See Registry.SetLogger.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(o *registryOptions) {
		o.logger = l
	}
}

// WithEventSink forwards every change event to sink.
//
// Example:
//
//	reg := roi.NewRegistry(roi.WithEventSink(ecs.NewDonburiSink(world)))
func WithEventSink(sink EventSink) RegistryOption {
	return func(o *registryOptions) {
		o.sink = sink
	}
}

// WithDebug enables debug mode. See Registry.SetDebugMode.
func WithDebug(enabled bool) RegistryOption {
	return func(o *registryOptions) {
		o.debug = enabled
	}
}

// Option configures an ROI during creation.
//
// Example:
//
//	r := reg.NewROI(state,
//		roi.WithName("crop"),
//		roi.WithMaxBounds(roi.Rect{Width: 640, Height: 480}),
//		roi.WithAspectLock(16.0/9.0),
//	)
type Option func(*roiOptions)

type roiOptions struct {
	name   string
	parent Matrix
	cons   constraints
}

// constraints restricts how drags may change an ROI.
type constraints struct {
	aspectLocked    bool
	aspectRatio     float64 // 0 keeps the ratio current at drag time
	invertible      bool
	maxBounds       *Rect
	snapSize        float64
	rotateSnapAngle float64
	translateSnap   bool
	scaleSnap       bool
	rotateSnap      bool
	translatable    bool
	rotatable       bool
	resizable       bool
}

const (
	defaultSnapSize        = 1.0
	defaultRotateSnapAngle = 15.0
)

func defaultROIOptions() roiOptions {
	return roiOptions{
		parent: identityMatrix,
		cons: constraints{
			snapSize:        defaultSnapSize,
			rotateSnapAngle: defaultRotateSnapAngle,
			translatable:    true,
			rotatable:       true,
			resizable:       true,
		},
	}
}

// WithName sets a human-readable name used in logs and debug messages.
func WithName(name string) Option {
	return func(o *roiOptions) {
		o.name = name
	}
}

// WithParentTransform sets the parent-to-scene matrix used to convert
// scene-frame drag positions.
func WithParentTransform(m Matrix) Option {
	return func(o *roiOptions) {
		o.parent = m
	}
}

// WithAspectLock keeps width/height equal to ratio during scale drags.
// A ratio of 0 preserves whatever ratio the ROI has when the drag happens.
func WithAspectLock(ratio float64) Option {
	return func(o *roiOptions) {
		o.cons.aspectLocked = true
		o.cons.aspectRatio = ratio
	}
}

// WithInvertible allows scale drags to produce negative sizes.
func WithInvertible() Option {
	return func(o *roiOptions) {
		o.cons.invertible = true
	}
}

// WithMaxBounds rejects any drag whose resulting bounding box leaves bounds.
func WithMaxBounds(bounds Rect) Option {
	return func(o *roiOptions) {
		b := bounds.Normalized()
		o.cons.maxBounds = &b
	}
}

// WithSnap sets the grid size used by translate and scale snapping.
func WithSnap(size float64) Option {
	return func(o *roiOptions) {
		o.cons.snapSize = size
	}
}

// WithRotateSnapAngle sets the angular step used by rotate snapping.
func WithRotateSnapAngle(deg float64) Option {
	return func(o *roiOptions) {
		o.cons.rotateSnapAngle = deg
	}
}

// WithTranslateSnap always snaps translations, not only while Ctrl is held.
func WithTranslateSnap() Option {
	return func(o *roiOptions) {
		o.cons.translateSnap = true
	}
}

// WithScaleSnap always snaps scale drags, not only while Ctrl is held.
func WithScaleSnap() Option {
	return func(o *roiOptions) {
		o.cons.scaleSnap = true
	}
}

// WithRotateSnap always snaps rotation, not only while Ctrl is held.
func WithRotateSnap() Option {
	return func(o *roiOptions) {
		o.cons.rotateSnap = true
	}
}

// WithTranslatable enables or disables translation by drag.
func WithTranslatable(enabled bool) Option {
	return func(o *roiOptions) {
		o.cons.translatable = enabled
	}
}

// WithRotatable enables or disables rotation by drag.
func WithRotatable(enabled bool) Option {
	return func(o *roiOptions) {
		o.cons.rotatable = enabled
	}
}

// WithResizable enables or disables scaling by drag.
func WithResizable(enabled bool) Option {
	return func(o *roiOptions) {
		o.cons.resizable = enabled
	}
}
