package roi

// checkLive panics when a removed ROI is used while the registry is in debug
// mode. In release mode the call is a no-op.
func (r *ROI) checkLive(op string) {
	if r.removed && r.reg.debug {
		breach(op, "use of removed %s", r)
	}
}

// debugCheckCount warns if the registry holds an unusually large number of
// ROIs.
const debugMaxROIs = 1000

func (g *Registry) debugCheckCount() {
	if n := len(g.ROIs()); n > debugMaxROIs {
		g.logger.Warn("roi: registry holds many rois", "count", n, "threshold", debugMaxROIs)
	}
}

// debugCheckHandles warns if a single ROI carries an unusually large number
// of handles.
const debugMaxHandles = 64

func (r *ROI) debugCheckHandles() {
	if n := len(r.handles); n > debugMaxHandles {
		r.reg.logger.Warn("roi: many handles on one roi", "roi", r.String(), "count", n, "threshold", debugMaxHandles)
	}
}
