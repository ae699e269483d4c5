package roi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action string   `json:"action"`
	Handle HandleID `json:"handle,omitempty"`
	ROI    ROIID    `json:"roi,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Steps  int      `json:"steps,omitempty"`
	Frame  string   `json:"frame,omitempty"`
	Mods   []string `json:"mods,omitempty"`
}

// scriptFile is the top-level JSON structure of a gesture script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays recorded drag gestures against a Registry. Scripts are JSON
// documents of the form
//
//	{"steps": [
//	  {"action": "start",  "handle": 2, "x": 10, "y": 5},
//	  {"action": "update", "handle": 2, "x": 5, "y": 10, "mods": ["ctrl"]},
//	  {"action": "finish", "handle": 2},
//	  {"action": "drag", "roi": 1, "fromX": 0, "fromY": 0, "toX": 20, "toY": 0, "steps": 4}
//	]}
//
// Actions are start, update, finish, cancel and drag (start, interpolated
// updates and finish in one step). A step with no handle drags the body of
// roi. frame is "parent" (default) or "scene".
type Script struct {
	steps  []scriptStep
	cursor int
}

// LoadScript parses a JSON gesture script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "start", "update", "finish", "cancel", "drag":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if _, err := parseFrame(st.Frame); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
		if _, err := parseMods(st.Mods); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.cursor >= len(s.steps)
}

// Step executes the next step against reg. It does nothing once the script
// is done.
func (s *Script) Step(reg *Registry) error {
	if s.Done() {
		return nil
	}
	st := s.steps[s.cursor]
	s.cursor++

	frame, _ := parseFrame(st.Frame)
	mods, _ := parseMods(st.Mods)
	sample := DragSample{Handle: st.Handle, ROI: st.ROI, Frame: frame, Modifiers: mods}

	var samples []DragSample
	switch st.Action {
	case "start", "update", "finish", "cancel":
		sample.Pos = Vec2{st.X, st.Y}
		sample.Phase = map[string]Phase{
			"start":  PhaseStart,
			"update": PhaseUpdate,
			"finish": PhaseFinish,
			"cancel": PhaseCancel,
		}[st.Action]
		samples = append(samples, sample)
	case "drag":
		n := max(st.Steps, 1)
		from, to := Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}
		sample.Pos, sample.Phase = from, PhaseStart
		samples = append(samples, sample)
		for i := 1; i <= n; i++ {
			sample.Pos = from.Add(to.Sub(from).Scale(float64(i) / float64(n)))
			sample.Phase = PhaseUpdate
			samples = append(samples, sample)
		}
		sample.Phase = PhaseFinish
		samples = append(samples, sample)
	}

	for _, smp := range samples {
		if err := reg.Drag(smp); err != nil {
			return fmt.Errorf("script step %d (%s): %w", s.cursor-1, st.Action, err)
		}
	}
	return nil
}

// Run executes every remaining step, stopping at the first error.
func (s *Script) Run(reg *Registry) error {
	for !s.Done() {
		if err := s.Step(reg); err != nil {
			return err
		}
	}
	return nil
}

func parseFrame(name string) (Frame, error) {
	switch strings.ToLower(name) {
	case "", "parent":
		return FrameParent, nil
	case "scene":
		return FrameScene, nil
	}
	return FrameParent, fmt.Errorf("unknown frame %q", name)
}

func parseMods(names []string) (KeyModifiers, error) {
	var m KeyModifiers
	for _, n := range names {
		switch strings.ToLower(n) {
		case "shift":
			m |= ModShift
		case "ctrl", "control":
			m |= ModCtrl
		case "alt":
			m |= ModAlt
		case "meta", "cmd":
			m |= ModMeta
		default:
			return 0, fmt.Errorf("unknown modifier %q", n)
		}
	}
	return m, nil
}
