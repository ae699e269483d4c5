package roi

import "testing"

type recordingSink struct {
	events []ChangeEvent
	order  *[]string
}

func (s *recordingSink) EmitEvent(e ChangeEvent) {
	s.events = append(s.events, e)
	if s.order != nil {
		*s.order = append(*s.order, "sink")
	}
}

func TestEventOrder(t *testing.T) {
	var order []string
	sink := &recordingSink{order: &order}
	reg := NewRegistry(WithEventSink(sink))
	r := reg.NewROI(square10())

	reg.OnChanging(func(ChangeEvent) { order = append(order, "registry") })
	r.OnChanging(func(ChangeEvent) { order = append(order, "roi") })

	r.StartGesture()
	r.SetPos(Vec2{1, 1})

	want := []string{"sink", "registry", "roi", "sink"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestEventPayload(t *testing.T) {
	sink := &recordingSink{}
	reg := NewRegistry(WithEventSink(sink))
	r := reg.NewROI(square10(), WithName("crop"))

	r.SetPos(Vec2{3, 4})

	if len(sink.events) != 2 {
		t.Fatalf("sink got %d events, want 2", len(sink.events))
	}
	for _, e := range sink.events {
		if e.ID != r.ID() || e.ROI != r {
			t.Errorf("event %v targets %v, want %v", e.Type, e.ID, r.ID())
		}
		assertVec(t, "pos", e.State.Pos, Vec2{3, 4})
	}
}

func TestCallbackRemove(t *testing.T) {
	_, r := newTestROI(square10())
	calls := 0
	cb := r.OnFinished(func(ChangeEvent) { calls++ })

	r.SetPos(Vec2{1, 0})
	cb.Remove()
	r.SetPos(Vec2{2, 0})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestCallbackRemoveDuringDispatch(t *testing.T) {
	_, r := newTestROI(square10())
	var first, second int
	var cb CallbackHandle
	cb = r.OnChanging(func(ChangeEvent) {
		first++
		cb.Remove()
	})
	r.OnChanging(func(ChangeEvent) { second++ })

	r.SetPos(Vec2{1, 0})
	r.SetPos(Vec2{2, 0})

	if first != 1 || second != 2 {
		t.Errorf("first = %d, second = %d, want 1 and 2", first, second)
	}
}

func TestZeroCallbackHandleRemove(t *testing.T) {
	var cb CallbackHandle
	cb.Remove() // must not panic
}

func TestSetEventSink(t *testing.T) {
	reg, r := newTestROI(square10())
	sink := &recordingSink{}
	reg.SetEventSink(sink)

	r.SetPos(Vec2{1, 0})
	reg.SetEventSink(nil)
	r.SetPos(Vec2{2, 0})

	if len(sink.events) != 2 {
		t.Errorf("sink got %d events, want 2", len(sink.events))
	}
}
