package roi

// PushState saves the current state on r's position stack.
func (r *ROI) PushState() {
	r.stack = append(r.stack, r.state)
}

// PopState restores the most recently pushed state and reports whether the
// stack held one. The restore is published like SetState.
func (r *ROI) PopState() bool {
	if len(r.stack) == 0 {
		return false
	}
	s := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.SetState(s)
	return true
}

// StackLen returns the number of saved states.
func (r *ROI) StackLen() int { return len(r.stack) }
