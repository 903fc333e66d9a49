package slider

import "time"

// State is an immutable snapshot of an Engine taken for rendering.
type State struct {
	Index      int
	Count      int
	Policy     Policy
	AutoPlay   bool
	Interval   time.Duration
	ShowArrows bool
	ShowDots   bool
	Animation  Animation
}

// Empty reports whether there is nothing to render.
func (s State) Empty() bool {
	return s.Count <= 0
}

// IsActive reports whether slide i is the current one.
func (s State) IsActive(i int) bool {
	return i >= 0 && i < s.Count && i == s.Index
}

// PrevEnabled reports whether the previous control should accept input.
// Under PolicyClamp it is disabled on the first slide.
func (s State) PrevEnabled() bool {
	if s.Empty() {
		return false
	}
	if s.Policy == PolicyWrap {
		return true
	}
	return s.Index > 0
}

// NextEnabled reports whether the next control should accept input.
// Under PolicyClamp it is disabled on the last slide.
func (s State) NextEnabled() bool {
	if s.Empty() {
		return false
	}
	if s.Policy == PolicyWrap {
		return true
	}
	return s.Index < s.Count-1
}
