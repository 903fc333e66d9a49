package slider

// Swipe is the navigation produced by a completed gesture.
type Swipe int

const (
	// SwipeNone is an incomplete gesture or one within the threshold.
	SwipeNone Swipe = iota
	// SwipeNext is a leftward drag; it advances.
	SwipeNext
	// SwipePrev is a rightward drag; it retreats.
	SwipePrev
)

func (s Swipe) String() string {
	switch s {
	case SwipeNext:
		return "next"
	case SwipePrev:
		return "prev"
	default:
		return "none"
	}
}

// gesture tracks one in-flight drag. Presence is explicit so that a drag
// starting at x=0 is still a drag.
type gesture struct {
	start    float64
	last     float64
	hasStart bool
	hasLast  bool
}

func (g *gesture) begin(x float64) {
	*g = gesture{start: x, hasStart: true}
}

func (g *gesture) move(x float64) {
	g.last = x
	g.hasLast = true
}

func (g *gesture) reset() {
	*g = gesture{}
}

// classify resolves the drag against threshold. Distances equal to the
// threshold do not navigate.
func (g gesture) classify(threshold float64) Swipe {
	if !g.hasStart || !g.hasLast {
		return SwipeNone
	}
	distance := g.start - g.last
	switch {
	case distance > threshold:
		return SwipeNext
	case distance < -threshold:
		return SwipePrev
	default:
		return SwipeNone
	}
}
