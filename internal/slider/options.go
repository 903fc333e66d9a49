package slider

import (
	"time"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
)

const (
	// DefaultInterval is the auto-play period used when none is configured.
	DefaultInterval = 3000 * time.Millisecond
	// MinInterval is the shortest period a ticker is ever armed with.
	MinInterval = 50 * time.Millisecond
	// DefaultSwipeThreshold is the drag distance a gesture must exceed to navigate.
	DefaultSwipeThreshold = 50.0
)

// Policy selects how navigation behaves at the ends of the collection.
type Policy int

const (
	// PolicyWrap cycles past the last slide to the first and vice versa.
	PolicyWrap Policy = iota
	// PolicyClamp stops at the first and last slide.
	PolicyClamp
)

// String returns the lower-case policy name.
func (p Policy) String() string {
	switch p {
	case PolicyClamp:
		return "clamp"
	default:
		return "wrap"
	}
}

// Animation is the transition style handed to renderers. The engine never
// interprets it.
type Animation string

const (
	// AnimationFade cross-fades between slides.
	AnimationFade Animation = "fade"
	// AnimationSlide moves slides horizontally.
	AnimationSlide Animation = "slide"
)

// Options configures an Engine at construction time.
type Options struct {
	AutoPlay       bool
	Interval       time.Duration
	ShowArrows     bool
	ShowDots       bool
	Animation      Animation
	Infinite       bool
	SwipeThreshold float64

	// Clock drives the auto-play ticker. Nil means the wall clock.
	Clock Clock
	// Logger receives debug events. Nil disables logging.
	Logger *logger.Logger
}

// DefaultOptions returns the options of an unconfigured slider.
func DefaultOptions() Options {
	return Options{
		AutoPlay:       false,
		Interval:       DefaultInterval,
		ShowArrows:     true,
		ShowDots:       true,
		Animation:      AnimationFade,
		Infinite:       true,
		SwipeThreshold: DefaultSwipeThreshold,
	}
}

// Policy reports the boundary policy selected by Infinite.
func (o Options) Policy() Policy {
	if o.Infinite {
		return PolicyWrap
	}
	return PolicyClamp
}

// normalize replaces out-of-range values so the engine never arms a
// zero or negative period ticker.
func (o Options) normalize() Options {
	o.Interval = clampInterval(o.Interval)
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = DefaultSwipeThreshold
	}
	switch o.Animation {
	case AnimationFade, AnimationSlide:
	default:
		o.Animation = AnimationFade
	}
	if o.Clock == nil {
		o.Clock = wallClock{}
	}
	return o
}

func clampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	return d
}
