package slider

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
)

// Engine owns the current slide index of a carousel and applies one
// boundary policy to every navigation source: buttons, the auto-play
// ticker and swipe gestures.
//
// All methods are safe for concurrent use. The ticker runs on its own
// goroutine, so every transition happens under a single mutex and runs to
// completion before the next one starts. Invalid requests are no-ops; the
// engine never returns errors.
type Engine struct {
	mu      sync.Mutex
	count   int
	index   int
	opts    Options
	gesture gesture
	closed  bool

	// generation identifies the live ticker; ticks from older ones are dropped.
	generation uint64
	ticker     Ticker
	stop       chan struct{}
	wg         sync.WaitGroup

	subscribers map[int]chan State
	nextSubID   int

	log *logger.Logger
}

// New creates an engine for count slides. The auto-play ticker is armed
// immediately when opts.AutoPlay is set and there is at least one slide.
func New(count int, opts Options) *Engine {
	if count < 0 {
		count = 0
	}
	opts = opts.normalize()

	e := &Engine{
		count:       count,
		opts:        opts,
		subscribers: make(map[int]chan State),
		log: opts.Logger.WithFields(map[string]any{
			"component": "slider",
			"slides":    count,
			"policy":    opts.Policy().String(),
		}),
	}

	e.mu.Lock()
	if opts.AutoPlay {
		e.armLocked()
	}
	e.mu.Unlock()

	return e
}

// Advance moves to the next slide.
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stepLocked(1)
}

// Retreat moves to the previous slide.
func (e *Engine) Retreat() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stepLocked(-1)
}

// Tick is the auto-play step. It behaves exactly like Advance.
func (e *Engine) Tick() {
	e.Advance()
}

// JumpTo makes index current. Targets outside [0, Count) are rejected and
// leave the engine unchanged; the return value reports acceptance.
func (e *Engine) JumpTo(index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || index < 0 || index >= e.count {
		e.log.WithFields(map[string]any{"target": index}).Debug("jump rejected")
		return false
	}
	if index != e.index {
		e.index = index
		e.publishLocked()
	}
	return true
}

// GestureStart begins tracking a drag at horizontal position x. Any
// unfinished drag is discarded.
func (e *Engine) GestureStart(x float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.gesture.begin(x)
}

// GestureMove records the latest horizontal position of the drag.
func (e *Engine) GestureMove(x float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.gesture.move(x)
}

// GestureEnd resolves the drag, navigates when its distance exceeds the
// swipe threshold and clears the tracking record. It returns the detected
// direction, which is SwipeNone for short or incomplete drags.
func (e *Engine) GestureEnd() Swipe {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return SwipeNone
	}

	swipe := e.gesture.classify(e.opts.SwipeThreshold)
	e.gesture.reset()

	switch swipe {
	case SwipeNext:
		e.stepLocked(1)
	case SwipePrev:
		e.stepLocked(-1)
	}
	return swipe
}

// SetAutoPlay enables or disables the auto-play ticker. Enabling always
// replaces the running ticker, so at most one is ever live.
func (e *Engine) SetAutoPlay(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.opts.AutoPlay = enabled
	if enabled {
		e.armLocked()
	} else {
		e.disarmLocked()
	}
	e.publishLocked()
}

// SetInterval changes the auto-play period, re-arming a running ticker.
// Periods below MinInterval are raised to it.
func (e *Engine) SetInterval(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.opts.Interval = clampInterval(d)
	if e.ticker != nil {
		e.armLocked()
	}
	e.publishLocked()
}

// Subscribe returns a channel that receives the latest State after every
// change. The channel holds one value; a slow reader only ever sees the most
// recent state. The returned func unsubscribes and closes the channel. All
// channels are closed by Close.
func (e *Engine) Subscribe() (<-chan State, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ch := make(chan State, 1)
	if e.closed {
		close(ch)
		return ch, func() {}
	}

	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = ch

	return ch, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if sub, ok := e.subscribers[id]; ok {
			delete(e.subscribers, id)
			close(sub)
		}
	}
}

// State returns a snapshot for rendering.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Index returns the current slide index.
func (e *Engine) Index() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.index
}

// Count returns the number of slides.
func (e *Engine) Count() int {
	return e.count
}

// Close disarms the ticker, drops any pending gesture and closes all
// subscriptions. When it returns no tick can change the index any more.
// Close is idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.disarmLocked()
	e.gesture.reset()
	for id, ch := range e.subscribers {
		delete(e.subscribers, id)
		close(ch)
	}
	e.mu.Unlock()

	// The ticker goroutine may be waiting on mu; it observes closed and exits.
	e.wg.Wait()
	e.log.Debug("slider closed")
}

func (e *Engine) stepLocked(delta int) {
	if e.closed || e.count == 0 {
		return
	}

	next := e.index + delta
	if e.opts.Policy() == PolicyWrap {
		next = ((next % e.count) + e.count) % e.count
	} else {
		next = min(max(next, 0), e.count-1)
	}

	if next == e.index {
		return
	}
	e.index = next
	e.publishLocked()
}

func (e *Engine) armLocked() {
	e.disarmLocked()
	if e.closed || !e.opts.AutoPlay || e.count == 0 {
		return
	}

	e.generation++
	gen := e.generation
	ticker := e.opts.Clock.NewTicker(e.opts.Interval)
	stop := make(chan struct{})
	e.ticker = ticker
	e.stop = stop

	e.wg.Add(1)
	go e.run(gen, ticker, stop)

	e.log.WithFields(map[string]any{"interval_ms": e.opts.Interval.Milliseconds()}).Debug("auto-play armed")
}

func (e *Engine) disarmLocked() {
	if e.ticker == nil {
		return
	}
	e.generation++
	e.ticker.Stop()
	close(e.stop)
	e.ticker = nil
	e.stop = nil
	e.log.Debug("auto-play disarmed")
}

func (e *Engine) run(gen uint64, ticker Ticker, stop <-chan struct{}) {
	defer e.wg.Done()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			e.mu.Lock()
			if e.closed || e.generation != gen {
				e.mu.Unlock()
				return
			}
			e.stepLocked(1)
			e.mu.Unlock()
		}
	}
}

// publishLocked hands the current state to every subscriber without
// blocking, replacing any value the subscriber has not read yet.
func (e *Engine) publishLocked() {
	if len(e.subscribers) == 0 {
		return
	}
	st := e.snapshotLocked()
	for _, ch := range e.subscribers {
		select {
		case ch <- st:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- st
		}
	}
}

func (e *Engine) snapshotLocked() State {
	return State{
		Index:      e.index,
		Count:      e.count,
		Policy:     e.opts.Policy(),
		AutoPlay:   e.opts.AutoPlay,
		Interval:   e.opts.Interval,
		ShowArrows: e.opts.ShowArrows,
		ShowDots:   e.opts.ShowDots,
		Animation:  e.opts.Animation,
	}
}
