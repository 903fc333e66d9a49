// Package slider implements the state machine behind the carousel component.
//
// An Engine tracks which of N slides is current and reacts to three input
// sources:
//
//   - navigation requests (Advance, Retreat, JumpTo) from arrows and dots
//   - the auto-play ticker, armed on construction when enabled
//   - horizontal drag gestures (GestureStart, GestureMove, GestureEnd)
//
// Options.Infinite selects the boundary policy. PolicyWrap cycles past
// either end; PolicyClamp stops at the first and last slide. Both policies
// apply to every input source.
//
// Renderers read a State snapshot and may Subscribe to receive a new one
// after every change:
//
//	eng := slider.New(len(slides), opts)
//	defer eng.Close()
//
//	updates, cancel := eng.Subscribe()
//	defer cancel()
//	for st := range updates {
//		render(slides, st)
//	}
//
// Close disarms the ticker synchronously. No tick can move the index after
// Close returns.
package slider
