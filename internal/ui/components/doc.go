// Package components is the theme-aware lipgloss component kit used by the
// showcase page.
//
// Components render to strings and compose through ui.Renderable. A theme is
// passed explicitly through RenderContext; View() falls back to the dark
// theme:
//
//	ctx := components.DefaultContext().WithTheme(components.LightTheme())
//	out := components.VStack(
//		components.TitleText("Buttons"),
//		components.HStack(
//			components.PrimaryButton("Save"),
//			components.GhostButton("Cancel"),
//		).WithGap(2),
//	).WithGap(1).ViewWithContext(ctx)
//
// Theme-aware modifiers (Background, Foreground, Border, PaddingX,
// Typography) are attached with WithAppliers and resolved at render time.
//
// SliderView draws a carousel from a slider.State snapshot. It never mutates
// navigation state; HitTest maps mouse coordinates back to its controls so a
// caller can drive the engine.
//
// Form controls hold no editing state. InputField frames a value drawn by
// the caller, usually a bubbles/textinput view, and Modal renders nothing
// until it is opened.
package components
