package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/slider"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
)

const (
	prevArrow   = "❮"
	nextArrow   = "❯"
	activeDot   = "●"
	inactiveDot = "○"
	// dotWidth is the number of columns each dot occupies, separator included.
	dotWidth = 2
	// arrowWidth is the rendered width of an arrow column, padding included.
	arrowWidth = 3
	// frameChrome is the horizontal space taken by the frame border and padding.
	frameChrome = 4
)

// HitTarget identifies the slider control under a point.
type HitTarget int

const (
	HitNone HitTarget = iota
	HitPrev
	HitNext
	HitDot
	HitSlide
)

// Hit is the result of SliderView.HitTest. Index is set for HitDot.
type Hit struct {
	Target HitTarget
	Index  int
}

// SliderView draws a carousel from an engine snapshot: the active slide in a
// frame, previous/next arrows and a row of dots. Inactive slides are not
// drawn. It keeps no navigation state of its own.
type SliderView struct {
	BaseComponent
	slides []ui.Renderable
	state  slider.State
}

// NewSliderView creates a view over slides rendered at state.
func NewSliderView(slides []ui.Renderable, state slider.State) *SliderView {
	return &SliderView{
		BaseComponent: NewBaseComponent(),
		slides:        slides,
		state:         state,
	}
}

// WithState replaces the snapshot being drawn.
func (v *SliderView) WithState(state slider.State) *SliderView {
	v.state = state
	return v
}

// State returns the snapshot being drawn.
func (v *SliderView) State() slider.State {
	return v.state
}

// View renders the slider with the default theme.
func (v *SliderView) View() string {
	return v.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the slider with the given theme context. An empty
// collection renders nothing.
func (v *SliderView) ViewWithContext(ctx RenderContext) string {
	l, ok := v.layout(ctx)
	if !ok {
		return ""
	}

	row := l.frame
	if v.state.ShowArrows {
		row = lipgloss.JoinHorizontal(lipgloss.Top, l.prev, l.frame, l.next)
	}

	out := row
	if v.state.ShowDots {
		out = lipgloss.JoinVertical(lipgloss.Left, row, strings.Repeat(" ", l.dotsOffset)+l.dots)
	}
	return v.ComputeStyle(ctx.Theme).Render(out)
}

// HitTest maps a point relative to the top-left corner of the rendered
// slider to the control under it.
func (v *SliderView) HitTest(ctx RenderContext, x, y int) Hit {
	l, ok := v.layout(ctx)
	if !ok || x < 0 || y < 0 {
		return Hit{Target: HitNone}
	}

	if y < l.frameHeight {
		frameStart := 0
		if v.state.ShowArrows {
			frameStart = l.arrowWidth
			switch {
			case x < l.arrowWidth:
				return Hit{Target: HitPrev}
			case x >= l.arrowWidth+l.frameWidth && x < 2*l.arrowWidth+l.frameWidth:
				return Hit{Target: HitNext}
			}
		}
		if x >= frameStart && x < frameStart+l.frameWidth {
			return Hit{Target: HitSlide}
		}
		return Hit{Target: HitNone}
	}

	if v.state.ShowDots && y == l.frameHeight {
		offset := x - l.dotsOffset
		if offset >= 0 && offset < v.state.Count*dotWidth {
			return Hit{Target: HitDot, Index: offset / dotWidth}
		}
	}
	return Hit{Target: HitNone}
}

type sliderLayout struct {
	prev, frame, next, dots string
	arrowWidth              int
	frameWidth              int
	frameHeight             int
	dotsOffset              int
}

func (v *SliderView) layout(ctx RenderContext) (sliderLayout, bool) {
	st := v.state
	count := min(st.Count, len(v.slides))
	if st.Empty() || count == 0 || st.Index >= count {
		return sliderLayout{}, false
	}
	theme := ctx.Theme

	// Size the frame for the largest slide so navigation never reflows.
	slideCtx := ctx
	if ctx.Width > 0 {
		avail := ctx.Width - frameChrome
		if st.ShowArrows {
			avail -= 2 * arrowWidth
		}
		slideCtx = ctx.WithWidth(max(avail, 1))
	}
	var slideW, slideH int
	for _, s := range v.slides[:count] {
		w, h := lipgloss.Size(render(s, slideCtx))
		slideW = max(slideW, w)
		slideH = max(slideH, h)
	}

	frameStyle := v.frameStyle(theme).Width(slideW + 2).Height(slideH)
	frame := frameStyle.Render(render(v.slides[st.Index], slideCtx))
	frameW, frameH := lipgloss.Size(frame)

	l := sliderLayout{
		frame:       frame,
		frameWidth:  frameW,
		frameHeight: frameH,
	}

	if st.ShowArrows {
		l.prev = v.arrowStyle(theme, st.PrevEnabled()).Height(frameH).Render(prevArrow)
		l.next = v.arrowStyle(theme, st.NextEnabled()).Height(frameH).Render(nextArrow)
		l.arrowWidth = lipgloss.Width(l.prev)
		l.dotsOffset = l.arrowWidth
	}

	if st.ShowDots {
		l.dots = v.dots(theme, count)
	}
	return l, true
}

// frameStyle picks the frame decoration from the animation type. The
// terminal cannot animate, so the type only changes the styling.
func (v *SliderView) frameStyle(theme Theme) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)
	if v.state.Animation == slider.AnimationSlide {
		return Border(BorderVariantThick, PaletteSecondary)(base, theme)
	}
	return Border(BorderVariantRounded, PalettePrimary)(base, theme)
}

func (v *SliderView) arrowStyle(theme Theme, enabled bool) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1).AlignVertical(lipgloss.Center).Bold(true)
	if enabled {
		return style.Foreground(theme.Palette.Primary.Base)
	}
	return style.Foreground(theme.Palette.Neutral.Muted).Faint(true)
}

func (v *SliderView) dots(theme Theme, count int) string {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.SetTotalPages(count)
	p.Page = v.state.Index
	p.ActiveDot = lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base).Render(activeDot) + " "
	p.InactiveDot = lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base).Render(inactiveDot) + " "
	return p.View()
}
