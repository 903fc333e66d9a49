package showcase

import (
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/showcase/internal/slider"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// GalleryOptions configures a static render of every component.
type GalleryOptions struct {
	Title   string
	Theme   components.ThemeMode
	Width   int
	Slides  []ui.Renderable
	Options slider.Options
	// Index limits the carousel to a single slide; negative renders all.
	Index int
}

// RenderGallery writes every component once, and the carousel at each
// selected index, without starting a program.
func RenderGallery(w io.Writer, opts GalleryOptions) error {
	theme := components.ThemeFor(opts.Theme)
	ctx := components.DefaultContext().WithTheme(theme).WithWidth(opts.Width)

	opts.Options.AutoPlay = false
	engine := slider.New(len(opts.Slides), opts.Options)
	defer engine.Close()

	indices, err := galleryIndices(engine.Count(), opts.Index)
	if err != nil {
		return err
	}

	var frames []ui.Renderable
	for _, i := range indices {
		engine.JumpTo(i)
		frames = append(frames,
			components.CaptionText(fmt.Sprintf("slide %d of %d", i+1, engine.Count())),
			components.NewSliderView(opts.Slides, engine.State()),
		)
	}
	if len(frames) == 0 {
		frames = append(frames, components.CaptionText("No slides"))
	}

	page := components.VStack(
		header(opts.Title, theme.Mode),
		components.NewDivider(),
		buttonSection(0, false),
		paginationSection(1),
		paginationSection(TotalPages/2),
		paginationSection(TotalPages),
		modalSection(false, true),
		planSection(1, false),
		termsSection(true, false),
		inputSection(galleryForm(), focusButton),
		sliderSection(components.VStack(frames...)),
	).WithGap(pageGap)

	_, err = fmt.Fprintln(w, page.ViewWithContext(ctx))
	return err
}

func galleryIndices(count, index int) ([]int, error) {
	if index < 0 {
		all := make([]int, count)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	if index >= count {
		return nil, fmt.Errorf("slide index %d out of range [0, %d)", index, count)
	}
	return []int{index}, nil
}

// galleryForm is the sign-in form with the empty password already visited,
// so the error state is on display.
func galleryForm() form {
	f := newForm()
	f.leave(fieldPassword)
	return f
}
