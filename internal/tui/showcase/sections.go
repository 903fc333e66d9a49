package showcase

import (
	"fmt"

	"github.com/alexisbeaulieu97/showcase/internal/config"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// TotalPages is the size of the pagination demo.
const TotalPages = 10

const (
	buttonLabel = "Click Me"
	buttonIcon  = "→"
	modalLabel  = "Open Modal"
	modalTitle  = "Hello from Modal!"
	modalBody   = "This is modal content."
	planLabel   = "Choose a plan"
	termsLabel  = "I accept the terms and conditions"
)

var plans = []string{"Free", "Pro", "Enterprise"}

// focusTarget is the interactive control receiving enter and typed keys.
type focusTarget int

const (
	focusButton focusTarget = iota
	focusModal
	focusPlan
	focusTerms
	focusEmail
	focusPassword
	focusCount
)

func (f focusTarget) next() focusTarget {
	return (f + 1) % focusCount
}

func (f focusTarget) prev() focusTarget {
	return (f + focusCount - 1) % focusCount
}

// field maps the input targets to form fields.
func (f focusTarget) field() (field, bool) {
	switch f {
	case focusEmail:
		return fieldEmail, true
	case focusPassword:
		return fieldPassword, true
	default:
		return 0, false
	}
}

const buttonCode = `components.PrimaryButton("Click Me").WithEndIcon("→")`

const paginationCode = `components.NewPagination(current, 10)`

const modalCode = `components.NewModal("Hello from Modal!",
	components.NewText("This is modal content."),
).WithOpen(showModal)`

const planCode = `components.NewRadioGroup("Choose a plan", "Free", "Pro", "Enterprise").WithSelected(plan)`

const termsCode = `components.NewCheckbox("I accept the terms and conditions").WithChecked(accepted)`

const inputCode = `components.NewInputField("Email", email.View()).WithRequired(true).WithIcons("✉", "")
components.NewInputField("Password", password.View()).WithError(err).WithIcons("", "🔒")`

const sliderCode = `engine := slider.New(len(slides), slider.Options{
	AutoPlay:   true,
	Interval:   5 * time.Second,
	ShowArrows: true,
	ShowDots:   true,
	Animation:  slider.AnimationFade,
	Infinite:   true,
})
defer engine.Close()
model := carousel.New(engine, slides)`

// SlideViews turns configured slides into renderable cards.
func SlideViews(slides []config.Slide) []ui.Renderable {
	views := make([]ui.Renderable, len(slides))
	for i, s := range slides {
		views[i] = components.VStack(
			components.TitleText(s.Title),
			components.NewText(s.Body),
		)
	}
	return views
}

func header(title string, mode components.ThemeMode) *components.Header {
	action := "t: light mode"
	if mode == components.ThemeLight {
		action = "t: dark mode"
	}
	return components.NewHeader(title).WithAction(action)
}

func buttonSection(clicks int, focused bool) *components.Section {
	row := components.HStack(
		components.PrimaryButton(buttonLabel).WithEndIcon(buttonIcon).WithFocus(focused),
		components.SecondaryButton("Secondary"),
		components.GhostButton("Ghost"),
		components.NewButton("Disabled").WithDisabled(true),
	).WithGap(1)

	content := []ui.Renderable{row}
	if clicks > 0 {
		content = append(content, components.CaptionText(fmt.Sprintf("clicked %d times", clicks)))
	}
	return components.NewSection("Button", content...).WithCode(buttonCode)
}

func paginationSection(current int) *components.Section {
	return components.NewSection("Pagination",
		components.NewPagination(current, TotalPages),
	).WithCode(paginationCode)
}

func demoModal() *components.Modal {
	return components.NewModal(modalTitle, components.NewText(modalBody))
}

// modalSection shows the trigger button. An inline modal is drawn under it
// when preview is set, for output that cannot overlay.
func modalSection(focused, preview bool) *components.Section {
	content := []ui.Renderable{components.SecondaryButton(modalLabel).WithFocus(focused)}
	if preview {
		content = append(content, demoModal().WithOpen(true))
	}
	return components.NewSection("Modal", content...).WithCode(modalCode)
}

func planSection(selected int, focused bool) *components.Section {
	group := components.NewRadioGroup(planLabel, plans...).WithSelected(selected).WithFocus(focused)
	return components.NewSection("Radio Group", group).WithCode(planCode)
}

func termsSection(checked, focused bool) *components.Section {
	box := components.NewCheckbox(termsLabel).WithChecked(checked).WithFocus(focused)
	return components.NewSection("Checkbox", box).WithCode(termsCode)
}

func inputSection(f form, focus focusTarget) *components.Section {
	content := []ui.Renderable{
		components.NewInputField("Email", f.view(fieldEmail)).
			WithRequired(true).
			WithIcons("✉", "").
			WithError(f.errorFor(fieldEmail)).
			WithFocus(focus == focusEmail),
		components.NewInputField("Password", f.view(fieldPassword)).
			WithIcons("", "🔒").
			WithError(f.errorFor(fieldPassword)).
			WithFocus(focus == focusPassword),
	}
	if f.submitted != "" {
		content = append(content, components.SuccessAlert("Signed in as "+f.submitted))
	}
	return components.NewSection("Input", content...).WithCode(inputCode)
}

// sliderSectionOffset is the number of rows between the top of the slider
// section and its content: the heading and the gap under it.
const sliderSectionOffset = 2

func sliderSection(content ui.Renderable) *components.Section {
	return components.NewSection("Slider", content).WithCode(sliderCode)
}
