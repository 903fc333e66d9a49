package showcase

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
)

type field int

const (
	fieldEmail field = iota
	fieldPassword
	fieldCount
)

const (
	passwordMinLen = 8
	inputWidth     = 28
)

// credentials is the validated shape of the sign-in demo.
type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

var formValidator = validator.New(validator.WithRequiredStructEnabled())

// form holds the two demo inputs. Errors are computed on every edit but only
// shown for fields the user has left or submitted.
type form struct {
	inputs    [fieldCount]textinput.Model
	touched   [fieldCount]bool
	errs      [fieldCount]string
	submitted string
}

func newForm() form {
	email := textinput.New()
	email.Placeholder = "example@gmail.com"
	email.Prompt = ""
	email.CharLimit = 254
	email.Width = inputWidth

	password := textinput.New()
	password.Placeholder = "Enter your password"
	password.Prompt = ""
	password.CharLimit = 64
	password.Width = inputWidth
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	f := form{inputs: [fieldCount]textinput.Model{email, password}}
	f.validate()
	return f
}

func (f *form) focus(fl field) tea.Cmd {
	f.blur()
	return f.inputs[fl].Focus()
}

func (f *form) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// leave marks fl as visited so its error becomes visible.
func (f *form) leave(fl field) {
	f.touched[fl] = true
	f.validate()
}

// update feeds msg to the focused input and revalidates.
func (f *form) update(fl field, msg tea.Msg) tea.Cmd {
	before := f.inputs[fl].Value()
	var cmd tea.Cmd
	f.inputs[fl], cmd = f.inputs[fl].Update(msg)
	if f.inputs[fl].Value() != before {
		f.submitted = ""
		f.validate()
	}
	return cmd
}

// submit reveals every error and records the email when the form is valid.
func (f *form) submit() bool {
	for i := range f.touched {
		f.touched[i] = true
	}
	f.validate()
	for _, msg := range f.errs {
		if msg != "" {
			f.submitted = ""
			return false
		}
	}
	f.submitted = f.inputs[fieldEmail].Value()
	return true
}

func (f *form) validate() {
	f.errs = [fieldCount]string{}

	err := formValidator.Struct(credentials{
		Email:    f.inputs[fieldEmail].Value(),
		Password: f.inputs[fieldPassword].Value(),
	})
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return
	}
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Email":
			f.errs[fieldEmail] = emailMessage(fe.Tag())
		case "Password":
			f.errs[fieldPassword] = passwordMessage(fe.Tag())
		}
	}
}

func (f form) errorFor(fl field) string {
	if !f.touched[fl] {
		return ""
	}
	return f.errs[fl]
}

func (f form) view(fl field) string {
	return f.inputs[fl].View()
}

func (f form) value(fl field) string {
	return f.inputs[fl].Value()
}

func emailMessage(tag string) string {
	if tag == "required" {
		return "Email is required"
	}
	return "Enter a valid email address"
}

func passwordMessage(tag string) string {
	if tag == "required" {
		return "Password is required"
	}
	return fmt.Sprintf("Password must be at least %d characters", passwordMinLen)
}
