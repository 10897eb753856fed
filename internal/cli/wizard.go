package cli

import (
	"github.com/alexanderramin/campusadmin/internal/admin"
	"github.com/alexanderramin/campusadmin/internal/cli/formatter"
	"github.com/alexanderramin/campusadmin/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// campusHuhTheme returns a huh theme matching the formatter palette.
func campusHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themed(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(campusHuhTheme()).WithShowHelp(false)
}

// wizardSelectOption creates a select form over options. It returns nil
// when there is nothing to choose from.
func wizardSelectOption(title string, options []string, result *string) *huh.Form {
	if len(options) == 0 {
		return nil
	}
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}
	return themed(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(opts...).
			Value(result),
	))
}

// wizardAddCollege collects a new college and its first program.
func wizardAddCollege(college, program *string) *huh.Form {
	return themed(huh.NewGroup(
		huh.NewInput().Title("College").Placeholder("College name").Value(college),
		huh.NewInput().Title("Program").Placeholder("Program name").Value(program),
	))
}

// wizardAddRecord builds an input per kind field. values must have one
// slot per field; the inputs write into it.
func wizardAddRecord(label string, fields []admin.Field, values []string) *huh.Form {
	inputs := make([]huh.Field, 0, len(fields))
	for i, f := range fields {
		in := huh.NewInput().
			Title(f.Title).
			Placeholder(f.Placeholder).
			Value(&values[i])
		if f.Date {
			in = in.Validate(validateTaskDate)
		}
		inputs = append(inputs, in)
	}
	return themed(huh.NewGroup(inputs...).Title("New " + label))
}

func validateTaskDate(s string) error {
	_, err := domain.NormalizeTaskDate(s)
	return err
}
