package cli

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/mehil/internal/cli/formatter"
	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// mehilHuhTheme returns a huh theme using the formatter palette.
func mehilHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

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
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// calcFormValues backs the interactive calculation form. The defaults
// mirror the calc flags.
type calcFormValues struct {
	date   string
	value  string
	unit   deadline.Unit
	recess bool
	title  string
}

func newCalcFormValues(today time.Time) *calcFormValues {
	return &calcFormValues{
		date:   deadline.DateOf(today).Format(deadline.DateLayout),
		value:  "15",
		unit:   deadline.UnitDay,
		recess: true,
	}
}

// calcForm collects a calculation request and an optional agenda title.
func calcForm(v *calcFormValues) *huh.Form {
	unitOptions := make([]huh.Option[deadline.Unit], 0, len(deadline.ValidUnits))
	for _, u := range deadline.ValidUnits {
		unitOptions = append(unitOptions, huh.NewOption(deadline.UnitLabel(u), u))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tebliğ Tarihi").
				Description("YYYY-MM-DD, boş bırakılırsa bugün").
				Placeholder(v.date).
				Value(&v.date).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Süre").
				Placeholder("15").
				Value(&v.value).
				Validate(validatePositiveInt),
			huh.NewSelect[deadline.Unit]().
				Title("Süre Türü").
				Options(unitOptions...).
				Value(&v.unit),
			huh.NewConfirm().
				Title("Adli tatil uzatması uygulansın mı?").
				Affirmative("Evet").
				Negative("Hayır").
				Value(&v.recess),
			huh.NewInput().
				Title("Ajandaya kaydet").
				Description("Başlık girilirse sonuç ajandaya eklenir").
				Value(&v.title),
		),
	).WithTheme(mehilHuhTheme()).WithShowHelp(false)
}

func (v *calcFormValues) request(today time.Time) (deadline.Request, error) {
	f := &requestFlags{
		date:     strings.TrimSpace(v.date),
		value:    v.value,
		unit:     unitValue(v.unit),
		noRecess: !v.recess,
	}
	return f.request(today)
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("pozitif bir sayı girin")
	}
	return nil
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := deadline.ParseDate(s); err != nil {
		return errors.New("YYYY-MM-DD biçimini kullanın")
	}
	return nil
}
