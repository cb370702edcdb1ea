package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// ThemeOption is a theme as listed in the picker
type ThemeOption struct {
	Name  string // config value
	Label string
}

// ThemePickerState selects the color theme.
type ThemePickerState struct {
	form     *huh.Form
	selected string
}

func (*ThemePickerState) modalState() {}

func (s *ThemePickerState) Title() string { return "Theme" }

func (s *ThemePickerState) Help() string {
	return "↑/↓: move  Enter: apply  Esc: cancel"
}

func (s *ThemePickerState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.form.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *ThemePickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// SelectedTheme returns the highlighted theme's config name
func (s *ThemePickerState) SelectedTheme() string {
	return s.selected
}

// NewThemePickerState builds the picker with current preselected
func NewThemePickerState(themes []ThemeOption, current string) *ThemePickerState {
	s := &ThemePickerState{selected: current}

	options := make([]huh.Option[string], len(themes))
	for i, t := range themes {
		options[i] = huh.NewOption(t.Label, t.Name)
	}
	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Options(options...).
			Height(ThemePickerMaxVisible).
			Value(&s.selected),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)

	initHuhForm(s.form)
	return s
}
