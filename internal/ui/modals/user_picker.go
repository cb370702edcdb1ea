package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// NoUserID is the picker value that deselects the current user.
const NoUserID = 0

// UserPickerState lets the user pick whose posts to browse.
type UserPickerState struct {
	form   *huh.Form
	userID int
	count  int
}

func (*UserPickerState) modalState() {}

func (s *UserPickerState) Title() string { return "Choose a user" }

func (s *UserPickerState) Help() string {
	if s.count == 0 {
		return "Esc: close"
	}
	return "↑/↓: move  /: filter  Enter: select  Esc: cancel"
}

func (s *UserPickerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	if s.count == 0 {
		empty := lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("No users loaded yet.")
		return lipgloss.JoinVertical(lipgloss.Left, title, empty, help)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *UserPickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if s.count == 0 {
		return s, nil
	}
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// SelectedUserID returns the highlighted user id, or NoUserID for the
// "No user" entry.
func (s *UserPickerState) SelectedUserID() int {
	return s.userID
}

// HasUsers reports whether there is anything to pick
func (s *UserPickerState) HasUsers() bool {
	return s.count > 0
}

// NewUserPickerState builds the picker with current preselected. current
// is NoUserID when nobody is selected.
func NewUserPickerState(users []UserOption, current int) *UserPickerState {
	s := &UserPickerState{userID: current, count: len(users)}
	if len(users) == 0 {
		return s
	}

	options := make([]huh.Option[int], 0, len(users)+1)
	options = append(options, huh.NewOption("No user", NoUserID))
	for _, u := range users {
		options = append(options, huh.NewOption(u.Label(), u.ID))
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Options(options...).
			Height(UserPickerMaxVisible).
			Filtering(true).
			Value(&s.userID),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)

	initHuhForm(s.form)
	return s
}
