package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/postview/internal/keys"
	"github.com/zhubert/postview/internal/session"
	"github.com/zhubert/postview/internal/ui"
	"github.com/zhubert/postview/internal/ui/modals"
)

// handleModalKey routes modal key events to the handler for the modal's
// state type. Enter and Escape are handled here; other keys go to the modal.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.UserPickerState:
		return m.handleUserPickerModal(key, msg, s)
	case *modals.ThemePickerState:
		return m.handleThemePickerModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	}
	return m.forwardToModal(msg)
}

func (m *Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleUserPickerModal handles key events for the user picker.
// Choosing the current user again reloads their posts.
func (m *Model) handleUserPickerModal(key string, msg tea.KeyPressMsg, state *modals.UserPickerState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		if !state.HasUsers() {
			return m, nil
		}
		id := state.SelectedUserID()
		if id == modals.NoUserID {
			return m, m.dispatch(session.UserSelected{})
		}
		user, ok := m.session.UserByID(id)
		if !ok {
			m.log.Warn("picked user not in session", "userID", id)
			return m, nil
		}
		return m, m.dispatch(session.UserSelected{User: &user})
	}
	return m.forwardToModal(msg)
}

// handleThemePickerModal applies and persists the chosen theme
func (m *Model) handleThemePickerModal(key string, msg tea.KeyPressMsg, state *modals.ThemePickerState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		name := state.SelectedTheme()
		ui.SetThemeByName(name)
		m.form.RefreshStyles()
		m.cfg.SetTheme(name)
		if m.cfg.Path() != "" {
			if err := m.cfg.Save(); err != nil {
				m.log.Error("failed to save theme", "error", err)
				m.modal.SetError("Failed to save: " + err.Error())
				return m, nil
			}
		}
		m.modal.Hide()
		m.ShowFlashInfo(fmt.Sprintf("Theme: %s", ui.CurrentTheme().Name))
		return m, nil
	}
	return m.forwardToModal(msg)
}

// handleHelpModal handles key events for the help modal. Enter runs the
// highlighted shortcut.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		return m.forwardToModal(msg)
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		selected := state.SelectedShortcut()
		if selected == nil {
			return m, nil
		}
		m.modal.Hide()
		sc, ok := shortcutForHelp(*selected)
		if !ok {
			return m, nil
		}
		result, cmd, _ := m.ExecuteShortcut(sc.Key)
		return result, cmd
	}
	return m.forwardToModal(msg)
}
