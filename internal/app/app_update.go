package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/postview/internal/keys"
	"github.com/zhubert/postview/internal/session"
)

// handleKey routes a key press: modals first, then the comment form, then
// pane navigation, then the shortcut registry.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("key press", "key", key, "focus", m.focus, "modalVisible", m.modal.IsVisible())

	// ctrl+c always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if m.focus == FocusComposer {
		return m.handleComposerKey(msg)
	}

	if m.handleNavigation(key) {
		return m, nil
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}
	return m, nil
}

// handleComposerKey handles keys while the comment form has focus
func (m *Model) handleComposerKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		return m, m.dispatch(session.ComposerToggled{})
	case keys.CtrlS:
		return m, m.dispatch(session.ComposerSubmitted{})
	case keys.CtrlL:
		cmd := m.dispatch(session.ComposerCleared{})
		return m, tea.Batch(cmd, m.form.Focus(session.FieldName))
	}

	cmd, edit := m.form.Update(msg)
	if edit == nil {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.dispatch(session.FieldEdited{Field: edit.Field, Value: edit.Value}))
}

// handleNavigation moves the cursor of the focused pane.
// Returns true if the key was a navigation key.
func (m *Model) handleNavigation(key string) bool {
	if m.focus == FocusPosts {
		n := m.session.Posts.Len()
		switch key {
		case keys.Up, "k":
			m.posts.Move(-1, n)
		case keys.Down, "j":
			m.posts.Move(1, n)
		case keys.Home, "g":
			m.posts.Home()
		case keys.End, "G":
			m.posts.End(n)
		case keys.PgUp:
			m.posts.Move(-m.posts.PageSize(), n)
		case keys.PgDown:
			m.posts.Move(m.posts.PageSize(), n)
		default:
			return false
		}
		return true
	}

	n := m.session.Comments.Len()
	switch key {
	case keys.Up, "k":
		m.detail.MoveSelection(-1, n)
	case keys.Down, "j":
		m.detail.MoveSelection(1, n)
	case keys.Home, "g":
		m.detail.MoveSelection(-n, n)
	case keys.End, "G":
		m.detail.MoveSelection(n, n)
	case keys.PgUp:
		m.detail.ScrollUp()
	case keys.PgDown:
		m.detail.ScrollDown()
	default:
		return false
	}
	return true
}

// handleWheel scrolls whichever pane is under the pointer
func (m *Model) handleWheel(msg tea.MouseWheelMsg) {
	if m.modal.IsVisible() {
		return
	}
	mouse := msg.Mouse()
	up := mouse.Button == tea.MouseWheelUp
	down := mouse.Button == tea.MouseWheelDown
	if !up && !down {
		return
	}

	postsWidth := m.posts.Width()
	if m.session.CurrentPost != nil && mouse.X >= postsWidth {
		if up {
			m.detail.ScrollUp()
		} else {
			m.detail.ScrollDown()
		}
		return
	}

	delta := 1
	if up {
		delta = -1
	}
	m.posts.Move(delta, m.session.Posts.Len())
}
