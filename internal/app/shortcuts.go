package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/skratchdot/open-golang/open"
	"github.com/zhubert/postview/internal/clipboard"
	"github.com/zhubert/postview/internal/keys"
	"github.com/zhubert/postview/internal/session"
	"github.com/zhubert/postview/internal/ui"
	"github.com/zhubert/postview/internal/ui/modals"
)

// Side-effecting helpers, swapped out in tests.
var (
	copyToClipboard = clipboard.WriteText
	openURL         = open.Start
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for the footer-independent shortcuts
// and the help modal.
type Shortcut struct {
	Key            string                              // The key binding (e.g., "u", "tab")
	DisplayKey     string                              // Display name in help; defaults to Key
	Description    string                              // Human-readable description
	Category       string                              // Section for help modal grouping
	RequiresUser   bool                                // A user must be selected
	RequiresPost   bool                                // A post must be open
	RequiresDetail bool                                // The detail pane must have focus
	Handler        func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition      func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryPosts      = "Posts"
	CategoryComments   = "Comments"
	CategoryComposer   = "Comment form"
	CategoryGeneral    = "General"
)

var categoryOrder = []string{
	CategoryNavigation,
	CategoryPosts,
	CategoryComments,
	CategoryComposer,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of keyboard shortcuts. Entries
// appear in the help modal and run from both key presses and the modal.
var ShortcutRegistry = []Shortcut{
	{
		Key:          keys.Tab,
		Description:  "Switch between posts and comments",
		Category:     CategoryNavigation,
		RequiresPost: true,
		Handler:      shortcutToggleFocus,
	},
	{
		Key:         keys.Escape,
		Description: "Back to posts / close the open post",
		Category:    CategoryNavigation,
		Handler:     shortcutBack,
		Condition:   func(m *Model) bool { return m.session.CurrentPost != nil },
	},
	{
		Key:         "u",
		Description: "Choose a user",
		Category:    CategoryPosts,
		Handler:     shortcutUserPicker,
	},
	{
		Key:          keys.Enter,
		DisplayKey:   "enter/space",
		Description:  "Open or close the highlighted post",
		Category:     CategoryPosts,
		RequiresUser: true,
		Handler:      shortcutTogglePost,
		Condition: func(m *Model) bool {
			return m.focus == FocusPosts && m.session.PostsElement() == session.ElementPostsList
		},
	},
	{
		Key:          "r",
		Description:  "Reload posts for the current user",
		Category:     CategoryPosts,
		RequiresUser: true,
		Handler:      shortcutReload,
	},
	{
		Key:          "w",
		Description:  "Write a comment",
		Category:     CategoryComments,
		RequiresPost: true,
		Handler:      shortcutWriteComment,
		Condition:    func(m *Model) bool { return m.session.Comments.Phase.Settled() },
	},
	{
		Key:            "d",
		Description:    "Delete the highlighted comment",
		Category:       CategoryComments,
		RequiresPost:   true,
		RequiresDetail: true,
		Handler:        shortcutDeleteComment,
		Condition:      hasSelectedComment,
	},
	{
		Key:            "y",
		Description:    "Copy the author's email",
		Category:       CategoryComments,
		RequiresPost:   true,
		RequiresDetail: true,
		Handler:        shortcutCopyEmail,
		Condition:      hasSelectedComment,
	},
	{
		Key:            "m",
		Description:    "Email the author",
		Category:       CategoryComments,
		RequiresPost:   true,
		RequiresDetail: true,
		Handler:        shortcutMailAuthor,
		Condition:      hasSelectedComment,
	},
	{
		Key:         "t",
		Description: "Change theme",
		Category:    CategoryGeneral,
		Handler:     shortcutTheme,
	},
	{
		Key:         "q",
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut lives outside the registry since the help sections are
// built from the registry. ExecuteShortcut runs shortcutHelp for it.
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are handled elsewhere but listed in help.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ j/k", Description: "Move the highlight", Category: CategoryNavigation},
	{DisplayKey: "home/end", Description: "First / last row", Category: CategoryNavigation},
	{DisplayKey: "pgup/pgdn", Description: "Scroll the open post", Category: CategoryNavigation},
	{DisplayKey: "ctrl+s", Description: "Add the comment", Category: CategoryComposer},
	{DisplayKey: "ctrl+l", Description: "Clear the form", Category: CategoryComposer},
	{DisplayKey: "tab", Description: "Next field", Category: CategoryComposer},
	{DisplayKey: "esc", Description: "Close the form", Category: CategoryComposer},
}

func hasSelectedComment(m *Model) bool {
	_, ok := m.detail.SelectedComment(m.session)
	return ok
}

// isShortcutApplicable checks the shortcut's guards against the model
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresUser && m.session.CurrentUser == nil {
		return false
	}
	if s.RequiresPost && m.session.CurrentPost == nil {
		return false
	}
	if s.RequiresDetail && m.focus != FocusDetail {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and its guards passed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if key == keys.Space {
		key = keys.Enter
	}
	if key == helpShortcut.Key {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			m.log.Debug("shortcut guard failed", "key", key, "focus", m.focus)
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

func displayKey(s Shortcut) string {
	if s.DisplayKey != "" {
		return s.DisplayKey
	}
	return s.Key
}

// shortcutForHelp maps a runnable help entry back to its shortcut. Display
// key and description must both match; display-only entries never do.
func shortcutForHelp(entry modals.HelpShortcut) (Shortcut, bool) {
	if !entry.Runnable {
		return Shortcut{}, false
	}
	for _, s := range append(ShortcutRegistry, helpShortcut) {
		if displayKey(s) == entry.Key && s.Description == entry.Desc {
			return s, true
		}
	}
	return Shortcut{}, false
}

// getApplicableHelpSections builds help modal sections from the shortcuts
// whose guards pass right now, plus the display-only entries.
func (m *Model) getApplicableHelpSections() []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	for _, s := range append(ShortcutRegistry, helpShortcut) {
		if !m.isShortcutApplicable(s) {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:      displayKey(s),
			Desc:     s.Description,
			Runnable: true,
		})
	}
	for _, s := range DisplayOnlyShortcuts {
		if s.Category == CategoryComposer && m.session.CurrentPost == nil {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey(s),
			Desc: s.Description,
		})
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts := categories[cat]; len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	if m.focus == FocusPosts {
		return m, m.setFocus(FocusDetail)
	}
	return m, m.setFocus(FocusPosts)
}

func shortcutBack(m *Model) (tea.Model, tea.Cmd) {
	if m.focus != FocusPosts {
		return m, m.setFocus(FocusPosts)
	}
	return m, m.dispatch(session.PostToggled{Post: *m.session.CurrentPost})
}

func shortcutUserPicker(m *Model) (tea.Model, tea.Cmd) {
	users := make([]modals.UserOption, len(m.session.Users))
	for i, u := range m.session.Users {
		users[i] = modals.UserOption{ID: u.ID, Name: u.Name, Username: u.Username}
	}
	current := modals.NoUserID
	if m.session.CurrentUser != nil {
		current = m.session.CurrentUser.ID
	}
	m.modal.Show(modals.NewUserPickerState(users, current))
	return m, nil
}

func shortcutTogglePost(m *Model) (tea.Model, tea.Cmd) {
	post, ok := m.posts.Selected(m.session.Posts.Items)
	if !ok {
		return m, nil
	}
	return m, m.dispatch(session.PostToggled{Post: post})
}

func shortcutReload(m *Model) (tea.Model, tea.Cmd) {
	user := *m.session.CurrentUser
	return m, m.dispatch(session.UserSelected{User: &user})
}

func shortcutWriteComment(m *Model) (tea.Model, tea.Cmd) {
	cmd := m.dispatch(session.ComposerToggled{})
	if !m.session.Composer.Visible {
		return m, cmd
	}
	m.form.Focus(session.FieldName)
	return m, tea.Batch(cmd, m.setFocus(FocusComposer))
}

func shortcutDeleteComment(m *Model) (tea.Model, tea.Cmd) {
	c, _ := m.detail.SelectedComment(m.session)
	return m, m.dispatch(session.CommentDeleteRequested{CommentID: c.ID})
}

func shortcutCopyEmail(m *Model) (tea.Model, tea.Cmd) {
	c, _ := m.detail.SelectedComment(m.session)
	if err := copyToClipboard(c.Email); err != nil {
		m.log.Warn("copy failed", "error", err)
		m.ShowFlashError("Could not copy email")
		return m, nil
	}
	m.ShowFlashSuccess(fmt.Sprintf("Copied %s", c.Email))
	return m, nil
}

func shortcutMailAuthor(m *Model) (tea.Model, tea.Cmd) {
	c, _ := m.detail.SelectedComment(m.session)
	if err := openURL(c.MailtoURL()); err != nil {
		m.log.Warn("open mailto failed", "error", err)
		m.ShowFlashError("Could not open a mail client")
		return m, nil
	}
	m.ShowFlashInfo(fmt.Sprintf("Writing to %s", c.Email))
	return m, nil
}

func shortcutTheme(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themes := make([]modals.ThemeOption, len(names))
	for i, n := range names {
		themes[i] = modals.ThemeOption{Name: string(n), Label: ui.GetTheme(n).Name}
	}
	m.modal.Show(modals.NewThemePickerState(themes, string(ui.CurrentThemeName())))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewHelpState(m.getApplicableHelpSections()))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
