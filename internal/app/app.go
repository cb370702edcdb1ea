// Package app wires the postview TUI together: key presses and backend
// responses become session events, the session reducer decides what
// happens, and the effects it returns become Bubble Tea commands.
package app

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/postview/internal/api"
	"github.com/zhubert/postview/internal/config"
	"github.com/zhubert/postview/internal/logger"
	"github.com/zhubert/postview/internal/session"
	"github.com/zhubert/postview/internal/ui"
)

// Focus represents which panel owns the keyboard
type Focus int

const (
	FocusPosts Focus = iota
	FocusDetail
	FocusComposer
)

// String returns a human-readable name for the focus
func (f Focus) String() string {
	switch f {
	case FocusPosts:
		return "Posts"
	case FocusDetail:
		return "Detail"
	case FocusComposer:
		return "Composer"
	default:
		return "Unknown"
	}
}

// Model is the main Bubble Tea model
type Model struct {
	cfg     *config.Config
	backend api.Backend
	ctx     context.Context
	version string
	log     *slog.Logger

	header  *ui.Header
	footer  *ui.Footer
	posts   *ui.PostsPane
	detail  *ui.DetailPane
	form    *ui.CommentForm
	modal   *ui.Modal
	spinner ui.Spinner

	width  int
	height int
	focus  Focus

	session session.Session
}

// Option configures a Model
type Option func(*Model)

// WithContext sets the context backend requests run under
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// WithVersion sets the version reported at startup
func WithVersion(version string) Option {
	return func(m *Model) {
		m.version = version
	}
}

// New creates the model. Nothing is fetched until Init runs.
func New(cfg *config.Config, backend api.Backend, opts ...Option) *Model {
	if theme := cfg.GetTheme(); theme != "" {
		ui.SetThemeByName(theme)
	}

	m := &Model{
		cfg:     cfg,
		backend: backend,
		ctx:     context.Background(),
		log:     logger.WithComponent("app"),
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		posts:   ui.NewPostsPane(),
		detail:  ui.NewDetailPane(),
		form:    ui.NewCommentForm(),
		modal:   ui.NewModal(),
		focus:   FocusPosts,
		session: session.New(cfg.UserLimit),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Session returns the current selection state
func (m *Model) Session() session.Session {
	return m.session
}

// Focus returns the panel that owns the keyboard
func (m *Model) Focus() Focus {
	return m.focus
}

// Init starts the animation clock and requests the user list
func (m *Model) Init() tea.Cmd {
	m.log.Info("starting", "version", m.version, "api", m.cfg.APIURL)
	return tea.Batch(
		ui.AnimationTick(),
		func() tea.Msg { return session.Mounted{} },
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case ui.AnimationTickMsg:
		m.spinner.Advance()
		m.footer.ClearIfExpired()
		return m, ui.AnimationTick()

	case session.Event:
		return m, m.dispatch(msg)

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseWheelMsg:
		m.handleWheel(msg)
		return m, nil
	}

	if m.modal.IsVisible() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}
	if m.focus == FocusComposer {
		cmd, _ := m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateSizes recalculates pane sizes for the terminal and the open post
func (m *Model) updateSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)

	postsWidth, detailWidth := ctx.PaneWidths(m.session.CurrentPost != nil)
	m.posts.SetSize(postsWidth, ctx.ContentHeight)
	if detailWidth > 0 {
		m.detail.SetSize(detailWidth, ctx.ContentHeight)
		// border, left comment padding, scrollbar slack
		m.form.SetWidth(ctx.InnerWidth(detailWidth) - 4)
	}
}

// setFocus moves keyboard ownership and updates pane highlights
func (m *Model) setFocus(f Focus) tea.Cmd {
	if m.focus != f {
		m.log.Debug("focus changed", "from", m.focus, "to", f)
	}
	m.focus = f
	m.posts.SetFocused(f == FocusPosts)
	m.detail.SetFocused(f != FocusPosts)

	if f == FocusComposer {
		return m.form.Focus(m.form.Focused())
	}
	m.form.Blur()
	return nil
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.WindowTitle = "postview"
	v.SetContent(m.Render())
	return v
}

// Render composes the screen: header, panes and footer, with any modal
// centered on top.
func (m *Model) Render() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	s := m.session
	m.footer.SetContext(ui.FooterContext{
		HasUser:       s.CurrentUser != nil,
		PostOpen:      s.CurrentPost != nil,
		DetailFocused: m.focus != FocusPosts,
		ComposerOpen:  m.focus == FocusComposer,
		HasComments:   s.CommentsElement() == session.ElementComment,
	})

	if m.modal.IsVisible() {
		bgStyle := lipgloss.NewStyle().Background(lipgloss.Color("#000000"))
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.modal.View(m.width, m.height),
			lipgloss.WithWhitespaceStyle(bgStyle),
		)
	}

	panes := m.posts.View(s, &m.spinner)
	if s.CurrentPost != nil {
		form := ""
		if s.Composer.Visible {
			form = m.form.View(s.Composer)
		}
		panes = lipgloss.JoinHorizontal(lipgloss.Top, panes, m.detail.View(s, &m.spinner, form))
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), panes, m.footer.View())
}
