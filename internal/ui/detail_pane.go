package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/postview/internal/api"
	"github.com/zhubert/postview/internal/session"
)

// DetailPane renders the open post, its comments and the composer inside
// a scrolling viewport.
type DetailPane struct {
	width    int
	height   int
	focused  bool
	selected int
	viewport viewport.Model

	// line offset of each rendered comment, used to keep the selection visible
	commentLines []int
}

// NewDetailPane creates an empty detail pane
func NewDetailPane() *DetailPane {
	return &DetailPane{viewport: viewport.New()}
}

// SetSize sets the outer size of the pane, borders included
func (d *DetailPane) SetSize(width, height int) {
	d.width = width
	d.height = height
	ctx := GetViewContext()
	d.viewport.SetWidth(ctx.InnerWidth(width))
	d.viewport.SetHeight(max(ctx.InnerHeight(height), 1))
}

// SetFocused sets whether the pane owns the keyboard
func (d *DetailPane) SetFocused(focused bool) {
	d.focused = focused
}

// IsFocused returns whether the pane owns the keyboard
func (d *DetailPane) IsFocused() bool {
	return d.focused
}

// Selected returns the index of the highlighted comment
func (d *DetailPane) Selected() int {
	return d.selected
}

// SelectedComment returns the highlighted comment, if any
func (d *DetailPane) SelectedComment(s session.Session) (api.Comment, bool) {
	if s.CommentsElement() != session.ElementComment {
		return api.Comment{}, false
	}
	items := s.Comments.Items
	if d.selected < 0 || d.selected >= len(items) {
		return api.Comment{}, false
	}
	return items[d.selected], true
}

// MoveSelection shifts the highlighted comment by delta within n comments
func (d *DetailPane) MoveSelection(delta, n int) {
	d.selected = clamp(d.selected+delta, 0, n-1)
}

// Reset scrolls to the top and clears the selection
func (d *DetailPane) Reset() {
	d.selected = 0
	d.viewport.GotoTop()
}

// ScrollUp and ScrollDown page the viewport
func (d *DetailPane) ScrollUp() {
	d.viewport.PageUp()
}

func (d *DetailPane) ScrollDown() {
	d.viewport.PageDown()
}

// View renders the pane. form is the rendered composer, shown only while
// the composer is visible.
func (d *DetailPane) View(s session.Session, sp *Spinner, form string) string {
	d.viewport.SetContent(d.content(s, sp, form))
	d.ensureSelectionVisible(s)

	style := PanelStyle
	if d.focused {
		style = PanelFocusedStyle
	}
	return style.Width(d.width).Height(d.height).Render(d.viewport.View())
}

func (d *DetailPane) wrapWidth() int {
	if w := d.viewport.Width(); w > 2 {
		return w - 1
	}
	return DefaultWrapWidth
}

func (d *DetailPane) content(s session.Session, sp *Spinner, form string) string {
	d.commentLines = d.commentLines[:0]
	if s.CurrentPost == nil {
		return ""
	}
	width := d.wrapWidth()
	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	add(PostTitleStyle.Render(ansi.Wordwrap(s.CurrentPost.Heading(), width, "")))
	add(PostBodyStyle.Render(ansi.Wordwrap(s.CurrentPost.Body, width, "")))
	lines = append(lines, "")

	switch s.CommentsElement() {
	case session.ElementCommentsLoader:
		add(sp.Loader("Loading comments…"))
	case session.ElementCommentsError:
		add(StatusErrorStyle.Render("Something went wrong"))
	case session.ElementNoCommentsMessage:
		add(PlaceholderStyle.Render("No comments yet"))
	case session.ElementComment:
		add(SectionTitleStyle.Render("Comments:"))
		d.selected = clamp(d.selected, 0, len(s.Comments.Items)-1)
		for i, c := range s.Comments.Items {
			d.commentLines = append(d.commentLines, len(lines))
			add(d.renderComment(c, i == d.selected && d.focused, width))
		}
	}

	if s.ShowWriteButton() {
		lines = append(lines, "")
		add(ButtonStyle.Render("[Write a comment]") + MutedStyle.Render(" w"))
	}
	if s.Composer.Visible && form != "" {
		lines = append(lines, "")
		add(form)
	}
	return strings.Join(lines, "\n")
}

func (d *DetailPane) renderComment(c api.Comment, selected bool, width int) string {
	header := CommentAuthorStyle.Render(ansi.Truncate(c.Name, max(width-12, 8), "…")) +
		" " + DeleteButtonStyle.Render("[Delete]")
	email := CommentEmailStyle.Render(fmt.Sprintf("<%s>", c.Email))
	body := CommentBodyStyle.Render(ansi.Wordwrap(c.Body, max(width-3, 8), ""))

	block := strings.Join([]string{header, email, body}, "\n")
	if selected {
		return CommentSelectedStyle.Render(block)
	}
	return CommentStyle.Render(block)
}

func (d *DetailPane) ensureSelectionVisible(s session.Session) {
	if !d.focused || d.selected >= len(d.commentLines) {
		return
	}
	line := d.commentLines[d.selected]
	top := d.viewport.YOffset()
	bottom := top + d.viewport.Height() - 4
	if line < top || line > bottom {
		d.viewport.SetYOffset(line)
	}
}
