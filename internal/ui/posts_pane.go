package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/zhubert/postview/internal/api"
	"github.com/zhubert/postview/internal/session"
)

// PostsPane renders the selected user's posts as a table with a cursor row.
type PostsPane struct {
	width   int
	height  int
	focused bool
	cursor  int
	offset  int
}

// NewPostsPane creates an empty posts pane
func NewPostsPane() *PostsPane {
	return &PostsPane{focused: true}
}

// SetSize sets the outer size of the pane, borders included
func (p *PostsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Width returns the rendered width including the border
func (p *PostsPane) Width() int {
	return p.width
}

// SetFocused sets whether the pane owns the keyboard
func (p *PostsPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether the pane owns the keyboard
func (p *PostsPane) IsFocused() bool {
	return p.focused
}

// Cursor returns the highlighted row index
func (p *PostsPane) Cursor() int {
	return p.cursor
}

// Reset moves the cursor back to the first row
func (p *PostsPane) Reset() {
	p.cursor = 0
	p.offset = 0
}

// Move shifts the cursor by delta rows, clamped to [0, n).
func (p *PostsPane) Move(delta, n int) {
	p.cursor = clamp(p.cursor+delta, 0, n-1)
}

// Home moves the cursor to the first row
func (p *PostsPane) Home() {
	p.cursor = 0
}

// End moves the cursor to the last of n rows
func (p *PostsPane) End(n int) {
	p.cursor = max(n-1, 0)
}

// PageSize is the number of table rows visible at once
func (p *PostsPane) PageSize() int {
	// title, table header
	return max(GetViewContext().InnerHeight(p.height)-TitleHeight-1, 1)
}

// Selected returns the post under the cursor
func (p *PostsPane) Selected(posts []api.Post) (api.Post, bool) {
	if p.cursor < 0 || p.cursor >= len(posts) {
		return api.Post{}, false
	}
	return posts[p.cursor], true
}

// View renders the pane for the given state
func (p *PostsPane) View(s session.Session, sp *Spinner) string {
	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(p.width)

	title := "Posts"
	if s.CurrentUser != nil {
		title += " · " + s.CurrentUser.Name
	}
	lines := []string{PanelTitleStyle.Render(runewidth.Truncate(title, max(innerWidth-2, 1), "…"))}

	switch s.PostsElement() {
	case session.ElementNoSelectedUser:
		lines = append(lines, PlaceholderStyle.Render(" No user selected"))
	case session.ElementPostsLoader:
		lines = append(lines, " "+sp.Loader("Loading posts…"))
	case session.ElementPostsLoadingError:
		lines = append(lines, StatusErrorStyle.Render(" Something went wrong!"))
	case session.ElementNoPostsYet:
		lines = append(lines, PlaceholderStyle.Render(" No posts yet"))
	case session.ElementPostsList:
		lines = append(lines, p.renderTable(s, innerWidth)...)
	}

	style := PanelStyle
	if p.focused {
		style = PanelFocusedStyle
	}
	return style.Width(p.width).Height(p.height).Render(strings.Join(lines, "\n"))
}

func (p *PostsPane) renderTable(s session.Session, innerWidth int) []string {
	posts := s.Posts.Items
	p.cursor = clamp(p.cursor, 0, len(posts)-1)

	page := p.PageSize()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+page {
		p.offset = p.cursor - page + 1
	}
	p.offset = clamp(p.offset, 0, max(len(posts)-page, 0))

	titleWidth := max(innerWidth-PostIDColumnWidth-PostButtonColumnWidth-2, 4)
	header := " " + runewidth.FillRight("#", PostIDColumnWidth) +
		runewidth.FillRight("Title", titleWidth) + " " + "Action"
	lines := []string{MutedStyle.Render(runewidth.Truncate(header, innerWidth, ""))}

	end := min(p.offset+page, len(posts))
	for i := p.offset; i < end; i++ {
		post := posts[i]
		id := runewidth.FillRight(fmt.Sprintf("%d", post.ID), PostIDColumnWidth)
		postTitle := runewidth.FillRight(runewidth.Truncate(post.Title, titleWidth, "…"), titleWidth)

		button := ButtonStyle.Render(OpenButtonLabel)
		if s.IsPostOpen(post.ID) {
			button = ButtonActiveStyle.Render(CloseButtonLabel)
		}

		if i == p.cursor && p.focused {
			row := " " + id + postTitle + " " + buttonLabel(s, post)
			lines = append(lines, RowSelectedStyle.Width(innerWidth).Render(row))
			continue
		}
		lines = append(lines, RowStyle.Render(" "+PostIDStyle.Render(id)+postTitle+" "+button))
	}
	return lines
}

func buttonLabel(s session.Session, post api.Post) string {
	if s.IsPostOpen(post.ID) {
		return CloseButtonLabel
	}
	return OpenButtonLabel
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
