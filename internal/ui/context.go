package ui

import (
	"sync"

	"github.com/zhubert/postview/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	TerminalWidth  int
	TerminalHeight int

	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	// PostsWidth and DetailWidth split the content row while a post is open.
	// With no post open the posts pane takes the full width.
	PostsWidth  int
	DetailWidth int

	mu sync.Mutex
}

var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	v.PostsWidth = width / PostsWidthRatio
	v.DetailWidth = width - v.PostsWidth

	logger.WithComponent("ui").Debug("terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"postsWidth", v.PostsWidth,
		"detailWidth", v.DetailWidth,
	)
}

// PaneWidths returns the posts and detail pane widths for the current
// layout. detail is zero when no post is open.
func (v *ViewContext) PaneWidths(postOpen bool) (posts, detail int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !postOpen {
		return v.TerminalWidth, 0
	}
	return v.PostsWidth, v.DetailWidth
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(panelWidth-BorderSize, 0)
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(panelHeight-BorderSize, 0)
}
