package ui

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// Icon returns the glyph shown before the flash text
func (t FlashType) Icon() string {
	switch t {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

func (t FlashType) style() lipgloss.Style {
	switch t {
	case FlashError:
		return FlashErrorStyle
	case FlashWarning:
		return FlashWarningStyle
	case FlashSuccess:
		return FlashSuccessStyle
	default:
		return FlashInfoStyle
	}
}

// FlashMessage is a transient footer message
type FlashMessage struct {
	Text      string
	Type      FlashType
	Duration  time.Duration
	CreatedAt time.Time
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

// FooterContext is the UI state the footer picks its bindings from
type FooterContext struct {
	HasUser       bool
	PostOpen      bool
	DetailFocused bool
	ComposerOpen  bool
	HasComments   bool
}

// Footer is the bottom bar: context key bindings, or a flash message
// while one is active.
type Footer struct {
	width        int
	ctx          FooterContext
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the state used to pick bindings
func (f *Footer) SetContext(ctx FooterContext) {
	f.ctx = ctx
}

// SetFlash shows a message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	if d <= 0 {
		d = DefaultFlashDuration
	}
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		Duration:  d,
		CreatedAt: time.Now(),
	}
}

// ClearFlash removes the current flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Flash returns the current flash message, or nil
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// ClearIfExpired drops an expired flash message and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// Bindings returns the key bindings for the current context
func (f *Footer) Bindings() []KeyBinding {
	c := f.ctx
	switch {
	case c.ComposerOpen && c.DetailFocused:
		return []KeyBinding{
			{Key: "ctrl+s", Desc: "submit"},
			{Key: "ctrl+l", Desc: "clear"},
			{Key: "tab", Desc: "next field"},
			{Key: "esc", Desc: "close form"},
		}
	case c.PostOpen && c.DetailFocused:
		bindings := []KeyBinding{
			{Key: "↑/↓", Desc: "select"},
		}
		if c.HasComments {
			bindings = append(bindings,
				KeyBinding{Key: "d", Desc: "delete"},
				KeyBinding{Key: "y", Desc: "copy email"},
				KeyBinding{Key: "m", Desc: "mail author"},
			)
		}
		return append(bindings,
			KeyBinding{Key: "w", Desc: "write"},
			KeyBinding{Key: "tab", Desc: "posts"},
			KeyBinding{Key: "esc", Desc: "back"},
		)
	case c.HasUser:
		bindings := []KeyBinding{
			{Key: "u", Desc: "user"},
			{Key: "↑/↓", Desc: "move"},
			{Key: "enter", Desc: "open/close"},
			{Key: "r", Desc: "reload"},
		}
		if c.PostOpen {
			bindings = append(bindings, KeyBinding{Key: "tab", Desc: "comments"})
		}
		return append(bindings,
			KeyBinding{Key: "?", Desc: "help"},
			KeyBinding{Key: "q", Desc: "quit"},
		)
	default:
		return []KeyBinding{
			{Key: "u", Desc: "choose user"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		msg := f.flashMessage
		return FooterStyle.Width(f.width).Render(msg.Type.style().Render(msg.Type.Icon() + " " + msg.Text))
	}

	var parts []string
	for _, b := range f.Bindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).Render(content)
}
