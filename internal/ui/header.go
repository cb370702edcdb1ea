package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const appTitle = " postview"

// Header is the top bar: app title on the left, the selected user on the right.
type Header struct {
	width    int
	userName string
	handle   string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetUser sets the selected user's display name and username.
// An empty name means no user is selected.
func (h *Header) SetUser(name, username string) {
	h.userName = name
	h.handle = username
}

// View renders the header
func (h *Header) View() string {
	right := "Choose a user (u) "
	muteFrom := -1
	if h.userName != "" {
		right = h.userName
		if h.handle != "" {
			right += " @" + h.handle
		}
		right += " "
	} else {
		muteFrom = 0
	}

	pad := h.width - runewidth.StringWidth(appTitle) - runewidth.StringWidth(right)
	if pad < 1 {
		pad = 1
	}
	content := appTitle + strings.Repeat(" ", pad) + right
	if h.width > 0 {
		content = runewidth.Truncate(content, h.width, "")
	}

	rightStart := len([]rune(content)) - len([]rune(right))
	if muteFrom == 0 {
		muteFrom = rightStart
	} else if h.handle != "" && rightStart >= 0 {
		muteFrom = rightStart + len([]rune(h.userName))
	}
	return h.renderGradient(content, muteFrom)
}

func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient paints content over a background fading from the theme's
// primary color to its background. Runes from muteFrom on use muted text.
func (h *Header) renderGradient(content string, muteFrom int) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	titleLen := len([]rune(appTitle))
	var b strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < titleLen)
		if muteFrom >= 0 && i >= muteFrom {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}
