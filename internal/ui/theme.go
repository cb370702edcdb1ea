package ui

import (
	"charm.land/lipgloss/v2"
	"github.com/zhubert/postview/internal/ui/modals"
)

// Theme is the color palette used by every pane, the footer and the modals.
type Theme struct {
	Name string

	Primary   string // focus, headings, header gradient start
	Secondary string // key hints, post ids

	Bg         string
	BgSelected string // cursor row background (defaults to Primary if empty)

	Text        string
	TextMuted   string
	TextInverse string

	Author  string // comment author names
	Warning string
	Error   string
	Success string
	Info    string

	Border      string
	BorderFocus string // defaults to Primary if empty
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName identifies a built-in theme in config files.
type ThemeName string

const (
	ThemeMidnight ThemeName = "midnight"
	ThemeNord     ThemeName = "nord"
	ThemeGruvbox  ThemeName = "gruvbox"
	ThemePaper    ThemeName = "paper"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeMidnight

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeMidnight: {
		Name:        "Midnight",
		Primary:     "#6D5BD0",
		Secondary:   "#2BB3C0",
		Bg:          "#171B26",
		Text:        "#ECEFF4",
		TextMuted:   "#A1A8B8",
		TextInverse: "#171B26",
		Author:      "#B4A6F2",
		Warning:     "#E8A33D",
		Error:       "#E5534B",
		Success:     "#3FB47A",
		Info:        "#2BB3C0",
		Border:      "#313849",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		BgSelected:  "#4C566A",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Author:      "#B48EAD",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Success:     "#A3BE8C",
		Info:        "#5E81AC",
		Border:      "#3B4252",
	},
	ThemeGruvbox: {
		Name:        "Gruvbox",
		Primary:     "#D79921",
		Secondary:   "#689D6A",
		Bg:          "#282828",
		BgSelected:  "#504945",
		Text:        "#EBDBB2",
		TextMuted:   "#A89984",
		TextInverse: "#282828",
		Author:      "#D3869B",
		Warning:     "#FABD2F",
		Error:       "#FB4934",
		Success:     "#B8BB26",
		Info:        "#83A598",
		Border:      "#3C3836",
	},
	ThemePaper: {
		Name:        "Paper",
		Primary:     "#4F46E5",
		Secondary:   "#0E7490",
		Bg:          "#FAFAF7",
		BgSelected:  "#E0E7FF",
		Text:        "#1C1917",
		TextMuted:   "#57534E",
		TextInverse: "#FAFAF7",
		Author:      "#7C3AED",
		Warning:     "#B45309",
		Error:       "#B91C1C",
		Success:     "#047857",
		Info:        "#0E7490",
		Border:      "#D6D3D1",
		BorderFocus: "#4F46E5",
	},
}

// ThemeNames returns all built-in theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeMidnight, ThemeNord, ThemeGruvbox, ThemePaper}
}

// GetTheme returns a theme by name, falling back to the default
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the active theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme activates a theme and regenerates all styles. Unknown names
// select the default theme.
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
}

// SetThemeByName activates a theme by its config string
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// NextTheme returns the theme after the active one, wrapping around.
func NextTheme() ThemeName {
	names := ThemeNames()
	for i, n := range names {
		if n == currentThemeName {
			return names[(i+1)%len(names)]
		}
	}
	return DefaultTheme
}

func init() {
	regenerateStyles()
}

// regenerateStyles rebuilds every style variable from the active theme
// and pushes the modal subset down to the modals package.
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorAuthor = lipgloss.Color(t.Author)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorInfo = lipgloss.Color(t.Info)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)
	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)
	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)
	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)
	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	RowStyle = lipgloss.NewStyle()
	RowSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true)
	PostIDStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ButtonStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	ButtonActiveStyle = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	PostTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	PostBodyStyle = lipgloss.NewStyle().Foreground(ColorText)
	SectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	CommentAuthorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAuthor)
	CommentEmailStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
	CommentBodyStyle = lipgloss.NewStyle().Foreground(ColorText)
	CommentSelectedStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	CommentStyle = lipgloss.NewStyle().PaddingLeft(2)
	DeleteButtonStyle = lipgloss.NewStyle().Foreground(ColorError)

	FormLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	FormLabelFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	FormErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	FormCounterStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	StatusLoadingStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	FlashErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	FlashWarningStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)
	FlashInfoStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	FlashSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, RowStyle, RowSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning,
		ModalInputWidth, ModalInputCharLimit, ModalWidth,
	)
}
