package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, assigned from the active theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorAuthor      color.Color
	ColorWarning     color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
	ColorInfo        color.Color
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
)

// Posts pane styles
var (
	RowStyle          lipgloss.Style
	RowSelectedStyle  lipgloss.Style
	PostIDStyle       lipgloss.Style
	ButtonStyle       lipgloss.Style
	ButtonActiveStyle lipgloss.Style
	MutedStyle        lipgloss.Style
	PlaceholderStyle  lipgloss.Style
)

// Detail pane styles
var (
	PostTitleStyle       lipgloss.Style
	PostBodyStyle        lipgloss.Style
	SectionTitleStyle    lipgloss.Style
	CommentAuthorStyle   lipgloss.Style
	CommentEmailStyle    lipgloss.Style
	CommentBodyStyle     lipgloss.Style
	CommentStyle         lipgloss.Style
	CommentSelectedStyle lipgloss.Style
	DeleteButtonStyle    lipgloss.Style
)

// Composer form styles
var (
	FormLabelStyle        lipgloss.Style
	FormLabelFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormCounterStyle      lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status and flash styles
var (
	StatusErrorStyle   lipgloss.Style
	StatusLoadingStyle lipgloss.Style

	FlashErrorStyle   lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashInfoStyle    lipgloss.Style
	FlashSuccessStyle lipgloss.Style
)
