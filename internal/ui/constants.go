// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// PostsWidthRatio is the denominator for the posts pane width while a post is open
	PostsWidthRatio = 2

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 10

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Posts table
const (
	// PostIDColumnWidth fits "#" plus three digits
	PostIDColumnWidth = 5

	// PostButtonColumnWidth fits "[Close]"
	PostButtonColumnWidth = 8

	OpenButtonLabel  = "[Open]"
	CloseButtonLabel = "[Close]"
)

// Composer form
const (
	// ComposerInputCharLimit caps the name and email inputs
	ComposerInputCharLimit = 256

	// ComposerBodyCharLimit caps the comment text
	ComposerBodyCharLimit = 2000

	// ComposerBodyHeight is the number of lines shown for the comment textarea
	ComposerBodyHeight = 4
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50
)

// Timing
const (
	// AnimationInterval drives the spinner and flash expiry
	AnimationInterval = 120 * time.Millisecond

	// DefaultFlashDuration is how long a flash message stays in the footer
	DefaultFlashDuration = 4 * time.Second
)
