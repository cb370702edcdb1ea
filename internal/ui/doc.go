// Package ui provides the visual components of the postview TUI.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line): app title, selected user           │
//	├─────────────────────────┬───────────────────────────┤
//	│                         │                           │
//	│   Posts pane            │   Detail pane             │
//	│   (full width until a   │   post, comments,         │
//	│    post is opened)      │   composer                │
//	│                         │                           │
//	├─────────────────────────┴───────────────────────────┤
//	│ Footer (1 line): key bindings or a flash message    │
//	└─────────────────────────────────────────────────────┘
//
// Components never own application state. Each View takes the current
// session.Session and renders the element its phase calls for, so the
// precedence rules live in one place (package session) and the panes stay
// dumb. The components only keep presentation state: cursor rows, scroll
// offsets and the text widgets behind the comment composer.
//
// ViewContext is the singleton for layout math. Styles are package
// variables rebuilt from the active Theme by SetTheme; the modal subset is
// pushed to package modals on every rebuild.
package ui
