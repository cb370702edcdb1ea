// Package modals provides modal dialog state types for the UI.
// Each modal type implements the ModalState interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
package modals

import (
	tea "charm.land/bubbletea/v2"
)

// ModalState is a discriminated union interface for modal-specific state.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// ModalWithPreferredWidth is an optional interface that modals can implement
// to specify a custom width. If not implemented, the default ModalWidth is used.
type ModalWithPreferredWidth interface {
	ModalState
	PreferredWidth() int
}

// HelpShortcut represents a single keyboard shortcut for display.
// Runnable entries can be run from the help modal with enter.
type HelpShortcut struct {
	Key      string
	Desc     string
	Runnable bool
}

// HelpSection represents a group of related shortcuts
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

// UserOption is a user as listed in the user picker
type UserOption struct {
	ID       int
	Name     string
	Username string
}

// Label is the picker line for the user
func (u UserOption) Label() string {
	if u.Username == "" {
		return u.Name
	}
	return u.Name + " (@" + u.Username + ")"
}
