package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// AnimationTickMsg advances the loaders and expires flash messages
type AnimationTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// AnimationTick returns a command that sends the next animation tick
func AnimationTick() tea.Cmd {
	return tea.Tick(AnimationInterval, func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}

// Spinner is the frame counter shared by every loader on screen
type Spinner struct {
	frame int
}

// Advance moves to the next frame
func (s *Spinner) Advance() {
	s.frame = (s.frame + 1) % len(spinnerFrames)
}

// Frame returns the current glyph
func (s *Spinner) Frame() string {
	return spinnerFrames[s.frame]
}

// Loader renders a spinner followed by a label
func (s *Spinner) Loader(label string) string {
	return StatusLoadingStyle.Render(s.Frame() + " " + label)
}
