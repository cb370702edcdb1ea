package app

import (
	"github.com/zhubert/postview/internal/ui"
)

// ShowFlash displays a flash message in the footer. The animation tick
// clears it once it expires.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) {
	m.footer.SetFlashWithDuration(text, flashType, m.cfg.FlashDuration)
}

// ShowFlashError displays an error flash message
func (m *Model) ShowFlashError(text string) {
	m.ShowFlash(text, ui.FlashError)
}

// ShowFlashWarning displays a warning flash message
func (m *Model) ShowFlashWarning(text string) {
	m.ShowFlash(text, ui.FlashWarning)
}

// ShowFlashInfo displays an info flash message
func (m *Model) ShowFlashInfo(text string) {
	m.ShowFlash(text, ui.FlashInfo)
}

// ShowFlashSuccess displays a success flash message
func (m *Model) ShowFlashSuccess(text string) {
	m.ShowFlash(text, ui.FlashSuccess)
}
