package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/rivo/uniseg"
	"github.com/zhubert/postview/internal/keys"
	"github.com/zhubert/postview/internal/session"
	"github.com/zhubert/postview/internal/ui/modals"
)

// FieldEdit reports a composer field whose widget value changed.
type FieldEdit struct {
	Field session.Field
	Value string
}

// CommentForm holds the text widgets behind the comment composer. The
// session owns the values; the form mirrors them and reports edits.
type CommentForm struct {
	name  textinput.Model
	email textinput.Model
	body  textarea.Model
	focus session.Field
	width int
}

// NewCommentForm creates the composer widgets
func NewCommentForm() *CommentForm {
	name := textinput.New()
	name.Placeholder = session.FieldName.Placeholder()
	name.CharLimit = ComposerInputCharLimit

	email := textinput.New()
	email.Placeholder = session.FieldEmail.Placeholder()
	email.CharLimit = ComposerInputCharLimit

	body := textarea.New()
	body.Placeholder = session.FieldBody.Placeholder()
	body.ShowLineNumbers = false
	body.CharLimit = ComposerBodyCharLimit
	body.SetHeight(ComposerBodyHeight)
	modals.ApplyTextareaStyles(&body)

	f := &CommentForm{name: name, email: email, body: body}
	f.SetWidth(DefaultWrapWidth)
	return f
}

// RefreshStyles re-applies theme colors after a theme change
func (f *CommentForm) RefreshStyles() {
	modals.ApplyTextareaStyles(&f.body)
}

// SetWidth sets the widget width
func (f *CommentForm) SetWidth(width int) {
	f.width = max(width, 10)
	f.name.SetWidth(f.width - 2)
	f.email.SetWidth(f.width - 2)
	f.body.SetWidth(f.width)
}

// Focused returns the field that receives typing
func (f *CommentForm) Focused() session.Field {
	return f.focus
}

// Focus moves typing to field and returns the widget's focus command
func (f *CommentForm) Focus(field session.Field) tea.Cmd {
	f.focus = field
	f.name.Blur()
	f.email.Blur()
	f.body.Blur()
	switch field {
	case session.FieldName:
		return f.name.Focus()
	case session.FieldEmail:
		return f.email.Focus()
	default:
		return f.body.Focus()
	}
}

// Blur removes focus from every field
func (f *CommentForm) Blur() {
	f.name.Blur()
	f.email.Blur()
	f.body.Blur()
}

// NextField cycles focus forward, or backward when reverse is set
func (f *CommentForm) NextField(reverse bool) tea.Cmd {
	n := len(session.Fields)
	step := 1
	if reverse {
		step = n - 1
	}
	return f.Focus(session.Field((int(f.focus) + step) % n))
}

// Value returns the widget text for field
func (f *CommentForm) Value(field session.Field) string {
	switch field {
	case session.FieldName:
		return f.name.Value()
	case session.FieldEmail:
		return f.email.Value()
	default:
		return f.body.Value()
	}
}

// Sync copies composer values into the widgets where they differ
func (f *CommentForm) Sync(c session.Composer) {
	if v := c.Value(session.FieldName); v != f.name.Value() {
		f.name.SetValue(v)
	}
	if v := c.Value(session.FieldEmail); v != f.email.Value() {
		f.email.SetValue(v)
	}
	if v := c.Value(session.FieldBody); v != f.body.Value() {
		f.body.SetValue(v)
	}
}

// Update routes a key to the focused widget. Tab and shift+tab move between
// fields. It returns the edit, if the key changed the field's text.
func (f *CommentForm) Update(msg tea.Msg) (tea.Cmd, *FieldEdit) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case keys.Tab:
			return f.NextField(false), nil
		case keys.ShiftTab:
			return f.NextField(true), nil
		}
	}

	before := f.Value(f.focus)
	var cmd tea.Cmd
	switch f.focus {
	case session.FieldName:
		f.name, cmd = f.name.Update(msg)
	case session.FieldEmail:
		f.email, cmd = f.email.Update(msg)
	default:
		f.body, cmd = f.body.Update(msg)
	}
	if after := f.Value(f.focus); after != before {
		return cmd, &FieldEdit{Field: f.focus, Value: after}
	}
	return cmd, nil
}

// View renders the form for the composer state
func (f *CommentForm) View(c session.Composer) string {
	var b strings.Builder
	b.WriteString(SectionTitleStyle.Render("New comment"))
	b.WriteString("\n")

	for _, field := range session.Fields {
		label := FormLabelStyle
		if field == f.focus {
			label = FormLabelFocusedStyle
		}
		b.WriteString(label.Render(field.Label()))
		if field == session.FieldBody {
			count := uniseg.GraphemeClusterCount(f.body.Value())
			b.WriteString(" " + FormCounterStyle.Render(fmt.Sprintf("%d/%d", count, ComposerBodyCharLimit)))
		}
		b.WriteString("\n")

		switch field {
		case session.FieldName:
			b.WriteString(f.name.View())
		case session.FieldEmail:
			b.WriteString(f.email.View())
		default:
			b.WriteString(f.body.View())
		}
		b.WriteString("\n")

		if c.Invalid(field) {
			b.WriteString(FormErrorStyle.Render(field.ErrorMessage()))
			b.WriteString("\n")
		}
	}

	switch {
	case c.Submitting:
		b.WriteString(StatusLoadingStyle.Render("Adding comment…"))
	case c.Err != nil:
		b.WriteString(StatusErrorStyle.Render("Could not add comment. Try again."))
	default:
		b.WriteString(MutedStyle.Render("ctrl+s add comment · ctrl+l clear · esc close"))
	}
	return b.String()
}
