package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/postview/internal/session"
)

func typeRunes(f *CommentForm, text string) []FieldEdit {
	var edits []FieldEdit
	for _, r := range text {
		_, edit := f.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		if edit != nil {
			edits = append(edits, *edit)
		}
	}
	return edits
}

func TestCommentForm_TypingReportsEdits(t *testing.T) {
	f := NewCommentForm()
	f.Focus(session.FieldName)

	edits := typeRunes(f, "Al")
	if len(edits) != 2 {
		t.Fatalf("expected 2 edits, got %d", len(edits))
	}
	last := edits[len(edits)-1]
	if last.Field != session.FieldName || last.Value != "Al" {
		t.Errorf("unexpected edit %+v", last)
	}
}

func TestCommentForm_TabCyclesFields(t *testing.T) {
	f := NewCommentForm()
	f.Focus(session.FieldName)

	f.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if f.Focused() != session.FieldEmail {
		t.Errorf("expected email focus, got %v", f.Focused())
	}
	f.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	f.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if f.Focused() != session.FieldName {
		t.Errorf("tab should wrap to name, got %v", f.Focused())
	}
	f.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if f.Focused() != session.FieldBody {
		t.Errorf("shift+tab should wrap to body, got %v", f.Focused())
	}
}

func TestCommentForm_TypingGoesToFocusedField(t *testing.T) {
	f := NewCommentForm()
	f.Focus(session.FieldEmail)
	typeRunes(f, "a@b.c")

	if f.Value(session.FieldEmail) != "a@b.c" {
		t.Errorf("email = %q", f.Value(session.FieldEmail))
	}
	if f.Value(session.FieldName) != "" || f.Value(session.FieldBody) != "" {
		t.Error("other fields should stay empty")
	}
}

func TestCommentForm_SyncFromComposer(t *testing.T) {
	s := reduce(withComments(testComments),
		session.ComposerToggled{},
		session.FieldEdited{Field: session.FieldName, Value: "Ann"},
		session.FieldEdited{Field: session.FieldBody, Value: "hi"},
	)
	f := NewCommentForm()
	f.Sync(s.Composer)
	if f.Value(session.FieldName) != "Ann" || f.Value(session.FieldBody) != "hi" {
		t.Errorf("sync failed: name=%q body=%q", f.Value(session.FieldName), f.Value(session.FieldBody))
	}

	s = reduce(s, session.ComposerCleared{})
	f.Sync(s.Composer)
	for _, field := range session.Fields {
		if f.Value(field) != "" {
			t.Errorf("%v should be cleared, got %q", field, f.Value(field))
		}
	}
}

func TestCommentForm_ViewShowsFieldErrors(t *testing.T) {
	s := reduce(withComments(testComments),
		session.ComposerToggled{},
		session.FieldEdited{Field: session.FieldEmail, Value: "a@b.c"},
		session.ComposerSubmitted{},
	)
	f := NewCommentForm()
	f.Sync(s.Composer)
	view := ansi.Strip(f.View(s.Composer))

	for _, want := range []string{"Author Name", "Author Email", "Comment Text", "Name is required", "Enter some text"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in form:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Email is required") {
		t.Error("email is filled and should not be flagged")
	}
}

func TestCommentForm_CountsGraphemes(t *testing.T) {
	f := NewCommentForm()
	f.Focus(session.FieldBody)
	typeRunes(f, "héllo")

	view := ansi.Strip(f.View(session.Composer{Visible: true}))
	if !strings.Contains(view, "5/2000") {
		t.Errorf("expected grapheme counter 5/2000 in:\n%s", view)
	}
}
