package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/postview/internal/api"
	"github.com/zhubert/postview/internal/session"
)

func newTestDetailPane() *DetailPane {
	GetViewContext().UpdateTerminalSize(120, 40)
	d := NewDetailPane()
	d.SetSize(60, 36)
	return d
}

func TestDetailPane_Precedence(t *testing.T) {
	opened := reduce(withPosts(testPosts), session.PostToggled{Post: testPosts[0]})

	tests := []struct {
		name    string
		s       session.Session
		want    []string
		notWant []string
	}{
		{
			name:    "loading",
			s:       opened,
			want:    []string{"#1: sunt aut facere", "quia et suscipit", "Loading comments"},
			notWant: []string{"Write a comment"},
		},
		{
			name: "error",
			s:    reduce(opened, session.CommentsLoaded{Gen: opened.CommentsGen(), Err: errors.New("boom")}),
			want: []string{"Something went wrong", "Write a comment"},
		},
		{
			name:    "empty",
			s:       withComments(nil),
			want:    []string{"No comments yet", "Write a comment"},
			notWant: []string{"Comments:"},
		},
		{
			name: "list",
			s:    withComments(testComments),
			want: []string{"Comments:", "id labore ex et quam", "<Eliseo@gardner.biz>", "laudantium enim quasi", "[Delete]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ansi.Strip(newTestDetailPane().View(tt.s, &Spinner{}, ""))
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("expected %q in view:\n%s", w, view)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(view, w) {
					t.Errorf("unexpected %q in view:\n%s", w, view)
				}
			}
		})
	}
}

func TestDetailPane_NoPost(t *testing.T) {
	view := ansi.Strip(newTestDetailPane().View(withPosts(testPosts), &Spinner{}, ""))
	if strings.Contains(view, "Comments") || strings.Contains(view, "Write a comment") {
		t.Errorf("detail pane should be blank without an open post:\n%s", view)
	}
}

func TestDetailPane_ComposerReplacesWriteButton(t *testing.T) {
	s := reduce(withComments(testComments), session.ComposerToggled{})
	view := ansi.Strip(newTestDetailPane().View(s, &Spinner{}, "FORM"))
	if !strings.Contains(view, "FORM") {
		t.Error("expected composer form to render")
	}
	if strings.Contains(view, "Write a comment") {
		t.Error("write button should be hidden while the composer is open")
	}

	closed := reduce(s, session.ComposerToggled{})
	view = ansi.Strip(newTestDetailPane().View(closed, &Spinner{}, "FORM"))
	if strings.Contains(view, "FORM") {
		t.Error("form should not render once the composer is closed")
	}
}

func TestDetailPane_SelectedComment(t *testing.T) {
	s := withComments(testComments)
	d := newTestDetailPane()
	d.SetFocused(true)

	c, ok := d.SelectedComment(s)
	if !ok || c.ID != testComments[0].ID {
		t.Fatalf("SelectedComment() = %+v, %v", c, ok)
	}

	d.MoveSelection(1, len(s.Comments.Items))
	if c, _ := d.SelectedComment(s); c.ID != testComments[1].ID {
		t.Errorf("expected second comment, got %d", c.ID)
	}
	d.MoveSelection(5, len(s.Comments.Items))
	if d.Selected() != len(testComments)-1 {
		t.Errorf("selection should clamp, got %d", d.Selected())
	}

	if _, ok := d.SelectedComment(withComments(nil)); ok {
		t.Error("no comment is selectable in an empty list")
	}
}

func TestDetailPane_SelectionClampsAfterDelete(t *testing.T) {
	s := withComments(testComments)
	d := newTestDetailPane()
	d.SetFocused(true)
	d.MoveSelection(1, len(s.Comments.Items))

	s = reduce(s, session.CommentDeleteRequested{CommentID: testComments[1].ID})
	d.View(s, &Spinner{}, "")

	c, ok := d.SelectedComment(s)
	if !ok || c.ID != testComments[0].ID {
		t.Errorf("selection should fall back to the remaining comment, got %+v %v", c, ok)
	}
}

func TestDetailPane_WrapsLongBodies(t *testing.T) {
	long := api.Comment{ID: 9, PostID: 1, Name: "n", Email: "e@x.io", Body: strings.Repeat("word ", 80)}
	s := withComments([]api.Comment{long})
	d := newTestDetailPane()
	d.SetSize(40, 30)

	for _, line := range strings.Split(ansi.Strip(d.View(s, &Spinner{}, "")), "\n") {
		if w := ansi.StringWidth(line); w > 40 {
			t.Errorf("line overflows pane (%d cells): %q", w, line)
		}
	}
}
