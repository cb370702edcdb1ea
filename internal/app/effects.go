package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/postview/internal/notification"
	"github.com/zhubert/postview/internal/session"
	"github.com/zhubert/postview/internal/ui"
)

// notifyFailure raises a desktop notification; swapped out in tests.
var notifyFailure = notification.BackgroundFailure

// dispatch runs ev through the reducer, syncs the widgets with the new
// state and turns the returned effects into commands.
func (m *Model) dispatch(ev session.Event) tea.Cmd {
	prev := m.session
	next, effects := prev.Reduce(ev)
	m.session = next
	m.sync(prev)

	var cmds []tea.Cmd
	for _, eff := range effects {
		cmds = append(cmds, m.runEffect(eff))
	}
	return tea.Batch(cmds...)
}

// sync brings presentation state in line with the session after a reduce.
func (m *Model) sync(prev session.Session) {
	s := m.session

	if s.CurrentUser != nil {
		m.header.SetUser(s.CurrentUser.Name, s.CurrentUser.Username)
	} else {
		m.header.SetUser("", "")
	}
	if s.PostsGen() != prev.PostsGen() {
		m.posts.Reset()
	}

	prevPost, curPost := postID(prev), postID(s)
	if prevPost != curPost {
		m.detail.Reset()
		if (prevPost == 0) != (curPost == 0) {
			m.updateSizes()
		}
	}
	m.detail.MoveSelection(0, s.Comments.Len())
	m.form.Sync(s.Composer)

	switch {
	case s.CurrentPost == nil && m.focus != FocusPosts:
		m.setFocus(FocusPosts)
	case !s.Composer.Visible && m.focus == FocusComposer:
		m.setFocus(FocusDetail)
	}
}

func postID(s session.Session) int {
	if s.CurrentPost == nil {
		return 0
	}
	return s.CurrentPost.ID
}

// runEffect performs one reducer effect. Backend calls run off the event
// loop and report back as session events.
func (m *Model) runEffect(eff session.Effect) tea.Cmd {
	ctx, backend, log := m.ctx, m.backend, m.log

	switch e := eff.(type) {
	case session.FetchUsers:
		return func() tea.Msg {
			users, err := backend.ListUsers(ctx)
			if err != nil {
				log.Warn("failed to load users", "error", err)
			}
			return session.UsersLoaded{Users: users, Err: err}
		}

	case session.FetchPosts:
		return func() tea.Msg {
			posts, err := backend.ListPosts(ctx, e.UserID)
			if err != nil {
				log.Warn("failed to load posts", "userID", e.UserID, "error", err)
			}
			return session.PostsLoaded{Gen: e.Gen, Posts: posts, Err: err}
		}

	case session.FetchComments:
		return func() tea.Msg {
			comments, err := backend.ListComments(ctx, e.PostID)
			if err != nil {
				log.Warn("failed to load comments", "postID", e.PostID, "error", err)
			}
			return session.CommentsLoaded{Gen: e.Gen, Comments: comments, Err: err}
		}

	case session.CreateComment:
		return func() tea.Msg {
			created, err := backend.CreateComment(ctx, e.Draft)
			if err != nil {
				log.Error("failed to create comment", "postID", e.Draft.PostID, "error", err)
			}
			return session.CommentCreated{PostID: e.Draft.PostID, Comment: created, Err: err}
		}

	case session.DeleteComment:
		return func() tea.Msg {
			err := backend.DeleteComment(ctx, e.CommentID)
			if err != nil {
				log.Error("failed to delete comment", "commentID", e.CommentID, "error", err)
			}
			return session.CommentDeleteSettled{CommentID: e.CommentID, Err: err}
		}

	case session.Notice:
		return m.showNotice(e)
	}

	m.log.Warn("unhandled effect", "effect", eff)
	return nil
}

// showNotice flashes a reducer notice. Errors also raise a desktop
// notification when enabled in the config.
func (m *Model) showNotice(n session.Notice) tea.Cmd {
	m.ShowFlash(n.Text, flashType(n.Level))

	if n.Level != session.NoticeError || !m.cfg.GetNotificationsEnabled() {
		return nil
	}
	text, log := n.Text, m.log
	return func() tea.Msg {
		if err := notifyFailure(text); err != nil {
			log.Debug("desktop notification failed", "error", err)
		}
		return nil
	}
}

// flashType maps notice levels onto footer flash types
func flashType(level session.NoticeLevel) ui.FlashType {
	switch level {
	case session.NoticeError:
		return ui.FlashError
	case session.NoticeWarning:
		return ui.FlashWarning
	case session.NoticeSuccess:
		return ui.FlashSuccess
	default:
		return ui.FlashInfo
	}
}
