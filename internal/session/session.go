package session

import (
	"fmt"
	"maps"
	"slices"

	"github.com/zhubert/postview/internal/api"
)

// DefaultUserLimit is how many users are kept from the bootstrap fetch.
const DefaultUserLimit = 100

// Session is the complete browsing state. The zero value is not useful;
// start from New.
type Session struct {
	Users       []api.User
	CurrentUser *api.User
	CurrentPost *api.Post
	Posts       Pane[api.Post]
	Comments    Pane[api.Comment]
	Composer    Composer
	UserLimit   int

	postsGen    uint64
	commentsGen uint64
	pending     map[int]pendingDelete
}

type pendingDelete struct {
	comment api.Comment
	index   int
	postID  int
}

// New returns an idle session keeping at most userLimit users
// (DefaultUserLimit when userLimit <= 0).
func New(userLimit int) Session {
	if userLimit <= 0 {
		userLimit = DefaultUserLimit
	}
	return Session{UserLimit: userLimit}
}

// PostsGen is the generation the current posts fetch was issued under.
func (s Session) PostsGen() uint64 { return s.postsGen }

// CommentsGen is the generation the current comments fetch was issued under.
func (s Session) CommentsGen() uint64 { return s.commentsGen }

// PendingDeletes is the number of deletes awaiting settlement.
func (s Session) PendingDeletes() int { return len(s.pending) }

// IsPostOpen reports whether the post with id is the current post.
func (s Session) IsPostOpen(id int) bool {
	return s.CurrentPost != nil && s.CurrentPost.ID == id
}

// UserByID looks up a user from the loaded list.
func (s Session) UserByID(id int) (api.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return api.User{}, false
}

// Reduce applies ev and returns the next state plus the effects to run.
// It never mutates the receiver's slices or maps.
func (s Session) Reduce(ev Event) (Session, []Effect) {
	switch ev := ev.(type) {
	case Mounted:
		return s, []Effect{FetchUsers{Limit: s.UserLimit}}
	case UsersLoaded:
		return s.usersLoaded(ev), nil
	case UserSelected:
		return s.userSelected(ev)
	case PostsLoaded:
		return s.postsLoaded(ev), nil
	case PostToggled:
		return s.postToggled(ev)
	case CommentsLoaded:
		return s.commentsLoaded(ev), nil
	case ComposerToggled:
		return s.composerToggled(), nil
	case FieldEdited:
		s.Composer = s.Composer.withValue(ev.Field, ev.Value)
		return s, nil
	case ComposerCleared:
		s.Composer = s.Composer.cleared()
		return s, nil
	case ComposerSubmitted:
		return s.composerSubmitted()
	case CommentCreated:
		return s.commentCreated(ev)
	case CommentDeleteRequested:
		return s.deleteRequested(ev)
	case CommentDeleteSettled:
		return s.deleteSettled(ev)
	}
	return s, nil
}

func (s Session) usersLoaded(ev UsersLoaded) Session {
	if ev.Err != nil {
		return s
	}
	users := ev.Users
	if s.UserLimit > 0 && len(users) > s.UserLimit {
		users = users[:s.UserLimit:s.UserLimit]
	}
	s.Users = users
	return s
}

// withoutPost closes the detail pane and invalidates any comments fetch.
func (s Session) withoutPost() Session {
	s.CurrentPost = nil
	s.commentsGen++
	s.Comments = Pane[api.Comment]{Phase: PhaseIdle, Items: s.Comments.Items}
	s.Composer = Composer{}
	return s
}

func (s Session) userSelected(ev UserSelected) (Session, []Effect) {
	next := s.withoutPost()
	next.postsGen++

	if ev.User == nil {
		next.CurrentUser = nil
		next.Posts = Pane[api.Post]{Phase: PhaseIdle, Items: s.Posts.Items}
		return next, nil
	}

	u := *ev.User
	next.CurrentUser = &u
	next.Posts = Pane[api.Post]{Phase: PhaseLoading, Items: s.Posts.Items}
	return next, []Effect{FetchPosts{Gen: next.postsGen, UserID: u.ID}}
}

func (s Session) postsLoaded(ev PostsLoaded) Session {
	if s.CurrentUser == nil || ev.Gen != s.postsGen {
		return s
	}
	if ev.Err != nil {
		s.Posts = Pane[api.Post]{Phase: PhaseError, Items: s.Posts.Items, Err: ev.Err}
		return s
	}
	s.Posts = settled(ev.Posts)
	return s
}

func (s Session) postToggled(ev PostToggled) (Session, []Effect) {
	if s.CurrentUser == nil || s.Posts.Phase != PhaseLoaded {
		return s, nil
	}
	if !slices.ContainsFunc(s.Posts.Items, func(p api.Post) bool { return p.ID == ev.Post.ID }) {
		return s, nil
	}
	if s.IsPostOpen(ev.Post.ID) {
		return s.withoutPost(), nil
	}

	next := s.withoutPost()
	p := ev.Post
	next.CurrentPost = &p
	next.Comments = Pane[api.Comment]{Phase: PhaseLoading}
	return next, []Effect{FetchComments{Gen: next.commentsGen, PostID: p.ID}}
}

func (s Session) commentsLoaded(ev CommentsLoaded) Session {
	if s.CurrentPost == nil || ev.Gen != s.commentsGen {
		return s
	}
	if ev.Err != nil {
		s.Comments = Pane[api.Comment]{Phase: PhaseError, Items: s.Comments.Items, Err: ev.Err}
		return s
	}

	comments := ev.Comments
	if len(s.pending) > 0 {
		// Hide comments whose delete is still in flight.
		comments = slices.DeleteFunc(slices.Clone(comments), func(c api.Comment) bool {
			_, pending := s.pending[c.ID]
			return pending
		})
	}
	s.Comments = settled(comments)
	return s
}

func (s Session) composerToggled() Session {
	if s.CurrentPost == nil || s.Comments.Phase == PhaseLoading {
		return s
	}
	s.Composer.Visible = !s.Composer.Visible
	return s
}

func (s Session) composerSubmitted() (Session, []Effect) {
	c := s.Composer
	if c.Submitting {
		return s, nil
	}

	missing := c.Missing()
	for _, f := range Fields {
		c.invalid[f] = slices.Contains(missing, f)
	}
	s.Composer = c
	if len(missing) > 0 {
		return s, nil
	}
	if s.CurrentPost == nil {
		return s, nil
	}

	c.Submitting = true
	c.Err = nil
	c.submitFor = s.CurrentPost.ID
	s.Composer = c
	return s, []Effect{CreateComment{Draft: c.Draft(s.CurrentPost.ID)}}
}

func (s Session) commentCreated(ev CommentCreated) (Session, []Effect) {
	owns := s.Composer.Submitting && s.Composer.submitFor == ev.PostID
	if owns {
		s.Composer.Submitting = false
		s.Composer.submitFor = 0
	}

	if ev.Err != nil {
		if owns {
			s.Composer.Err = ev.Err
		}
		return s, []Effect{Notice{Level: NoticeError, Text: "Could not add comment", Err: ev.Err}}
	}

	if owns {
		s.Composer = s.Composer.withValue(FieldBody, "")
		s.Composer.Err = nil
	}

	if s.IsPostOpen(ev.PostID) && s.Comments.Phase.Settled() && s.commentIndex(ev.Comment.ID) < 0 {
		s.Comments = settled(append(slices.Clone(s.Comments.Items), ev.Comment))
	}
	return s, []Effect{Notice{Level: NoticeSuccess, Text: "Comment added"}}
}

func (s Session) commentIndex(id int) int {
	return slices.IndexFunc(s.Comments.Items, func(c api.Comment) bool { return c.ID == id })
}

func (s Session) deleteRequested(ev CommentDeleteRequested) (Session, []Effect) {
	if s.CurrentPost == nil || !s.Comments.Phase.Settled() {
		return s, nil
	}
	idx := s.commentIndex(ev.CommentID)
	if idx < 0 {
		return s, nil
	}

	removed := s.Comments.Items[idx]
	items := slices.Delete(slices.Clone(s.Comments.Items), idx, idx+1)

	pending := maps.Clone(s.pending)
	if pending == nil {
		pending = make(map[int]pendingDelete)
	}
	pending[ev.CommentID] = pendingDelete{comment: removed, index: idx, postID: s.CurrentPost.ID}

	s.pending = pending
	s.Comments = settled(items)
	return s, []Effect{DeleteComment{CommentID: ev.CommentID}}
}

func (s Session) deleteSettled(ev CommentDeleteSettled) (Session, []Effect) {
	pd, ok := s.pending[ev.CommentID]
	if !ok {
		return s, nil
	}
	pending := maps.Clone(s.pending)
	delete(pending, ev.CommentID)
	s.pending = pending

	if ev.Err == nil {
		return s, nil
	}

	text := fmt.Sprintf("Could not delete comment by %s", pd.comment.Name)
	if s.IsPostOpen(pd.postID) && s.Comments.Phase.Settled() && s.commentIndex(pd.comment.ID) < 0 {
		idx := min(pd.index, len(s.Comments.Items))
		s.Comments = settled(slices.Insert(slices.Clone(s.Comments.Items), idx, pd.comment))
		text += "; restored"
	}
	return s, []Effect{Notice{Level: NoticeError, Text: text, Err: ev.Err}}
}
