package session

import "github.com/zhubert/postview/internal/api"

// Event is an input to Reduce.
type Event interface {
	event()
}

// Mounted starts the session; it requests the user list.
type Mounted struct{}

// UsersLoaded carries the bootstrap user list. Errors are swallowed.
type UsersLoaded struct {
	Users []api.User
	Err   error
}

// UserSelected changes the current user. A nil User deselects.
type UserSelected struct {
	User *api.User
}

// PostsLoaded settles the posts fetch issued under Gen.
type PostsLoaded struct {
	Gen   uint64
	Posts []api.Post
	Err   error
}

// PostToggled opens Post, or closes it when it is already open.
type PostToggled struct {
	Post api.Post
}

// CommentsLoaded settles the comments fetch issued under Gen.
type CommentsLoaded struct {
	Gen      uint64
	Comments []api.Comment
	Err      error
}

// ComposerToggled shows or hides the comment form.
type ComposerToggled struct{}

// FieldEdited replaces the text of one composer field.
type FieldEdited struct {
	Field Field
	Value string
}

// ComposerCleared empties all fields and error flags.
type ComposerCleared struct{}

// ComposerSubmitted validates the form and, when valid, creates the comment.
type ComposerSubmitted struct{}

// CommentCreated settles a create request for PostID.
type CommentCreated struct {
	PostID  int
	Comment api.Comment
	Err     error
}

// CommentDeleteRequested removes a comment locally and deletes it remotely.
type CommentDeleteRequested struct {
	CommentID int
}

// CommentDeleteSettled reports the outcome of a background delete.
type CommentDeleteSettled struct {
	CommentID int
	Err       error
}

func (Mounted) event()                {}
func (UsersLoaded) event()            {}
func (UserSelected) event()           {}
func (PostsLoaded) event()            {}
func (PostToggled) event()            {}
func (CommentsLoaded) event()         {}
func (ComposerToggled) event()        {}
func (FieldEdited) event()            {}
func (ComposerCleared) event()        {}
func (ComposerSubmitted) event()      {}
func (CommentCreated) event()         {}
func (CommentDeleteRequested) event() {}
func (CommentDeleteSettled) event()   {}

// Effect is work Reduce asks the caller to perform.
type Effect interface {
	effect()
}

// FetchUsers loads the user list.
type FetchUsers struct {
	Limit int
}

// FetchPosts loads the posts of UserID; the result must carry Gen.
type FetchPosts struct {
	Gen    uint64
	UserID int
}

// FetchComments loads the comments of PostID; the result must carry Gen.
type FetchComments struct {
	Gen    uint64
	PostID int
}

// CreateComment posts Draft.
type CreateComment struct {
	Draft api.NewComment
}

// DeleteComment deletes CommentID in the background.
type DeleteComment struct {
	CommentID int
}

// NoticeLevel is the severity of a Notice.
type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// Notice is a message for the user, typically shown as a flash.
type Notice struct {
	Level NoticeLevel
	Text  string
	Err   error
}

func (FetchUsers) effect()    {}
func (FetchPosts) effect()    {}
func (FetchComments) effect() {}
func (CreateComment) effect() {}
func (DeleteComment) effect() {}
func (Notice) effect()        {}
