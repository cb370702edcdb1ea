package session

import "slices"

// Element names a piece of UI that is currently visible. The names are a
// stable contract for tests and tooling; the terminal renderer decides how
// each one looks.
type Element string

const (
	ElementUserSelector       Element = "UserSelector"
	ElementNoSelectedUser     Element = "NoSelectedUser"
	ElementPostsLoader        Element = "PostsLoader"
	ElementPostsLoadingError  Element = "PostsLoadingError"
	ElementNoPostsYet         Element = "NoPostsYet"
	ElementPostsList          Element = "PostsList"
	ElementPostDetails        Element = "PostDetails"
	ElementCommentsLoader     Element = "CommentsLoader"
	ElementCommentsError      Element = "CommentsError"
	ElementNoCommentsMessage  Element = "NoCommentsMessage"
	ElementComment            Element = "Comment"
	ElementCommentDelete      Element = "CommentDelete"
	ElementWriteCommentButton Element = "WriteCommentButton"
	ElementNewCommentForm     Element = "NewCommentForm"
	ElementNameError          Element = "NameError"
	ElementEmailError         Element = "EmailError"
	ElementBodyError          Element = "BodyError"
)

// PostsElement is the single element the posts pane shows, chosen by
// precedence: no user, loader, error, empty, list. It returns "" only for
// a selected user whose posts were never requested.
func (s Session) PostsElement() Element {
	if s.CurrentUser == nil {
		return ElementNoSelectedUser
	}
	switch s.Posts.Phase {
	case PhaseLoading:
		return ElementPostsLoader
	case PhaseError:
		return ElementPostsLoadingError
	case PhaseEmpty:
		return ElementNoPostsYet
	case PhaseLoaded:
		return ElementPostsList
	}
	return ""
}

// CommentsElement is the comments section shown under an open post, chosen
// by precedence: loader, error, empty, list. It returns "" with no post open.
func (s Session) CommentsElement() Element {
	if s.CurrentPost == nil {
		return ""
	}
	switch s.Comments.Phase {
	case PhaseLoading:
		return ElementCommentsLoader
	case PhaseError:
		return ElementCommentsError
	case PhaseEmpty:
		return ElementNoCommentsMessage
	case PhaseLoaded:
		return ElementComment
	}
	return ""
}

// ShowWriteButton reports whether the "Write a comment" trigger is shown.
func (s Session) ShowWriteButton() bool {
	return s.CurrentPost != nil && s.Comments.Phase != PhaseLoading && !s.Composer.Visible
}

// Elements lists every visible element in render order. Comment and
// CommentDelete repeat once per listed comment.
func (s Session) Elements() []Element {
	els := []Element{ElementUserSelector}
	if el := s.PostsElement(); el != "" {
		els = append(els, el)
	}
	if s.CurrentPost == nil {
		return els
	}

	els = append(els, ElementPostDetails)
	switch el := s.CommentsElement(); el {
	case ElementComment:
		for range s.Comments.Items {
			els = append(els, ElementComment, ElementCommentDelete)
		}
	case "":
	default:
		els = append(els, el)
	}

	if s.ShowWriteButton() {
		els = append(els, ElementWriteCommentButton)
	}
	if s.Composer.Visible {
		els = append(els, ElementNewCommentForm)
		if s.Composer.Invalid(FieldName) {
			els = append(els, ElementNameError)
		}
		if s.Composer.Invalid(FieldEmail) {
			els = append(els, ElementEmailError)
		}
		if s.Composer.Invalid(FieldBody) {
			els = append(els, ElementBodyError)
		}
	}
	return els
}

// Visible reports whether el is among Elements.
func (s Session) Visible(el Element) bool {
	return slices.Contains(s.Elements(), el)
}
