package api

import (
	"context"
	"fmt"
)

// Backend is the set of resource operations the client app depends on.
type Backend interface {
	ListUsers(ctx context.Context) ([]User, error)
	ListPosts(ctx context.Context, userID int) ([]Post, error)
	ListComments(ctx context.Context, postID int) ([]Comment, error)
	CreateComment(ctx context.Context, c NewComment) (Comment, error)
	DeleteComment(ctx context.Context, id int) error
}

var _ Backend = (*Client)(nil)

// ListUsers returns every user the backend knows about.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	return Get[[]User](ctx, c, "/users")
}

// ListPosts returns the posts authored by userID.
func (c *Client) ListPosts(ctx context.Context, userID int) ([]Post, error) {
	return Get[[]Post](ctx, c, fmt.Sprintf("/posts?userId=%d", userID))
}

// ListComments returns the comments on postID.
func (c *Client) ListComments(ctx context.Context, postID int) ([]Comment, error) {
	return Get[[]Comment](ctx, c, fmt.Sprintf("/comments?postId=%d", postID))
}

// CreateComment posts a new comment and returns it with its server-assigned ID.
func (c *Client) CreateComment(ctx context.Context, nc NewComment) (Comment, error) {
	return PostJSON[Comment](ctx, c, "/comments", nc)
}

// DeleteComment removes the comment with the given ID.
func (c *Client) DeleteComment(ctx context.Context, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/comments/%d", id))
}
