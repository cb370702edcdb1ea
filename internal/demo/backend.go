package demo

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/zhubert/postview/internal/api"
	pverrors "github.com/zhubert/postview/internal/errors"
)

// Op names a backend operation that a scenario can make fail.
type Op string

const (
	OpListUsers     Op = "ListUsers"
	OpListPosts     Op = "ListPosts"
	OpListComments  Op = "ListComments"
	OpCreateComment Op = "CreateComment"
	OpDeleteComment Op = "DeleteComment"
)

func (o Op) valid() bool {
	switch o {
	case OpListUsers, OpListPosts, OpListComments, OpCreateComment, OpDeleteComment:
		return true
	}
	return false
}

// Backend is an in-memory api.Backend seeded from a ScenarioSetup.
type Backend struct {
	mu       sync.Mutex
	users    []api.User
	posts    []api.Post
	comments []api.Comment
	nextID   int
	failNext map[Op]bool
}

var _ api.Backend = (*Backend)(nil)

// NewBackend copies setup into a fresh backend.
func NewBackend(setup *ScenarioSetup) *Backend {
	b := &Backend{
		users:    slices.Clone(setup.Users),
		posts:    slices.Clone(setup.Posts),
		comments: slices.Clone(setup.Comments),
		failNext: make(map[Op]bool),
	}
	for _, c := range b.comments {
		b.nextID = max(b.nextID, c.ID)
	}
	return b
}

// FailNext makes the next call of op return a server error.
func (b *Backend) FailNext(op Op) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failNext[op] = true
}

// failLocked consumes a pending failure for op.
func (b *Backend) failLocked(op Op, method, path string) error {
	if !b.failNext[op] {
		return nil
	}
	delete(b.failNext, op)
	return pverrors.HTTPStatus(pverrors.Op("demo."+string(op)), method, path, 500)
}

func (b *Backend) ListUsers(ctx context.Context) ([]api.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failLocked(OpListUsers, "GET", "/users"); err != nil {
		return nil, err
	}
	return slices.Clone(b.users), nil
}

func (b *Backend) ListPosts(ctx context.Context, userID int) ([]api.Post, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failLocked(OpListPosts, "GET", "/posts?userId="+strconv.Itoa(userID)); err != nil {
		return nil, err
	}
	var out []api.Post
	for _, p := range b.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (b *Backend) ListComments(ctx context.Context, postID int) ([]api.Comment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failLocked(OpListComments, "GET", "/comments?postId="+strconv.Itoa(postID)); err != nil {
		return nil, err
	}
	var out []api.Comment
	for _, c := range b.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (b *Backend) CreateComment(ctx context.Context, nc api.NewComment) (api.Comment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failLocked(OpCreateComment, "POST", "/comments"); err != nil {
		return api.Comment{}, err
	}
	b.nextID++
	c := api.Comment{ID: b.nextID, PostID: nc.PostID, Name: nc.Name, Email: nc.Email, Body: nc.Body}
	b.comments = append(b.comments, c)
	return c, nil
}

func (b *Backend) DeleteComment(ctx context.Context, id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	path := fmt.Sprintf("/comments/%d", id)
	if err := b.failLocked(OpDeleteComment, "DELETE", path); err != nil {
		return err
	}
	b.comments = slices.DeleteFunc(b.comments, func(c api.Comment) bool { return c.ID == id })
	return nil
}

// Comments returns the stored comments on postID.
func (b *Backend) Comments(postID int) []api.Comment {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []api.Comment
	for _, c := range b.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}
