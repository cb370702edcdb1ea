package api

import "fmt"

// User is a person who authors posts. Only ID, Name and Email are relied
// upon; the rest is shown when the backend provides it.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Post belongs to exactly one user.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Heading renders the post as "#id: title".
func (p Post) Heading() string {
	return fmt.Sprintf("#%d: %s", p.ID, p.Title)
}

// Comment belongs to exactly one post. The ID is assigned by the server.
type Comment struct {
	ID     int    `json:"id"`
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// MailtoURL returns a mailto: link for the comment author.
func (c Comment) MailtoURL() string {
	return "mailto:" + c.Email
}

// NewComment is the request body for creating a comment.
type NewComment struct {
	PostID int    `json:"postId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}
