package session

import (
	"errors"
	"strings"

	"github.com/zhubert/postview/internal/api"
	pverrors "github.com/zhubert/postview/internal/errors"
)

// Field identifies one of the composer inputs.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldBody
)

// Fields lists the composer inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldBody}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldBody:
		return "body"
	default:
		return "unknown"
	}
}

// Label is the heading shown above the input.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Author Name"
	case FieldEmail:
		return "Author Email"
	case FieldBody:
		return "Comment Text"
	default:
		return ""
	}
}

// Placeholder is the hint shown in an empty input.
func (f Field) Placeholder() string {
	switch f {
	case FieldName:
		return "Name Surname"
	case FieldEmail:
		return "email@test.com"
	case FieldBody:
		return "Type comment here"
	default:
		return ""
	}
}

// ErrorMessage is shown under the input while it is flagged invalid.
func (f Field) ErrorMessage() string {
	switch f {
	case FieldName:
		return "Name is required"
	case FieldEmail:
		return "Email is required"
	case FieldBody:
		return "Enter some text"
	default:
		return ""
	}
}

// Composer is the new-comment form. It is a value type; the reducer copies
// it freely.
type Composer struct {
	Visible    bool
	Submitting bool
	// Err is the last submit failure, cleared by the next submit.
	Err error

	values    [3]string
	invalid   [3]bool
	submitFor int // post the in-flight submit belongs to
}

// Value returns the current text of f.
func (c Composer) Value(f Field) string {
	return c.values[f]
}

// Invalid reports whether f was empty at the last submit and has not been
// edited since.
func (c Composer) Invalid(f Field) bool {
	return c.invalid[f]
}

// ComposerWith returns a hidden composer holding the given values, for
// callers that validate and build drafts without the TUI.
func ComposerWith(name, email, body string) Composer {
	var c Composer
	return c.withValue(FieldName, name).
		withValue(FieldEmail, email).
		withValue(FieldBody, body)
}

// HasErrors reports whether any field is flagged.
func (c Composer) HasErrors() bool {
	return c.invalid[FieldName] || c.invalid[FieldEmail] || c.invalid[FieldBody]
}

// Missing returns the fields that would fail validation, in display order.
// Whitespace-only input counts as empty.
func (c Composer) Missing() []Field {
	var missing []Field
	for _, f := range Fields {
		if strings.TrimSpace(c.values[f]) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Validate returns a joined ValidationError for every missing field, or nil.
func (c Composer) Validate() error {
	var errs []error
	for _, f := range c.Missing() {
		errs = append(errs, pverrors.FieldRequired(f.String()))
	}
	return errors.Join(errs...)
}

// Draft builds the request body for postID.
func (c Composer) Draft(postID int) api.NewComment {
	return api.NewComment{
		PostID: postID,
		Name:   strings.TrimSpace(c.values[FieldName]),
		Email:  strings.TrimSpace(c.values[FieldEmail]),
		Body:   c.values[FieldBody],
	}
}

func (c Composer) withValue(f Field, v string) Composer {
	c.values[f] = v
	c.invalid[f] = false
	return c
}

func (c Composer) cleared() Composer {
	c.values = [3]string{}
	c.invalid = [3]bool{}
	return c
}
