// Package demo drives the postview TUI through scripted scenarios against
// an in-memory backend and captures frames, for documentation recordings
// and smoke checks without a real server.
package demo

import (
	"strconv"
	"time"

	"github.com/zhubert/postview/internal/api"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepFail makes the next call of one backend operation fail.
	StepFail
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepWait
	Duration time.Duration

	// For StepFail
	Op Op

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup is the data the in-memory backend starts with.
type ScenarioSetup struct {
	Users    []api.User
	Posts    []api.Post
	Comments []api.Comment
}

// DefaultSetup returns a small users/posts/comments data set.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Users: []api.User{
			{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"},
			{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv"},
			{ID: 3, Name: "Clementine Bauch", Username: "Samantha", Email: "Nathan@yesenia.net"},
		},
		Posts: []api.Post{
			{ID: 1, UserID: 1, Title: "sunt aut facere repellat provident", Body: "quia et suscipit\nsuscipit recusandae consequuntur expedita et cum"},
			{ID: 2, UserID: 1, Title: "qui est esse", Body: "est rerum tempore vitae\nsequi sint nihil reprehenderit dolor beatae ea dolores neque"},
			{ID: 3, UserID: 1, Title: "ea molestias quasi exercitationem", Body: "et iusto sed quo iure\nvoluptatem occaecati omnis eligendi aut ad"},
			{ID: 11, UserID: 2, Title: "et ea vero quia laudantium autem", Body: "delectus reiciendis molestiae occaecati non minima eveniet qui voluptatibus"},
		},
		Comments: []api.Comment{
			{ID: 1, PostID: 1, Name: "id labore ex et quam laborum", Email: "Eliseo@gardner.biz", Body: "laudantium enim quasi est quidem magnam voluptate ipsam eos"},
			{ID: 2, PostID: 1, Name: "quo vero reiciendis velit similique", Email: "Jayne_Kuhic@sydney.com", Body: "est natus enim nihil est dolore omnis voluptatem numquam"},
			{ID: 3, PostID: 1, Name: "odio adipisci rerum aut animi", Email: "Nikita@garfield.biz", Body: "quia molestiae reprehenderit quasi aspernatur"},
			{ID: 6, PostID: 2, Name: "et fugit eligendi deleniti quidem", Email: "Presley.Mueller@myrl.com", Body: "doloribus at sed quis culpa deserunt consectetur qui praesentium"},
		},
	}
}

// Validate checks the scenario and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	for i, step := range s.Steps {
		if step.Type == StepFail && !step.Op.valid() {
			return &ValidationError{Field: "Steps", Message: "step " + strconv.Itoa(i) + ": unknown backend operation"}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// Fail makes the next call of op fail.
func Fail(op Op) Step {
	return Step{
		Type: StepFail,
		Op:   op,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
