// Package scenarios contains built-in demo scenarios for postview.
package scenarios

import (
	"time"

	"github.com/zhubert/postview/internal/demo"
	"github.com/zhubert/postview/internal/keys"
)

// pickFirstUser opens the user picker and chooses the first user.
func pickFirstUser() []demo.Step {
	return []demo.Step{
		demo.Annotate("Press u to choose a user"),
		demo.KeyWithDesc("u", "Open the user picker"),
		demo.Wait(800 * time.Millisecond),
		demo.KeyWithDesc(keys.Down, "Highlight the first user"),
		demo.Wait(400 * time.Millisecond),
		demo.KeyWithDesc(keys.Enter, "Load their posts"),
		demo.Wait(1 * time.Second),
	}
}

// writeComment fills in the form and submits it.
func writeComment(name, email, body string) []demo.Step {
	return []demo.Step{
		demo.KeyWithDesc("w", "Open the comment form"),
		demo.Type(name),
		demo.Key(keys.Tab),
		demo.Type(email),
		demo.Key(keys.Tab),
		demo.Type(body),
		demo.Wait(600 * time.Millisecond),
		demo.KeyWithDesc(keys.CtrlS, "Submit"),
		demo.Wait(1 * time.Second),
	}
}

func steps(groups ...[]demo.Step) []demo.Step {
	var out []demo.Step
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Basic walks the happy path: pick a user, open a post, read, write and
// delete comments.
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Pick a user, open a post, add and delete a comment",
	Width:       120,
	Height:      36,
	Steps: steps(
		pickFirstUser(),
		[]demo.Step{
			demo.Annotate("Open a post to see its comments"),
			demo.KeyWithDesc(keys.Enter, "Open the highlighted post"),
			demo.Wait(1200 * time.Millisecond),
			demo.KeyWithDesc(keys.Tab, "Focus the comments"),
			demo.Key(keys.Down),
			demo.Wait(600 * time.Millisecond),
			demo.Annotate("Write a comment"),
		},
		writeComment("Ada Lovelace", "ada@example.com", "A lovely analysis."),
		[]demo.Step{
			demo.KeyWithDesc(keys.Escape, "Close the form"),
			demo.Annotate("Delete the highlighted comment"),
			demo.KeyWithDesc("d", "Delete"),
			demo.Wait(1 * time.Second),
			demo.KeyWithDesc(keys.Escape, "Back to posts"),
			demo.KeyWithDesc(keys.Escape, "Close the post"),
			demo.Wait(1 * time.Second),
		},
	),
}

// Failures shows how backend errors surface: a failed delete is restored,
// a failed submit keeps the form, a failed comments load shows an error.
var Failures = &demo.Scenario{
	Name:        "failures",
	Description: "Backend errors: restored delete, kept form, comments error",
	Width:       120,
	Height:      36,
	Steps: steps(
		pickFirstUser(),
		[]demo.Step{
			demo.Key(keys.Enter),
			demo.Wait(1 * time.Second),
			demo.Key(keys.Tab),
			demo.Annotate("The server rejects the delete; the comment comes back"),
			demo.Fail(demo.OpDeleteComment),
			demo.Key("d"),
			demo.Wait(1500 * time.Millisecond),
			demo.Annotate("The server rejects the new comment; the form keeps its text"),
			demo.Fail(demo.OpCreateComment),
		},
		writeComment("Ada Lovelace", "ada@example.com", "Will this stick?"),
		[]demo.Step{
			demo.Key(keys.Escape),
			demo.Key(keys.Escape),
			demo.Annotate("Loading comments fails"),
			demo.Fail(demo.OpListComments),
			demo.Key(keys.Down),
			demo.Key(keys.Enter),
			demo.Wait(1500 * time.Millisecond),
		},
	),
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Failures,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
