// Package session holds the browsing state of postview: the user list, the
// selected user and post, and the two dependent panes (posts and comments).
//
// # Overview
//
// All state transitions go through one pure reducer:
//
//	next, effects := sess.Reduce(event)
//
// Reduce performs no I/O. It returns the next Session value together with
// the Effects the caller must run (fetches, creates, deletes, notices).
// When an effect completes, the caller feeds the result back as another
// Event. The Bubble Tea model in internal/app is the only caller in the
// application; tests drive the reducer directly.
//
// # Pane phases
//
// Each pane is a Pane[T] whose Phase is exactly one of Idle, Loading, Error,
// Empty or Loaded. Empty and Loaded are derived from the result size when a
// fetch settles, so the five states can never disagree with each other.
//
// # Generations
//
// Every posts fetch and comments fetch is tagged with a generation number
// that is bumped whenever the selection it depends on changes. A settled
// fetch whose generation is no longer current is dropped, so only data for
// the most recently selected user or post is ever shown.
//
// # Optimistic deletes
//
// Deleting a comment removes it from the list immediately and records it as
// pending. If the background delete later fails, the comment is put back at
// its old position (when its post is still open) and an error Notice is
// emitted.
//
// # Composer
//
// The comment composer tracks three required fields with independent
// invalid flags. Submitting validates all three, and on success only the
// body is cleared so the author can post again quickly.
package session
