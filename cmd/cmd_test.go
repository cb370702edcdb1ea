package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/zhubert/postview/internal/api"
	pverrors "github.com/zhubert/postview/internal/errors"
	"github.com/zhubert/postview/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// backend serves a fixed users/posts/comments data set.
type backend struct {
	mu      sync.Mutex
	created []api.NewComment
	deleted []string
}

func newTestServer(t *testing.T) (*httptest.Server, *backend) {
	t.Helper()
	b := &backend{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []api.User{
			{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"},
			{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv"},
			{ID: 3, Name: "Clementine Bauch", Username: "Samantha", Email: "Nathan@yesenia.net"},
		})
	})
	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("userId") != "1" {
			writeJSON(w, http.StatusOK, []api.Post{})
			return
		}
		writeJSON(w, http.StatusOK, []api.Post{{ID: 1, UserID: 1, Title: "sunt aut facere", Body: "quia et suscipit"}})
	})
	mux.HandleFunc("GET /comments", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("postId") != "1" {
			writeJSON(w, http.StatusOK, []api.Comment{})
			return
		}
		writeJSON(w, http.StatusOK, []api.Comment{{ID: 1, PostID: 1, Name: "id labore", Email: "Eliseo@gardner.biz", Body: "laudantium"}})
	})
	mux.HandleFunc("POST /comments", func(w http.ResponseWriter, r *http.Request) {
		var nc api.NewComment
		if err := json.NewDecoder(r.Body).Decode(&nc); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		b.created = append(b.created, nc)
		b.mu.Unlock()
		writeJSON(w, http.StatusCreated, api.Comment{ID: 501, PostID: nc.PostID, Name: nc.Name, Email: nc.Email, Body: nc.Body})
	})
	mux.HandleFunc("DELETE /comments/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "404" {
			http.NotFound(w, r)
			return
		}
		b.mu.Lock()
		b.deleted = append(b.deleted, id)
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// run executes the root command against srv and returns stdout.
func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Setenv("POSTVIEW_LOG_FILE", os.DevNull)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	full := append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml"), "--api", srv.URL}, args...)
	rootCmd.SetArgs(full)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags() {
	configPath, apiURL = "", ""
	debugMode, verboseMode, jsonOutput = false, false, false
	userLimit, postsUser, commentsPost = 0, 0, 0
	commentPost, commentName, commentEmail, commentBody = 0, "", "", ""
	demoOutput, demoWidth, demoHeight, demoCaptureAll = "", 0, 0, false
}

func TestUsers_JSONWhenNotTerminal(t *testing.T) {
	srv, _ := newTestServer(t)

	out, err := run(t, srv, "users")
	if err != nil {
		t.Fatalf("users: %v", err)
	}

	var users []api.User
	if err := json.Unmarshal([]byte(out), &users); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(users) != 3 {
		t.Errorf("users = %d, want 3", len(users))
	}
}

func TestUsers_Limit(t *testing.T) {
	srv, _ := newTestServer(t)

	out, err := run(t, srv, "users", "--limit", "2")
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	var users []api.User
	if err := json.Unmarshal([]byte(out), &users); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(users) != 2 || users[1].Name != "Ervin Howell" {
		t.Errorf("users = %+v, want first two", users)
	}
}

func TestPosts(t *testing.T) {
	srv, _ := newTestServer(t)

	out, err := run(t, srv, "posts", "--user", "1")
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	var posts []api.Post
	if err := json.Unmarshal([]byte(out), &posts); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "sunt aut facere" {
		t.Errorf("posts = %+v", posts)
	}
}

func TestPosts_InvalidUser(t *testing.T) {
	srv, _ := newTestServer(t)

	_, err := run(t, srv, "posts", "--user", "-1")
	if !pverrors.IsValidation(err) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestComments(t *testing.T) {
	srv, _ := newTestServer(t)

	out, err := run(t, srv, "comments", "--post", "1")
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	var comments []api.Comment
	if err := json.Unmarshal([]byte(out), &comments); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(comments) != 1 || comments[0].Email != "Eliseo@gardner.biz" {
		t.Errorf("comments = %+v", comments)
	}
}

func TestCommentAdd(t *testing.T) {
	srv, b := newTestServer(t)

	out, err := run(t, srv, "comment", "add", "--post", "1", "--name", " Ada ", "--email", "ada@example.com", "--body", "Nice post")
	if err != nil {
		t.Fatalf("comment add: %v", err)
	}

	if len(b.created) != 1 {
		t.Fatalf("created = %d, want 1", len(b.created))
	}
	if got := b.created[0]; got.PostID != 1 || got.Name != "Ada" || got.Body != "Nice post" {
		t.Errorf("request = %+v", got)
	}
	if !strings.Contains(out, `"id": 501`) {
		t.Errorf("expected created comment in output:\n%s", out)
	}
}

func TestCommentAdd_MissingFields(t *testing.T) {
	srv, b := newTestServer(t)

	_, err := run(t, srv, "comment", "add", "--post", "1", "--name", "Ada", "--body", "   ")
	if !pverrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	for _, want := range []string{"email", "body"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
	if len(b.created) != 0 {
		t.Error("no request should be sent")
	}
}

func TestCommentDelete(t *testing.T) {
	srv, b := newTestServer(t)

	out, err := run(t, srv, "comment", "delete", "7")
	if err != nil {
		t.Fatalf("comment delete: %v", err)
	}
	if len(b.deleted) != 1 || b.deleted[0] != "7" {
		t.Errorf("deleted = %v, want [7]", b.deleted)
	}
	if !strings.Contains(out, "Deleted comment 7") {
		t.Errorf("output = %q", out)
	}
}

func TestCommentDelete_Failures(t *testing.T) {
	srv, _ := newTestServer(t)

	if _, err := run(t, srv, "comment", "delete", "abc"); !pverrors.IsValidation(err) {
		t.Errorf("non-numeric id: err = %v, want validation error", err)
	}
	if _, err := run(t, srv, "comment", "delete", "404"); !pverrors.IsNetwork(err) {
		t.Errorf("missing comment: err = %v, want network error", err)
	}
}

func TestRootWithoutTerminalRefuses(t *testing.T) {
	srv, _ := newTestServer(t)

	_, err := run(t, srv)
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Errorf("err = %v, want terminal error", err)
	}
}

func TestRenderTable(t *testing.T) {
	got := renderTable([]string{"ID", "Name"}, [][]string{
		{"1", "Leanne Graham"},
		{"2", strings.Repeat("x", maxCellWidth+10)},
	})

	for _, want := range []string{"ID", "Name", "Leanne Graham", "…"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, strings.Repeat("x", maxCellWidth+1)) {
		t.Error("long cells should be truncated")
	}
}

func TestVersionTemplate(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer SetVersionInfo(origVersion, origCommit, origDate)

	SetVersionInfo("1.2.3", "none", "")
	if got := versionTemplate(); got != "postview 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	if got := versionTemplate(); !strings.Contains(got, "commit: abc123") {
		t.Errorf("versionTemplate() = %q, want commit line", got)
	}
}

func TestVerboseMirrorsOnlyForSubcommands(t *testing.T) {
	srv, _ := newTestServer(t)
	t.Cleanup(func() { logger.MirrorToStderr(false) })

	if _, err := run(t, srv, "--verbose", "users"); err != nil {
		t.Fatalf("users: %v", err)
	}
	if !logger.MirroringStderr() {
		t.Error("--verbose on a subcommand should mirror logs to stderr")
	}

	// The root command starts the TUI; it fails here without a terminal,
	// but the config hook has already run.
	_, _ = run(t, srv, "--verbose")
	if logger.MirroringStderr() {
		t.Error("--verbose on the root command should not mirror logs")
	}
}

func TestFlagsRegistered(t *testing.T) {
	for _, name := range []string{"config", "api", "debug", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
	if f := rootCmd.PersistentFlags().Lookup("verbose"); f != nil && f.Shorthand != "v" {
		t.Errorf("--verbose shorthand = %q, want v", f.Shorthand)
	}
}
