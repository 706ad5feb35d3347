package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/todoapi/todoapi/internal/api"
	"github.com/todoapi/todoapi/internal/domain"
	"github.com/todoapi/todoapi/internal/store/sqlite"
	"github.com/todoapi/todoapi/pkg/todoapi"
)

// newLocalAPI starts the local todo API on an in-memory store seeded with
// tasks.
func newLocalAPI(t *testing.T, tasks ...domain.Task) *httptest.Server {
	t.Helper()

	store, err := sqlite.Open(sqlite.MemoryDSN)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Tasks().Seed(context.Background(), tasks); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	srv := httptest.NewServer(api.NewRouter(store, api.RouterOptions{Logger: zerolog.Nop()}))
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(append(args, "--log-level", "disabled"), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// mustRun runs the CLI and fails the test unless it exits successfully.
func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	code, out, errOut := runCLI(t, args...)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d (stderr: %s)", code, ExitSuccess, errOut)
	}
	return out
}

func decodeTask(t *testing.T, out string) todoapi.Task {
	t.Helper()
	var task todoapi.Task
	if err := json.Unmarshal([]byte(out), &task); err != nil {
		t.Fatalf("failed to decode task output %q: %v", out, err)
	}
	return task
}

func TestList_Table(t *testing.T) {
	srv := newLocalAPI(t,
		domain.Task{ID: "1", UserID: "1", Title: "delectus aut autem"},
		domain.Task{ID: "2", UserID: "1", Title: "quis ut nam facilis et officia qui", IsFinished: true},
	)

	out := mustRun(t, "list", "--endpoint", srv.URL)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), out)
	}
	if got := strings.Join(strings.Fields(lines[0]), " "); got != "ID USER TITLE DONE" {
		t.Errorf("header = %q", got)
	}
	if !strings.Contains(lines[2], "delectus aut autem") {
		t.Errorf("expected first task in %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "yes") {
		t.Errorf("expected finished task to end with yes, got %q", lines[3])
	}
}

func TestList_Empty(t *testing.T) {
	srv := newLocalAPI(t)

	out := mustRun(t, "list", "--endpoint", srv.URL)

	if out != "No tasks found\n" {
		t.Errorf("output = %q, want %q", out, "No tasks found\n")
	}
}

func TestList_JSON(t *testing.T) {
	srv := newLocalAPI(t, domain.Task{ID: "1", UserID: "1", Title: "delectus aut autem"})

	out := mustRun(t, "list", "--json", "--endpoint", srv.URL)

	var tasks []todoapi.Task
	if err := json.Unmarshal([]byte(out), &tasks); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	want := todoapi.Task{ID: "1", UserID: "1", Title: "delectus aut autem"}
	if len(tasks) != 1 || tasks[0] != want {
		t.Errorf("tasks = %+v, want [%+v]", tasks, want)
	}
}

func TestGet(t *testing.T) {
	srv := newLocalAPI(t, domain.Task{ID: "1", UserID: "7", Title: "delectus aut autem"})

	out := mustRun(t, "get", "1", "--endpoint", srv.URL)

	for _, want := range []string{"delectus aut autem", "User:", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	srv := newLocalAPI(t)

	code, out, errOut := runCLI(t, "get", "404", "--endpoint", srv.URL)

	if code != ExitNotFound {
		t.Errorf("exit code = %d, want %d", code, ExitNotFound)
	}
	if out != "" {
		t.Errorf("expected no stdout, got %q", out)
	}
	if errOut != "Error: item not found\n" {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestGet_NotFound_JSONError(t *testing.T) {
	srv := newLocalAPI(t)

	code, _, errOut := runCLI(t, "get", "404", "--json", "--endpoint", srv.URL)

	if code != ExitNotFound {
		t.Errorf("exit code = %d, want %d", code, ExitNotFound)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal([]byte(errOut), &body); err != nil {
		t.Fatalf("failed to decode error output: %v", err)
	}
	if body["error"]["message"] != "item not found" {
		t.Errorf("message = %q", body["error"]["message"])
	}
}

func TestUpdate_AppliesFlags(t *testing.T) {
	srv := newLocalAPI(t, domain.Task{ID: "1", UserID: "2", Title: "draft"})
	want := todoapi.Task{ID: "1", UserID: "2", Title: "Finish this kata", IsFinished: true}

	out := mustRun(t, "update", "1", "--title", "Finish this kata", "--finished", "--json", "--endpoint", srv.URL)
	if got := decodeTask(t, out); got != want {
		t.Errorf("update output = %+v, want %+v", got, want)
	}

	out = mustRun(t, "get", "1", "--json", "--endpoint", srv.URL)
	if got := decodeTask(t, out); got != want {
		t.Errorf("stored task = %+v, want %+v", got, want)
	}
}

func TestGetAndUpdate_IDWithSlash(t *testing.T) {
	srv := newLocalAPI(t, domain.Task{ID: "a/b", UserID: "1", Title: "draft"})

	out := mustRun(t, "get", "a/b", "--json", "--endpoint", srv.URL)
	if got := decodeTask(t, out); got.Title != "draft" {
		t.Errorf("title = %q, want draft", got.Title)
	}

	out = mustRun(t, "update", "a/b", "--finished", "--json", "--endpoint", srv.URL)
	want := todoapi.Task{ID: "a/b", UserID: "1", Title: "draft", IsFinished: true}
	if got := decodeTask(t, out); got != want {
		t.Errorf("update output = %+v, want %+v", got, want)
	}
}

func TestUpdate_NoFlags(t *testing.T) {
	srv := newLocalAPI(t, domain.Task{ID: "1", UserID: "2", Title: "draft"})

	code, _, errOut := runCLI(t, "update", "1", "--endpoint", srv.URL)

	if code != ExitGeneralError {
		t.Errorf("exit code = %d, want %d", code, ExitGeneralError)
	}
	if !strings.Contains(errOut, "nothing to update") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestUpdate_RejectedByServer(t *testing.T) {
	srv := newLocalAPI(t, domain.Task{ID: "1", UserID: "2", Title: "draft"})

	code, _, errOut := runCLI(t, "update", "1", "--title", "   ", "--endpoint", srv.URL)

	if code != ExitAPIError {
		t.Errorf("exit code = %d, want %d", code, ExitAPIError)
	}
	if !strings.Contains(errOut, "400") {
		t.Errorf("stderr = %q, want status 400", errOut)
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	code, _, errOut := runCLI(t, "list", "--endpoint", url)

	if code != ExitNetworkError {
		t.Errorf("exit code = %d, want %d", code, ExitNetworkError)
	}
	if errOut != "Error: network error\n" {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestUnknownAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	code, _, errOut := runCLI(t, "list", "--endpoint", srv.URL)

	if code != ExitAPIError {
		t.Errorf("exit code = %d, want %d", code, ExitAPIError)
	}
	if !strings.Contains(errOut, "403") {
		t.Errorf("stderr = %q, want status 403", errOut)
	}
}

func TestInvalidEndpoint(t *testing.T) {
	code, _, errOut := runCLI(t, "list", "--endpoint", "ftp://example.com")

	if code != ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, ExitConfigError)
	}
	if !strings.Contains(errOut, "scheme must be http or https") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute([]string{"list", "--log-level", "loud"}, &stdout, &stderr)

	if code != ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, ExitConfigError)
	}
}

func TestUsageError(t *testing.T) {
	code, _, _ := runCLI(t, "get")

	if code != ExitGeneralError {
		t.Errorf("exit code = %d, want %d", code, ExitGeneralError)
	}
}

func TestMapErrorToExitCode(t *testing.T) {
	generic := errors.New("something went wrong")

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "network", err: todoapi.NetworkError{}, expected: ExitNetworkError},
		{name: "not found", err: todoapi.ItemNotFoundError{}, expected: ExitNotFound},
		{name: "unknown api", err: todoapi.UnknownAPIError{StatusCode: 500}, expected: ExitAPIError},
		{name: "config", err: &configError{err: generic}, expected: ExitConfigError},
		{name: "generic error", err: generic, expected: ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mapErrorToExitCode(tt.err)
			if result != tt.expected {
				t.Errorf("mapErrorToExitCode() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	writeSeed(t, good, `[
		{"id":"1","userId":"1","title":"delectus aut autem","isFinished":false},
		{"userId":"2","title":"no id yet","isFinished":true}
	]`)

	tasks, err := loadSeed(good)
	if err != nil {
		t.Fatalf("loadSeed() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[1].ID != "" || !tasks[1].IsFinished {
		t.Errorf("unexpected second task: %+v", tasks[1])
	}

	bad := filepath.Join(dir, "bad.json")
	writeSeed(t, bad, `[{"id":"1","userId":"1","title":""}]`)
	if _, err := loadSeed(bad); err == nil || !strings.Contains(err.Error(), "title is required") {
		t.Errorf("expected title error, got %v", err)
	}

	if _, err := loadSeed(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing seed file")
	}
}

func TestOpenStore_Seeds(t *testing.T) {
	seed := filepath.Join(t.TempDir(), "seed.json")
	writeSeed(t, seed, `[{"id":"3","userId":"1","title":"seeded","isFinished":false}]`)

	store, err := openStore(context.Background(), &serveOptions{db: sqlite.MemoryDSN, seed: seed})
	if err != nil {
		t.Fatalf("openStore() error = %v", err)
	}
	defer store.Close()

	task, err := store.Tasks().GetByID(context.Background(), "3")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if task.Title != "seeded" {
		t.Errorf("title = %q, want seeded", task.Title)
	}
}

func TestServeCmd_Flags(t *testing.T) {
	cmd := newServeCmd(&globalOptions{})

	for name, def := range map[string]string{
		"bind":       "localhost:7433",
		"db":         ":memory:",
		"seed":       "",
		"rate-limit": "0",
	} {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Errorf("serve should have --%s flag", name)
			continue
		}
		if flag.DefValue != def {
			t.Errorf("--%s default = %q, expected %q", name, flag.DefValue, def)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"abcdefghijklmnop", 10, "abcdefg..."},
		{"abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func writeSeed(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed: %v", err)
	}
}
