package tasks

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/crucial707/taskdeck/cmd/cli/config"
)

// captureOutput helps capture stdout during command execution.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func setupEnv(t *testing.T, serverURL string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKDECK_API_URL", serverURL)
	t.Setenv("TASKDECK_API_KEY", "cli-test-key")
	if err := config.SaveToken("cli-test-token"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
}

func TestListTasks_TableOutput(t *testing.T) {
	tasks := []task{
		{ID: 1, Title: "Buy milk", Status: "pending", CreatedAt: time.Now()},
		{ID: 2, Title: "Walk dog", Status: "completed", CreatedAt: time.Now()},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer cli-test-token" {
			t.Errorf("Authorization header: %q", got)
		}
		if got := r.Header.Get("X-API-Key"); got != "cli-test-key" {
			t.Errorf("X-API-Key header: %q", got)
		}
		_ = json.NewEncoder(w).Encode(tasks)
	}))
	defer srv.Close()

	setupEnv(t, srv.URL)

	cmd := listTasksCmd()
	out := captureOutput(t, func() {
		if err := cmd.RunE(cmd, []string{}); err != nil {
			t.Errorf("list: %v", err)
		}
	})

	if !strings.Contains(out, "Buy milk") || !strings.Contains(out, "Walk dog") {
		t.Fatalf("expected task titles in output, got: %s", out)
	}
}

func TestCreateTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/tasks" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["title"] != "T1" {
			t.Errorf("title: %q", in["title"])
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(task{ID: 7, Title: "T1", Status: "pending"})
	}))
	defer srv.Close()

	setupEnv(t, srv.URL)

	cmd := createTaskCmd()
	if err := cmd.Flags().Set("title", "T1"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	out := captureOutput(t, func() {
		if err := cmd.RunE(cmd, []string{}); err != nil {
			t.Errorf("create: %v", err)
		}
	})

	if !strings.Contains(out, "Created task 7") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestCompleteTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" || r.URL.Path != "/tasks/7" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(task{ID: 7, Title: "T1", Status: "completed"})
	}))
	defer srv.Close()

	setupEnv(t, srv.URL)

	cmd := completeTaskCmd()
	out := captureOutput(t, func() {
		if err := cmd.RunE(cmd, []string{"7"}); err != nil {
			t.Errorf("complete: %v", err)
		}
	})

	if !strings.Contains(out, "marked completed") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestListTasks_NoToken(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TASKDECK_API_URL", "http://localhost:0")

	cmd := listTasksCmd()
	if err := cmd.RunE(cmd, []string{}); err == nil {
		t.Fatal("expected error without a stored token")
	}
}
