package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yashsurani047/workmanagement1-sub000/internal/config"
	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
	"github.com/yashsurani047/workmanagement1-sub000/internal/session"
)

func TestFetchPersonalTasksWithoutIdentitySkipsNetwork(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request may be issued without an identity")
	}))
	defer srv.Close()

	cfg := &config.Config{BaseURL: srv.URL, HTTPTimeout: time.Second}
	c := New(cfg, &session.Session{})

	tasks, stats, err := c.FetchPersonalTasks(context.Background())
	if err != nil {
		t.Fatalf("expected a silent empty result, got %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected an empty task list, got %v", tasks)
	}
	if stats != (models.TaskStats{}) {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
}

func TestFetchPersonalTasksComputesStats(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organizations/org1/user-tasks/user1/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"tasks":[
			{"id":"t1","title":"a","status":"completed"},
			{"id":"t2","title":"b","status":"in_progress"},
			{"id":"t3","title":"c","status":"not_started"}
		]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	tasks, stats, err := c.FetchPersonalTasks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if stats.Total != 3 || stats.Completed != 1 || stats.InProgress != 1 || stats.NotStarted != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestUpdateTaskStatusPatchesAndParses(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/tasks/update-status/org1/task9/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"task":{"id":"task9","title":"x","status":"completed"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	task, err := c.UpdateTaskStatus(context.Background(), "task9", models.StatusCompleted)
	if err != nil {
		t.Fatal(err)
	}
	if task.ID != "task9" || task.Status != models.StatusCompleted {
		t.Errorf("unexpected task %+v", task)
	}
}

func TestUpdateTaskStatusBareAckReturnsNoTask(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	task, err := c.UpdateTaskStatus(context.Background(), "task9", models.StatusCompleted)
	if err != nil {
		t.Fatal(err)
	}
	if task != nil {
		t.Errorf("an acknowledgement without a task body must not synthesize one, got %+v", task)
	}
}

func TestUpdateTaskStatusServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.UpdateTaskStatus(context.Background(), "task9", models.StatusCompleted)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "(HTTP 500)") {
		t.Errorf("expected message to include (HTTP 500), got %q", err.Error())
	}
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("a draft without a title must not reach the network")
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CreateTask(context.Background(), TaskDraft{})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if vErr.Field != "title" {
		t.Errorf("expected the title field to be flagged, got %q", vErr.Field)
	}
}

func TestCreateTaskSendsMultipart(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	attachment := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(attachment, []byte("meeting notes"), 0o600); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/organizations/org1/create-task/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if got := r.FormValue("title"); got != "write report" {
			t.Errorf("expected title field, got %q", got)
		}
		if got := r.FormValue("created_by"); got != "user1" {
			t.Errorf("expected created_by, got %q", got)
		}
		if got := r.MultipartForm.Value["assignees"]; len(got) != 2 {
			t.Errorf("expected 2 assignee fields, got %v", got)
		}
		files := r.MultipartForm.File["attachments"]
		if len(files) != 1 || files[0].Filename != "notes.txt" {
			t.Errorf("expected one attachment, got %v", files)
		}
		w.Write([]byte(`{"task":{"id":"t1","title":"write report","status":"not_started"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	task, err := c.CreateTask(context.Background(), TaskDraft{
		Title:           "write report",
		Assignees:       []string{"u2", "u3"},
		AttachmentPaths: []string{attachment},
	})
	if err != nil {
		t.Fatal(err)
	}
	if task.ID != "t1" {
		t.Errorf("unexpected task %+v", task)
	}
}
