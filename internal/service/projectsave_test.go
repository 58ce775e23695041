package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/yashsurani047/workmanagement1-sub000/internal/client"
	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

type fakeProjectAPI struct {
	calls        []string
	failDocument string
	failAdd      bool
}

func (f *fakeProjectAPI) CreateProject(ctx context.Context, draft client.ProjectDraft) (*models.Project, error) {
	f.calls = append(f.calls, "create")
	return &models.Project{ID: "p1", Name: draft.Name}, nil
}

func (f *fakeProjectAPI) UpdateProject(ctx context.Context, projectID string, draft client.ProjectDraft) (*models.Project, error) {
	f.calls = append(f.calls, "update")
	return &models.Project{ID: projectID, Name: draft.Name}, nil
}

func (f *fakeProjectAPI) AddAssignees(ctx context.Context, projectID string, members []models.ProjectMember) error {
	f.calls = append(f.calls, "add-assignees")
	if f.failAdd {
		return errors.New("assignee sync down")
	}
	return nil
}

func (f *fakeProjectAPI) RemoveAssignee(ctx context.Context, projectID, userID string) error {
	f.calls = append(f.calls, "remove-"+userID)
	return nil
}

func (f *fakeProjectAPI) AddLink(ctx context.Context, projectID string, link models.Link) error {
	f.calls = append(f.calls, "link-"+link.URL)
	return nil
}

func (f *fakeProjectAPI) UploadDocument(ctx context.Context, projectID string, doc models.Attachment) error {
	f.calls = append(f.calls, "doc-"+doc.Path)
	if doc.Path == f.failDocument {
		return errors.New("upload failed")
	}
	return nil
}

func TestSaveRejectsEndBeforeStartWithoutAPICall(t *testing.T) {
	t.Parallel()

	api := &fakeProjectAPI{}
	saver := NewProjectSaver(api)

	start := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err := saver.Save(context.Background(), client.ProjectDraft{
		Name:      "Launch",
		StartDate: &start,
		EndDate:   &end,
	}, "", nil)

	var vErr *client.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if vErr.Message != "end date cannot be before start date" {
		t.Errorf("unexpected message %q", vErr.Message)
	}
	if len(api.calls) != 0 {
		t.Errorf("validation failures must not reach the API, got calls %v", api.calls)
	}
}

func TestSaveCreatesAndSyncsAllPhases(t *testing.T) {
	t.Parallel()

	api := &fakeProjectAPI{}
	saver := NewProjectSaver(api)

	report, err := saver.Save(context.Background(), client.ProjectDraft{
		Name:          "Launch",
		Members:       []models.ProjectMember{{UserID: "u1"}, {UserID: "u2"}},
		Links:         []models.Link{{URL: "https://example.com/brief"}},
		DocumentPaths: []string{"/tmp/plan.pdf"},
	}, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !report.Ok() {
		t.Fatalf("expected a clean report, got failures %v", report.Failed())
	}
	if report.ProjectID != "p1" {
		t.Errorf("expected project id from phase 1, got %q", report.ProjectID)
	}
	want := []string{"create", "add-assignees", "doc-/tmp/plan.pdf", "link-https://example.com/brief"}
	if len(api.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, api.calls)
	}
	for i, call := range want {
		if api.calls[i] != call {
			t.Errorf("call %d: expected %s, got %s", i, call, api.calls[i])
		}
	}
}

func TestSaveReportsPartialFailureWithoutRollback(t *testing.T) {
	t.Parallel()

	api := &fakeProjectAPI{failDocument: "/tmp/big.bin"}
	saver := NewProjectSaver(api)

	report, err := saver.Save(context.Background(), client.ProjectDraft{
		Name:          "Launch",
		DocumentPaths: []string{"/tmp/plan.pdf", "/tmp/big.bin"},
		Links:         []models.Link{{URL: "https://example.com"}},
	}, "", nil)
	if err != nil {
		t.Fatalf("a partial phase failure is reported, not returned: %v", err)
	}
	if report.Ok() {
		t.Fatal("expected a failed phase in the report")
	}

	failed := report.Failed()
	if len(failed) != 1 {
		t.Fatalf("expected exactly one failure, got %v", failed)
	}
	if failed[0].Phase != PhaseDocuments || failed[0].Detail != "/tmp/big.bin" {
		t.Errorf("unexpected failure %+v", failed[0])
	}

	// Later phases still ran.
	last := api.calls[len(api.calls)-1]
	if last != "link-https://example.com" {
		t.Errorf("expected links phase to run after the failed upload, got %v", api.calls)
	}
}

func TestSaveDiffsAssigneesAgainstPrevious(t *testing.T) {
	t.Parallel()

	api := &fakeProjectAPI{}
	saver := NewProjectSaver(api)

	previous := &models.Project{
		ID:      "p1",
		Name:    "Launch",
		Members: []models.ProjectMember{{UserID: "u1"}, {UserID: "u2"}},
	}
	report, err := saver.Save(context.Background(), client.ProjectDraft{
		Name:    "Launch",
		Members: []models.ProjectMember{{UserID: "u2"}, {UserID: "u3"}},
	}, "p1", previous)
	if err != nil {
		t.Fatal(err)
	}
	if !report.Ok() {
		t.Fatalf("expected a clean report, got %v", report.Failed())
	}

	sort.Strings(api.calls)
	want := []string{"add-assignees", "remove-u1", "update"}
	for i, call := range want {
		if api.calls[i] != call {
			t.Errorf("expected calls %v, got %v", want, api.calls)
			break
		}
	}
}

func TestDiffMembers(t *testing.T) {
	t.Parallel()

	previous := &models.Project{Members: []models.ProjectMember{{UserID: "a"}, {UserID: "b"}}}
	added, removed := diffMembers(previous, []models.ProjectMember{{UserID: "b"}, {UserID: "c"}})

	if len(added) != 1 || added[0].UserID != "c" {
		t.Errorf("expected only c added, got %v", added)
	}
	if len(removed) != 1 || removed[0] != "a" {
		t.Errorf("expected only a removed, got %v", removed)
	}

	added, removed = diffMembers(nil, []models.ProjectMember{{UserID: "x"}})
	if len(added) != 1 || len(removed) != 0 {
		t.Errorf("with no previous copy everything is an addition, got %v / %v", added, removed)
	}
}
