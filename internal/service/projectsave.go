package service

import (
	"context"
	"fmt"

	"github.com/yashsurani047/workmanagement1-sub000/internal/client"
	"github.com/yashsurani047/workmanagement1-sub000/internal/logging"
	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

// SavePhase names one phase of the project save sequence.
type SavePhase string

const (
	PhaseProject   SavePhase = "project"
	PhaseAssignees SavePhase = "assignees"
	PhaseDocuments SavePhase = "documents"
	PhaseLinks     SavePhase = "links"
)

type PhaseResult struct {
	Phase SavePhase
	// Detail identifies the item within the phase (a user id, file name
	// or link url); empty for the project row itself.
	Detail string
	Err    error
}

// SaveReport records the outcome of every phase. The save is eventually
// consistent: a failed phase leaves earlier phases in place, and the report
// tells the caller exactly what is missing so a retry can target it.
type SaveReport struct {
	ProjectID string
	Results   []PhaseResult
}

func (r *SaveReport) Failed() []PhaseResult {
	var failed []PhaseResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

func (r *SaveReport) Ok() bool {
	return len(r.Failed()) == 0
}

func (r *SaveReport) record(phase SavePhase, detail string, err error) {
	r.Results = append(r.Results, PhaseResult{Phase: phase, Detail: detail, Err: err})
	if err != nil {
		logging.Logger.WithError(err).WithFields(map[string]any{
			"phase":  string(phase),
			"detail": detail,
		}).Warn("project save phase failed")
	}
}

// ProjectSaver runs the three-phase save: project row, then assignee sync,
// then documents and links.
type ProjectSaver struct {
	api client.ProjectAPI
}

func NewProjectSaver(api client.ProjectAPI) *ProjectSaver {
	return &ProjectSaver{api: api}
}

// ValidateDraft applies the pre-flight checks. A failing draft never causes
// a network call.
func ValidateDraft(draft client.ProjectDraft) error {
	if draft.Name == "" {
		return &client.ValidationError{Field: "name", Message: "project name is required"}
	}
	if draft.StartDate != nil && draft.EndDate != nil && draft.EndDate.Before(*draft.StartDate) {
		return &client.ValidationError{Field: "end_date", Message: "end date cannot be before start date"}
	}
	if draft.Status != "" && !draft.Status.Valid() {
		return &client.ValidationError{Field: "status", Message: fmt.Sprintf("unknown project status %q", draft.Status)}
	}
	if draft.Priority != "" && !draft.Priority.Valid() {
		return &client.ValidationError{Field: "priority", Message: fmt.Sprintf("unknown priority %q", draft.Priority)}
	}
	return nil
}

// Save creates or updates the project and syncs its satellite records.
// existingID == "" creates; otherwise the row is updated and previous
// holds the server copy used to diff assignees.
func (s *ProjectSaver) Save(ctx context.Context, draft client.ProjectDraft, existingID string, previous *models.Project) (*SaveReport, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	report := &SaveReport{}

	// Phase 1: the project row. Nothing else can proceed without it.
	var project *models.Project
	var err error
	if existingID == "" {
		project, err = s.api.CreateProject(ctx, draft)
	} else {
		project, err = s.api.UpdateProject(ctx, existingID, draft)
	}
	report.record(PhaseProject, "", err)
	if err != nil {
		return report, fmt.Errorf("save project row: %w", err)
	}
	report.ProjectID = project.ID

	// Phase 2: assignee sync. Adds and removes are diffed against the
	// previous server copy; each side is independently fallible.
	added, removed := diffMembers(previous, draft.Members)
	if len(added) > 0 {
		err := s.api.AddAssignees(ctx, project.ID, added)
		report.record(PhaseAssignees, "add", err)
	}
	for _, userID := range removed {
		err := s.api.RemoveAssignee(ctx, project.ID, userID)
		report.record(PhaseAssignees, userID, err)
	}

	// Phase 3: documents and links, one call per item so a single bad
	// file does not sink the rest.
	for _, path := range draft.DocumentPaths {
		err := s.api.UploadDocument(ctx, project.ID, models.Attachment{Path: path})
		report.record(PhaseDocuments, path, err)
	}
	for _, link := range draft.Links {
		err := s.api.AddLink(ctx, project.ID, link)
		report.record(PhaseLinks, link.URL, err)
	}

	return report, nil
}

// diffMembers splits the draft's member set into additions relative to the
// previous server copy, and removals no longer present in the draft.
func diffMembers(previous *models.Project, want []models.ProjectMember) (added []models.ProjectMember, removed []string) {
	have := make(map[string]struct{})
	if previous != nil {
		for _, m := range previous.Members {
			have[m.UserID] = struct{}{}
		}
	}

	wanted := make(map[string]struct{}, len(want))
	for _, m := range want {
		wanted[m.UserID] = struct{}{}
		if _, ok := have[m.UserID]; !ok {
			added = append(added, m)
		}
	}
	for userID := range have {
		if _, ok := wanted[userID]; !ok {
			removed = append(removed, userID)
		}
	}
	return added, removed
}
