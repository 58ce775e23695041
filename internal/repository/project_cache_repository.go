package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

// ProjectCacheRepository keeps the last-fetched copy of each project so a
// detail view can render instantly while a fresh fetch is in flight.
type ProjectCacheRepository struct {
	db *sql.DB
}

func NewProjectCacheRepository(db *sql.DB) *ProjectCacheRepository {
	return &ProjectCacheRepository{db: db}
}

func (r *ProjectCacheRepository) Put(project models.Project) error {
	body, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("marshal project for cache: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO project_cache (project_id, body, fetched_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(project_id) DO UPDATE SET body = excluded.body, fetched_at = CURRENT_TIMESTAMP
	`, project.ID, string(body))
	if err != nil {
		return fmt.Errorf("cache project %s: %w", project.ID, err)
	}
	return nil
}

// Get returns the cached project and when it was fetched. A miss returns
// (nil, zero time, nil).
func (r *ProjectCacheRepository) Get(projectID string) (*models.Project, time.Time, error) {
	var body string
	var fetchedAt time.Time
	err := r.db.QueryRow(
		`SELECT body, fetched_at FROM project_cache WHERE project_id = ?`, projectID,
	).Scan(&body, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("read project cache %s: %w", projectID, err)
	}

	var project models.Project
	if err := json.Unmarshal([]byte(body), &project); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode cached project %s: %w", projectID, err)
	}
	return &project, fetchedAt, nil
}

func (r *ProjectCacheRepository) Delete(projectID string) error {
	_, err := r.db.Exec(`DELETE FROM project_cache WHERE project_id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("evict project cache %s: %w", projectID, err)
	}
	return nil
}
