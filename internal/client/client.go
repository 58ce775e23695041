package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/yashsurani047/workmanagement1-sub000/internal/config"
	"github.com/yashsurani047/workmanagement1-sub000/internal/logging"
	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
	"github.com/yashsurani047/workmanagement1-sub000/internal/session"
)

// TaskAPI is the surface the task list layer depends on.
type TaskAPI interface {
	FetchPersonalTasks(ctx context.Context) ([]models.Task, models.TaskStats, error)
	FetchProjectTasks(ctx context.Context, projectID string) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID string, status models.TaskStatus) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// ProjectAPI is the surface the project save orchestrator depends on.
type ProjectAPI interface {
	CreateProject(ctx context.Context, draft ProjectDraft) (*models.Project, error)
	UpdateProject(ctx context.Context, projectID string, draft ProjectDraft) (*models.Project, error)
	AddAssignees(ctx context.Context, projectID string, members []models.ProjectMember) error
	RemoveAssignee(ctx context.Context, projectID, userID string) error
	AddLink(ctx context.Context, projectID string, link models.Link) error
	UploadDocument(ctx context.Context, projectID string, doc models.Attachment) error
}

// Client talks to the WorkManagement backend. All modules share one base
// URL, one auth token, one retry policy, and one circuit breaker.
type Client struct {
	baseURL    string
	session    *session.Session
	httpClient *http.Client
	log        *logrus.Logger
	breaker    *gobreaker.CircuitBreaker

	retryMax  int
	retryBase time.Duration
}

func New(cfg *config.Config, sess *session.Session) *Client {
	if sess == nil {
		sess = &session.Session{}
	}
	log := logging.Logger
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		session:    sess,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		log:        log,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "workmanagement-api",
			MaxRequests: 1,
			Timeout:     5 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 3
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Infof("circuit breaker %s changed from %s to %s", name, from, to)
			},
		}),
		retryMax:  2,
		retryBase: 300 * time.Millisecond,
	}
}

// Session exposes the identity the client was built with.
func (c *Client) Session() *session.Session {
	return c.session
}

// requireIdentity aborts a call locally when no identity is resolvable,
// instead of sending a request the backend will reject as malformed.
func (c *Client) requireIdentity() error {
	if c.session == nil || c.session.UserID == "" {
		return &ValidationError{Field: "user_id", Message: "no signed-in user; run login first"}
	}
	if c.session.OrganizationID == "" {
		return &ValidationError{Field: "organization_id", Message: "no organization selected; run login first"}
	}
	return nil
}
