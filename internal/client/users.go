package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
)

type userListResponse struct {
	Users []models.User `json:"users"`
}

type departmentListResponse struct {
	Departments []models.Department `json:"departments"`
}

// FetchProjectUsers lists members of a project, for assignee pickers.
func (c *Client) FetchProjectUsers(ctx context.Context, projectID string) ([]models.User, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("projects/%s/users/", projectID)
	var resp userListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch project users: %w", err)
	}
	if resp.Users == nil {
		resp.Users = []models.User{}
	}
	return resp.Users, nil
}

func (c *Client) FetchDepartments(ctx context.Context) ([]models.Department, error) {
	if err := c.requireIdentity(); err != nil {
		return nil, err
	}

	candidates := []string{
		fmt.Sprintf("organizations/%s/departments/", c.session.OrganizationID),
		fmt.Sprintf("departments/%s/", c.session.OrganizationID),
	}
	var resp departmentListResponse
	if err := c.getFirst(ctx, candidates, &resp); err != nil {
		return nil, fmt.Errorf("fetch departments: %w", err)
	}
	if resp.Departments == nil {
		resp.Departments = []models.Department{}
	}
	return resp.Departments, nil
}
