package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/yashsurani047/workmanagement1-sub000/internal/client"
	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
	"github.com/yashsurani047/workmanagement1-sub000/internal/service"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List and manage projects",
	RunE:  runProjectsList,
}

var projectsShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show a project (cached copy first, then fresh)",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsShow,
}

var projectsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update a project",
	RunE:  runProjectsSave,
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete [project-id]",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsDelete,
}

func init() {
	projectsCmd.AddCommand(projectsShowCmd)
	projectsCmd.AddCommand(projectsSaveCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)

	projectsCmd.Flags().String("status", "", "Filter by status")
	projectsCmd.Flags().String("search", "", "Filter by name/description substring")

	projectsSaveCmd.Flags().String("id", "", "Project id (omit to create)")
	projectsSaveCmd.Flags().String("name", "", "Project name (required)")
	projectsSaveCmd.Flags().String("description", "", "Project description")
	projectsSaveCmd.Flags().String("status", "", "Project status")
	projectsSaveCmd.Flags().String("priority", "", "Project priority")
	projectsSaveCmd.Flags().String("color", "", "Display color")
	projectsSaveCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	projectsSaveCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	projectsSaveCmd.Flags().StringSlice("member", nil, "Member user id (repeatable)")
	projectsSaveCmd.Flags().StringSlice("link", nil, "Link url (repeatable)")
	projectsSaveCmd.Flags().StringSlice("document", nil, "Document file path (repeatable)")
}

func runProjectsList(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")
	search, _ := cmd.Flags().GetString("search")

	projects, err := app.api.FetchProjects(cmd.Context())
	if err != nil {
		return err
	}
	projects = service.FilterProjects(projects, service.ProjectFilter{
		Status: models.TaskStatus(status),
		Query:  search,
	})

	if len(projects) == 0 {
		fmt.Println("No projects.")
		return nil
	}

	w := newTable("ID", "NAME", "STATUS", "MEMBERS", "END")
	for _, p := range projects {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			p.ID, truncate(p.Name, 40), statusLabel(p.Status), len(p.Members), relativeTime(p.EndDate))
	}
	return w.Flush()
}

func runProjectsShow(cmd *cobra.Command, args []string) error {
	projectID := args[0]

	// Cached copy renders immediately; the fresh fetch replaces it.
	if cached, fetchedAt, err := app.cacheRepo.Get(projectID); err == nil && cached != nil {
		fmt.Printf("(cached %s)\n", humanize.Time(fetchedAt))
		printProject(cached)
	}

	project, err := app.api.FetchProject(cmd.Context(), projectID)
	if err != nil {
		return err
	}
	if err := app.cacheRepo.Put(*project); err != nil {
		return err
	}

	fmt.Println("(fresh)")
	printProject(project)
	return nil
}

func printProject(p *models.Project) {
	fmt.Printf("%s  %s [%s]\n", p.ID, p.Name, statusLabel(p.Status))
	if p.Description != "" {
		fmt.Println(" ", p.Description)
	}
	if p.StartDate != nil || p.EndDate != nil {
		fmt.Printf("  %s -> %s\n", relativeTime(p.StartDate), relativeTime(p.EndDate))
	}
	for _, m := range p.Members {
		fmt.Printf("  member %s %s/%s\n", m.UserID, m.Department, m.SubDepartment)
	}
	for _, l := range p.Links {
		fmt.Printf("  link %s\n", l.URL)
	}
	for _, d := range p.Documents {
		fmt.Printf("  document %s\n", d.Name)
	}
}

func runProjectsSave(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetString("id")
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	status, _ := cmd.Flags().GetString("status")
	priority, _ := cmd.Flags().GetString("priority")
	color, _ := cmd.Flags().GetString("color")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")
	members, _ := cmd.Flags().GetStringSlice("member")
	links, _ := cmd.Flags().GetStringSlice("link")
	documents, _ := cmd.Flags().GetStringSlice("document")

	draft := client.ProjectDraft{
		Name:          name,
		Description:   description,
		Status:        models.TaskStatus(status),
		Priority:      models.Priority(priority),
		Color:         color,
		DocumentPaths: documents,
	}
	for _, m := range members {
		draft.Members = append(draft.Members, models.ProjectMember{UserID: m})
	}
	for _, l := range links {
		draft.Links = append(draft.Links, models.Link{URL: l})
	}
	if start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return fmt.Errorf("parse --start: %w", err)
		}
		draft.StartDate = &t
	}
	if end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return fmt.Errorf("parse --end: %w", err)
		}
		draft.EndDate = &t
	}

	var previous *models.Project
	if id != "" {
		p, err := app.api.FetchProject(cmd.Context(), id)
		if err != nil {
			return err
		}
		previous = p
	}

	saver := service.NewProjectSaver(app.api)
	report, err := saver.Save(cmd.Context(), draft, id, previous)
	if err != nil {
		return err
	}

	if report.Ok() {
		fmt.Printf("Saved project %s\n", report.ProjectID)
		return nil
	}

	fmt.Printf("Project %s saved with incomplete phases:\n", report.ProjectID)
	for _, failure := range report.Failed() {
		fmt.Printf("  %s %s: %v\n", failure.Phase, failure.Detail, failure.Err)
	}
	return fmt.Errorf("%d save phase(s) failed; retry to fill in the missing pieces", len(report.Failed()))
}

func runProjectsDelete(cmd *cobra.Command, args []string) error {
	if err := app.api.DeleteProject(cmd.Context(), args[0]); err != nil {
		return err
	}
	if err := app.cacheRepo.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted project %s\n", args[0])
	return nil
}
