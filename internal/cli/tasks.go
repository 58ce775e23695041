package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yashsurani047/workmanagement1-sub000/internal/client"
	"github.com/yashsurani047/workmanagement1-sub000/internal/models"
	"github.com/yashsurani047/workmanagement1-sub000/internal/service"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List and manage tasks",
	RunE:  runTasksList,
}

var tasksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a task",
	RunE:  runTasksCreate,
}

var tasksStatusCmd = &cobra.Command{
	Use:   "status [task-id] [new-status]",
	Short: "Change a task's status",
	Args:  cobra.ExactArgs(2),
	RunE:  runTasksStatus,
}

var tasksDeleteCmd = &cobra.Command{
	Use:   "delete [task-id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksDelete,
}

func init() {
	tasksCmd.AddCommand(tasksCreateCmd)
	tasksCmd.AddCommand(tasksStatusCmd)
	tasksCmd.AddCommand(tasksDeleteCmd)

	tasksCmd.Flags().String("status", "", "Filter by status")
	tasksCmd.Flags().String("priority", "", "Filter by priority")
	tasksCmd.Flags().String("search", "", "Filter by title/description substring")
	tasksCmd.Flags().String("project", "", "List a project's tasks instead of personal ones")

	tasksStatusCmd.Flags().String("project", "", "Project the task belongs to (omit for personal tasks)")

	tasksCreateCmd.Flags().String("title", "", "Task title (required)")
	tasksCreateCmd.Flags().String("description", "", "Task description")
	tasksCreateCmd.Flags().String("priority", "", "Priority")
	tasksCreateCmd.Flags().String("project", "", "Project to attach the task to")
	tasksCreateCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	tasksCreateCmd.Flags().StringSlice("assignee", nil, "Assignee user id (repeatable)")
	tasksCreateCmd.Flags().StringSlice("attach", nil, "Attachment file path (repeatable)")
}

func taskListFor(projectID string) *service.TaskList {
	if projectID == "" {
		return service.NewPersonalTaskList(app.api)
	}
	return service.NewProjectTaskList(app.api, projectID)
}

func runTasksList(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")
	priority, _ := cmd.Flags().GetString("priority")
	search, _ := cmd.Flags().GetString("search")
	projectID, _ := cmd.Flags().GetString("project")

	list := taskListFor(projectID)
	if err := list.Reload(cmd.Context()); err != nil {
		return err
	}

	tasks := list.Filtered(service.TaskFilter{
		Status:   models.TaskStatus(status),
		Priority: models.Priority(priority),
		Query:    search,
	})

	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	w := newTable("ID", "TITLE", "STATUS", "PRIORITY", "DUE")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.ID, truncate(t.Title, 40), statusLabel(t.Status), t.Priority, relativeTime(t.DueDate))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stats := list.Stats()
	fmt.Printf("\n%d total, %d in progress, %d completed, %d overdue\n",
		stats.Total, stats.InProgress, stats.Completed, stats.Overdue)
	return nil
}

func runTasksCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	priority, _ := cmd.Flags().GetString("priority")
	projectID, _ := cmd.Flags().GetString("project")
	due, _ := cmd.Flags().GetString("due")
	assignees, _ := cmd.Flags().GetStringSlice("assignee")
	attachments, _ := cmd.Flags().GetStringSlice("attach")

	// The title boundary is enforced here, before the client is invoked.
	if title == "" {
		return fmt.Errorf("--title is required")
	}

	draft := client.TaskDraft{
		Title:           title,
		Description:     description,
		Priority:        models.Priority(priority),
		Status:          models.StatusNotStarted,
		ProjectID:       projectID,
		Assignees:       assignees,
		AttachmentPaths: attachments,
	}
	if due != "" {
		t, err := time.Parse("2006-01-02", due)
		if err != nil {
			return fmt.Errorf("parse --due: %w", err)
		}
		draft.DueDate = &t
	}

	task, err := app.api.CreateTask(cmd.Context(), draft)
	if err != nil {
		return err
	}
	fmt.Printf("Created task %s: %s\n", task.ID, task.Title)
	return nil
}

func runTasksStatus(cmd *cobra.Command, args []string) error {
	taskID, status := args[0], models.TaskStatus(args[1])
	projectID, _ := cmd.Flags().GetString("project")

	list := taskListFor(projectID)
	if err := list.Reload(cmd.Context()); err != nil {
		return err
	}
	if err := list.UpdateStatus(cmd.Context(), taskID, status); err != nil {
		return err
	}
	fmt.Printf("Task %s is now %s\n", taskID, status)
	return nil
}

func runTasksDelete(cmd *cobra.Command, args []string) error {
	if err := app.api.DeleteTask(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted task %s\n", args[0])
	return nil
}
