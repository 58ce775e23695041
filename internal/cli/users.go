package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var projectsUsersCmd = &cobra.Command{
	Use:   "users [project-id]",
	Short: "List a project's members",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsUsers,
}

var departmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "List the organization's departments",
	RunE:  runDepartmentsList,
}

func init() {
	projectsCmd.AddCommand(projectsUsersCmd)
}

func runProjectsUsers(cmd *cobra.Command, args []string) error {
	users, err := app.api.FetchProjectUsers(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Println("No members.")
		return nil
	}

	w := newTable("ID", "USERNAME", "DEPARTMENT")
	for _, u := range users {
		dept := u.Department
		if u.SubDepartment != "" {
			dept += "/" + u.SubDepartment
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", u.ID, u.Username, dept)
	}
	return w.Flush()
}

func runDepartmentsList(cmd *cobra.Command, args []string) error {
	departments, err := app.api.FetchDepartments(cmd.Context())
	if err != nil {
		return err
	}
	if len(departments) == 0 {
		fmt.Println("No departments.")
		return nil
	}

	w := newTable("ID", "NAME", "SUB-DEPARTMENTS")
	for _, d := range departments {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.Name, strings.Join(d.SubDepartments, ", "))
	}
	return w.Flush()
}
