package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yashsurani047/workmanagement1-sub000/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().String("username", "", "Username (prompted when omitted)")
	loginCmd.Flags().String("password", "", "Password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	reader := bufio.NewReader(os.Stdin)
	if username == "" {
		fmt.Print("Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		username = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		password = strings.TrimSpace(line)
	}

	sess, err := app.api.Login(cmd.Context(), username, password)
	if err != nil {
		return err
	}
	if err := session.Save(app.sessRepo, sess); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	fmt.Printf("Signed in as %s (organization %s)\n", sess.Username, sess.OrganizationID)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := session.Clear(app.sessRepo); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	if !app.sess.Authenticated() {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s (user %s, organization %s)\n", app.sess.Username, app.sess.UserID, app.sess.OrganizationID)
	return nil
}
