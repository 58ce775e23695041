package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yashsurani047/workmanagement1-sub000/internal/client"
	"github.com/yashsurani047/workmanagement1-sub000/internal/config"
	"github.com/yashsurani047/workmanagement1-sub000/internal/logging"
	"github.com/yashsurani047/workmanagement1-sub000/internal/repository"
	"github.com/yashsurani047/workmanagement1-sub000/internal/session"
)

var (
	verbose bool
	rootCmd *cobra.Command

	app struct {
		cfg       *config.Config
		db        *sql.DB
		sessRepo  *repository.SessionRepository
		cacheRepo *repository.ProjectCacheRepository
		sess      *session.Session
		api       *client.Client
	}
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "wm",
		Short: "WorkManagement client",
		Long: `wm is the command-line client for the WorkManagement backend:
tasks, projects, meetings, events and task comments.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Mirror log output to stderr")
}

// setup wires config, logging, storage, session and the API client once per
// invocation. The session is loaded exactly once here; commands never read
// identity keys individually.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	app.cfg = cfg

	if err := logging.Init(cfg.LogFile); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	if verbose {
		logging.SetVerbose()
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := repository.InitDB(cfg.DatabasePath())
	if err != nil {
		return err
	}
	app.db = db
	app.sessRepo = repository.NewSessionRepository(db)
	app.cacheRepo = repository.NewProjectCacheRepository(db)

	sess, err := session.Load(app.sessRepo)
	if err != nil {
		return err
	}
	app.sess = sess
	app.api = client.New(cfg, sess)
	return nil
}

func Execute(version string) error {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(meetingsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(commentsCmd)
	rootCmd.AddCommand(departmentsCmd)
	rootCmd.AddCommand(watchCmd)

	rootCmd.Version = version

	defer func() {
		if app.db != nil {
			app.db.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
