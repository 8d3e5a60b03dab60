// Package cli implements the goal-keeper command line client on cobra.
//
// Every command opens the local replica, does its work and closes it again.
// Mutations are written locally first; sync and watch talk to the remote
// goals API.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-goal-keeper/internal/client"
	"github.com/MKhiriev/go-goal-keeper/internal/config"
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/spf13/cobra"
)

// runtime holds the state shared by the command tree.
type runtime struct {
	root       *cobra.Command
	build      models.AppBuildInfo
	jsonOutput bool
}

// NewRootCommand builds the command tree.
func NewRootCommand(build models.AppBuildInfo) *cobra.Command {
	rt := &runtime{build: build}

	root := &cobra.Command{
		Use:   "goal-keeper",
		Short: "Offline-first savings goals",
		Long: `goal-keeper keeps savings goals in a local SQLite replica and
synchronizes them with the remote goals API when a session is available.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rt.root = root

	config.RegisterClientFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&rt.jsonOutput, "json", false, "Print results as JSON")

	root.AddGroup(
		&cobra.Group{ID: "session", Title: "Session Commands:"},
		&cobra.Group{ID: "goals", Title: "Goal Commands:"},
		&cobra.Group{ID: "sync", Title: "Sync Commands:"},
	)

	root.AddCommand(
		rt.loginCommand(),
		rt.logoutCommand(),
		rt.goalsCommand(),
		rt.syncCommand(),
		rt.watchCommand(),
		rt.versionCommand(),
	)

	return root
}

// Execute runs the command tree against the process arguments.
func Execute(ctx context.Context, build models.AppBuildInfo) error {
	return NewRootCommand(build).ExecuteContext(ctx)
}

// withApp opens the client app for the duration of fn.
func (rt *runtime) withApp(fn func(cmd *cobra.Command, args []string, app *client.App) error, opts ...client.AppOption) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.GetClientConfig(rt.root.PersistentFlags())
		if err != nil {
			return fmt.Errorf("error getting configs: %w", err)
		}

		log, logCloser := logger.NewClientLogger("goal-keeper-client", logger.FileOptions{
			Path:  cfg.Log.File,
			Level: cfg.Log.Level,
		})
		defer closeQuietly(logCloser)

		app, err := client.NewApp(log.WithContext(cmd.Context()), cfg, log, opts...)
		if err != nil {
			return err
		}
		defer closeQuietly(app)

		cmd.SetContext(log.WithContext(cmd.Context()))
		return fn(cmd, args, app)
	}
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
