package cli

import (
	"github.com/MKhiriev/go-goal-keeper/internal/client"
	"github.com/spf13/cobra"
)

func (rt *runtime) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "login <token>",
		Short:   "Store a bearer token for sync",
		Long:    `Store the bearer token issued by the goals API. The owner id is read from the token.`,
		GroupID: "session",
		Args:    cobra.ExactArgs(1),
		RunE: rt.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			session, err := app.Login(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if rt.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), session)
			}
			printSuccess(cmd.OutOrStdout(), "logged in as owner %d", session.OwnerID)
			return nil
		}),
	}
}

func (rt *runtime) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Forget the stored session",
		Long:    `Forget the stored session. Local goals are kept and sync stops until the next login.`,
		GroupID: "session",
		Args:    cobra.NoArgs,
		RunE: rt.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			if err := app.Logout(cmd.Context()); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "logged out")
			return nil
		}),
	}
}
