// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-goal-keeper/internal/client"
	"github.com/MKhiriev/go-goal-keeper/internal/store"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// ErrNotLoggedIn is returned by goal commands before the first login.
var ErrNotLoggedIn = errors.New("not logged in: run `goal-keeper login <token>` first")

// goalFlags are the payload flags shared by add and update.
type goalFlags struct {
	name     string
	target   string
	current  string
	deadline string
	status   string
}

func (f *goalFlags) register(cmd *cobra.Command, withStatus bool) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Goal name")
	cmd.Flags().StringVarP(&f.target, "target", "t", "", "Target amount")
	cmd.Flags().StringVar(&f.current, "current", "", "Current amount")
	cmd.Flags().StringVar(&f.deadline, "deadline", "", "Deadline as YYYY-MM-DD")
	if withStatus {
		cmd.Flags().StringVar(&f.status, "status", "", "Status (active, completed, archived)")
	}
}

// patch builds a patch from the flags that were set on cmd.
func (f *goalFlags) patch(cmd *cobra.Command) (models.GoalPatch, error) {
	var p models.GoalPatch
	changed := cmd.Flags().Changed

	if changed("name") {
		p.Name = &f.name
	}
	if changed("target") {
		v, err := parseAmount("target", f.target)
		if err != nil {
			return p, err
		}
		p.TargetAmount = &v
	}
	if changed("current") {
		v, err := parseAmount("current", f.current)
		if err != nil {
			return p, err
		}
		p.CurrentAmount = &v
	}
	if changed("deadline") {
		d, err := models.ParseDate(f.deadline)
		if err != nil {
			return p, fmt.Errorf("invalid --deadline: %w", err)
		}
		p.Deadline = &d
	}
	if changed("status") {
		s := models.GoalStatus(f.status)
		p.Status = &s
	}
	return p, nil
}

func (rt *runtime) goalsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goals",
		Short:   "Manage savings goals",
		GroupID: "goals",
	}

	cmd.AddCommand(
		rt.goalsAddCommand(),
		rt.goalsListCommand(),
		rt.goalsUpdateCommand(),
		rt.goalsContributeCommand(),
		rt.goalsDeleteCommand(),
	)
	return cmd
}

func (rt *runtime) goalsAddCommand() *cobra.Command {
	var flags goalFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal locally",
		Args:  cobra.NoArgs,
		RunE: rt.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			ownerID, err := ownerOf(cmd, app)
			if err != nil {
				return err
			}

			p, err := flags.patch(cmd)
			if err != nil {
				return err
			}

			record, err := app.Goals().Create(cmd.Context(), ownerID, p.Apply(models.SavingsGoal{}))
			if err != nil {
				return err
			}
			return rt.printRecord(cmd.OutOrStdout(), "created", record)
		}),
	}

	flags.register(cmd, false)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func (rt *runtime) goalsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List local goals",
		Args:  cobra.NoArgs,
		RunE: rt.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			ownerID, err := ownerOf(cmd, app)
			if err != nil {
				return err
			}

			records, err := app.Goals().List(cmd.Context(), ownerID)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if rt.jsonOutput {
				return outputJSON(w, toGoalViews(records))
			}
			if len(records) == 0 {
				printEmptyState(w, "No goals yet")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, r := range records {
				v := toGoalView(r)
				rows = append(rows, []string{
					strconv.FormatInt(v.LocalID, 10),
					v.Name,
					v.CurrentAmount + "/" + v.TargetAmount,
					v.Deadline,
					string(v.Status),
					v.syncState(),
				})
			}
			printTable(w, []string{"ID", "Name", "Saved", "Deadline", "Status", "Sync"}, rows)
			return nil
		}),
	}
}

func (rt *runtime) goalsUpdateCommand() *cobra.Command {
	var flags goalFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a goal",
		Args:  cobra.ExactArgs(1),
		RunE: rt.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			ownerID, localID, err := ownerAndID(cmd, app, args[0])
			if err != nil {
				return err
			}

			p, err := flags.patch(cmd)
			if err != nil {
				return err
			}

			record, err := app.Goals().Update(cmd.Context(), ownerID, localID, p)
			if err != nil {
				return err
			}
			return rt.printRecord(cmd.OutOrStdout(), "updated", record)
		}),
	}

	flags.register(cmd, true)
	return cmd
}

func (rt *runtime) goalsContributeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contribute <id> <amount>",
		Short: "Add money to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: rt.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			ownerID, localID, err := ownerAndID(cmd, app, args[0])
			if err != nil {
				return err
			}

			amount, err := parseAmount("amount", args[1])
			if err != nil {
				return err
			}

			record, err := app.Goals().Contribute(cmd.Context(), ownerID, localID, models.Contribution{Amount: amount})
			if err != nil {
				return err
			}
			return rt.printRecord(cmd.OutOrStdout(), "contributed", record)
		}),
	}
}

func (rt *runtime) goalsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal locally and remotely",
		Long: `Delete a goal from the local replica. When the goal was synced and a session
is stored, the remote copy is deleted too; if that fails the goal comes back
on the next sync.`,
		Args: cobra.ExactArgs(1),
		RunE: rt.withApp(func(cmd *cobra.Command, args []string, app *client.App) error {
			_, localID, err := ownerAndID(cmd, app, args[0])
			if err != nil {
				return err
			}

			session, err := app.Session(cmd.Context())
			if err != nil {
				return err
			}

			if err = app.Goals().Delete(cmd.Context(), session, localID); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "deleted goal %d", localID)
			return nil
		}),
	}
}

func (rt *runtime) printRecord(w io.Writer, verb string, record models.LocalRecord[models.SavingsGoal]) error {
	v := toGoalView(record)
	if rt.jsonOutput {
		return outputJSON(w, v)
	}

	printSuccess(w, "%s goal %d", verb, v.LocalID)
	printLabelValue(w, "Name", v.Name)
	printLabelValue(w, "Saved", v.CurrentAmount+"/"+v.TargetAmount)
	if v.Deadline != "" {
		printLabelValue(w, "Deadline", v.Deadline)
	}
	printLabelValue(w, "Status", string(v.Status))
	printLabelValue(w, "Sync", v.syncState())
	return nil
}

// goalView is the printed shape of a local goal.
type goalView struct {
	LocalID       int64             `json:"id"`
	ServerID      string            `json:"serverId,omitempty"`
	Name          string            `json:"name"`
	TargetAmount  string            `json:"targetAmount"`
	CurrentAmount string            `json:"currentAmount"`
	Deadline      string            `json:"deadline,omitempty"`
	Status        models.GoalStatus `json:"status"`
	Dirty         bool              `json:"dirty"`
	UpdatedAt     string            `json:"updatedAt"`
}

func (v goalView) syncState() string {
	switch {
	case v.ServerID == "":
		return "local only"
	case v.Dirty:
		return "pending (" + v.ServerID + ")"
	default:
		return "synced (" + v.ServerID + ")"
	}
}

func toGoalView(r models.LocalRecord[models.SavingsGoal]) goalView {
	v := goalView{
		LocalID:       r.LocalID,
		ServerID:      r.ServerIDOrEmpty(),
		Name:          r.Payload.Name,
		TargetAmount:  r.Payload.TargetAmount.String(),
		CurrentAmount: r.Payload.CurrentAmount.String(),
		Status:        r.Payload.Status,
		Dirty:         r.Dirty,
		UpdatedAt:     r.UpdatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
	}
	if r.Payload.Deadline != nil {
		v.Deadline = r.Payload.Deadline.String()
	}
	return v
}

func toGoalViews(records []models.LocalRecord[models.SavingsGoal]) []goalView {
	out := make([]goalView, 0, len(records))
	for _, r := range records {
		out = append(out, toGoalView(r))
	}
	return out
}

func ownerOf(cmd *cobra.Command, app *client.App) (int64, error) {
	ownerID, err := app.OwnerID(cmd.Context())
	if errors.Is(err, store.ErrNoSession) {
		return 0, ErrNotLoggedIn
	}
	return ownerID, err
}

func ownerAndID(cmd *cobra.Command, app *client.App, rawID string) (int64, int64, error) {
	localID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || localID <= 0 {
		return 0, 0, fmt.Errorf("invalid goal id %q", rawID)
	}

	ownerID, err := ownerOf(cmd, app)
	if err != nil {
		return 0, 0, err
	}
	return ownerID, localID, nil
}

func parseAmount(name, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return v, nil
}
