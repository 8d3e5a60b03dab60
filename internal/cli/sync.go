package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-goal-keeper/internal/client"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/spf13/cobra"
)

// ErrSyncIncomplete is returned by sync when a phase failed. Local data is
// kept and the next cycle retries.
var ErrSyncIncomplete = errors.New("sync did not complete")

func (rt *runtime) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "sync",
		Short:   "Push local changes and pull remote ones",
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: rt.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			report := app.SyncNow(cmd.Context())

			if rt.jsonOutput {
				if err := outputJSON(cmd.OutOrStdout(), newReportView(report)); err != nil {
					return err
				}
			} else {
				printReport(cmd.OutOrStdout(), report)
			}

			if !report.OK() {
				return ErrSyncIncomplete
			}
			return nil
		}),
	}
}

func (rt *runtime) watchCommand() *cobra.Command {
	var out io.Writer = os.Stdout

	return &cobra.Command{
		Use:     "watch",
		Short:   "Keep syncing in the background until interrupted",
		Long:    `Run a sync cycle now and then on every --sync-interval tick until SIGINT or SIGTERM.`,
		GroupID: "sync",
		Args:    cobra.NoArgs,
		RunE: rt.withApp(func(cmd *cobra.Command, _ []string, app *client.App) error {
			out = cmd.OutOrStdout()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			printSuccess(out, "watching, press Ctrl+C to stop")
			return app.Run(ctx)
		}, client.WithReportHandler(func(report models.SyncReport) {
			printReport(out, report)
		})),
	}
}

func printReport(w io.Writer, report models.SyncReport) {
	switch {
	case report.Unauthorized:
		printWarning(w, "sync skipped: session is missing or was rejected, run `goal-keeper login <token>`")
		return
	case report.Err != nil:
		printWarning(w, "sync aborted: %v", report.Err)
	case report.OK():
		printSuccess(w, "sync finished in %s", report.Duration.Round(time.Millisecond))
	default:
		printWarning(w, "sync finished with errors in %s", report.Duration.Round(time.Millisecond))
	}

	for _, c := range report.Collections {
		printLabelValue(w, c.Collection+" push", fmt.Sprintf("created %d, updated %d, failed %d, still dirty %d, missing %d",
			c.Push.Created, c.Push.Updated, c.Push.Failed, c.Push.StillDirty, c.Push.Missing))
		printLabelValue(w, c.Collection+" pull", fmt.Sprintf("fetched %d, inserted %d, updated %d, rejected %d, skipped %d",
			c.Pull.Fetched, c.Pull.Inserted, c.Pull.Updated, c.Pull.Rejected, c.Pull.Skipped))
		if c.PushErr != nil {
			printLabelValue(w, c.Collection+" push error", c.PushErr.Error())
		}
		if c.PullErr != nil {
			printLabelValue(w, c.Collection+" pull error", c.PullErr.Error())
		}
	}
}

// reportView adds the error strings that [models.SyncReport] omits from JSON.
type reportView struct {
	models.SyncReport
	OK          bool                   `json:"ok"`
	Error       string                 `json:"error,omitempty"`
	Collections []collectionReportView `json:"collections"`
}

type collectionReportView struct {
	models.CollectionReport
	PushError string `json:"push_error,omitempty"`
	PullError string `json:"pull_error,omitempty"`
}

func newReportView(report models.SyncReport) reportView {
	v := reportView{SyncReport: report, OK: report.OK()}
	if report.Err != nil {
		v.Error = report.Err.Error()
	}

	v.Collections = make([]collectionReportView, 0, len(report.Collections))
	for _, c := range report.Collections {
		cv := collectionReportView{CollectionReport: c}
		if c.PushErr != nil {
			cv.PushError = c.PushErr.Error()
		}
		if c.PullErr != nil {
			cv.PullError = c.PullErr.Error()
		}
		v.Collections = append(v.Collections, cv)
	}
	return v
}
