package cli

import (
	"github.com/spf13/cobra"
)

func (rt *runtime) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rt.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), map[string]string{
					"version": rt.build.BuildVersion(),
					"date":    rt.build.BuildDate(),
					"commit":  rt.build.BuildCommit(),
				})
			}

			w := cmd.OutOrStdout()
			printLabelValue(w, "Build version", rt.build.BuildVersion())
			printLabelValue(w, "Build date", rt.build.BuildDate())
			printLabelValue(w, "Build commit", rt.build.BuildCommit())
			return nil
		},
	}
}
