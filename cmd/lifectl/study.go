package main

import (
	"time"

	"github.com/2beens/lifedash/internal/session"
	"github.com/2beens/lifedash/internal/study"

	"github.com/spf13/cobra"
)

func newStudyCmd(flags *rootFlags) *cobra.Command {
	studyCmd := &cobra.Command{Use: "study", Short: "Study session tracking"}

	var bucketID int
	var ago time.Duration
	start := &cobra.Command{
		Use:   "start",
		Short: "Start a study session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			m := a.studyManager(cmd.Context())
			data := session.StartData{StartedAt: startTime(ago)}
			if cmd.Flags().Changed("bucket") {
				data.BucketID = &bucketID
			}
			if _, err := m.StartSession(cmd.Context(), data); err != nil {
				return err
			}
			a.printf("%s\n", renderStatus(m))
			return nil
		},
	}
	start.Flags().IntVar(&bucketID, "bucket", 0, "bucket id, see `lifectl study buckets`")
	start.Flags().DurationVar(&ago, "ago", 0, "started this long ago, e.g. 10m")

	end := &cobra.Command{
		Use:   "end",
		Short: "End the active study session, sessions under a minute are dropped",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			res, err := a.studyManager(cmd.Context()).EndSession(cmd.Context())
			if err != nil {
				return err
			}
			a.printf("%s\n", renderEnd(study.Domain, res))
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the active study session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			a.printf("%s\n", renderStatus(a.studyManager(cmd.Context())))
			return nil
		},
	}

	buckets := &cobra.Command{
		Use:   "buckets",
		Short: "List study buckets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			list, err := a.api.ListBuckets(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				a.printf("no buckets\n")
				return nil
			}
			for _, b := range list {
				a.printf("%4d  %s\n", b.ID, b.Name)
			}
			return nil
		},
	}

	studyCmd.AddCommand(start, end, status, buckets)
	return studyCmd
}
