package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/lifedash/internal/gym"
	"github.com/2beens/lifedash/internal/session"

	"github.com/spf13/cobra"
)

func newGymCmd(flags *rootFlags) *cobra.Command {
	gymCmd := &cobra.Command{Use: "gym", Short: "Workout tracking"}

	var ago time.Duration
	start := &cobra.Command{
		Use:   "start [name]",
		Short: "Start a workout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			m := a.gymManager(cmd.Context())
			data := session.StartData{StartedAt: startTime(ago)}
			if len(args) == 1 {
				data.Name = args[0]
			}
			if _, err := m.StartSession(cmd.Context(), data); err != nil {
				return err
			}
			a.printf("%s\n", renderStatus(m))
			return nil
		},
	}
	start.Flags().DurationVar(&ago, "ago", 0, "started this long ago, e.g. 10m")

	end := &cobra.Command{
		Use:   "end",
		Short: "End the active workout, empty workouts are dropped",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			res, err := a.gymManager(cmd.Context()).EndSession(cmd.Context())
			if err != nil {
				return err
			}
			a.printf("%s\n", renderEnd(gym.Domain, res))
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the active workout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			m := a.gymManager(cmd.Context())
			a.printf("%s\n", renderStatus(m))
			s := m.Session()
			if s == nil {
				return nil
			}
			lifts, err := a.api.ListLifts(cmd.Context(), s.ID)
			if err != nil {
				return err
			}
			for _, l := range lifts {
				a.printf("  %s\n", formatLift(l))
			}
			return nil
		},
	}

	var rpe float64
	lift := &cobra.Command{
		Use:   "lift <exercise> <weight> <reps>",
		Short: "Log a lift in the active workout",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid weight [%s]: %w", args[1], err)
			}
			reps, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid reps [%s]: %w", args[2], err)
			}

			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			s := a.gymManager(cmd.Context()).Session()
			if s == nil {
				return errors.New("no active workout, run `lifectl gym start` first")
			}

			l := gym.Lift{
				WorkoutID: s.ID,
				Exercise:  strings.TrimSpace(args[0]),
				Weight:    weight,
				Reps:      reps,
			}
			if cmd.Flags().Changed("rpe") {
				l.RPE = &rpe
			}
			res, err := a.api.AddLift(cmd.Context(), l)
			if err != nil {
				return err
			}
			a.printf("%s\n", formatLift(res.Lift))
			if res.NewRecord && res.Record != nil {
				a.printf("%s\n", okStyle.Render(fmt.Sprintf(
					"new personal record for %s, estimated 1RM %d", res.Record.Exercise, res.Record.Estimated1RM,
				)))
			}
			return nil
		},
	}
	lift.Flags().Float64Var(&rpe, "rpe", 0, "rate of perceived exertion")

	records := &cobra.Command{
		Use:   "records",
		Short: "List personal records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			prs, err := a.api.PersonalRecords(cmd.Context())
			if err != nil {
				return err
			}
			if len(prs) == 0 {
				a.printf("no records yet\n")
				return nil
			}
			for _, pr := range prs {
				a.printf("%-24s %6.1f x %-3d 1RM %-4d %s\n",
					pr.Exercise, pr.Weight, pr.Reps, pr.Estimated1RM,
					faintStyle.Render(pr.AchievedAt.Local().Format("2006-01-02")),
				)
			}
			return nil
		},
	}

	gymCmd.AddCommand(start, end, status, lift, records)
	return gymCmd
}

func formatLift(l gym.Lift) string {
	s := fmt.Sprintf("%s %.1f x %d", l.Exercise, l.Weight, l.Reps)
	if l.RPE != nil {
		s += fmt.Sprintf(" @%.1f", *l.RPE)
	}
	return s
}

// startTime returns the zero time for "now", the manager fills it in.
func startTime(ago time.Duration) time.Time {
	if ago <= 0 {
		return time.Time{}
	}
	return time.Now().Add(-ago)
}
