package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/2beens/gymlog/internal/caldate"
)

var monthCmd = &cobra.Command{
	Use:   "month [year] [month]",
	Short: "Show the month index (current month by default)",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		today := caldate.Today()
		year, month := today.Year, today.Month
		if len(args) > 0 {
			y, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad year %q", args[0])
			}
			year = y
		}
		if len(args) > 1 {
			m, err := strconv.Atoi(args[1])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("bad month %q", args[1])
			}
			month = time.Month(m)
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		m, err := c.Month(cmd.Context(), year, month)
		if err != nil {
			return err
		}

		color.New(color.Bold).Printf("%s %d\n", time.Month(m.Month), m.Year)
		if len(m.Days) == 0 {
			fmt.Println("  no workouts")
		}
		for _, d := range m.Days {
			fmt.Printf("  %s  weight %s  reps %d  cardio %d min\n",
				color.CyanString(d.Date.String()), d.DayTotalWeight.StringFixed(2), d.DayTotalReps, d.DayTotalCardioMinutes)
		}
		fmt.Printf("  total weight %s, reps %d, cardio %d min\n",
			color.YellowString(m.MonthTotalWeight.StringFixed(2)), m.MonthTotalReps, m.MonthTotalCardioMinutes)
		return nil
	},
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show totals over all workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		a, err := c.Analytics(cmd.Context())
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s %d workouts, weight %s, reps %d\n",
			bold("overall:"), a.Overall.TotalWorkouts, a.Overall.TotalWeight.StringFixed(2), a.Overall.TotalReps)
		for _, g := range a.ByMuscleGroup {
			fmt.Printf("  %-12s sets %d  weight %s\n", color.MagentaString(g.MuscleGroup), g.TotalSets, g.TotalWeight.StringFixed(2))
		}
		fmt.Printf("%s %d min, distance %s\n",
			bold("cardio:"), a.CardioOverall.TotalMinutes, nullableFixed(a.CardioOverall.TotalDistance))
		for _, ct := range a.ByCardioType {
			fmt.Printf("  %-12s %d min  distance %s\n", color.CyanString(ct.CardioType), ct.TotalMinutes, nullableFixed(ct.TotalDistance))
		}
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history [exercise-id]",
	Short: "Show the progress of one exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad exercise id %q", args[0])
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		h, err := c.ExerciseHistory(cmd.Context(), id)
		if err != nil {
			return err
		}

		color.New(color.Bold).Printf("%s (%s)\n", h.Exercise.Name, h.Exercise.MuscleGroup)
		for _, p := range h.Points {
			fmt.Printf("  %s  volume %s  reps %d  avg %s\n",
				color.CyanString(p.Date.String()), p.TotalVolume.StringFixed(2), p.TotalReps, color.YellowString(p.AvgWeightPerRep.StringFixed(2)))
		}
		return nil
	},
}

func nullableFixed(d decimal.NullDecimal) string {
	if !d.Valid {
		return "-"
	}
	return d.Decimal.StringFixed(2)
}

func init() {
	rootCmd.AddCommand(monthCmd, analyticsCmd, historyCmd)
}
