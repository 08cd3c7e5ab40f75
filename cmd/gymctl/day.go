package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/gymlog/internal/caldate"
	"github.com/2beens/gymlog/pkg/gymclient"
)

var (
	dayNotes  string
	daySets   []string
	dayCardio []string
)

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "Show the workout of a day (today by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := caldate.Today()
		if len(args) == 1 {
			var err error
			if date, err = caldate.Parse(args[0]); err != nil {
				return err
			}
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		day, err := c.Day(cmd.Context(), date)
		if err != nil {
			return err
		}
		printDay(day)
		return nil
	},
}

var saveDayCmd = &cobra.Command{
	Use:   "save [YYYY-MM-DD]",
	Short: "Replace the workout of a day",
	Long: `Replace everything stored for the date with the given notes and entries.
Sets are given as <exercise-id>:<sets>x<reps>@<weight>, cardio as <cardio-type-id>:<minutes>@<distance>.
Saving with no entries and no notes clears the day.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := gymclient.DayInput{
			Date:  args[0],
			Notes: dayNotes,
		}
		for _, spec := range daySets {
			set, err := parseSet(spec)
			if err != nil {
				return err
			}
			input.Entries = append(input.Entries, set)
		}
		for _, spec := range dayCardio {
			cardio, err := parseCardio(spec)
			if err != nil {
				return err
			}
			input.CardioEntries = append(input.CardioEntries, cardio)
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		day, created, err := c.SaveDay(cmd.Context(), input)
		if err != nil {
			var apiErr *gymclient.APIError
			if errors.As(err, &apiErr) && apiErr.Field != "" {
				return fmt.Errorf("rejected, %s: %s", apiErr.Field, apiErr.Message)
			}
			return err
		}

		if created {
			color.Green("created %s", day.Date)
		} else {
			color.Green("updated %s", day.Date)
		}
		printDay(day)
		return nil
	},
}

func printDay(day *gymclient.Day) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Println(bold(day.Date.String()))
	if strings.TrimSpace(day.Notes) != "" {
		fmt.Printf("  notes: %s\n", day.Notes)
	}
	if len(day.Entries) == 0 && len(day.CardioEntries) == 0 {
		fmt.Println("  rest day")
		return
	}

	for _, e := range day.Entries {
		fmt.Printf("  %s (%s)  %dx%d @ %s  = %s\n",
			cyan(e.ExerciseName), e.MuscleGroup, e.Sets, e.Reps, e.Weight.StringFixed(2), yellow(e.TotalWeight.StringFixed(2)))
	}
	for _, e := range day.CardioEntries {
		distance := "-"
		if e.Distance.Valid {
			distance = e.Distance.Decimal.StringFixed(2)
		}
		fmt.Printf("  %s  %d min  distance %s\n", cyan(e.CardioType.Name), e.Minutes, distance)
	}
	fmt.Printf("  total weight %s, reps %d, cardio %d min\n",
		yellow(day.DayTotalWeight.StringFixed(2)), day.DayTotalReps, day.DayTotalCardioMinutes)
}

func init() {
	saveDayCmd.Flags().StringVarP(&dayNotes, "notes", "n", "", "notes of the day")
	saveDayCmd.Flags().StringArrayVarP(&daySets, "set", "s", nil, "strength entry, repeatable")
	saveDayCmd.Flags().StringArrayVarP(&dayCardio, "cardio", "c", nil, "cardio entry, repeatable")

	dayCmd.AddCommand(saveDayCmd)
	rootCmd.AddCommand(dayCmd)
}
