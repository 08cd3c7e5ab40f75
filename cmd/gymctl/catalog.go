package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		exercises, err := c.Exercises(cmd.Context())
		if err != nil {
			return err
		}
		if len(exercises) == 0 {
			fmt.Println("no exercises yet")
			return nil
		}
		for _, ex := range exercises {
			fmt.Printf("%4d  %s  %s\n", ex.ID, color.CyanString(ex.Name), color.MagentaString(ex.MuscleGroup))
		}
		return nil
	},
}

var addExerciseCmd = &cobra.Command{
	Use:   "add [name] [muscle-group]",
	Short: "Create an exercise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		ex, err := c.CreateExercise(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		color.Green("created exercise %d: %s (%s)", ex.ID, ex.Name, ex.MuscleGroup)
		return nil
	},
}

var cardioTypesCmd = &cobra.Command{
	Use:   "cardio",
	Short: "List cardio types",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		cardioTypes, err := c.CardioTypes(cmd.Context())
		if err != nil {
			return err
		}
		if len(cardioTypes) == 0 {
			fmt.Println("no cardio types yet")
			return nil
		}
		for _, ct := range cardioTypes {
			fmt.Printf("%4d  %s\n", ct.ID, color.CyanString(ct.Name))
		}
		return nil
	},
}

var addCardioTypeCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a cardio type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		ct, err := c.CreateCardioType(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		color.Green("created cardio type %d: %s", ct.ID, ct.Name)
		return nil
	},
}

func init() {
	exercisesCmd.AddCommand(addExerciseCmd)
	cardioTypesCmd.AddCommand(addCardioTypeCmd)
	rootCmd.AddCommand(exercisesCmd, cardioTypesCmd)
}
