package dietplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samuhlo/diet-planner-cli/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the local user profile",
}

var (
	profileGender      string
	profileAge         int
	profileHeight      float64
	profileWeight      float64
	profileSteps       int
	profileStrength    bool
	profileDays        int
	profileBMROverride int
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ProfileInput{
			Gender:           profileGender,
			Age:              profileAge,
			HeightCM:         profileHeight,
			WeightKG:         profileWeight,
			DailySteps:       profileSteps,
			StrengthTraining: profileStrength,
			TrainingDays:     profileDays,
		}
		if cmd.Flags().Changed("bmr-override") {
			in.BMROverride = &profileBMROverride
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SaveProfile(sqldb, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile configured")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\nAge: %d\nHeight: %.1f cm\nWeight: %.1f kg\nSteps: %d/day\n", p.Gender, p.Age, p.HeightCM, p.WeightKG, p.DailySteps)
			if p.StrengthTraining {
				fmt.Fprintf(cmd.OutOrStdout(), "Strength training: %d days/week\n", p.TrainingDays)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Strength training: no")
			}
			if p.BMROverride != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "BMR override: %d kcal\n", *p.BMROverride)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: male, female or other")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().IntVar(&profileSteps, "steps", 0, "Average daily step count")
	profileSetCmd.Flags().BoolVar(&profileStrength, "strength", false, "Does strength training")
	profileSetCmd.Flags().IntVar(&profileDays, "training-days", 0, "Strength training days per week")
	profileSetCmd.Flags().IntVar(&profileBMROverride, "bmr-override", 0, "Override the computed BMR (kcal)")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("weight")
}
