package main

import (
	"github.com/spf13/cobra"

	"github.com/Skufu/vitalrisk/internal/risk"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Assess a profile given on the command line",
		Example: `  assess profile --age 45 --bp 125 --cholesterol 210 --heart-rate 75 \
    --blood-sugar 98 --bmi 26 --exercise Moderate --smoking "Never Smoked" --family-history No`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := rawFromFlags(cmd)
			if err != nil {
				return err
			}
			p, result, err := risk.AssessRaw(raw)
			if err != nil {
				return err
			}
			return writeResult(cmd, p, result)
		},
	}

	f := cmd.Flags()
	f.Int("age", 0, "Age in years (18-80)")
	f.Float64("bp", 0, "Systolic blood pressure in mmHg (90-180)")
	f.Float64("cholesterol", 0, "Total cholesterol in mg/dL (150-300)")
	f.Float64("heart-rate", 0, "Resting heart rate in bpm (50-120)")
	f.Float64("blood-sugar", 0, "Fasting blood sugar in mg/dL (70-200)")
	f.Float64("bmi", 0, "Body mass index (18-40)")
	f.String("exercise", "", "Sedentary, Light, Moderate or Active")
	f.String("smoking", "", `"Never Smoked", "Former Smoker" or "Current Smoker"`)
	f.String("family-history", "", "Family history of heart disease: Yes or No")
	return cmd
}

// rawFromFlags copies only the flags the user set, so an omitted flag is
// reported as a missing field rather than scored as zero.
func rawFromFlags(cmd *cobra.Command) (risk.RawProfile, error) {
	f := cmd.Flags()
	var raw risk.RawProfile

	if f.Changed("age") {
		v, err := f.GetInt("age")
		if err != nil {
			return raw, err
		}
		raw.Age = &v
	}

	floats := []struct {
		flag string
		dst  **float64
	}{
		{"bp", &raw.SystolicBP},
		{"cholesterol", &raw.Cholesterol},
		{"heart-rate", &raw.HeartRate},
		{"blood-sugar", &raw.BloodSugar},
		{"bmi", &raw.BMI},
	}
	for _, fl := range floats {
		if !f.Changed(fl.flag) {
			continue
		}
		v, err := f.GetFloat64(fl.flag)
		if err != nil {
			return raw, err
		}
		*fl.dst = &v
	}

	strs := []struct {
		flag string
		dst  **string
	}{
		{"exercise", &raw.Exercise},
		{"smoking", &raw.Smoking},
		{"family-history", &raw.FamilyHistory},
	}
	for _, fl := range strs {
		if !f.Changed(fl.flag) {
			continue
		}
		v, err := f.GetString(fl.flag)
		if err != nil {
			return raw, err
		}
		*fl.dst = &v
	}

	return raw, nil
}
