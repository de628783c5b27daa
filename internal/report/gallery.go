package report

import (
	"sort"

	"github.com/Skufu/vitalrisk/internal/risk"
)

// Example is a canned profile offered to users who want to try the
// assessment without entering their own numbers.
type Example struct {
	Name    string             `json:"name"`
	Title   string             `json:"title"`
	Profile risk.HealthProfile `json:"profile"`
	// SourceLabel is the risk label the example was originally published
	// with. It predates the current scoring tables and does not always match
	// the computed tier; the computed tier is authoritative.
	SourceLabel string `json:"sourceLabel"`
}

var gallery = []Example{
	{
		Name:  "healthy-adult",
		Title: "Active 35 year old, all vitals normal",
		Profile: risk.HealthProfile{
			Age: 35, SystolicBP: 115, Cholesterol: 180, HeartRate: 68, BloodSugar: 92, BMI: 22,
			Exercise: risk.ExerciseActive, Smoking: risk.SmokingNever, FamilyHistory: false,
		},
		SourceLabel: "Low risk",
	},
	{
		Name:  "at-risk-senior",
		Title: "Sedentary 52 year old former smoker with family history",
		Profile: risk.HealthProfile{
			Age: 52, SystolicBP: 145, Cholesterol: 240, HeartRate: 85, BloodSugar: 110, BMI: 28,
			Exercise: risk.ExerciseSedentary, Smoking: risk.SmokingFormer, FamilyHistory: true,
		},
		SourceLabel: "High risk",
	},
	{
		Name:  "borderline-adult",
		Title: "45 year old with elevated pressure and borderline cholesterol",
		Profile: risk.HealthProfile{
			Age: 45, SystolicBP: 125, Cholesterol: 210, HeartRate: 75, BloodSugar: 98, BMI: 26,
			Exercise: risk.ExerciseModerate, Smoking: risk.SmokingNever, FamilyHistory: false,
		},
		SourceLabel: "Moderate risk",
	},
}

// Examples returns the gallery in display order.
func Examples() []Example {
	return append([]Example(nil), gallery...)
}

// LookupExample finds an example by name.
func LookupExample(name string) (Example, bool) {
	for _, ex := range gallery {
		if ex.Name == name {
			return ex, true
		}
	}
	return Example{}, false
}

// ExampleNames returns the example names sorted alphabetically.
func ExampleNames() []string {
	names := make([]string, 0, len(gallery))
	for _, ex := range gallery {
		names = append(names, ex.Name)
	}
	sort.Strings(names)
	return names
}
