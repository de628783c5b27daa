package risk

import (
	"fmt"
	"strings"
)

// ExerciseLevel is the self-reported amount of weekly physical activity.
type ExerciseLevel int

const (
	ExerciseSedentary ExerciseLevel = iota + 1
	ExerciseLight
	ExerciseModerate
	ExerciseActive
)

// AllExerciseLevels returns the exercise levels from least to most active.
func AllExerciseLevels() []ExerciseLevel {
	return []ExerciseLevel{ExerciseSedentary, ExerciseLight, ExerciseModerate, ExerciseActive}
}

func (e ExerciseLevel) String() string {
	switch e {
	case ExerciseSedentary:
		return "Sedentary"
	case ExerciseLight:
		return "Light"
	case ExerciseModerate:
		return "Moderate"
	case ExerciseActive:
		return "Active"
	default:
		return fmt.Sprintf("ExerciseLevel(%d)", int(e))
	}
}

// Valid reports whether e is one of the declared levels.
func (e ExerciseLevel) Valid() bool {
	return e >= ExerciseSedentary && e <= ExerciseActive
}

func (e ExerciseLevel) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, newUnknownEnum(FieldExercise, e.String())
	}
	return []byte(e.String()), nil
}

func (e *ExerciseLevel) UnmarshalText(text []byte) error {
	v, err := ParseExerciseLevel(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseExerciseLevel accepts the level name, case-insensitively.
func ParseExerciseLevel(s string) (ExerciseLevel, error) {
	key := enumKey(s)
	for _, e := range AllExerciseLevels() {
		if enumKey(e.String()) == key {
			return e, nil
		}
	}
	return 0, newUnknownEnum(FieldExercise, s)
}

// SmokingStatus is the patient's tobacco history.
type SmokingStatus int

const (
	SmokingNever SmokingStatus = iota + 1
	SmokingFormer
	SmokingCurrent
)

// AllSmokingStatuses returns the statuses in display order.
func AllSmokingStatuses() []SmokingStatus {
	return []SmokingStatus{SmokingNever, SmokingFormer, SmokingCurrent}
}

func (s SmokingStatus) String() string {
	switch s {
	case SmokingNever:
		return "NeverSmoked"
	case SmokingFormer:
		return "FormerSmoker"
	case SmokingCurrent:
		return "CurrentSmoker"
	default:
		return fmt.Sprintf("SmokingStatus(%d)", int(s))
	}
}

// DisplayName returns the label shown on input forms, e.g. "Never Smoked".
func (s SmokingStatus) DisplayName() string {
	switch s {
	case SmokingNever:
		return "Never Smoked"
	case SmokingFormer:
		return "Former Smoker"
	case SmokingCurrent:
		return "Current Smoker"
	default:
		return s.String()
	}
}

// Valid reports whether s is one of the declared statuses.
func (s SmokingStatus) Valid() bool {
	return s >= SmokingNever && s <= SmokingCurrent
}

func (s SmokingStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, newUnknownEnum(FieldSmoking, s.String())
	}
	return []byte(s.String()), nil
}

func (s *SmokingStatus) UnmarshalText(text []byte) error {
	v, err := ParseSmokingStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSmokingStatus accepts either the identifier ("FormerSmoker") or the
// display label ("Former Smoker"), case-insensitively.
func ParseSmokingStatus(s string) (SmokingStatus, error) {
	key := enumKey(s)
	for _, st := range AllSmokingStatuses() {
		if enumKey(st.String()) == key {
			return st, nil
		}
	}
	return 0, newUnknownEnum(FieldSmoking, s)
}

// ParseFamilyHistory maps the Yes/No answer to a bool. "true" and "false"
// are accepted for programmatic callers.
func ParseFamilyHistory(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true":
		return true, nil
	case "no", "false":
		return false, nil
	default:
		return false, newUnknownEnum(FieldFamilyHistory, s)
	}
}

// YesNo renders a family history flag the way input forms ask for it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func enumKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// HealthProfile is a validated set of measurements. It is passed by value and
// never modified by the engine.
type HealthProfile struct {
	Age           int           `json:"age"`
	SystolicBP    float64       `json:"systolicBP"`
	Cholesterol   float64       `json:"cholesterol"`
	HeartRate     float64       `json:"heartRate"`
	BloodSugar    float64       `json:"bloodSugar"`
	BMI           float64       `json:"bmi"`
	Exercise      ExerciseLevel `json:"exerciseLevel"`
	Smoking       SmokingStatus `json:"smokingStatus"`
	FamilyHistory bool          `json:"familyHistory"`
}

// RawProfile is an unvalidated profile as decoded from a request or flags.
// A nil field means the caller did not supply it.
type RawProfile struct {
	Age           *int     `json:"age"`
	SystolicBP    *float64 `json:"systolicBP"`
	Cholesterol   *float64 `json:"cholesterol"`
	HeartRate     *float64 `json:"heartRate"`
	BloodSugar    *float64 `json:"bloodSugar"`
	BMI           *float64 `json:"bmi"`
	Exercise      *string  `json:"exerciseLevel"`
	Smoking       *string  `json:"smokingStatus"`
	FamilyHistory *string  `json:"familyHistory"`
}

// Raw converts a profile back into its unvalidated form, using display
// labels for the categorical fields.
func (p HealthProfile) Raw() RawProfile {
	age := p.Age
	bp, chol, hr, sugar, bmi := p.SystolicBP, p.Cholesterol, p.HeartRate, p.BloodSugar, p.BMI
	exercise := p.Exercise.String()
	smoking := p.Smoking.DisplayName()
	family := YesNo(p.FamilyHistory)
	return RawProfile{
		Age:           &age,
		SystolicBP:    &bp,
		Cholesterol:   &chol,
		HeartRate:     &hr,
		BloodSugar:    &sugar,
		BMI:           &bmi,
		Exercise:      &exercise,
		Smoking:       &smoking,
		FamilyHistory: &family,
	}
}
