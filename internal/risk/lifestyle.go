package risk

// LifestyleScore breaks the lifestyle contribution down by attribute.
type LifestyleScore struct {
	Exercise      int `json:"exercise"`
	Smoking       int `json:"smoking"`
	FamilyHistory int `json:"familyHistory"`
}

// Total is the sum of all lifestyle deltas.
func (l LifestyleScore) Total() int {
	return l.Exercise + l.Smoking + l.FamilyHistory
}

func ExerciseDelta(e ExerciseLevel) int {
	switch e {
	case ExerciseSedentary:
		return 15
	case ExerciseLight:
		return 10
	case ExerciseModerate:
		return 5
	case ExerciseActive:
		return 0
	}
	panic("risk: unvalidated exercise level " + e.String())
}

func SmokingDelta(s SmokingStatus) int {
	switch s {
	case SmokingCurrent:
		return 25
	case SmokingFormer:
		return 10
	case SmokingNever:
		return 0
	}
	panic("risk: unvalidated smoking status " + s.String())
}

func FamilyHistoryDelta(family bool) int {
	if family {
		return 15
	}
	return 0
}

// ScoreLifestyle looks up all three lifestyle attributes of p.
func ScoreLifestyle(p HealthProfile) LifestyleScore {
	return LifestyleScore{
		Exercise:      ExerciseDelta(p.Exercise),
		Smoking:       SmokingDelta(p.Smoking),
		FamilyHistory: FamilyHistoryDelta(p.FamilyHistory),
	}
}
