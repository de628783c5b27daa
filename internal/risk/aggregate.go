package risk

import "fmt"

// MaxScore is the ceiling applied to the raw score.
const MaxScore = 100

// Tier is the overall risk category.
type Tier int

const (
	TierLow Tier = iota + 1
	TierModerate
	TierHigh
)

// AllTiers returns the tiers from lowest to highest.
func AllTiers() []Tier {
	return []Tier{TierLow, TierModerate, TierHigh}
}

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "Low"
	case TierModerate:
		return "Moderate"
	case TierHigh:
		return "High"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	if t < TierLow || t > TierHigh {
		return nil, fmt.Errorf("invalid tier %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	for _, candidate := range AllTiers() {
		if enumKey(candidate.String()) == enumKey(string(text)) {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("invalid tier %q", string(text))
}

// TierProfile is the fixed guidance attached to a tier.
type TierProfile struct {
	MinScore            int
	ProbabilityRange    string
	RecommendedAction   string
	Recommendations     []string
	PotentialConditions string
}

// tierTable is ordered from the highest threshold down.
var tierTable = []struct {
	tier    Tier
	profile TierProfile
}{
	{TierHigh, TierProfile{
		MinScore:          70,
		ProbabilityRange:  "70-100%",
		RecommendedAction: "Consult healthcare provider immediately",
		Recommendations: []string{
			"Schedule doctor appointment ASAP",
			"Consider cardiovascular screening",
			"Implement lifestyle changes",
			"Monitor symptoms regularly",
		},
		PotentialConditions: "Potential: Heart Disease, Diabetes, Hypertension",
	}},
	{TierModerate, TierProfile{
		MinScore:          40,
		ProbabilityRange:  "40-69%",
		RecommendedAction: "Schedule preventive check-up",
		Recommendations: []string{
			"Annual health screening",
			"Improve diet and exercise",
			"Reduce stress levels",
			"Regular blood pressure monitoring",
		},
		PotentialConditions: "Watch for: Pre-diabetes, High Cholesterol, Weight issues",
	}},
	{TierLow, TierProfile{
		MinScore:          0,
		ProbabilityRange:  "0-39%",
		RecommendedAction: "Maintain healthy lifestyle",
		Recommendations: []string{
			"Continue current habits",
			"Annual preventive check-ups",
			"Balanced nutrition",
			"Regular physical activity",
		},
		PotentialConditions: "Generally healthy - maintain prevention",
	}},
}

// Profile returns the guidance for t. The Recommendations slice is a copy.
func (t Tier) Profile() TierProfile {
	for _, row := range tierTable {
		if row.tier == t {
			p := row.profile
			p.Recommendations = append([]string(nil), row.profile.Recommendations...)
			return p
		}
	}
	return TierProfile{}
}

// Aggregate sums the age delta, every vital delta and the lifestyle deltas.
func Aggregate(ageDelta int, vitals map[Vital]VitalAssessment, lifestyle LifestyleScore) int {
	total := ageDelta + lifestyle.Total()
	for _, v := range Vitals() {
		total += vitals[v].Delta
	}
	return total
}

// Clamp caps a raw score at MaxScore. Every delta is non-negative, so no
// lower bound is applied.
func Clamp(raw int) int {
	if raw > MaxScore {
		return MaxScore
	}
	return raw
}

// TierFor maps a clamped score to its tier. Each band includes its lower edge.
func TierFor(score int) Tier {
	for _, row := range tierTable {
		if score >= row.profile.MinScore {
			return row.tier
		}
	}
	return TierLow
}
