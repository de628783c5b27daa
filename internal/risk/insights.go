package risk

// Advisory texts, in priority order.
const (
	InsightBloodPressure = "Blood pressure management should be prioritized"
	InsightCholesterol   = "Consider dietary changes to improve cholesterol levels"
	InsightWeight        = "Weight management can significantly reduce health risks"
	InsightSmoking       = "Smoking cessation is the most impactful health improvement"
	InsightActivity      = "Increasing physical activity can reduce multiple health risks"
)

// insightRules are evaluated against the profile itself, not the score
// deltas. The thresholds intentionally differ from the scoring tables.
var insightRules = []struct {
	match   func(HealthProfile) bool
	message string
}{
	{func(p HealthProfile) bool { return p.SystolicBP > 130 }, InsightBloodPressure},
	{func(p HealthProfile) bool { return p.Cholesterol > 200 }, InsightCholesterol},
	{func(p HealthProfile) bool { return p.BMI > 25 }, InsightWeight},
	{func(p HealthProfile) bool { return p.Smoking == SmokingCurrent }, InsightSmoking},
	{func(p HealthProfile) bool { return p.Exercise == ExerciseSedentary }, InsightActivity},
}

// Insights returns the advisories triggered by p in priority order. The
// result is never nil.
func Insights(p HealthProfile) []string {
	out := []string{}
	for _, rule := range insightRules {
		if rule.match(p) {
			out = append(out, rule.message)
		}
	}
	return out
}
