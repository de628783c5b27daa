// Package risk scores a health profile into a bounded risk score, a tier and
// a set of advisory findings.
//
// Every exported function is pure: results depend only on the arguments and
// the package's read-only rule tables, so callers may invoke them
// concurrently without coordination. Assess and AssessRaw are the entry
// points; the individual classifiers are exported for reuse and testing.
package risk

// RiskResult is the outcome of a single assessment.
type RiskResult struct {
	RawScore            int                       `json:"rawScore"`
	Score               int                       `json:"score"`
	Tier                Tier                      `json:"tier"`
	ProbabilityRange    string                    `json:"probabilityRange"`
	RecommendedAction   string                    `json:"recommendedAction"`
	Recommendations     []string                  `json:"recommendations"`
	PotentialConditions string                    `json:"potentialConditions"`
	Insights            []string                  `json:"insights"`
	Vitals              map[Vital]VitalAssessment `json:"vitals"`
	AgeDelta            int                       `json:"ageDelta"`
	Lifestyle           LifestyleScore            `json:"lifestyle"`
}

// Assess validates p and scores it. Invalid profiles return a
// *ValidationError and no result.
func Assess(p HealthProfile) (RiskResult, error) {
	if err := p.Validate(); err != nil {
		return RiskResult{}, err
	}
	return compose(p), nil
}

// AssessRaw validates an unvalidated profile and scores it.
func AssessRaw(raw RawProfile) (HealthProfile, RiskResult, error) {
	p, err := Validate(raw)
	if err != nil {
		return HealthProfile{}, RiskResult{}, err
	}
	return p, compose(p), nil
}

func compose(p HealthProfile) RiskResult {
	vitals := ClassifyVitals(p)
	lifestyle := ScoreLifestyle(p)
	ageDelta := AgeDelta(p.Age)

	raw := Aggregate(ageDelta, vitals, lifestyle)
	score := Clamp(raw)
	tier := TierFor(score)
	guidance := tier.Profile()

	return RiskResult{
		RawScore:            raw,
		Score:               score,
		Tier:                tier,
		ProbabilityRange:    guidance.ProbabilityRange,
		RecommendedAction:   guidance.RecommendedAction,
		Recommendations:     guidance.Recommendations,
		PotentialConditions: guidance.PotentialConditions,
		Insights:            Insights(p),
		Vitals:              vitals,
		AgeDelta:            ageDelta,
		Lifestyle:           lifestyle,
	}
}
