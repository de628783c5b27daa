package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyVitals_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		classify func(float64) VitalAssessment
		value    float64
		want     Status
		delta    int
	}{
		{"bp normal floor", ClassifyBloodPressure, 90, StatusNormal, 5},
		{"bp 120 stays normal", ClassifyBloodPressure, 120, StatusNormal, 5},
		{"bp just above 120", ClassifyBloodPressure, 120.5, StatusElevated, 15},
		{"bp 140 stays elevated", ClassifyBloodPressure, 140, StatusElevated, 15},
		{"bp 141 high", ClassifyBloodPressure, 141, StatusHigh, 25},

		{"chol 200 normal", ClassifyCholesterol, 200, StatusNormal, 5},
		{"chol 201 borderline", ClassifyCholesterol, 201, StatusBorderline, 15},
		{"chol 240 borderline", ClassifyCholesterol, 240, StatusBorderline, 15},
		{"chol 241 high", ClassifyCholesterol, 241, StatusHigh, 20},

		{"hr 50 low", ClassifyHeartRate, 50, StatusLow, 10},
		{"hr 59.9 low", ClassifyHeartRate, 59.9, StatusLow, 10},
		{"hr 60 normal", ClassifyHeartRate, 60, StatusNormal, 5},
		{"hr 100 normal", ClassifyHeartRate, 100, StatusNormal, 5},
		{"hr 101 high", ClassifyHeartRate, 101, StatusHigh, 15},

		{"sugar 100 normal", ClassifyBloodSugar, 100, StatusNormal, 5},
		{"sugar 101 pre-diabetic", ClassifyBloodSugar, 101, StatusPreDiabetic, 15},
		{"sugar 126 pre-diabetic", ClassifyBloodSugar, 126, StatusPreDiabetic, 15},
		{"sugar 127 diabetic", ClassifyBloodSugar, 127, StatusDiabeticRange, 25},

		{"bmi 25 normal", ClassifyBMI, 25, StatusNormal, 5},
		{"bmi 25.1 overweight", ClassifyBMI, 25.1, StatusOverweight, 15},
		{"bmi 30 overweight", ClassifyBMI, 30, StatusOverweight, 15},
		{"bmi 30.1 obese", ClassifyBMI, 30.1, StatusObese, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.classify(tt.value)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, tt.delta, got.Delta)
			assert.Equal(t, tt.value, got.Value)
		})
	}
}

func TestAgeDelta(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{18, 10},
		{29, 10},
		{30, 20},
		{49, 20},
		{50, 30},
		{80, 30},
	}
	for _, tt := range tests {
		if got := AgeDelta(tt.age); got != tt.want {
			t.Errorf("AgeDelta(%d) = %d, want %d", tt.age, got, tt.want)
		}
	}
}

func TestClassifyBloodPressure_Monotonic(t *testing.T) {
	prev := ClassifyBloodPressure(SystolicBPDomain.Min)
	for bp := SystolicBPDomain.Min; bp <= SystolicBPDomain.Max; bp += 0.5 {
		cur := ClassifyBloodPressure(bp)
		assert.GreaterOrEqual(t, cur.Delta, prev.Delta, "delta dropped at %v", bp)
		assert.GreaterOrEqual(t, cur.Status.Severity.Rank(), prev.Status.Severity.Rank(), "severity dropped at %v", bp)
		prev = cur
	}
}

func TestClassifyVitals_CoversAllVitals(t *testing.T) {
	got := ClassifyVitals(HealthProfile{SystolicBP: 150, Cholesterol: 180, HeartRate: 55, BloodSugar: 130, BMI: 27})
	assert.Len(t, got, len(Vitals()))
	assert.Equal(t, StatusHigh, got[VitalBloodPressure].Status)
	assert.Equal(t, StatusNormal, got[VitalCholesterol].Status)
	assert.Equal(t, StatusLow, got[VitalHeartRate].Status)
	assert.Equal(t, StatusDiabeticRange, got[VitalBloodSugar].Status)
	assert.Equal(t, StatusOverweight, got[VitalBMI].Status)
}

func TestVital_DisplayAndUnit(t *testing.T) {
	assert.Equal(t, "Blood Pressure", VitalBloodPressure.DisplayName())
	assert.Equal(t, "mmHg", VitalBloodPressure.Unit())
	assert.Equal(t, "bpm", VitalHeartRate.Unit())
	assert.Equal(t, "", VitalBMI.Unit())
}
