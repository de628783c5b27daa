package risk

// Vital names one of the five scored measurements.
type Vital string

const (
	VitalBloodPressure Vital = "bloodPressure"
	VitalCholesterol   Vital = "cholesterol"
	VitalHeartRate     Vital = "heartRate"
	VitalBloodSugar    Vital = "bloodSugar"
	VitalBMI           Vital = "bmi"
)

// Vitals returns the vitals in report order.
func Vitals() []Vital {
	return []Vital{VitalBloodPressure, VitalCholesterol, VitalHeartRate, VitalBloodSugar, VitalBMI}
}

// DisplayName returns a human-readable label for the vital.
func (v Vital) DisplayName() string {
	switch v {
	case VitalBloodPressure:
		return "Blood Pressure"
	case VitalCholesterol:
		return "Cholesterol"
	case VitalHeartRate:
		return "Heart Rate"
	case VitalBloodSugar:
		return "Blood Sugar"
	case VitalBMI:
		return "BMI"
	default:
		return string(v)
	}
}

// Unit returns the measurement unit, empty for BMI.
func (v Vital) Unit() string {
	switch v {
	case VitalBloodPressure:
		return "mmHg"
	case VitalCholesterol, VitalBloodSugar:
		return "mg/dL"
	case VitalHeartRate:
		return "bpm"
	default:
		return ""
	}
}

// Severity orders status labels from benign to concerning.
type Severity string

const (
	SeverityNormal  Severity = "normal"
	SeverityCaution Severity = "caution"
	SeverityAlert   Severity = "alert"
)

// Rank returns 0, 1 or 2 for normal, caution and alert.
func (s Severity) Rank() int {
	switch s {
	case SeverityCaution:
		return 1
	case SeverityAlert:
		return 2
	default:
		return 0
	}
}

// Status is the classification of a single vital.
type Status struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

var (
	StatusNormal        = Status{Label: "Normal", Severity: SeverityNormal}
	StatusElevated      = Status{Label: "Elevated", Severity: SeverityCaution}
	StatusBorderline    = Status{Label: "Borderline", Severity: SeverityCaution}
	StatusLow           = Status{Label: "Low", Severity: SeverityCaution}
	StatusPreDiabetic   = Status{Label: "Pre-diabetic", Severity: SeverityCaution}
	StatusOverweight    = Status{Label: "Overweight", Severity: SeverityCaution}
	StatusHigh          = Status{Label: "High", Severity: SeverityAlert}
	StatusDiabeticRange = Status{Label: "Diabetic Range", Severity: SeverityAlert}
	StatusObese         = Status{Label: "Obese", Severity: SeverityAlert}
)

// VitalAssessment is one classified measurement and its score contribution.
type VitalAssessment struct {
	Value  float64 `json:"value"`
	Status Status  `json:"status"`
	Delta  int     `json:"delta"`
}

// Each classifier walks its thresholds top to bottom and the first match
// wins. Comparisons are strict, so a value sitting on a threshold falls to
// the next branch.

func ClassifyBloodPressure(systolic float64) VitalAssessment {
	switch {
	case systolic > 140:
		return VitalAssessment{Value: systolic, Status: StatusHigh, Delta: 25}
	case systolic > 120:
		return VitalAssessment{Value: systolic, Status: StatusElevated, Delta: 15}
	default:
		return VitalAssessment{Value: systolic, Status: StatusNormal, Delta: 5}
	}
}

func ClassifyCholesterol(total float64) VitalAssessment {
	switch {
	case total > 240:
		return VitalAssessment{Value: total, Status: StatusHigh, Delta: 20}
	case total > 200:
		return VitalAssessment{Value: total, Status: StatusBorderline, Delta: 15}
	default:
		return VitalAssessment{Value: total, Status: StatusNormal, Delta: 5}
	}
}

func ClassifyHeartRate(bpm float64) VitalAssessment {
	switch {
	case bpm > 100:
		return VitalAssessment{Value: bpm, Status: StatusHigh, Delta: 15}
	case bpm < 60:
		return VitalAssessment{Value: bpm, Status: StatusLow, Delta: 10}
	default:
		return VitalAssessment{Value: bpm, Status: StatusNormal, Delta: 5}
	}
}

func ClassifyBloodSugar(fasting float64) VitalAssessment {
	switch {
	case fasting > 126:
		return VitalAssessment{Value: fasting, Status: StatusDiabeticRange, Delta: 25}
	case fasting > 100:
		return VitalAssessment{Value: fasting, Status: StatusPreDiabetic, Delta: 15}
	default:
		return VitalAssessment{Value: fasting, Status: StatusNormal, Delta: 5}
	}
}

func ClassifyBMI(bmi float64) VitalAssessment {
	switch {
	case bmi > 30:
		return VitalAssessment{Value: bmi, Status: StatusObese, Delta: 20}
	case bmi > 25:
		return VitalAssessment{Value: bmi, Status: StatusOverweight, Delta: 15}
	default:
		return VitalAssessment{Value: bmi, Status: StatusNormal, Delta: 5}
	}
}

// AgeDelta returns the bracketed age contribution: under 30, under 50, 50+.
func AgeDelta(age int) int {
	switch {
	case age < 30:
		return 10
	case age < 50:
		return 20
	default:
		return 30
	}
}

// ClassifyVitals classifies all five vitals of p.
func ClassifyVitals(p HealthProfile) map[Vital]VitalAssessment {
	return map[Vital]VitalAssessment{
		VitalBloodPressure: ClassifyBloodPressure(p.SystolicBP),
		VitalCholesterol:   ClassifyCholesterol(p.Cholesterol),
		VitalHeartRate:     ClassifyHeartRate(p.HeartRate),
		VitalBloodSugar:    ClassifyBloodSugar(p.BloodSugar),
		VitalBMI:           ClassifyBMI(p.BMI),
	}
}
