package risk

// Domain is an inclusive numeric range.
type Domain struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the domain. NaN is never contained.
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// Accepted input domains. These mirror the input form ranges but are enforced
// here regardless of what the caller already checked.
var (
	AgeDomain         = Domain{Min: 18, Max: 80}
	SystolicBPDomain  = Domain{Min: 90, Max: 180}
	CholesterolDomain = Domain{Min: 150, Max: 300}
	HeartRateDomain   = Domain{Min: 50, Max: 120}
	BloodSugarDomain  = Domain{Min: 70, Max: 200}
	BMIDomain         = Domain{Min: 18, Max: 40}
)

// Validate checks every field of p against its domain and returns the first
// failure in field order.
func (p HealthProfile) Validate() error {
	checks := []struct {
		field  string
		value  float64
		domain Domain
	}{
		{FieldAge, float64(p.Age), AgeDomain},
		{FieldSystolicBP, p.SystolicBP, SystolicBPDomain},
		{FieldCholesterol, p.Cholesterol, CholesterolDomain},
		{FieldHeartRate, p.HeartRate, HeartRateDomain},
		{FieldBloodSugar, p.BloodSugar, BloodSugarDomain},
		{FieldBMI, p.BMI, BMIDomain},
	}
	for _, c := range checks {
		if !c.domain.Contains(c.value) {
			return newOutOfRange(c.field, c.value, c.domain)
		}
	}
	if !p.Exercise.Valid() {
		return newUnknownEnum(FieldExercise, p.Exercise.String())
	}
	if !p.Smoking.Valid() {
		return newUnknownEnum(FieldSmoking, p.Smoking.String())
	}
	return nil
}

// Validate turns a raw profile into a HealthProfile. Values are copied as
// given; nothing is rounded or clamped.
func Validate(raw RawProfile) (HealthProfile, error) {
	var p HealthProfile

	if raw.Age == nil {
		return HealthProfile{}, newMissing(FieldAge)
	}
	if age := float64(*raw.Age); !AgeDomain.Contains(age) {
		return HealthProfile{}, newOutOfRange(FieldAge, age, AgeDomain)
	}
	p.Age = *raw.Age

	numbers := []struct {
		field  string
		domain Domain
		in     *float64
		out    *float64
	}{
		{FieldSystolicBP, SystolicBPDomain, raw.SystolicBP, &p.SystolicBP},
		{FieldCholesterol, CholesterolDomain, raw.Cholesterol, &p.Cholesterol},
		{FieldHeartRate, HeartRateDomain, raw.HeartRate, &p.HeartRate},
		{FieldBloodSugar, BloodSugarDomain, raw.BloodSugar, &p.BloodSugar},
		{FieldBMI, BMIDomain, raw.BMI, &p.BMI},
	}
	for _, n := range numbers {
		if n.in == nil {
			return HealthProfile{}, newMissing(n.field)
		}
		if !n.domain.Contains(*n.in) {
			return HealthProfile{}, newOutOfRange(n.field, *n.in, n.domain)
		}
		*n.out = *n.in
	}

	if raw.Exercise == nil {
		return HealthProfile{}, newMissing(FieldExercise)
	}
	exercise, err := ParseExerciseLevel(*raw.Exercise)
	if err != nil {
		return HealthProfile{}, err
	}
	p.Exercise = exercise

	if raw.Smoking == nil {
		return HealthProfile{}, newMissing(FieldSmoking)
	}
	smoking, err := ParseSmokingStatus(*raw.Smoking)
	if err != nil {
		return HealthProfile{}, err
	}
	p.Smoking = smoking

	if raw.FamilyHistory == nil {
		return HealthProfile{}, newMissing(FieldFamilyHistory)
	}
	family, err := ParseFamilyHistory(*raw.FamilyHistory)
	if err != nil {
		return HealthProfile{}, err
	}
	p.FamilyHistory = family

	return p, nil
}
