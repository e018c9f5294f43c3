package handlers

import (
	"regexp"
)

var bloodPressurePattern = regexp.MustCompile(`^\d{2,3}/\d{2,3}$`)

var allowedGenders = map[string]struct{}{
	"Male":   {},
	"Female": {},
	"Other":  {},
}

var allowedExperienceLevels = map[string]struct{}{
	"Beginner":     {},
	"Intermediate": {},
	"Advanced":     {},
}

var allowedFitnessGoals = map[string]struct{}{
	"Muscle Gain":      {},
	"Fat Loss":         {},
	"Endurance":        {},
	"General Wellness": {},
}

// validateUserProfile checks every field independently and returns one message
// per failing field. An empty map means the profile is fully valid; the caller
// rejects the whole update if anything is present.
func validateUserProfile(req updateProfileRequest) map[string]string {
	errs := make(map[string]string)

	if h := req.HealthMetrics.Height; h == nil || *h < 100 || *h > 250 {
		errs["height"] = "Height should be between 100 and 250 cm"
	}
	if w := req.HealthMetrics.Weight; w == nil || *w < 30 || *w > 250 {
		errs["weight"] = "Weight should be between 30 and 250 kg"
	}
	if a := req.HealthMetrics.Age; a == nil || *a < 10 || *a > 100 {
		errs["age"] = "Age should be between 10 and 100"
	}
	if g := req.HealthMetrics.Gender; g == nil || !inSet(allowedGenders, *g) {
		errs["gender"] = "Gender is required"
	}
	if ch := req.HealthMetrics.Cholesterol; ch == nil || *ch < 50 || *ch > 400 {
		errs["cholesterol"] = "Cholesterol should be between 50 and 400 mg/dL"
	}
	if bp := req.HealthMetrics.BloodPressure; bp == nil || !bloodPressurePattern.MatchString(*bp) {
		errs["bloodPressure"] = "Blood pressure must be in format systolic/diastolic, e.g. 120/80"
	}
	if bs := req.HealthMetrics.BloodSugar; bs == nil || *bs < 50 || *bs > 400 {
		errs["bloodSugar"] = "Blood sugar should be between 50 and 400 mg/dL"
	}
	if lvl := req.FitnessProfile.ExperienceLevel; lvl == nil || !inSet(allowedExperienceLevels, *lvl) {
		errs["experienceLevel"] = "Experience level is required"
	}
	if goal := req.FitnessProfile.FitnessGoal; goal == nil || !inSet(allowedFitnessGoals, *goal) {
		errs["fitnessGoal"] = "Fitness goal is required"
	}
	if req.Consent == nil || !*req.Consent {
		errs["consent"] = "User consent is required"
	}

	return errs
}

func inSet(set map[string]struct{}, value string) bool {
	_, ok := set[value]
	return ok
}
