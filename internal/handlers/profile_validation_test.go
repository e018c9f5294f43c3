package handlers

import (
	"testing"

	"github.com/vivekd2000/Be-fit/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }

func validUpdateRequest() updateProfileRequest {
	return updateProfileRequest{
		HealthMetrics: models.HealthMetrics{
			Height:        floatPtr(180),
			Weight:        floatPtr(78),
			Age:           intPtr(29),
			Gender:        strPtr("Male"),
			Cholesterol:   floatPtr(190),
			BloodPressure: strPtr("120/80"),
			BloodSugar:    floatPtr(95),
		},
		FitnessProfile: models.FitnessProfile{
			ExperienceLevel: strPtr("Beginner"),
			FitnessGoal:     strPtr("Muscle Gain"),
		},
		Consent: boolPtr(true),
	}
}

func TestValidateUserProfileAcceptsValidRequest(t *testing.T) {
	errs := validateUserProfile(validUpdateRequest())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateUserProfileFieldRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*updateProfileRequest)
		field  string
	}{
		{"height missing", func(r *updateProfileRequest) { r.HealthMetrics.Height = nil }, "height"},
		{"height too low", func(r *updateProfileRequest) { r.HealthMetrics.Height = floatPtr(99) }, "height"},
		{"height too high", func(r *updateProfileRequest) { r.HealthMetrics.Height = floatPtr(251) }, "height"},
		{"weight missing", func(r *updateProfileRequest) { r.HealthMetrics.Weight = nil }, "weight"},
		{"weight too low", func(r *updateProfileRequest) { r.HealthMetrics.Weight = floatPtr(29) }, "weight"},
		{"age missing", func(r *updateProfileRequest) { r.HealthMetrics.Age = nil }, "age"},
		{"age too high", func(r *updateProfileRequest) { r.HealthMetrics.Age = intPtr(101) }, "age"},
		{"gender missing", func(r *updateProfileRequest) { r.HealthMetrics.Gender = nil }, "gender"},
		{"gender unknown", func(r *updateProfileRequest) { r.HealthMetrics.Gender = strPtr("unknown") }, "gender"},
		{"cholesterol missing", func(r *updateProfileRequest) { r.HealthMetrics.Cholesterol = nil }, "cholesterol"},
		{"cholesterol too high", func(r *updateProfileRequest) { r.HealthMetrics.Cholesterol = floatPtr(401) }, "cholesterol"},
		{"blood pressure missing", func(r *updateProfileRequest) { r.HealthMetrics.BloodPressure = nil }, "bloodPressure"},
		{"blood pressure malformed", func(r *updateProfileRequest) { r.HealthMetrics.BloodPressure = strPtr("120-80") }, "bloodPressure"},
		{"blood pressure single digit", func(r *updateProfileRequest) { r.HealthMetrics.BloodPressure = strPtr("9/80") }, "bloodPressure"},
		{"blood sugar missing", func(r *updateProfileRequest) { r.HealthMetrics.BloodSugar = nil }, "bloodSugar"},
		{"blood sugar too low", func(r *updateProfileRequest) { r.HealthMetrics.BloodSugar = floatPtr(49) }, "bloodSugar"},
		{"experience missing", func(r *updateProfileRequest) { r.FitnessProfile.ExperienceLevel = nil }, "experienceLevel"},
		{"experience unknown", func(r *updateProfileRequest) { r.FitnessProfile.ExperienceLevel = strPtr("Expert") }, "experienceLevel"},
		{"goal missing", func(r *updateProfileRequest) { r.FitnessProfile.FitnessGoal = nil }, "fitnessGoal"},
		{"goal unknown", func(r *updateProfileRequest) { r.FitnessProfile.FitnessGoal = strPtr("Bulking") }, "fitnessGoal"},
		{"consent missing", func(r *updateProfileRequest) { r.Consent = nil }, "consent"},
		{"consent false", func(r *updateProfileRequest) { r.Consent = boolPtr(false) }, "consent"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validUpdateRequest()
			tc.mutate(&req)
			errs := validateUserProfile(req)
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if _, ok := errs[tc.field]; !ok {
				t.Fatalf("expected error on %q, got %v", tc.field, errs)
			}
		})
	}
}

func TestValidateUserProfileReportsEveryFailingField(t *testing.T) {
	errs := validateUserProfile(updateProfileRequest{})
	if len(errs) != 10 {
		t.Fatalf("expected all ten fields to fail on an empty request, got %d: %v", len(errs), errs)
	}
}

func TestValidateUserProfileBloodPressureBoundaries(t *testing.T) {
	req := validUpdateRequest()
	req.HealthMetrics.BloodPressure = strPtr("999/999")
	if errs := validateUserProfile(req); len(errs) != 0 {
		t.Fatalf("expected three-digit readings to pass, got %v", errs)
	}

	req.HealthMetrics.BloodPressure = strPtr("1200/80")
	if errs := validateUserProfile(req); len(errs) != 1 {
		t.Fatalf("expected four-digit systolic to fail, got %v", errs)
	}
}
