package models

import "time"

// HealthMetrics holds the measurements the profile form collects. Pointers
// distinguish "not provided" from a zero value; the validator rejects missing
// required fields before anything is persisted.
type HealthMetrics struct {
	Height            *float64 `json:"height,omitempty"`
	Weight            *float64 `json:"weight,omitempty"`
	Age               *int     `json:"age,omitempty"`
	Gender            *string  `json:"gender,omitempty"`
	Cholesterol       *float64 `json:"cholesterol,omitempty"`
	BloodPressure     *string  `json:"bloodPressure,omitempty"`
	BloodSugar        *float64 `json:"bloodSugar,omitempty"`
	MedicalConditions []string `json:"medicalConditions,omitempty"`
}

type FitnessProfile struct {
	ExperienceLevel *string `json:"experienceLevel,omitempty"`
	FitnessGoal     *string `json:"fitnessGoal,omitempty"`
}

type DietaryPreferences struct {
	DietaryPattern *string  `json:"dietaryPattern,omitempty"`
	Allergies      []string `json:"allergies,omitempty"`
	Restrictions   []string `json:"restrictions,omitempty"`
}

type SupplementPreferences struct {
	PreferredForm             *string  `json:"preferredForm,omitempty"`
	PreferredBrands           []string `json:"preferredBrands,omitempty"`
	IngredientTransparency    bool     `json:"ingredientTransparency"`
	Certifications            []string `json:"certifications,omitempty"`
	AvoidProprietaryBlends    bool     `json:"avoidProprietaryBlends"`
	ClinicallySupportedDosage bool     `json:"clinicallySupportedDosage"`
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// OtherPreferences carries the remaining recommendation knobs.
// AllowInternational is stored but no filter predicate reads it yet.
type OtherPreferences struct {
	PriceRange             *PriceRange `json:"priceRange,omitempty"`
	MinCustomerRating      *float64    `json:"minCustomerRating,omitempty"`
	AllowInternational     bool        `json:"allowInternational"`
	AllowProprietaryBlends bool        `json:"allowProprietaryBlends"`
}

// SuggestionEntry is one appended record of a recommendations request.
type SuggestionEntry struct {
	Supplements []string  `json:"supplements"`
	SuggestedAt time.Time `json:"suggestedAt"`
}

// History is an append-only log; nothing in the recommendation logic reads it.
type History struct {
	SupplementSuggestions []SuggestionEntry `json:"supplementSuggestions,omitempty"`
	Interactions          []map[string]any  `json:"interactions,omitempty"`
}

// User is the single persisted entity, one row per registered email. The OTP
// hash lives inline on the row and is set/cleared across login cycles; both
// hashes are excluded from every JSON response.
type User struct {
	ID                    int64                 `json:"id"`
	Email                 string                `json:"email"`
	OTPHash               *string               `json:"-"`
	PasswordHash          *string               `json:"-"`
	HealthMetrics         HealthMetrics         `json:"healthMetrics"`
	FitnessProfile        FitnessProfile        `json:"fitnessProfile"`
	DietaryPreferences    DietaryPreferences    `json:"dietaryPreferences"`
	SupplementPreferences SupplementPreferences `json:"supplementPreferences"`
	OtherPreferences      OtherPreferences      `json:"otherPreferences"`
	Consent               bool                  `json:"consent"`
	History               History               `json:"history"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
}
