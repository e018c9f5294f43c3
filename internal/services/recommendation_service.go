package services

import (
	"sort"

	"github.com/vivekd2000/Be-fit/internal/models"
)

type SupplementSource interface {
	ListAll() []models.Supplement
}

// RecommendationService filters the static catalog against a user profile and
// orders the survivors. It is pure: the catalog is read-only and identical
// inputs always yield identical ordered output.
type RecommendationService struct {
	catalog SupplementSource
}

func NewRecommendationService(catalog SupplementSource) *RecommendationService {
	return &RecommendationService{catalog: catalog}
}

// Recommend returns the eligible records sorted by price ascending, ties
// broken by rating descending. Annotating results with reasoning is the
// caller's job.
func (s *RecommendationService) Recommend(user *models.User) []models.Supplement {
	results := make([]models.Supplement, 0)
	for _, supp := range s.catalog.ListAll() {
		if matchesProfile(user, &supp) {
			results = append(results, supp)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Price == results[j].Price {
			return results[i].MinRating > results[j].MinRating
		}
		return results[i].Price < results[j].Price
	})

	return results
}

// matchesProfile is the eligibility predicate chain: every check must pass for
// a record to stay in. A profile with no fitness goal matches nothing.
func matchesProfile(user *models.User, supp *models.Supplement) bool {
	if !containsString(supp.Goals, strValue(user.FitnessProfile.FitnessGoal)) {
		return false
	}
	if age := user.HealthMetrics.Age; age != nil && (*age < supp.MinAge || *age > supp.MaxAge) {
		return false
	}
	if pattern := strValue(user.DietaryPreferences.DietaryPattern); pattern != "" && !containsString(supp.Dietary, pattern) {
		return false
	}
	if intersects(user.DietaryPreferences.Allergies, supp.Allergens) {
		return false
	}
	if form := strValue(user.SupplementPreferences.PreferredForm); form != "" && !containsString(supp.Forms, form) {
		return false
	}
	if user.SupplementPreferences.IngredientTransparency && !supp.IngredientTransparency {
		return false
	}
	if required := user.SupplementPreferences.Certifications; len(required) > 0 && !containsAll(supp.Certifications, required) {
		return false
	}
	if user.SupplementPreferences.AvoidProprietaryBlends && supp.ProprietaryBlend {
		return false
	}
	if user.SupplementPreferences.ClinicallySupportedDosage && !supp.ClinicallySupportedDosage {
		return false
	}
	if min := user.OtherPreferences.MinCustomerRating; min != nil && supp.MinRating < *min {
		return false
	}
	if pr := user.OtherPreferences.PriceRange; pr != nil && (supp.Price < pr.Min || supp.Price > pr.Max) {
		return false
	}
	if preferred := user.SupplementPreferences.PreferredBrands; len(preferred) > 0 && !intersects(preferred, supp.Brands) {
		return false
	}
	// AllowInternational is declared on the profile but no predicate enforces
	// it; every record passes.
	return true
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}

func containsAll(values, required []string) bool {
	for _, item := range required {
		if !containsString(values, item) {
			return false
		}
	}
	return true
}

func intersects(a, b []string) bool {
	for _, item := range a {
		if containsString(b, item) {
			return true
		}
	}
	return false
}

func strValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
