package services

import (
	"reflect"
	"testing"

	"github.com/vivekd2000/Be-fit/internal/catalog"
	"github.com/vivekd2000/Be-fit/internal/models"
)

type stubCatalog struct {
	supplements []models.Supplement
}

func (s *stubCatalog) ListAll() []models.Supplement {
	return s.supplements
}

func userWithGoal(goal string) *models.User {
	return &models.User{
		FitnessProfile: models.FitnessProfile{FitnessGoal: &goal},
	}
}

func resultNames(results []models.Supplement) []string {
	names := make([]string, 0, len(results))
	for _, supp := range results {
		names = append(names, supp.Name)
	}
	return names
}

func TestRecommendMatchesGoalAndSortsByPrice(t *testing.T) {
	service := NewRecommendationService(catalog.New())

	age := 20
	user := userWithGoal("Muscle Gain")
	user.HealthMetrics.Age = &age

	got := resultNames(service.Recommend(user))
	want := []string{"Whey Protein", "Plant Protein"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRecommendExcludesAllergenMatches(t *testing.T) {
	service := NewRecommendationService(catalog.New())

	age := 20
	user := userWithGoal("Muscle Gain")
	user.HealthMetrics.Age = &age
	user.DietaryPreferences.Allergies = []string{"dairy"}

	got := resultNames(service.Recommend(user))
	want := []string{"Plant Protein"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRecommendRequiresFitnessGoal(t *testing.T) {
	service := NewRecommendationService(catalog.New())

	if got := service.Recommend(&models.User{}); len(got) != 0 {
		t.Fatalf("expected no matches without a fitness goal, got %v", resultNames(got))
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	service := NewRecommendationService(catalog.New())
	user := userWithGoal("General Wellness")

	first := resultNames(service.Recommend(user))
	second := resultNames(service.Recommend(user))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got %v then %v", first, second)
	}
}

func TestRecommendExcludesOutOfAgeRange(t *testing.T) {
	service := NewRecommendationService(catalog.New())

	age := 14
	user := userWithGoal("Muscle Gain")
	user.HealthMetrics.Age = &age

	if got := service.Recommend(user); len(got) != 0 {
		t.Fatalf("expected no matches for age 14, got %v", resultNames(got))
	}
}

func TestRecommendAgeCheckSkippedWhenAgeAbsent(t *testing.T) {
	service := NewRecommendationService(catalog.New())

	got := resultNames(service.Recommend(userWithGoal("Muscle Gain")))
	want := []string{"Whey Protein", "Plant Protein"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRecommendDietaryPatternFilter(t *testing.T) {
	service := NewRecommendationService(catalog.New())

	pattern := "Vegan"
	user := userWithGoal("Muscle Gain")
	user.DietaryPreferences.DietaryPattern = &pattern

	got := resultNames(service.Recommend(user))
	want := []string{"Plant Protein"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRecommendTransparencyAndBlendFilters(t *testing.T) {
	service := NewRecommendationService(catalog.New())

	user := userWithGoal("Fat Loss")
	if got := resultNames(service.Recommend(user)); !reflect.DeepEqual(got, []string{"Fat Burner X"}) {
		t.Fatalf("expected Fat Burner X for fat loss, got %v", got)
	}

	user.SupplementPreferences.IngredientTransparency = true
	if got := service.Recommend(user); len(got) != 0 {
		t.Fatalf("expected transparency requirement to exclude Fat Burner X, got %v", resultNames(got))
	}

	user.SupplementPreferences.IngredientTransparency = false
	user.SupplementPreferences.AvoidProprietaryBlends = true
	if got := service.Recommend(user); len(got) != 0 {
		t.Fatalf("expected proprietary blend avoidance to exclude Fat Burner X, got %v", resultNames(got))
	}
}

func TestRecommendCertificationSuperset(t *testing.T) {
	service := NewRecommendationService(catalog.New())

	user := userWithGoal("Muscle Gain")
	user.SupplementPreferences.Certifications = []string{"NSF", "USP"}

	got := resultNames(service.Recommend(user))
	want := []string{"Whey Protein"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected only records carrying every required certification, got %v", got)
	}
}

func TestRecommendPriceRangeAndBrands(t *testing.T) {
	service := NewRecommendationService(catalog.New())

	user := userWithGoal("Muscle Gain")
	user.OtherPreferences.PriceRange = &models.PriceRange{Min: 1600, Max: 2000}
	if got := resultNames(service.Recommend(user)); !reflect.DeepEqual(got, []string{"Plant Protein"}) {
		t.Fatalf("expected price range to keep Plant Protein only, got %v", got)
	}

	user.OtherPreferences.PriceRange = nil
	user.SupplementPreferences.PreferredBrands = []string{"BrandB"}
	if got := resultNames(service.Recommend(user)); !reflect.DeepEqual(got, []string{"Whey Protein"}) {
		t.Fatalf("expected brand preference to keep Whey Protein only, got %v", got)
	}
}

func TestRecommendMinimumRating(t *testing.T) {
	service := NewRecommendationService(catalog.New())

	minRating := 4.1
	user := userWithGoal("Muscle Gain")
	user.OtherPreferences.MinCustomerRating = &minRating

	got := resultNames(service.Recommend(user))
	want := []string{"Whey Protein"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected rating floor to drop Plant Protein, got %v", got)
	}
}

func TestRecommendPriceTieBrokenByRating(t *testing.T) {
	service := NewRecommendationService(&stubCatalog{
		supplements: []models.Supplement{
			{Name: "Low Rated", Goals: []string{"Endurance"}, Price: 1000, MinRating: 3.5},
			{Name: "High Rated", Goals: []string{"Endurance"}, Price: 1000, MinRating: 4.5},
			{Name: "Cheapest", Goals: []string{"Endurance"}, Price: 500, MinRating: 1.0},
		},
	})

	got := resultNames(service.Recommend(userWithGoal("Endurance")))
	want := []string{"Cheapest", "High Rated", "Low Rated"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRecommendAllowInternationalIsIgnored(t *testing.T) {
	service := NewRecommendationService(catalog.New())

	user := userWithGoal("Muscle Gain")
	withFlag := resultNames(service.Recommend(user))

	user.OtherPreferences.AllowInternational = true
	if got := resultNames(service.Recommend(user)); !reflect.DeepEqual(got, withFlag) {
		t.Fatalf("expected allowInternational to change nothing, got %v vs %v", got, withFlag)
	}
}
