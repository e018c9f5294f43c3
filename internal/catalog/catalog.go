package catalog

import "github.com/vivekd2000/Be-fit/internal/models"

// Catalog is the static supplement table, loaded once at process start and
// never mutated. Callers must treat the returned slices as read-only.
type Catalog struct {
	supplements []models.Supplement
}

func New() *Catalog {
	return &Catalog{supplements: supplements}
}

func (c *Catalog) ListAll() []models.Supplement {
	return c.supplements
}

var supplements = []models.Supplement{
	{
		Name:                      "Whey Protein",
		Goals:                     []string{"Muscle Gain", "Endurance"},
		ScientificBacking:         true,
		IngredientTransparency:    true,
		Certifications:            []string{"NSF", "USP"},
		Allergens:                 []string{"dairy"},
		Dietary:                   []string{"Vegetarian"},
		Forms:                     []string{"Powder"},
		MinAge:                    16,
		MaxAge:                    65,
		MinRating:                 4.2,
		Brands:                    []string{"BrandA", "BrandB"},
		Price:                     1500,
		ProprietaryBlend:          false,
		ClinicallySupportedDosage: true,
		Description:               "Supports muscle synthesis and recovery. Backed by clinical studies.",
	},
	{
		Name:                      "Plant Protein",
		Goals:                     []string{"Muscle Gain", "Endurance"},
		ScientificBacking:         true,
		IngredientTransparency:    true,
		Certifications:            []string{"NSF"},
		Allergens:                 []string{},
		Dietary:                   []string{"Vegan", "Vegetarian"},
		Forms:                     []string{"Powder"},
		MinAge:                    16,
		MaxAge:                    65,
		MinRating:                 4.0,
		Brands:                    []string{"BrandC"},
		Price:                     1800,
		ProprietaryBlend:          false,
		ClinicallySupportedDosage: true,
		Description:               "Plant-based protein for muscle gain. Clean label.",
	},
	{
		Name:                      "Multivitamin",
		Goals:                     []string{"General Wellness", "Endurance"},
		ScientificBacking:         true,
		IngredientTransparency:    true,
		Certifications:            []string{"USP"},
		Allergens:                 []string{},
		Dietary:                   []string{"Vegan", "Vegetarian", "Non-Vegetarian"},
		Forms:                     []string{"Capsule"},
		MinAge:                    12,
		MaxAge:                    99,
		MinRating:                 4.1,
		Brands:                    []string{"BrandD"},
		Price:                     900,
		ProprietaryBlend:          false,
		ClinicallySupportedDosage: true,
		Description:               "Daily essential vitamins and minerals. Third-party tested.",
	},
	{
		Name:                      "Omega-3 Fish Oil",
		Goals:                     []string{"General Wellness"},
		ScientificBacking:         true,
		IngredientTransparency:    true,
		Certifications:            []string{"NSF"},
		Allergens:                 []string{"fish"},
		Dietary:                   []string{"Non-Vegetarian"},
		Forms:                     []string{"Capsule"},
		MinAge:                    18,
		MaxAge:                    99,
		MinRating:                 4.3,
		Brands:                    []string{"BrandE"},
		Price:                     1200,
		ProprietaryBlend:          false,
		ClinicallySupportedDosage: true,
		Description:               "Supports heart and brain health. High purity.",
	},
	{
		Name:                      "Fat Burner X",
		Goals:                     []string{"Fat Loss"},
		ScientificBacking:         false,
		IngredientTransparency:    false,
		Certifications:            []string{},
		Allergens:                 []string{},
		Dietary:                   []string{"Vegan", "Vegetarian", "Non-Vegetarian"},
		Forms:                     []string{"Capsule"},
		MinAge:                    18,
		MaxAge:                    65,
		MinRating:                 3.2,
		Brands:                    []string{"BrandF"},
		Price:                     800,
		ProprietaryBlend:          true,
		ClinicallySupportedDosage: false,
		Description:               "Claims to boost metabolism. No credible studies.",
	},
}
