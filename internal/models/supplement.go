package models

// Supplement is one catalog record. Records are defined statically and never
// mutated at runtime. Invariants: MinAge <= MaxAge, Price >= 0, MinRating in [0,5].
type Supplement struct {
	Name                      string   `json:"name"`
	Goals                     []string `json:"goal"`
	ScientificBacking         bool     `json:"scientificBacking"`
	IngredientTransparency    bool     `json:"ingredientTransparency"`
	Certifications            []string `json:"certifications"`
	Allergens                 []string `json:"allergens"`
	Dietary                   []string `json:"dietary"`
	Forms                     []string `json:"form"`
	MinAge                    int      `json:"minAge"`
	MaxAge                    int      `json:"maxAge"`
	MinRating                 float64  `json:"minRating"`
	Brands                    []string `json:"brands"`
	Price                     int      `json:"price"`
	ProprietaryBlend          bool     `json:"proprietaryBlend"`
	ClinicallySupportedDosage bool     `json:"clinicallySupportedDosage"`
	Description               string   `json:"description"`
}

// Recommendation is a catalog record annotated with the reasoning string the
// recommendations endpoint derives from the scientific-backing flag.
type Recommendation struct {
	Supplement
	ScientificReasoning string `json:"scientificReasoning"`
}
